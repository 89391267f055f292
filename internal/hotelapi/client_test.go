package hotelapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAvailableRooms_DecodesEnvelope(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"rooms": []map[string]any{
					{"id": "r1", "roomNumber": "101", "roomType": "STANDARD", "basePrice": 2500, "capacity": 2, "status": "AVAILABLE"},
				},
				"dateRange":          map[string]string{"checkIn": "2025-06-01", "checkOut": "2025-06-03"},
				"bookedRoomCount":    3,
				"availableRoomCount": 1,
			},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	data, err := client.AvailableRooms(context.Background(), AvailableRoomsQuery{
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
		RoomType: "STANDARD",
	})
	if err != nil {
		t.Fatalf("AvailableRooms error: %v", err)
	}

	if gotPath != "/rooms/available" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != "checkIn=2025-06-01&checkOut=2025-06-03&roomType=STANDARD" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	if len(data.Rooms) != 1 || data.Rooms[0].ID != "r1" {
		t.Fatalf("unexpected rooms: %+v", data.Rooms)
	}
	if data.DateRange == nil || data.DateRange.CheckIn != "2025-06-01" {
		t.Fatalf("unexpected date range: %+v", data.DateRange)
	}
}

func TestAvailableRooms_OmitsEmptyRoomType(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := client.AvailableRooms(context.Background(), AvailableRoomsQuery{
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	}); err != nil {
		t.Fatalf("AvailableRooms error: %v", err)
	}

	if gotQuery != "checkIn=2025-06-01&checkOut=2025-06-03" {
		t.Fatalf("expected roomType omitted, got %q", gotQuery)
	}
}

func TestCreateBooking_BusinessError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "NO_AVAILABILITY",
			"message": "Room is no longer available for these dates.",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.CreateBooking(context.Background(), CreateBookingBody{
		RoomID:     "r1",
		GuestName:  "Rajesh K",
		GuestPhone: "9876543210",
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *hotelapi.Error, got %T: %v", err, err)
	}
	if apiErr.Name != "NO_AVAILABILITY" {
		t.Fatalf("unexpected error name %q", apiErr.Name)
	}
	if apiErr.Message != "Room is no longer available for these dates." {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestBookingHistory_SendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"bookingId": "b1", "bookingReference": "RT-1001", "status": "CONFIRMED", "totalAmount": 5000},
			},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	items, err := client.BookingHistory(context.Background(), "customer-jwt")
	if err != nil {
		t.Fatalf("BookingHistory error: %v", err)
	}

	if gotAuth != "Bearer customer-jwt" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
	if len(items) != 1 || items[0].BookingReference != "RT-1001" {
		t.Fatalf("unexpected history: %+v", items)
	}
}

func TestVerifyOTP_ReturnsTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		json.NewDecoder(r.Body).Decode(&in)
		if in["email"] != "guest@example.com" || in["otp"] != "123456" {
			t.Errorf("unexpected body: %v", in)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"signupToken":   "signup-jwt",
				"customerToken": "customer-jwt",
				"expiresIn":     900,
			},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	data, err := client.VerifyOTP(context.Background(), "guest@example.com", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP error: %v", err)
	}
	if data.SignupToken != "signup-jwt" || data.CustomerToken != "customer-jwt" {
		t.Fatalf("unexpected tokens: %+v", data)
	}
}

func TestDo_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.SendOTP(context.Background(), "guest@example.com")
	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *hotelapi.Error, got %T: %v", err, err)
	}
	if apiErr.Name != "MALFORMED_RESPONSE" {
		t.Fatalf("unexpected error name %q", apiErr.Name)
	}
}

func TestDo_TransportErrorIsNotAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL)
	_, err := client.SendOTP(context.Background(), "guest@example.com")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := IsAPIError(err); ok {
		t.Fatalf("transport failure should not be an API error: %v", err)
	}
}

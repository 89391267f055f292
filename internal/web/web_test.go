package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hoteltheretinue/retinue-web/internal/hotelapi"
	"github.com/hoteltheretinue/retinue-web/internal/session"
)

// fakeAPI fakes the remote booking API and counts calls per path.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int
	// lastAuth holds the Authorization header of the latest request.
	lastAuth string
}

func (f *fakeAPI) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls[r.URL.Path]++
		f.lastAuth = r.Header.Get("Authorization")
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rooms/available":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"rooms": []map[string]any{
						{"id": "r1", "roomNumber": "101", "roomType": "STANDARD", "floor": 1, "basePrice": 2500, "capacity": 2, "status": "AVAILABLE"},
						{"id": "r2", "roomNumber": "Suite-1", "roomType": "SUITE", "floor": 2, "basePrice": 3500, "capacity": 4, "status": "AVAILABLE"},
					},
					"dateRange":          map[string]string{"checkIn": "2025-06-01", "checkOut": "2025-06-03"},
					"availableRoomCount": 2,
				},
			})
		case "/bookings":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"bookingId": "b1", "bookingReference": "RT-1001",
					"guestName": "Rajesh K", "guestPhone": "9876543210",
					"checkIn": "2025-06-01", "checkOut": "2025-06-03",
					"roomNumber": "101", "roomType": "STANDARD",
					"totalAmount": 5000, "status": "CONFIRMED",
				},
			})
		case "/bookings/batch":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"bookingId": "b2", "bookingReference": "RT-1002",
					"guestName": "Rajesh K", "guestPhone": "9876543210",
					"checkIn": "2025-06-01", "checkOut": "2025-06-03",
					"rooms": []map[string]any{
						{"roomNumber": "101", "roomType": "STANDARD"},
						{"roomNumber": "Suite-1", "roomType": "SUITE"},
					},
					"totalAmount": 12000, "status": "CONFIRMED", "isBatch": true,
				},
			})
		case "/auth/send-otp":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"expiresIn": 300},
			})
		case "/auth/verify-otp":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"signupToken":   "signup-jwt",
					"customerToken": "customer-jwt",
					"expiresIn":     900,
				},
			})
		case "/bookings/history":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": []map[string]any{
					{"bookingId": "b1", "bookingReference": "RT-1001", "checkIn": "2025-06-01", "checkOut": "2025-06-03", "status": "CONFIRMED", "totalAmount": 5000, "roomNumber": "101", "roomType": "STANDARD", "guestPhone": "9876543210"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false, "error": "NOT_FOUND", "message": "Unknown endpoint.",
			})
		}
	})
}

type testSite struct {
	api    *fakeAPI
	server *httptest.Server
	client *http.Client
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()

	api := &fakeAPI{calls: make(map[string]int)}
	upstream := httptest.NewServer(api.handler())
	t.Cleanup(upstream.Close)

	sessions := session.NewManager(session.NewMemoryStore(), session.Config{
		Secret:     "test-secret",
		CookieName: "retinue_session",
		CookieTTL:  time.Hour,
		SessionTTL: 30 * time.Minute,
		DurableTTL: 24 * time.Hour,
	})

	handlers, err := New(hotelapi.New(upstream.URL), sessions)
	if err != nil {
		t.Fatalf("failed to build handlers: %v", err)
	}

	server := httptest.NewServer(handlers.Routes())
	t.Cleanup(server.Close)

	jar, _ := cookiejar.New(nil)
	return &testSite{
		api:    api,
		server: server,
		client: &http.Client{Jar: jar},
	}
}

func (s *testSite) get(t *testing.T, path string) string {
	t.Helper()
	resp, err := s.client.Get(s.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s error: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func (s *testSite) postForm(t *testing.T, path string, form url.Values) string {
	t.Helper()
	resp, err := s.client.PostForm(s.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s error: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func TestCheckout_WithoutSelection_DeadEndsWithoutAPICall(t *testing.T) {
	site := newTestSite(t)

	body := site.get(t, "/book/checkout")
	if !strings.Contains(body, "Missing booking details") {
		t.Fatal("expected missing-details dead end")
	}

	if site.api.count("/bookings") != 0 || site.api.count("/bookings/batch") != 0 {
		t.Fatal("checkout must not call the booking API without a selection")
	}
}

func TestRoomListing_WithoutDates_RedirectsToDateStep(t *testing.T) {
	site := newTestSite(t)

	noRedirect := &http.Client{
		Jar: site.client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := noRedirect.Get(site.server.URL + "/book/rooms")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/book" {
		t.Fatalf("redirect location = %q, want /book", loc)
	}
}

func TestWizard_MultiRoomFlow_BatchBooksAndConfirmsOnce(t *testing.T) {
	site := newTestSite(t)

	// Select two rooms; the selection lands in the session.
	site.postForm(t, "/book/rooms", url.Values{
		"checkIn":  {"2025-06-01"},
		"checkOut": {"2025-06-03"},
		"roomId":   {"r1", "r2"},
	})

	// Checkout shows the stored selection and the computed total.
	checkout := site.get(t, "/book/checkout")
	for _, want := range []string{"Room 101", "Room Suite-1", "₹12,000"} {
		if !strings.Contains(checkout, want) {
			t.Fatalf("checkout page missing %q", want)
		}
	}

	// Confirm; two rooms go through the batch endpoint.
	confirmation := site.postForm(t, "/book/checkout", url.Values{
		"guestName":      {"Rajesh K"},
		"guestPhone":     {"98765 43210"},
		"numberOfGuests": {"3"},
		"agreeTerms":     {"1"},
	})
	if site.api.count("/bookings/batch") != 1 {
		t.Fatalf("batch endpoint calls = %d, want 1", site.api.count("/bookings/batch"))
	}
	if site.api.count("/bookings") != 0 {
		t.Fatal("single-room endpoint must not be used for a multi-room draft")
	}
	if !strings.Contains(confirmation, "RT-1002") {
		t.Fatal("confirmation page missing booking reference")
	}

	// The snapshot is single-use: a reload shows the fallback.
	reload := site.get(t, "/book/confirmation")
	if !strings.Contains(reload, "No booking confirmation in this session") {
		t.Fatal("expected fallback after snapshot was consumed")
	}
	if strings.Contains(reload, "RT-1002") {
		t.Fatal("stale confirmation data leaked into reload")
	}
}

func TestCheckout_SingleRoomQueryVariant_UsesPlainCreate(t *testing.T) {
	site := newTestSite(t)

	body := site.postForm(t, "/book/checkout", url.Values{
		"roomId":     {"r1"},
		"roomNumber": {"101"},
		"roomType":   {"STANDARD"},
		"basePrice":  {"2500"},
		"checkIn":    {"2025-06-01"},
		"checkOut":   {"2025-06-03"},
		"guestName":  {"Lakshmi M"},
		"guestPhone": {"9876543210"},
		"agreeTerms": {"1"},
	})

	if site.api.count("/bookings") != 1 {
		t.Fatalf("single create calls = %d, want 1", site.api.count("/bookings"))
	}
	if !strings.Contains(body, "RT-1001") {
		t.Fatal("confirmation page missing booking reference")
	}
}

func TestCheckout_RejectsBadPhoneWithoutAPICall(t *testing.T) {
	site := newTestSite(t)

	body := site.postForm(t, "/book/checkout", url.Values{
		"roomId":     {"r1"},
		"roomNumber": {"101"},
		"roomType":   {"STANDARD"},
		"basePrice":  {"2500"},
		"checkIn":    {"2025-06-01"},
		"checkOut":   {"2025-06-03"},
		"guestName":  {"Lakshmi M"},
		"guestPhone": {"98765"},
		"agreeTerms": {"1"},
	})

	if !strings.Contains(body, "Phone must be 10 digits") {
		t.Fatal("expected phone validation error")
	}
	if site.api.count("/bookings") != 0 {
		t.Fatal("invalid submission must not reach the API")
	}
}

func TestLogin_OTPStepsAndDashboardRedirect(t *testing.T) {
	site := newTestSite(t)

	// Step 1: email submission moves to the code-entry step.
	otpPage := site.postForm(t, "/login", url.Values{
		"step":  {"email"},
		"email": {"Guest@Example.com"},
	})
	if site.api.count("/auth/send-otp") != 1 {
		t.Fatal("expected one send-otp call")
	}
	if !strings.Contains(otpPage, "6-digit code") {
		t.Fatal("expected code-entry step after sending OTP")
	}
	// The code input renders empty on every visit to the step.
	if strings.Contains(otpPage, `name="otp" value=`) {
		t.Fatal("OTP input must not carry a previous code")
	}

	// Step 2: verification logs in and lands on the dashboard, where
	// the stored customer token fetches history.
	dashboard := site.postForm(t, "/login", url.Values{
		"step":  {"otp"},
		"email": {"guest@example.com"},
		"otp":   {"12 34 56"},
	})
	if site.api.count("/auth/verify-otp") != 1 {
		t.Fatal("expected one verify-otp call")
	}
	if !strings.Contains(dashboard, "RT-1001") {
		t.Fatal("dashboard missing booking history")
	}
	if site.api.lastAuth != "Bearer customer-jwt" {
		t.Fatalf("history call auth = %q, want stored customer token", site.api.lastAuth)
	}
}

func TestDashboard_WithoutLogin_RedirectsToLogin(t *testing.T) {
	site := newTestSite(t)

	noRedirect := &http.Client{
		Jar: site.client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := noRedirect.Get(site.server.URL + "/dashboard")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login?redirect=/dashboard" {
		t.Fatalf("redirect location = %q", loc)
	}
}

func TestMyBooking_LookupValidation(t *testing.T) {
	site := newTestSite(t)

	// Too-short phone never reaches the API.
	body := site.get(t, "/my-booking?ref=rt-1001&phone=12")
	if !strings.Contains(body, "Enter full 10-digit phone or last 4 digits.") {
		t.Fatal("expected lookup phone validation error")
	}
	if site.api.count("/bookings/by-reference") != 0 {
		t.Fatal("invalid lookup must not reach the API")
	}
}

package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hoteltheretinue/retinue-web/internal/booking"
	"github.com/hoteltheretinue/retinue-web/internal/hotelapi"
	"github.com/hoteltheretinue/retinue-web/pkg/logger"
)

// bookableRoomTypes is the filter offered on the date-selection step.
var bookableRoomTypes = []string{
	hotelapi.RoomTypeSingle,
	hotelapi.RoomTypeDouble,
	hotelapi.RoomTypeDeluxe,
	hotelapi.RoomTypeStandard,
	hotelapi.RoomTypeSuite,
	hotelapi.RoomTypeSuitePlus,
}

// categoryOrder controls how the listing groups rooms; anything the
// API reports outside this list is appended after.
var categoryOrder = []string{
	hotelapi.RoomTypeStandard,
	hotelapi.RoomTypeSuite,
	hotelapi.RoomTypeSuitePlus,
}

type bookDatesData struct {
	baseData
	Today     string
	CheckIn   string
	CheckOut  string
	RoomType  string
	Guests    int
	RoomTypes []string
	Error     string
}

func (h *Handlers) bookDates(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "book_dates.html", bookDatesData{
		baseData:  h.base(r, "Check availability"),
		Today:     time.Now().Format("2006-01-02"),
		Guests:    1,
		RoomTypes: bookableRoomTypes,
	})
}

// bookDatesSubmit validates the stay window and serializes it into
// the room-listing URL. No network call happens on this step.
func (h *Handlers) bookDatesSubmit(w http.ResponseWriter, r *http.Request) {
	checkIn := r.FormValue("checkIn")
	checkOut := r.FormValue("checkOut")
	roomType := r.FormValue("roomType")
	guests, _ := strconv.Atoi(r.FormValue("guests"))
	if guests < 1 {
		guests = 1
	}

	message := ""
	if err := booking.ValidStayDates(checkIn, checkOut); err != nil {
		message = "Please select check-in and check-out dates."
		if err == booking.ErrCheckOutBefore {
			message = "Check-out must be after check-in."
		}
	} else if checkIn < time.Now().Format("2006-01-02") {
		message = "Check-in cannot be in the past."
	}
	if message != "" {
		h.render(w, r, http.StatusOK, "book_dates.html", bookDatesData{
			baseData:  h.base(r, "Check availability"),
			Today:     time.Now().Format("2006-01-02"),
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			RoomType:  roomType,
			Guests:    guests,
			RoomTypes: bookableRoomTypes,
			Error:     message,
		})
		return
	}

	params := url.Values{}
	params.Set("checkIn", checkIn)
	params.Set("checkOut", checkOut)
	if roomType != "" {
		params.Set("roomType", roomType)
	}
	if guests > 1 {
		params.Set("guests", strconv.Itoa(guests))
	}
	http.Redirect(w, r, "/book/rooms?"+params.Encode(), http.StatusSeeOther)
}

type roomCategoryGroup struct {
	Type  string
	Rooms []hotelapi.Room
}

type bookRoomsData struct {
	baseData
	CheckIn        string
	CheckOut       string
	RoomType       string
	Guests         int
	Categories     []roomCategoryGroup
	AvailableCount int
	BookedCount    int
	Error          string
}

func (h *Handlers) bookRooms(w http.ResponseWriter, r *http.Request) {
	checkIn := r.URL.Query().Get("checkIn")
	checkOut := r.URL.Query().Get("checkOut")
	if checkIn == "" || checkOut == "" {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}
	h.renderRoomListing(w, r, http.StatusOK, "")
}

func (h *Handlers) renderRoomListing(w http.ResponseWriter, r *http.Request, status int, errMessage string) {
	checkIn := r.FormValue("checkIn")
	checkOut := r.FormValue("checkOut")
	roomType := r.FormValue("roomType")
	guests, _ := strconv.Atoi(r.FormValue("guests"))

	data := bookRoomsData{
		baseData: h.base(r, "Available rooms"),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: roomType,
		Guests:   guests,
		Error:    errMessage,
	}

	available, err := h.api.AvailableRooms(r.Context(), hotelapi.AvailableRoomsQuery{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: roomType,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "Room listing failed", "error", err)
		if data.Error == "" {
			data.Error = errorMessage(err)
		}
		h.render(w, r, http.StatusOK, "book_rooms.html", data)
		return
	}

	data.Categories = groupRoomsByCategory(available.Rooms)
	data.AvailableCount = available.AvailableRoomCount
	data.BookedCount = available.BookedRoomCount
	h.render(w, r, status, "book_rooms.html", data)
}

func groupRoomsByCategory(rooms []hotelapi.Room) []roomCategoryGroup {
	byType := make(map[string][]hotelapi.Room)
	var extras []string
	for _, room := range rooms {
		if _, seen := byType[room.RoomType]; !seen && !containsString(categoryOrder, room.RoomType) {
			extras = append(extras, room.RoomType)
		}
		byType[room.RoomType] = append(byType[room.RoomType], room)
	}

	var groups []roomCategoryGroup
	for _, roomType := range append(append([]string{}, categoryOrder...), extras...) {
		if members := byType[roomType]; len(members) > 0 {
			groups = append(groups, roomCategoryGroup{Type: roomType, Rooms: members})
		}
	}
	return groups
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// bookRoomsSelect resolves the chosen room ids against a fresh
// availability call and stores the draft in the session. The payload
// is too big for a query string, which is why the draft moves to the
// session here rather than the URL.
func (h *Handlers) bookRoomsSelect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}

	checkIn := r.FormValue("checkIn")
	checkOut := r.FormValue("checkOut")
	if checkIn == "" || checkOut == "" {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}

	selectedIDs := r.Form["roomId"]
	if len(selectedIDs) == 0 {
		h.renderRoomListing(w, r, http.StatusOK, "Select at least one room to continue.")
		return
	}

	available, err := h.api.AvailableRooms(r.Context(), hotelapi.AvailableRoomsQuery{
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		h.renderRoomListing(w, r, http.StatusOK, errorMessage(err))
		return
	}

	byID := make(map[string]hotelapi.Room, len(available.Rooms))
	for _, room := range available.Rooms {
		byID[room.ID] = room
	}

	var selected []booking.SelectedRoom
	for _, id := range selectedIDs {
		room, ok := byID[id]
		if !ok {
			h.renderRoomListing(w, r, http.StatusOK,
				"Some selected rooms are no longer available. Please pick again.")
			return
		}
		selected = append(selected, booking.SelectedRoom{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			RoomType:   room.RoomType,
			BasePrice:  room.BasePrice,
			Capacity:   room.Capacity,
		})
	}

	guests, _ := strconv.Atoi(r.FormValue("guests"))
	draft := booking.Draft{
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Rooms:          selected,
		NumberOfGuests: guests,
	}
	if err := h.sessions.SaveDraft(r.Context(), draft); err != nil {
		logger.ErrorContext(r.Context(), "Failed to save room selection", "error", err)
		h.renderRoomListing(w, r, http.StatusOK, genericErrorMessage)
		return
	}

	params := url.Values{}
	params.Set("checkIn", checkIn)
	params.Set("checkOut", checkOut)
	http.Redirect(w, r, "/book/checkout?"+params.Encode(), http.StatusSeeOther)
}

type bookCheckoutData struct {
	baseData
	Draft          *booking.Draft
	FromSession    bool
	Nights         int
	NightlyPrice   int
	Total          int
	GuestName      string
	GuestPhone     string
	GuestAddress   string
	NumberOfGuests int
	AgreeTerms     bool
	Error          string
}

// resolveCheckoutDraft applies the precedence rule: a stored
// multi-room selection wins over the single-room query variant.
func (h *Handlers) resolveCheckoutDraft(r *http.Request) (*booking.Draft, bool) {
	if draft, ok := h.sessions.Draft(r.Context()); ok && draft.Validate() == nil {
		return draft, true
	}

	roomID := r.FormValue("roomId")
	checkIn := r.FormValue("checkIn")
	checkOut := r.FormValue("checkOut")
	if roomID == "" || checkIn == "" || checkOut == "" {
		return nil, false
	}

	basePrice, _ := strconv.Atoi(r.FormValue("basePrice"))
	return &booking.Draft{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms: []booking.SelectedRoom{{
			ID:         roomID,
			RoomNumber: r.FormValue("roomNumber"),
			RoomType:   r.FormValue("roomType"),
			BasePrice:  basePrice,
		}},
	}, false
}

func (h *Handlers) bookCheckout(w http.ResponseWriter, r *http.Request) {
	draft, fromSession := h.resolveCheckoutDraft(r)
	if draft == nil {
		h.render(w, r, http.StatusOK, "book_missing.html", h.base(r, "Missing booking details"))
		return
	}

	guests := draft.NumberOfGuests
	if guests < 1 {
		guests = 1
	}
	h.renderCheckout(w, r, bookCheckoutData{
		baseData:       h.base(r, "Guest details"),
		Draft:          draft,
		FromSession:    fromSession,
		NumberOfGuests: guests,
	})
}

func (h *Handlers) renderCheckout(w http.ResponseWriter, r *http.Request, data bookCheckoutData) {
	data.NightlyPrice = data.Draft.NightlyPrice()
	if nights, err := booking.Nights(data.Draft.CheckIn, data.Draft.CheckOut); err == nil {
		data.Nights = nights
		data.Total = data.NightlyPrice * nights
	}
	h.render(w, r, http.StatusOK, "book_checkout.html", data)
}

func (h *Handlers) bookCheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}

	draft, fromSession := h.resolveCheckoutDraft(r)
	if draft == nil {
		h.render(w, r, http.StatusOK, "book_missing.html", h.base(r, "Missing booking details"))
		return
	}

	guestName := strings.TrimSpace(r.FormValue("guestName"))
	guestAddress := strings.TrimSpace(r.FormValue("guestAddress"))
	agreeTerms := r.FormValue("agreeTerms") != ""
	guests, _ := strconv.Atoi(r.FormValue("numberOfGuests"))
	if guests < 1 {
		guests = 1
	}

	data := bookCheckoutData{
		baseData:       h.base(r, "Guest details"),
		Draft:          draft,
		FromSession:    fromSession,
		GuestName:      guestName,
		GuestPhone:     r.FormValue("guestPhone"),
		GuestAddress:   guestAddress,
		NumberOfGuests: guests,
		AgreeTerms:     agreeTerms,
	}

	phone, phoneOK := booking.ValidBookingPhone(r.FormValue("guestPhone"))
	switch {
	case guestName == "":
		data.Error = "Please enter the guest name."
	case !phoneOK:
		data.Error = "Phone must be 10 digits (Indian mobile)."
	case !agreeTerms:
		data.Error = "Please agree to the booking terms to continue."
	}
	if data.Error != "" {
		h.renderCheckout(w, r, data)
		return
	}

	if err := booking.ValidStayDates(draft.CheckIn, draft.CheckOut); err != nil {
		data.Error = "Check-out must be after check-in."
		h.renderCheckout(w, r, data)
		return
	}

	confirmation, err := h.createBooking(r, draft, guestName, phone, guestAddress, guests)
	if err != nil {
		logger.ErrorContext(r.Context(), "Booking creation failed", "error", err)
		data.Error = errorMessage(err)
		h.renderCheckout(w, r, data)
		return
	}

	if err := h.sessions.SaveConfirmation(r.Context(), *confirmation); err != nil {
		logger.ErrorContext(r.Context(), "Failed to store confirmation snapshot", "error", err)
	}
	if fromSession {
		h.sessions.ClearDraft(r.Context())
	}
	http.Redirect(w, r, "/book/confirmation", http.StatusSeeOther)
}

// createBooking picks the single or batch variant. A stored selection
// of several rooms goes through the batch endpoint; one room uses the
// plain create.
func (h *Handlers) createBooking(r *http.Request, draft *booking.Draft, guestName, guestPhone, guestAddress string, guests int) (*booking.Confirmation, error) {
	if len(draft.Rooms) > 1 {
		data, err := h.api.CreateBatchBooking(r.Context(), hotelapi.BatchBookingBody{
			RoomIDs:        draft.RoomIDs(),
			GuestName:      guestName,
			GuestPhone:     guestPhone,
			CheckIn:        draft.CheckIn,
			CheckOut:       draft.CheckOut,
			GuestAddress:   guestAddress,
			NumberOfGuests: guests,
		})
		if err != nil {
			return nil, err
		}

		rooms := make([]booking.ConfirmedRoom, 0, len(data.Rooms))
		for _, room := range data.Rooms {
			rooms = append(rooms, booking.ConfirmedRoom{
				RoomNumber: room.RoomNumber,
				RoomType:   room.RoomType,
			})
		}
		return &booking.Confirmation{
			BookingID:        data.BookingID,
			BookingReference: data.BookingReference,
			GuestName:        data.GuestName,
			GuestPhone:       data.GuestPhone,
			CheckIn:          data.CheckIn,
			CheckOut:         data.CheckOut,
			Rooms:            rooms,
			TotalAmount:      data.TotalAmount,
			Status:           data.Status,
			IsBatch:          true,
		}, nil
	}

	data, err := h.api.CreateBooking(r.Context(), hotelapi.CreateBookingBody{
		RoomID:         draft.Rooms[0].ID,
		GuestName:      guestName,
		GuestPhone:     guestPhone,
		CheckIn:        draft.CheckIn,
		CheckOut:       draft.CheckOut,
		GuestAddress:   guestAddress,
		NumberOfGuests: guests,
	})
	if err != nil {
		return nil, err
	}
	return &booking.Confirmation{
		BookingID:        data.BookingID,
		BookingReference: data.BookingReference,
		GuestName:        data.GuestName,
		GuestPhone:       data.GuestPhone,
		CheckIn:          data.CheckIn,
		CheckOut:         data.CheckOut,
		RoomNumber:       data.RoomNumber,
		RoomType:         data.RoomType,
		TotalAmount:      data.TotalAmount,
		Status:           data.Status,
	}, nil
}

type bookConfirmationData struct {
	baseData
	Confirmation *booking.Confirmation
}

func (h *Handlers) bookConfirmation(w http.ResponseWriter, r *http.Request) {
	confirmation, ok := h.sessions.TakeConfirmation(r.Context())
	if !ok {
		h.render(w, r, http.StatusOK, "book_confirmation.html", bookConfirmationData{
			baseData: h.base(r, "Booking confirmation"),
		})
		return
	}
	h.render(w, r, http.StatusOK, "book_confirmation.html", bookConfirmationData{
		baseData:     h.base(r, "Booking confirmed"),
		Confirmation: confirmation,
	})
}

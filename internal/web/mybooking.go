package web

import (
	"net/http"
	"strings"

	"github.com/hoteltheretinue/retinue-web/internal/booking"
	"github.com/hoteltheretinue/retinue-web/internal/hotelapi"
)

type myBookingData struct {
	baseData
	Reference string
	Phone     string
	Email     string
	Booking   *hotelapi.ViewBookingData
	Error     string
}

// myBooking is the unauthenticated lookup: reference plus the phone
// used at booking (full 10 digits or the last 4). The form submits
// with GET so a lookup URL can be shared or bookmarked.
func (h *Handlers) myBooking(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	reference := strings.ToUpper(strings.TrimSpace(query.Get("ref")))
	phone := query.Get("phone")

	data := myBookingData{
		baseData:  h.base(r, "View my booking"),
		Reference: reference,
		Phone:     phone,
		Email:     h.sessions.CustomerEmail(r.Context()),
	}

	if reference == "" && phone == "" {
		h.render(w, r, http.StatusOK, "my_booking.html", data)
		return
	}

	if reference == "" || strings.TrimSpace(phone) == "" {
		data.Error = "Please enter booking reference and phone number."
		h.render(w, r, http.StatusOK, "my_booking.html", data)
		return
	}

	digits, ok := booking.ValidLookupPhone(phone)
	if !ok {
		data.Error = "Enter full 10-digit phone or last 4 digits."
		h.render(w, r, http.StatusOK, "my_booking.html", data)
		return
	}

	found, err := h.api.BookingByReference(r.Context(), reference, digits)
	if err != nil {
		data.Error = errorMessage(err)
		h.render(w, r, http.StatusOK, "my_booking.html", data)
		return
	}

	data.Booking = found
	h.render(w, r, http.StatusOK, "my_booking.html", data)
}

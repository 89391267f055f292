// Package booking holds the wizard-side rules for a stay: phone and
// date normalization, night counting and the ephemeral draft that
// carries a room selection from the listing step to checkout. Pricing
// authority stays with the remote booking API; the totals computed
// here are display-only.
package booking

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

const dateLayout = "2006-01-02"

var (
	ErrMissingDates   = errors.New("check-in and check-out are required")
	ErrCheckOutBefore = errors.New("check-out must be after check-in")
	ErrNoRooms        = errors.New("select at least one room")
)

// SelectedRoom is the slice of a room the wizard needs to carry
// forward: identity plus the per-night price used for the summary.
type SelectedRoom struct {
	ID         string `json:"id"`
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	BasePrice  int    `json:"basePrice"`
	Capacity   int    `json:"capacity"`
}

// Draft is the ephemeral selection created between the room listing
// and checkout. It lives only in the session store and is consumed
// (or expires) once checkout completes.
type Draft struct {
	CheckIn        string         `json:"checkIn"`
	CheckOut       string         `json:"checkOut"`
	Rooms          []SelectedRoom `json:"rooms"`
	NumberOfGuests int            `json:"numberOfGuests,omitempty"`
}

// Validate reports whether the draft is complete enough to reach
// checkout: non-empty dates and at least one room.
func (d *Draft) Validate() error {
	if d.CheckIn == "" || d.CheckOut == "" {
		return ErrMissingDates
	}
	if len(d.Rooms) == 0 {
		return ErrNoRooms
	}
	return nil
}

// RoomIDs returns the selected room ids in selection order.
func (d *Draft) RoomIDs() []string {
	ids := make([]string, 0, len(d.Rooms))
	for _, room := range d.Rooms {
		ids = append(ids, room.ID)
	}
	return ids
}

// NightlyPrice is the per-night price of the whole selection.
func (d *Draft) NightlyPrice() int {
	sum := 0
	for _, room := range d.Rooms {
		sum += room.BasePrice
	}
	return sum
}

// TotalAmount computes sum(basePrice) x nights for display. The API
// recomputes the authoritative total on creation.
func (d *Draft) TotalAmount() (int, error) {
	nights, err := Nights(d.CheckIn, d.CheckOut)
	if err != nil {
		return 0, err
	}
	return d.NightlyPrice() * nights, nil
}

// ConfirmedRoom is one room echoed back on a batch confirmation.
type ConfirmedRoom struct {
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
}

// Confirmation is the single-use snapshot written after a successful
// creation and read exactly once by the confirmation page. The API
// remains the system of record; this is never re-derived or cached
// past that one read.
type Confirmation struct {
	BookingID        string          `json:"bookingId"`
	BookingReference string          `json:"bookingReference"`
	GuestName        string          `json:"guestName"`
	GuestPhone       string          `json:"guestPhone"`
	CheckIn          string          `json:"checkIn"`
	CheckOut         string          `json:"checkOut"`
	RoomNumber       string          `json:"roomNumber,omitempty"`
	RoomType         string          `json:"roomType,omitempty"`
	Rooms            []ConfirmedRoom `json:"rooms,omitempty"`
	TotalAmount      int             `json:"totalAmount"`
	Status           string          `json:"status"`
	IsBatch          bool            `json:"isBatch,omitempty"`
}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeSignupPhone strips non-digits and keeps the last ten, so
// "+91 98765 43210" reduces to the bare mobile number.
func NormalizeSignupPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// ValidBookingPhone returns the normalized phone and whether it is an
// acceptable 10-digit Indian mobile number.
func ValidBookingPhone(phone string) (string, bool) {
	digits := NormalizePhone(phone)
	return digits, len(digits) == 10
}

// ValidLookupPhone accepts a full number or the last four digits for
// the unauthenticated reference lookup.
func ValidLookupPhone(phone string) (string, bool) {
	digits := NormalizePhone(phone)
	return digits, len(digits) >= 4
}

// NormalizeOTP strips non-digits from a one-time code.
func NormalizeOTP(otp string) string {
	return NormalizePhone(otp)
}

// NormalizeEmail lowercases and trims an email identifier.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail performs basic shape validation; the API owns the real
// check when it sends the code.
func ValidEmail(email string) bool {
	normalized := NormalizeEmail(email)
	parts := strings.Split(normalized, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	return len(local) > 0 && len(domain) > 2 && strings.Contains(domain, ".")
}

// ValidStayDates parses and orders the stay window. Same-day
// check-in/check-out is rejected so a stay is always at least one
// night.
func ValidStayDates(checkIn, checkOut string) error {
	if checkIn == "" || checkOut == "" {
		return ErrMissingDates
	}
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return ErrMissingDates
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return ErrMissingDates
	}
	if !out.After(in) {
		return ErrCheckOutBefore
	}
	return nil
}

// Nights counts whole nights between two dates, rounding partial days
// up. Equal or inverted dates are an error rather than a zero-night,
// zero-rupee booking.
func Nights(checkIn, checkOut string) (int, error) {
	if err := ValidStayDates(checkIn, checkOut); err != nil {
		return 0, err
	}
	in, _ := time.Parse(dateLayout, checkIn)
	out, _ := time.Parse(dateLayout, checkOut)

	hours := out.Sub(in).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights, nil
}

package hotelapi

// Room categories as the booking API reports them.
const (
	RoomTypeSingle    = "SINGLE"
	RoomTypeDouble    = "DOUBLE"
	RoomTypeDeluxe    = "DELUXE"
	RoomTypeStandard  = "STANDARD"
	RoomTypeSuite     = "SUITE"
	RoomTypeSuitePlus = "SUITE_PLUS"
)

// RoomTypeLabels maps API room types to display names.
var RoomTypeLabels = map[string]string{
	RoomTypeSingle:    "Single",
	RoomTypeDouble:    "Double",
	RoomTypeDeluxe:    "Deluxe",
	RoomTypeStandard:  "Standard",
	RoomTypeSuite:     "Suite",
	RoomTypeSuitePlus: "Suite Plus",
}

type Room struct {
	ID                string  `json:"id"`
	RoomNumber        string  `json:"roomNumber"`
	RoomType          string  `json:"roomType"`
	Floor             int     `json:"floor"`
	BasePrice         int     `json:"basePrice"`
	Capacity          int     `json:"capacity"`
	Status            string  `json:"status"`
	MaintenanceReason *string `json:"maintenanceReason"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
	CheckInAt         *string `json:"checkInAt"`
	CheckOutAt        *string `json:"checkOutAt"`
}

type DateRange struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type AvailableRoomsData struct {
	Rooms              []Room     `json:"rooms"`
	DateRange          *DateRange `json:"dateRange"`
	BookedRoomCount    int        `json:"bookedRoomCount"`
	AvailableRoomCount int        `json:"availableRoomCount"`
}

// AvailableRoomsQuery is encoded with go-querystring.
type AvailableRoomsQuery struct {
	CheckIn  string `url:"checkIn"`
	CheckOut string `url:"checkOut"`
	RoomType string `url:"roomType,omitempty"`
}

type CreateBookingBody struct {
	RoomID           string `json:"roomId"`
	GuestName        string `json:"guestName"`
	GuestPhone       string `json:"guestPhone"`
	CheckIn          string `json:"checkIn"`
	CheckOut         string `json:"checkOut"`
	GuestIDProof     string `json:"guestIdProof,omitempty"`
	GuestAddress     string `json:"guestAddress,omitempty"`
	NumberOfGuests   int    `json:"numberOfGuests,omitempty"`
	Discount         int    `json:"discount,omitempty"`
	AdvanceAmount    int    `json:"advanceAmount,omitempty"`
	ApplyGST         bool   `json:"applyGst,omitempty"`
	FlexibleCheckout bool   `json:"flexibleCheckout,omitempty"`
}

type CreateBookingData struct {
	BookingID        string `json:"bookingId"`
	BookingReference string `json:"bookingReference"`
	GuestName        string `json:"guestName"`
	GuestPhone       string `json:"guestPhone"`
	CheckIn          string `json:"checkIn"`
	CheckOut         string `json:"checkOut"`
	RoomNumber       string `json:"roomNumber"`
	RoomType         string `json:"roomType"`
	TotalAmount      int    `json:"totalAmount"`
	Status           string `json:"status"`
	Message          string `json:"message,omitempty"`
}

// BatchBookingBody books several rooms under one guest reservation.
type BatchBookingBody struct {
	RoomIDs        []string `json:"roomIds"`
	GuestName      string   `json:"guestName"`
	GuestPhone     string   `json:"guestPhone"`
	CheckIn        string   `json:"checkIn"`
	CheckOut       string   `json:"checkOut"`
	GuestAddress   string   `json:"guestAddress,omitempty"`
	NumberOfGuests int      `json:"numberOfGuests,omitempty"`
	Discount       int      `json:"discount,omitempty"`
	AdvanceAmount  int      `json:"advanceAmount,omitempty"`
}

type BatchBookedRoom struct {
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
}

type BatchBookingData struct {
	BookingID        string            `json:"bookingId"`
	BookingReference string            `json:"bookingReference"`
	GuestName        string            `json:"guestName"`
	GuestPhone       string            `json:"guestPhone"`
	CheckIn          string            `json:"checkIn"`
	CheckOut         string            `json:"checkOut"`
	Rooms            []BatchBookedRoom `json:"rooms"`
	TotalAmount      int               `json:"totalAmount"`
	Status           string            `json:"status"`
	IsBatch          bool              `json:"isBatch"`
}

type ViewBookingData struct {
	BookingID        string `json:"bookingId"`
	BookingReference string `json:"bookingReference"`
	CheckIn          string `json:"checkIn"`
	CheckOut         string `json:"checkOut"`
	Status           string `json:"status"`
	PaymentStatus    string `json:"paymentStatus"`
	TotalAmount      int    `json:"totalAmount"`
	PaidAmount       int    `json:"paidAmount"`
	BalanceAmount    int    `json:"balanceAmount"`
	GuestName        string `json:"guestName"`
	GuestPhone       string `json:"guestPhone"`
	RoomNumber       string `json:"roomNumber"`
	RoomType         string `json:"roomType"`
	NumberOfGuests   int    `json:"numberOfGuests"`
}

// BookingLookupQuery is encoded with go-querystring.
type BookingLookupQuery struct {
	BookingReference string `url:"bookingReference"`
	Phone            string `url:"phone"`
}

type SendOTPData struct {
	ExpiresIn int `json:"expiresIn"`
}

type VerifyOTPData struct {
	SignupToken string `json:"signupToken"`
	// CustomerToken is present when the email belongs to an existing
	// customer; it unlocks booking history.
	CustomerToken string `json:"customerToken,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	ExpiresIn     int    `json:"expiresIn"`
}

type Customer struct {
	ID        string  `json:"id"`
	Phone     string  `json:"phone"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type SignupBody struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type SignupData struct {
	Customer      Customer `json:"customer"`
	CustomerToken string   `json:"customerToken,omitempty"`
}

type BookingHistoryItem struct {
	ViewBookingData
	BookingDate string `json:"bookingDate,omitempty"`
}

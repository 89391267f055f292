// Package content holds the hard-coded marketing copy for Hotel The
// Retinue. Pages render this directly; nothing here touches the
// booking API.
package content

type HotelInfo struct {
	Name         string
	Tagline      string
	ShortTagline string
	Email        string
	Phone        string
	PhoneDisplay string
	Address      string
	ShortAddress string
	Landmark     string
	State        string
	Pincode      string
}

var Hotel = HotelInfo{
	Name:         "Hotel The Retinue & Buchiraju Conventions",
	Tagline:      "Comfortable stays in Ramachandrapuram. Standard rooms, Suites and Suite+ with 12–24 hour stay and transparent pricing.",
	ShortTagline: "Comfortable stays in Ramachandrapuram.",
	Email:        "hoteltheretinue@gmail.com",
	Phone:        "7675800901",
	PhoneDisplay: "767 580 0901",
	Address:      "2P-1-8, Chelikani Ramarao veedhi, Ramachandrapuram 533255",
	ShortAddress: "Main Rd, Ramachandrapuram, Andhra Pradesh",
	Landmark:     "Main Road, Ramachandrapuram, Rajgopal Centre, Near HP Petrol Bank, Near Reliance Trends, 2nd Floor, Hotel The Retinue",
	State:        "Andhra Pradesh",
	Pincode:      "533255",
}

type RoomCategory struct {
	Type        string
	Description string
	Rooms       string
	Floor       int
	BasePrice   int
	Capacity    int
}

var RoomCategories = []RoomCategory{
	{
		Type:        "Standard",
		Description: "Comfortable rooms for couples or small families.",
		Rooms:       "101, 102, 103, 104",
		Floor:       1,
		BasePrice:   2500,
		Capacity:    2,
	},
	{
		Type:        "Suite",
		Description: "Spacious suites for longer stays or groups.",
		Rooms:       "Suite-1, Suite-2, Suite-3, Suite-4",
		Floor:       2,
		BasePrice:   3500,
		Capacity:    4,
	},
	{
		Type:        "Suite+",
		Description: "Premium suites with extra space and comfort.",
		Rooms:       "Suite-+1, Suite-+2",
		Floor:       2,
		BasePrice:   4000,
		Capacity:    4,
	},
}

type StayPolicyInfo struct {
	MinStay       string
	MaxStay       string
	Pricing       string
	Discount      string
	EarlyCheckout string
	Included      string
}

var StayPolicy = StayPolicyInfo{
	MinStay:       "12 hours",
	MaxStay:       "24 hours (one calendar day)",
	Pricing:       "Per room per day at base price; GST 18% on (base − discount).",
	Discount:      "Up to 50% of base allowed.",
	EarlyCheckout: "Stay < 12h: minimum 50% of base + GST. Stay ≥ 12h: charged by full day(s).",
	Included:      "Room for 12–24 hours; pricing per room (subject to capacity).",
}

type ConventionsInfo struct {
	Name        string
	Subtitle    string
	Description string
	CTA         string
	ContactNote string
}

var Conventions = ConventionsInfo{
	Name:        "Butchiraju Conventions",
	Subtitle:    "Function hall for events",
	Description: "Our function hall is ideal for weddings, birthdays, conferences, and private events. AC, projector, stage, and flexible capacity. Booking is managed directly with the hotel.",
	CTA:         "Contact us for capacity, availability, and pricing.",
	ContactNote: "Call or email to book the function hall.",
}

var WhatWeOffer = []string{
	"Standard, Suite and Suite+ rooms.",
	"12–24 hour stays; check-in and check-out as per policy.",
	"Per room per day pricing, 18% GST; discounts up to 50% of base.",
	"Function hall (Butchiraju Conventions) for events – contact hotel to book.",
	"Phone 7675800901, email hoteltheretinue@gmail.com, Main Rd, Ramachandrapuram, Andhra Pradesh 533255.",
}

type AboutInfo struct {
	Headline string
	Lead     string
	Body     []string
	CTA      string
}

var About = AboutInfo{
	Headline: "Where comfort meets care",
	Lead:     "Hotel The Retinue & Buchiraju Conventions is Ramachandrapuram’s choice for a calm, clean stay—whether you’re passing through or here for an event.",
	Body: []string{
		"We focus on spotless rooms, clear pricing, and a welcoming team. Our rooms are among the most hygienic in the area, with regular deep cleaning and fresh linen so every guest steps into a space that feels new.",
		"Our Standard, Suite, and Suite+ rooms are favoured by celebrities, artists, and discerning travellers who expect quality and privacy. When you book with us, you’re choosing the same standards that keep our regulars coming back.",
	},
	CTA: "Explore our rooms and book your stay.",
}

type RoomsHighlightInfo struct {
	Hygiene   string
	Celebrity string
	Badge     string
}

var RoomsHighlight = RoomsHighlightInfo{
	Hygiene:   "Our rooms are among the most hygienic in the region. Deep-cleaned between every stay, fresh linen, and strict housekeeping standards so you can relax in complete confidence.",
	Celebrity: "Many of our rooms are regularly chosen by celebrities and well-known guests who value cleanliness, comfort, and discretion. Experience the same high standards.",
	Badge:     "Hygienic · Trusted · Celebrity favourite",
}

type Testimonial struct {
	Name   string
	Role   string
	Quote  string
	Rating int
}

var Testimonials = []Testimonial{
	{
		Name:   "Rajesh K.",
		Role:   "Business traveller, Hyderabad",
		Quote:  "Clean rooms, quiet, and the staff was very helpful. Felt safe and comfortable. Will book again.",
		Rating: 5,
	},
	{
		Name:   "Lakshmi M.",
		Role:   "Family stay, Vijayawada",
		Quote:  "One of the cleanest hotels we’ve stayed in. The suite was spacious and the kids loved it. Highly recommend.",
		Rating: 5,
	},
	{
		Name:   "Suresh & Priya",
		Role:   "Wedding guests",
		Quote:  "We had our family function at Butchiraju Conventions and stayed here. Rooms were spotless and the hall was perfect. Everything was well organised.",
		Rating: 5,
	},
	{
		Name:   "Anonymous",
		Role:   "Frequent guest",
		Quote:  "I stay here often for work. Always clean, always professional. Feels like a second home.",
		Rating: 5,
	},
}

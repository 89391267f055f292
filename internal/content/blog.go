package content

type BlogPost struct {
	Slug    string
	Title   string
	Excerpt string
	Date    string
	Author  string
	Body    []string
}

var BlogPosts = []BlogPost{
	{
		Slug:    "welcome-to-hotel-the-retinue",
		Title:   "Welcome to Hotel The Retinue",
		Excerpt: "Discover comfort and convenience at The Retinue. Book your stay online and enjoy a seamless experience from check-in to check-out.",
		Date:    "2025-01-15",
		Author:  "The Retinue",
		Body: []string{
			"Hotel The Retinue brings comfortable, transparent stays to Ramachandrapuram. Our Standard rooms, Suites and Suite+ rooms are deep-cleaned between every stay, and our pricing is per room per day with no surprises.",
			"Booking online takes a few minutes: pick your dates, choose a room, and confirm with your name and phone number. Your booking reference arrives instantly.",
		},
	},
	{
		Slug:    "how-to-book-online",
		Title:   "How to Book Online",
		Excerpt: "A simple guide to checking availability, choosing your room, and confirming your booking in just a few steps.",
		Date:    "2025-01-10",
		Author:  "The Retinue",
		Body: []string{
			"Start at Book a room and enter your check-in and check-out dates. You can filter by room type or browse everything we have available for your stay.",
			"Select one or more rooms, then enter the guest name and a 10-digit phone number at checkout. Once confirmed, note down your booking reference — it is all you need to view the booking later.",
		},
	},
	{
		Slug:    "view-and-manage-your-booking",
		Title:   "View and Manage Your Booking",
		Excerpt: "Use your booking reference and phone number to view your reservation anytime. No login required.",
		Date:    "2025-01-05",
		Author:  "The Retinue",
		Body: []string{
			"Head to View my booking and enter the booking reference from your confirmation along with the phone number used at booking — the full 10 digits or just the last four.",
			"You will see your stay dates, room, payment status and balance. For anything else, call the front desk and we will sort it out.",
		},
	},
}

func BlogPostBySlug(slug string) (*BlogPost, bool) {
	for i := range BlogPosts {
		if BlogPosts[i].Slug == slug {
			return &BlogPosts[i], true
		}
	}
	return nil, false
}

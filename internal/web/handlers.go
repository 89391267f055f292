// Package web renders the customer-facing pages: the marketing site,
// the booking wizard, OTP login/signup and the booking lookup. It
// orchestrates the hotelapi client and the session manager; it holds
// no business state of its own.
package web

import (
	"html/template"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hoteltheretinue/retinue-web/internal/hotelapi"
	"github.com/hoteltheretinue/retinue-web/internal/session"
)

// genericErrorMessage covers transport failures where the API never
// produced a message of its own.
const genericErrorMessage = "Something went wrong. Please try again."

type Handlers struct {
	api       *hotelapi.Client
	sessions  *session.Manager
	templates map[string]*template.Template
}

func New(api *hotelapi.Client, sessions *session.Manager) (*Handlers, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handlers{
		api:       api,
		sessions:  sessions,
		templates: templates,
	}, nil
}

func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.sessions.Middleware)

	r.Get("/", h.home)
	r.Get("/rooms", h.rooms)
	r.Get("/conventions", h.conventions)
	r.Get("/about", h.about)
	r.Get("/contact", h.contact)
	r.Get("/blog", h.blogIndex)
	r.Get("/blog/{slug}", h.blogPost)

	r.Get("/book", h.bookDates)
	r.Post("/book", h.bookDatesSubmit)
	r.Get("/book/rooms", h.bookRooms)
	r.Post("/book/rooms", h.bookRoomsSelect)
	r.Get("/book/checkout", h.bookCheckout)
	r.Post("/book/checkout", h.bookCheckoutSubmit)
	r.Get("/book/confirmation", h.bookConfirmation)

	r.Get("/login", h.loginPage)
	r.Post("/login", h.loginSubmit)
	r.Get("/signup", h.signupPage)
	r.Post("/signup", h.signupSubmit)
	r.Get("/logout", h.logout)
	r.Get("/dashboard", h.dashboard)
	r.Get("/my-booking", h.myBooking)

	r.NotFound(h.notFound)
	return r
}

// sanitizeRedirect keeps post-login redirects on this site.
func sanitizeRedirect(target string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return "/dashboard"
}

// errorMessage picks what the user sees: the API's own message
// verbatim for business errors, a generic line for transport ones.
func errorMessage(err error) string {
	if apiErr, ok := hotelapi.IsAPIError(err); ok {
		return apiErr.Error()
	}
	return genericErrorMessage
}

package web

import (
	"net/http"
	"strings"

	"github.com/hoteltheretinue/retinue-web/internal/booking"
	"github.com/hoteltheretinue/retinue-web/internal/hotelapi"
	"github.com/hoteltheretinue/retinue-web/pkg/logger"
)

// The login and signup pages walk a small step machine. Each POST
// carries the current step and the state gathered so far in hidden
// fields; the OTP input always renders empty so a stale code never
// carries over.
const (
	stepEmail   = "email"
	stepOTP     = "otp"
	stepProfile = "profile"
)

type loginData struct {
	baseData
	Step     string
	Email    string
	Redirect string
	Message  string
	Error    string
}

func (h *Handlers) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", loginData{
		baseData: h.base(r, "Log in"),
		Step:     stepEmail,
		Email:    h.sessions.CustomerEmail(r.Context()),
		Redirect: r.URL.Query().Get("redirect"),
	})
}

func (h *Handlers) loginSubmit(w http.ResponseWriter, r *http.Request) {
	email := booking.NormalizeEmail(r.FormValue("email"))
	redirect := r.FormValue("redirect")

	data := loginData{
		baseData: h.base(r, "Log in"),
		Step:     r.FormValue("step"),
		Email:    email,
		Redirect: redirect,
	}

	switch data.Step {
	case stepOTP:
		otp := booking.NormalizeOTP(r.FormValue("otp"))
		if len(otp) != 6 {
			data.Error = "Enter the 6-digit code from your email."
			h.render(w, r, http.StatusOK, "login.html", data)
			return
		}

		verified, err := h.api.VerifyOTP(r.Context(), email, otp)
		if err != nil {
			data.Error = errorMessage(err)
			h.render(w, r, http.StatusOK, "login.html", data)
			return
		}

		h.finishLogin(w, r, email, verified.CustomerToken, redirect)

	default:
		if !booking.ValidEmail(email) {
			data.Step = stepEmail
			data.Error = "Please enter a valid email address."
			h.render(w, r, http.StatusOK, "login.html", data)
			return
		}

		if _, err := h.api.SendOTP(r.Context(), email); err != nil {
			data.Step = stepEmail
			data.Error = errorMessage(err)
			h.render(w, r, http.StatusOK, "login.html", data)
			return
		}

		data.Step = stepOTP
		data.Message = "We've sent a 6-digit code to " + maskEmail(email) + "."
		h.render(w, r, http.StatusOK, "login.html", data)
	}
}

// finishLogin records identity in the session and sends the user on.
// A missing customer token is fine: the flag alone unlocks the
// dashboard shell, and history simply reports it needs a token.
func (h *Handlers) finishLogin(w http.ResponseWriter, r *http.Request, email, customerToken, redirect string) {
	ctx := r.Context()
	if customerToken != "" {
		if err := h.sessions.SetCustomerToken(ctx, customerToken); err != nil {
			logger.ErrorContext(ctx, "Failed to store customer token", "error", err)
		}
	}
	if err := h.sessions.SetCustomerEmail(ctx, email); err != nil {
		logger.ErrorContext(ctx, "Failed to store customer email", "error", err)
	}
	if err := h.sessions.SetLoggedIn(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to set login flag", "error", err)
	}
	http.Redirect(w, r, sanitizeRedirect(redirect), http.StatusSeeOther)
}

type signupData struct {
	baseData
	Step        string
	Email       string
	SignupToken string
	Name        string
	Phone       string
	Address     string
	Redirect    string
	Message     string
	Error       string
}

func (h *Handlers) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "signup.html", signupData{
		baseData: h.base(r, "Sign up"),
		Step:     stepEmail,
		Redirect: r.URL.Query().Get("redirect"),
	})
}

func (h *Handlers) signupSubmit(w http.ResponseWriter, r *http.Request) {
	email := booking.NormalizeEmail(r.FormValue("email"))
	redirect := r.FormValue("redirect")

	data := signupData{
		baseData:    h.base(r, "Sign up"),
		Step:        r.FormValue("step"),
		Email:       email,
		SignupToken: r.FormValue("signupToken"),
		Name:        strings.TrimSpace(r.FormValue("name")),
		Phone:       r.FormValue("phone"),
		Address:     strings.TrimSpace(r.FormValue("address")),
		Redirect:    redirect,
	}

	switch data.Step {
	case stepOTP:
		otp := booking.NormalizeOTP(r.FormValue("otp"))
		if len(otp) != 6 {
			data.Error = "Enter the 6-digit code from your email."
			h.render(w, r, http.StatusOK, "signup.html", data)
			return
		}

		verified, err := h.api.VerifyOTP(r.Context(), email, otp)
		if err != nil {
			data.Error = errorMessage(err)
			h.render(w, r, http.StatusOK, "signup.html", data)
			return
		}

		data.Step = stepProfile
		data.SignupToken = verified.SignupToken
		h.render(w, r, http.StatusOK, "signup.html", data)

	case stepProfile:
		phone := booking.NormalizeSignupPhone(data.Phone)
		switch {
		case data.Name == "":
			data.Error = "Please enter your name."
		case len(phone) != 10:
			data.Error = "Phone must be 10 digits (Indian mobile)."
		case data.SignupToken == "":
			data.Error = "Your signup session expired. Start again."
		}
		if data.Error != "" {
			h.render(w, r, http.StatusOK, "signup.html", data)
			return
		}

		signedUp, err := h.api.CompleteSignup(r.Context(), data.SignupToken, hotelapi.SignupBody{
			Name:    data.Name,
			Phone:   phone,
			Address: data.Address,
		})
		if err != nil {
			data.Error = errorMessage(err)
			h.render(w, r, http.StatusOK, "signup.html", data)
			return
		}

		h.finishLogin(w, r, email, signedUp.CustomerToken, redirect)

	default:
		if !booking.ValidEmail(email) {
			data.Step = stepEmail
			data.Error = "Please enter a valid email address."
			h.render(w, r, http.StatusOK, "signup.html", data)
			return
		}

		if _, err := h.api.SendOTP(r.Context(), email); err != nil {
			data.Step = stepEmail
			data.Error = errorMessage(err)
			h.render(w, r, http.StatusOK, "signup.html", data)
			return
		}

		data.Step = stepOTP
		data.Message = "We've sent a 6-digit code to " + maskEmail(email) + "."
		h.render(w, r, http.StatusOK, "signup.html", data)
	}
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearIdentity(r.Context()); err != nil {
		logger.ErrorContext(r.Context(), "Failed to clear session identity", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type dashboardData struct {
	baseData
	Email    string
	Bookings []hotelapi.BookingHistoryItem
	NoToken  bool
	Error    string
}

// dashboard is gated on the advisory login flag. The real authority
// is the customer token the API validates on the history call.
func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.IsLoggedIn(r.Context()) {
		http.Redirect(w, r, "/login?redirect=/dashboard", http.StatusSeeOther)
		return
	}

	data := dashboardData{
		baseData: h.base(r, "Dashboard"),
		Email:    h.sessions.CustomerEmail(r.Context()),
	}

	token := h.sessions.CustomerToken(r.Context())
	if token == "" {
		data.NoToken = true
		h.render(w, r, http.StatusOK, "dashboard.html", data)
		return
	}

	bookings, err := h.api.BookingHistory(r.Context(), token)
	if err != nil {
		data.Error = errorMessage(err)
	} else {
		data.Bookings = bookings
	}
	h.render(w, r, http.StatusOK, "dashboard.html", data)
}

// maskEmail hides most of the local part: g···t@example.com.
func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 2 {
		return email
	}
	return email[:1] + "···" + email[at-1:]
}

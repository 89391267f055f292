// Package session is the one seam through which every page reads and
// writes per-visitor state: the advisory logged-in flag, the stored
// customer token and email, the room-selection draft and the
// single-use booking confirmation snapshot. The cookie only names the
// session; all values live server-side in a Store.
//
// Nothing here is a security boundary. The customer token is opaque
// and validated by the booking API on authenticated calls; the
// logged-in flag exists purely so pages can redirect before rendering
// private content.
package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hoteltheretinue/retinue-web/internal/booking"
	"github.com/hoteltheretinue/retinue-web/pkg/auth"
	"github.com/hoteltheretinue/retinue-web/pkg/logger"
)

// Field names mirror the browser-storage keys the portal has always
// used, so the contract in ops tooling stays recognizable.
const (
	fieldLoggedIn      = "logged_in"
	fieldCustomerToken = "customer_token"
	fieldCustomerEmail = "customer_email"
	fieldSelectedRooms = "selected_rooms"
	fieldConfirmation  = "booking_confirmation"
)

type sidContextKey struct{}

// WithSessionID stashes a session id in the context. The middleware
// does this for every request; tests use it directly.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sidContextKey{}, sid)
}

func sessionID(ctx context.Context) string {
	sid, _ := ctx.Value(sidContextKey{}).(string)
	return sid
}

type Config struct {
	Secret     string
	CookieName string
	CookieTTL  time.Duration
	// SessionTTL bounds tab-session fields: flag, draft, confirmation.
	SessionTTL time.Duration
	// DurableTTL bounds the customer token and email.
	DurableTTL time.Duration
}

type Manager struct {
	store Store
	cfg   Config
}

func NewManager(store Store, cfg Config) *Manager {
	return &Manager{store: store, cfg: cfg}
}

// Middleware ensures every request carries a session id: either the
// one proven by the signed cookie or a fresh one minted on the spot.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if cookie, err := r.Cookie(m.cfg.CookieName); err == nil {
			if parsed, err := auth.ParseSessionToken(cookie.Value, m.cfg.Secret); err == nil {
				sid = parsed
			}
		}

		if sid == "" {
			sid = uuid.New().String()
			token, err := auth.NewSessionToken(sid, m.cfg.Secret, m.cfg.CookieTTL)
			if err != nil {
				logger.ErrorContext(r.Context(), "Failed to sign session cookie", "error", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     m.cfg.CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.cfg.CookieTTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := WithSessionID(r.Context(), sid)
		ctx = context.WithValue(ctx, logger.SessionIDKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// get swallows store errors: session state is advisory, and a flaky
// store should degrade to "not set", never to a failed page.
func (m *Manager) get(ctx context.Context, field string) string {
	sid := sessionID(ctx)
	if sid == "" {
		return ""
	}
	value, err := m.store.Get(ctx, sid, field)
	if err != nil {
		logger.ErrorContext(ctx, "Session read failed", "field", field, "error", err)
		return ""
	}
	return value
}

func (m *Manager) set(ctx context.Context, field, value string, ttl time.Duration) error {
	return m.store.Set(ctx, sessionID(ctx), field, value, ttl)
}

func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	return m.get(ctx, fieldLoggedIn) == "1"
}

func (m *Manager) SetLoggedIn(ctx context.Context) error {
	return m.set(ctx, fieldLoggedIn, "1", m.cfg.SessionTTL)
}

func (m *Manager) CustomerToken(ctx context.Context) string {
	return m.get(ctx, fieldCustomerToken)
}

func (m *Manager) SetCustomerToken(ctx context.Context, token string) error {
	return m.set(ctx, fieldCustomerToken, token, m.cfg.DurableTTL)
}

func (m *Manager) CustomerEmail(ctx context.Context) string {
	return m.get(ctx, fieldCustomerEmail)
}

func (m *Manager) SetCustomerEmail(ctx context.Context, email string) error {
	return m.set(ctx, fieldCustomerEmail, booking.NormalizeEmail(email), m.cfg.DurableTTL)
}

// ClearIdentity is logout: flag, token and email go together.
func (m *Manager) ClearIdentity(ctx context.Context) error {
	return m.store.Delete(ctx, sessionID(ctx),
		fieldLoggedIn, fieldCustomerToken, fieldCustomerEmail)
}

func (m *Manager) SaveDraft(ctx context.Context, draft booking.Draft) error {
	encoded, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return m.set(ctx, fieldSelectedRooms, string(encoded), m.cfg.SessionTTL)
}

func (m *Manager) Draft(ctx context.Context) (*booking.Draft, bool) {
	raw := m.get(ctx, fieldSelectedRooms)
	if raw == "" {
		return nil, false
	}
	var draft booking.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		logger.ErrorContext(ctx, "Corrupt room-selection draft dropped", "error", err)
		m.ClearDraft(ctx)
		return nil, false
	}
	return &draft, true
}

func (m *Manager) ClearDraft(ctx context.Context) error {
	return m.store.Delete(ctx, sessionID(ctx), fieldSelectedRooms)
}

func (m *Manager) SaveConfirmation(ctx context.Context, confirmation booking.Confirmation) error {
	encoded, err := json.Marshal(confirmation)
	if err != nil {
		return err
	}
	return m.set(ctx, fieldConfirmation, string(encoded), m.cfg.SessionTTL)
}

// TakeConfirmation reads and deletes the snapshot in one step. A
// reload after the first read lands on the fallback page instead of
// stale data.
func (m *Manager) TakeConfirmation(ctx context.Context) (*booking.Confirmation, bool) {
	raw := m.get(ctx, fieldConfirmation)
	if raw == "" {
		return nil, false
	}
	m.store.Delete(ctx, sessionID(ctx), fieldConfirmation)

	var confirmation booking.Confirmation
	if err := json.Unmarshal([]byte(raw), &confirmation); err != nil {
		logger.ErrorContext(ctx, "Corrupt confirmation snapshot dropped", "error", err)
		return nil, false
	}
	return &confirmation, true
}

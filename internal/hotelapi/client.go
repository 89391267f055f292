// Package hotelapi is the typed client for the public booking API.
// Every call decodes the API's uniform envelope and surfaces business
// failures as *hotelapi.Error so callers can show the server's message
// verbatim, while transport failures come back as ordinary errors.
package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"
)

// Error is the API's error envelope: {success:false, error, message, code?}.
type Error struct {
	Name    string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Name
}

// IsAPIError reports whether err is a business error from the booking
// API, as opposed to a transport failure. Callers branch on this the
// way the envelope's success flag is meant to be used.
func IsAPIError(err error) (*Error, bool) {
	apiErr, ok := err.(*Error)
	return apiErr, ok
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Name    string          `json:"error"`
	Code    string          `json:"code"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do performs a request and decodes the envelope into out. A non-2xx
// status or success:false becomes *Error; malformed bodies become a
// generic *Error so callers never see raw JSON noise.
func (c *Client) do(ctx context.Context, method, path, bearer string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &Error{
			Name:    "MALFORMED_RESPONSE",
			Message: "The server returned an unexpected response.",
			Code:    fmt.Sprintf("HTTP_%d", resp.StatusCode),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		apiErr := &Error{Name: env.Name, Message: env.Message, Code: env.Code}
		if apiErr.Name == "" && apiErr.Message == "" {
			apiErr.Name = "REQUEST_FAILED"
			apiErr.Message = fmt.Sprintf("Request failed with status %d.", resp.StatusCode)
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{
				Name:    "MALFORMED_RESPONSE",
				Message: "The server returned an unexpected response.",
			}
		}
	}
	return nil
}

// SendOTP asks the API to email a one-time code. Rate limiting and
// expiry are owned server-side.
func (c *Client) SendOTP(ctx context.Context, email string) (*SendOTPData, error) {
	var data SendOTPData
	err := c.do(ctx, http.MethodPost, "/auth/send-otp", "", map[string]string{"email": email}, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// VerifyOTP exchanges the 6-digit code for a signup token and, for
// existing customers, a customer bearer token.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*VerifyOTPData, error) {
	var data VerifyOTPData
	err := c.do(ctx, http.MethodPost, "/auth/verify-otp", "", map[string]string{
		"email": email,
		"otp":   otp,
	}, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// CompleteSignup finishes account creation under the short-lived
// signup token from VerifyOTP.
func (c *Client) CompleteSignup(ctx context.Context, signupToken string, body SignupBody) (*SignupData, error) {
	var data SignupData
	err := c.do(ctx, http.MethodPost, "/auth/signup", signupToken, body, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// AvailableRooms lists rooms open for the stay window.
func (c *Client) AvailableRooms(ctx context.Context, q AvailableRoomsQuery) (*AvailableRoomsData, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	var data AvailableRoomsData
	if err := c.do(ctx, http.MethodGet, "/rooms/available?"+values.Encode(), "", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CreateBooking books a single room.
func (c *Client) CreateBooking(ctx context.Context, body CreateBookingBody) (*CreateBookingData, error) {
	var data CreateBookingData
	if err := c.do(ctx, http.MethodPost, "/bookings", "", body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CreateBatchBooking books several rooms as one reservation; the API
// prices it as sum of per-room base price times nights.
func (c *Client) CreateBatchBooking(ctx context.Context, body BatchBookingBody) (*BatchBookingData, error) {
	var data BatchBookingData
	if err := c.do(ctx, http.MethodPost, "/bookings/batch", "", body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// BookingByReference is the unauthenticated lookup: reference code
// plus a full phone or its last four digits.
func (c *Client) BookingByReference(ctx context.Context, reference, phone string) (*ViewBookingData, error) {
	values, err := query.Values(BookingLookupQuery{BookingReference: reference, Phone: phone})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	var data ViewBookingData
	if err := c.do(ctx, http.MethodGet, "/bookings/by-reference?"+values.Encode(), "", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// BookingHistory lists the bookings tied to the customer the bearer
// token identifies.
func (c *Client) BookingHistory(ctx context.Context, customerToken string) ([]BookingHistoryItem, error) {
	var data []BookingHistoryItem
	if err := c.do(ctx, http.MethodGet, "/bookings/history", customerToken, nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

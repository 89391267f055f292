package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newProxyServer(t *testing.T, upstreamBase string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(New(upstreamBase).Routes())
	t.Cleanup(server.Close)
	return server
}

func TestForward_RelaysStatusAndBody(t *testing.T) {
	const upstreamBody = `{"success":true,"data":{"id":"x"}}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, upstreamBody)
	}))
	defer upstream.Close()

	server := newProxyServer(t, upstream.URL)
	resp, err := http.Post(server.URL+"/bookings", "application/json", strings.NewReader(`{"roomId":"r1"}`))
	if err != nil {
		t.Fatalf("post error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != upstreamBody {
		t.Fatalf("body = %q, want %q", body, upstreamBody)
	}
}

func TestForward_PreservesPathQueryAndBody(t *testing.T) {
	var gotPath, gotQuery, gotBody, gotContentType string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		io.WriteString(w, `{"success":true}`)
	}))
	defer upstream.Close()

	server := newProxyServer(t, upstream.URL)
	req, _ := http.NewRequest(http.MethodPost,
		server.URL+"/auth/verify-otp?foo=bar", strings.NewReader(`{"otp":"123456"}`))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()

	if gotPath != "/auth/verify-otp" {
		t.Fatalf("upstream path = %q", gotPath)
	}
	if gotQuery != "foo=bar" {
		t.Fatalf("upstream query = %q", gotQuery)
	}
	if gotBody != `{"otp":"123456"}` {
		t.Fatalf("upstream body = %q", gotBody)
	}
	// Content-Type defaults to JSON when the caller sends none.
	if gotContentType != "application/json" {
		t.Fatalf("upstream content type = %q", gotContentType)
	}
}

func TestForward_StripsHostIdentifyingHeaders(t *testing.T) {
	var sawSecHeader, sawAuthorization bool
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawSecHeader = r.Header["Sec-Fetch-Mode"]
		sawAuthorization = r.Header.Get("Authorization") == "Bearer token-1"
		io.WriteString(w, `{"success":true}`)
	}))
	defer upstream.Close()

	server := newProxyServer(t, upstream.URL)
	req, _ := http.NewRequest(http.MethodGet, server.URL+"/bookings/history", nil)
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Authorization", "Bearer token-1")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()

	if sawSecHeader {
		t.Fatal("Sec-* header leaked upstream")
	}
	if !sawAuthorization {
		t.Fatal("Authorization header was not forwarded")
	}
}

func TestForward_UpstreamUnreachable_Returns502Envelope(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	server := newProxyServer(t, upstream.URL)
	resp, err := http.Get(server.URL + "/rooms/available")
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}

	var envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if envelope.Success {
		t.Fatal("expected success=false")
	}
	if envelope.Error != "PROXY_ERROR" {
		t.Fatalf("error = %q, want PROXY_ERROR", envelope.Error)
	}
	if envelope.Message != "Unable to reach the server. Try again." {
		t.Fatalf("message = %q", envelope.Message)
	}
}

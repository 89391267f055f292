// Package proxy exposes a same-origin passthrough to the remote
// booking API so browser pages on localhost can call it without
// tripping CORS. It is a pure relay: no retries, no caching, no rate
// limiting.
package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hoteltheretinue/retinue-web/pkg/logger"
)

type Handler struct {
	remoteBase string
	client     *http.Client
}

func New(remoteBase string) *Handler {
	return &Handler{
		remoteBase: strings.TrimRight(remoteBase, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/*", h.forward)
	r.Post("/*", h.forward)
	return r
}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	target := h.remoteBase + "/" + path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = r.Body
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, body)
	if err != nil {
		writeProxyError(w)
		return
	}

	for key, values := range r.Header {
		if !shouldForwardHeader(key) {
			continue
		}
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.DebugContext(r.Context(), "Proxying request", "method", r.Method, "target", target)

	resp, err := h.client.Do(req)
	if err != nil {
		logger.ErrorContext(r.Context(), "Proxy upstream unreachable", "error", err, "target", target)
		writeProxyError(w)
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.ErrorContext(r.Context(), "Failed to copy proxy response", "error", err)
	}
}

// shouldForwardHeader drops hop-by-hop and host-identifying headers so
// the upstream sees a clean request.
func shouldForwardHeader(key string) bool {
	key = strings.ToLower(key)
	if strings.HasPrefix(key, "sec-") || strings.HasPrefix(key, "x-forwarded-") {
		return false
	}

	skipHeaders := []string{
		"host",
		"connection",
		"upgrade",
		"proxy-connection",
		"proxy-authenticate",
		"proxy-authorization",
		"te",
		"trailers",
		"transfer-encoding",
		"accept-encoding",
		"content-length",
		"cookie",
	}
	for _, skip := range skipHeaders {
		if key == skip {
			return false
		}
	}
	return true
}

func writeProxyError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "PROXY_ERROR",
		"message": "Unable to reach the server. Try again.",
	})
}

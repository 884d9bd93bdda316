package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID = "x-request-id"
	headerAPIKey    = "x-api-key"
	headerAuth      = "authorization"

	bearerPrefix = "Bearer "
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func apiKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerAPIKey))
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header,
// returning "" when the header is absent or malformed.
func bearerToken(r *http.Request) string {
	value := strings.TrimSpace(r.Header.Get(headerAuth))
	if !strings.HasPrefix(value, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(value, bearerPrefix))
}

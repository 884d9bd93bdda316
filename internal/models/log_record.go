package models

import (
	"strings"
	"time"
)

const (
	MaxEndpointLen = 200
	MinIPLen       = 7
	MaxIPLen       = 45
)

// LogRecord is one observed HTTP request, tagged with its owning API key.
// Aggregate views never mix records across owners.
type LogRecord struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Method      string    `json:"method"`
	Endpoint    string    `json:"endpoint"`
	IP          *string   `json:"ip"`
	ProcessTime float64   `json:"process_time"`
	StatusCode  int       `json:"status_code"`
	APIKeyID    int64     `json:"-"`
}

var allowedMethods = map[string]struct{}{
	"GET":     {},
	"POST":    {},
	"PUT":     {},
	"DELETE":  {},
	"PATCH":   {},
	"OPTIONS": {},
}

// IsAllowedMethod reports whether m is one of the accepted HTTP methods.
// Matching is case-insensitive; the record keeps the casing it arrived with.
func IsAllowedMethod(m string) bool {
	_, ok := allowedMethods[strings.ToUpper(m)]
	return ok
}

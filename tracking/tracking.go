// Package tracking provides an importable net/http middleware that reports
// per-request telemetry to a request-analytics collector. Delivery is best
// effort; a failed or rejected report never affects the wrapped handler.
package tracking

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"time"
)

const (
	headerAPIKey = "x-api-key"

	defaultTimeout = 5 * time.Second
	trackPath      = "/track"
)

// Option customizes a Middleware.
type Option func(*Middleware)

// WithHTTPClient overrides the http client used to deliver reports.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Middleware) {
		m.client = client
	}
}

// Middleware times served requests and posts one log payload per request to
// the collector's /track endpoint.
type Middleware struct {
	baseURL string
	apiKey  string
	client  *http.Client
	now     func() time.Time
}

// New creates a tracking middleware reporting to the collector at baseURL
// (scheme and host, no trailing path) authenticated with apiKey.
func New(baseURL, apiKey string, opts ...Option) *Middleware {
	m := &Middleware{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type logPayload struct {
	CreatedAt   string  `json:"created_at"`
	Method      string  `json:"method"`
	Endpoint    string  `json:"endpoint"`
	IP          *string `json:"ip"`
	ProcessTime float64 `json:"process_time"` // milliseconds
	StatusCode  int     `json:"status_code"`
}

// Handler wraps next so every served request is reported to the collector.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := m.now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		payload := logPayload{
			CreatedAt:   m.now().UTC().Format(time.RFC3339),
			Method:      r.Method,
			Endpoint:    r.URL.Path,
			IP:          clientIP(r),
			ProcessTime: float64(m.now().Sub(start)) / float64(time.Millisecond),
			StatusCode:  recorder.status,
		}
		m.send(payload)
	})
}

// send delivers one payload and discards any failure.
func (m *Middleware) send(payload logPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	req, err := http.NewRequest(http.MethodPost, m.baseURL+trackPath, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()
}

func clientIP(r *http.Request) *string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return nil
	}
	return &host
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

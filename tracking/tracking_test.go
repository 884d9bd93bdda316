package tracking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_ReportsServedRequest(t *testing.T) {
	t.Parallel()

	received := make(chan logPayload, 1)
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/track", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload logPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	clock := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	middleware := New(collector.URL, "test-key")
	middleware.now = func() time.Time {
		clock = clock.Add(25 * time.Millisecond)
		return clock
	}

	wrapped := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
	req.RemoteAddr = "203.0.113.5:54321"
	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusTeapot, recorder.Code)

	select {
	case payload := <-received:
		assert.Equal(t, http.MethodGet, payload.Method)
		assert.Equal(t, "/orders/42", payload.Endpoint)
		require.NotNil(t, payload.IP)
		assert.Equal(t, "203.0.113.5", *payload.IP)
		assert.Equal(t, http.StatusTeapot, payload.StatusCode)
		// The stubbed clock advances 25ms per reading; two readings separate
		// the start from the elapsed-time measurement.
		assert.Equal(t, 50.0, payload.ProcessTime, "elapsed time is reported in milliseconds")

		createdAt, err := time.Parse(time.RFC3339, payload.CreatedAt)
		require.NoError(t, err)
		assert.Equal(t, 2026, createdAt.Year())
	case <-time.After(2 * time.Second):
		t.Fatal("no payload delivered to the collector")
	}
}

func TestMiddleware_DefaultsStatusToOK(t *testing.T) {
	t.Parallel()

	received := make(chan logPayload, 1)
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload logPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
	}))
	defer collector.Close()

	middleware := New(collector.URL, "test-key")
	wrapped := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	}))

	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	select {
	case payload := <-received:
		assert.Equal(t, http.StatusOK, payload.StatusCode)
	case <-time.After(2 * time.Second):
		t.Fatal("no payload delivered to the collector")
	}
}

func TestMiddleware_DeliveryFailureDoesNotAffectResponse(t *testing.T) {
	t.Parallel()

	// Nothing listens on this address; delivery fails silently.
	middleware := New("http://127.0.0.1:1", "test-key",
		WithHTTPClient(&http.Client{Timeout: 200 * time.Millisecond}))

	wrapped := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestMiddleware_RejectedReportDoesNotAffectResponse(t *testing.T) {
	t.Parallel()

	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer collector.Close()

	middleware := New(collector.URL, "revoked-key")
	wrapped := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

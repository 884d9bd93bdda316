package http

import (
	"net/http"
)

// AppHttpHandler is a request handler that reports failures as errors; the
// error handling adapter turns them into structured responses.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

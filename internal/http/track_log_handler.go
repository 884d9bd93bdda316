package http

import (
	"net/http"

	"request-analytics/internal/auth"
	"request-analytics/internal/ingestors"
)

type trackLogHandler struct {
	authService      auth.AuthService
	ingestionService ingestors.IngestionService
}

func NewTrackLogHandler(authService auth.AuthService, ingestionService ingestors.IngestionService) AppHttpHandler {
	return &trackLogHandler{
		authService:      authService,
		ingestionService: ingestionService,
	}
}

// Handle processes POST /track requests: the API key resolves to the owner
// before any core logic runs, then one log record is ingested.
func (h *trackLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	key, err := h.authService.ResolveKey(r.Context(), apiKey(r))
	if err != nil {
		return err
	}

	if _, err := h.ingestionService.Ingest(r.Context(), key.ID, r.Body); err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}

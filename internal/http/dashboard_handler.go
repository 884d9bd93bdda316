package http

import (
	"encoding/json"
	"net/http"

	"request-analytics/internal/aggregators"
	"request-analytics/internal/auth"
	"request-analytics/internal/models"
)

type dashboardHandler struct {
	authService        auth.AuthService
	aggregationService aggregators.AggregationService
	timeSeriesBuckets  int
}

func NewDashboardHandler(authService auth.AuthService, aggregationService aggregators.AggregationService, timeSeriesBuckets int) AppHttpHandler {
	return &dashboardHandler{
		authService:        authService,
		aggregationService: aggregationService,
		timeSeriesBuckets:  timeSeriesBuckets,
	}
}

// Handle processes GET /dashboard requests.
func (h *dashboardHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	key, err := h.authService.ResolveKey(r.Context(), apiKey(r))
	if err != nil {
		return err
	}

	timeRange, err := timeRangeFromQuery(r)
	if err != nil {
		return err
	}

	result, err := h.aggregationService.ComputeDashboard(r.Context(), key.ID, timeRange, h.timeSeriesBuckets)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, result)
}

func timeRangeFromQuery(r *http.Request) (models.TimeRange, error) {
	query := r.URL.Query()
	timeRange, err := models.NewTimeRange(
		query.Get("period"), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		return models.TimeRange{}, errInvalidQueryParams(err.Error(), err)
	}
	return timeRange, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

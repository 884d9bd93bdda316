package http

import (
	"net/http"
	"strconv"
	"time"

	"request-analytics/internal/aggregators"
	"request-analytics/internal/auth"
	"request-analytics/internal/models"
	"request-analytics/internal/stores"
)

type rawLogsHandler struct {
	authService auth.AuthService
	logStore    stores.LogStore
}

func NewRawLogsHandler(authService auth.AuthService, logStore stores.LogStore) AppHttpHandler {
	return &rawLogsHandler{
		authService: authService,
		logStore:    logStore,
	}
}

// rawLogEntry is the wire shape of one listed record; process_time is
// rounded at this boundary.
type rawLogEntry struct {
	ID          int64   `json:"id"`
	CreatedAt   string  `json:"created_at"`
	Method      string  `json:"method"`
	Endpoint    string  `json:"endpoint"`
	IP          *string `json:"ip"`
	ProcessTime float64 `json:"process_time"`
	StatusCode  int     `json:"status_code"`
}

// Handle processes GET /raw_logs requests.
func (h *rawLogsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	key, err := h.authService.ResolveKey(r.Context(), apiKey(r))
	if err != nil {
		return err
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		return err
	}

	records, err := h.logStore.List(r.Context(), key.ID, filter)
	if err != nil {
		return errInternalListFailed(err)
	}

	entries := make([]rawLogEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, rawLogEntry{
			ID:          record.ID,
			CreatedAt:   record.CreatedAt.Format(time.RFC3339),
			Method:      record.Method,
			Endpoint:    record.Endpoint,
			IP:          record.IP,
			ProcessTime: aggregators.Round2(record.ProcessTime),
			StatusCode:  record.StatusCode,
		})
	}

	return writeJSON(w, http.StatusOK, entries)
}

// filterFromQuery decodes FilterParams from the query string, rejecting any
// unparsable value and validating bounds once all fields are read.
func filterFromQuery(r *http.Request) (*models.FilterParams, error) {
	query := r.URL.Query()
	filter := &models.FilterParams{OrderBy: query.Get("order_by")}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQueryParams("limit must be an integer", err)
		}
		filter.Limit = limit
	}
	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQueryParams("offset must be an integer", err)
		}
		filter.Offset = offset
	}
	if v := query.Get("start_date"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return nil, errInvalidQueryParams("start_date must be YYYY-MM-DD", err)
		}
		filter.StartDate = &t
	}
	if v := query.Get("end_date"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return nil, errInvalidQueryParams("end_date must be YYYY-MM-DD", err)
		}
		filter.EndDate = &t
	}
	if v := query.Get("method"); v != "" {
		filter.Method = &v
	}
	if v := query.Get("status_code"); v != "" {
		status, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQueryParams("status_code must be an integer", err)
		}
		filter.StatusCode = &status
	}
	if v := query.Get("ip"); v != "" {
		filter.IP = &v
	}
	if v := query.Get("endpoint"); v != "" {
		filter.Endpoint = &v
	}
	if v := query.Get("process_time_min"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errInvalidQueryParams("process_time_min must be a number", err)
		}
		filter.ProcessTimeMin = &min
	}
	if v := query.Get("process_time_max"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errInvalidQueryParams("process_time_max must be a number", err)
		}
		filter.ProcessTimeMax = &max
	}

	if err := filter.Validate(); err != nil {
		return nil, errInvalidQueryParams(err.Error(), err)
	}
	return filter, nil
}

package http

import (
	"net/http"

	"request-analytics/internal/aggregators"
	"request-analytics/internal/auth"
	"request-analytics/internal/ingestors"
	"request-analytics/internal/reports"
	"request-analytics/internal/shared/loggers"
	"request-analytics/internal/shared/metrics"
	"request-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// RouterConfig carries the handler dependencies and the per-surface
// time-series bucket caps (dashboard default 5, report export 50).
type RouterConfig struct {
	AuthService        auth.AuthService
	IngestionService   ingestors.IngestionService
	AggregationService aggregators.AggregationService
	ReportService      reports.ReportService
	LogStore           stores.LogStore

	DashboardTimeSeriesBuckets int
	ReportTimeSeriesBuckets    int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(cfg RouterConfig, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	trackLogHandler := NewTrackLogHandler(cfg.AuthService, cfg.IngestionService)
	dashboardHandler := NewDashboardHandler(cfg.AuthService, cfg.AggregationService, cfg.DashboardTimeSeriesBuckets)
	rawLogsHandler := NewRawLogsHandler(cfg.AuthService, cfg.LogStore)
	reportHandler := NewReportHandler(cfg.AuthService, cfg.AggregationService, cfg.ReportService, cfg.ReportTimeSeriesBuckets)
	registerHandler := NewRegisterHandler(cfg.AuthService)
	tokenHandler := NewTokenHandler(cfg.AuthService)
	generateKeyHandler := NewGenerateKeyHandler(cfg.AuthService)

	// Routes
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_ = writeJSON(w, http.StatusOK, map[string]string{"msg": "Analytics service OK"})
	})
	router.Post("/track", errorHandlingAdapter(trackLogHandler))
	router.Get("/dashboard", errorHandlingAdapter(dashboardHandler))
	router.Get("/raw_logs", errorHandlingAdapter(rawLogsHandler))
	router.Get("/report", errorHandlingAdapter(reportHandler))
	router.Post("/register", errorHandlingAdapter(registerHandler))
	router.Post("/token", errorHandlingAdapter(tokenHandler))
	router.Post("/generate_key", errorHandlingAdapter(generateKeyHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

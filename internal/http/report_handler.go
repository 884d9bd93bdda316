package http

import (
	"fmt"
	"net/http"

	"request-analytics/internal/aggregators"
	"request-analytics/internal/auth"
	"request-analytics/internal/reports"
)

const reportName = "API Analytics Report"

type reportHandler struct {
	authService        auth.AuthService
	aggregationService aggregators.AggregationService
	reportService      reports.ReportService
	timeSeriesBuckets  int
}

func NewReportHandler(authService auth.AuthService, aggregationService aggregators.AggregationService,
	reportService reports.ReportService, timeSeriesBuckets int) AppHttpHandler {
	return &reportHandler{
		authService:        authService,
		aggregationService: aggregationService,
		reportService:      reportService,
		timeSeriesBuckets:  timeSeriesBuckets,
	}
}

// Handle processes GET /report requests and serves the rendered document as
// a download.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	key, err := h.authService.ResolveKey(r.Context(), apiKey(r))
	if err != nil {
		return err
	}

	timeRange, err := timeRangeFromQuery(r)
	if err != nil {
		return err
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = reports.FormatJSON
	}

	result, err := h.aggregationService.ComputeDashboard(r.Context(), key.ID, timeRange, h.timeSeriesBuckets)
	if err != nil {
		return err
	}

	report := h.reportService.Assemble(reportName, timeRange, result)
	data, contentType, err := h.reportService.Render(report, format)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("report_%s_%s.%s",
		report.Period.StartDate, report.Period.EndDate, format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	return err
}

package reports

import (
	"encoding/json"
	"testing"
	"time"

	"request-analytics/internal/models"
	"request-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *models.AggregateResult {
	avg, min, max := 0.4, 0.1, 0.7
	result := models.NewEmptyAggregateResult()
	result.Summary = models.Summary{
		TotalRequests:   7,
		UniqueIPs:       6,
		AvgResponseTime: &avg,
		MinResponseTime: &min,
		MaxResponseTime: &max,
		ErrorRate:       42.86,
	}
	result.MethodUsage = map[string]int64{"GET": 4, "POST": 2, "DELETE": 1}
	result.StatusCodes = map[int]int64{200: 3, 201: 1, 404: 2, 500: 1}
	result.TopIPs = []models.TopIPEntry{{IP: "203.0.113.5", Requests: 2}}
	result.EndpointStats = []models.EndpointStatsEntry{
		{Endpoint: "/orders", Requests: 3, AvgTime: 0.53, ErrorsCount: 2},
	}
	result.TimeSeries = []models.TimeSeriesEntry{
		{Timestamp: "2026-08-07", Requests: 1, AvgTime: 0.7, ErrorRate: 100},
	}
	return result
}

func sampleTimeRange(t *testing.T) models.TimeRange {
	t.Helper()

	timeRange, err := models.NewTimeRange("daily", "2026-08-01", "2026-08-07")
	require.NoError(t, err)
	return timeRange
}

func TestReportService_Assemble(t *testing.T) {
	t.Parallel()

	generatedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	service := &reportService{now: func() time.Time { return generatedAt }}

	result := sampleResult()
	report := service.Assemble("API Analytics Report", sampleTimeRange(t), result)

	assert.Equal(t, "API Analytics Report", report.ReportName)
	assert.Equal(t, generatedAt, report.GeneratedAt)
	assert.Equal(t, ReportPeriod{
		Granularity: "daily",
		StartDate:   "2026-08-01",
		EndDate:     "2026-08-07",
	}, report.Period)
	assert.Same(t, result, report.Dashboard)
}

func TestReportService_Render_JSON(t *testing.T) {
	t.Parallel()

	generatedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	service := &reportService{now: func() time.Time { return generatedAt }}
	report := service.Assemble("API Analytics Report", sampleTimeRange(t), sampleResult())

	data, contentType, err := service.Render(report, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "API Analytics Report", decoded["report_name"])

	period, ok := decoded["period"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "daily", period["granularity"])
	assert.Equal(t, "2026-08-01", period["start_date"])
	assert.Equal(t, "2026-08-07", period["end_date"])

	dashboard, ok := decoded["dashboard"].(map[string]any)
	require.True(t, ok)
	summary, ok := dashboard["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), summary["total_requests"])
	assert.Equal(t, 42.86, summary["error_rate"])
}

func TestReportService_Render_PDF(t *testing.T) {
	t.Parallel()

	service := NewReportService()
	report := service.Assemble("API Analytics Report", sampleTimeRange(t), sampleResult())

	data, contentType, err := service.Render(report, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReportService_Render_PDF_EmptyDashboard(t *testing.T) {
	t.Parallel()

	service := NewReportService()
	report := service.Assemble("API Analytics Report", sampleTimeRange(t), models.NewEmptyAggregateResult())

	data, contentType, err := service.Render(report, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReportService_Render_UnknownFormat(t *testing.T) {
	t.Parallel()

	service := NewReportService()
	report := service.Assemble("API Analytics Report", sampleTimeRange(t), sampleResult())

	data, contentType, err := service.Render(report, "csv")
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Empty(t, contentType)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_1000", svcErr.Code)
	assert.Equal(t, 400, svcErr.HttpStatusCode)
}

package reports

import (
	"encoding/json"
	"time"

	"request-analytics/internal/models"
	"request-analytics/internal/shared/metrics"
)

const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// ReportPeriod describes the window a report covers.
type ReportPeriod struct {
	Granularity string `json:"granularity"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Report wraps one AggregateResult with export metadata. Rendering never
// mutates the Report; a failed render leaves it intact.
type Report struct {
	ReportName  string                  `json:"report_name"`
	GeneratedAt time.Time               `json:"generated_at"`
	Period      ReportPeriod            `json:"period"`
	Dashboard   *models.AggregateResult `json:"dashboard"`
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	Assemble(name string, timeRange models.TimeRange, result *models.AggregateResult) *Report
	// Render serializes the report in the requested format and returns the
	// document bytes with their content type.
	Render(report *Report, format string) (data []byte, contentType string, err error)
}

type reportService struct {
	now func() time.Time
}

func NewReportService() ReportService {
	return &reportService{now: func() time.Time { return time.Now().UTC() }}
}

func (s *reportService) Assemble(name string, timeRange models.TimeRange, result *models.AggregateResult) *Report {
	return &Report{
		ReportName:  name,
		GeneratedAt: s.now(),
		Period: ReportPeriod{
			Granularity: string(timeRange.Period),
			StartDate:   timeRange.StartDate.Format("2006-01-02"),
			EndDate:     timeRange.EndDate.Format("2006-01-02"),
		},
		Dashboard: result,
	}
}

func (s *reportService) Render(report *Report, format string) ([]byte, string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			svcErr := errRenderFailed(err)
			metricReportGeneratedTotal.WithLabelValues(format, svcErr.Code).Inc()
			return nil, "", svcErr
		}
		metricReportGeneratedTotal.WithLabelValues(format, metrics.ValueNoError).Inc()
		return data, "application/json", nil

	case FormatPDF:
		data, err := renderPDF(report)
		if err != nil {
			svcErr := errRenderFailed(err)
			metricReportGeneratedTotal.WithLabelValues(format, svcErr.Code).Inc()
			return nil, "", svcErr
		}
		metricReportGeneratedTotal.WithLabelValues(format, metrics.ValueNoError).Inc()
		return data, "application/pdf", nil

	default:
		return nil, "", errInvalidFormat(format)
	}
}

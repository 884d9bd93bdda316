package reports

import (
	"request-analytics/internal/shared/metrics"
)

var (
	metricReportGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "report_generated_total",
		},
		[]string{"format", metrics.FieldErrorCode},
	)
)

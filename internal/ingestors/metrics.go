package ingestors

import (
	"request-analytics/internal/shared/metrics"
)

var (
	metricLogIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "log_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)

package auth

import (
	"request-analytics/internal/shared/metrics"
)

var (
	metricKeyResolvedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAuth,
			Name:      "key_resolved_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)

package aggregators

import (
	"request-analytics/internal/shared/metrics"
)

var (
	metricDashboardComputedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "dashboard_computed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricDashboardDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "dashboard_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	).WithLabelValues()
)

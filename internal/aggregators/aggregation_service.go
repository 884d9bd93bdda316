package aggregators

import (
	"context"
	"database/sql"
	"math"
	"time"

	"request-analytics/internal/models"
	"request-analytics/internal/shared/loggers"
	"request-analytics/internal/shared/metrics"
	"request-analytics/internal/stores"
)

// topEntryLimit caps the top-IP and top-endpoint rankings.
const topEntryLimit = 5

// AggregationService computes the dashboard views for one owner over a time
// window. Every view derives from the same owner-scoped, time-filtered
// subset; grouping and ranking are pushed down to the log store. Each call is
// a fresh, idempotent read: store failures are fatal per request and never
// yield a partial result.
//
//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// ComputeDashboard returns the composed aggregate views. An empty subset
	// yields the canonical empty result, never an error. maxBuckets caps the
	// time-series length (most recent buckets first).
	ComputeDashboard(ctx context.Context, apiKeyID int64, timeRange models.TimeRange, maxBuckets int) (*models.AggregateResult, error)
}

type aggregationService struct {
	logStore stores.LogStore
}

func NewAggregationService(logStore stores.LogStore) AggregationService {
	return &aggregationService{logStore: logStore}
}

func (s *aggregationService) ComputeDashboard(ctx context.Context, apiKeyID int64, timeRange models.TimeRange, maxBuckets int) (*models.AggregateResult, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	from, to := timeRange.WindowStart(), timeRange.WindowEnd()
	logger.Debug().
		Int64("api_key_id", apiKeyID).
		Str("period", string(timeRange.Period)).
		Msg("started computing dashboard")

	stats, err := s.logStore.SummaryStats(ctx, apiKeyID, from, to)
	if err != nil {
		return nil, s.failed(err)
	}

	if stats.TotalRequests == 0 {
		metricDashboardComputedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		metricDashboardDuration.Observe(time.Since(start).Seconds())
		return models.NewEmptyAggregateResult(), nil
	}

	methodUsage, err := s.logStore.CountByMethod(ctx, apiKeyID, from, to)
	if err != nil {
		return nil, s.failed(err)
	}
	statusCodes, err := s.logStore.CountByStatus(ctx, apiKeyID, from, to)
	if err != nil {
		return nil, s.failed(err)
	}
	topIPs, err := s.logStore.TopIPs(ctx, apiKeyID, from, to, topEntryLimit)
	if err != nil {
		return nil, s.failed(err)
	}
	endpointRows, err := s.logStore.EndpointStats(ctx, apiKeyID, from, to, topEntryLimit)
	if err != nil {
		return nil, s.failed(err)
	}
	seriesRows, err := s.logStore.TimeSeries(ctx, apiKeyID, from, to, timeRange.Period, maxBuckets)
	if err != nil {
		return nil, s.failed(err)
	}

	result := compose(stats, methodUsage, statusCodes, topIPs, endpointRows, seriesRows)

	metricDashboardComputedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricDashboardDuration.Observe(time.Since(start).Seconds())
	return result, nil
}

func (s *aggregationService) failed(err error) error {
	svcErr := errInternalLogStoreFailed(err)
	metricDashboardComputedTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}

// compose assembles the AggregateResult from raw store rows. This is the one
// place where rounding to two decimals happens.
func compose(stats *stores.SummaryStats, methodUsage map[string]int64, statusCodes map[int]int64,
	topIPs []models.TopIPEntry, endpointRows []stores.EndpointStatsRow, seriesRows []stores.TimeSeriesRow) *models.AggregateResult {

	result := models.NewEmptyAggregateResult()

	result.Summary = models.Summary{
		TotalRequests:   stats.TotalRequests,
		UniqueIPs:       stats.UniqueIPs,
		MinResponseTime: roundedOrZero(stats.MinProcessTime),
		AvgResponseTime: roundedOrZero(stats.AvgProcessTime),
		MaxResponseTime: roundedOrZero(stats.MaxProcessTime),
		ErrorRate:       Round2(float64(stats.ErrorCount) / float64(stats.TotalRequests) * 100),
	}
	result.MethodUsage = methodUsage
	result.StatusCodes = statusCodes
	result.TopIPs = topIPs

	for _, row := range endpointRows {
		result.EndpointStats = append(result.EndpointStats, models.EndpointStatsEntry{
			Endpoint:    row.Endpoint,
			Requests:    row.Requests,
			AvgTime:     Round2(row.AvgTime),
			ErrorsCount: row.ErrorsCount,
		})
	}

	for _, row := range seriesRows {
		result.TimeSeries = append(result.TimeSeries, models.TimeSeriesEntry{
			Timestamp: row.Bucket,
			Requests:  row.Requests,
			AvgTime:   Round2(row.AvgTime),
			ErrorRate: Round2(float64(row.ErrorCount) / float64(row.Requests) * 100),
		})
	}

	return result
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundedOrZero converts a nullable latency stat to a rounded value. The
// subset is known non-empty here, so a null stat collapses to zero.
func roundedOrZero(v sql.NullFloat64) *float64 {
	rounded := 0.0
	if v.Valid {
		rounded = Round2(v.Float64)
	}
	return &rounded
}

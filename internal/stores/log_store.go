package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"request-analytics/internal/models"
)

// SummaryStats carries the unrounded headline aggregates of one owner's
// time-filtered subset. Latency fields are invalid when the subset is empty.
type SummaryStats struct {
	TotalRequests  int64
	UniqueIPs      int64
	MinProcessTime sql.NullFloat64
	AvgProcessTime sql.NullFloat64
	MaxProcessTime sql.NullFloat64
	ErrorCount     int64
}

// EndpointStatsRow is one grouped endpoint row, average time unrounded.
type EndpointStatsRow struct {
	Endpoint    string
	Requests    int64
	AvgTime     float64
	ErrorsCount int64
}

// TimeSeriesRow is one time bucket, keyed by the period-truncated timestamp.
type TimeSeriesRow struct {
	Bucket     string
	Requests   int64
	AvgTime    float64
	ErrorCount int64
}

// LogStore is the persistence surface the core issues logical queries
// against. Every operation is scoped to one owning API key; grouping and
// top-N ranking are pushed down to the engine rather than materialized
// in-process. Any relational engine or in-memory structure satisfies it.
//
//go:generate mockgen -source=log_store.go -destination=./mocks/log_store_mock.go -package=mocks
type LogStore interface {
	Insert(ctx context.Context, record *models.LogRecord) (int64, error)
	List(ctx context.Context, apiKeyID int64, filter *models.FilterParams) ([]*models.LogRecord, error)

	SummaryStats(ctx context.Context, apiKeyID int64, from, to time.Time) (*SummaryStats, error)
	CountByMethod(ctx context.Context, apiKeyID int64, from, to time.Time) (map[string]int64, error)
	CountByStatus(ctx context.Context, apiKeyID int64, from, to time.Time) (map[int]int64, error)
	TopIPs(ctx context.Context, apiKeyID int64, from, to time.Time, limit int) ([]models.TopIPEntry, error)
	EndpointStats(ctx context.Context, apiKeyID int64, from, to time.Time, limit int) ([]EndpointStatsRow, error)
	TimeSeries(ctx context.Context, apiKeyID int64, from, to time.Time, period models.Period, limit int) ([]TimeSeriesRow, error)
}

type sqliteLogStore struct {
	db *sql.DB
}

func NewLogStore(db *sql.DB) LogStore {
	return &sqliteLogStore{db: db}
}

func (s *sqliteLogStore) Insert(ctx context.Context, record *models.LogRecord) (int64, error) {
	var ip any
	if record.IP != nil {
		ip = *record.IP
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO api_logs (created_at, method, endpoint, ip, process_time, status_code, api_key_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		formatTime(record.CreatedAt), record.Method, record.Endpoint, ip,
		record.ProcessTime, record.StatusCode, record.APIKeyID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert log record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

func (s *sqliteLogStore) List(ctx context.Context, apiKeyID int64, filter *models.FilterParams) ([]*models.LogRecord, error) {
	whereClause, args := buildLogFilter(apiKeyID, filter)

	limit, offset, orderBy := models.DefaultLimit, 0, "id"
	if filter != nil {
		limit, offset, orderBy = filter.Limit, filter.Offset, filter.OrderBy
	}
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, method, endpoint, ip, process_time, status_code, api_key_id
		 FROM api_logs`+whereClause+
			` ORDER BY `+orderColumn(orderBy)+` LIMIT ? OFFSET ?`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list log records: %w", err)
	}
	defer rows.Close()

	var records []*models.LogRecord
	for rows.Next() {
		var (
			record    models.LogRecord
			createdAt string
			ip        sql.NullString
		)
		if err := rows.Scan(&record.ID, &createdAt, &record.Method, &record.Endpoint,
			&ip, &record.ProcessTime, &record.StatusCode, &record.APIKeyID); err != nil {
			return nil, fmt.Errorf("failed to scan log record: %w", err)
		}
		record.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored created_at %q: %w", createdAt, err)
		}
		if ip.Valid {
			record.IP = &ip.String
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

func (s *sqliteLogStore) SummaryStats(ctx context.Context, apiKeyID int64, from, to time.Time) (*SummaryStats, error) {
	var stats SummaryStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COUNT(DISTINCT ip),
		        MIN(process_time),
		        AVG(process_time),
		        MAX(process_time),
		        COALESCE(SUM(CASE WHEN status_code BETWEEN 400 AND 599 THEN 1 ELSE 0 END), 0)
		 FROM api_logs
		 WHERE api_key_id = ? AND created_at BETWEEN ? AND ?`,
		apiKeyID, formatTime(from), formatTime(to)).
		Scan(&stats.TotalRequests, &stats.UniqueIPs,
			&stats.MinProcessTime, &stats.AvgProcessTime, &stats.MaxProcessTime,
			&stats.ErrorCount)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary stats: %w", err)
	}
	return &stats, nil
}

func (s *sqliteLogStore) CountByMethod(ctx context.Context, apiKeyID int64, from, to time.Time) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT method, COUNT(*)
		 FROM api_logs
		 WHERE api_key_id = ? AND created_at BETWEEN ? AND ?
		 GROUP BY method`,
		apiKeyID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("failed to count by method: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			method string
			count  int64
		)
		if err := rows.Scan(&method, &count); err != nil {
			return nil, fmt.Errorf("failed to scan method count: %w", err)
		}
		counts[method] = count
	}
	return counts, rows.Err()
}

func (s *sqliteLogStore) CountByStatus(ctx context.Context, apiKeyID int64, from, to time.Time) (map[int]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status_code, COUNT(*)
		 FROM api_logs
		 WHERE api_key_id = ? AND created_at BETWEEN ? AND ?
		 GROUP BY status_code`,
		apiKeyID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int64)
	for rows.Next() {
		var (
			status int
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// TopIPs ranks non-null IPs by descending request count; ties break by
// ascending IP so the ordering is deterministic.
func (s *sqliteLogStore) TopIPs(ctx context.Context, apiKeyID int64, from, to time.Time, limit int) ([]models.TopIPEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ip, COUNT(*) AS requests
		 FROM api_logs
		 WHERE api_key_id = ? AND created_at BETWEEN ? AND ? AND ip IS NOT NULL
		 GROUP BY ip
		 ORDER BY requests DESC, ip ASC
		 LIMIT ?`,
		apiKeyID, formatTime(from), formatTime(to), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top ips: %w", err)
	}
	defer rows.Close()

	entries := []models.TopIPEntry{}
	for rows.Next() {
		var entry models.TopIPEntry
		if err := rows.Scan(&entry.IP, &entry.Requests); err != nil {
			return nil, fmt.Errorf("failed to scan top ip row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *sqliteLogStore) EndpointStats(ctx context.Context, apiKeyID int64, from, to time.Time, limit int) ([]EndpointStatsRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT endpoint,
		        COUNT(*) AS requests,
		        AVG(process_time),
		        SUM(CASE WHEN status_code BETWEEN 400 AND 599 THEN 1 ELSE 0 END)
		 FROM api_logs
		 WHERE api_key_id = ? AND created_at BETWEEN ? AND ?
		 GROUP BY endpoint
		 ORDER BY requests DESC, endpoint ASC
		 LIMIT ?`,
		apiKeyID, formatTime(from), formatTime(to), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute endpoint stats: %w", err)
	}
	defer rows.Close()

	stats := []EndpointStatsRow{}
	for rows.Next() {
		var row EndpointStatsRow
		if err := rows.Scan(&row.Endpoint, &row.Requests, &row.AvgTime, &row.ErrorsCount); err != nil {
			return nil, fmt.Errorf("failed to scan endpoint stats row: %w", err)
		}
		stats = append(stats, row)
	}
	return stats, rows.Err()
}

// TimeSeries groups rows by created_at truncated to the period granularity
// and returns the most recent buckets first, capped at limit.
func (s *sqliteLogStore) TimeSeries(ctx context.Context, apiKeyID int64, from, to time.Time, period models.Period, limit int) ([]TimeSeriesRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT strftime(?, created_at) AS bucket,
		        COUNT(*) AS requests,
		        AVG(process_time),
		        SUM(CASE WHEN status_code BETWEEN 400 AND 599 THEN 1 ELSE 0 END)
		 FROM api_logs
		 WHERE api_key_id = ? AND created_at BETWEEN ? AND ?
		 GROUP BY bucket
		 ORDER BY bucket DESC
		 LIMIT ?`,
		period.StrftimeFormat(), apiKeyID, formatTime(from), formatTime(to), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute time series: %w", err)
	}
	defer rows.Close()

	series := []TimeSeriesRow{}
	for rows.Next() {
		var row TimeSeriesRow
		if err := rows.Scan(&row.Bucket, &row.Requests, &row.AvgTime, &row.ErrorCount); err != nil {
			return nil, fmt.Errorf("failed to scan time series row: %w", err)
		}
		series = append(series, row)
	}
	return series, rows.Err()
}

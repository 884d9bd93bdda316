package stores

import (
	"testing"
	"time"

	"request-analytics/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildLogFilter_NilFilter(t *testing.T) {
	t.Parallel()

	where, args := buildLogFilter(42, nil)

	assert.Equal(t, " WHERE api_key_id = ?", where)
	assert.Equal(t, []any{int64(42)}, args)
}

func TestBuildLogFilter_OwnerAlwaysFirst(t *testing.T) {
	t.Parallel()

	method := "GET"
	where, args := buildLogFilter(42, &models.FilterParams{Method: &method})

	assert.Equal(t, " WHERE api_key_id = ? AND method = ?", where)
	assert.Equal(t, []any{int64(42), "GET"}, args)
}

func TestBuildLogFilter_DateBoundsWidenedToWholeDays(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 8, 1, 13, 45, 0, 0, time.UTC)
	end := time.Date(2026, 8, 7, 2, 0, 0, 0, time.UTC)
	where, args := buildLogFilter(1, &models.FilterParams{StartDate: &start, EndDate: &end})

	assert.Equal(t, " WHERE api_key_id = ? AND created_at >= ? AND created_at <= ?", where)
	assert.Equal(t, []any{int64(1), "2026-08-01 00:00:00", "2026-08-07 23:59:59"}, args)
}

func TestBuildLogFilter_AllPredicates(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)
	method := "GET"
	status := 200
	ip := "203.0.113.5"
	endpoint := "users"
	ptMin, ptMax := 0.1, 0.9

	where, args := buildLogFilter(7, &models.FilterParams{
		StartDate:      &start,
		EndDate:        &end,
		Method:         &method,
		StatusCode:     &status,
		IP:             &ip,
		Endpoint:       &endpoint,
		ProcessTimeMin: &ptMin,
		ProcessTimeMax: &ptMax,
	})

	assert.Equal(t,
		" WHERE api_key_id = ? AND created_at >= ? AND created_at <= ?"+
			" AND method = ? AND status_code = ? AND ip = ? AND endpoint LIKE ?"+
			" AND process_time >= ? AND process_time <= ?",
		where)
	assert.Equal(t, []any{
		int64(7), "2026-08-01 00:00:00", "2026-08-07 23:59:59",
		"GET", 200, "203.0.113.5", "%users%", 0.1, 0.9,
	}, args)
}

func TestOrderColumn_FallsBackToID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "process_time", orderColumn("process_time"))
	assert.Equal(t, "id", orderColumn("password; DROP TABLE api_logs"))
	assert.Equal(t, "id", orderColumn(""))
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeRange_Valid(t *testing.T) {
	t.Parallel()

	tr, err := NewTimeRange("daily", "2026-08-01", "2026-08-07")
	require.NoError(t, err)

	assert.Equal(t, PeriodDaily, tr.Period)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), tr.WindowStart())
	assert.Equal(t, time.Date(2026, 8, 7, 23, 59, 59, 0, time.UTC), tr.WindowEnd())
}

func TestNewTimeRange_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		period    string
		startDate string
		endDate   string
	}{
		{
			name:      "unknown period",
			period:    "yearly",
			startDate: "2026-08-01",
			endDate:   "2026-08-07",
		},
		{
			name:      "malformed start date",
			period:    "daily",
			startDate: "08/01/2026",
			endDate:   "2026-08-07",
		},
		{
			name:      "malformed end date",
			period:    "daily",
			startDate: "2026-08-01",
			endDate:   "not-a-date",
		},
		{
			name:      "start equal to end",
			period:    "daily",
			startDate: "2026-08-01",
			endDate:   "2026-08-01",
		},
		{
			name:      "start after end",
			period:    "daily",
			startDate: "2026-08-07",
			endDate:   "2026-08-01",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTimeRange(tt.period, tt.startDate, tt.endDate)
			assert.Error(t, err)
		})
	}
}

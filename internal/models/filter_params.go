package models

import (
	"fmt"
	"time"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

var orderableFields = map[string]struct{}{
	"id":           {},
	"created_at":   {},
	"method":       {},
	"endpoint":     {},
	"ip":           {},
	"process_time": {},
	"status_code":  {},
}

// FilterParams narrows a raw-log listing. Absent optional fields impose no
// constraint; owner scoping is added by the store, never by the caller.
type FilterParams struct {
	Limit   int
	Offset  int
	OrderBy string

	StartDate *time.Time
	EndDate   *time.Time

	Method         *string
	StatusCode     *int
	IP             *string
	Endpoint       *string
	ProcessTimeMin *float64
	ProcessTimeMax *float64
}

// Validate checks bounds and fills defaults (limit=100, order_by=id).
func (f *FilterParams) Validate() error {
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit < 1 || f.Limit > MaxLimit {
		return fmt.Errorf("limit must be in (0, %d], got %d", MaxLimit, f.Limit)
	}
	if f.Offset < 0 {
		return fmt.Errorf("offset must be >= 0, got %d", f.Offset)
	}

	if f.OrderBy == "" {
		f.OrderBy = "id"
	}
	if _, ok := orderableFields[f.OrderBy]; !ok {
		return fmt.Errorf("order_by must be a log field name, got %q", f.OrderBy)
	}

	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return fmt.Errorf("start_date must not be after end_date")
	}
	if f.ProcessTimeMin != nil && f.ProcessTimeMax != nil && *f.ProcessTimeMin >= *f.ProcessTimeMax {
		return fmt.Errorf("process_time_min must be less than process_time_max")
	}
	return nil
}

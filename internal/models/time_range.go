package models

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// TimeRange is a date-granular query window plus a bucketing period.
// The effective window is [StartDate 00:00:00, EndDate 23:59:59] UTC inclusive.
type TimeRange struct {
	Period    Period
	StartDate time.Time
	EndDate   time.Time
}

// NewTimeRange parses period and YYYY-MM-DD date strings into a TimeRange.
// StartDate must be strictly before EndDate.
func NewTimeRange(period, startDate, endDate string) (TimeRange, error) {
	p, err := NewPeriodFromString(period)
	if err != nil {
		return TimeRange{}, err
	}

	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid start_date: %q", startDate)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid end_date: %q", endDate)
	}

	if !start.Before(end) {
		return TimeRange{}, fmt.Errorf("start_date %q must be before end_date %q", startDate, endDate)
	}

	return TimeRange{Period: p, StartDate: start, EndDate: end}, nil
}

// WindowStart returns the inclusive lower bound of the window.
func (tr TimeRange) WindowStart() time.Time {
	return tr.StartDate
}

// WindowEnd returns the inclusive upper bound of the window (end-of-day).
func (tr TimeRange) WindowEnd() time.Time {
	return tr.EndDate.Add(24*time.Hour - time.Second)
}

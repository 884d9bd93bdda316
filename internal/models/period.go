package models

import (
	"fmt"
	"time"
)

// Period is the bucketing granularity for the time-series view.
type Period string

const (
	PeriodMinutely Period = "minutely"
	PeriodHourly   Period = "hourly"
	PeriodDaily    Period = "daily"
	PeriodWeekly   Period = "weekly"
	PeriodMonthly  Period = "monthly"
)

func NewPeriodFromString(s string) (Period, error) {
	switch Period(s) {
	case PeriodMinutely, PeriodHourly, PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	default:
		return "", fmt.Errorf("invalid period: %q", s)
	}
}

// StrftimeFormat returns the SQLite strftime pattern producing the bucket key
// for this period. Weekly uses the ISO year-week form.
func (p Period) StrftimeFormat() string {
	switch p {
	case PeriodMinutely:
		return "%Y-%m-%d %H:%M"
	case PeriodHourly:
		return "%Y-%m-%d %H"
	case PeriodDaily:
		return "%Y-%m-%d"
	case PeriodWeekly:
		return "%G-W%V"
	case PeriodMonthly:
		return "%Y-%m"
	default:
		panic(fmt.Sprintf("invalid Period: %q", p))
	}
}

// BucketKey truncates t to this period's granularity and formats it the same
// way the store's strftime pattern does.
func (p Period) BucketKey(t time.Time) string {
	utc := t.UTC()

	switch p {
	case PeriodMinutely:
		return utc.Format("2006-01-02 15:04")
	case PeriodHourly:
		return utc.Format("2006-01-02 15")
	case PeriodDaily:
		return utc.Format("2006-01-02")
	case PeriodWeekly:
		year, week := utc.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodMonthly:
		return utc.Format("2006-01")
	default:
		panic(fmt.Sprintf("invalid Period: %q", p))
	}
}

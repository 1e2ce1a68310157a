package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
)

// Interval selects the bucket size for period aggregation.
type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
	IntervalYearly  Interval = "yearly"
)

// ParseInterval converts a user-supplied interval name (case-insensitive)
// into an Interval.
func ParseInterval(s string) (Interval, error) {
	switch Interval(strings.ToLower(s)) {
	case IntervalDaily:
		return IntervalDaily, nil
	case IntervalWeekly:
		return IntervalWeekly, nil
	case IntervalMonthly:
		return IntervalMonthly, nil
	case IntervalYearly:
		return IntervalYearly, nil
	default:
		return "", fmt.Errorf("unknown aggregation interval %q", s)
	}
}

// BucketStart maps a calendar date to the first day of the bucket containing
// it. Weeks follow the ISO convention and start on Monday.
func (i Interval) BucketStart(date time.Time) time.Time {
	d := domain.DateOnly(date)
	switch i {
	case IntervalWeekly:
		offset := (int(d.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
		return d.AddDate(0, 0, -offset)
	case IntervalMonthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	case IntervalYearly:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default: // IntervalDaily
		return d
	}
}

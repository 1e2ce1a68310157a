package domain

import "time"

// DateLayout is the calendar-date format used for entry dates.
// Entries carry no time-of-day component.
const DateLayout = "2006-01-02"

// RPE bounds for a workout entry (Rate of Perceived Exertion scale).
const (
	MinRPE = 1.0
	MaxRPE = 10.0
)

// WorkoutEntry is one recorded workout performance for an account.
// Entries are append-only: once written they are never updated or deleted.
type WorkoutEntry struct {
	ID        string
	AccountID string
	Date      time.Time // Calendar date, normalized to midnight UTC
	DayLabel  string    // Day program the entry was logged under
	Exercise  string
	Sets      int
	Reps      int
	Weight    float64 // kg
	RPE       float64
	Comments  string
	CreatedAt time.Time
}

// Volume is the derived work metric for an entry: sets × reps × weight.
func (e WorkoutEntry) Volume() float64 {
	return float64(e.Sets) * float64(e.Reps) * e.Weight
}

// DateOnly strips any time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

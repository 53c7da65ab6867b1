package entities

import "time"

// DateRange is an inclusive interval of local calendar dates. Both bounds
// are dates (midnight UTC), never timestamps.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a range from two calendar dates.
func NewDateRange(start, end time.Time) *DateRange {
	return &DateRange{Start: start, End: end}
}

// SingleDay builds a one-day range.
func SingleDay(d time.Time) *DateRange {
	return &DateRange{Start: d, End: d}
}

// Contains reports whether the calendar date d falls inside the range,
// bounds included.
func (r *DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

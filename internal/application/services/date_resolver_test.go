package services

import (
	"testing"
	"time"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
)

// newTestResolver pins the clock so week and month arithmetic is stable.
// 2025-10-01 12:00 UTC is a Wednesday; at UTC+9 it is still October 1.
func newTestResolver(t *testing.T, nowUTC time.Time) *DateRangeResolver {
	t.Helper()
	r := NewDateRangeResolver(9)
	r.now = func() time.Time { return nowUTC }
	return r
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveRelativeDates(t *testing.T) {
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC) // Wednesday
	r := newTestResolver(t, now)

	tests := []struct {
		name    string
		message string
		start   time.Time
		end     time.Time
	}{
		{"today", "what's on today", day(2025, time.October, 1), day(2025, time.October, 1)},
		{"tomorrow", "events tomorrow", day(2025, time.October, 2), day(2025, time.October, 2)},
		{"this week ends sunday", "events this week", day(2025, time.October, 1), day(2025, time.October, 5)},
		{"next week is monday to sunday", "next week please", day(2025, time.October, 6), day(2025, time.October, 12)},
		{"this month", "anything this month", day(2025, time.October, 1), day(2025, time.October, 31)},
		{"next month", "what about next month", day(2025, time.November, 1), day(2025, time.November, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := r.Resolve(tt.message)
			if rng == nil {
				t.Fatalf("Resolve(%q) = nil, want range", tt.message)
			}
			if !rng.Start.Equal(tt.start) || !rng.End.Equal(tt.end) {
				t.Errorf("Resolve(%q) = [%s, %s], want [%s, %s]",
					tt.message,
					rng.Start.Format(time.DateOnly), rng.End.Format(time.DateOnly),
					tt.start.Format(time.DateOnly), tt.end.Format(time.DateOnly))
			}
		})
	}
}

func TestResolveWeekBoundaries(t *testing.T) {
	// On a Sunday, "this week" is just that day and "next week" starts the
	// very next day.
	now := time.Date(2025, time.October, 5, 3, 0, 0, 0, time.UTC) // Sunday
	r := newTestResolver(t, now)

	rng := r.Resolve("this week")
	if rng == nil || !rng.Start.Equal(day(2025, time.October, 5)) || !rng.End.Equal(day(2025, time.October, 5)) {
		t.Errorf("this week on a Sunday = %+v, want the single day", rng)
	}

	rng = r.Resolve("next week")
	if rng == nil || !rng.Start.Equal(day(2025, time.October, 6)) || !rng.End.Equal(day(2025, time.October, 12)) {
		t.Errorf("next week on a Sunday = %+v, want Oct 6 to Oct 12", rng)
	}
}

func TestResolveNextMonthYearRollover(t *testing.T) {
	now := time.Date(2025, time.December, 15, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(t, now)

	rng := r.Resolve("events next month")
	if rng == nil {
		t.Fatal("Resolve returned nil")
	}
	if !rng.Start.Equal(day(2026, time.January, 1)) || !rng.End.Equal(day(2026, time.January, 31)) {
		t.Errorf("next month in December = [%s, %s], want January 2026",
			rng.Start.Format(time.DateOnly), rng.End.Format(time.DateOnly))
	}
}

func TestResolveMonthNames(t *testing.T) {
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(t, now)

	// A later month stays in the current year.
	rng := r.Resolve("events in november")
	if rng == nil || rng.Start.Year() != 2025 || rng.Start.Month() != time.November {
		t.Errorf("november resolved to %+v, want November 2025", rng)
	}
	if rng != nil && !rng.End.Equal(day(2025, time.November, 30)) {
		t.Errorf("november end = %s, want 2025-11-30", rng.End.Format(time.DateOnly))
	}

	// An earlier month means its next occurrence.
	rng = r.Resolve("anything in april")
	if rng == nil || rng.Start.Year() != 2026 || rng.Start.Month() != time.April {
		t.Errorf("april resolved to %+v, want April 2026", rng)
	}

	// The current month stays in the current year.
	rng = r.Resolve("october events")
	if rng == nil || rng.Start.Year() != 2025 || rng.Start.Month() != time.October {
		t.Errorf("october resolved to %+v, want October 2025", rng)
	}
}

func TestResolveExplicitDates(t *testing.T) {
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(t, now)

	rng := r.Resolve("what's on 2025-10-03")
	if rng == nil || !rng.Start.Equal(day(2025, time.October, 3)) || !rng.End.Equal(day(2025, time.October, 3)) {
		t.Errorf("ISO date resolved to %+v, want 2025-10-03", rng)
	}

	// Slash dates are month first; a missing year means the current year.
	rng = r.Resolve("events on 10/3")
	if rng == nil || !rng.Start.Equal(day(2025, time.October, 3)) {
		t.Errorf("10/3 resolved to %+v, want 2025-10-03", rng)
	}

	rng = r.Resolve("events on 12/25/2026")
	if rng == nil || !rng.Start.Equal(day(2026, time.December, 25)) {
		t.Errorf("12/25/2026 resolved to %+v, want 2026-12-25", rng)
	}

	// Two-digit years are 2000-based.
	rng = r.Resolve("3/1/26")
	if rng == nil || !rng.Start.Equal(day(2026, time.March, 1)) {
		t.Errorf("3/1/26 resolved to %+v, want 2026-03-01", rng)
	}
}

func TestResolveMalformedDates(t *testing.T) {
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(t, now)

	tests := []struct {
		name    string
		message string
	}{
		{"normalizing date rejected", "events on 2025-02-30"},
		{"month out of range", "events on 13/5/2025"},
		{"no temporal constraint", "any sports events"},
		{"empty message", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rng := r.Resolve(tt.message); rng != nil {
				t.Errorf("Resolve(%q) = %+v, want nil", tt.message, rng)
			}
		})
	}
}

func TestRangeContainsIsInclusive(t *testing.T) {
	rng := entities.NewDateRange(day(2025, time.October, 1), day(2025, time.October, 5))

	if !rng.Contains(day(2025, time.October, 1)) || !rng.Contains(day(2025, time.October, 5)) {
		t.Error("range must include both endpoints")
	}
	if rng.Contains(day(2025, time.September, 30)) || rng.Contains(day(2025, time.October, 6)) {
		t.Error("range must exclude dates outside the endpoints")
	}
}

package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
	"github.com/sejongtown/campus-assistant/pkg/utils"
)

// dateRule pairs a resolver step with its phrase or pattern. Like the
// intent rules, the order is the contract: the first step that produces a
// range wins and later steps are never consulted.
type dateRule func(t string, today time.Time) *entities.DateRange

// DateRangeResolver maps relative and absolute date phrases to inclusive
// calendar-date intervals. "Today" is the current local calendar date at
// the configured fixed UTC offset.
type DateRangeResolver struct {
	location *time.Location
	now      func() time.Time
	rules    []dateRule
}

var monthsOfYear = []struct {
	name  string
	month time.Month
}{
	{"january", time.January}, {"february", time.February}, {"march", time.March},
	{"april", time.April}, {"may", time.May}, {"june", time.June},
	{"july", time.July}, {"august", time.August}, {"september", time.September},
	{"october", time.October}, {"november", time.November}, {"december", time.December},
}

var (
	isoDatePattern   = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	slashDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
)

// NewDateRangeResolver creates a resolver for the given fixed UTC offset.
func NewDateRangeResolver(offsetHours int) *DateRangeResolver {
	r := &DateRangeResolver{
		location: time.FixedZone(fmt.Sprintf("UTC+%d", offsetHours), offsetHours*3600),
		now:      time.Now,
	}
	r.rules = []dateRule{
		resolveToday,
		resolveTomorrow,
		resolveThisWeek,
		resolveNextWeek,
		resolveThisMonth,
		resolveNextMonth,
		resolveMonthName,
		resolveISODate,
		resolveSlashDate,
	}
	return r
}

// Resolve returns the date range a message expresses, or nil when it
// carries no temporal constraint. Malformed numeric tokens fall through to
// the next step rather than erroring.
func (r *DateRangeResolver) Resolve(message string) *entities.DateRange {
	t := strings.ToLower(strings.TrimSpace(message))
	if t == "" {
		return nil
	}
	today := utils.DateOnly(r.now().In(r.location))
	for _, rule := range r.rules {
		if rng := rule(t, today); rng != nil {
			return rng
		}
	}
	return nil
}

func resolveToday(t string, today time.Time) *entities.DateRange {
	if !strings.Contains(t, "today") {
		return nil
	}
	return entities.SingleDay(today)
}

func resolveTomorrow(t string, today time.Time) *entities.DateRange {
	if !strings.Contains(t, "tomorrow") {
		return nil
	}
	return entities.SingleDay(today.AddDate(0, 0, 1))
}

// mondayIndexedWeekday maps Monday to 0 and Sunday to 6.
func mondayIndexedWeekday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

func resolveThisWeek(t string, today time.Time) *entities.DateRange {
	if !strings.Contains(t, "this week") {
		return nil
	}
	end := today.AddDate(0, 0, 6-mondayIndexedWeekday(today))
	return entities.NewDateRange(today, end)
}

func resolveNextWeek(t string, today time.Time) *entities.DateRange {
	if !strings.Contains(t, "next week") {
		return nil
	}
	start := today.AddDate(0, 0, 7-mondayIndexedWeekday(today))
	return entities.NewDateRange(start, start.AddDate(0, 0, 6))
}

func resolveThisMonth(t string, today time.Time) *entities.DateRange {
	if !strings.Contains(t, "this month") {
		return nil
	}
	return monthSpan(today.Year(), today.Month())
}

func resolveNextMonth(t string, today time.Time) *entities.DateRange {
	if !strings.Contains(t, "next month") {
		return nil
	}
	// time.Date normalizes month 13 to January of the following year.
	next := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return monthSpan(next.Year(), next.Month())
}

// resolveMonthName resolves a bare month name to its full span. A month
// earlier than the current one is assumed to mean its upcoming occurrence
// next year; the current month itself stays in the current year.
func resolveMonthName(t string, today time.Time) *entities.DateRange {
	for _, m := range monthsOfYear {
		if !strings.Contains(t, m.name) {
			continue
		}
		year := today.Year()
		if m.month < today.Month() {
			year++
		}
		return monthSpan(year, m.month)
	}
	return nil
}

func resolveISODate(t string, _ time.Time) *entities.DateRange {
	m := isoDatePattern.FindStringSubmatch(t)
	if m == nil {
		return nil
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return singleDayIfValid(year, month, day)
}

// resolveSlashDate resolves MM/DD and MM/DD/YYYY tokens, month first. A
// missing year means the current year; a two-digit year is 2000-based.
func resolveSlashDate(t string, today time.Time) *entities.DateRange {
	m := slashDatePattern.FindStringSubmatch(t)
	if m == nil {
		return nil
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year := today.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}
	return singleDayIfValid(year, month, day)
}

// singleDayIfValid builds a one-day range, rejecting tokens that time.Date
// would silently normalize (month 13, February 30).
func singleDayIfValid(year, month, day int) *entities.DateRange {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return nil
	}
	return entities.SingleDay(d)
}

func monthSpan(year int, month time.Month) *entities.DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the following month is the last day of this one.
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return entities.NewDateRange(start, end)
}

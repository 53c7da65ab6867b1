package utils

import (
	"fmt"
	"strings"
	"time"
)

const eventTimestampLayout = "2006-01-02T15:04:05"

// EventLocalDate converts a stored UTC event timestamp into the local
// calendar date for the given fixed hour offset. The timestamp may carry a
// trailing "Z" and fractional seconds; only the first 19 characters are
// parsed. An empty timestamp yields the zero time and no error (the event
// has no date); a malformed one yields an error that the caller must handle
// per event. No timezone-table lookup is performed, only the additive
// offset.
func EventLocalDate(timestamp string, offsetHours int) (time.Time, error) {
	trimmed := strings.TrimSpace(timestamp)
	if trimmed == "" {
		return time.Time{}, nil
	}
	trimmed = strings.TrimSuffix(trimmed, "Z")
	if len(trimmed) < len(eventTimestampLayout) {
		return time.Time{}, fmt.Errorf("event timestamp %q is too short", timestamp)
	}

	instant, err := time.Parse(eventTimestampLayout, trimmed[:len(eventTimestampLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event timestamp %q: %w", timestamp, err)
	}

	local := instant.Add(time.Duration(offsetHours) * time.Hour)
	return DateOnly(local), nil
}

// UTCTimestamp is the inverse of EventLocalDate for a local calendar date:
// it renders the UTC instant whose local date, after applying the offset,
// is d.
func UTCTimestamp(d time.Time, offsetHours int) string {
	utc := DateOnly(d).Add(-time.Duration(offsetHours) * time.Hour)
	return utc.Format(eventTimestampLayout) + "Z"
}

// DateOnly truncates t to its calendar date, represented as midnight UTC so
// dates from different sources compare directly.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

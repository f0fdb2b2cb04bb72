package dateutil

import (
	"time"
)

const (
	DateLayout      = "2006-01-02"
	DateTimeLayout  = "2006-01-02 15:04:05"
	ShortDateLayout = "1/2"

	DefaultDatePlaceholder = "-"
)

// BusinessDate truncates a timestamp to its calendar date, keeping location.
func BusinessDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatNullableTime formats a time pointer or returns the default placeholder.
func FormatNullableTime(t *time.Time, layout string) string {
	if t == nil {
		return DefaultDatePlaceholder
	}
	if layout == "" {
		layout = time.RFC3339
	}
	return t.Format(layout)
}

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

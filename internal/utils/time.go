package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutTimestamp is java.util.Date#toString ("EEE MMM dd HH:mm:ss zzz yyyy"),
	// the date format the web client sends and expects back.
	LayoutTimestamp = "Mon Jan 02 15:04:05 MST 2006"

	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseTimestamp parses LayoutTimestamp, falling back to RFC 3339 and YYYY-MM-DD.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(LayoutTimestamp, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := ParseDate(s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q, want format %q", s, LayoutTimestamp)
}

// FormatTimestamp formats t as LayoutTimestamp in local timezone.
func FormatTimestamp(t time.Time) string {
	return t.In(time.Local).Format(LayoutTimestamp)
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// StartOfDay keeps the calendar date of t as written (in t's own zone) and
// returns local midnight of that date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DaysBetween counts whole calendar days from a to b, ignoring DST shifts.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

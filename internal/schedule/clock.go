package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts a "HH:MM" string to minutes since midnight.
// Missing or malformed components default to zero, so "9" parses as
// 09:00 and garbage parses as 00:00. It never fails; owner-entered
// hours are best-effort data.
func ParseClock(s string) int {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)

	hours := 0
	if len(parts) > 0 {
		if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			hours = h
		}
	}

	minutes := 0
	if len(parts) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minutes = m
		}
	}

	return hours*60 + minutes
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Weekday returns the day of week for date using the Monday=0 convention.
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// SameDate reports whether a and b fall on the same calendar date,
// ignoring the time of day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

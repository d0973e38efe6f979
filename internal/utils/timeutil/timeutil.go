// Package timeutil converts between clock-time strings, epoch millisecond
// timestamps and human-readable durations. All record timestamps in the
// system are epoch milliseconds; display strings are derived from them here.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidFormat = errors.New("invalid time format")

const minutesPerDay = 24 * 60

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return hour, minute, nil
}

// DurationBetween returns the span from start to end as "{h}h {m}m".
// A negative span is treated as crossing midnight once, so the result is
// never negative. "00:00" to "00:00" yields "0h 0m".
func DurationBetween(start, end string) (string, error) {
	sh, sm, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	eh, em, err := ParseClock(end)
	if err != nil {
		return "", err
	}

	minutes := (eh*60 + em) - (sh*60 + sm)
	if minutes < 0 {
		minutes += minutesPerDay
	}

	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60), nil
}

// To12Hour converts a 24-hour "HH:MM" string to "H:MM AM|PM".
func To12Hour(s string) (string, error) {
	hour, minute, err := ParseClock(s)
	if err != nil {
		return "", err
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, period), nil
}

// DateToEpoch returns epoch milliseconds at local midnight of a
// "YYYY-MM-DD" date.
func DateToEpoch(date string) (int64, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, date)
	}
	return t.UnixMilli(), nil
}

// FormatClock renders an epoch millisecond timestamp as local 24-hour "HH:MM".
func FormatClock(ts int64) string {
	return time.UnixMilli(ts).Local().Format("15:04")
}

// FormatDate renders an epoch millisecond timestamp as local "YYYY-MM-DD".
func FormatDate(ts int64) string {
	return time.UnixMilli(ts).Local().Format("2006-01-02")
}

// SameDay reports whether two epoch millisecond timestamps fall on the same
// local calendar day.
func SameDay(a, b int64) bool {
	ay, am, ad := time.UnixMilli(a).Local().Date()
	by, bm, bd := time.UnixMilli(b).Local().Date()
	return ay == by && am == bm && ad == bd
}

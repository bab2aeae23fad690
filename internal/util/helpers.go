package util

import (
	"fmt"
	"time"
)

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FormatMMSS renders seconds as MM:SS. Negative input renders as 00:00.
func FormatMMSS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// WeekDates returns n consecutive calendar days starting at the date of start.
func WeekDates(start time.Time, n int) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, day.AddDate(0, 0, i))
	}
	return dates
}

// FormatDates formats each date with layout.
func FormatDates(dates []time.Time, layout string) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(layout)
	}
	return out
}

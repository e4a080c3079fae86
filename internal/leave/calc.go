// Package leave computes the duration field of a leave application.
package leave

import (
	"errors"
	"time"

	"adeia/internal/catalog"
)

// ErrInvalidRange is returned when the end date precedes the start date.
var ErrInvalidRange = errors.New("end date before start date")

// CalculateDays returns the inclusive day count between start and end. A
// single-day leave counts as 1.
func CalculateDays(start, end time.Time) (int, error) {
	start, end = truncate(start), truncate(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// CalculateWorkingDays counts only the days in [start, end] that are neither
// Saturday/Sunday nor a recognized holiday. Zero is a valid result: a range
// that falls entirely on excluded days yields 0, not an error.
func CalculateWorkingDays(start, end time.Time, holidays []catalog.Holiday) (int, error) {
	start, end = truncate(start), truncate(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}

	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		if isHoliday(day, holidays) {
			continue
		}
		count++
	}
	return count, nil
}

// isHoliday reports whether day matches a catalog holiday. Fixed holidays
// match on month-day in any year, year-specific ones only on their exact
// date.
func isHoliday(day time.Time, holidays []catalog.Holiday) bool {
	monthDay := day.Format("01-02")
	fullDate := day.Format("2006-01-02")
	for _, h := range holidays {
		if h.IsFixed {
			switch len(h.Date) {
			case len("01-02"):
				if h.Date == monthDay {
					return true
				}
			case len("2006-01-02"):
				if h.Date[5:] == monthDay {
					return true
				}
			}
			continue
		}
		if h.Date == fullDate {
			return true
		}
	}
	return false
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package utils

import (
	"time"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/constants"
)

// DayKey formats an absolute timestamp as the canonical YYYY-MM-DD key,
// always in UTC regardless of the local timezone.
func DayKey(t time.Time) string {
	return t.UTC().Format(constants.DateFormat)
}

// ParseDay parses a day key into midnight UTC of that day.
func ParseDay(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Today returns the current day key.
func Today() string {
	return DayKey(time.Now())
}

// AddMonthsClamped steps a date forward by whole calendar months,
// preserving the day-of-month and clamping to the last day when the
// target month is shorter (Jan 31 + 1 month = Feb 28/29). Unlike
// time.AddDate it never rolls over into the following month.
func AddMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := t.Day()
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

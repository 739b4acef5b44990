package calendar

import "time"

// Calendar answers holiday questions for a fixed locale. Implementations
// are read-only and safe for concurrent use.
type Calendar interface {
	IsHoliday(date time.Time) bool
	Locale() string
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkable reports whether the date is neither a weekend nor a holiday
// in the given calendar.
func IsWorkable(cal Calendar, date time.Time) bool {
	return !IsWeekend(date) && !cal.IsHoliday(date)
}

package utils

import (
	"time"
)

const ISODateLayout = "2006-01-02"

// FormatDate renders a time as the YYYY-MM-DD string used everywhere
// as the date key.
func FormatDate(t time.Time) string {
	return t.Format(ISODateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(ISODateLayout, s)
}

// ISOWeekday maps a date to the 1=Monday .. 7=Sunday convention.
// Go's native time.Weekday has Sunday=0, which becomes 7.
func ISOWeekday(t time.Time) int {
	native := int(t.Weekday())
	if native == 0 {
		return 7
	}
	return native
}

// MonthBounds returns the first and last day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// CalendarDays returns the full Sunday-first grid for t's month:
// the month padded with leading and trailing days so the grid is
// whole weeks from the Sunday on or before the 1st through the
// Saturday on or after the last day.
func CalendarDays(t time.Time) []time.Time {
	start, end := MonthBounds(t)
	gridStart := start.AddDate(0, 0, -int(start.Weekday()))
	gridEnd := end.AddDate(0, 0, 6-int(end.Weekday()))

	days := make([]time.Time, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func IsToday(t time.Time) bool {
	return IsSameDay(t, time.Now())
}

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayName names a 1..7 weekday; out-of-range values yield "Unknown".
func WeekdayName(weekday int) string {
	if weekday < 1 || weekday > 7 {
		return "Unknown"
	}
	return weekdayNames[weekday-1]
}

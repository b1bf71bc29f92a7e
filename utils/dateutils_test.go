package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected int
	}{
		{"Sunday maps to 7", "2024-01-14", 7},
		{"Monday maps to 1", "2024-01-15", 1},
		{"Tuesday maps to 2", "2024-08-27", 2},
		{"Wednesday maps to 3", "2024-01-17", 3},
		{"Thursday maps to 4", "2024-01-18", 4},
		{"Friday maps to 5", "2024-01-19", 5},
		{"Saturday maps to 6", "2024-01-20", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ISOWeekday(date))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	date := time.Date(2024, time.August, 27, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-08-27", FormatDate(date))

	parsed, err := ParseDate("2024-08-27")
	assert.NoError(t, err)
	assert.True(t, IsSameDay(date, parsed))

	_, err = ParseDate("27/08/2024")
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	mid := time.Date(2024, time.February, 14, 12, 30, 0, 0, time.UTC)
	start, end := MonthBounds(mid)
	assert.Equal(t, "2024-02-01", FormatDate(start))
	assert.Equal(t, "2024-02-29", FormatDate(end))
}

func TestCalendarDays(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantFirst string
		wantLast  string
		wantLen   int
	}{
		// Feb 2024 starts Thursday, ends Thursday (leap year).
		{"February 2024", "2024-02-01", "2024-01-28", "2024-03-02", 35},
		// Jun 2024 starts Saturday, ends Sunday: six full weeks.
		{"June 2024", "2024-06-01", "2024-05-26", "2024-07-06", 42},
		// Sep 2024 starts on a Sunday, so no leading padding.
		{"September 2024", "2024-09-01", "2024-09-01", "2024-10-05", 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, err := ParseDate(tt.month)
			assert.NoError(t, err)

			days := CalendarDays(month)
			assert.Len(t, days, tt.wantLen)
			assert.Equal(t, tt.wantFirst, FormatDate(days[0]))
			assert.Equal(t, tt.wantLast, FormatDate(days[len(days)-1]))

			assert.Zero(t, tt.wantLen%7, "grid must be whole weeks")
			assert.Equal(t, time.Sunday, days[0].Weekday())
			assert.Equal(t, time.Saturday, days[len(days)-1].Weekday())
		})
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Monday", WeekdayName(1))
	assert.Equal(t, "Tuesday", WeekdayName(2))
	assert.Equal(t, "Sunday", WeekdayName(7))
	assert.Equal(t, "Unknown", WeekdayName(0))
	assert.Equal(t, "Unknown", WeekdayName(8))
}

package dateutil

import (
	"fmt"
	"time"
)

// SQL-style day-of-week numbers, Sunday = 1 through Saturday = 7.
const (
	Sunday    = 1
	Monday    = 2
	Tuesday   = 3
	Wednesday = 4
	Thursday  = 5
	Friday    = 6
	Saturday  = 7
)

var dayNames = [8]string{
	"", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Date returns the given calendar date at UTC midnight
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00 UTC) for the given date
func StartOfDay(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), date.Day())
}

// SQLWeekday returns the SQL-convention day of the week for the given date,
// counting from Sunday = 1 to Saturday = 7
func SQLWeekday(date time.Time) int {
	return int(date.Weekday()) + 1
}

// IsWeekendDay returns true if the SQL day-of-week number is Saturday or Sunday
func IsWeekendDay(dayOfWeek int) bool {
	return dayOfWeek == Sunday || dayOfWeek == Saturday
}

// IsLastDayOfMonth returns true if the next day falls in a different month
func IsLastDayOfMonth(date time.Time) bool {
	return date.AddDate(0, 0, 1).Month() != date.Month()
}

// DayOfYear returns the day of the calendar year, 1..366
func DayOfYear(date time.Time) int {
	return date.YearDay()
}

// WeekOfYear returns the week of the calendar year using the US convention:
// week 1 begins on the first Sunday on or after January 1, and days before
// that Sunday also belong to week 1. This matches strftime("%U") + 1, NOT
// ISO 8601 week numbering.
func WeekOfYear(date time.Time) int {
	yday := date.YearDay() - 1  // 0-based
	wday := int(date.Weekday()) // 0 = Sunday
	return (yday+7-wday)/7 + 1
}

// Quarter returns the calendar-year quarter (1..4) for a month.
// Panics on a month outside 1..12.
func Quarter(month time.Month) int {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("dateutil: month out of range: %d", month))
	}
	return (int(month)-1)/3 + 1
}

// DayName returns the full name of the day for a SQL day-of-week number.
// Panics on a number outside 1..7.
func DayName(dayOfWeek int) string {
	if dayOfWeek < Sunday || dayOfWeek > Saturday {
		panic(fmt.Sprintf("dateutil: day of week out of range: %d", dayOfWeek))
	}
	return dayNames[dayOfWeek]
}

// MonthName returns the full name of the month.
// Panics on a month outside 1..12.
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("dateutil: month out of range: %d", month))
	}
	return monthNames[month]
}

// DaysBetween returns the number of whole days from one date to another
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// ParseDate parses a date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// FormatDate formats a date as an ISO 8601 date string
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

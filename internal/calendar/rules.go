// Package calendar implements the holiday and work-day rules used to build
// the date dimension tables: U.S. federal-style fixed holidays with their
// observed-on-weekday shifts, floating nth-weekday-of-month holidays, and
// the pay-date adjustment applied to biweekly pay periods.
package calendar

import (
	"time"

	"github.com/username/datedim/pkg/dateutil"
)

// NthWeekdayOfMonth returns the date of the nth occurrence of the given
// weekday (SQL numbering, Sunday = 1) in a month, e.g. the 4th Thursday of
// November. The caller must pass an n that stays inside the month; no
// overflow check is performed.
func NthWeekdayOfMonth(n, weekday int, month time.Month, year int) time.Time {
	firstDay := dateutil.Date(year, month, 1)
	firstWeekday := dateutil.SQLWeekday(firstDay)
	daysOffset := (weekday - firstWeekday + 7) % 7

	return firstDay.AddDate(0, 0, daysOffset+(n-1)*7)
}

// IsFixedHoliday reports whether the date is an observed fixed-date holiday:
// New Year's Day, Independence Day, or Christmas Day. A holiday falling on
// Saturday is observed the preceding Friday, on Sunday the following Monday.
func IsFixedHoliday(date time.Time) bool {
	dayOfWeek := dateutil.SQLWeekday(date)
	isWeekday := dayOfWeek > dateutil.Sunday && dayOfWeek < dateutil.Saturday
	isFriday := dayOfWeek == dateutil.Friday
	isMonday := dayOfWeek == dateutil.Monday

	month, day := date.Month(), date.Day()

	// New Year's Day
	onWeekday := month == time.January && day == 1 && isWeekday
	onSaturday := month == time.December && day == 31 && isFriday
	onSunday := month == time.January && day == 2 && isMonday
	if onWeekday || onSaturday || onSunday {
		return true
	}

	// Independence Day
	onWeekday = month == time.July && day == 4 && isWeekday
	onSaturday = month == time.July && day == 3 && isFriday
	onSunday = month == time.July && day == 5 && isMonday
	if onWeekday || onSaturday || onSunday {
		return true
	}

	// Christmas Day
	onWeekday = month == time.December && day == 25 && isWeekday
	onSaturday = month == time.December && day == 24 && isFriday
	onSunday = month == time.December && day == 26 && isMonday
	if onWeekday || onSaturday || onSunday {
		return true
	}

	return false
}

// IsFloatingHoliday reports whether the date is a floating holiday defined by
// an nth-weekday-of-month rule: Martin Luther King Jr. Day (3rd Monday of
// January, observed from 1986 onward), Memorial Day (last Monday of May),
// Labor Day (1st Monday of September), Thanksgiving (4th Thursday of
// November), and the day after Thanksgiving (4th Friday of November).
func IsFloatingHoliday(date time.Time) bool {
	year := date.Year()

	switch {
	case date.Equal(NthWeekdayOfMonth(3, dateutil.Monday, time.January, year)):
		// MLK Day was first observed federally in 1986
		return year >= 1986
	case date.Equal(NthWeekdayOfMonth(1, dateutil.Monday, time.September, year)):
		return true
	case date.Equal(NthWeekdayOfMonth(4, dateutil.Thursday, time.November, year)):
		return true
	case date.Equal(NthWeekdayOfMonth(4, dateutil.Friday, time.November, year)):
		return true
	}

	// Memorial Day: a Monday in May on or after the 25th is the last Monday
	return date.Month() == time.May &&
		dateutil.SQLWeekday(date) == dateutil.Monday &&
		date.Day() >= 25
}

// IsHoliday reports whether the date is any holiday
func IsHoliday(date time.Time) bool {
	return IsFixedHoliday(date) || IsFloatingHoliday(date)
}

// IsWorkDay reports whether the date is neither a weekend day nor a holiday
func IsWorkDay(date time.Time) bool {
	return !IsHoliday(date) && !dateutil.IsWeekendDay(dateutil.SQLWeekday(date))
}

// AdjustPayDate shifts a pay date back one day when it falls on a holiday.
// The shift is skipped when the pay period starts on the day after
// Thanksgiving: shifting those pay dates back would collide with
// Thanksgiving itself.
func AdjustPayDate(payDate, periodStart time.Time) time.Time {
	blackFriday := NthWeekdayOfMonth(4, dateutil.Friday, time.November, periodStart.Year())
	if IsHoliday(payDate) && !dateutil.IsSameDay(periodStart, blackFriday) {
		return payDate.AddDate(0, 0, -1)
	}
	return payDate
}

// Package tables builds the calendar dimension tables: one row per day,
// one row per biweekly pay period, and one row per calendar year.
package tables

import "time"

// DateRow is one day of the date dimension table. All attributes except
// IsPayDay are fixed at build time; IsPayDay is set by a second pass once
// the pay periods are known.
type DateRow struct {
	Date             time.Time
	Year             int
	Month            int
	Day              int
	DayOfWeek        int // 1 = Sunday .. 7 = Saturday
	IsLastDayOfMonth bool
	IsWeekend        bool
	IsHoliday        bool
	IsWorkDay        bool
	IsPayDay         bool
	DayOfWeekName    string
	MonthName        string
	Quarter          int
	DayOfYear        int
	WeekOfYear       int
}

// PayPeriod is one 14-day pay period. WorkDaysInYearStart and
// WorkDaysInYearEnd count non-weekend days inside the period's own 14-day
// window attributed to the start and end year; for non-split periods the two
// counts are equal.
type PayPeriod struct {
	ID                  int // YearStart*100 + Number, e.g. 199401
	StartDate           time.Time
	EndDate             time.Time
	Index               int // global 1-based position in the series
	Number              int // per-year sequence, resets at each year's first period
	YearStart           int
	YearEnd             int
	IsSplitYear         bool
	Holidays            int
	WorkDaysInYearStart int
	WorkDaysInYearEnd   int
	HoursInYearStart    int
	HoursInYearEnd      int
	PayDate             time.Time
	PayYear             int
}

// YearRow is one calendar year of the year dimension table. WorkDays and
// Holidays can overlap with WeekDays/WeekendDays, so WorkDays + Holidays
// need not equal TotalDays; WeekDays + WeekendDays always does.
type YearRow struct {
	Year           int
	TotalDays      int
	WorkDays       int
	Holidays       int
	WeekDays       int
	WeekendDays    int
	WorkHours      int
	PayPeriods     int
	IsLeap         bool
	IsPresElection bool
	IsInauguration bool
}

// Tables bundles the three generated dimension tables
type Tables struct {
	Dates      []DateRow
	PayPeriods []PayPeriod
	Years      []YearRow
}

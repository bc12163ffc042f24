package tables

import "sort"

const (
	daysPerYear     = 365
	daysPerLeapYear = 366
)

// IsLeapYear reports whether the year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return daysPerLeapYear
	}
	return daysPerYear
}

// BuildYears aggregates the date table and the pay-period table into one row
// per distinct year present in the date table, ascending. Years without any
// pay period get a zero count rather than being dropped.
func BuildYears(rows []DateRow, periods []PayPeriod, hoursPerDay int) []YearRow {
	type counts struct {
		workDays    int
		holidays    int
		weekDays    int
		weekendDays int
	}

	byYear := make(map[int]*counts)
	var years []int
	for _, r := range rows {
		c, ok := byYear[r.Year]
		if !ok {
			c = &counts{}
			byYear[r.Year] = c
			years = append(years, r.Year)
		}
		if r.IsWorkDay {
			c.workDays++
		}
		if r.IsHoliday {
			c.holidays++
		}
		if r.IsWeekend {
			c.weekendDays++
		} else {
			c.weekDays++
		}
	}
	sort.Ints(years)

	periodsByYear := make(map[int]int)
	for _, p := range periods {
		periodsByYear[p.YearStart]++
	}

	out := make([]YearRow, 0, len(years))
	for _, year := range years {
		c := byYear[year]
		out = append(out, YearRow{
			Year:           year,
			TotalDays:      DaysInYear(year),
			WorkDays:       c.workDays,
			Holidays:       c.holidays,
			WeekDays:       c.weekDays,
			WeekendDays:    c.weekendDays,
			WorkHours:      c.weekDays * hoursPerDay,
			PayPeriods:     periodsByYear[year],
			IsLeap:         IsLeapYear(year),
			IsPresElection: year%4 == 0,
			IsInauguration: year%4 == 1,
		})
	}

	return out
}

package tables

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/datedim/internal/calendar"
	"github.com/username/datedim/pkg/dateutil"
)

// PayPeriodConfig fixes the biweekly grid: the first period's start date,
// the last start date the series may begin on, and the hours credited per
// work day.
type PayPeriodConfig struct {
	FirstStart      time.Time
	LastStart       time.Time
	WorkHoursPerDay int
}

// BuildPayPeriods partitions the anchor date forward in 14-day steps into
// pay periods, while each period's start date stays on or before
// cfg.LastStart. Day counts come from the date table rows inside each
// period's own window; the date table must cover every period in full.
func BuildPayPeriods(rows []DateRow, cfg PayPeriodConfig) ([]PayPeriod, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty date table")
	}
	if cfg.WorkHoursPerDay <= 0 {
		return nil, fmt.Errorf("work hours per day must be positive, got %d", cfg.WorkHoursPerDay)
	}
	if cfg.LastStart.Before(cfg.FirstStart) {
		return nil, fmt.Errorf("last pay period start %s before first %s",
			dateutil.FormatDate(cfg.LastStart), dateutil.FormatDate(cfg.FirstStart))
	}

	index := make(map[time.Time]int, len(rows))
	for i, r := range rows {
		index[r.Date] = i
	}

	var periods []PayPeriod
	globalIndex := 1
	number := 1

	for start := dateutil.StartOfDay(cfg.FirstStart); !start.After(cfg.LastStart); start = start.AddDate(0, 0, 14) {
		end := start.AddDate(0, 0, 13)

		startIdx, ok := index[start]
		if !ok {
			return nil, fmt.Errorf("date range does not cover pay period start %s",
				dateutil.FormatDate(start))
		}
		endIdx, ok := index[end]
		if !ok {
			return nil, fmt.Errorf("date range does not cover pay period end %s",
				dateutil.FormatDate(end))
		}

		yearStart := rows[startIdx].Year
		yearEnd := end.Year()

		var holidays, startYearWorkDays, endYearWorkDays int
		for i := startIdx; i <= endIdx; i++ {
			r := rows[i]
			if r.IsHoliday {
				holidays++
			}
			if !r.IsWeekend {
				if r.Year == yearStart {
					startYearWorkDays++
				}
				if r.Year == yearEnd {
					endYearWorkDays++
				}
			}
		}

		payDate := calendar.AdjustPayDate(end.AddDate(0, 0, 6), start)

		periods = append(periods, PayPeriod{
			ID:                  yearStart*100 + number,
			StartDate:           start,
			EndDate:             end,
			Index:               globalIndex,
			Number:              number,
			YearStart:           yearStart,
			YearEnd:             yearEnd,
			IsSplitYear:         yearStart != yearEnd,
			Holidays:            holidays,
			WorkDaysInYearStart: startYearWorkDays,
			WorkDaysInYearEnd:   endYearWorkDays,
			HoursInYearStart:    startYearWorkDays * cfg.WorkHoursPerDay,
			HoursInYearEnd:      endYearWorkDays * cfg.WorkHoursPerDay,
			PayDate:             payDate,
			PayYear:             payDate.Year(),
		})

		// The per-year sequence keeps counting while the period stays inside
		// one calendar year and doesn't end exactly on Dec 31; otherwise the
		// next period is the new year's first.
		if yearStart == yearEnd && !end.Equal(dateutil.Date(yearStart, time.December, 31)) {
			number++
		} else {
			number = 1
		}
		globalIndex++
	}

	return periods, nil
}

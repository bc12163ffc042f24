package tables

import (
	"fmt"
	"time"

	"github.com/username/datedim/internal/calendar"
	"github.com/username/datedim/pkg/dateutil"
)

// BuildDates expands an inclusive date range into one DateRow per day in
// ascending order. IsPayDay is left false; ApplyPayDays sets it once the pay
// periods are built. An inverted range is a caller error.
func BuildDates(start, end time.Time) ([]DateRow, error) {
	start = dateutil.StartOfDay(start)
	end = dateutil.StartOfDay(end)
	if end.Before(start) {
		return nil, fmt.Errorf("invalid date range: end %s before start %s",
			dateutil.FormatDate(end), dateutil.FormatDate(start))
	}

	rows := make([]DateRow, 0, dateutil.DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dayOfWeek := dateutil.SQLWeekday(d)
		weekend := dateutil.IsWeekendDay(dayOfWeek)
		holiday := calendar.IsHoliday(d)

		rows = append(rows, DateRow{
			Date:             d,
			Year:             d.Year(),
			Month:            int(d.Month()),
			Day:              d.Day(),
			DayOfWeek:        dayOfWeek,
			IsLastDayOfMonth: dateutil.IsLastDayOfMonth(d),
			IsWeekend:        weekend,
			IsHoliday:        holiday,
			IsWorkDay:        !weekend && !holiday,
			DayOfWeekName:    dateutil.DayName(dayOfWeek),
			MonthName:        dateutil.MonthName(d.Month()),
			Quarter:          dateutil.Quarter(d.Month()),
			DayOfYear:        dateutil.DayOfYear(d),
			WeekOfYear:       dateutil.WeekOfYear(d),
		})
	}

	return rows, nil
}

// ApplyPayDays sets IsPayDay on the row matching each pay period's adjusted
// pay date. A pay date outside the date table's range means the configured
// range does not cover the pay-period series and is a hard error.
func ApplyPayDays(rows []DateRow, periods []PayPeriod) error {
	index := make(map[time.Time]int, len(rows))
	for i, r := range rows {
		index[r.Date] = i
	}

	for _, p := range periods {
		i, ok := index[p.PayDate]
		if !ok {
			return fmt.Errorf("pay date %s of period %d falls outside the date range",
				dateutil.FormatDate(p.PayDate), p.ID)
		}
		rows[i].IsPayDay = true
	}

	return nil
}

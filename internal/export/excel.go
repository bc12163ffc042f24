// Package export writes the generated dimension tables to an Excel workbook,
// one sheet per table.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/username/datedim/internal/tables"
	"github.com/username/datedim/pkg/dateutil"
)

// SheetSpec is one worksheet: a title, a header row, and string rows
type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Workbook builds a three-sheet workbook from the generated tables
func Workbook(t *tables.Tables) (*excelize.File, error) {
	return newWorkbook([]SheetSpec{
		datesSheet(t.Dates),
		payPeriodsSheet(t.PayPeriods),
		yearsSheet(t.Years),
	})
}

func newWorkbook(sheets []SheetSpec) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, s := range sheets {
		name := s.Title
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("new sheet: %w", err)
			}
		}

		for col, h := range s.Header {
			cell := fmt.Sprintf("%s1", colName(col+1))
			if err := f.SetCellStr(name, cell, h); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		// bold header row with an auto-filter
		end := colName(len(s.Header)) + "1"
		_ = f.SetCellStyle(name, "A1", end, bold)
		_ = f.AutoFilter(name, "A1:"+end, nil)

		for r, row := range s.Rows {
			for c, val := range row {
				cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
				if err := f.SetCellStr(name, cell, val); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}

		// heuristic widths from the header and the first rows
		for c := 1; c <= len(s.Header); c++ {
			widest := len(s.Header[c-1])
			for r := 0; r < min(50, len(s.Rows)); r++ {
				if l := len(s.Rows[r][c-1]); l > widest {
					widest = l
				}
			}
			w := float64(widest) * 0.9
			if w < 12 {
				w = 12
			}
			if w > 40 {
				w = 40
			}
			_ = f.SetColWidth(name, colName(c), colName(c), w)
		}
	}

	return f, nil
}

func datesSheet(rows []tables.DateRow) SheetSpec {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			dateutil.FormatDate(r.Date),
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Day),
			strconv.Itoa(r.DayOfWeek),
			strconv.FormatBool(r.IsLastDayOfMonth),
			strconv.FormatBool(r.IsWeekend),
			strconv.FormatBool(r.IsHoliday),
			strconv.FormatBool(r.IsWorkDay),
			strconv.FormatBool(r.IsPayDay),
			r.DayOfWeekName,
			r.MonthName,
			strconv.Itoa(r.Quarter),
			strconv.Itoa(r.DayOfYear),
			strconv.Itoa(r.WeekOfYear),
		}
	}
	return SheetSpec{
		Title: "Dates",
		Header: []string{
			"DateDate", "DateYear", "DateMonth", "DateDay", "DateDayOfWeek",
			"IsLastDayOfMonth", "IsWeekend", "IsHoliday", "IsWorkDay", "IsPayDay",
			"DayOfWeekName", "NameOfMonth", "CYQuarter", "CYDay", "CYWeek",
		},
		Rows: out,
	}
}

func payPeriodsSheet(rows []tables.PayPeriod) SheetSpec {
	out := make([][]string, len(rows))
	for i, p := range rows {
		out[i] = []string{
			strconv.Itoa(p.ID),
			dateutil.FormatDate(p.StartDate),
			dateutil.FormatDate(p.EndDate),
			strconv.Itoa(p.Index),
			strconv.Itoa(p.Number),
			strconv.Itoa(p.YearStart),
			strconv.Itoa(p.YearEnd),
			strconv.FormatBool(p.IsSplitYear),
			strconv.Itoa(p.Holidays),
			strconv.Itoa(p.WorkDaysInYearStart),
			strconv.Itoa(p.WorkDaysInYearEnd),
			strconv.Itoa(p.HoursInYearStart),
			strconv.Itoa(p.HoursInYearEnd),
			dateutil.FormatDate(p.PayDate),
			strconv.Itoa(p.PayYear),
		}
	}
	return SheetSpec{
		Title: "PayPeriods",
		Header: []string{
			"PayPeriodID", "StartDate", "EndDate", "PPIndex", "PPNumber",
			"YearStart", "YearEnd", "IsSplitYear", "Holidays",
			"WorkDaysInYearStart", "WorkDaysInYearEnd",
			"HoursInYearStart", "HoursInYearEnd", "PayDate", "PayYear",
		},
		Rows: out,
	}
}

func yearsSheet(rows []tables.YearRow) SheetSpec {
	out := make([][]string, len(rows))
	for i, y := range rows {
		out[i] = []string{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.TotalDays),
			strconv.Itoa(y.WorkDays),
			strconv.Itoa(y.Holidays),
			strconv.Itoa(y.WeekDays),
			strconv.Itoa(y.WeekendDays),
			strconv.Itoa(y.WorkHours),
			strconv.Itoa(y.PayPeriods),
			strconv.FormatBool(y.IsLeap),
			strconv.FormatBool(y.IsPresElection),
			strconv.FormatBool(y.IsInauguration),
		}
	}
	return SheetSpec{
		Title: "Years",
		Header: []string{
			"YearYear", "TotalDays", "WorkDays", "Holidays", "WeekDays",
			"WeekendDays", "WorkHours", "PayPeriods", "IsLeap",
			"IsPresElection", "IsInauguration",
		},
		Rows: out,
	}
}

// colName converts a 1-based column number to the A..Z, AA.. naming
func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}
	return s
}

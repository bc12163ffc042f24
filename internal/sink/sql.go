package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/datedim/internal/tables"
	"github.com/username/datedim/pkg/dateutil"
)

// insertChunkRows keeps multi-row INSERTs well under both drivers'
// bind-variable limits at the widest table (15 columns).
const insertChunkRows = 500

var datesColumns = []string{
	"DateDate", "DateYear", "DateMonth", "DateDay", "DateDayOfWeek",
	"IsLastDayOfMonth", "IsWeekend", "IsHoliday", "IsWorkDay", "IsPayDay",
	"DayOfWeekName", "NameOfMonth", "CYQuarter", "CYDay", "CYWeek",
}

var payPeriodsColumns = []string{
	"PayPeriodID", "StartDate", "EndDate", "PPIndex", "PPNumber",
	"YearStart", "YearEnd", "IsSplitYear", "Holidays",
	"WorkDaysInYearStart", "WorkDaysInYearEnd",
	"HoursInYearStart", "HoursInYearEnd", "PayDate", "PayYear",
}

var yearsColumns = []string{
	"YearYear", "TotalDays", "WorkDays", "Holidays", "WeekDays",
	"WeekendDays", "WorkHours", "PayPeriods", "IsLeap",
	"IsPresElection", "IsInauguration",
}

// SQLSink implements TableSink over database/sql for Postgres and SQLite
type SQLSink struct {
	db     *sql.DB
	driver string
	logger *zap.Logger
}

// NewSQLSink creates a sink for an open database connection
func NewSQLSink(db *sql.DB, driver string, logger *zap.Logger) *SQLSink {
	return &SQLSink{
		db:     db,
		driver: driver,
		logger: logger,
	}
}

// WriteDates appends the date dimension rows to the named table
func (s *SQLSink) WriteDates(ctx context.Context, table string, rows []tables.DateRow) error {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{
			s.dateArg(r.Date), r.Year, r.Month, r.Day, r.DayOfWeek,
			r.IsLastDayOfMonth, r.IsWeekend, r.IsHoliday, r.IsWorkDay, r.IsPayDay,
			r.DayOfWeekName, r.MonthName, r.Quarter, r.DayOfYear, r.WeekOfYear,
		}
	}
	return s.insert(ctx, table, datesColumns, values)
}

// WritePayPeriods appends the pay-period rows to the named table
func (s *SQLSink) WritePayPeriods(ctx context.Context, table string, rows []tables.PayPeriod) error {
	values := make([][]any, len(rows))
	for i, p := range rows {
		values[i] = []any{
			p.ID, s.dateArg(p.StartDate), s.dateArg(p.EndDate), p.Index, p.Number,
			p.YearStart, p.YearEnd, p.IsSplitYear, p.Holidays,
			p.WorkDaysInYearStart, p.WorkDaysInYearEnd,
			p.HoursInYearStart, p.HoursInYearEnd, s.dateArg(p.PayDate), p.PayYear,
		}
	}
	return s.insert(ctx, table, payPeriodsColumns, values)
}

// WriteYears appends the year dimension rows to the named table
func (s *SQLSink) WriteYears(ctx context.Context, table string, rows []tables.YearRow) error {
	values := make([][]any, len(rows))
	for i, y := range rows {
		values[i] = []any{
			y.Year, y.TotalDays, y.WorkDays, y.Holidays, y.WeekDays,
			y.WeekendDays, y.WorkHours, y.PayPeriods, y.IsLeap,
			y.IsPresElection, y.IsInauguration,
		}
	}
	return s.insert(ctx, table, yearsColumns, values)
}

// Truncate removes all rows from the named table
func (s *SQLSink) Truncate(ctx context.Context, table string) error {
	qualified, err := quoteQualified(table, s.driver)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+qualified); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", table, err)
	}
	s.logger.Info("Table truncated", zap.String("table", table))
	return nil
}

// insert writes all rows to the table in one transaction, in chunks of
// multi-row INSERT statements.
func (s *SQLSink) insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	qualified, err := quoteQualified(table, s.driver)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	prefix := fmt.Sprintf("INSERT INTO %s (%s) VALUES ",
		qualified, `"`+strings.Join(columns, `", "`)+`"`)

	for offset := 0; offset < len(rows); offset += insertChunkRows {
		chunk := rows[offset:min(offset+insertChunkRows, len(rows))]

		var b strings.Builder
		b.WriteString(prefix)
		args := make([]any, 0, len(chunk)*len(columns))
		for i, row := range chunk {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(s.placeholders(len(args), len(columns)))
			args = append(args, row...)
		}

		if _, err := tx.ExecContext(ctx, b.String(), args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insert into %s: %w", table, err)
	}

	s.logger.Info("Table written",
		zap.String("table", table),
		zap.Int("rows", len(rows)))

	return nil
}

// placeholders renders one row's placeholder group, e.g. ($4, $5, $6) for
// Postgres or (?, ?, ?) for SQLite.
func (s *SQLSink) placeholders(used, count int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if s.driver == DriverPostgres {
			fmt.Fprintf(&b, "$%d", used+i+1)
		} else {
			b.WriteByte('?')
		}
	}
	b.WriteByte(')')
	return b.String()
}

// dateArg converts a date for binding. SQLite stores dates as ISO strings;
// pgx binds time.Time natively.
func (s *SQLSink) dateArg(t time.Time) any {
	if s.driver == DriverSQLite {
		return dateutil.FormatDate(t)
	}
	return t
}

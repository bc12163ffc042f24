package sink

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/datedim/internal/tables"
	"github.com/username/datedim/pkg/dateutil"
)

func TestSplitQualifiedName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSchema string
		wantTable  string
		wantErr    bool
	}{
		{"bare table", "Dates", "", "Dates", false},
		{"schema qualified", "dbo.Dates", "dbo", "Dates", false},
		{"too many parts", "db.dbo.Dates", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, table, err := SplitQualifiedName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SplitQualifiedName(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitQualifiedName(%q) error = %v", tt.input, err)
			}
			if schema != tt.wantSchema || table != tt.wantTable {
				t.Errorf("SplitQualifiedName(%q) = %q, %q, want %q, %q",
					tt.input, schema, table, tt.wantSchema, tt.wantTable)
			}
		})
	}
}

func TestQualifyTable(t *testing.T) {
	if got := QualifyTable("dbo", "Dates"); got != "dbo.Dates" {
		t.Errorf("QualifyTable(dbo, Dates) = %q", got)
	}
	if got := QualifyTable("", "Dates"); got != "Dates" {
		t.Errorf("QualifyTable(empty, Dates) = %q", got)
	}
}

func TestPlaceholders(t *testing.T) {
	pg := &SQLSink{driver: DriverPostgres}
	if got := pg.placeholders(3, 2); got != "($4, $5)" {
		t.Errorf("postgres placeholders = %q, want ($4, $5)", got)
	}

	lite := &SQLSink{driver: DriverSQLite}
	if got := lite.placeholders(3, 2); got != "(?, ?)" {
		t.Errorf("sqlite placeholders = %q, want (?, ?)", got)
	}
}

func openTestDB(t *testing.T) *SQLSink {
	t.Helper()

	db, err := Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	// each sqlite :memory: connection is its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := Migrate(db, DriverSQLite); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewSQLSink(db, DriverSQLite, zap.NewNop())
}

func TestSQLSinkRoundTrip(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	dates, err := tables.BuildDates(dateutil.Date(2025, time.January, 1), dateutil.Date(2025, time.March, 31))
	if err != nil {
		t.Fatalf("BuildDates() error = %v", err)
	}
	periods := []tables.PayPeriod{
		{
			ID:        202501,
			StartDate: dateutil.Date(2025, time.January, 12),
			EndDate:   dateutil.Date(2025, time.January, 25),
			Index:     1, Number: 1,
			YearStart: 2025, YearEnd: 2025,
			WorkDaysInYearStart: 10, WorkDaysInYearEnd: 10,
			HoursInYearStart: 80, HoursInYearEnd: 80,
			PayDate: dateutil.Date(2025, time.January, 31),
			PayYear: 2025,
		},
	}
	years := tables.BuildYears(dates, periods, 8)

	if err := s.WriteDates(ctx, "Dates", dates); err != nil {
		t.Fatalf("WriteDates() error = %v", err)
	}
	if err := s.WritePayPeriods(ctx, "PayPeriods", periods); err != nil {
		t.Fatalf("WritePayPeriods() error = %v", err)
	}
	if err := s.WriteYears(ctx, "Years", years); err != nil {
		t.Fatalf("WriteYears() error = %v", err)
	}

	counts := map[string]int{"Dates": len(dates), "PayPeriods": 1, "Years": 1}
	for table, want := range counts {
		var got int
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "`+table+`"`).Scan(&got); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s row count = %d, want %d", table, got, want)
		}
	}

	var holidayName string
	err = s.db.QueryRowContext(ctx,
		`SELECT "DayOfWeekName" FROM "Dates" WHERE "DateDate" = ? AND "IsHoliday"`,
		"2025-01-01").Scan(&holidayName)
	if err != nil {
		t.Fatalf("holiday lookup: %v", err)
	}
	if holidayName != "Wednesday" {
		t.Errorf("New Year's Day 2025 weekday = %q, want Wednesday", holidayName)
	}
}

func TestSQLSinkTruncate(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	years := []tables.YearRow{{Year: 2025, TotalDays: 365}}
	if err := s.WriteYears(ctx, "Years", years); err != nil {
		t.Fatalf("WriteYears() error = %v", err)
	}
	if err := s.Truncate(ctx, "Years"); err != nil {
		t.Fatalf("Truncate() error = %v", err)
	}

	var got int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "Years"`).Scan(&got); err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != 0 {
		t.Errorf("row count after Truncate = %d, want 0", got)
	}
}

package tables

import (
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/datedim/pkg/dateutil"
)

func TestGeneratorRun(t *testing.T) {
	cfg := PayPeriodConfig{
		FirstStart:      dateutil.Date(2024, time.January, 7),
		LastStart:       dateutil.Date(2025, time.November, 30),
		WorkHoursPerDay: 8,
	}
	gen := NewGenerator(
		dateutil.Date(2024, time.January, 1),
		dateutil.Date(2025, time.December, 31),
		cfg,
		zap.NewNop(),
	)

	got, err := gen.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(got.Dates) != 731 {
		t.Errorf("date rows = %d, want 731", len(got.Dates))
	}
	if len(got.Years) != 2 {
		t.Errorf("year rows = %d, want 2", len(got.Years))
	}

	// Every pay date must be flagged in the date table.
	payDays := make(map[time.Time]bool)
	for _, r := range got.Dates {
		if r.IsPayDay {
			payDays[r.Date] = true
		}
	}
	for _, p := range got.PayPeriods {
		if !payDays[p.PayDate] {
			t.Errorf("pay date %s of period %d not flagged", dateutil.FormatDate(p.PayDate), p.ID)
		}
	}

	// Re-running an identical configuration must reproduce the tables.
	again, err := gen.Run()
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Error("identical runs produced different tables")
	}
}

func TestGeneratorRunUncoveredRange(t *testing.T) {
	cfg := PayPeriodConfig{
		FirstStart:      dateutil.Date(2024, time.January, 7),
		LastStart:       dateutil.Date(2024, time.December, 22),
		WorkHoursPerDay: 8,
	}
	gen := NewGenerator(
		dateutil.Date(2024, time.January, 1),
		dateutil.Date(2024, time.December, 31),
		cfg,
		zap.NewNop(),
	)

	if _, err := gen.Run(); err == nil {
		t.Fatal("Run() expected error when the range does not cover the pay periods")
	}
}

package tables

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Generator runs the full table build for a date range: the date table
// first, then the pay periods derived from it, the pay-day overlay, and
// finally the per-year aggregates.
type Generator struct {
	start  time.Time
	end    time.Time
	payCfg PayPeriodConfig
	logger *zap.Logger
}

// NewGenerator creates a generator for the given inclusive date range
func NewGenerator(start, end time.Time, payCfg PayPeriodConfig, logger *zap.Logger) *Generator {
	return &Generator{
		start:  start,
		end:    end,
		payCfg: payCfg,
		logger: logger,
	}
}

// Run builds all three dimension tables. The result is deterministic for a
// given range and pay-period configuration.
func (g *Generator) Run() (*Tables, error) {
	g.logger.Info("Building date table",
		zap.Time("start", g.start),
		zap.Time("end", g.end))

	dates, err := BuildDates(g.start, g.end)
	if err != nil {
		return nil, fmt.Errorf("failed to build date table: %w", err)
	}

	g.logger.Info("Building pay periods",
		zap.Time("first_start", g.payCfg.FirstStart),
		zap.Time("last_start", g.payCfg.LastStart),
		zap.Int("work_hours_per_day", g.payCfg.WorkHoursPerDay))

	periods, err := BuildPayPeriods(dates, g.payCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build pay periods: %w", err)
	}

	if err := ApplyPayDays(dates, periods); err != nil {
		return nil, fmt.Errorf("failed to apply pay days: %w", err)
	}

	years := BuildYears(dates, periods, g.payCfg.WorkHoursPerDay)

	g.logger.Info("Tables built",
		zap.Int("dates", len(dates)),
		zap.Int("pay_periods", len(periods)),
		zap.Int("years", len(years)))

	return &Tables{
		Dates:      dates,
		PayPeriods: periods,
		Years:      years,
	}, nil
}

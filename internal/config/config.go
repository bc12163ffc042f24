package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/username/datedim/pkg/dateutil"
)

// Drivers accepted by database.driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config represents application configuration
type Config struct {
	Range      RangeConfig      `mapstructure:"range"`
	PayPeriods PayPeriodsConfig `mapstructure:"pay_periods"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Export     ExportConfig     `mapstructure:"export"`
	Log        LogConfig        `mapstructure:"log"`
}

// RangeConfig bounds the date dimension table
type RangeConfig struct {
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`
}

// PayPeriodsConfig fixes the biweekly pay-period grid
type PayPeriodsConfig struct {
	FirstStart      string `mapstructure:"first_start"`
	LastStart       string `mapstructure:"last_start"`
	WorkHoursPerDay int    `mapstructure:"work_hours_per_day"`
}

// DatabaseConfig represents the destination database
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Schema string `mapstructure:"schema"` // table qualifier, empty for none
}

// ExportConfig represents the Excel export destination
type ExportConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // console logger when empty
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datedim")
		v.AddConfigPath("/etc/datedim")
	}

	// Defaults match the ranges the warehouse has always been seeded with.
	v.SetDefault("range.start_date", "1983-01-01")
	v.SetDefault("range.end_date", "2086-01-31")
	v.SetDefault("pay_periods.first_start", "2025-01-12")
	v.SetDefault("pay_periods.last_start", "2085-12-22")
	v.SetDefault("pay_periods.work_hours_per_day", 8)
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("export.path", "datedim.xlsx")
	v.SetDefault("log.level", "info")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	start, end, err := c.Range.Dates()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("range.end_date %s is before range.start_date %s",
			c.Range.EndDate, c.Range.StartDate)
	}

	firstStart, lastStart, err := c.PayPeriods.Dates()
	if err != nil {
		return err
	}
	if lastStart.Before(firstStart) {
		return fmt.Errorf("pay_periods.last_start %s is before pay_periods.first_start %s",
			c.PayPeriods.LastStart, c.PayPeriods.FirstStart)
	}
	if firstStart.Before(start) {
		return fmt.Errorf("pay_periods.first_start %s is before range.start_date %s",
			c.PayPeriods.FirstStart, c.Range.StartDate)
	}
	// The last pay date is at most last_start + 13 + 6 days; the range must
	// cover it so the pay-day overlay cannot fail.
	if lastPayDate := lastStart.AddDate(0, 0, 19); end.Before(lastPayDate) {
		return fmt.Errorf("range.end_date %s does not cover the last possible pay date %s",
			c.Range.EndDate, dateutil.FormatDate(lastPayDate))
	}

	if c.PayPeriods.WorkHoursPerDay <= 0 {
		return fmt.Errorf("pay_periods.work_hours_per_day must be positive, got %d",
			c.PayPeriods.WorkHoursPerDay)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q",
			DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	return nil
}

// Dates returns the parsed start and end of the date range
func (r *RangeConfig) Dates() (start, end time.Time, err error) {
	start, err = dateutil.ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("range.start_date: %w", err)
	}
	end, err = dateutil.ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("range.end_date: %w", err)
	}
	return start, end, nil
}

// Dates returns the parsed first and last pay-period start dates
func (p *PayPeriodsConfig) Dates() (firstStart, lastStart time.Time, err error) {
	firstStart, err = dateutil.ParseDate(p.FirstStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("pay_periods.first_start: %w", err)
	}
	lastStart, err = dateutil.ParseDate(p.LastStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("pay_periods.last_start: %w", err)
	}
	return firstStart, lastStart, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/username/datedim/internal/config"
	"github.com/username/datedim/internal/export"
	"github.com/username/datedim/internal/sink"
	"github.com/username/datedim/internal/tables"
	"github.com/username/datedim/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "datedim",
		Short: "Calendar dimension table generator",
		Long:  "Generate date, pay-period and year dimension tables with US federal holiday rules and load them into a warehouse",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(loadCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(previewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadCmd() *cobra.Command {
	var dryRun bool
	var truncate bool
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Generate the dimension tables and load them into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := generate(cfg)
			if err != nil {
				return err
			}

			if dryRun {
				printSummary(out)
				fmt.Println("\n[DRY RUN] Nothing was written to the database")
				return nil
			}

			db, err := sink.Open(cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if !skipMigrations {
				if err := sink.Migrate(db, cfg.Database.Driver); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
			}

			s := sink.NewSQLSink(db, cfg.Database.Driver, logger)
			ctx := context.Background()

			datesTable := sink.QualifyTable(cfg.Database.Schema, "Dates")
			periodsTable := sink.QualifyTable(cfg.Database.Schema, "PayPeriods")
			yearsTable := sink.QualifyTable(cfg.Database.Schema, "Years")

			if truncate {
				for _, table := range []string{datesTable, periodsTable, yearsTable} {
					if err := s.Truncate(ctx, table); err != nil {
						return fmt.Errorf("failed to truncate %s: %w", table, err)
					}
				}
			}

			if err := s.WriteDates(ctx, datesTable, out.Dates); err != nil {
				return fmt.Errorf("failed to write dates: %w", err)
			}
			if err := s.WritePayPeriods(ctx, periodsTable, out.PayPeriods); err != nil {
				return fmt.Errorf("failed to write pay periods: %w", err)
			}
			if err := s.WriteYears(ctx, yearsTable, out.Years); err != nil {
				return fmt.Errorf("failed to write years: %w", err)
			}

			printSummary(out)
			fmt.Printf("\nLoaded into %s (%s)\n", cfg.Database.DSN, cfg.Database.Driver)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate the tables without touching the database")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Delete existing rows before loading")
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not run schema migrations before loading")

	return cmd
}

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate the dimension tables and save them as an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				path = cfg.Export.Path
			}

			out, err := generate(cfg)
			if err != nil {
				return err
			}

			f, err := export.Workbook(out)
			if err != nil {
				return fmt.Errorf("failed to build workbook: %w", err)
			}
			defer f.Close()

			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create export directory: %w", err)
				}
			}
			if err := f.SaveAs(path); err != nil {
				return fmt.Errorf("failed to save workbook: %w", err)
			}

			printSummary(out)
			fmt.Printf("\nSaved workbook to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Workbook path (defaults to export.path from config)")

	return cmd
}

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Generate the dimension tables and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := generate(cfg)
			if err != nil {
				return err
			}

			printSummary(out)

			fmt.Println("\nFirst pay periods:")
			fmt.Println("  ID     | Start      | End        | PayDate    | WorkDays | Holidays")
			fmt.Println("---------+------------+------------+------------+----------+---------")
			for i, p := range out.PayPeriods {
				if i >= 5 {
					break
				}
				fmt.Printf("  %d | %s | %s | %s | %8d | %8d\n",
					p.ID,
					dateutil.FormatDate(p.StartDate),
					dateutil.FormatDate(p.EndDate),
					dateutil.FormatDate(p.PayDate),
					p.WorkDaysInYearStart,
					p.Holidays)
			}
			return nil
		},
	}
}

func generate(cfg *config.Config) (*tables.Tables, error) {
	start, end, err := cfg.Range.Dates()
	if err != nil {
		return nil, err
	}
	firstStart, lastStart, err := cfg.PayPeriods.Dates()
	if err != nil {
		return nil, err
	}

	gen := tables.NewGenerator(start, end, tables.PayPeriodConfig{
		FirstStart:      firstStart,
		LastStart:       lastStart,
		WorkHoursPerDay: cfg.PayPeriods.WorkHoursPerDay,
	}, logger)

	return gen.Run()
}

func printSummary(out *tables.Tables) {
	fmt.Printf("Generated %d dates (%s .. %s), %d pay periods, %d years\n",
		len(out.Dates),
		dateutil.FormatDate(out.Dates[0].Date),
		dateutil.FormatDate(out.Dates[len(out.Dates)-1].Date),
		len(out.PayPeriods),
		len(out.Years))
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

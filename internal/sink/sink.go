// Package sink persists the generated dimension tables. The SQL
// implementation appends rows to existing tables inside one transaction per
// table; callers pass fully-qualified destination names such as "dbo.Dates".
package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/username/datedim/internal/tables"
)

// Drivers understood by Open and NewSQLSink.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// TableSink persists the three generated dimension tables. Each call is
// given the table's fully-qualified destination name.
type TableSink interface {
	WriteDates(ctx context.Context, table string, rows []tables.DateRow) error
	WritePayPeriods(ctx context.Context, table string, rows []tables.PayPeriod) error
	WriteYears(ctx context.Context, table string, rows []tables.YearRow) error
}

// Open opens a database connection for the given driver and verifies it
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to postgres database: %w", err)
		}
		return db, nil

	case DriverSQLite:
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		db, err := sql.Open("sqlite3", dsn+sep+"_journal_mode=WAL")
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}

// SplitQualifiedName splits a qualified object name into schema and table.
// A name without a schema part returns an empty schema.
func SplitQualifiedName(name string) (schema, table string, err error) {
	parts := strings.Split(name, ".")
	switch len(parts) {
	case 1:
		return "", parts[0], nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("malformed table name %q", name)
	}
}

// QualifyTable joins a schema and table name; an empty schema yields the
// bare table name.
func QualifyTable(schema, table string) string {
	if schema == "" {
		return table
	}
	return schema + "." + table
}

// quoteQualified renders a qualified name for SQL, quoting each part.
// SQLite has no schemas, so the schema part is dropped there.
func quoteQualified(name, driver string) (string, error) {
	schema, table, err := SplitQualifiedName(name)
	if err != nil {
		return "", err
	}
	if schema == "" || driver == DriverSQLite {
		return `"` + table + `"`, nil
	}
	return `"` + schema + `"."` + table + `"`, nil
}

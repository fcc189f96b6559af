package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/snippets/internal/common"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver is a database/sql driver name supported by the store.
type Driver string

const (
	DriverPostgres Driver = "pgx"
	DriverSQLite   Driver = "sqlite"
)

// DetectDriver picks the driver for dsn and returns the DSN in the form that
// driver expects. PostgreSQL URLs and libpq keyword strings go to pgx;
// sqlite:// URLs, file: URIs, :memory: and *.db / *.sqlite paths go to SQLite.
func DetectDriver(dsn string) (Driver, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty", common.ErrUnsupportedDSN)
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return DriverSQLite, dsn[len("sqlite://"):], nil
	case strings.HasPrefix(lower, "file:"), dsn == ":memory:":
		return DriverSQLite, dsn, nil
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return DriverSQLite, dsn, nil
	case strings.Contains(dsn, "="):
		// libpq keyword/value form: "host=localhost dbname=snippets"
		return DriverPostgres, dsn, nil
	}

	return "", "", fmt.Errorf("%w: %q", common.ErrUnsupportedDSN, dsn)
}

// Open opens the database described by dsn and verifies the connection.
// SQLite handles are limited to a single connection so that :memory:
// databases and write transactions behave as one database.
func Open(ctx context.Context, dsn string) (*sql.DB, Driver, error) {
	driver, source, err := DetectDriver(dsn)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(string(driver), source)
	if err != nil {
		return nil, "", fmt.Errorf("db open error: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("db ping error: %w", err)
	}

	return db, driver, nil
}

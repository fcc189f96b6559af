package snippets

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// pgUniqueViolation is SQLSTATE unique_violation.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique or primary-key
// constraint failure from either supported driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}

// wrapError annotates a driver error with op and maps the conditions callers
// branch on onto sentinel errors.
func wrapError(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrNotFound
	case IsUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, common.ErrDuplicateKeyword, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

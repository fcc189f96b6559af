// Package repomanager vends driver-specific repository implementations bound
// to a dbx.DBTX, so services can run the same code against *sql.DB or *sql.Tx
// on either PostgreSQL or SQLite.
package repomanager

import (
	"fmt"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/repositories/snippets"
)

type RepositoryManager interface {
	Snippets(db dbx.DBTX) snippets.Repository
}

// PostgresRepositoryManager vends pgx-backed repositories.
type PostgresRepositoryManager struct{}

// Snippets returns a snippets.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Snippets(db dbx.DBTX) snippets.Repository {
	return snippets.NewPostgresRepository(db)
}

// SQLiteRepositoryManager vends modernc.org/sqlite-backed repositories.
type SQLiteRepositoryManager struct{}

// Snippets returns a snippets.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Snippets(db dbx.DBTX) snippets.Repository {
	return snippets.NewSQLiteRepository(db)
}

// New returns the manager for driver.
func New(driver dbx.Driver) (RepositoryManager, error) {
	switch driver {
	case dbx.DriverPostgres:
		return &PostgresRepositoryManager{}, nil
	case dbx.DriverSQLite:
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("%w: no repositories for driver %q", common.ErrUnsupportedDSN, driver)
	}
}

// Package app wires configuration, the diagnostic log sink, the database
// connection and the snippet service together for one process run.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/snippets/internal/config"
	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/logging"
	"github.com/dmitrijs2005/snippets/internal/repositories/repomanager"
	"github.com/dmitrijs2005/snippets/internal/services"
	"github.com/google/uuid"
)

type App struct {
	config   *config.Config
	Logger   logging.Logger
	Snippets *services.SnippetService

	db      *sql.DB
	logSink io.Closer
}

// New opens the log file and the database described by c. The connection is
// made once and reused by every operation until Close.
func New(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	fileLogger, sink, err := logging.NewFileLogger(c.LogFile, level)
	if err != nil {
		return nil, err
	}
	logger := fileLogger.With("run_id", uuid.NewString())

	logger.Debug(ctx, "connecting to database")
	db, driver, err := dbx.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "database connection failed", "error", err)
		_ = sink.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}
	logger.Debug(ctx, "database connection established", "driver", string(driver))

	m, err := repomanager.New(driver)
	if err != nil {
		_ = db.Close()
		_ = sink.Close()
		return nil, err
	}

	return &App{
		config:   c,
		Logger:   logger,
		Snippets: services.NewSnippetService(db, m, logger),
		db:       db,
		logSink:  sink,
	}, nil
}

// Close releases the database connection and the log file.
func (a *App) Close() error {
	return errors.Join(a.db.Close(), a.logSink.Close())
}

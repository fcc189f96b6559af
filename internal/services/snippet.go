// Package services contains the snippet store business logic: input
// validation, transaction boundaries and operation-level logging on top of
// the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/logging"
	"github.com/dmitrijs2005/snippets/internal/models"
	"github.com/dmitrijs2005/snippets/internal/repositories/repomanager"
)

// SnippetService implements put, get, search and catalog over one database
// handle. It holds no state beyond its collaborators.
type SnippetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewSnippetService constructs a SnippetService.
func NewSnippetService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *SnippetService {
	return &SnippetService{db: db, repomanager: m, logger: logger}
}

// Put stores message under name, inserting a new snippet or replacing the
// message of an existing one; v decides the hidden flag. The write runs in a
// transaction that is rolled back on any failure. Put returns the name and
// message it was given.
func (s *SnippetService) Put(ctx context.Context, name, message string, v models.Visibility) (string, string, error) {
	if strings.TrimSpace(name) == "" {
		return "", "", common.ErrEmptyName
	}
	if !v.Valid() {
		return "", "", fmt.Errorf("%w: %s", common.ErrInvalidVisibility, v)
	}

	s.logger.Info(ctx, "storing snippet", "keyword", name, "visibility", v.String())

	snippet := &models.Snippet{Keyword: name, Message: message, Hidden: v.HiddenOnInsert()}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Snippets(tx).Upsert(ctx, snippet, v)
	})
	if err != nil {
		s.logger.Error(ctx, "failed to store snippet", "keyword", name, "error", err)
		return "", "", fmt.Errorf("error storing snippet: %w", err)
	}

	s.logger.Debug(ctx, "snippet stored successfully", "keyword", name)
	return name, message, nil
}

// Get returns the snippet stored under name, hidden or not. A missing
// snippet yields common.ErrNotFound.
func (s *SnippetService) Get(ctx context.Context, name string) (*models.Snippet, error) {
	snippet, err := s.repomanager.Snippets(s.db).GetByKeyword(ctx, name)
	if errors.Is(err, common.ErrNotFound) {
		s.logger.Debug(ctx, "snippet not found", "keyword", name)
		return nil, common.ErrNotFound
	}
	if err != nil {
		s.logger.Error(ctx, "failed to retrieve snippet", "keyword", name, "error", err)
		return nil, fmt.Errorf("error retrieving snippet: %w", err)
	}

	s.logger.Debug(ctx, "snippet retrieved", "keyword", name, "hidden", snippet.Hidden)
	return snippet, nil
}

// Search returns the keywords of visible snippets containing substring,
// ordered by keyword.
func (s *SnippetService) Search(ctx context.Context, substring string) ([]string, error) {
	keywords, err := s.repomanager.Snippets(s.db).SearchVisible(ctx, substring)
	if err != nil {
		s.logger.Error(ctx, "failed to search snippets", "substring", substring, "error", err)
		return nil, fmt.Errorf("error searching snippets: %w", err)
	}

	s.logger.Debug(ctx, "snippets found", "substring", substring, "count", len(keywords))
	return keywords, nil
}

// Catalog returns every visible snippet ordered by keyword.
func (s *SnippetService) Catalog(ctx context.Context) ([]models.CatalogItem, error) {
	items, err := s.repomanager.Snippets(s.db).ListVisible(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to retrieve catalog", "error", err)
		return nil, fmt.Errorf("error retrieving catalog: %w", err)
	}

	s.logger.Debug(ctx, "keyword catalog retrieved", "count", len(items))
	return items, nil
}

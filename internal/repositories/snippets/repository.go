package snippets

import (
	"context"

	"github.com/dmitrijs2005/snippets/internal/models"
)

// Repository describes storage operations for Snippet rows.
type Repository interface {
	// Upsert inserts s or, when s.Keyword already exists, replaces its message
	// and applies v to the stored hidden flag.
	Upsert(ctx context.Context, s *models.Snippet, v models.Visibility) error

	// GetByKeyword returns the row for keyword regardless of its hidden flag,
	// or common.ErrNotFound.
	GetByKeyword(ctx context.Context, keyword string) (*models.Snippet, error)

	// SearchVisible returns visible keywords containing substring, ordered
	// by keyword. Matching is literal and case-sensitive.
	SearchVisible(ctx context.Context, substring string) ([]string, error)

	// ListVisible returns all visible rows ordered by keyword.
	ListVisible(ctx context.Context) ([]models.CatalogItem, error)
}

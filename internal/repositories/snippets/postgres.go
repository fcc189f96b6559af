package snippets

import (
	"context"

	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX backed by pgx.
type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert stores s in one statement. The hidden flag of an existing row is
// only replaced when v overrides it.
func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Snippet, v models.Visibility) error {
	query := `
		INSERT INTO snippets (keyword, message, hidden)
		VALUES ($1, $2, $3)
		ON CONFLICT (keyword)
		DO UPDATE SET
			message = EXCLUDED.message,
			hidden = CASE WHEN $4 THEN EXCLUDED.hidden ELSE snippets.hidden END
	`
	if _, err := r.db.ExecContext(ctx, query, s.Keyword, s.Message, v.HiddenOnInsert(), v.Overrides()); err != nil {
		return wrapError("failed to upsert snippet", err)
	}
	return nil
}

// GetByKeyword returns the snippet stored under keyword, hidden or not.
func (r *PostgresRepository) GetByKeyword(ctx context.Context, keyword string) (*models.Snippet, error) {
	query := `SELECT keyword, message, hidden FROM snippets WHERE keyword = $1`

	s := &models.Snippet{}
	if err := r.db.QueryRowContext(ctx, query, keyword).Scan(&s.Keyword, &s.Message, &s.Hidden); err != nil {
		return nil, wrapError("failed to select snippet", err)
	}
	return s, nil
}

// SearchVisible uses strpos so the substring is matched literally.
func (r *PostgresRepository) SearchVisible(ctx context.Context, substring string) ([]string, error) {
	query := `SELECT keyword FROM snippets
		WHERE strpos(keyword, $1) > 0 AND NOT hidden
		ORDER BY keyword`

	rows, err := r.db.QueryContext(ctx, query, substring)
	if err != nil {
		return nil, wrapError("failed to search snippets", err)
	}
	defer rows.Close()

	return scanKeywords(rows)
}

func (r *PostgresRepository) ListVisible(ctx context.Context) ([]models.CatalogItem, error) {
	query := `SELECT keyword, message FROM snippets WHERE NOT hidden ORDER BY keyword`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapError("failed to list snippets", err)
	}
	defer rows.Close()

	return scanCatalog(rows)
}

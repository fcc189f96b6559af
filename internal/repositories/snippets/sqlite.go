package snippets

import (
	"context"

	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert stores s in one statement. On conflict the message is replaced and
// the hidden flag is kept unless v overrides it.
func (r *SQLiteRepository) Upsert(ctx context.Context, s *models.Snippet, v models.Visibility) error {
	query := ` INSERT INTO snippets (keyword, message, hidden)
			values (?, ?, ?)
			ON CONFLICT(keyword) DO UPDATE SET message = excluded.message,
				hidden = CASE WHEN ? THEN excluded.hidden ELSE snippets.hidden END
	`
	if _, err := r.db.ExecContext(ctx, query, s.Keyword, s.Message, v.HiddenOnInsert(), v.Overrides()); err != nil {
		return wrapError("failed to upsert snippet", err)
	}
	return nil
}

// GetByKeyword returns the snippet stored under keyword, hidden or not.
func (r *SQLiteRepository) GetByKeyword(ctx context.Context, keyword string) (*models.Snippet, error) {
	query := `select keyword, message, hidden from snippets where keyword=?`

	s := &models.Snippet{}
	if err := r.db.QueryRowContext(ctx, query, keyword).Scan(&s.Keyword, &s.Message, &s.Hidden); err != nil {
		return nil, wrapError("failed to select snippet", err)
	}
	return s, nil
}

// SearchVisible uses instr, which is case-sensitive unlike SQLite's LIKE.
func (r *SQLiteRepository) SearchVisible(ctx context.Context, substring string) ([]string, error) {
	query := `select keyword from snippets where instr(keyword, ?) > 0 and not hidden order by keyword`

	rows, err := r.db.QueryContext(ctx, query, substring)
	if err != nil {
		return nil, wrapError("failed to search snippets", err)
	}
	defer rows.Close()

	return scanKeywords(rows)
}

func (r *SQLiteRepository) ListVisible(ctx context.Context) ([]models.CatalogItem, error) {
	query := `select keyword, message from snippets where not hidden order by keyword`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapError("failed to list snippets", err)
	}
	defer rows.Close()

	return scanCatalog(rows)
}

package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/logging"
	"github.com/dmitrijs2005/snippets/internal/models"
	"github.com/dmitrijs2005/snippets/internal/repositories/repomanager"
	"github.com/dmitrijs2005/snippets/internal/repositories/snippets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// --- helpers ---

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE snippets (
  keyword TEXT PRIMARY KEY,
  message TEXT NOT NULL,
  hidden  BOOLEAN NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)
	return db
}

func newSQLiteService(t *testing.T) (*SnippetService, *sql.DB, *bytes.Buffer) {
	t.Helper()
	db := setupDB(t)
	var buf bytes.Buffer
	svc := NewSnippetService(db, &repomanager.SQLiteRepositoryManager{}, logging.NewTextLogger(&buf, slog.LevelDebug))
	return svc, db, &buf
}

type fakeRepo struct {
	snippets.Repository
	getErr    error
	searchErr error
	listErr   error
}

func (f *fakeRepo) GetByKeyword(ctx context.Context, keyword string) (*models.Snippet, error) {
	return nil, f.getErr
}

func (f *fakeRepo) SearchVisible(ctx context.Context, substring string) ([]string, error) {
	return nil, f.searchErr
}

func (f *fakeRepo) ListVisible(ctx context.Context) ([]models.CatalogItem, error) {
	return nil, f.listErr
}

type fakeManager struct{ repo *fakeRepo }

func (m fakeManager) Snippets(db dbx.DBTX) snippets.Repository { return m.repo }

// --- behaviour over a real database ---

func TestPut_IdempotentUpdate(t *testing.T) {
	svc, db, _ := newSQLiteService(t)
	ctx := context.Background()

	_, _, err := svc.Put(ctx, "k", "v1", models.VisibilityUnchanged)
	require.NoError(t, err)
	_, _, err = svc.Put(ctx, "k", "v2", models.VisibilityUnchanged)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM snippets WHERE keyword='k'`).Scan(&n))
	assert.Equal(t, 1, n)

	got, err := svc.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Message)
}

func TestPut_ReturnsInput(t *testing.T) {
	svc, _, _ := newSQLiteService(t)

	name, message, err := svc.Put(context.Background(), "a", "hello", models.VisibilityHidden)
	require.NoError(t, err)
	assert.Equal(t, "a", name)
	assert.Equal(t, "hello", message)
}

func TestPut_ThenGet_RoundTrip(t *testing.T) {
	svc, _, _ := newSQLiteService(t)
	ctx := context.Background()

	_, _, err := svc.Put(ctx, "a", "hello", models.VisibilityUnchanged)
	require.NoError(t, err)

	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Message)
}

func TestPut_EmptyNameRejected(t *testing.T) {
	svc, db, _ := newSQLiteService(t)

	for _, name := range []string{"", "   "} {
		_, _, err := svc.Put(context.Background(), name, "x", models.VisibilityUnchanged)
		assert.True(t, errors.Is(err, common.ErrEmptyName), "name %q: got %v", name, err)
	}

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM snippets`).Scan(&n))
	assert.Zero(t, n)
}

func TestPut_InvalidVisibility(t *testing.T) {
	svc, _, _ := newSQLiteService(t)

	_, _, err := svc.Put(context.Background(), "k", "v", models.Visibility(42))
	assert.True(t, errors.Is(err, common.ErrInvalidVisibility), "got %v", err)
}

func TestGet_NotFound(t *testing.T) {
	svc, _, buf := newSQLiteService(t)

	got, err := svc.Get(context.Background(), "nonexistent")
	assert.Nil(t, got)
	assert.Equal(t, common.ErrNotFound, err)
	assert.Contains(t, buf.String(), "snippet not found")
	assert.NotContains(t, buf.String(), "level=ERROR")
}

func TestHiddenExclusion(t *testing.T) {
	svc, _, _ := newSQLiteService(t)
	ctx := context.Background()

	_, _, err := svc.Put(ctx, "h", "secret", models.VisibilityHidden)
	require.NoError(t, err)
	_, _, err = svc.Put(ctx, "shown", "visible", models.VisibilityUnchanged)
	require.NoError(t, err)

	found, err := svc.Search(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, []string{"shown"}, found)

	found, err = svc.Search(ctx, "sec")
	require.NoError(t, err)
	assert.Empty(t, found)

	catalog, err := svc.Catalog(ctx)
	require.NoError(t, err)
	assert.NotContains(t, catalog, models.CatalogItem{Keyword: "h", Message: "secret"})

	got, err := svc.Get(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Message)
	assert.True(t, got.Hidden)
}

func TestUnhide_RestoresListing(t *testing.T) {
	svc, _, _ := newSQLiteService(t)
	ctx := context.Background()

	_, _, err := svc.Put(ctx, "h", "secret", models.VisibilityHidden)
	require.NoError(t, err)
	_, _, err = svc.Put(ctx, "h", "secret", models.VisibilityVisible)
	require.NoError(t, err)

	catalog, err := svc.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CatalogItem{{Keyword: "h", Message: "secret"}}, catalog)
}

func TestCatalog_Ordering(t *testing.T) {
	svc, _, _ := newSQLiteService(t)
	ctx := context.Background()

	for _, k := range []string{"b", "a", "c"} {
		_, _, err := svc.Put(ctx, k, "msg "+k, models.VisibilityUnchanged)
		require.NoError(t, err)
	}

	catalog, err := svc.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 3)
	assert.Equal(t, "a", catalog[0].Keyword)
	assert.Equal(t, "b", catalog[1].Keyword)
	assert.Equal(t, "c", catalog[2].Keyword)
}

func TestSearch_Substring(t *testing.T) {
	svc, _, buf := newSQLiteService(t)
	ctx := context.Background()

	for _, k := range []string{"apple", "applesauce", "banana"} {
		_, _, err := svc.Put(ctx, k, k, models.VisibilityUnchanged)
		require.NoError(t, err)
	}

	found, err := svc.Search(ctx, "apple")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"apple", "applesauce"}, found)
	assert.Contains(t, buf.String(), "count=2")
}

// --- transaction and error paths ---

func TestPut_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO snippets")).
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	var buf bytes.Buffer
	svc := NewSnippetService(db, &repomanager.PostgresRepositoryManager{}, logging.NewTextLogger(&buf, slog.LevelDebug))

	_, _, err = svc.Put(context.Background(), "k", "v", models.VisibilityUnchanged)
	require.ErrorContains(t, err, "connection lost")
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Contains(t, buf.String(), "failed to store snippet")
}

func TestPut_CommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO snippets")).
		WithArgs("k", "v", true, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewSnippetService(db, &repomanager.PostgresRepositoryManager{}, logging.Nop())

	_, _, err = svc.Put(context.Background(), "k", "v", models.VisibilityHidden)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadPaths_PropagateFailures(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepo{getErr: boom, searchErr: boom, listErr: boom}
	svc := NewSnippetService(nil, fakeManager{repo: repo}, logging.Nop())
	ctx := context.Background()

	_, err := svc.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrNotFound)

	_, err = svc.Search(ctx, "k")
	assert.ErrorIs(t, err, boom)

	_, err = svc.Catalog(ctx)
	assert.ErrorIs(t, err, boom)
}

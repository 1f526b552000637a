package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-ai/halcyon/internal/models"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewStoreWithDB(mock), mock
}

func TestListArticlesWithoutSearch(t *testing.T) {
	store, mock := newMockStore(t)
	published := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id::text, title, excerpt, category, published_at`).
		WithArgs(12, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "excerpt", "category", "published_at"}).
			AddRow("a1", "Series B", "We raised.", "Funding", published).
			AddRow("a2", "Model v2", "Faster.", "Research", published))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM articles`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	articles, total, err := store.ListArticles(context.Background(), 12, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, articles, 2)
	assert.Equal(t, "Series B", articles[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListArticlesWithSearch(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`title ILIKE`).
		WithArgs("funding", 12, 12).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "excerpt", "category", "published_at"}))
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs("funding").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(13))

	articles, total, err := store.ListArticles(context.Background(), 12, 12, "funding")
	require.NoError(t, err)
	assert.Equal(t, 13, total)
	assert.Empty(t, articles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticle(t *testing.T) {
	store, mock := newMockStore(t)
	published := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO articles`).
		WithArgs(pgxmock.AnyArg(), "Launch", "It ships.", "Product", "Full text").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "excerpt", "category", "content", "published_at"}).
			AddRow("a1", "Launch", "It ships.", "Product", "Full text", published))

	created, err := store.CreateArticle(context.Background(), models.Article{
		Title: "Launch", Excerpt: "It ships.", Category: "Product", Content: "Full text",
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArticleReportsMissingRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM articles`).
		WithArgs("gone").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := store.DeleteArticle(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAdminByUsernameMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`FROM admins`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	admin, err := store.GetAdminByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAdminPasswordClearsRotation(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE admins SET password_hash`).
		WithArgs("adm-1", "new-hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := store.UpdateAdminPassword(context.Background(), "adm-1", "new-hash")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdminSkipsWhenAdminExists(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM admins`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	err := store.SeedAdmin(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdminCreatesBootstrapAccount(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM admins`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO admins`).
		WithArgs(pgxmock.AnyArg(), "admin", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.SeedAdmin(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStats(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(pgxmock.NewRows([]string{"users", "articles", "contacts", "inquiries", "chats"}).
			AddRow(4, 9, 2, 1, 30))

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, stats.Articles)
	assert.Equal(t, 30, stats.ChatMessages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

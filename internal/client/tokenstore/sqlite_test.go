package tokenstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokenstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestGet_NoCredential_ReturnsEmpty(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	token, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestSetGet_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "tok-1"))

	token, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
}

func TestSet_OverwritesExisting(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "old"))
	require.NoError(t, repo.Set(ctx, "new"))

	token, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", token)
}

func TestDelete_Idempotent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "tok"))
	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx))

	token, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite", "file:tokenstoremigr?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, db))

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "tok"))
	token, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", token)
}

package credstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStore_EmptyReadsAbsent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	tok, ok, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, tok)
}

func TestSQLiteStore_WriteReadOverwrite(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "tok-A"))
	tok, ok, err := s.Read(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok-A", tok)

	require.NoError(t, s.Write(ctx, "tok-B"))
	tok, _, err = s.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-B", tok)
}

func TestSQLiteStore_ClearIsIdempotent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "tok-A"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	_, ok, err := s.Read(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteStore_ClearKeepsOtherMetadata(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('other', x'01')`)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Write(ctx, "tok-persisted"))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	tok, ok, err := NewSQLiteStore(db).Read(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok-persisted", tok)
}

func TestSQLiteStore_ErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, _, err := s.Read(ctx)
	require.ErrorContains(t, err, "failed to read credential")
	require.ErrorContains(t, s.Write(ctx, "x"), "failed to write credential")
	require.ErrorContains(t, s.Clear(ctx), "failed to clear credential")
}

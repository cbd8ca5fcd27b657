package localdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "campus.db")

	db, err := Init(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO metadata(key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)
}

func TestInit_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "campus.db")
	ctx := context.Background()

	db, err := Init(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening an already-migrated database must not fail.
	db, err = Init(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

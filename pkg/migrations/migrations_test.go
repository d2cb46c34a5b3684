package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/migrate"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func tableExists(t *testing.T, db *bun.DB, name string) bool {
	t.Helper()
	var n int
	err := db.NewRaw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).
		Scan(context.Background(), &n)
	require.NoError(t, err)
	return n == 1
}

func TestBringUpToDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	group, err := BringUpToDate(ctx, db)
	require.NoError(t, err)
	assert.False(t, group.IsZero())

	for _, table := range []string{"authors", "genres", "languages", "books", "book_genres", "book_instances"} {
		assert.True(t, tableExists(t, db, table), table)
	}

	// A second run is a no-op.
	group, err = BringUpToDate(ctx, db)
	require.NoError(t, err)
	assert.True(t, group.IsZero())
}

func TestRollback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := BringUpToDate(ctx, db)
	require.NoError(t, err)

	migrator := migrate.NewMigrator(db, Migrations)
	_, err = migrator.Rollback(ctx)
	require.NoError(t, err)

	assert.False(t, tableExists(t, db, "books"))
	assert.False(t, tableExists(t, db, "book_instances"))
}

func TestBookGenresRejectsDuplicatePair(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := BringUpToDate(ctx, db)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO genres (created_at, updated_at, name) VALUES (CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, 'Romance')")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO books (created_at, updated_at, title, isbn, author_id, language_id) VALUES (CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, 'Emma', '9780141439587', 1, 1)")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO book_genres (book_id, genre_id) VALUES (1, 1)")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO book_genres (book_id, genre_id) VALUES (1, 1)")
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := BringUpToDate(ctx, db)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO genres (created_at, updated_at, name) VALUES (CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, 'Romance')")
	require.NoError(t, err)

	undone, group, err := Reset(ctx, db)
	require.NoError(t, err)
	assert.Len(t, undone, 1)
	assert.False(t, group.IsZero())

	var n int
	require.NoError(t, db.NewRaw("SELECT COUNT(*) FROM genres").Scan(ctx, &n))
	assert.Equal(t, 0, n)
}

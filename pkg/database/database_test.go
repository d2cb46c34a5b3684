package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/locallibrary/catalog/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	cfg := config.NewForTest()
	cfg.DatabaseFilePath = filepath.Join(t.TempDir(), "test.db")

	db, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	_, err = db.Exec(`CREATE TABLE tx_test (id INTEGER PRIMARY KEY AUTOINCREMENT, value TEXT NOT NULL)`)
	require.NoError(t, err)

	return db
}

func countRows(t *testing.T, db *bun.DB) int {
	t.Helper()
	var n int
	err := db.NewRaw("SELECT COUNT(*) FROM tx_test").Scan(context.Background(), &n)
	require.NoError(t, err)
	return n
}

func TestNew_EnablesWAL(t *testing.T) {
	db := newTestDB(t)

	var mode string
	err := db.NewRaw("PRAGMA journal_mode").Scan(context.Background(), &mode)
	require.NoError(t, err)
	assert.Equal(t, "wal", mode)
}

func TestRunInTx_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := RunInTx(ctx, db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO tx_test (value) VALUES (?)", "a")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db))
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := RunInTx(ctx, db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO tx_test (value) VALUES (?)", "a")
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRows(t, db))
}

func TestRunInTx_RetriesOnceOnBusy(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	attempts := 0
	err := RunInTx(ctx, db, func(ctx context.Context, tx bun.Tx) error {
		attempts++
		if attempts == 1 {
			return errors.New("database is locked")
		}
		_, err := tx.ExecContext(ctx, "INSERT INTO tx_test (value) VALUES (?)", "a")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, countRows(t, db))
}

func TestRunInTx_GivesUpAfterSecondBusy(t *testing.T) {
	db := newTestDB(t)

	attempts := 0
	err := RunInTx(context.Background(), db, func(_ context.Context, _ bun.Tx) error {
		attempts++
		return errors.New("database is locked")
	})
	require.Error(t, err)
	assert.Equal(t, 2, attempts)
}

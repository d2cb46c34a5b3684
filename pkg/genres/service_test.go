package genres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/locallibrary/catalog/pkg/errcodes"
	"github.com/locallibrary/catalog/pkg/migrations"
	"github.com/locallibrary/catalog/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestCreateGenre_AssignsSequentialIDs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	romance := &models.Genre{ID: 99, Name: "Romance"}
	require.NoError(t, svc.CreateGenre(ctx, romance))
	satire := &models.Genre{Name: "Satire"}
	require.NoError(t, svc.CreateGenre(ctx, satire))

	assert.Equal(t, 1, romance.ID)
	assert.Equal(t, 2, satire.ID)

	got, err := svc.RetrieveGenre(ctx, romance.ID)
	require.NoError(t, err)
	assert.Equal(t, "Romance", got.Name)
}

func TestRetrieveGenre_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewService(db).RetrieveGenre(context.Background(), 42)
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))
}

func TestListGenres_OrderedByID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	empty, err := svc.ListGenres(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, name := range []string{"Satire", "Romance", "Gothic"} {
		require.NoError(t, svc.CreateGenre(ctx, &models.Genre{Name: name}))
	}

	genres, err := svc.ListGenres(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, "Satire", genres[0].Name)
	assert.Equal(t, "Gothic", genres[2].Name)
}

func TestUpdateGenre(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	genre := &models.Genre{Name: "Romanse"}
	require.NoError(t, svc.CreateGenre(ctx, genre))

	require.NoError(t, svc.UpdateGenre(ctx, &models.Genre{ID: genre.ID, Name: "Romance"}))

	got, err := svc.RetrieveGenre(ctx, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "Romance", got.Name)

	err = svc.UpdateGenre(ctx, &models.Genre{ID: 404, Name: "Nope"})
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))
}

func TestDeleteGenre_DetachesBooks(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	genre := &models.Genre{Name: "Romance"}
	require.NoError(t, svc.CreateGenre(ctx, genre))

	book := &models.Book{Title: "Emma", ISBN: "9780141439587", AuthorID: 1, LanguageID: 1}
	_, err := db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)
	_, err = db.NewInsert().Model(&models.BookGenre{BookID: book.ID, GenreID: genre.ID}).Exec(ctx)
	require.NoError(t, err)

	count, err := svc.GetBookCount(ctx, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.DeleteGenre(ctx, genre.ID))

	_, err = svc.RetrieveGenre(ctx, genre.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))

	remaining, err := db.NewSelect().Model((*models.BookGenre)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestDeleteGenre_NotFound(t *testing.T) {
	db := setupTestDB(t)

	err := NewService(db).DeleteGenre(context.Background(), 7)
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))
}

package books

import (
	"context"
	"testing"

	"github.com/locallibrary/catalog/pkg/errcodes"
	"github.com/locallibrary/catalog/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGenreIDs(t *testing.T) {
	assert.Equal(t, []int{}, normalizeGenreIDs(nil))
	assert.Equal(t, []int{1, 2, 3}, normalizeGenreIDs([]int{3, 1, 3, 2, 1}))
}

func TestSetGenres_ReplacesRegardlessOfPriorState(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	f := seedReferences(ctx, t, db, "Romance", "Satire", "Gothic")

	book := &models.Book{Title: "Emma", ISBN: "1", AuthorID: f.authorID, LanguageID: f.languageID}
	_, err := db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)

	for _, prior := range [][]int{nil, {f.genreIDs[0]}, f.genreIDs} {
		require.NoError(t, SetGenres(ctx, db, book.ID, prior))
		require.NoError(t, SetGenres(ctx, db, book.ID, []int{f.genreIDs[2], f.genreIDs[1], f.genreIDs[2]}))

		got, err := Genres(ctx, db, book.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{f.genreIDs[1], f.genreIDs[2]}, got)
	}

	require.NoError(t, SetGenres(ctx, db, book.ID, []int{}))
	got, err := Genres(ctx, db, book.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSetGenres_UnknownIDsWriteNothing(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	f := seedReferences(ctx, t, db, "Romance")

	book := &models.Book{Title: "Emma", ISBN: "1", AuthorID: f.authorID, LanguageID: f.languageID}
	_, err := db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)
	require.NoError(t, SetGenres(ctx, db, book.ID, f.genreIDs))

	err = SetGenres(ctx, db, book.ID, []int{8, f.genreIDs[0], 4})
	assert.ErrorIs(t, err, errcodes.ValidationErrors([]string{
		`"genre_ids" references unknown genre 4`,
		`"genre_ids" references unknown genre 8`,
	}))

	got, err := Genres(ctx, db, book.ID)
	require.NoError(t, err)
	assert.Equal(t, f.genreIDs, got)
}

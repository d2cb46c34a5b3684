package books

import (
	"context"
	"sort"

	"github.com/locallibrary/catalog/pkg/errcodes"
	"github.com/locallibrary/catalog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// normalizeGenreIDs returns ids deduplicated and sorted ascending.
func normalizeGenreIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// checkGenres records a violation for every id in genreIDs that names no
// stored genre. genreIDs must already be normalized.
func checkGenres(ctx context.Context, db bun.IDB, genreIDs []int, v *errcodes.Violations) error {
	if len(genreIDs) == 0 {
		return nil
	}

	var found []int
	err := db.NewSelect().
		Model((*models.Genre)(nil)).
		Column("g.id").
		Where("g.id IN (?)", bun.In(genreIDs)).
		Scan(ctx, &found)
	if err != nil {
		return errors.WithStack(err)
	}

	exists := make(map[int]struct{}, len(found))
	for _, id := range found {
		exists[id] = struct{}{}
	}

	for _, id := range genreIDs {
		if _, ok := exists[id]; !ok {
			v.Addf("genre_ids", "references unknown genre %d", id)
		}
	}
	return nil
}

// replaceGenres swaps the book's association for genreIDs without checking
// that the genres exist.
func replaceGenres(ctx context.Context, db bun.IDB, bookID int, genreIDs []int) error {
	_, err := db.NewDelete().
		Model((*models.BookGenre)(nil)).
		Where("book_id = ?", bookID).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(genreIDs) == 0 {
		return nil
	}

	rows := make([]*models.BookGenre, 0, len(genreIDs))
	for _, id := range genreIDs {
		rows = append(rows, &models.BookGenre{BookID: bookID, GenreID: id})
	}
	_, err = db.NewInsert().Model(&rows).Exec(ctx)
	return errors.WithStack(err)
}

// SetGenres replaces the whole genre set of a book. Duplicates are collapsed.
// If any id names no genre nothing is written and a validation error listing
// each unknown id is returned. Pass a transaction to make the change part of
// a larger write.
func SetGenres(ctx context.Context, db bun.IDB, bookID int, genreIDs []int) error {
	genreIDs = normalizeGenreIDs(genreIDs)

	var v errcodes.Violations
	if err := checkGenres(ctx, db, genreIDs, &v); err != nil {
		return err
	}
	if err := v.Err(); err != nil {
		return err
	}

	return replaceGenres(ctx, db, bookID, genreIDs)
}

// Genres returns the genre ids of a book, ascending.
func Genres(ctx context.Context, db bun.IDB, bookID int) ([]int, error) {
	ids := []int{}
	err := db.NewSelect().
		Model((*models.BookGenre)(nil)).
		Column("bg.genre_id").
		Where("bg.book_id = ?", bookID).
		Order("bg.genre_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ids, nil
}

// genresByBook loads the genre sets of many books in one query.
func genresByBook(ctx context.Context, db bun.IDB, bookIDs []int) (map[int][]int, error) {
	result := make(map[int][]int, len(bookIDs))
	if len(bookIDs) == 0 {
		return result, nil
	}

	var rows []*models.BookGenre
	err := db.NewSelect().
		Model(&rows).
		Where("bg.book_id IN (?)", bun.In(bookIDs)).
		Order("bg.book_id ASC", "bg.genre_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, row := range rows {
		result[row.BookID] = append(result[row.BookID], row.GenreID)
	}
	return result, nil
}

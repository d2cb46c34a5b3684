package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/locallibrary/catalog/pkg/database"
	"github.com/locallibrary/catalog/pkg/errcodes"
	"github.com/locallibrary/catalog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// checkReferences verifies that the author, the language and every genre a
// book points at exist. All dangling references are reported together.
func checkReferences(ctx context.Context, db bun.IDB, book *models.Book, genreIDs []int) error {
	var v errcodes.Violations

	exists, err := db.NewSelect().
		Model((*models.Author)(nil)).
		Where("a.id = ?", book.AuthorID).
		Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		v.Addf("author_id", "references unknown author %d", book.AuthorID)
	}

	exists, err = db.NewSelect().
		Model((*models.Language)(nil)).
		Where("l.id = ?", book.LanguageID).
		Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		v.Addf("language_id", "references unknown language %d", book.LanguageID)
	}

	if err := checkGenres(ctx, db, genreIDs, &v); err != nil {
		return err
	}
	return v.Err()
}

// CreateBook stores a new book and its genre set in one transaction. Nothing
// is written if any reference is dangling.
func (svc *Service) CreateBook(ctx context.Context, book *models.Book, genreIDs []int) error {
	genreIDs = normalizeGenreIDs(genreIDs)

	now := time.Now()
	book.ID = 0
	book.CreatedAt = now
	book.UpdatedAt = now

	return database.RunInTx(ctx, svc.db, func(ctx context.Context, tx bun.Tx) error {
		if err := checkReferences(ctx, tx, book, genreIDs); err != nil {
			return err
		}

		_, err := tx.
			NewInsert().
			Model(book).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return replaceGenres(ctx, tx, book.ID, genreIDs)
	})
}

func (svc *Service) RetrieveBook(ctx context.Context, id int) (*models.Book, error) {
	book := &models.Book{}

	err := svc.db.
		NewSelect().
		Model(book).
		Where("b.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

func (svc *Service) ListBooks(ctx context.Context) ([]*models.Book, error) {
	books := []*models.Book{}

	err := svc.db.
		NewSelect().
		Model(&books).
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// UpdateBook overwrites every writable column of a book and replaces its
// genre set, all in one transaction.
func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, genreIDs []int) error {
	genreIDs = normalizeGenreIDs(genreIDs)
	book.UpdatedAt = time.Now()

	return database.RunInTx(ctx, svc.db, func(ctx context.Context, tx bun.Tx) error {
		exists, err := Exists(ctx, tx, book.ID)
		if err != nil {
			return err
		}
		if !exists {
			return errcodes.NotFound("Book")
		}

		if err := checkReferences(ctx, tx, book, genreIDs); err != nil {
			return err
		}

		columns := append(append([]string{}, models.BookWritableColumns...), "updated_at")
		_, err = tx.
			NewUpdate().
			Model(book).
			Column(columns...).
			WherePK().
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return replaceGenres(ctx, tx, book.ID, genreIDs)
	})
}

// DeleteBook deletes a book along with its genre associations. Instances of
// the book are left as they are.
func (svc *Service) DeleteBook(ctx context.Context, id int) error {
	return database.RunInTx(ctx, svc.db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.BookGenre)(nil)).
			Where("book_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		res, err := tx.NewDelete().
			Model((*models.Book)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errcodes.NotFound("Book")
		}
		return nil
	})
}

// SetGenres replaces the genre set of an existing book.
func (svc *Service) SetGenres(ctx context.Context, bookID int, genreIDs []int) error {
	return database.RunInTx(ctx, svc.db, func(ctx context.Context, tx bun.Tx) error {
		exists, err := Exists(ctx, tx, bookID)
		if err != nil {
			return err
		}
		if !exists {
			return errcodes.NotFound("Book")
		}
		return SetGenres(ctx, tx, bookID, genreIDs)
	})
}

func (svc *Service) GenreIDs(ctx context.Context, bookID int) ([]int, error) {
	return Genres(ctx, svc.db, bookID)
}

// GenreIDsByBook returns the genre set of each given book, keyed by book id.
func (svc *Service) GenreIDsByBook(ctx context.Context, books []*models.Book) (map[int][]int, error) {
	ids := make([]int, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return genresByBook(ctx, svc.db, ids)
}

// Exists reports whether a book with the given id is stored. db may be a
// transaction.
func Exists(ctx context.Context, db bun.IDB, id int) (bool, error) {
	exists, err := db.NewSelect().
		Model((*models.Book)(nil)).
		Where("b.id = ?", id).
		Exists(ctx)
	return exists, errors.WithStack(err)
}

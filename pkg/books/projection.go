package books

import "github.com/locallibrary/catalog/pkg/models"

// BookFields are the columns of a book a caller may write.
type BookFields struct {
	Title      string
	Summary    string
	ISBN       string
	AuthorID   int
	LanguageID int
}

// Book returns a row carrying these fields under the given id.
func (f BookFields) Book(id int) *models.Book {
	return &models.Book{
		ID:         id,
		Title:      f.Title,
		Summary:    f.Summary,
		ISBN:       f.ISBN,
		AuthorID:   f.AuthorID,
		LanguageID: f.LanguageID,
	}
}

type BookOut struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	AuthorID   int    `json:"author_id"`
	Summary    string `json:"summary"`
	ISBN       string `json:"isbn"`
	GenreIDs   []int  `json:"genre_ids"`
	LanguageID int    `json:"language_id"`
}

// FromBookIn splits a payload into the book's own fields and its genre set.
func FromBookIn(in BookIn) (BookFields, []int) {
	fields := BookFields{
		Title:      in.Title,
		Summary:    in.Summary,
		ISBN:       in.ISBN,
		AuthorID:   in.AuthorID,
		LanguageID: in.LanguageID,
	}
	return fields, normalizeGenreIDs(in.GenreIDs)
}

func ToBookOut(book *models.Book, genreIDs []int) BookOut {
	if genreIDs == nil {
		genreIDs = []int{}
	}
	return BookOut{
		ID:         book.ID,
		Title:      book.Title,
		AuthorID:   book.AuthorID,
		Summary:    book.Summary,
		ISBN:       book.ISBN,
		GenreIDs:   genreIDs,
		LanguageID: book.LanguageID,
	}
}

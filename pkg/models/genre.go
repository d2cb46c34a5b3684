package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Genre struct {
	bun.BaseModel `bun:"table:genres,alias:g"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `json:"name"`
}

// BookGenre is one row of the many-to-many association between books and
// genres. A (book_id, genre_id) pair appears at most once.
type BookGenre struct {
	bun.BaseModel `bun:"table:book_genres,alias:bg"`

	ID      int `bun:",pk,nullzero" json:"id"`
	BookID  int `json:"book_id"`
	GenreID int `json:"genre_id"`
}

package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID         int       `bun:",pk,nullzero"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Title      string
	Summary    string
	ISBN       string `bun:"isbn"`
	AuthorID   int
	LanguageID int
}

// BookWritableColumns are the columns a full book update overwrites.
var BookWritableColumns = []string{"title", "summary", "isbn", "author_id", "language_id"}

package migrations

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// catalogDDL returns the statements that create the catalog schema, written
// for the dialect of db. Every {{pk}} and {{ts}} placeholder is replaced with
// the dialect's auto-increment primary key and timestamp type.
func catalogDDL(db *bun.DB) []string {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	ts := "DATETIME"
	if db.Dialect().Name() == dialect.PG {
		pk = "INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY"
		ts = "TIMESTAMPTZ"
	}
	r := strings.NewReplacer("{{pk}}", pk, "{{ts}}", ts)

	stmts := []string{
		`CREATE TABLE authors (
			id {{pk}},
			created_at {{ts}} NOT NULL,
			updated_at {{ts}} NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			date_of_birth DATE,
			date_of_death DATE
		)`,
		`CREATE TABLE genres (
			id {{pk}},
			created_at {{ts}} NOT NULL,
			updated_at {{ts}} NOT NULL,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE languages (
			id {{pk}},
			created_at {{ts}} NOT NULL,
			updated_at {{ts}} NOT NULL,
			name TEXT NOT NULL
		)`,
		// author_id and language_id carry no foreign key: deleting an author or
		// a language leaves its books in place.
		`CREATE TABLE books (
			id {{pk}},
			created_at {{ts}} NOT NULL,
			updated_at {{ts}} NOT NULL,
			title TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			isbn TEXT NOT NULL,
			author_id INTEGER NOT NULL,
			language_id INTEGER NOT NULL
		)`,
		`CREATE INDEX ix_books_author_id ON books (author_id)`,
		`CREATE INDEX ix_books_language_id ON books (language_id)`,
		`CREATE TABLE book_genres (
			id {{pk}},
			book_id INTEGER NOT NULL REFERENCES books (id) ON DELETE CASCADE,
			genre_id INTEGER NOT NULL REFERENCES genres (id) ON DELETE CASCADE
		)`,
		`CREATE UNIQUE INDEX ux_book_genres_book_genre ON book_genres (book_id, genre_id)`,
		`CREATE INDEX ix_book_genres_genre_id ON book_genres (genre_id)`,
		`CREATE TABLE book_instances (
			id TEXT PRIMARY KEY,
			created_at {{ts}} NOT NULL,
			updated_at {{ts}} NOT NULL,
			book_id INTEGER NOT NULL,
			imprint TEXT NOT NULL,
			due_back DATE,
			status TEXT NOT NULL DEFAULT 'maintenance'
		)`,
		`CREATE INDEX ix_book_instances_book_id ON book_instances (book_id)`,
	}

	for i, s := range stmts {
		stmts[i] = r.Replace(s)
	}
	return stmts
}

func init() {
	up := func(ctx context.Context, db *bun.DB) error {
		for _, stmt := range catalogDDL(db) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	down := func(ctx context.Context, db *bun.DB) error {
		for _, table := range []string{"book_instances", "book_genres", "books", "languages", "genres", "authors"} {
			if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}

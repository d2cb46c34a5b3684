package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/locallibrary/catalog/pkg/authors"
	"github.com/locallibrary/catalog/pkg/bookinstances"
	"github.com/locallibrary/catalog/pkg/books"
	"github.com/locallibrary/catalog/pkg/config"
	"github.com/locallibrary/catalog/pkg/database"
	"github.com/locallibrary/catalog/pkg/genres"
	"github.com/locallibrary/catalog/pkg/languages"
	"github.com/locallibrary/catalog/pkg/migrations"
	"github.com/locallibrary/catalog/pkg/models"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
)

type sampleBook struct {
	title   string
	summary string
	isbn    string
	genres  []string
}

var sampleBooks = []sampleBook{
	{"Emma", "A young woman's meddling in the love lives of her neighbours.", "9780141439587", []string{"Fiction", "Romance"}},
	{"Pride and Prejudice", "Elizabeth Bennet and the proud Mr Darcy.", "9780141439518", []string{"Fiction", "Romance"}},
	{"Northanger Abbey", "A parody of the Gothic novel.", "9780141439792", []string{"Fiction", "Satire"}},
}

func main() {
	ctx := context.Background()
	log := logger.New()

	var opts struct {
		Copies int  `short:"c" long:"copies" default:"2" description:"Number of book instances to create per book"`
		Force  bool `short:"f" long:"force" description:"Seed even if the catalog already has authors"`
	}

	if _, err := flags.Parse(&opts); err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}
	defer db.Close()

	if _, err := migrations.BringUpToDate(ctx, db); err != nil {
		log.Err(err).Fatal("migrations error")
	}

	count, err := db.NewSelect().Model((*models.Author)(nil)).Count(ctx)
	if err != nil {
		log.Err(err).Fatal("count error")
	}
	if count > 0 && !opts.Force {
		log.Info("catalog already has data, skipping", logger.Data{"authors": count})
		return
	}

	if err := seed(ctx, db, opts.Copies); err != nil {
		log.Err(err).Error("seed error")
		return
	}
	log.Info("catalog seeded", logger.Data{"books": len(sampleBooks), "copies_per_book": opts.Copies})
}

func seed(ctx context.Context, db *bun.DB, copies int) error {
	born := time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC)
	died := time.Date(1817, 7, 18, 0, 0, 0, 0, time.UTC)
	author := &models.Author{FirstName: "Jane", LastName: "Austen", DateOfBirth: &born, DateOfDeath: &died}
	if err := authors.NewService(db).CreateAuthor(ctx, author); err != nil {
		return errors.Wrap(err, "author")
	}

	language := &models.Language{Name: "English"}
	if err := languages.NewService(db).CreateLanguage(ctx, language); err != nil {
		return errors.Wrap(err, "language")
	}

	genreService := genres.NewService(db)
	genreIDs := map[string]int{}
	for _, b := range sampleBooks {
		for _, name := range b.genres {
			if _, ok := genreIDs[name]; ok {
				continue
			}
			genre := &models.Genre{Name: name}
			if err := genreService.CreateGenre(ctx, genre); err != nil {
				return errors.Wrapf(err, "genre %s", name)
			}
			genreIDs[name] = genre.ID
		}
	}

	bookService := books.NewService(db)
	instanceService := bookinstances.NewService(db)
	for _, b := range sampleBooks {
		ids := make([]int, 0, len(b.genres))
		for _, name := range b.genres {
			ids = append(ids, genreIDs[name])
		}

		book := &models.Book{Title: b.title, Summary: b.summary, ISBN: b.isbn, AuthorID: author.ID, LanguageID: language.ID}
		if err := bookService.CreateBook(ctx, book, ids); err != nil {
			return errors.Wrapf(err, "book %s", b.title)
		}

		for i := 0; i < copies; i++ {
			status := models.BookInstanceStatuses[i%len(models.BookInstanceStatuses)]
			instance := &models.BookInstance{
				BookID:  book.ID,
				Imprint: fmt.Sprintf("Penguin Classics, printing %d", i+1),
				Status:  status,
			}
			if status == models.BookInstanceStatusOnLoan {
				due := time.Now().UTC().AddDate(0, 0, 21).Truncate(24 * time.Hour)
				instance.DueBack = &due
			}
			if err := instanceService.CreateBookInstance(ctx, instance); err != nil {
				return errors.Wrapf(err, "instance of %s", b.title)
			}
		}
	}

	return nil
}

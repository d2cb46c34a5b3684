package languages

import (
	"context"
	"database/sql"
	"time"

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

func (svc *Service) CreateLanguage(ctx context.Context, language *models.Language) error {
	now := time.Now()
	language.ID = 0
	language.CreatedAt = now
	language.UpdatedAt = now

	_, err := svc.db.
		NewInsert().
		Model(language).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveLanguage(ctx context.Context, id int) (*models.Language, error) {
	language := &models.Language{}

	err := svc.db.
		NewSelect().
		Model(language).
		Where("l.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Language")
		}
		return nil, errors.WithStack(err)
	}

	return language, nil
}

func (svc *Service) ListLanguages(ctx context.Context) ([]*models.Language, error) {
	languages := []*models.Language{}

	err := svc.db.
		NewSelect().
		Model(&languages).
		Order("l.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return languages, nil
}

func (svc *Service) UpdateLanguage(ctx context.Context, language *models.Language) error {
	language.UpdatedAt = time.Now()

	res, err := svc.db.
		NewUpdate().
		Model(language).
		Column("name", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Language")
	}
	return nil
}

// DeleteLanguage deletes a language. Books written in it keep their
// language_id.
func (svc *Service) DeleteLanguage(ctx context.Context, id int) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Language)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Language")
	}
	return nil
}

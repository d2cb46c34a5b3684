package bookinstances

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/locallibrary/catalog/pkg/books"
	"github.com/locallibrary/catalog/pkg/database"
	"github.com/locallibrary/catalog/pkg/errcodes"
	"github.com/locallibrary/catalog/pkg/identity"
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

// checkInstance verifies the status and that the instance's book exists.
func checkInstance(ctx context.Context, db bun.IDB, instance *models.BookInstance) error {
	var v errcodes.Violations

	if !models.IsValidBookInstanceStatus(instance.Status) {
		quoted := make([]string, 0, len(models.BookInstanceStatuses))
		for _, s := range models.BookInstanceStatuses {
			quoted = append(quoted, fmt.Sprintf("%q", s))
		}
		v.Addf("status", "must be one of the following: %s", strings.Join(quoted, ", "))
	}

	exists, err := books.Exists(ctx, db, instance.BookID)
	if err != nil {
		return err
	}
	if !exists {
		v.Addf("book_id", "references unknown book %d", instance.BookID)
	}

	return v.Err()
}

// CreateBookInstance stores a new instance under a freshly allocated id. Any
// id already set on instance is replaced.
func (svc *Service) CreateBookInstance(ctx context.Context, instance *models.BookInstance) error {
	now := time.Now()
	instance.ID = identity.NewInstanceID()
	instance.CreatedAt = now
	instance.UpdatedAt = now

	return database.RunInTx(ctx, svc.db, func(ctx context.Context, tx bun.Tx) error {
		if err := checkInstance(ctx, tx, instance); err != nil {
			return err
		}

		_, err := tx.
			NewInsert().
			Model(instance).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
}

func (svc *Service) RetrieveBookInstance(ctx context.Context, id string) (*models.BookInstance, error) {
	instance := &models.BookInstance{}

	err := svc.db.
		NewSelect().
		Model(instance).
		Where("bi.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book instance")
		}
		return nil, errors.WithStack(err)
	}

	return instance, nil
}

// ListBookInstances returns every instance in creation order.
func (svc *Service) ListBookInstances(ctx context.Context) ([]*models.BookInstance, error) {
	instances := []*models.BookInstance{}

	err := svc.db.
		NewSelect().
		Model(&instances).
		Order("bi.created_at ASC", "bi.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return instances, nil
}

// UpdateBookInstance overwrites every writable column. An absent due_back is
// stored as NULL.
func (svc *Service) UpdateBookInstance(ctx context.Context, instance *models.BookInstance) error {
	instance.UpdatedAt = time.Now()

	return database.RunInTx(ctx, svc.db, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.BookInstance)(nil)).
			Where("bi.id = ?", instance.ID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Book instance")
		}

		if err := checkInstance(ctx, tx, instance); err != nil {
			return err
		}

		columns := append(append([]string{}, models.BookInstanceWritableColumns...), "updated_at")
		_, err = tx.
			NewUpdate().
			Model(instance).
			Column(columns...).
			WherePK().
			Exec(ctx)
		return errors.WithStack(err)
	})
}

func (svc *Service) DeleteBookInstance(ctx context.Context, id string) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.BookInstance)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Book instance")
	}
	return nil
}

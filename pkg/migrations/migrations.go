package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// Migrations holds every catalog schema migration. Files in this package
// register themselves from init.
var Migrations = migrate.NewMigrations()

// BringUpToDate creates the bookkeeping tables if needed and applies every
// pending migration as one group. The returned group is zero when nothing ran.
func BringUpToDate(ctx context.Context, db *bun.DB) (*migrate.MigrationGroup, error) {
	migrator := migrate.NewMigrator(db, Migrations)
	if err := migrator.Init(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !group.IsZero() {
		logger.FromContext(ctx).Info("catalog schema migrated", logger.Data{"group": group.String()})
	}
	return group, nil
}

// Reset rolls back every applied group, newest first, then migrates again.
// It returns the rolled back groups in the order they were undone.
func Reset(ctx context.Context, db *bun.DB) ([]*migrate.MigrationGroup, *migrate.MigrationGroup, error) {
	migrator := migrate.NewMigrator(db, Migrations)
	if err := migrator.Init(ctx); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	var undone []*migrate.MigrationGroup
	for {
		group, err := migrator.Rollback(ctx)
		if err != nil {
			return undone, nil, errors.WithStack(err)
		}
		if group.IsZero() {
			break
		}
		undone = append(undone, group)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return undone, nil, errors.WithStack(err)
	}
	return undone, group, nil
}

package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
)

// RunInTx runs fn inside a transaction. If the store reports a busy or locked
// condition the whole transaction is retried once; any other error, or a
// second failure, is returned as is.
func RunInTx(ctx context.Context, db *bun.DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	err := db.RunInTx(ctx, &sql.TxOptions{}, fn)
	if err != nil && isBusyError(err) {
		logger.FromContext(ctx).Warn("retrying transaction after busy error", logger.Data{"error": err.Error()})
		err = db.RunInTx(ctx, &sql.TxOptions{}, fn)
	}
	return errors.WithStack(err)
}

package repository

import (
	"context"
	"errors"

	"github.com/osse101/ProjectLife_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed.
// Use it in a defer right after BeginTx.
func SafeRollback(ctx context.Context, tx ProgressionTx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

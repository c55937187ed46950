package repository

import (
	"context"

	"github.com/feybrew/cauldron/internal/logger"
)

// Tx is the minimal transactional contract shared by all repositories.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// ErrMsgTxClosed matches pgx's "tx is closed" rollback error, which is
// expected after a successful Commit.
const ErrMsgTxClosed = "tx is closed"

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Check for the common "closed" error to avoid noise
		if err.Error() != ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}

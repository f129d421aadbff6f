package repository

import (
	"context"
	"errors"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/logger"
)

// SafeRollback rolls back tx and logs unexpected failures.
// Rolling back an already committed tx is a no-op.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || err.Error() == domain.ErrMsgTxClosed || errors.Is(err, context.Canceled) {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback unit of work", "error", err)
}

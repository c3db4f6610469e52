package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pairguard"
)

// PairGuardRepository stores the pair history of orders.
type PairGuardRepository interface {
	// GetByOrder loads the full history of an order. An order without history
	// yields an empty index, never errs.ErrObjectNotFound.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*pairguard.Index, error)

	// Save inserts the pending records of the index. Pairs that a concurrent
	// writer recorded first are skipped.
	Save(ctx context.Context, index *pairguard.Index) error
}

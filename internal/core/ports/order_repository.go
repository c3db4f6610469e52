// Package ports defines the contracts between the packing domain and its
// infrastructure: repositories, the unit of work and the order provider.
package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its lines.
	// A duplicate order number is reported as errs.ErrConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with all lines, ordered by product code.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its order-entry number.
	// Returns errs.ErrObjectNotFound when the order was never imported.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)
}

package ports

import (
	"context"

	"packing/internal/core/domain/model/order"
)

// ExternalOrder is an order as read from the order-entry system, before it
// gets local identifiers.
type ExternalOrder struct {
	Header order.Header
	Lines  []order.LineDetails
}

// OrderProvider reads orders from the order-entry system.
type OrderProvider interface {
	// FetchOrder returns errs.ErrObjectNotFound when the order number is unknown.
	FetchOrder(ctx context.Context, orderNo string) (ExternalOrder, error)
}

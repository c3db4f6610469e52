package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
)

// PackRepository defines the persistence contract for pack aggregates.
//
// Every Get variant returns the full aggregate: boxes and their items.
type PackRepository interface {
	// Add persists a new pack. A second in-progress pack for the same order is
	// reported as errs.ErrConflict.
	Add(ctx context.Context, aggregate *pack.Pack) error

	// Update synchronizes boxes and items with the aggregate: removed items,
	// then removed boxes, then every remaining box in ascending number.
	Update(ctx context.Context, aggregate *pack.Pack) error

	// AddBox inserts a single new box with its items. A taken box number is
	// reported as errs.ErrConflict so the caller can retry.
	AddBox(ctx context.Context, box *pack.Box) error

	Get(ctx context.Context, id kernel.UUID) (*pack.Pack, error)

	// GetForUpdate locks the pack row exclusively before reading the aggregate.
	// Used by every mutation that must serialize with other writers.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*pack.Pack, error)

	// GetForShare locks the pack row in share mode. Box creators hold it
	// concurrently; renumbering writers are excluded.
	GetForShare(ctx context.Context, id kernel.UUID) (*pack.Pack, error)

	// FindInProgressByOrder returns the order's in-progress pack or
	// errs.ErrObjectNotFound.
	FindInProgressByOrder(ctx context.Context, orderID kernel.UUID) (*pack.Pack, error)
}

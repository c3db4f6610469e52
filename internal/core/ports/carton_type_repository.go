package ports

import (
	"context"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
)

// CartonTypeRepository defines the persistence contract for the carton catalog.
type CartonTypeRepository interface {
	Add(ctx context.Context, aggregate *carton.CartonType) error
	Update(ctx context.Context, aggregate *carton.CartonType) error
	Get(ctx context.Context, id kernel.UUID) (*carton.CartonType, error)

	// GetForUpdate locks the carton row; inventory adjustments use it so that
	// concurrent deltas add up.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*carton.CartonType, error)
}

package orderrepo

import (
	"context"
	"errors"

	"packing/internal/adapters/out/postgres/pgerr"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order_no")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "order", id.String(), "id = ?", id.Bytes())
}

// GetByNumber retrieves an order by its order-entry number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order_no")
	}

	return r.first(ctx, "order_no", number, "number = ?", number)
}

func (r *GormOrderRepository) first(
	ctx context.Context,
	param string,
	key any,
	where string,
	args ...any,
) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_code, id")
		}).
		Where(where, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}

	return toDomain(dto)
}

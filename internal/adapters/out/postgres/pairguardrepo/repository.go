package pairguardrepo

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pairguard"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPairGuardRepository implements PairGuardRepository using GORM.
type GormPairGuardRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPairGuardRepository creates a new GORM pair guard repository.
func NewGormPairGuardRepository(db *gorm.DB, tracker aggregateTracker) *GormPairGuardRepository {
	return &GormPairGuardRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByOrder loads every recorded pair of an order into an index.
func (r *GormPairGuardRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*pairguard.Index, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PairGuardDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]pairguard.Record, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return pairguard.RestoreIndex(orderID, records)
}

// Save inserts pending records. A pair already recorded by a concurrent
// writer keeps its original anchor.
func (r *GormPairGuardRepository) Save(ctx context.Context, index *pairguard.Index) error {
	if err := index.Validate(); err != nil {
		return err
	}

	pending := index.Pending()
	if len(pending) == 0 {
		return nil
	}

	dtos := make([]PairGuardDTO, 0, len(pending))
	for _, rec := range pending {
		dtos = append(dtos, fromDomain(index.OrderID(), rec))
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error; err != nil {
		return err
	}

	index.ClearPending()
	r.tracker.TrackAggregate(index.OrderID(), index)
	return nil
}

package cartonrepo

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartonTypeRepository implements CartonTypeRepository using GORM.
type GormCartonTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartonTypeRepository creates a new GORM carton type repository.
func NewGormCartonTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormCartonTypeRepository {
	return &GormCartonTypeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carton type.
func (r *GormCartonTypeRepository) Add(ctx context.Context, aggregate *carton.CartonType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves every column of an existing carton type.
func (r *GormCartonTypeRepository) Update(ctx context.Context, aggregate *carton.CartonType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CartonTypeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carton_type", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carton type by ID.
func (r *GormCartonTypeRepository) Get(ctx context.Context, id kernel.UUID) (*carton.CartonType, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a carton type holding a row lock until the transaction ends.
func (r *GormCartonTypeRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*carton.CartonType, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormCartonTypeRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*carton.CartonType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartonTypeDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carton_type", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

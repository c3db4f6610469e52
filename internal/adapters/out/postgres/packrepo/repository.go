package packrepo

import (
	"context"
	"errors"

	"packing/internal/adapters/out/postgres/pgerr"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	lockForUpdate = "UPDATE"
	lockForShare  = "SHARE"
)

// GormPackRepository implements PackRepository using GORM.
type GormPackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackRepository creates a new GORM pack repository.
func NewGormPackRepository(db *gorm.DB, tracker aggregateTracker) *GormPackRepository {
	return &GormPackRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pack with any boxes it already has.
func (r *GormPackRepository) Add(ctx context.Context, aggregate *pack.Pack) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errs.NewObjectNotFoundErrorWithCause("order", aggregate.OrderID(), err)
		}
		return pgerr.Translate(err, "pack order_id")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the pack row and synchronizes its boxes and items.
//
// Statement order matters for the (pack_id, box_no) unique index: removed
// items go first, then removed boxes, then the remaining boxes are upserted in
// ascending number so that dense renumbering never collides with a live row.
func (r *GormPackRepository) Update(ctx context.Context, aggregate *pack.Pack) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)

	result := db.Model(&PackDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"completed_by": dto.CompletedBy,
		"completed_at": dto.CompletedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pack", aggregate.ID().String())
	}

	if ids := rawIDs(aggregate.RemovedItemIDs()); len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Delete(&ItemDTO{}).Error; err != nil {
			return err
		}
	}
	if ids := rawIDs(aggregate.RemovedBoxIDs()); len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Delete(&BoxDTO{}).Error; err != nil {
			return err
		}
	}

	for i := range dto.Boxes {
		if err := upsertBox(db, &dto.Boxes[i]); err != nil {
			return err
		}
	}

	aggregate.ClearRemovals()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddBox inserts one new box with its items. Creators run concurrently under a
// share lock, so a taken number surfaces as errs.ErrConflict.
func (r *GormPackRepository) AddBox(ctx context.Context, box *pack.Box) error {
	if err := box.Validate(); err != nil {
		return err
	}

	dto := boxFromDomain(box)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "box_no")
	}

	r.tracker.TrackAggregate(box.ID(), box)
	return nil
}

// Get retrieves a pack by ID without locking.
func (r *GormPackRepository) Get(ctx context.Context, id kernel.UUID) (*pack.Pack, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.load(ctx, "id = ?", id.Bytes())
}

// GetForUpdate takes FOR UPDATE on the pack row, then reads the aggregate.
func (r *GormPackRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*pack.Pack, error) {
	return r.getLocked(ctx, id, lockForUpdate)
}

// GetForShare takes FOR SHARE on the pack row, then reads the aggregate.
func (r *GormPackRepository) GetForShare(ctx context.Context, id kernel.UUID) (*pack.Pack, error) {
	return r.getLocked(ctx, id, lockForShare)
}

// FindInProgressByOrder returns the in-progress pack of an order.
func (r *GormPackRepository) FindInProgressByOrder(ctx context.Context, orderID kernel.UUID) (*pack.Pack, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	p, err := r.load(ctx, "order_id = ? AND status = ?", orderID.Bytes(), pack.InProgress.String())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundError("in-progress pack for order", orderID.String())
	}
	return p, err
}

func (r *GormPackRepository) getLocked(ctx context.Context, id kernel.UUID, strength string) (*pack.Pack, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var locked PackDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: strength}).
		Select("id").
		First(&locked, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pack", id.String())
		}
		return nil, err
	}

	return r.load(ctx, "id = ?", id.Bytes())
}

func (r *GormPackRepository) load(ctx context.Context, where string, args ...any) (*pack.Pack, error) {
	var dto PackDTO
	err := r.db.WithContext(ctx).
		Preload("Boxes", func(db *gorm.DB) *gorm.DB {
			return db.Order("box_no, id")
		}).
		Preload("Boxes.Items").
		Where(where, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pack", args[0])
		}
		return nil, err
	}

	return toDomain(dto)
}

func upsertBox(db *gorm.DB, box *BoxDTO) error {
	err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"box_no", "carton_type_id", "length_in", "width_in", "height_in",
				"max_weight_lb", "weight_lbs", "weight_entered",
			}),
		}).
		Create(box).Error
	if err != nil {
		return pgerr.Translate(err, "box_no")
	}

	if len(box.Items) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"qty"}),
	}).Create(&box.Items).Error
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}

// Package packrepo persists pack aggregates: the pack row, its boxes and the
// items inside each box.
package packrepo

import (
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"

	"github.com/google/uuid"
)

// PackDTO is the packs row. order_id references orders, and a partial unique
// index on it keeps a single in-progress pack per order (see postgres.Migrate).
type PackDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	StartedBy   *int64     `gorm:"type:bigint"`
	CompletedBy *int64     `gorm:"type:bigint"`
	StartedAt   time.Time  `gorm:"type:timestamptz;not null"`
	CompletedAt *time.Time `gorm:"type:timestamptz"`
	Boxes       []BoxDTO   `gorm:"foreignKey:PackID;constraint:OnDelete:CASCADE"`
}

func (PackDTO) TableName() string {
	return "packs"
}

// BoxDTO is the pack_boxes row. Either carton_type_id or all three custom
// dimensions are set.
type BoxDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PackID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_pack_boxes_pack_no,priority:1"`
	BoxNo         int        `gorm:"type:int;not null;uniqueIndex:uq_pack_boxes_pack_no,priority:2"`
	CartonTypeID  *uuid.UUID `gorm:"type:uuid;index"`
	LengthIn      *int       `gorm:"type:int"`
	WidthIn       *int       `gorm:"type:int"`
	HeightIn      *int       `gorm:"type:int"`
	MaxWeightLb   int        `gorm:"type:int;not null"`
	WeightLbs     *int       `gorm:"type:int"`
	WeightEntered *float64   `gorm:"type:numeric(8,2)"`
	Items         []ItemDTO  `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE"`
}

func (BoxDTO) TableName() string {
	return "pack_boxes"
}

// ItemDTO is the pack_box_items row. Zero-quantity items are deleted, never stored.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoxID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_pack_box_items_box_line,priority:1"`
	OrderLineID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_pack_box_items_box_line,priority:2"`
	Qty         int       `gorm:"type:int;not null;check:qty > 0"`
}

func (ItemDTO) TableName() string {
	return "pack_box_items"
}

func fromDomain(p *pack.Pack) PackDTO {
	boxes := make([]BoxDTO, 0, len(p.Boxes()))
	for _, b := range p.Boxes() {
		boxes = append(boxes, boxFromDomain(b))
	}

	return PackDTO{
		ID:          p.ID().Bytes(),
		OrderID:     p.OrderID().Bytes(),
		Status:      p.Status().String(),
		StartedBy:   p.StartedBy(),
		CompletedBy: p.CompletedBy(),
		StartedAt:   p.StartedAt(),
		CompletedAt: p.CompletedAt(),
		Boxes:       boxes,
	}
}

func boxFromDomain(b *pack.Box) BoxDTO {
	boxID := b.ID().Bytes()
	dto := BoxDTO{
		ID:          boxID,
		PackID:      b.PackID().Bytes(),
		BoxNo:       b.Number(),
		MaxWeightLb: b.MaxWeightLb(),
		Items:       make([]ItemDTO, 0, len(b.Items())),
	}

	switch spec := b.Spec().(type) {
	case pack.CatalogSpec:
		id := spec.CartonTypeID().Bytes()
		dto.CartonTypeID = &id
	case pack.CustomSpec:
		d := spec.Dimensions()
		length, width, height := d.Length(), d.Width(), d.Height()
		dto.LengthIn, dto.WidthIn, dto.HeightIn = &length, &width, &height
	}

	if w := b.Weight(); w != nil {
		pounds, entered := w.Pounds(), w.Entered()
		dto.WeightLbs, dto.WeightEntered = &pounds, &entered
	}

	for _, it := range b.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ID:          it.ID().Bytes(),
			BoxID:       boxID,
			OrderLineID: it.LineID().Bytes(),
			Qty:         it.Qty(),
		})
	}

	return dto
}

func toDomain(dto PackDTO) (*pack.Pack, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := pack.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	boxes := make([]*pack.Box, 0, len(dto.Boxes))
	for _, boxDto := range dto.Boxes {
		b, boxErr := boxToDomain(id, boxDto)
		if boxErr != nil {
			return nil, boxErr
		}
		boxes = append(boxes, b)
	}

	return pack.RestorePack(id, orderID, status, dto.StartedBy, dto.CompletedBy,
		dto.StartedAt, dto.CompletedAt, boxes)
}

func boxToDomain(packID kernel.UUID, dto BoxDTO) (*pack.Box, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var cartonTypeID *kernel.UUID
	if dto.CartonTypeID != nil {
		cID, cartonErr := kernel.UUIDFromBytes((*dto.CartonTypeID)[:])
		if cartonErr != nil {
			return nil, cartonErr
		}
		cartonTypeID = &cID
	}

	spec, err := pack.NewBoxSpec(cartonTypeID, dto.LengthIn, dto.WidthIn, dto.HeightIn)
	if err != nil {
		return nil, err
	}

	var weight *pack.Weight
	if dto.WeightLbs != nil {
		w := pack.RestoreWeight(*dto.WeightLbs, dto.WeightEntered)
		weight = &w
	}

	items := make([]*pack.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDto.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		lineID, lineErr := kernel.UUIDFromBytes(itemDto.OrderLineID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		it, restoreErr := pack.RestoreItem(itemID, id, lineID, itemDto.Qty)
		if restoreErr != nil {
			return nil, restoreErr
		}
		items = append(items, it)
	}

	return pack.RestoreBox(id, packID, dto.BoxNo, spec, dto.MaxWeightLb, weight, items)
}

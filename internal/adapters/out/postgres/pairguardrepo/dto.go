// Package pairguardrepo persists the per-order history of which line pairs
// were first packed together in which box.
package pairguardrepo

import (
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pairguard"

	"github.com/google/uuid"
)

// PairGuardDTO is the pair_guards row. line_a_id sorts before line_b_id.
// anchor_box_id carries no foreign key so the record outlives box deletion.
type PairGuardDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineAID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineBID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	AnchorBoxID uuid.UUID `gorm:"type:uuid;not null"`
}

func (PairGuardDTO) TableName() string {
	return "pair_guards"
}

func fromDomain(orderID kernel.UUID, r pairguard.Record) PairGuardDTO {
	return PairGuardDTO{
		OrderID:     orderID.Bytes(),
		LineAID:     r.Pair().A().Bytes(),
		LineBID:     r.Pair().B().Bytes(),
		AnchorBoxID: r.AnchorBoxID().Bytes(),
	}
}

func toDomain(dto PairGuardDTO) (pairguard.Record, error) {
	a, err := kernel.UUIDFromBytes(dto.LineAID[:])
	if err != nil {
		return pairguard.Record{}, err
	}
	b, err := kernel.UUIDFromBytes(dto.LineBID[:])
	if err != nil {
		return pairguard.Record{}, err
	}
	anchor, err := kernel.UUIDFromBytes(dto.AnchorBoxID[:])
	if err != nil {
		return pairguard.Record{}, err
	}

	return pairguard.NewRecord(a, b, anchor)
}

// Package cartonrepo persists the carton type catalog and its on-hand inventory.
package cartonrepo

import (
	"time"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartonTypeDTO is the carton_types row. max_weight_lb 0 means not configured.
type CartonTypeDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	LengthIn       int       `gorm:"type:int;not null"`
	WidthIn        int       `gorm:"type:int;not null"`
	HeightIn       int       `gorm:"type:int;not null"`
	MaxWeightLb    int       `gorm:"type:int;not null;default:0"`
	Style          string    `gorm:"type:varchar(64);not null;default:''"`
	Vendor         string    `gorm:"type:varchar(128);not null;default:''"`
	QuantityOnHand int       `gorm:"type:int;not null;default:0"`
	MinimumStock   int       `gorm:"type:int;not null;default:0"`
	Active         bool      `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

func (CartonTypeDTO) TableName() string {
	return "carton_types"
}

func fromDomain(c *carton.CartonType) CartonTypeDTO {
	d := c.Dimensions()
	return CartonTypeDTO{
		ID:             c.ID().Bytes(),
		Name:           c.Name(),
		LengthIn:       d.Length(),
		WidthIn:        d.Width(),
		HeightIn:       d.Height(),
		MaxWeightLb:    c.MaxWeightLb(),
		Style:          c.Style(),
		Vendor:         c.Vendor(),
		QuantityOnHand: c.QuantityOnHand(),
		MinimumStock:   c.MinimumStock(),
		Active:         c.IsActive(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func toDomain(dto CartonTypeDTO) (*carton.CartonType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dims, err := kernel.NewDimensions(dto.LengthIn, dto.WidthIn, dto.HeightIn)
	if err != nil {
		return nil, err
	}

	return carton.RestoreCartonType(id, carton.Details{
		Name:         dto.Name,
		Dimensions:   dims,
		MaxWeightLb:  dto.MaxWeightLb,
		Style:        dto.Style,
		Vendor:       dto.Vendor,
		MinimumStock: dto.MinimumStock,
		Active:       dto.Active,
	}, dto.QuantityOnHand, dto.CreatedAt, dto.UpdatedAt)
}

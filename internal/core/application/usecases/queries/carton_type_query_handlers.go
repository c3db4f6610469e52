package queries

import (
	"context"

	"packing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const cartonTypeColumns = `
	id,
	name,
	length_in,
	width_in,
	height_in,
	max_weight_lb,
	style,
	vendor,
	quantity_on_hand,
	minimum_stock,
	active,
	updated_at`

type ListCartonTypesQueryHandler struct {
	db *gorm.DB
}

func NewListCartonTypesQueryHandler(db *gorm.DB) ListCartonTypesQueryHandler {
	return ListCartonTypesQueryHandler{db: db}
}

func (h ListCartonTypesQueryHandler) Handle(ctx context.Context, query ListCartonTypesQuery) ([]CartonTypeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanCartonTypes(h.db.WithContext(ctx).Raw(`
		SELECT` + cartonTypeColumns + `
		FROM carton_types
		WHERE active OR NOT ?
		ORDER BY name, id
	`, query.ActiveOnly()))
}

type GetLowStockCartonsQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockCartonsQueryHandler(db *gorm.DB) GetLowStockCartonsQueryHandler {
	return GetLowStockCartonsQueryHandler{db: db}
}

// Handle returns the largest shortfall first.
func (h GetLowStockCartonsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockCartonsQuery,
) ([]CartonTypeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanCartonTypes(h.db.WithContext(ctx).Raw(`
		SELECT` + cartonTypeColumns + `
		FROM carton_types
		WHERE active AND quantity_on_hand < minimum_stock
		ORDER BY minimum_stock - quantity_on_hand DESC, name, id
	`))
}

func scanCartonTypes(stmt *gorm.DB) ([]CartonTypeView, error) {
	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]CartonTypeView, 0)
	for rows.Next() {
		var (
			v  CartonTypeView
			id uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&v.Name,
			&v.LengthIn,
			&v.WidthIn,
			&v.HeightIn,
			&v.MaxWeightLb,
			&v.Style,
			&v.Vendor,
			&v.QuantityOnHand,
			&v.MinimumStock,
			&v.Active,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

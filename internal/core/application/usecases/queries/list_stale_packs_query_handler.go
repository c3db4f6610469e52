package queries

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListStalePacksQueryHandler struct {
	db *gorm.DB
}

func NewListStalePacksQueryHandler(db *gorm.DB) ListStalePacksQueryHandler {
	return ListStalePacksQueryHandler{db: db}
}

// Handle returns the oldest packs first.
func (h ListStalePacksQueryHandler) Handle(ctx context.Context, query ListStalePacksQuery) ([]StalePack, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.order_id,
			o.number,
			p.started_at,
			p.started_by,
			COUNT(b.id)
		FROM packs p
		JOIN orders o ON o.id = p.order_id
		LEFT JOIN pack_boxes b ON b.pack_id = p.id
		WHERE p.status = ? AND p.started_at < ?
		GROUP BY p.id, o.number
		ORDER BY p.started_at, p.id
	`, pack.InProgress.String(), query.StartedBefore()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packs := make([]StalePack, 0)
	for rows.Next() {
		var (
			sp              StalePack
			packID, orderID uuid.UUID
		)
		if err = rows.Scan(
			&packID,
			&orderID,
			&sp.OrderNo,
			&sp.StartedAt,
			&sp.StartedBy,
			&sp.BoxCount,
		); err != nil {
			return nil, err
		}

		if sp.PackID, err = kernel.UUIDFromBytes(packID[:]); err != nil {
			return nil, err
		}
		if sp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		packs = append(packs, sp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return packs, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetPackingSlipQueryHandler struct {
	db *gorm.DB
}

func NewGetPackingSlipQueryHandler(db *gorm.DB) GetPackingSlipQueryHandler {
	return GetPackingSlipQueryHandler{db: db}
}

// Handle reads header, boxes and items in one snapshot transaction and groups
// the items for display.
func (h GetPackingSlipQueryHandler) Handle(ctx context.Context, query GetPackingSlipQuery) (PackingSlip, error) {
	if err := query.Validate(); err != nil {
		return PackingSlip{}, err
	}

	var slip PackingSlip
	err := readSnapshot(ctx, h.db, func(tx *gorm.DB) error {
		header, err := loadSlipHeader(tx, query.PackID())
		if err != nil {
			return err
		}

		boxes, err := loadBoxes(tx, query.PackID())
		if err != nil {
			return err
		}

		items, err := loadSlipItems(tx, query.PackID())
		if err != nil {
			return err
		}

		slip = PackingSlip{
			Header: header,
			Boxes:  make([]PackingSlipBox, 0, len(boxes)),
			Items:  GroupPackingSlipItems(items),
		}
		for _, b := range boxes {
			slip.Boxes = append(slip.Boxes, PackingSlipBox{
				BoxNo:          b.BoxNo,
				Label:          b.Label,
				CartonTypeName: b.CartonTypeName,
				LengthIn:       b.LengthIn,
				WidthIn:        b.WidthIn,
				HeightIn:       b.HeightIn,
				WeightLbs:      b.WeightLbs,
			})
		}
		return nil
	})
	if err != nil {
		return PackingSlip{}, err
	}

	return slip, nil
}

func loadSlipHeader(tx *gorm.DB, packID kernel.UUID) (PackingSlipHeader, error) {
	var (
		h       PackingSlipHeader
		rawPack uuid.UUID
		dueDate *time.Time
	)

	err := tx.Raw(`
		SELECT
			p.id,
			o.number,
			o.customer_name,
			o.ship_to,
			o.due_date,
			o.lead_time_plan,
			p.status,
			p.completed_at
		FROM packs p
		JOIN orders o ON o.id = p.order_id
		WHERE p.id = ?
	`, packID.Bytes()).Row().Scan(
		&rawPack,
		&h.OrderNo,
		&h.CustomerName,
		&h.ShipTo,
		&dueDate,
		&h.LeadTimePlan,
		&h.Status,
		&h.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PackingSlipHeader{}, errs.NewObjectNotFoundError("pack", packID.String())
		}
		return PackingSlipHeader{}, err
	}

	if h.PackID, err = kernel.UUIDFromBytes(rawPack[:]); err != nil {
		return PackingSlipHeader{}, err
	}
	h.DueDate = formatDate(dueDate)
	return h, nil
}

func loadSlipItems(tx *gorm.DB, packID kernel.UUID) ([]PackingSlipItem, error) {
	rows, err := tx.Raw(`
		SELECT
			b.box_no,
			l.product_code,
			l.length_in,
			l.height_in,
			l.finish,
			l.qty_ordered,
			i.qty,
			COALESCE(l.product_tag, '')
		FROM pack_box_items i
		JOIN pack_boxes b ON b.id = i.box_id
		JOIN order_lines l ON l.id = i.order_line_id
		WHERE b.pack_id = ?
		ORDER BY b.box_no NULLS LAST, l.product_code, i.id
	`, packID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]PackingSlipItem, 0)
	for rows.Next() {
		var it PackingSlipItem
		if err = rows.Scan(
			&it.BoxNo,
			&it.ProductCode,
			&it.LengthIn,
			&it.HeightIn,
			&it.Finish,
			&it.QtyOrdered,
			&it.QtyShipped,
			&it.ProductTag,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

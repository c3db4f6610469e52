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

// GetPackSnapshotQueryHandler builds pack snapshots from a single read-only
// repeatable-read transaction, so header, lines and boxes agree with each other.
// Nothing is cached.
type GetPackSnapshotQueryHandler struct {
	db *gorm.DB
}

func NewGetPackSnapshotQueryHandler(db *gorm.DB) GetPackSnapshotQueryHandler {
	return GetPackSnapshotQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the pack does not exist.
func (h GetPackSnapshotQueryHandler) Handle(ctx context.Context, query GetPackSnapshotQuery) (PackSnapshot, error) {
	if err := query.Validate(); err != nil {
		return PackSnapshot{}, err
	}

	var snapshot PackSnapshot
	err := readSnapshot(ctx, h.db, func(tx *gorm.DB) error {
		header, err := loadPackHeader(tx, query.PackID())
		if err != nil {
			return err
		}
		lines, err := loadLineTotals(tx, header.PackID, header.OrderID)
		if err != nil {
			return err
		}
		boxes, err := loadBoxes(tx, header.PackID)
		if err != nil {
			return err
		}

		snapshot = PackSnapshot{Header: header, Lines: lines, Boxes: boxes}
		return nil
	})
	if err != nil {
		return PackSnapshot{}, err
	}

	return snapshot, nil
}

func readSnapshot(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
}

func loadPackHeader(tx *gorm.DB, packID kernel.UUID) (PackHeader, error) {
	var (
		h                 PackHeader
		rawPack, rawOrder uuid.UUID
		dueDate           *time.Time
	)

	row := tx.Raw(`
		SELECT
			p.id,
			p.order_id,
			o.number,
			o.customer_name,
			o.ship_to,
			o.due_date,
			o.lead_time_plan,
			p.status
		FROM packs p
		JOIN orders o ON o.id = p.order_id
		WHERE p.id = ?
	`, packID.Bytes()).Row()

	err := row.Scan(
		&rawPack,
		&rawOrder,
		&h.OrderNo,
		&h.CustomerName,
		&h.ShipTo,
		&dueDate,
		&h.LeadTimePlan,
		&h.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PackHeader{}, errs.NewObjectNotFoundError("pack", packID.String())
		}
		return PackHeader{}, err
	}

	if h.PackID, err = kernel.UUIDFromBytes(rawPack[:]); err != nil {
		return PackHeader{}, err
	}
	if h.OrderID, err = kernel.UUIDFromBytes(rawOrder[:]); err != nil {
		return PackHeader{}, err
	}
	h.DueDate = formatDate(dueDate)
	return h, nil
}

func loadLineTotals(tx *gorm.DB, packID, orderID kernel.UUID) ([]LineSnapshot, error) {
	rows, err := tx.Raw(`
		SELECT
			l.id,
			l.product_code,
			l.length_in,
			l.height_in,
			l.finish,
			l.qty_ordered,
			COALESCE(SUM(i.qty), 0) AS packed_qty
		FROM order_lines l
		LEFT JOIN pack_boxes b ON b.pack_id = ?
		LEFT JOIN pack_box_items i ON i.box_id = b.id AND i.order_line_id = l.id
		WHERE l.order_id = ?
		GROUP BY l.id
		ORDER BY l.product_code, l.id
	`, packID.Bytes(), orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]LineSnapshot, 0)
	for rows.Next() {
		var (
			line LineSnapshot
			id   uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&line.ProductCode,
			&line.LengthIn,
			&line.HeightIn,
			&line.Finish,
			&line.QtyOrdered,
			&line.PackedQty,
		); err != nil {
			return nil, err
		}

		if line.LineID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		line.Remaining = max(0, line.QtyOrdered-line.PackedQty)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func loadBoxes(tx *gorm.DB, packID kernel.UUID) ([]BoxSnapshot, error) {
	rows, err := tx.Raw(`
		SELECT
			b.id,
			b.box_no,
			b.carton_type_id,
			c.name,
			COALESCE(b.length_in, c.length_in),
			COALESCE(b.width_in, c.width_in),
			COALESCE(b.height_in, c.height_in),
			b.weight_lbs,
			b.weight_entered,
			COALESCE(NULLIF(b.max_weight_lb, 0), NULLIF(c.max_weight_lb, 0), ?)
		FROM pack_boxes b
		LEFT JOIN carton_types c ON c.id = b.carton_type_id
		WHERE b.pack_id = ?
		ORDER BY b.box_no NULLS LAST, b.id
	`, DefaultMaxWeightLb, packID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boxes := make([]BoxSnapshot, 0)
	index := make(map[kernel.UUID]int)
	for rows.Next() {
		var (
			box       BoxSnapshot
			id        uuid.UUID
			cartonRaw *uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&box.BoxNo,
			&cartonRaw,
			&box.CartonTypeName,
			&box.LengthIn,
			&box.WidthIn,
			&box.HeightIn,
			&box.WeightLbs,
			&box.WeightEntered,
			&box.MaxWeightLb,
		); err != nil {
			return nil, err
		}

		if box.BoxID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if cartonRaw != nil {
			cartonID, idErr := kernel.UUIDFromBytes(cartonRaw[:])
			if idErr != nil {
				return nil, idErr
			}
			box.CartonTypeID = &cartonID
		}
		box.Label = BoxLabel(box.BoxNo, box.LengthIn, box.WidthIn, box.HeightIn, box.BoxID)
		box.Items = make([]BoxItemSnapshot, 0)

		index[box.BoxID] = len(boxes)
		boxes = append(boxes, box)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(tx, packID, boxes, index); err != nil {
		return nil, err
	}
	return boxes, nil
}

func attachItems(tx *gorm.DB, packID kernel.UUID, boxes []BoxSnapshot, index map[kernel.UUID]int) error {
	rows, err := tx.Raw(`
		SELECT
			i.id,
			i.box_id,
			i.order_line_id,
			l.product_code,
			i.qty
		FROM pack_box_items i
		JOIN pack_boxes b ON b.id = i.box_id
		JOIN order_lines l ON l.id = i.order_line_id
		WHERE b.pack_id = ?
		ORDER BY l.product_code, i.id
	`, packID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                BoxItemSnapshot
			itemID, boxID, line uuid.UUID
		)
		if err = rows.Scan(&itemID, &boxID, &line, &item.ProductCode, &item.Qty); err != nil {
			return err
		}

		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return err
		}
		if item.LineID, err = kernel.UUIDFromBytes(line[:]); err != nil {
			return err
		}
		owner, ownerErr := kernel.UUIDFromBytes(boxID[:])
		if ownerErr != nil {
			return ownerErr
		}

		if i, ok := index[owner]; ok {
			boxes[i].Items = append(boxes[i].Items, item)
		}
	}

	return rows.Err()
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

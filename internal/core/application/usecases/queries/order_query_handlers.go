package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderViewSelect joins each order with its line totals and its latest pack.
const orderViewSelect = `
	SELECT
		o.id,
		o.number,
		o.customer_name,
		o.ship_to,
		o.due_date,
		o.lead_time_plan,
		o.source,
		o.created_at,
		COALESCE(t.total_lines, 0),
		COALESCE(t.total_qty, 0),
		lp.status
	FROM orders o
	LEFT JOIN (
		SELECT order_id, COUNT(*) AS total_lines, SUM(qty_ordered) AS total_qty
		FROM order_lines
		GROUP BY order_id
	) t ON t.order_id = o.id
	LEFT JOIN LATERAL (
		SELECT p.status
		FROM packs p
		WHERE p.order_id = o.id
		ORDER BY p.started_at DESC, p.id DESC
		LIMIT 1
	) lp ON true`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := make([]string, 0, 4)
	args := make([]any, 0, 6)

	if query.Search() != "" {
		pattern := "%" + likeEscaper.Replace(query.Search()) + "%"
		where = append(where, "(o.number ILIKE ? OR o.customer_name ILIKE ? OR o.ship_to ILIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	switch query.PackStatus() {
	case "":
	case PackStatusNone:
		where = append(where, "lp.status IS NULL")
	default:
		where = append(where, "lp.status = ?")
		args = append(args, query.PackStatus())
	}
	if query.DueFrom() != nil {
		where = append(where, "o.due_date >= ?::date")
		args = append(args, query.DueFrom().Format(time.DateOnly))
	}
	if query.DueTo() != nil {
		where = append(where, "o.due_date <= ?::date")
		args = append(args, query.DueTo().Format(time.DateOnly))
	}

	var stmt strings.Builder
	stmt.WriteString(orderViewSelect)
	if len(where) > 0 {
		stmt.WriteString("\n\tWHERE " + strings.Join(where, " AND "))
	}
	stmt.WriteString("\n\tORDER BY " + orderByClause(query.Sort()) + "\n\tLIMIT ?")
	args = append(args, query.Limit())

	return scanOrderViews(h.db.WithContext(ctx).Raw(stmt.String(), args...))
}

// orderByClause renders whitelisted keys only; the id tiebreak keeps pages
// stable.
func orderByClause(sort []OrderSort) string {
	keys := make([]string, 0, len(sort)+1)
	for _, s := range sort {
		column, ok := orderSortColumns[s.Field]
		if !ok {
			continue
		}
		if s.Desc {
			keys = append(keys, column+" DESC NULLS LAST")
		} else {
			keys = append(keys, column+" ASC NULLS LAST")
		}
	}
	return strings.Join(append(keys, "o.id"), ", ")
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an order number never stored.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := scanOrderViews(h.db.WithContext(ctx).Raw(orderViewSelect+`
	WHERE o.number = ?
	`, query.OrderNo()))
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order_no", query.OrderNo())
	}
	return views[0], nil
}

type GetOrderLinesQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderLinesQueryHandler(db *gorm.DB) GetOrderLinesQueryHandler {
	return GetOrderLinesQueryHandler{db: db}
}

// Handle lists lines by product code. An unknown order is
// errs.ErrObjectNotFound, an order without lines an empty list.
func (h GetOrderLinesQueryHandler) Handle(ctx context.Context, query GetOrderLinesQuery) ([]OrderLineView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)

	var orderID uuid.UUID
	err := tx.Raw(`SELECT id FROM orders WHERE number = ?`, query.OrderNo()).Row().Scan(&orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order_no", query.OrderNo())
	}
	if err != nil {
		return nil, err
	}

	rows, err := tx.Raw(`
		SELECT id, product_code, length_in, height_in, finish, qty_ordered, build_note, product_tag
		FROM order_lines
		WHERE order_id = ?
		ORDER BY product_code, id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var (
			l  OrderLineView
			id uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&l.ProductCode,
			&l.LengthIn,
			&l.HeightIn,
			&l.Finish,
			&l.QtyOrdered,
			&l.BuildNote,
			&l.ProductTag,
		); err != nil {
			return nil, err
		}
		if l.LineID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// PreviewOrderQueryHandler reads from the order-entry system and stores
// nothing.
type PreviewOrderQueryHandler struct {
	provider ports.OrderProvider
}

// NewPreviewOrderQueryHandler accepts a nil provider; every preview is then
// errs.ErrObjectNotFound.
func NewPreviewOrderQueryHandler(provider ports.OrderProvider) PreviewOrderQueryHandler {
	return PreviewOrderQueryHandler{provider: provider}
}

func (h PreviewOrderQueryHandler) Handle(ctx context.Context, query PreviewOrderQuery) (OrderPreview, error) {
	if err := query.Validate(); err != nil {
		return OrderPreview{}, err
	}
	if h.provider == nil {
		return OrderPreview{}, errs.NewObjectNotFoundError("order_no", query.OrderNo())
	}

	ext, err := h.provider.FetchOrder(ctx, query.OrderNo())
	if err != nil {
		return OrderPreview{}, err
	}

	preview := OrderPreview{
		OrderNo:      ext.Header.Number,
		CustomerName: ext.Header.CustomerName,
		ShipTo:       ext.Header.ShipTo,
		DueDate:      formatDate(ext.Header.DueDate),
		LeadTimePlan: ext.Header.LeadTimePlan,
		Lines:        make([]OrderPreviewLine, 0, len(ext.Lines)),
	}
	if preview.OrderNo == "" {
		preview.OrderNo = query.OrderNo()
	}
	for _, d := range ext.Lines {
		preview.Lines = append(preview.Lines, OrderPreviewLine{
			ProductCode: d.ProductCode,
			LengthIn:    d.LengthIn,
			HeightIn:    d.HeightIn,
			Finish:      d.Finish,
			QtyOrdered:  d.QtyOrdered,
			BuildNote:   d.BuildNote,
			ProductTag:  d.ProductTag,
		})
		preview.TotalQty += d.QtyOrdered
	}
	preview.TotalLines = len(preview.Lines)

	return preview, nil
}

func scanOrderViews(stmt *gorm.DB) ([]OrderView, error) {
	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			v       OrderView
			id      uuid.UUID
			dueDate *time.Time
		)
		if err = rows.Scan(
			&id,
			&v.OrderNo,
			&v.CustomerName,
			&v.ShipTo,
			&dueDate,
			&v.LeadTimePlan,
			&v.Source,
			&v.CreatedAt,
			&v.TotalLines,
			&v.TotalQty,
			&v.PackStatus,
		); err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		v.DueDate = formatDate(dueDate)
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

const (
	DefaultOrderListLimit = 500
	MaxOrderListLimit     = 2000

	// PackStatusNone filters orders that were never packed.
	PackStatusNone = "none"

	defaultOrderSort = "-created_at"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetOrderLinesQueryIsNotConstructed = errors.New(
		"GetOrderLinesQuery must be created via NewGetOrderLinesQuery constructor",
	)
	ErrPreviewOrderQueryIsNotConstructed = errors.New(
		"PreviewOrderQuery must be created via NewPreviewOrderQuery constructor",
	)
)

// orderSortColumns whitelists the sortable fields.
var orderSortColumns = map[string]string{
	"created_at":    "o.created_at",
	"due_date":      "o.due_date",
	"order_no":      "o.number",
	"customer_name": "o.customer_name",
}

// OrderFilter holds the raw list parameters. Zero values mean no filter,
// Limit 0 means DefaultOrderListLimit and an empty Sort means newest first.
type OrderFilter struct {
	Search     string
	PackStatus string
	DueFrom    *time.Time
	DueTo      *time.Time
	Sort       string
	Limit      int
}

// OrderSort is one sort key; Field is a key of the sortable field list.
type OrderSort struct {
	Field string
	Desc  bool
}

// ListOrdersQuery searches stored orders.
//
// Example:
//
//	query, err := NewListOrdersQuery(OrderFilter{Search: "acme", Sort: "due_date,-order_no"})
type ListOrdersQuery struct {
	search     string
	packStatus string
	dueFrom    *time.Time
	dueTo      *time.Time
	sort       []OrderSort
	limit      int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery rejects unknown pack statuses and sort fields and an
// inverted due date range. The limit is clamped to [1, MaxOrderListLimit].
func NewListOrdersQuery(filter OrderFilter) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		search:  strings.TrimSpace(filter.Search),
		dueFrom: filter.DueFrom,
		dueTo:   filter.DueTo,
		limit:   clampOrderLimit(filter.Limit),
		guard:   guard.NewConstructorGuard(),
	}

	if status := strings.TrimSpace(filter.PackStatus); status != "" && status != PackStatusNone {
		parsed, err := pack.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		q.packStatus = parsed.String()
	} else {
		q.packStatus = status
	}

	if q.dueFrom != nil && q.dueTo != nil && q.dueTo.Before(*q.dueFrom) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"due date range", fmt.Errorf("%s is before %s", q.dueTo.Format(time.DateOnly), q.dueFrom.Format(time.DateOnly)),
		)
	}

	sort, err := parseOrderSort(filter.Sort)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.sort = sort

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search matches order number, customer and ship-to, case-insensitively.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// PackStatus is "", PackStatusNone or a pack status name.
func (q ListOrdersQuery) PackStatus() string {
	return q.packStatus
}

func (q ListOrdersQuery) DueFrom() *time.Time {
	return q.dueFrom
}

func (q ListOrdersQuery) DueTo() *time.Time {
	return q.dueTo
}

func (q ListOrdersQuery) Sort() []OrderSort {
	return q.sort
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func clampOrderLimit(limit int) int {
	if limit == 0 {
		return DefaultOrderListLimit
	}
	return min(max(limit, 1), MaxOrderListLimit)
}

// parseOrderSort reads a comma-separated key list where a leading "-" sorts
// descending.
func parseOrderSort(raw string) ([]OrderSort, error) {
	if strings.TrimSpace(raw) == "" {
		raw = defaultOrderSort
	}

	sort := make([]OrderSort, 0)
	seen := make(map[string]struct{})
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		s := OrderSort{Field: strings.TrimPrefix(key, "-"), Desc: strings.HasPrefix(key, "-")}
		s.Field = strings.TrimPrefix(s.Field, "+")
		if _, ok := orderSortColumns[s.Field]; !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not sortable", s.Field))
		}
		if _, dup := seen[s.Field]; dup {
			continue
		}
		seen[s.Field] = struct{}{}
		sort = append(sort, s)
	}
	return sort, nil
}

// GetOrderQuery reads one stored order by number.
type GetOrderQuery struct {
	orderNo string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderNo string) (GetOrderQuery, error) {
	orderNo, err := requireOrderNo(orderNo)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderNo() string {
	return q.orderNo
}

// GetOrderLinesQuery reads the lines of one stored order.
type GetOrderLinesQuery struct {
	orderNo string

	guard guard.ConstructorGuard
}

func NewGetOrderLinesQuery(orderNo string) (GetOrderLinesQuery, error) {
	orderNo, err := requireOrderNo(orderNo)
	if err != nil {
		return GetOrderLinesQuery{}, err
	}
	return GetOrderLinesQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderLinesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLinesQueryIsNotConstructed)
}

func (q GetOrderLinesQuery) OrderNo() string {
	return q.orderNo
}

// PreviewOrderQuery reads an order straight from the order-entry system.
type PreviewOrderQuery struct {
	orderNo string

	guard guard.ConstructorGuard
}

func NewPreviewOrderQuery(orderNo string) (PreviewOrderQuery, error) {
	orderNo, err := requireOrderNo(orderNo)
	if err != nil {
		return PreviewOrderQuery{}, err
	}
	return PreviewOrderQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

func (q PreviewOrderQuery) Validate() error {
	return q.guard.Validate(ErrPreviewOrderQueryIsNotConstructed)
}

func (q PreviewOrderQuery) OrderNo() string {
	return q.orderNo
}

func requireOrderNo(orderNo string) (string, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return "", errs.NewValueIsRequiredError("order_no")
	}
	return orderNo, nil
}

// OrderView is a stored order with line totals. PackStatus is the status of
// its most recent pack, nil when it was never packed.
type OrderView struct {
	ID           kernel.UUID
	OrderNo      string
	CustomerName string
	ShipTo       string
	DueDate      *string
	LeadTimePlan string
	Source       string
	CreatedAt    time.Time
	TotalLines   int
	TotalQty     int
	PackStatus   *string
}

type OrderLineView struct {
	LineID      kernel.UUID
	ProductCode string
	LengthIn    int
	HeightIn    int
	Finish      string
	QtyOrdered  int
	BuildNote   *string
	ProductTag  *string
}

// OrderPreview is an order as the order-entry system holds it right now.
type OrderPreview struct {
	OrderNo      string
	CustomerName string
	ShipTo       string
	DueDate      *string
	LeadTimePlan string
	Lines        []OrderPreviewLine
	TotalLines   int
	TotalQty     int
}

type OrderPreviewLine struct {
	ProductCode string
	LengthIn    int
	HeightIn    int
	Finish      string
	QtyOrdered  int
	BuildNote   *string
	ProductTag  *string
}

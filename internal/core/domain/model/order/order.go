package order

import (
	"errors"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// SourceOES tags orders mirrored from the order-entry system.
const SourceOES = "OES"

// Header carries the descriptive fields of an order as supplied by the
// order-entry system. Only Number is mandatory.
type Header struct {
	Number       string
	CustomerName string
	ShipTo       string
	DueDate      *time.Time
	LeadTimePlan string
	Source       string
}

// Order is the local mirror of one external sales order. It is the aggregate
// root of its lines; lines are never added once packing started, so the
// aggregate is effectively read-only for the allocation engine.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty order number
//   - Every line belongs to this order and has a unique id
type Order struct {
	id     kernel.UUID
	header Header
	lines  []*Line

	isConstructed bool
}

// NewOrder creates an order without lines.
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Header{Number: "100234", Source: order.SourceOES})
//	line, err := o.AddLine(kernel.NewUUID(), order.LineDetails{ProductCode: "LG-24", QtyOrdered: 5})
func NewOrder(id kernel.UUID, header Header) (*Order, error) {
	o := &Order{
		lines:         make([]*Line, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setHeader(header),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence.
func RestoreOrder(id kernel.UUID, header Header, lines []*Line) (*Order, error) {
	o, err := NewOrder(id, header)
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		if err = o.attach(l); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.header.Number
}

func (o *Order) CustomerName() string {
	return o.header.CustomerName
}

func (o *Order) ShipTo() string {
	return o.header.ShipTo
}

func (o *Order) DueDate() *time.Time {
	return o.header.DueDate
}

func (o *Order) LeadTimePlan() string {
	return o.header.LeadTimePlan
}

func (o *Order) Source() string {
	return o.header.Source
}

// Header returns a copy of the descriptive fields.
func (o *Order) Header() Header {
	return o.header
}

// Lines returns the order lines in insertion order.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Line finds a line of this order. A line id that belongs to another order is
// reported as not found.
func (o *Order) Line(id kernel.UUID) (*Line, error) {
	for _, l := range o.lines {
		if l.id.IsEqual(id) {
			return l, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order_line_id", id.String())
}

// AddLine appends a new line to the order.
func (o *Order) AddLine(id kernel.UUID, details LineDetails) (*Line, error) {
	l, err := NewLine(id, o.id, details)
	if err != nil {
		return nil, err
	}

	if err = o.attach(l); err != nil {
		return nil, err
	}

	return l, nil
}

func (o *Order) attach(l *Line) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if !l.orderID.IsEqual(o.id) {
		return errs.NewValueIsInvalidError("order line belongs to another order")
	}
	if _, err := o.Line(l.id); err == nil {
		return errs.NewValueIsInvalidError("order line id is duplicated")
	}

	o.lines = append(o.lines, l)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setHeader(header Header) error {
	header.Number = strings.TrimSpace(header.Number)
	if header.Number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.header = header
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// LineDetails are the attributes of an order line. Length and height are whole
// inches; source values are rounded with kernel.RoundInches before they get here.
type LineDetails struct {
	ProductCode string
	LengthIn    int
	HeightIn    int
	Finish      string
	QtyOrdered  int
	BuildNote   *string
	ProductTag  *string
}

// Line is one product/quantity entry of an order.
type Line struct {
	id      kernel.UUID
	orderID kernel.UUID
	details LineDetails

	isConstructed bool
}

// NewLine validates line attributes. Use Order.AddLine to attach a line to its order.
func NewLine(id kernel.UUID, orderID kernel.UUID, details LineDetails) (*Line, error) {
	l := &Line{isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		l.setDetails(details),
	); err != nil {
		return nil, err
	}

	l.id = id
	l.orderID = orderID
	return l, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) OrderID() kernel.UUID {
	return l.orderID
}

func (l *Line) ProductCode() string {
	return l.details.ProductCode
}

func (l *Line) LengthIn() int {
	return l.details.LengthIn
}

func (l *Line) HeightIn() int {
	return l.details.HeightIn
}

func (l *Line) Finish() string {
	return l.details.Finish
}

// QtyOrdered is the upper bound of the quantity that may be packed for this line.
func (l *Line) QtyOrdered() int {
	return l.details.QtyOrdered
}

func (l *Line) BuildNote() *string {
	return l.details.BuildNote
}

func (l *Line) ProductTag() *string {
	return l.details.ProductTag
}

// Details returns a copy of the line attributes.
func (l *Line) Details() LineDetails {
	return l.details
}

func (l *Line) setDetails(d LineDetails) error {
	d.ProductCode = strings.TrimSpace(d.ProductCode)

	var problems []error
	if d.ProductCode == "" {
		problems = append(problems, errs.NewValueIsRequiredError("product code"))
	}
	if d.QtyOrdered < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"qty ordered is invalid", fmt.Errorf("%d is negative", d.QtyOrdered)))
	}
	if d.LengthIn < 0 || d.HeightIn < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"line size is invalid", fmt.Errorf("%dx%d has a negative side", d.LengthIn, d.HeightIn)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	l.details = d
	return nil
}

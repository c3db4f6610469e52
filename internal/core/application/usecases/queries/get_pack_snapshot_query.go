package queries

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var (
	ErrGetPackSnapshotQueryIsNotConstructed = errors.New(
		"GetPackSnapshotQuery must be created via NewGetPackSnapshotQuery constructor",
	)
)

// DefaultMaxWeightLb applies when neither the box nor its carton type carries a limit.
const DefaultMaxWeightLb = 40

// GetPackSnapshotQuery reads the full allocation state of one pack.
//
// Example:
//
//	query, err := NewGetPackSnapshotQuery(packID)
//	if err != nil {
//	    return err
//	}
//	snapshot, err := handler.Handle(ctx, query)
type GetPackSnapshotQuery struct {
	packID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPackSnapshotQuery(packID kernel.UUID) (GetPackSnapshotQuery, error) {
	if err := packID.Validate(); err != nil {
		return GetPackSnapshotQuery{}, err
	}

	return GetPackSnapshotQuery{
		packID: packID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetPackSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetPackSnapshotQueryIsNotConstructed)
}

func (q GetPackSnapshotQuery) PackID() kernel.UUID {
	return q.packID
}

// PackSnapshot is the display state of a pack: header, per-line totals and boxes.
type PackSnapshot struct {
	Header PackHeader
	Lines  []LineSnapshot
	Boxes  []BoxSnapshot
}

// PackHeader carries the order attributes shown above a pack.
// DueDate is formatted YYYY-MM-DD.
type PackHeader struct {
	PackID       kernel.UUID
	OrderID      kernel.UUID
	OrderNo      string
	CustomerName string
	ShipTo       string
	DueDate      *string
	LeadTimePlan string
	Status       string
}

// LineSnapshot reports how much of an order line is packed. Remaining never
// goes below zero.
type LineSnapshot struct {
	LineID      kernel.UUID
	ProductCode string
	LengthIn    int
	HeightIn    int
	Finish      string
	QtyOrdered  int
	PackedQty   int
	Remaining   int
}

// BoxSnapshot is one box with resolved dimensions and weight limit.
type BoxSnapshot struct {
	BoxID          kernel.UUID
	BoxNo          *int
	Label          string
	CartonTypeID   *kernel.UUID
	CartonTypeName *string
	LengthIn       *int
	WidthIn        *int
	HeightIn       *int
	WeightLbs      *int
	WeightEntered  *float64
	MaxWeightLb    int
	Items          []BoxItemSnapshot
}

type BoxItemSnapshot struct {
	ItemID      kernel.UUID
	LineID      kernel.UUID
	ProductCode string
	Qty         int
}

// BoxLabel renders "Box 3 (24x18x6 in)" when every dimension is known,
// "Box 3" otherwise, and falls back to the box id when the number is unknown.
func BoxLabel(boxNo *int, length, width, height *int, id kernel.UUID) string {
	if boxNo == nil {
		return fmt.Sprintf("Box #%s", id)
	}
	if length != nil && width != nil && height != nil {
		return fmt.Sprintf("Box %d (%dx%dx%d in)", *boxNo, *length, *width, *height)
	}
	return fmt.Sprintf("Box %d", *boxNo)
}

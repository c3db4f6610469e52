package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrSetItemQtyCommandIsNotConstructed = errors.New(
	"SetItemQtyCommand must be created via NewSetItemQtyCommand constructor",
)

// SetItemQtyCommand sets the exact quantity of a line in a box; zero removes
// the item.
type SetItemQtyCommand struct { //nolint:recvcheck //using for validation
	packID kernel.UUID
	boxID  kernel.UUID
	lineID kernel.UUID
	qty    int

	guard guard.ConstructorGuard
}

func NewSetItemQtyCommand(packID, boxID, lineID kernel.UUID, qty int) (SetItemQtyCommand, error) {
	if err := errors.Join(packID.Validate(), boxID.Validate(), lineID.Validate()); err != nil {
		return SetItemQtyCommand{}, err
	}
	if qty < 0 {
		return SetItemQtyCommand{}, errs.NewValueIsOutOfRangeError("qty", qty, 0, "qty_ordered")
	}

	return SetItemQtyCommand{
		packID: packID,
		boxID:  boxID,
		lineID: lineID,
		qty:    qty,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SetItemQtyCommand) Validate() error {
	return c.guard.Validate(ErrSetItemQtyCommandIsNotConstructed)
}

func (c SetItemQtyCommand) PackID() kernel.UUID {
	return c.packID
}

func (c SetItemQtyCommand) BoxID() kernel.UUID {
	return c.boxID
}

func (c SetItemQtyCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c SetItemQtyCommand) Qty() int {
	return c.qty
}

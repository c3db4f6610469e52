package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand takes qty units of a line out of a box. Pair history is
// left untouched.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	packID kernel.UUID
	boxID  kernel.UUID
	lineID kernel.UUID
	qty    int

	guard guard.ConstructorGuard
}

func NewRemoveItemCommand(packID, boxID, lineID kernel.UUID, qty int) (RemoveItemCommand, error) {
	if err := errors.Join(packID.Validate(), boxID.Validate(), lineID.Validate()); err != nil {
		return RemoveItemCommand{}, err
	}
	if qty < 1 {
		return RemoveItemCommand{}, errs.NewValueIsOutOfRangeError("qty", qty, 1, "item quantity")
	}

	return RemoveItemCommand{
		packID: packID,
		boxID:  boxID,
		lineID: lineID,
		qty:    qty,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

func (c RemoveItemCommand) PackID() kernel.UUID {
	return c.packID
}

func (c RemoveItemCommand) BoxID() kernel.UUID {
	return c.boxID
}

func (c RemoveItemCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c RemoveItemCommand) Qty() int {
	return c.qty
}

package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrAssignOneCommandIsNotConstructed = errors.New(
	"AssignOneCommand must be created via NewAssignOneCommand constructor",
)

// AssignOneCommand adds one unit of an order line to a box.
//
// Example:
//
//	cmd, err := NewAssignOneCommand(packID, lineID, boxID)
//	err = handler.Handle(ctx, cmd)
type AssignOneCommand struct { //nolint:recvcheck //using for validation
	packID kernel.UUID
	lineID kernel.UUID
	boxID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignOneCommand(packID, lineID, boxID kernel.UUID) (AssignOneCommand, error) {
	if err := errors.Join(packID.Validate(), lineID.Validate(), boxID.Validate()); err != nil {
		return AssignOneCommand{}, err
	}

	return AssignOneCommand{
		packID: packID,
		lineID: lineID,
		boxID:  boxID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOneCommand) Validate() error {
	return c.guard.Validate(ErrAssignOneCommandIsNotConstructed)
}

func (c AssignOneCommand) PackID() kernel.UUID {
	return c.packID
}

func (c AssignOneCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c AssignOneCommand) BoxID() kernel.UUID {
	return c.boxID
}

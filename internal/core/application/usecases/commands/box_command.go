package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrBoxCommandIsNotConstructed = errors.New(
	"BoxCommand must be created via NewBoxCommand constructor",
)

// BoxCommand addresses one box of a pack. DeleteBoxCommandHandler and
// DuplicateBoxCommandHandler take it.
type BoxCommand struct { //nolint:recvcheck //using for validation
	packID kernel.UUID
	boxID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewBoxCommand(packID, boxID kernel.UUID) (BoxCommand, error) {
	if err := errors.Join(packID.Validate(), boxID.Validate()); err != nil {
		return BoxCommand{}, err
	}

	return BoxCommand{
		packID: packID,
		boxID:  boxID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c BoxCommand) Validate() error {
	return c.guard.Validate(ErrBoxCommandIsNotConstructed)
}

func (c BoxCommand) PackID() kernel.UUID {
	return c.packID
}

func (c BoxCommand) BoxID() kernel.UUID {
	return c.boxID
}

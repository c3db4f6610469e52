package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrCompletePackCommandIsNotConstructed = errors.New(
	"CompletePackCommand must be created via NewCompletePackCommand constructor",
)

type CompletePackCommand struct { //nolint:recvcheck //using for validation
	packID      kernel.UUID
	completedBy *int64

	guard guard.ConstructorGuard
}

func NewCompletePackCommand(packID kernel.UUID, completedBy *int64) (CompletePackCommand, error) {
	if err := packID.Validate(); err != nil {
		return CompletePackCommand{}, err
	}

	return CompletePackCommand{
		packID:      packID,
		completedBy: completedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CompletePackCommand) Validate() error {
	return c.guard.Validate(ErrCompletePackCommandIsNotConstructed)
}

func (c CompletePackCommand) PackID() kernel.UUID {
	return c.packID
}

func (c CompletePackCommand) CompletedBy() *int64 {
	return c.completedBy
}

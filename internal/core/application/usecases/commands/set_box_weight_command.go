package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/guard"
)

var ErrSetBoxWeightCommandIsNotConstructed = errors.New(
	"SetBoxWeightCommand must be created via NewSetBoxWeightCommand constructor",
)

// SetBoxWeightCommand records or, with a nil weight, clears a box weight.
type SetBoxWeightCommand struct { //nolint:recvcheck //using for validation
	packID kernel.UUID
	boxID  kernel.UUID
	weight *pack.Weight

	guard guard.ConstructorGuard
}

// NewSetBoxWeightCommand rejects weights outside 0 < w <= 500.
func NewSetBoxWeightCommand(packID, boxID kernel.UUID, entered *float64) (SetBoxWeightCommand, error) {
	if err := errors.Join(packID.Validate(), boxID.Validate()); err != nil {
		return SetBoxWeightCommand{}, err
	}

	cmd := SetBoxWeightCommand{
		packID: packID,
		boxID:  boxID,
		guard:  guard.NewConstructorGuard(),
	}

	if entered != nil {
		w, err := pack.NewWeight(*entered)
		if err != nil {
			return SetBoxWeightCommand{}, err
		}
		cmd.weight = &w
	}

	return cmd, nil
}

func (c SetBoxWeightCommand) Validate() error {
	return c.guard.Validate(ErrSetBoxWeightCommandIsNotConstructed)
}

func (c SetBoxWeightCommand) PackID() kernel.UUID {
	return c.packID
}

func (c SetBoxWeightCommand) BoxID() kernel.UUID {
	return c.boxID
}

// Weight is nil when the weight is being cleared.
func (c SetBoxWeightCommand) Weight() *pack.Weight {
	return c.weight
}

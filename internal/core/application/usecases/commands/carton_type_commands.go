package commands

import (
	"errors"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var (
	ErrCreateCartonTypeCommandIsNotConstructed = errors.New(
		"CreateCartonTypeCommand must be created via NewCreateCartonTypeCommand constructor",
	)
	ErrUpdateCartonTypeCommandIsNotConstructed = errors.New(
		"UpdateCartonTypeCommand must be created via NewUpdateCartonTypeCommand constructor",
	)
	ErrAdjustCartonInventoryCommandIsNotConstructed = errors.New(
		"AdjustCartonInventoryCommand must be created via NewAdjustCartonInventoryCommand constructor",
	)
)

// CreateCartonTypeCommand registers a catalog carton with an opening stock.
type CreateCartonTypeCommand struct { //nolint:recvcheck //using for validation
	details        carton.Details
	quantityOnHand int

	guard guard.ConstructorGuard
}

// NewCreateCartonTypeCommand leaves detail validation to the aggregate.
func NewCreateCartonTypeCommand(details carton.Details, quantityOnHand int) CreateCartonTypeCommand {
	return CreateCartonTypeCommand{
		details:        details,
		quantityOnHand: quantityOnHand,
		guard:          guard.NewConstructorGuard(),
	}
}

func (c CreateCartonTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateCartonTypeCommandIsNotConstructed)
}

func (c CreateCartonTypeCommand) Details() carton.Details {
	return c.details
}

func (c CreateCartonTypeCommand) QuantityOnHand() int {
	return c.quantityOnHand
}

// UpdateCartonTypeCommand replaces the editable attributes of a carton type.
type UpdateCartonTypeCommand struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	details carton.Details

	guard guard.ConstructorGuard
}

func NewUpdateCartonTypeCommand(id kernel.UUID, details carton.Details) (UpdateCartonTypeCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateCartonTypeCommand{}, err
	}

	return UpdateCartonTypeCommand{
		id:      id,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartonTypeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartonTypeCommandIsNotConstructed)
}

func (c UpdateCartonTypeCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdateCartonTypeCommand) Details() carton.Details {
	return c.details
}

// AdjustCartonInventoryCommand applies a signed delta to quantity on hand.
type AdjustCartonInventoryCommand struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	delta int

	guard guard.ConstructorGuard
}

func NewAdjustCartonInventoryCommand(id kernel.UUID, delta int) (AdjustCartonInventoryCommand, error) {
	if err := id.Validate(); err != nil {
		return AdjustCartonInventoryCommand{}, err
	}

	return AdjustCartonInventoryCommand{
		id:    id,
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AdjustCartonInventoryCommand) Validate() error {
	return c.guard.Validate(ErrAdjustCartonInventoryCommandIsNotConstructed)
}

func (c AdjustCartonInventoryCommand) ID() kernel.UUID {
	return c.id
}

func (c AdjustCartonInventoryCommand) Delta() int {
	return c.delta
}

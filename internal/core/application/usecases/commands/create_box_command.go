package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrCreateBoxCommandIsNotConstructed = errors.New(
	"CreateBoxCommand must be created via NewCreateBoxCommand constructor",
)

// CreateBoxCommand adds an empty box to a pack.
//
// Example:
//
//	spec, err := pack.NewBoxSpec(nil, &length, &width, &height)
//	cmd, err := NewCreateBoxCommand(packID, spec, nil)
//	created, err := handler.Handle(ctx, cmd)
type CreateBoxCommand struct { //nolint:recvcheck //using for validation
	packID      kernel.UUID
	spec        pack.BoxSpec
	maxWeightLb *int

	guard guard.ConstructorGuard
}

// NewCreateBoxCommand accepts an optional max weight override.
func NewCreateBoxCommand(packID kernel.UUID, spec pack.BoxSpec, maxWeightLb *int) (CreateBoxCommand, error) {
	if err := packID.Validate(); err != nil {
		return CreateBoxCommand{}, err
	}
	if spec == nil {
		return CreateBoxCommand{}, errs.NewValueIsRequiredError("box spec")
	}

	return CreateBoxCommand{
		packID:      packID,
		spec:        spec,
		maxWeightLb: maxWeightLb,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBoxCommand) Validate() error {
	return c.guard.Validate(ErrCreateBoxCommandIsNotConstructed)
}

func (c CreateBoxCommand) PackID() kernel.UUID {
	return c.packID
}

func (c CreateBoxCommand) Spec() pack.BoxSpec {
	return c.spec
}

func (c CreateBoxCommand) MaxWeightLb() *int {
	return c.maxWeightLb
}

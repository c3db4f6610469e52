package commands

import (
	"context"

	"packing/internal/core/domain/services"
)

// AssignOneCommandHandler adds one unit of a line to a box under the pack's
// row lock, enforcing the remaining quantity and the pair rule.
//
// Example:
//
//	handler := NewAssignOneCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	var overpack *pack.OverpackError
//	if errors.As(err, &overpack) {
//	    // line is fully packed
//	}
type AssignOneCommandHandler struct {
	uowFactory PackUoWFactory
	allocator  services.Allocator
}

func NewAssignOneCommandHandler(uowFactory PackUoWFactory) AssignOneCommandHandler {
	return AssignOneCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewAllocator(),
	}
}

// Handle runs the whole allocation in one transaction; any failure rolls back
// both the item change and newly recorded pairs.
func (h AssignOneCommandHandler) Handle(ctx context.Context, cmd AssignOneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	state, err := lockPackState(ctx, uow, cmd.PackID(), true)
	if err != nil {
		return err
	}

	if err = h.allocator.AssignOne(state.pack, state.order, state.index, cmd.BoxID(), cmd.LineID()); err != nil {
		return err
	}

	if err = uow.PackRepository().Update(ctx, state.pack); err != nil {
		return err
	}

	if err = uow.PairGuardRepository().Save(ctx, state.index); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

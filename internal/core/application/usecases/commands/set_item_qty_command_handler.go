package commands

import (
	"context"

	"packing/internal/core/domain/services"
)

type SetItemQtyCommandHandler struct {
	uowFactory PackUoWFactory
	allocator  services.Allocator
}

func NewSetItemQtyCommandHandler(uowFactory PackUoWFactory) SetItemQtyCommandHandler {
	return SetItemQtyCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewAllocator(),
	}
}

func (h SetItemQtyCommandHandler) Handle(ctx context.Context, cmd SetItemQtyCommand) error {
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

	if err = h.allocator.SetQty(state.pack, state.order, state.index, cmd.BoxID(), cmd.LineID(), cmd.Qty()); err != nil {
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

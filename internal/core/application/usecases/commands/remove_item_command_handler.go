package commands

import (
	"context"
)

type RemoveItemCommandHandler struct {
	uowFactory PackUoWFactory
}

func NewRemoveItemCommandHandler(uowFactory PackUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	packRepo := uow.PackRepository()
	p, err := packRepo.GetForUpdate(ctx, cmd.PackID())
	if err != nil {
		return err
	}

	if err = p.RemoveItem(cmd.BoxID(), cmd.LineID(), cmd.Qty()); err != nil {
		return err
	}

	if err = packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

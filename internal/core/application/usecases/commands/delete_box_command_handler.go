package commands

import (
	"context"
)

// DeleteBoxCommandHandler deletes an empty box and renumbers the remaining
// boxes 1..N in the same transaction.
type DeleteBoxCommandHandler struct {
	uowFactory PackUoWFactory
}

func NewDeleteBoxCommandHandler(uowFactory PackUoWFactory) DeleteBoxCommandHandler {
	return DeleteBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteBoxCommandHandler) Handle(ctx context.Context, cmd BoxCommand) error {
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

	if err = p.DeleteBoxIfEmpty(cmd.BoxID()); err != nil {
		return err
	}

	if err = packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

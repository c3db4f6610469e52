package commands

import (
	"context"
)

type SetBoxWeightCommandHandler struct {
	uowFactory PackUoWFactory
}

func NewSetBoxWeightCommandHandler(uowFactory PackUoWFactory) SetBoxWeightCommandHandler {
	return SetBoxWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetBoxWeightCommandHandler) Handle(ctx context.Context, cmd SetBoxWeightCommand) error {
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

	if err = p.SetBoxWeight(cmd.BoxID(), cmd.Weight()); err != nil {
		return err
	}

	if err = packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

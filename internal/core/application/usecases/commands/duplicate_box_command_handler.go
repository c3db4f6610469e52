package commands

import (
	"context"
)

// DuplicateBoxCommandHandler clones a box with its items. The clone reproduces
// an existing co-location, so the pair rule is not consulted.
type DuplicateBoxCommandHandler struct {
	uowFactory PackUoWFactory
}

func NewDuplicateBoxCommandHandler(uowFactory PackUoWFactory) DuplicateBoxCommandHandler {
	return DuplicateBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DuplicateBoxCommandHandler) Handle(ctx context.Context, cmd BoxCommand) (CreatedBox, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedBox{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedBox{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	state, err := lockPackState(ctx, uow, cmd.PackID(), false)
	if err != nil {
		return CreatedBox{}, err
	}

	clone, err := state.pack.DuplicateBox(cmd.BoxID(), state.order)
	if err != nil {
		return CreatedBox{}, err
	}

	if err = uow.PackRepository().Update(ctx, state.pack); err != nil {
		return CreatedBox{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedBox{}, err
	}

	return CreatedBox{BoxID: clone.ID(), BoxNo: clone.Number()}, nil
}

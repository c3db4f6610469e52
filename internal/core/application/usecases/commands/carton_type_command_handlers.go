package commands

import (
	"context"
	"time"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
)

type CreateCartonTypeCommandHandler struct {
	uowFactory CartonUoWFactory
}

func NewCreateCartonTypeCommandHandler(uowFactory CartonUoWFactory) CreateCartonTypeCommandHandler {
	return CreateCartonTypeCommandHandler{uowFactory: uowFactory}
}

func (h CreateCartonTypeCommandHandler) Handle(ctx context.Context, cmd CreateCartonTypeCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()
	c, err := carton.NewCartonType(kernel.NewUUID(), cmd.Details(), now)
	if err != nil {
		return kernel.UUID{}, err
	}
	c.AdjustInventory(cmd.QuantityOnHand(), now)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CartonTypeRepository().Add(ctx, c); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return c.ID(), nil
}

type UpdateCartonTypeCommandHandler struct {
	uowFactory CartonUoWFactory
}

func NewUpdateCartonTypeCommandHandler(uowFactory CartonUoWFactory) UpdateCartonTypeCommandHandler {
	return UpdateCartonTypeCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCartonTypeCommandHandler) Handle(ctx context.Context, cmd UpdateCartonTypeCommand) error {
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

	repo := uow.CartonTypeRepository()
	c, err := repo.GetForUpdate(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = c.Update(cmd.Details(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// AdjustCartonInventoryCommandHandler returns the new quantity on hand. The
// counter has no floor.
type AdjustCartonInventoryCommandHandler struct {
	uowFactory CartonUoWFactory
}

func NewAdjustCartonInventoryCommandHandler(uowFactory CartonUoWFactory) AdjustCartonInventoryCommandHandler {
	return AdjustCartonInventoryCommandHandler{uowFactory: uowFactory}
}

func (h AdjustCartonInventoryCommandHandler) Handle(ctx context.Context, cmd AdjustCartonInventoryCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartonTypeRepository()
	c, err := repo.GetForUpdate(ctx, cmd.ID())
	if err != nil {
		return 0, err
	}

	c.AdjustInventory(cmd.Delta(), time.Now().UTC())

	if err = repo.Update(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return c.QuantityOnHand(), nil
}

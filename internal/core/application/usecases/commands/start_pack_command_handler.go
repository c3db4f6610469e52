package commands

import (
	"context"
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"
)

// startPackAttempts covers one lost race against a concurrent start: the loser
// re-reads and reuses the winner's order and pack.
const startPackAttempts = 2

// StartPackCommandHandler finds or imports the order and returns its
// in-progress pack, starting one when there is none.
//
// Example:
//
//	handler := NewStartPackCommandHandler(uowFactory, oesProvider)
//	packID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order number
//	}
type StartPackCommandHandler struct {
	uowFactory PackUoWFactory
	importer   orderImporter
}

// NewStartPackCommandHandler accepts a nil provider; orders are then only
// looked up locally.
func NewStartPackCommandHandler(uowFactory PackUoWFactory, provider ports.OrderProvider) StartPackCommandHandler {
	return StartPackCommandHandler{
		uowFactory: uowFactory,
		importer:   orderImporter{provider: provider},
	}
}

func (h StartPackCommandHandler) Handle(ctx context.Context, cmd StartPackCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var (
		packID kernel.UUID
		err    error
	)
	for range startPackAttempts {
		packID, err = h.start(ctx, cmd)
		if !errors.Is(err, errs.ErrConflict) {
			return packID, err
		}
	}

	return kernel.UUID{}, err
}

func (h StartPackCommandHandler) start(ctx context.Context, cmd StartPackCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	packRepo := uow.PackRepository()

	o, _, err := h.importer.findOrImport(ctx, orderRepo, cmd.OrderNo())
	if err != nil {
		return kernel.UUID{}, err
	}

	p, err := packRepo.FindInProgressByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if p, err = pack.NewPack(kernel.NewUUID(), o.ID(), cmd.StartedBy(), time.Now().UTC()); err != nil {
			return kernel.UUID{}, err
		}
		if err = packRepo.Add(ctx, p); err != nil {
			return kernel.UUID{}, err
		}
	case err != nil:
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}

package commands

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"
)

// syncOrderAttempts covers one lost race against a concurrent import of the
// same number.
const syncOrderAttempts = 2

// SyncedOrder summarizes the local copy of an order.
type SyncedOrder struct {
	OrderID    kernel.UUID
	OrderNo    string
	Imported   bool
	TotalLines int
	TotalQty   int
}

// SyncOrderCommandHandler imports an order the same way starting a pack does,
// but leaves packing untouched. An order already stored is reported as is.
type SyncOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	importer   orderImporter
}

// NewSyncOrderCommandHandler accepts a nil provider; only stored orders are
// then found.
func NewSyncOrderCommandHandler(uowFactory OrderUoWFactory, provider ports.OrderProvider) SyncOrderCommandHandler {
	return SyncOrderCommandHandler{
		uowFactory: uowFactory,
		importer:   orderImporter{provider: provider},
	}
}

func (h SyncOrderCommandHandler) Handle(ctx context.Context, cmd SyncOrderCommand) (SyncedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return SyncedOrder{}, err
	}

	var (
		synced SyncedOrder
		err    error
	)
	for range syncOrderAttempts {
		synced, err = h.sync(ctx, cmd)
		if !errors.Is(err, errs.ErrConflict) {
			return synced, err
		}
	}

	return SyncedOrder{}, err
}

func (h SyncOrderCommandHandler) sync(ctx context.Context, cmd SyncOrderCommand) (SyncedOrder, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SyncedOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, imported, err := h.importer.findOrImport(ctx, uow.OrderRepository(), cmd.OrderNo())
	if err != nil {
		return SyncedOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncedOrder{}, err
	}

	synced := SyncedOrder{
		OrderID:  o.ID(),
		OrderNo:  o.Number(),
		Imported: imported,
	}
	for _, line := range o.Lines() {
		synced.TotalLines++
		synced.TotalQty += line.QtyOrdered()
	}
	return synced, nil
}

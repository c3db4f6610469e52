package commands

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"
)

// orderImporter resolves an order number to a stored order, copying it from
// the order-entry system the first time it is seen.
type orderImporter struct {
	provider ports.OrderProvider
}

// findOrImport reports whether the order was imported by this call. Without a
// provider an unknown number is errs.ErrObjectNotFound.
func (i orderImporter) findOrImport(ctx context.Context, repo ports.OrderRepository, orderNo string) (*order.Order, bool, error) {
	o, err := repo.GetByNumber(ctx, orderNo)
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return o, false, err
	}

	if o, err = i.importOrder(ctx, repo, orderNo); err != nil {
		return nil, false, err
	}
	return o, true, nil
}

func (i orderImporter) importOrder(ctx context.Context, repo ports.OrderRepository, orderNo string) (*order.Order, error) {
	if i.provider == nil {
		return nil, errs.NewObjectNotFoundError("order_no", orderNo)
	}

	ext, err := i.provider.FetchOrder(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	header := ext.Header
	if header.Number == "" {
		header.Number = orderNo
	}
	if header.Source == "" {
		header.Source = order.SourceOES
	}

	o, err := order.NewOrder(kernel.NewUUID(), header)
	if err != nil {
		return nil, err
	}
	for _, details := range ext.Lines {
		if _, err = o.AddLine(kernel.NewUUID(), details); err != nil {
			return nil, err
		}
	}

	if err = repo.Add(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

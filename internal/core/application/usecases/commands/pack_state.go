package commands

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/domain/model/pairguard"
)

// packState is a pack locked for update together with its order and the
// order's pair history.
type packState struct {
	pack  *pack.Pack
	order *order.Order
	index *pairguard.Index
}

func lockPackState(ctx context.Context, uow PackUoW, packID kernel.UUID, withIndex bool) (packState, error) {
	p, err := uow.PackRepository().GetForUpdate(ctx, packID)
	if err != nil {
		return packState{}, err
	}

	o, err := uow.OrderRepository().Get(ctx, p.OrderID())
	if err != nil {
		return packState{}, err
	}

	state := packState{pack: p, order: o}
	if withIndex {
		if state.index, err = uow.PairGuardRepository().GetByOrder(ctx, o.ID()); err != nil {
			return packState{}, err
		}
	}

	return state, nil
}

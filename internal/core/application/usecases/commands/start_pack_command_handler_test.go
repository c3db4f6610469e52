package commands_test

import (
	"errors"
	"testing"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartPackCommandHandler_Handle_ReusesInProgressPack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartPackCommand("100234", nil)
	o, _ := newOrderWithLines(t, 2)
	existing := newPackFor(t, o)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("GetByNumber", ctx, "100234").Return(o, nil).Once(),
		r.packs.On("FindInProgressByOrder", ctx, o.ID()).Return(existing, nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	handler := commands.NewStartPackCommandHandler(factory, nil)
	packID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, existing.ID(), packID)
	r.packs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestStartPackCommandHandler_Handle_ImportsOrder(t *testing.T) {
	ctx := t.Context()
	by := int64(12)
	cmd, _ := commands.NewStartPackCommand("100234", &by)

	provider := new(MockOrderProvider)
	provider.On("FetchOrder", ctx, "100234").Return(ports.ExternalOrder{
		Header: order.Header{Number: "100234", CustomerName: "Acme Glass"},
		Lines: []order.LineDetails{
			{ProductCode: "LG-1", QtyOrdered: 2},
			{ProductCode: "LG-2", QtyOrdered: 1},
		},
	}, nil).Once()

	r := newPackRepos()
	var imported *order.Order
	var started *pack.Pack
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("GetByNumber", ctx, "100234").Return(nil, errs.NewObjectNotFoundError("order_no", "100234")).Once(),
		r.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			imported = args.Get(1).(*order.Order)
		}).Return(nil).Once(),
		r.packs.On("FindInProgressByOrder", ctx, mock.Anything).Return(nil, errs.NewObjectNotFoundError("pack", "none")).Once(),
		r.packs.On("Add", ctx, mock.AnythingOfType("*pack.Pack")).Run(func(args mock.Arguments) {
			started = args.Get(1).(*pack.Pack)
		}).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	handler := commands.NewStartPackCommandHandler(factory, provider)
	packID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, imported)
	require.NotNil(t, started)
	assert.Equal(t, order.SourceOES, imported.Source())
	assert.Len(t, imported.Lines(), 2)
	assert.Equal(t, started.ID(), packID)
	assert.Equal(t, imported.ID(), started.OrderID())
	assert.Equal(t, &by, started.StartedBy())
	assert.Equal(t, pack.InProgress, started.Status())
	r.orders.AssertExpectations(t)
	r.packs.AssertExpectations(t)
	provider.AssertExpectations(t)
}

func TestStartPackCommandHandler_Handle_UnknownOrderWithoutProvider(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartPackCommand("404", nil)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("GetByNumber", ctx, "404").Return(nil, errs.NewObjectNotFoundError("order_no", "404")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	_, err := commands.NewStartPackCommandHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestStartPackCommandHandler_Handle_ReusesWinnerAfterConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartPackCommand("100234", nil)
	o, _ := newOrderWithLines(t, 1)
	winner := newPackFor(t, o)

	first := newPackRepos()
	mock.InOrder(
		first.uow.On("Begin", ctx).Return(nil).Once(),
		first.orders.On("GetByNumber", ctx, "100234").Return(o, nil).Once(),
		first.packs.On("FindInProgressByOrder", ctx, o.ID()).Return(nil, errs.NewObjectNotFoundError("pack", "none")).Once(),
		first.packs.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("packs.order_id")).Once(),
		first.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	second := newPackRepos()
	mock.InOrder(
		second.uow.On("Begin", ctx).Return(nil).Once(),
		second.orders.On("GetByNumber", ctx, "100234").Return(o, nil).Once(),
		second.packs.On("FindInProgressByOrder", ctx, o.ID()).Return(winner, nil).Once(),
		second.uow.On("Commit", ctx).Return(nil).Once(),
		second.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(first.uow).Once()
	factory.On("Create").Return(second.uow).Once()

	packID, err := commands.NewStartPackCommandHandler(factory, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, winner.ID(), packID)
	first.uow.AssertExpectations(t)
	second.uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestStartPackCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartPackCommand("100234", nil)

	r := newPackRepos()
	factory := new(MockPackUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(r.uow).Once(),
		r.uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err := commands.NewStartPackCommandHandler(factory, nil).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestStartPackCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPackUoWFactory)

	_, err := commands.NewStartPackCommandHandler(factory, nil).Handle(t.Context(), commands.StartPackCommand{})

	require.ErrorIs(t, err, commands.ErrStartPackCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

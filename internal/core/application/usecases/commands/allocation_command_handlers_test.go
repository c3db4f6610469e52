package commands_test

import (
	"errors"
	"testing"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/domain/model/pairguard"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignOneCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o, lines := newOrderWithLines(t, 3, 3)
	p := newPackFor(t, o)
	box := addBox(t, p)
	require.NoError(t, p.SetQty(box.ID(), lines[0], 1))
	idx, _ := pairguard.NewIndex(o.ID())

	cmd, _ := commands.NewAssignOneCommand(p.ID(), lines[1].ID(), box.ID())

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		r.pairs.On("GetByOrder", ctx, o.ID()).Return(idx, nil).Once(),
		r.packs.On("Update", ctx, p).Return(nil).Once(),
		r.pairs.On("Save", ctx, idx).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewAssignOneCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, box.QtyOf(lines[1].ID()))
	assert.Len(t, idx.Pending(), 1)
	r.uow.AssertExpectations(t)
	r.packs.AssertExpectations(t)
	r.pairs.AssertExpectations(t)
}

func TestAssignOneCommandHandler_Handle_PairRuleRollsBack(t *testing.T) {
	ctx := t.Context()
	o, lines := newOrderWithLines(t, 2, 2)
	p := newPackFor(t, o)
	b1 := addBox(t, p)
	b2 := addBox(t, p)
	require.NoError(t, p.SetQty(b1.ID(), lines[0], 1))
	require.NoError(t, p.SetQty(b1.ID(), lines[1], 1))
	require.NoError(t, p.SetQty(b2.ID(), lines[0], 1))
	idx, _ := pairguard.NewIndex(o.ID())

	cmd, _ := commands.NewAssignOneCommand(p.ID(), lines[1].ID(), b2.ID())

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		r.pairs.On("GetByOrder", ctx, o.ID()).Return(idx, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewAssignOneCommandHandler(factory).Handle(ctx, cmd)

	var violation *pairguard.PairRuleViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, 1, violation.BoxNo)
	r.packs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	r.pairs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignOneCommandHandler_Handle_PackNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignOneCommand(newIDs3())

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, cmd.PackID()).Return(nil, errs.NewObjectNotFoundError("pack", cmd.PackID().String())).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewAssignOneCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSetItemQtyCommandHandler_Handle_Overpack(t *testing.T) {
	ctx := t.Context()
	o, lines := newOrderWithLines(t, 4)
	p := newPackFor(t, o)
	b1 := addBox(t, p)
	b2 := addBox(t, p)
	require.NoError(t, p.SetQty(b1.ID(), lines[0], 3))
	idx, _ := pairguard.NewIndex(o.ID())

	cmd, _ := commands.NewSetItemQtyCommand(p.ID(), b2.ID(), lines[0].ID(), 2)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		r.pairs.On("GetByOrder", ctx, o.ID()).Return(idx, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewSetItemQtyCommandHandler(factory).Handle(ctx, cmd)

	var overpack *pack.OverpackError
	require.ErrorAs(t, err, &overpack)
	assert.Equal(t, 1, overpack.Remaining)
	assert.Equal(t, 2, overpack.Requested)
}

func TestSetItemQtyCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	o, lines := newOrderWithLines(t, 4)
	p := newPackFor(t, o)
	box := addBox(t, p)
	idx, _ := pairguard.NewIndex(o.ID())

	cmd, _ := commands.NewSetItemQtyCommand(p.ID(), box.ID(), lines[0].ID(), 4)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		r.pairs.On("GetByOrder", ctx, o.ID()).Return(idx, nil).Once(),
		r.packs.On("Update", ctx, p).Return(errors.New("connection reset")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewSetItemQtyCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRemoveItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o, lines := newOrderWithLines(t, 4)
	p := newPackFor(t, o)
	box := addBox(t, p)
	require.NoError(t, p.SetQty(box.ID(), lines[0], 3))

	cmd, _ := commands.NewRemoveItemCommand(p.ID(), box.ID(), lines[0].ID(), 1)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		r.packs.On("Update", ctx, p).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewRemoveItemCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, box.QtyOf(lines[0].ID()))
	r.orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	r.uow.AssertExpectations(t)
}

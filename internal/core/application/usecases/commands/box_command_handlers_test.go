package commands_test

import (
	"testing"
	"time"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCarton(t *testing.T, maxWeight int, active bool) *carton.CartonType {
	t.Helper()
	dims, err := kernel.NewDimensions(24, 18, 12)
	require.NoError(t, err)
	c, err := carton.NewCartonType(kernel.NewUUID(), carton.Details{
		Name:        "24x18x12 RSC",
		Dimensions:  dims,
		MaxWeightLb: maxWeight,
		Active:      active,
	}, time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestCreateBoxCommandHandler_Handle_CatalogBox(t *testing.T) {
	ctx := t.Context()
	o, _ := newOrderWithLines(t, 1)
	p := newPackFor(t, o)
	addBox(t, p)
	c := newCarton(t, 65, true)
	spec, _ := pack.NewCatalogSpec(c.ID())
	cmd, _ := commands.NewCreateBoxCommand(p.ID(), spec, nil)

	r := newPackRepos()
	var inserted *pack.Box
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForShare", ctx, p.ID()).Return(p, nil).Once(),
		r.cartons.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		r.packs.On("AddBox", ctx, mock.AnythingOfType("*pack.Box")).Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*pack.Box)
		}).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	created, err := commands.NewCreateBoxCommandHandler(factory, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, 2, created.BoxNo)
	assert.Equal(t, inserted.ID(), created.BoxID)
	assert.Equal(t, 65, inserted.MaxWeightLb())
	r.uow.AssertExpectations(t)
}

func TestCreateBoxCommandHandler_Handle_InactiveCarton(t *testing.T) {
	ctx := t.Context()
	o, _ := newOrderWithLines(t, 1)
	p := newPackFor(t, o)
	c := newCarton(t, 0, false)
	spec, _ := pack.NewCatalogSpec(c.ID())
	cmd, _ := commands.NewCreateBoxCommand(p.ID(), spec, nil)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForShare", ctx, p.ID()).Return(p, nil).Once(),
		r.cartons.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	_, err := commands.NewCreateBoxCommandHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	r.packs.AssertNotCalled(t, "AddBox", mock.Anything, mock.Anything)
}

func TestCreateBoxCommandHandler_Handle_UnknownCarton(t *testing.T) {
	ctx := t.Context()
	o, _ := newOrderWithLines(t, 1)
	p := newPackFor(t, o)
	cartonID := kernel.NewUUID()
	spec, _ := pack.NewCatalogSpec(cartonID)
	cmd, _ := commands.NewCreateBoxCommand(p.ID(), spec, nil)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForShare", ctx, p.ID()).Return(p, nil).Once(),
		r.cartons.On("Get", ctx, cartonID).Return(nil, errs.NewObjectNotFoundError("carton_type", cartonID.String())).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	_, err := commands.NewCreateBoxCommandHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateBoxCommandHandler_Handle_RetriesThenGivesUp(t *testing.T) {
	ctx := t.Context()
	o, _ := newOrderWithLines(t, 1)
	cmd, _ := commands.NewCreateBoxCommand(kernel.NewUUID(), customSpec(t), nil)

	factory := new(MockPackUoWFactory)
	for range 3 {
		// every attempt reads a fresh pack, as a new transaction would
		p := newPackFor(t, o)
		r := newPackRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.packs.On("GetForShare", ctx, cmd.PackID()).Return(p, nil).Once(),
			r.packs.On("AddBox", ctx, mock.Anything).Return(errs.NewConflictError("pack_boxes.box_no")).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory.On("Create").Return(r.uow).Once()
	}

	recorder := new(MockConflictRecorder)
	recorder.On("RecordBoxNumberConflict").Return().Times(3)

	_, err := commands.NewCreateBoxCommandHandler(factory, recorder).Handle(ctx, cmd)

	var conflict *pack.AllocationConflictError
	require.ErrorAs(t, err, &conflict)
	require.ErrorIs(t, err, pack.ErrAllocationConflict)
	assert.Equal(t, 3, conflict.Attempts)
	factory.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestCreateBoxCommandHandler_Handle_SucceedsOnRetry(t *testing.T) {
	ctx := t.Context()
	o, _ := newOrderWithLines(t, 1)
	cmd, _ := commands.NewCreateBoxCommand(kernel.NewUUID(), customSpec(t), nil)

	lost := newPackRepos()
	mock.InOrder(
		lost.uow.On("Begin", ctx).Return(nil).Once(),
		lost.packs.On("GetForShare", ctx, cmd.PackID()).Return(newPackFor(t, o), nil).Once(),
		lost.packs.On("AddBox", ctx, mock.Anything).Return(errs.NewConflictError("pack_boxes.box_no")).Once(),
		lost.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// the winner's box is visible to the second attempt
	reread := newPackFor(t, o)
	addBox(t, reread)
	won := newPackRepos()
	mock.InOrder(
		won.uow.On("Begin", ctx).Return(nil).Once(),
		won.packs.On("GetForShare", ctx, cmd.PackID()).Return(reread, nil).Once(),
		won.packs.On("AddBox", ctx, mock.Anything).Return(nil).Once(),
		won.uow.On("Commit", ctx).Return(nil).Once(),
		won.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(lost.uow).Once()
	factory.On("Create").Return(won.uow).Once()

	recorder := new(MockConflictRecorder)
	recorder.On("RecordBoxNumberConflict").Return().Once()

	created, err := commands.NewCreateBoxCommandHandler(factory, recorder).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, created.BoxNo)
	recorder.AssertExpectations(t)
}

func TestSetBoxWeightCommandHandler_Handle_Overweight(t *testing.T) {
	ctx := t.Context()
	o, _ := newOrderWithLines(t, 1)
	p := newPackFor(t, o)
	box := addBox(t, p)
	weight := 40.5
	cmd, _ := commands.NewSetBoxWeightCommand(p.ID(), box.ID(), &weight)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewSetBoxWeightCommandHandler(factory).Handle(ctx, cmd)

	var overweight *pack.OverweightError
	require.ErrorAs(t, err, &overweight)
	assert.Equal(t, 41, overweight.WeightLb)
	assert.Equal(t, 40, overweight.MaxWeightLb)
	assert.Nil(t, box.Weight())
}

func TestDeleteBoxCommandHandler_Handle_Renumbers(t *testing.T) {
	ctx := t.Context()
	o, _ := newOrderWithLines(t, 1)
	p := newPackFor(t, o)
	b1 := addBox(t, p)
	b2 := addBox(t, p)
	cmd, _ := commands.NewBoxCommand(p.ID(), b1.ID())

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

	err := commands.NewDeleteBoxCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, b2.Number())
	assert.Equal(t, []kernel.UUID{b1.ID()}, p.RemovedBoxIDs())
}

func TestDuplicateBoxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o, lines := newOrderWithLines(t, 4, 6)
	p := newPackFor(t, o)
	source := addBox(t, p)
	require.NoError(t, p.SetQty(source.ID(), lines[0], 2))
	require.NoError(t, p.SetQty(source.ID(), lines[1], 3))
	cmd, _ := commands.NewBoxCommand(p.ID(), source.ID())

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		r.packs.On("Update", ctx, p).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	created, err := commands.NewDuplicateBoxCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, created.BoxNo)
	assert.Equal(t, 4, p.PackedQty(lines[0].ID()))
	assert.Equal(t, 6, p.PackedQty(lines[1].ID()))
	r.pairs.AssertNotCalled(t, "GetByOrder", mock.Anything, mock.Anything)
}

func TestCompletePackCommandHandler_Handle_PackNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompletePackCommand(kernel.NewUUID(), nil)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, cmd.PackID()).Return(nil, errs.NewObjectNotFoundError("pack", cmd.PackID().String())).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewCompletePackCommandHandler(factory).Handle(ctx, cmd)

	var completion *pack.CompletionError
	require.ErrorAs(t, err, &completion)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "pack not found")
}

func TestCompletePackCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o, lines := newOrderWithLines(t, 1)
	p := newPackFor(t, o)
	box := addBox(t, p)
	require.NoError(t, p.AssignOne(box.ID(), lines[0]))
	w, _ := pack.NewWeight(9.4)
	require.NoError(t, p.SetBoxWeight(box.ID(), &w))
	by := int64(5)
	cmd, _ := commands.NewCompletePackCommand(p.ID(), &by)

	r := newPackRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.packs.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		r.packs.On("Update", ctx, p).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewCompletePackCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pack.Complete, p.Status())
	assert.Equal(t, &by, p.CompletedBy())
	r.uow.AssertExpectations(t)
}

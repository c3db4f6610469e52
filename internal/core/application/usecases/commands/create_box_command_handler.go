package commands

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"
)

// createBoxAttempts bounds the optimistic box-number loop.
const createBoxAttempts = 3

// ConflictRecorder is notified every time a box number was taken by a
// concurrent creator.
type ConflictRecorder interface {
	RecordBoxNumberConflict()
}

// CreatedBox identifies a box created or duplicated by a command.
type CreatedBox struct {
	BoxID kernel.UUID
	BoxNo int
}

// CreateBoxCommandHandler appends a box numbered max+1. The pack row is held
// in share mode, so concurrent creators may pick the same number; the loser's
// insert fails on (pack_id, box_no) and it retries in a fresh transaction.
type CreateBoxCommandHandler struct {
	uowFactory PackUoWFactory
	conflicts  ConflictRecorder
}

// NewCreateBoxCommandHandler accepts a nil recorder.
func NewCreateBoxCommandHandler(uowFactory PackUoWFactory, conflicts ConflictRecorder) CreateBoxCommandHandler {
	return CreateBoxCommandHandler{
		uowFactory: uowFactory,
		conflicts:  conflicts,
	}
}

// Handle returns pack.AllocationConflictError when every attempt lost the race.
func (h CreateBoxCommandHandler) Handle(ctx context.Context, cmd CreateBoxCommand) (CreatedBox, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedBox{}, err
	}

	for range createBoxAttempts {
		created, err := h.create(ctx, cmd)
		if !errors.Is(err, errs.ErrConflict) {
			return created, err
		}
		if h.conflicts != nil {
			h.conflicts.RecordBoxNumberConflict()
		}
	}

	return CreatedBox{}, &pack.AllocationConflictError{Attempts: createBoxAttempts}
}

func (h CreateBoxCommandHandler) create(ctx context.Context, cmd CreateBoxCommand) (CreatedBox, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedBox{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packRepo := uow.PackRepository()
	p, err := packRepo.GetForShare(ctx, cmd.PackID())
	if err != nil {
		return CreatedBox{}, err
	}

	cartonMaxWeight, err := h.cartonMaxWeight(ctx, uow, cmd.Spec())
	if err != nil {
		return CreatedBox{}, err
	}

	maxWeight, err := pack.ResolveMaxWeight(cmd.MaxWeightLb(), cmd.Spec(), cartonMaxWeight)
	if err != nil {
		return CreatedBox{}, err
	}

	box, err := p.AddBox(cmd.Spec(), maxWeight)
	if err != nil {
		return CreatedBox{}, err
	}

	if err = packRepo.AddBox(ctx, box); err != nil {
		return CreatedBox{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedBox{}, err
	}

	return CreatedBox{BoxID: box.ID(), BoxNo: box.Number()}, nil
}

// cartonMaxWeight checks a catalog spec references an active carton type and
// returns its configured ceiling. An unknown carton type is invalid input.
func (h CreateBoxCommandHandler) cartonMaxWeight(ctx context.Context, uow PackUoW, spec pack.BoxSpec) (int, error) {
	catalog, ok := spec.(pack.CatalogSpec)
	if !ok {
		return 0, nil
	}

	c, err := uow.CartonTypeRepository().Get(ctx, catalog.CartonTypeID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, errs.NewValueIsInvalidErrorWithCause("carton_type_id", err)
	}
	if err != nil {
		return 0, err
	}

	if err = c.ValidateUsable(); err != nil {
		return 0, err
	}

	return c.MaxWeightLb(), nil
}

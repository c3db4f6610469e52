package commands

import (
	"context"
	"errors"
	"time"

	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"
)

// CompletePackCommandHandler finalizes a pack when every box is weighed and
// every line is packed exactly.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	var completion *pack.CompletionError
//	if errors.As(err, &completion) {
//	    for _, problem := range completion.Problems() {
//	        fmt.Println(problem)
//	    }
//	}
type CompletePackCommandHandler struct {
	uowFactory PackUoWFactory
}

func NewCompletePackCommandHandler(uowFactory PackUoWFactory) CompletePackCommandHandler {
	return CompletePackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports a missing pack as a CompletionError that also matches
// errs.ErrObjectNotFound.
func (h CompletePackCommandHandler) Handle(ctx context.Context, cmd CompletePackCommand) error {
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

	state, err := lockPackState(ctx, uow, cmd.PackID(), false)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return &pack.CompletionError{Cause: err}
	}
	if err != nil {
		return err
	}

	if err = state.pack.Complete(state.order, cmd.CompletedBy(), time.Now()); err != nil {
		return err
	}

	if err = uow.PackRepository().Update(ctx, state.pack); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

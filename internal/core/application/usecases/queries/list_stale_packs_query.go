package queries

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var (
	ErrListStalePacksQueryIsNotConstructed = errors.New(
		"ListStalePacksQuery must be created via NewListStalePacksQuery constructor",
	)
)

// ListStalePacksQuery finds in-progress packs started before a cutoff.
//
// Example:
//
//	query, err := NewListStalePacksQuery(time.Now().Add(-48 * time.Hour))
type ListStalePacksQuery struct {
	startedBefore time.Time

	guard guard.ConstructorGuard
}

func NewListStalePacksQuery(startedBefore time.Time) (ListStalePacksQuery, error) {
	if startedBefore.IsZero() {
		return ListStalePacksQuery{}, errs.NewValueIsRequiredError("started_before")
	}

	return ListStalePacksQuery{
		startedBefore: startedBefore,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListStalePacksQuery) Validate() error {
	return q.guard.Validate(ErrListStalePacksQueryIsNotConstructed)
}

func (q ListStalePacksQuery) StartedBefore() time.Time {
	return q.startedBefore
}

// StalePack is an in-progress pack that has been open for too long.
type StalePack struct {
	PackID    kernel.UUID
	OrderID   kernel.UUID
	OrderNo   string
	StartedAt time.Time
	StartedBy *int64
	BoxCount  int
}

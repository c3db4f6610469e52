package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per operation. Units of work
// are not shared between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction plus the repositories bound to it.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called.
	Commit(ctx context.Context) error

	// Rollback after Commit is a no-op.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PackRepository() PackRepository
	PairGuardRepository() PairGuardRepository
	CartonTypeRepository() CartonTypeRepository
}

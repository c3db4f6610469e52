// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"packing/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PackRepoFactory interface {
		PackRepository() ports.PackRepository
	}

	PairGuardRepoFactory interface {
		PairGuardRepository() ports.PairGuardRepository
	}

	CartonTypeRepoFactory interface {
		CartonTypeRepository() ports.CartonTypeRepository
	}

	// PackUoW spans every aggregate a pack operation may touch.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.PackRepository().GetForUpdate(ctx, packID)
	//   // ... mutate p
	//
	//   err = uow.Commit(ctx)
	PackUoW interface {
		TxManager
		OrderRepoFactory
		PackRepoFactory
		PairGuardRepoFactory
		CartonTypeRepoFactory
	}

	PackUoWFactory interface {
		Create() PackUoW
	}

	// OrderUoW manages transactions for order imports.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CartonUoW manages transactions for carton catalog maintenance.
	CartonUoW interface {
		TxManager
		CartonTypeRepoFactory
	}

	CartonUoWFactory interface {
		Create() CartonUoW
	}
)

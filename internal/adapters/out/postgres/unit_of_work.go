// Package postgres provides the GORM implementation of the Unit of Work and
// the schema migration for the packing store.
//
// A unit of work wraps one database transaction. Repositories created from it
// share that transaction and register every aggregate they write:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.PackRepository().GetForUpdate(ctx, packID)
//	if err != nil {
//	    return err
//	}
//	// mutate p ...
//	if err = uow.PackRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op, so the deferred rollback is
// always safe. Each goroutine must use its own unit of work.
package postgres

import (
	"context"

	"packing/internal/adapters/out/postgres/cartonrepo"
	"packing/internal/adapters/out/postgres/orderrepo"
	"packing/internal/adapters/out/postgres/packrepo"
	"packing/internal/adapters/out/postgres/pairguardrepo"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/ports"
	"packing/internal/logger"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion, for callers that
// need GetTrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	l := logger.Component("uow")
	for _, tracked := range uow.trackedAggregates {
		l.Debug().
			Str("aggregate_id", tracked.ID.String()).
			Type("aggregate", tracked.Aggregate).
			Msg("aggregate committed")
	}
	return nil
}

// Rollback discards the transaction. Without an active transaction it does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PackRepository() ports.PackRepository {
	return packrepo.NewGormPackRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PairGuardRepository() ports.PairGuardRepository {
	return pairguardrepo.NewGormPairGuardRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CartonTypeRepository() ports.CartonTypeRepository {
	return cartonrepo.NewGormCartonTypeRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns the aggregates written so far.
func (uow *GormUnitOfWork) GetTrackedAggregates() []any {
	out := make([]any, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		out = append(out, t.Aggregate)
	}
	return out
}

// conn is the active transaction, or the pool outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

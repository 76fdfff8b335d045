// Package memory provides the process-memory implementation of the Unit of Work
// pattern used by the dispatch engine.
//
// Begin takes the store lock and hands repositories a private copy of the
// committed state. Commit installs the copy, releases the lock and publishes the
// events recorded during the unit of work. Rollback drops the copy and the
// events. Every command is therefore applied completely or not at all.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store, publisher, logger)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.UserRepository().Add(ctx, u); err != nil {
//	    return err
//	}
//	uow.Record(events.NewUserRegistered(u))
//
//	return uow.Commit(ctx)
//
// Outside Begin/Commit the repositories read a snapshot of the committed state
// and their writes are discarded.
package memory

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/adapters/out/memory/driverrepo"
	"dispatch/internal/adapters/out/memory/ledgerrepo"
	"dispatch/internal/adapters/out/memory/queuerepo"
	"dispatch/internal/adapters/out/memory/userrepo"
	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/ports"
)

// ErrInvalidTransaction is returned by Commit and Rollback without an active
// transaction.
var ErrInvalidTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory returns a factory whose units of work publish committed
// events to publisher. A nil publisher drops events.
func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory_uow"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.New()
}

// New is Create with the concrete type.
func (f *UnitOfWorkFactory) New() *UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork is one transaction against a Store. It is not safe for
// concurrent use; every goroutine creates its own.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger

	tx       *state
	recorded []events.Event
}

// Begin waits for the store lock and copies the committed state.
// Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	working := uow.store.committed.clone()
	uow.tx = &working
	return nil
}

// Commit installs the working copy and publishes the recorded events.
// Publish failures are logged; the commit stands.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrInvalidTransaction
	}

	uow.store.committed = *uow.tx
	uow.tx = nil
	recorded := uow.recorded
	uow.recorded = nil
	uow.store.release()

	if uow.publisher == nil || len(recorded) == 0 {
		return nil
	}
	if err := uow.publisher.Publish(ctx, recorded...); err != nil {
		uow.logger.WarnContext(ctx, "failed to publish events",
			"events", len(recorded),
			"error", err,
		)
	}
	return nil
}

// Rollback discards the working copy and the recorded events.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrInvalidTransaction
	}

	uow.tx = nil
	uow.recorded = nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) Record(evts ...events.Event) {
	uow.recorded = append(uow.recorded, evts...)
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewMemoryUserRepository(uow.current().users)
}

func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewMemoryDriverRepository(uow.current().drivers)
}

func (uow *UnitOfWork) ZoneQueueRepository() ports.ZoneQueueRepository {
	return queuerepo.NewMemoryZoneQueueRepository(&uow.current().queues)
}

func (uow *UnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewMemoryLedgerRepository(&uow.current().ledger)
}

// current returns the working copy, or a fresh snapshot outside a transaction.
func (uow *UnitOfWork) current() *state {
	if uow.tx != nil {
		return uow.tx
	}
	snapshot := uow.store.snapshot()
	return &snapshot
}

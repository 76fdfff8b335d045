package ports

import (
	"context"

	"dispatch/internal/core/domain/events"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes every change of the transaction visible and publishes the
	// recorded events. Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction and its recorded events.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// Record queues events for publication after a successful Commit.
	Record(events ...events.Event)

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// ZoneQueueRepository returns a ZoneQueueRepository bound to the current transaction.
	ZoneQueueRepository() ZoneQueueRepository

	// LedgerRepository returns a LedgerRepository bound to the current transaction.
	LedgerRepository() LedgerRepository
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventRecorder collects domain events for publication after commit.
	EventRecorder interface {
		Record(events ...events.Event)
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ZoneQueueRepoFactory provides access to the zone queues within a transaction.
	ZoneQueueRepoFactory interface {
		ZoneQueueRepository() ports.ZoneQueueRepository
	}

	// LedgerRepoFactory provides access to the revenue ledger within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// UoW manages transactions across every dispatch aggregate.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   users := uow.UserRepository()
	//   drivers := uow.DriverRepository()
	//   // ... perform operations
	//   uow.Record(events.NewUserRegistered(u))
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		EventRecorder
		UserRepoFactory
		DriverRepoFactory
		ZoneQueueRepoFactory
		LedgerRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

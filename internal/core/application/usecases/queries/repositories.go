// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built from a unit of work that is never committed.
package queries

import (
	"context"
	"errors"

	"dispatch/internal/core/ports"
)

// ErrUserNotFound is returned by GetUserQueryHandler for an unknown account id.
var ErrUserNotFound = errors.New("user account not found")

type (
	// ReadTx opens and discards a consistent read view.
	ReadTx interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW exposes the repositories a query reads from.
	UoW interface {
		ReadTx
		UserRepository() ports.UserRepository
		DriverRepository() ports.DriverRepository
		ZoneQueueRepository() ports.ZoneQueueRepository
		LedgerRepository() ports.LedgerRepository
	}

	// UoWFactory creates new read units of work.
	UoWFactory interface {
		Create() UoW
	}
)

// read runs fn inside a fresh unit of work and always rolls it back.
func read[T any](ctx context.Context, factory UoWFactory, fn func(uow UoW) (T, error)) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}

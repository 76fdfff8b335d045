// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories, the unit of work, the city map and the event
// publisher.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Users are kept in listing order, which starts as registration order and is
// changed only by Reorder.
type UserRepository interface {
	// Add stores a new user at the end of the listing.
	// Returns errs.ErrObjectAlreadyExists if the id is taken.
	Add(ctx context.Context, u *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *user.User) error

	// Get returns the user with the given account id or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetAll returns all users in listing order.
	GetAll(ctx context.Context) ([]*user.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int, error)

	// Reorder replaces the listing order. ids must be a permutation of the
	// registered ids.
	Reorder(ctx context.Context, ids []kernel.ID) error
}

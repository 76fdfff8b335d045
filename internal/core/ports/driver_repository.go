package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add stores a new driver at the end of the registration order.
	// Returns errs.ErrObjectAlreadyExists if the id is taken.
	Add(ctx context.Context, d *driver.Driver) error

	Update(ctx context.Context, d *driver.Driver) error

	// Get returns the driver with the given id or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// GetWithStatus is Get restricted to drivers currently in status.
	// A driver in any other status is reported as errs.ErrObjectNotFound.
	GetWithStatus(ctx context.Context, id kernel.ID, status driver.Status) (*driver.Driver, error)

	// GetAll returns all drivers in registration order.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	Count(ctx context.Context) (int, error)
}

package driverrepo

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// MemoryDriverRepository implements DriverRepository over a Table.
type MemoryDriverRepository struct {
	table *Table
}

func NewMemoryDriverRepository(table *Table) *MemoryDriverRepository {
	return &MemoryDriverRepository{table: table}
}

func (r *MemoryDriverRepository) Add(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if _, ok := r.table.rows[dto.ID]; ok {
		return errs.NewObjectAlreadyExistsError("driverId", dto.ID)
	}

	r.table.rows[dto.ID] = dto
	r.table.order = append(r.table.order, dto.ID)
	return nil
}

func (r *MemoryDriverRepository) Update(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if _, ok := r.table.rows[dto.ID]; !ok {
		return errs.NewObjectNotFoundError("driverId", dto.ID)
	}

	r.table.rows[dto.ID] = dto
	return nil
}

func (r *MemoryDriverRepository) Get(_ context.Context, id kernel.ID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.table.rows[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("driverId", id.String())
	}

	return toDomain(dto)
}

// GetWithStatus treats a driver in another status as missing.
func (r *MemoryDriverRepository) GetWithStatus(
	ctx context.Context,
	id kernel.ID,
	status driver.Status,
) (*driver.Driver, error) {
	d, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status() != status {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"driverId", id.String(), errs.NewValueIsInvalidError("status "+d.Status().String()),
		)
	}
	return d, nil
}

// GetAll returns every driver in registration order.
func (r *MemoryDriverRepository) GetAll(_ context.Context) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0, len(r.table.order))
	for _, id := range r.table.order {
		d, err := toDomain(r.table.rows[id])
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

func (r *MemoryDriverRepository) Count(_ context.Context) (int, error) {
	return len(r.table.order), nil
}

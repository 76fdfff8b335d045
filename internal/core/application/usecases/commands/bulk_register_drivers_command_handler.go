package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// BulkRegisterDriversCommandHandler stores a batch of preregistered drivers.
// Every driver is placed in the zone of its address before it is stored.
type BulkRegisterDriversCommandHandler struct {
	uowFactory UoWFactory
	cityMap    ports.CityMap
}

func NewBulkRegisterDriversCommandHandler(
	uowFactory UoWFactory,
	cityMap ports.CityMap,
) BulkRegisterDriversCommandHandler {
	return BulkRegisterDriversCommandHandler{
		uowFactory: uowFactory,
		cityMap:    cityMap,
	}
}

// Handle returns the number of drivers stored.
func (h BulkRegisterDriversCommandHandler) Handle(ctx context.Context, cmd BulkRegisterDriversCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	zoned := make([]*driver.Driver, 0, len(cmd.Drivers()))
	for _, d := range cmd.Drivers() {
		placed, err := driver.RestoreDriver(
			d.ID(),
			d.Name(),
			d.CarModel(),
			d.LicensePlate(),
			d.Address(),
			h.cityMap.Zone(d.Address()),
			d.Status(),
			d.Earnings(),
			d.Service(),
		)
		if err != nil {
			return 0, err
		}
		zoned = append(zoned, placed)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	for _, d := range zoned {
		if err := driverRepo.Add(ctx, d); err != nil {
			if errors.Is(err, errs.ErrObjectAlreadyExists) {
				return 0, fmt.Errorf("%w: %s", ErrDuplicateDriver, d.ID())
			}
			return 0, err
		}
		uow.Record(events.NewDriverRegistered(d))
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(zoned), nil
}

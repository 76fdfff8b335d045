package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// RegisterDriverCommandHandler signs up drivers. A new driver is Available in
// the zone of its address.
type RegisterDriverCommandHandler struct {
	uowFactory UoWFactory
	cityMap    ports.CityMap
}

func NewRegisterDriverCommandHandler(uowFactory UoWFactory, cityMap ports.CityMap) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		cityMap:    cityMap,
	}
}

// Handle assigns the next driver id and stores the driver.
// Returns the new driver id.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	count, err := driverRepo.Count(ctx)
	if err != nil {
		return "", err
	}

	d, err := driver.NewDriver(
		kernel.NewSequentialID(kernel.DriverIDBase, count),
		cmd.Name(),
		cmd.CarModel(),
		cmd.LicensePlate(),
		cmd.Address(),
		h.cityMap.Zone(cmd.Address()),
	)
	if err != nil {
		return "", err
	}

	if err = driverRepo.Add(ctx, d); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return "", fmt.Errorf("%w: %s", ErrDuplicateDriver, d.ID())
		}
		return "", err
	}

	uow.Record(events.NewDriverRegistered(d))

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return d.ID(), nil
}

package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DriveToCommandHandler moves an Available driver to a new address.
// The driver becomes Driving and is not matched again until it is Available.
type DriveToCommandHandler struct {
	uowFactory UoWFactory
	cityMap    ports.CityMap
}

func NewDriveToCommandHandler(uowFactory UoWFactory, cityMap ports.CityMap) DriveToCommandHandler {
	return DriveToCommandHandler{
		uowFactory: uowFactory,
		cityMap:    cityMap,
	}
}

func (h DriveToCommandHandler) Handle(ctx context.Context, cmd DriveToCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !h.cityMap.IsValidAddress(cmd.Address()) {
		return invalidAddress(cmd.Address())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.GetWithStatus(ctx, cmd.DriverID(), driver.Available)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return driverNotFound(cmd.DriverID(), driver.Available)
	}
	if err != nil {
		return err
	}

	if err = d.DriveTo(cmd.Address(), h.cityMap.Zone(cmd.Address())); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	uow.Record(events.NewDriverRepositioned(d))

	return uow.Commit(ctx)
}

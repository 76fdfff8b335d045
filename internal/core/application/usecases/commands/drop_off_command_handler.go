package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DropOffResult describes a settled service.
type DropOffResult struct {
	RequestID kernel.UUID
	UserID    kernel.ID
	Cost      kernel.Money
	Pay       kernel.Money
	Revenue   kernel.Money
}

// DropOffCommandHandler settles the service attached to a Driving driver.
//
// In one step the platform books the cost minus the driver's share, the driver
// earns the share and moves to the destination, and the user pays the cost.
// A request still queued from its push assignment leaves the queue once served.
// Nothing changes unless every precondition holds.
type DropOffCommandHandler struct {
	uowFactory UoWFactory
	cityMap    ports.CityMap
	settlement services.Settlement
}

func NewDropOffCommandHandler(
	uowFactory UoWFactory,
	cityMap ports.CityMap,
	tariff services.Tariff,
) DropOffCommandHandler {
	return DropOffCommandHandler{
		uowFactory: uowFactory,
		cityMap:    cityMap,
		settlement: services.NewSettlement(tariff.PayRate()),
	}
}

func (h DropOffCommandHandler) Handle(ctx context.Context, cmd DropOffCommand) (DropOffResult, error) {
	if err := cmd.Validate(); err != nil {
		return DropOffResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DropOffResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	userRepo := uow.UserRepository()
	ledgerRepo := uow.LedgerRepository()
	queueRepo := uow.ZoneQueueRepository()

	d, err := driverRepo.GetWithStatus(ctx, cmd.DriverID(), driver.Driving)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return DropOffResult{}, driverNotFound(cmd.DriverID(), driver.Driving)
	}
	if err != nil {
		return DropOffResult{}, err
	}

	service := d.Service()
	if service == nil {
		return DropOffResult{}, fmt.Errorf("driver %s: %w", d.ID(), driver.ErrDriverHasNoService)
	}

	u, err := userRepo.Get(ctx, service.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return DropOffResult{}, fmt.Errorf("%w: %s", ErrUserNotFound, service.UserID())
	}
	if err != nil {
		return DropOffResult{}, err
	}

	l, err := ledgerRepo.Get(ctx)
	if err != nil {
		return DropOffResult{}, err
	}

	queues, err := queueRepo.Get(ctx)
	if err != nil {
		return DropOffResult{}, err
	}

	dropZone := h.cityMap.Zone(service.To())
	settled, err := h.settlement.Settle(d, u, l, dropZone)
	if err != nil {
		return DropOffResult{}, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return DropOffResult{}, err
	}
	if err = userRepo.Update(ctx, u); err != nil {
		return DropOffResult{}, err
	}
	if err = ledgerRepo.Save(ctx, l); err != nil {
		return DropOffResult{}, err
	}
	if queues.Discard(settled.Request.ID()) {
		if err = queueRepo.Save(ctx, queues); err != nil {
			return DropOffResult{}, err
		}
	}

	uow.Record(events.NewServiceCompleted(settled.Request, d.ID(), dropZone, settled.Pay, settled.Revenue))

	if err = uow.Commit(ctx); err != nil {
		return DropOffResult{}, err
	}

	return DropOffResult{
		RequestID: settled.Request.ID(),
		UserID:    u.ID(),
		Cost:      settled.Cost,
		Pay:       settled.Pay,
		Revenue:   settled.Revenue,
	}, nil
}

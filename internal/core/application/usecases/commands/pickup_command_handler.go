package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// PickupCommandHandler serves the head of a zone queue.
//
// The driver's zone is recomputed from its current address. The request at the
// front of that zone's queue is dequeued and attached to the driver, who moves
// to the pickup address and becomes Driving.
//
// A head that another driver already carries would be charged a second time,
// so it is only served while the user's wallet covers that second charge.
type PickupCommandHandler struct {
	uowFactory UoWFactory
	cityMap    ports.CityMap
}

func NewPickupCommandHandler(uowFactory UoWFactory, cityMap ports.CityMap) PickupCommandHandler {
	return PickupCommandHandler{
		uowFactory: uowFactory,
		cityMap:    cityMap,
	}
}

// Handle returns the id of the picked up request.
func (h PickupCommandHandler) Handle(ctx context.Context, cmd PickupCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	queueRepo := uow.ZoneQueueRepository()

	d, err := driverRepo.GetWithStatus(ctx, cmd.DriverID(), driver.Available)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, driverNotFound(cmd.DriverID(), driver.Available)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	zone := h.cityMap.Zone(d.Address())
	if !zone.IsValid() {
		return kernel.UUID{}, invalidZone(zone, d.Address())
	}

	queues, err := queueRepo.Get(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	if queues.Len(zone) == 0 {
		return kernel.UUID{}, fmt.Errorf("%w at zone %s", ErrNoServiceRequestInQueue, zone)
	}

	if err = h.ensurePayable(ctx, uow, queues.Zone(zone)[0], queues); err != nil {
		return kernel.UUID{}, err
	}
	service, err := queues.DequeueFront(zone)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = d.PickUp(service, h.cityMap.Zone(service.From())); err != nil {
		return kernel.UUID{}, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return kernel.UUID{}, err
	}
	if err = queueRepo.Save(ctx, queues); err != nil {
		return kernel.UUID{}, err
	}

	uow.Record(events.NewServicePickedUp(service, d.ID(), zone))

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return service.ID(), nil
}

// ensurePayable rejects serving a request with user.ErrInsufficientFunds when
// it is already carried and the wallet cannot cover one more drop-off.
func (h PickupCommandHandler) ensurePayable(
	ctx context.Context,
	uow UoW,
	service *request.Request,
	queues *queue.ZoneQueues,
) error {
	drivers, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if services.CarrierOf(service, drivers) == nil {
		return nil
	}

	u, err := uow.UserRepository().Get(ctx, service.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %s", ErrUserNotFound, service.UserID())
	}
	if err != nil {
		return err
	}
	if !u.CanAfford(services.OutstandingCost(u.ID(), drivers, queues) + service.Cost()) {
		return fmt.Errorf("%w: request %s is already carried", user.ErrInsufficientFunds, service.ID())
	}
	return nil
}

func driverNotFound(id kernel.ID, status driver.Status) error {
	return fmt.Errorf("%w with driver id %s and driver status %s", ErrDriverNotFound, id, status)
}

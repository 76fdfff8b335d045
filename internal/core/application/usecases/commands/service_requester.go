package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ServiceRequestResult describes a request accepted by RequestRide or RequestDelivery.
type ServiceRequestResult struct {
	RequestID kernel.UUID
	DriverID  kernel.ID
	Zone      kernel.Zone
	Distance  int
	Cost      kernel.Money
}

// buildFunc creates the request once the route distance and its cost are known.
type buildFunc func(u *user.User, distance int, cost kernel.Money) (*request.Request, error)

// serviceRequester runs the flow shared by rides and deliveries. Every
// precondition is checked before any aggregate is touched:
//
//  1. the user exists
//  2. both addresses are valid
//  3. the distance rule of the kind holds
//  4. the wallet covers the cost on top of everything the user may still be
//     charged for, so a later drop-off is always paid
//  5. some driver is Available
//  6. no equal request waits in the origin zone
//  7. the origin address lies in a zone
//
// The request is then assigned to the first Available driver and queued in the
// origin zone.
type serviceRequester struct {
	uowFactory UoWFactory
	cityMap    ports.CityMap
	tariff     services.Tariff
	dispatcher services.DriverDispatcher
}

func (s serviceRequester) request(
	ctx context.Context,
	kind request.Kind,
	userID kernel.ID,
	from string,
	to string,
	build buildFunc,
) (ServiceRequestResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ServiceRequestResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	driverRepo := uow.DriverRepository()
	queueRepo := uow.ZoneQueueRepository()

	u, err := userRepo.Get(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ServiceRequestResult{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	if err != nil {
		return ServiceRequestResult{}, err
	}

	if !s.cityMap.IsValidAddress(from) {
		return ServiceRequestResult{}, invalidAddress(from)
	}
	if !s.cityMap.IsValidAddress(to) {
		return ServiceRequestResult{}, invalidAddress(to)
	}

	distance := s.cityMap.Distance(from, to)
	cost, err := s.tariff.Cost(kind, distance)
	if err != nil {
		return ServiceRequestResult{}, err
	}

	service, err := build(u, distance, cost)
	if err != nil {
		return ServiceRequestResult{}, err
	}

	drivers, err := driverRepo.GetAll(ctx)
	if err != nil {
		return ServiceRequestResult{}, err
	}
	queues, err := queueRepo.Get(ctx)
	if err != nil {
		return ServiceRequestResult{}, err
	}

	if !u.CanAfford(services.OutstandingCost(u.ID(), drivers, queues) + cost) {
		return ServiceRequestResult{}, user.ErrInsufficientFunds
	}
	if _, err = s.dispatcher.FindAvailable(drivers); err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			return ServiceRequestResult{}, ErrNoDriversAvailable
		}
		return ServiceRequestResult{}, err
	}

	zone := s.cityMap.Zone(from)
	if queues.ExistingDuplicate(zone, service) {
		return ServiceRequestResult{}, fmt.Errorf("%w: %s", ErrDuplicateRequest, service)
	}
	if !zone.IsValid() {
		return ServiceRequestResult{}, invalidZone(zone, from)
	}

	assigned, err := s.dispatcher.Dispatch(service, drivers)
	if err != nil {
		return ServiceRequestResult{}, err
	}
	if err = queues.Enqueue(zone, service); err != nil {
		return ServiceRequestResult{}, err
	}
	if kind == request.Delivery {
		u.AddDelivery()
	} else {
		u.AddRide()
	}

	if err = driverRepo.Update(ctx, assigned); err != nil {
		return ServiceRequestResult{}, err
	}
	if err = queueRepo.Save(ctx, queues); err != nil {
		return ServiceRequestResult{}, err
	}
	if err = userRepo.Update(ctx, u); err != nil {
		return ServiceRequestResult{}, err
	}

	uow.Record(events.NewServiceRequested(service, assigned.ID(), zone))

	if err = uow.Commit(ctx); err != nil {
		return ServiceRequestResult{}, err
	}

	return ServiceRequestResult{
		RequestID: service.ID(),
		DriverID:  assigned.ID(),
		Zone:      zone,
		Distance:  distance,
		Cost:      cost,
	}, nil
}

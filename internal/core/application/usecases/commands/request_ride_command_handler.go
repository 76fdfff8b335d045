package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// RequestRideCommandHandler books rides. The ride is attached to the first
// Available driver and also queued in the zone of its pickup address, where it
// stays visible and cancellable.
//
// Example:
//
//	handler := NewRequestRideCommandHandler(uowFactory, cityMap, services.DefaultTariff())
//	cmd, _ := NewRequestRideCommand("9000", "34 Bay St", "12 King St")
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, request.ErrInsufficientTravelDistance):
//	    log.Println("walk")
//	case errors.Is(err, ErrNoDriversAvailable):
//	    log.Println("all drivers are busy")
//	case err != nil:
//	    log.Printf("ride rejected: %v", err)
//	default:
//	    log.Printf("driver %s is on the way", result.DriverID)
//	}
type RequestRideCommandHandler struct {
	requester serviceRequester
}

func NewRequestRideCommandHandler(
	uowFactory UoWFactory,
	cityMap ports.CityMap,
	tariff services.Tariff,
) RequestRideCommandHandler {
	return RequestRideCommandHandler{
		requester: serviceRequester{
			uowFactory: uowFactory,
			cityMap:    cityMap,
			tariff:     tariff,
			dispatcher: services.NewDriverDispatcher(),
		},
	}
}

func (h RequestRideCommandHandler) Handle(ctx context.Context, cmd RequestRideCommand) (ServiceRequestResult, error) {
	if err := cmd.Validate(); err != nil {
		return ServiceRequestResult{}, err
	}

	return h.requester.request(ctx, request.Ride, cmd.UserID(), cmd.From(), cmd.To(),
		func(u *user.User, distance int, cost kernel.Money) (*request.Request, error) {
			return request.NewRide(u.ID(), cmd.From(), cmd.To(), distance, cost)
		},
	)
}

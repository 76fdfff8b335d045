package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// RequestDeliveryCommandHandler books food deliveries the same way rides are
// booked. A user may not have two pending deliveries for the same restaurant
// and food order.
type RequestDeliveryCommandHandler struct {
	requester serviceRequester
}

func NewRequestDeliveryCommandHandler(
	uowFactory UoWFactory,
	cityMap ports.CityMap,
	tariff services.Tariff,
) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{
		requester: serviceRequester{
			uowFactory: uowFactory,
			cityMap:    cityMap,
			tariff:     tariff,
			dispatcher: services.NewDriverDispatcher(),
		},
	}
}

func (h RequestDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd RequestDeliveryCommand,
) (ServiceRequestResult, error) {
	if err := cmd.Validate(); err != nil {
		return ServiceRequestResult{}, err
	}

	return h.requester.request(ctx, request.Delivery, cmd.UserID(), cmd.From(), cmd.To(),
		func(u *user.User, distance int, cost kernel.Money) (*request.Request, error) {
			return request.NewDelivery(
				u.ID(), cmd.From(), cmd.To(), distance, cost, cmd.Restaurant(), cmd.FoodOrderID(),
			)
		},
	)
}

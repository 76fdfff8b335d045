package queries

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetServiceRequestsQueryIsNotConstructed = errors.New(
	"GetServiceRequestsQuery must be created via NewGetServiceRequestsQuery constructor",
)

// GetServiceRequestsQuery lists the queued requests of every zone, zone 0
// first, each zone in queue order. With sortByDistance the listing is
// stable-sorted by ascending distance instead.
type GetServiceRequestsQuery struct {
	sortByDistance bool

	guard guard.ConstructorGuard
}

func NewGetServiceRequestsQuery(sortByDistance bool) GetServiceRequestsQuery {
	return GetServiceRequestsQuery{sortByDistance: sortByDistance, guard: guard.NewConstructorGuard()}
}

func (q GetServiceRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceRequestsQueryIsNotConstructed)
}

func (q GetServiceRequestsQuery) SortByDistance() bool {
	return q.sortByDistance
}

type GetServiceRequestsQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetServiceRequestsQueryHandler(uowFactory UoWFactory) GetServiceRequestsQueryHandler {
	return GetServiceRequestsQueryHandler{uowFactory: uowFactory}
}

func (h GetServiceRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetServiceRequestsQuery,
) ([]ServiceRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := read(ctx, h.uowFactory, func(uow UoW) ([]ServiceRequestResponse, error) {
		queues, err := uow.ZoneQueueRepository().Get(ctx)
		if err != nil {
			return nil, err
		}
		users, err := uow.UserRepository().GetAll(ctx)
		if err != nil {
			return nil, err
		}

		names := make(map[kernel.ID]string, len(users))
		for _, u := range users {
			names[u.ID()] = u.Name()
		}

		var resp []ServiceRequestResponse
		for _, zone := range kernel.AllZones() {
			for i, r := range queues.Zone(zone) {
				resp = append(resp, ServiceRequestResponse{
					ID:          r.ID(),
					Zone:        zone,
					Position:    i + 1,
					Kind:        r.Kind(),
					UserID:      r.UserID(),
					UserName:    names[r.UserID()],
					From:        r.From(),
					To:          r.To(),
					Distance:    r.Distance(),
					Cost:        r.Cost(),
					Restaurant:  r.Restaurant(),
					FoodOrderID: r.FoodOrderID(),
				})
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	if query.SortByDistance() {
		slices.SortStableFunc(resp, func(a, b ServiceRequestResponse) int {
			return cmp.Compare(a.Distance, b.Distance)
		})
	}

	return resp, nil
}

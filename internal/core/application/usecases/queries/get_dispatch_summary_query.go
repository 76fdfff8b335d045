package queries

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDispatchSummaryQueryIsNotConstructed = errors.New(
	"GetDispatchSummaryQuery must be created via NewGetDispatchSummaryQuery constructor",
)

// GetDispatchSummaryQuery reports platform totals.
type GetDispatchSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDispatchSummaryQuery() GetDispatchSummaryQuery {
	return GetDispatchSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDispatchSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchSummaryQueryIsNotConstructed)
}

// DispatchSummaryResponse is the platform overview.
type DispatchSummaryResponse struct {
	Revenue          kernel.Money
	Payouts          kernel.Money
	Completed        int
	Users            int
	Drivers          int
	AvailableDrivers int
	QueueSizes       [kernel.ZoneCount]int
}

// Pending returns the number of queued requests over all zones.
func (r DispatchSummaryResponse) Pending() int {
	var n int
	for _, size := range r.QueueSizes {
		n += size
	}
	return n
}

type GetDispatchSummaryQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetDispatchSummaryQueryHandler(uowFactory UoWFactory) GetDispatchSummaryQueryHandler {
	return GetDispatchSummaryQueryHandler{uowFactory: uowFactory}
}

func (h GetDispatchSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchSummaryQuery,
) (DispatchSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return DispatchSummaryResponse{}, err
	}

	return read(ctx, h.uowFactory, func(uow UoW) (DispatchSummaryResponse, error) {
		l, err := uow.LedgerRepository().Get(ctx)
		if err != nil {
			return DispatchSummaryResponse{}, err
		}
		queues, err := uow.ZoneQueueRepository().Get(ctx)
		if err != nil {
			return DispatchSummaryResponse{}, err
		}
		users, err := uow.UserRepository().Count(ctx)
		if err != nil {
			return DispatchSummaryResponse{}, err
		}
		drivers, err := uow.DriverRepository().GetAll(ctx)
		if err != nil {
			return DispatchSummaryResponse{}, err
		}

		var available int
		for _, d := range drivers {
			if d.IsAvailable() {
				available++
			}
		}

		return DispatchSummaryResponse{
			Revenue:          l.Revenue(),
			Payouts:          l.Payouts(),
			Completed:        l.Completed(),
			Users:            users,
			Drivers:          len(drivers),
			AvailableDrivers: available,
			QueueSizes:       queues.Sizes(),
		}, nil
	})
}

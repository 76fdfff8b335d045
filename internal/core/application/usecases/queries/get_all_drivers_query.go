package queries

import (
	"context"
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery lists every driver in registration order.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

type GetAllDriversQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetAllDriversQueryHandler(uowFactory UoWFactory) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{uowFactory: uowFactory}
}

func (h GetAllDriversQueryHandler) Handle(ctx context.Context, query GetAllDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(uow UoW) ([]DriverResponse, error) {
		drivers, err := uow.DriverRepository().GetAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]DriverResponse, 0, len(drivers))
		for _, d := range drivers {
			resp = append(resp, newDriverResponse(d))
		}
		return resp, nil
	})
}

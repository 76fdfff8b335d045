package queries

import (
	"context"
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery lists every account in listing order, which is registration
// order until SortUsersCommand changes it.
//
// Example:
//
//	users, err := queries.NewGetAllUsersQueryHandler(uowFactory).
//	    Handle(ctx, queries.NewGetAllUsersQuery())
type GetAllUsersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllUsersQuery() GetAllUsersQuery {
	return GetAllUsersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

type GetAllUsersQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetAllUsersQueryHandler(uowFactory UoWFactory) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{uowFactory: uowFactory}
}

func (h GetAllUsersQueryHandler) Handle(ctx context.Context, query GetAllUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(uow UoW) ([]UserResponse, error) {
		users, err := uow.UserRepository().GetAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, newUserResponse(u))
		}
		return resp, nil
	})
}

package queries

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

type GetUserQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetUserQueryHandler(uowFactory UoWFactory) GetUserQueryHandler {
	return GetUserQueryHandler{uowFactory: uowFactory}
}

// Handle returns ErrUserNotFound for an unknown account id.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	return read(ctx, h.uowFactory, func(uow UoW) (UserResponse, error) {
		u, err := uow.UserRepository().Get(ctx, query.UserID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return UserResponse{}, fmt.Errorf("%w: %s", ErrUserNotFound, query.UserID())
		}
		if err != nil {
			return UserResponse{}, err
		}
		return newUserResponse(u), nil
	})
}

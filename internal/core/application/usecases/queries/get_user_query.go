package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery looks up one account.
type GetUserQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID string) (GetUserQuery, error) {
	id, err := kernel.IDFromString(userID)
	if err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{userID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.ID {
	return q.userID
}

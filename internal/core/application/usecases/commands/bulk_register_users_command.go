package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrBulkRegisterUsersCommandIsNotConstructed = errors.New(
		"BulkRegisterUsersCommand must be created via NewBulkRegisterUsersCommand constructor",
	)
	ErrUsersAreRequired = errs.NewValueIsRequiredError("users")
)

// BulkRegisterUsersCommand absorbs preregistered users whose ids were already
// assigned by the loader.
type BulkRegisterUsersCommand struct {
	users []*user.User

	guard guard.ConstructorGuard
}

func NewBulkRegisterUsersCommand(users []*user.User) (BulkRegisterUsersCommand, error) {
	if len(users) == 0 {
		return BulkRegisterUsersCommand{}, ErrUsersAreRequired
	}
	for _, u := range users {
		if err := u.Validate(); err != nil {
			return BulkRegisterUsersCommand{}, err
		}
	}

	return BulkRegisterUsersCommand{
		users: append([]*user.User(nil), users...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c BulkRegisterUsersCommand) Validate() error {
	return c.guard.Validate(ErrBulkRegisterUsersCommandIsNotConstructed)
}

func (c BulkRegisterUsersCommand) Users() []*user.User {
	return c.users
}

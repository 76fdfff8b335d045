package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSortUsersCommandIsNotConstructed = errors.New(
	"SortUsersCommand must be created via NewSortUsersCommand constructor",
)

// UserSortKey selects the ordering applied by SortUsersCommand.
type UserSortKey string

const (
	SortUsersByName   UserSortKey = "name"
	SortUsersByWallet UserSortKey = "wallet"
)

// ErrUserSortKeyIsInvalid is returned for keys other than name and wallet.
var ErrUserSortKeyIsInvalid = errs.NewValueIsInvalidError("sort key")

// SortUsersCommand reorders the user listing.
type SortUsersCommand struct {
	key UserSortKey

	guard guard.ConstructorGuard
}

func NewSortUsersCommand(key UserSortKey) (SortUsersCommand, error) {
	key = UserSortKey(strings.ToLower(strings.TrimSpace(string(key))))
	if key != SortUsersByName && key != SortUsersByWallet {
		return SortUsersCommand{}, ErrUserSortKeyIsInvalid
	}

	return SortUsersCommand{
		key:   key,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SortUsersCommand) Validate() error {
	return c.guard.Validate(ErrSortUsersCommandIsNotConstructed)
}

func (c SortUsersCommand) Key() UserSortKey {
	return c.key
}

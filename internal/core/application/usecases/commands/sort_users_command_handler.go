package commands

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
)

// SortUsersCommandHandler persists a new user listing order. Names sort
// lexicographically, wallets ascending. Ties keep their previous order.
type SortUsersCommandHandler struct {
	uowFactory UoWFactory
}

func NewSortUsersCommandHandler(uowFactory UoWFactory) SortUsersCommandHandler {
	return SortUsersCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SortUsersCommandHandler) Handle(ctx context.Context, cmd SortUsersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	users, err := userRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	switch cmd.Key() {
	case SortUsersByName:
		slices.SortStableFunc(users, func(a, b *user.User) int {
			return strings.Compare(a.Name(), b.Name())
		})
	case SortUsersByWallet:
		slices.SortStableFunc(users, func(a, b *user.User) int {
			return cmp.Compare(a.Wallet(), b.Wallet())
		})
	}

	ids := make([]kernel.ID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID())
	}

	if err = userRepo.Reorder(ctx, ids); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

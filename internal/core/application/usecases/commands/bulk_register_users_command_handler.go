package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// BulkRegisterUsersCommandHandler stores a batch of preregistered users under the
// same rules as live registration. The batch is rejected as a whole if any user
// has an unknown address or a taken id.
type BulkRegisterUsersCommandHandler struct {
	uowFactory UoWFactory
	cityMap    ports.CityMap
}

func NewBulkRegisterUsersCommandHandler(
	uowFactory UoWFactory,
	cityMap ports.CityMap,
) BulkRegisterUsersCommandHandler {
	return BulkRegisterUsersCommandHandler{
		uowFactory: uowFactory,
		cityMap:    cityMap,
	}
}

// Handle returns the number of users stored.
func (h BulkRegisterUsersCommandHandler) Handle(ctx context.Context, cmd BulkRegisterUsersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	for _, u := range cmd.Users() {
		if !h.cityMap.IsValidAddress(u.Address()) {
			return 0, fmt.Errorf("user %s: %w", u.ID(), invalidAddress(u.Address()))
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	for _, u := range cmd.Users() {
		if err := userRepo.Add(ctx, u); err != nil {
			if errors.Is(err, errs.ErrObjectAlreadyExists) {
				return 0, fmt.Errorf("%w: %s", ErrDuplicateUser, u.ID())
			}
			return 0, err
		}
		uow.Record(events.NewUserRegistered(u))
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(cmd.Users()), nil
}

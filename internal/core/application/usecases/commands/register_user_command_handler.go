package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// RegisterUserCommandHandler opens user accounts.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory, cityMap)
//	cmd, _ := NewRegisterUserCommand("Alice", "34 Bay St", 5000)
//
//	id, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrInvalidAddress):
//	    log.Println("unknown address")
//	case err != nil:
//	    log.Printf("registration failed: %v", err)
//	default:
//	    log.Printf("registered %s", id)
//	}
type RegisterUserCommandHandler struct {
	uowFactory UoWFactory
	cityMap    ports.CityMap
}

func NewRegisterUserCommandHandler(uowFactory UoWFactory, cityMap ports.CityMap) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		cityMap:    cityMap,
	}
}

// Handle validates the address and then the wallet, assigns the next user id
// and stores the user.
// Returns the new account id.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}
	if !h.cityMap.IsValidAddress(cmd.Address()) {
		return "", invalidAddress(cmd.Address())
	}
	if cmd.Wallet().IsNegative() {
		return "", user.ErrWalletIsInvalid
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	count, err := userRepo.Count(ctx)
	if err != nil {
		return "", err
	}

	u, err := user.NewUser(
		kernel.NewSequentialID(kernel.UserIDBase, count),
		cmd.Name(),
		cmd.Address(),
		cmd.Wallet(),
	)
	if err != nil {
		return "", err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return "", fmt.Errorf("%w: %s", ErrDuplicateUser, u.ID())
		}
		return "", err
	}

	uow.Record(events.NewUserRegistered(u))

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return u.ID(), nil
}

package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to open a user account.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("Alice", "34 Bay St", 5000)
//	if err != nil {
//	    return fmt.Errorf("invalid user data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name    string
	address string
	wallet  kernel.Money

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand validates the user name. The handler checks the
// address against the city map and only then the wallet, so an unknown
// address is reported ahead of a negative wallet.
func NewRegisterUserCommand(name string, address string, wallet kernel.Money) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		address: strings.TrimSpace(address),
		wallet:  wallet,
		guard:   guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Address() string {
	return c.address
}

func (c RegisterUserCommand) Wallet() kernel.Money {
	return c.wallet
}

func (c *RegisterUserCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return user.ErrNameIsRequired
	}

	c.name = name
	return nil
}

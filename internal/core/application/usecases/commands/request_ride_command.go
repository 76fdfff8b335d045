package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRequestRideCommandIsNotConstructed = errors.New(
	"RequestRideCommand must be created via NewRequestRideCommand constructor",
)

// RequestRideCommand represents a passenger asking for a ride between two addresses.
//
// Example:
//
//	cmd, err := NewRequestRideCommand("9000", "34 Bay St", "12 King St")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type RequestRideCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID
	from   string
	to     string

	guard guard.ConstructorGuard
}

// NewRequestRideCommand checks that the account id is present.
// Addresses are validated against the city map by the handler.
func NewRequestRideCommand(userID string, from string, to string) (RequestRideCommand, error) {
	command := RequestRideCommand{
		from:  strings.TrimSpace(from),
		to:    strings.TrimSpace(to),
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return RequestRideCommand{}, err
	}

	return command, nil
}

func (c RequestRideCommand) Validate() error {
	return c.guard.Validate(ErrRequestRideCommandIsNotConstructed)
}

func (c RequestRideCommand) UserID() kernel.ID {
	return c.userID
}

func (c RequestRideCommand) From() string {
	return c.from
}

func (c RequestRideCommand) To() string {
	return c.to
}

func (c *RequestRideCommand) setUserID(userID string) error {
	id, err := kernel.IDFromString(userID)
	if err != nil {
		return err
	}

	c.userID = id
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDropOffCommandIsNotConstructed = errors.New(
	"DropOffCommand must be created via NewDropOffCommand constructor",
)

// DropOffCommand completes the service a Driving driver carries.
type DropOffCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewDropOffCommand returns ErrInvalidDriverID for a blank id.
func NewDropOffCommand(driverID string) (DropOffCommand, error) {
	id, err := parseDriverID(driverID)
	if err != nil {
		return DropOffCommand{}, err
	}

	return DropOffCommand{
		driverID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DropOffCommand) Validate() error {
	return c.guard.Validate(ErrDropOffCommandIsNotConstructed)
}

func (c DropOffCommand) DriverID() kernel.ID {
	return c.driverID
}

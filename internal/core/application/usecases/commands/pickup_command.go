package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrPickupCommandIsNotConstructed = errors.New(
	"PickupCommand must be created via NewPickupCommand constructor",
)

// PickupCommand makes an Available driver take the oldest request waiting in
// the driver's zone.
type PickupCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewPickupCommand returns ErrInvalidDriverID for a blank id.
func NewPickupCommand(driverID string) (PickupCommand, error) {
	id, err := parseDriverID(driverID)
	if err != nil {
		return PickupCommand{}, err
	}

	return PickupCommand{
		driverID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c PickupCommand) Validate() error {
	return c.guard.Validate(ErrPickupCommandIsNotConstructed)
}

func (c PickupCommand) DriverID() kernel.ID {
	return c.driverID
}

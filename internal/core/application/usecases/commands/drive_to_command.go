package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDriveToCommandIsNotConstructed = errors.New(
	"DriveToCommand must be created via NewDriveToCommand constructor",
)

// DriveToCommand repositions an Available driver without a passenger.
type DriveToCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID
	address  string

	guard guard.ConstructorGuard
}

// NewDriveToCommand rejects a blank driver id with ErrInvalidDriverID and a
// blank address with ErrInvalidAddress.
func NewDriveToCommand(driverID string, address string) (DriveToCommand, error) {
	id, err := parseDriverID(driverID)
	if err != nil {
		return DriveToCommand{}, err
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return DriveToCommand{}, invalidAddress(address)
	}

	return DriveToCommand{
		driverID: id,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DriveToCommand) Validate() error {
	return c.guard.Validate(ErrDriveToCommandIsNotConstructed)
}

func (c DriveToCommand) DriverID() kernel.ID {
	return c.driverID
}

func (c DriveToCommand) Address() string {
	return c.address
}

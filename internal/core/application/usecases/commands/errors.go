package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/queue"
)

// Application errors. Domain failures such as user.ErrInsufficientFunds or
// request.ErrInsufficientTravelDistance are returned unchanged.
var (
	ErrInvalidAddress          = errors.New("invalid address")
	ErrInvalidDriverID         = errors.New("invalid driver id")
	ErrUserNotFound            = errors.New("user account not found")
	ErrDriverNotFound          = errors.New("driver not found")
	ErrDuplicateUser           = errors.New("user already exists in system")
	ErrDuplicateDriver         = errors.New("driver already exists in system")
	ErrDuplicateRequest        = errors.New("user already has this service request")
	ErrNoDriversAvailable      = errors.New("no drivers available")
	ErrNoServiceRequestInQueue = errors.New("no service request in the queue")
)

func invalidAddress(address string) error {
	return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
}

func invalidZone(zone kernel.Zone, address string) error {
	return fmt.Errorf("%w: %s for address: %s", queue.ErrInvalidZone, zone, address)
}

func parseDriverID(raw string) (kernel.ID, error) {
	id, err := kernel.IDFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDriverID, raw)
	}
	return id, nil
}

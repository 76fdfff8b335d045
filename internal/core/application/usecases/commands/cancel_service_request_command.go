package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/pkg/guard"
)

var ErrCancelServiceRequestCommandIsNotConstructed = errors.New(
	"CancelServiceRequestCommand must be created via NewCancelServiceRequestCommand constructor",
)

// CancelServiceRequestCommand removes the request at a 1-based position of a
// zone queue.
type CancelServiceRequestCommand struct { //nolint:recvcheck //using for validation
	zone     kernel.Zone
	position int

	guard guard.ConstructorGuard
}

// NewCancelServiceRequestCommand rejects a zone outside 0..3 with
// queue.ErrInvalidZone and a position below 1 with queue.ErrInvalidPosition.
func NewCancelServiceRequestCommand(zone int, position int) (CancelServiceRequestCommand, error) {
	z, err := kernel.NewZone(zone)
	if err != nil {
		return CancelServiceRequestCommand{}, fmt.Errorf("%w # %d", queue.ErrInvalidZone, zone)
	}
	if position < 1 {
		return CancelServiceRequestCommand{}, fmt.Errorf("%w # %d", queue.ErrInvalidPosition, position)
	}

	return CancelServiceRequestCommand{
		zone:     z,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CancelServiceRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelServiceRequestCommandIsNotConstructed)
}

func (c CancelServiceRequestCommand) Zone() kernel.Zone {
	return c.zone
}

func (c CancelServiceRequestCommand) Position() int {
	return c.position
}

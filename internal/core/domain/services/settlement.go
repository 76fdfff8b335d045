package services

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
)

// ErrUserMismatch is returned when the paying user did not request the service.
var ErrUserMismatch = errors.New("user did not request this service")

// Settled describes a completed drop-off.
type Settled struct {
	Request *request.Request
	Cost    kernel.Money
	Pay     kernel.Money
	Revenue kernel.Money
}

// Settlement completes the service carried by a driver.
//
// Workflow, applied only after every precondition holds:
//   - revenue += cost, then revenue -= pay where pay = payRate of cost
//   - the driver earns pay, moves to the destination in dropZone and becomes Available
//   - the user's wallet is debited by cost
type Settlement struct {
	payRate kernel.Rate
}

func NewSettlement(payRate kernel.Rate) Settlement {
	return Settlement{payRate: payRate}
}

// Settle drops off the service attached to d, paid by u.
func (s Settlement) Settle(d *driver.Driver, u *user.User, l *ledger.Ledger, dropZone kernel.Zone) (Settled, error) {
	if err := errors.Join(d.Validate(), u.Validate()); err != nil {
		return Settled{}, err
	}
	if l == nil {
		return Settled{}, errors.New("ledger is required")
	}

	service := d.Service()
	if service == nil {
		return Settled{}, driver.ErrDriverHasNoService
	}
	if d.Status() != driver.Driving {
		return Settled{}, fmt.Errorf("driver %s is %s", d.ID(), d.Status())
	}
	if service.UserID() != u.ID() {
		return Settled{}, fmt.Errorf("%w: %s", ErrUserMismatch, u.ID())
	}
	cost := service.Cost()
	if !u.CanAfford(cost) {
		return Settled{}, user.ErrInsufficientFunds
	}

	pay, err := l.Settle(cost, s.payRate)
	if err != nil {
		return Settled{}, err
	}
	if _, err = d.DropOff(pay, dropZone); err != nil {
		return Settled{}, err
	}
	if err = u.PayForService(cost); err != nil {
		return Settled{}, err
	}

	return Settled{
		Request: service,
		Cost:    cost,
		Pay:     pay,
		Revenue: cost - pay,
	}, nil
}

// Package ledger keeps the platform revenue earned from completed services.
package ledger

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrCostIsInvalid is returned when settling a negative cost.
var ErrCostIsInvalid = errs.NewValueIsInvalidError("cost")

// Ledger is the running revenue total of the platform.
type Ledger struct {
	revenue   kernel.Money
	payouts   kernel.Money
	completed int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Restore rebuilds a ledger from stored totals.
func Restore(revenue kernel.Money, payouts kernel.Money, completed int) (*Ledger, error) {
	if payouts.IsNegative() || completed < 0 {
		return nil, errors.Join(
			errs.NewValueIsInvalidError("payouts"),
			errs.NewValueIsInvalidError("completed"),
		)
	}
	return &Ledger{revenue: revenue, payouts: payouts, completed: completed}, nil
}

// Settle books a completed service: the full cost is added to revenue and the
// driver's share, payRate of cost, is deducted again. It returns that share.
//
// Example:
//
//	pay, _ := l.Settle(1500, 1000) // pay = 150, revenue grows by 1350
func (l *Ledger) Settle(cost kernel.Money, payRate kernel.Rate) (kernel.Money, error) {
	if cost.IsNegative() {
		return 0, ErrCostIsInvalid
	}

	pay := payRate.Of(cost)
	l.revenue += cost
	l.revenue -= pay
	l.payouts += pay
	l.completed++
	return pay, nil
}

// Revenue returns the net revenue retained by the platform.
func (l *Ledger) Revenue() kernel.Money {
	return l.revenue
}

// Payouts returns the total paid to drivers.
func (l *Ledger) Payouts() kernel.Money {
	return l.payouts
}

// Completed returns the number of settled services.
func (l *Ledger) Completed() int {
	return l.completed
}

package services

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/core/domain/model/request"
)

// OutstandingCost returns what the user can still be charged at drop-off: the
// cost of every request a driver carries, plus queued requests no driver
// carries yet. A request carried by two drivers counts twice.
//
// Accepting new work only while the wallet covers OutstandingCost plus the new
// cost keeps every later drop-off payable.
func OutstandingCost(userID kernel.ID, drivers []*driver.Driver, queues *queue.ZoneQueues) kernel.Money {
	var total kernel.Money
	for _, d := range drivers {
		if s := d.Service(); s != nil && s.UserID() == userID {
			total += s.Cost()
		}
	}
	if queues == nil {
		return total
	}
	for _, r := range queues.SnapshotAll() {
		if r.UserID() == userID && CarrierOf(r, drivers) == nil {
			total += r.Cost()
		}
	}
	return total
}

// CarrierOf returns the driver carrying r, or nil.
func CarrierOf(r *request.Request, drivers []*driver.Driver) *driver.Driver {
	for _, d := range drivers {
		if s := d.Service(); s != nil && s.ID().IsEqual(r.ID()) {
			return d
		}
	}
	return nil
}

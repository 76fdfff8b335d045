package services

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/request"
)

// ErrDriverNotFound is returned when no driver is Available.
var ErrDriverNotFound = errors.New("no drivers available")

// DriverDispatcher matches new requests to drivers.
//
// Matching is first-fit: the first Available driver in registration order gets
// the request. There is no look-ahead by distance or zone, so results are
// reproducible for a given registration order.
//
// Example usage:
//
//	dispatcher := services.NewDriverDispatcher()
//	d, err := dispatcher.Dispatch(ride, drivers)
//	if errors.Is(err, services.ErrDriverNotFound) {
//	    // every driver is busy
//	}
type DriverDispatcher struct{}

func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// FindAvailable returns the first Available driver without changing it.
func (DriverDispatcher) FindAvailable(drivers []*driver.Driver) (*driver.Driver, error) {
	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if d.IsAvailable() && !d.HasService() {
			return d, nil
		}
	}
	return nil, ErrDriverNotFound
}

// Dispatch assigns r to the first Available driver, which becomes Driving.
func (o DriverDispatcher) Dispatch(r *request.Request, drivers []*driver.Driver) (*driver.Driver, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	d, err := o.FindAvailable(drivers)
	if err != nil {
		return nil, err
	}

	if err = d.Assign(r); err != nil {
		return nil, err
	}

	return d, nil
}

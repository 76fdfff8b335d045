package services

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/pkg/errs"
)

const (
	// DefaultRideRate is charged per block for a ride, 1.50.
	DefaultRideRate kernel.Money = 150
	// DefaultDeliveryRate is charged per block for a delivery, 1.20.
	DefaultDeliveryRate kernel.Money = 120
	// DefaultPayRate is the driver's share of a service cost, 10%.
	DefaultPayRate kernel.Rate = 1000
)

// Tariff prices services by distance.
type Tariff struct {
	rideRate     kernel.Money
	deliveryRate kernel.Money
	payRate      kernel.Rate
}

// NewTariff validates the per-block rates and the pay rate.
func NewTariff(rideRate kernel.Money, deliveryRate kernel.Money, payRate kernel.Rate) (Tariff, error) {
	var err error
	if rideRate.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidError("ride rate"))
	}
	if deliveryRate.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidError("delivery rate"))
	}
	if payRate < 0 || payRate > 10_000 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("pay rate", payRate, 0, 10_000))
	}
	if err != nil {
		return Tariff{}, err
	}
	return Tariff{rideRate: rideRate, deliveryRate: deliveryRate, payRate: payRate}, nil
}

// DefaultTariff returns the standard rates.
func DefaultTariff() Tariff {
	return Tariff{rideRate: DefaultRideRate, deliveryRate: DefaultDeliveryRate, payRate: DefaultPayRate}
}

// Cost returns distance times the per-block rate of kind.
func (t Tariff) Cost(kind request.Kind, distance int) (kernel.Money, error) {
	if distance < 0 {
		return 0, errs.NewValueIsInvalidError("distance")
	}
	switch kind {
	case request.Ride:
		return t.rideRate.Times(distance), nil
	case request.Delivery:
		return t.deliveryRate.Times(distance), nil
	case request.UnknownKind:
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%s has no rate", kind))
}

func (t Tariff) RideRate() kernel.Money {
	return t.rideRate
}

func (t Tariff) DeliveryRate() kernel.Money {
	return t.deliveryRate
}

// PayRate returns the driver's share of a service cost.
func (t Tariff) PayRate() kernel.Rate {
	return t.payRate
}

// Package events declares the domain events raised by dispatch operations.
//
// Events are plain data. Command handlers record them in the unit of work,
// which hands them to the configured publisher once the work is committed.
package events

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
)

// Event names.
const (
	UserRegisteredName     = "user.registered"
	DriverRegisteredName   = "driver.registered"
	ServiceRequestedName   = "service.requested"
	ServicePickedUpName    = "service.picked_up"
	ServiceCompletedName   = "service.completed"
	DriverRepositionedName = "driver.repositioned"
	ServiceCancelledName   = "service.cancelled"
)

// Event is implemented by every domain event.
type Event interface {
	// EventName identifies the event type, e.g. "service.completed".
	EventName() string
	// AggregateID is the id of the user, driver or request the event is about.
	AggregateID() string
	// OccurredAt is the time the event was raised.
	OccurredAt() time.Time
}

// Meta carries the fields shared by all events.
type Meta struct {
	Name string    `json:"name"`
	At   time.Time `json:"occurred_at"`
}

func newMeta(name string) Meta {
	return Meta{Name: name, At: time.Now().UTC()}
}

func (m Meta) EventName() string {
	return m.Name
}

func (m Meta) OccurredAt() time.Time {
	return m.At
}

// Service describes a request inside an event payload.
type Service struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	UserID      string `json:"user_id"`
	From        string `json:"from"`
	To          string `json:"to"`
	Distance    int    `json:"distance"`
	CostCents   int64  `json:"cost_cents"`
	Restaurant  string `json:"restaurant,omitempty"`
	FoodOrderID string `json:"food_order_id,omitempty"`
}

func newService(r *request.Request) Service {
	return Service{
		ID:          r.ID().String(),
		Kind:        r.Kind().String(),
		UserID:      r.UserID().String(),
		From:        r.From(),
		To:          r.To(),
		Distance:    r.Distance(),
		CostCents:   r.Cost().Cents(),
		Restaurant:  r.Restaurant(),
		FoodOrderID: r.FoodOrderID(),
	}
}

type UserRegistered struct {
	Meta
	UserID      string `json:"user_id"`
	Name        string `json:"user_name"`
	Address     string `json:"address"`
	WalletCents int64  `json:"wallet_cents"`
}

func NewUserRegistered(u *user.User) UserRegistered {
	return UserRegistered{
		Meta:        newMeta(UserRegisteredName),
		UserID:      u.ID().String(),
		Name:        u.Name(),
		Address:     u.Address(),
		WalletCents: u.Wallet().Cents(),
	}
}

func (e UserRegistered) AggregateID() string {
	return e.UserID
}

type DriverRegistered struct {
	Meta
	DriverID     string `json:"driver_id"`
	Name         string `json:"driver_name"`
	CarModel     string `json:"car_model"`
	LicensePlate string `json:"license_plate"`
	Address      string `json:"address"`
	Zone         int    `json:"zone"`
}

func NewDriverRegistered(d *driver.Driver) DriverRegistered {
	return DriverRegistered{
		Meta:         newMeta(DriverRegisteredName),
		DriverID:     d.ID().String(),
		Name:         d.Name(),
		CarModel:     d.CarModel(),
		LicensePlate: d.LicensePlate(),
		Address:      d.Address(),
		Zone:         d.Zone().Int(),
	}
}

func (e DriverRegistered) AggregateID() string {
	return e.DriverID
}

// ServiceRequested is raised when a ride or delivery is assigned and queued.
type ServiceRequested struct {
	Meta
	Service  Service `json:"service"`
	DriverID string  `json:"driver_id"`
	Zone     int     `json:"zone"`
}

func NewServiceRequested(r *request.Request, driverID kernel.ID, zone kernel.Zone) ServiceRequested {
	return ServiceRequested{
		Meta:     newMeta(ServiceRequestedName),
		Service:  newService(r),
		DriverID: driverID.String(),
		Zone:     zone.Int(),
	}
}

func (e ServiceRequested) AggregateID() string {
	return e.Service.ID
}

type ServicePickedUp struct {
	Meta
	Service  Service `json:"service"`
	DriverID string  `json:"driver_id"`
	Zone     int     `json:"zone"`
}

func NewServicePickedUp(r *request.Request, driverID kernel.ID, zone kernel.Zone) ServicePickedUp {
	return ServicePickedUp{
		Meta:     newMeta(ServicePickedUpName),
		Service:  newService(r),
		DriverID: driverID.String(),
		Zone:     zone.Int(),
	}
}

func (e ServicePickedUp) AggregateID() string {
	return e.Service.ID
}

// ServiceCompleted is raised on drop-off with the settled amounts.
type ServiceCompleted struct {
	Meta
	Service      Service `json:"service"`
	DriverID     string  `json:"driver_id"`
	Zone         int     `json:"zone"`
	PayCents     int64   `json:"pay_cents"`
	RevenueCents int64   `json:"revenue_cents"`
}

func NewServiceCompleted(
	r *request.Request,
	driverID kernel.ID,
	zone kernel.Zone,
	pay kernel.Money,
	revenue kernel.Money,
) ServiceCompleted {
	return ServiceCompleted{
		Meta:         newMeta(ServiceCompletedName),
		Service:      newService(r),
		DriverID:     driverID.String(),
		Zone:         zone.Int(),
		PayCents:     pay.Cents(),
		RevenueCents: revenue.Cents(),
	}
}

func (e ServiceCompleted) AggregateID() string {
	return e.Service.ID
}

type DriverRepositioned struct {
	Meta
	DriverID string `json:"driver_id"`
	Address  string `json:"address"`
	Zone     int    `json:"zone"`
}

func NewDriverRepositioned(d *driver.Driver) DriverRepositioned {
	return DriverRepositioned{
		Meta:     newMeta(DriverRepositionedName),
		DriverID: d.ID().String(),
		Address:  d.Address(),
		Zone:     d.Zone().Int(),
	}
}

func (e DriverRepositioned) AggregateID() string {
	return e.DriverID
}

type ServiceCancelled struct {
	Meta
	Service  Service `json:"service"`
	Zone     int     `json:"zone"`
	Position int     `json:"position"`
}

func NewServiceCancelled(r *request.Request, zone kernel.Zone, position int) ServiceCancelled {
	return ServiceCancelled{
		Meta:     newMeta(ServiceCancelledName),
		Service:  newService(r),
		Zone:     zone.Int(),
		Position: position,
	}
}

func (e ServiceCancelled) AggregateID() string {
	return e.Service.ID
}

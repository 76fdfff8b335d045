package driver

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned for a blank driver name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarModelIsRequired is returned for a blank car model.
	ErrCarModelIsRequired = errs.NewValueIsRequiredError("car model")
	// ErrLicensePlateIsRequired is returned for a blank license plate.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("license plate")
	// ErrAddressIsRequired is returned when repositioning to a blank address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrEarningsAreInvalid is returned when restoring negative earnings.
	ErrEarningsAreInvalid = errs.NewValueIsInvalidError("earnings")
	// ErrDriverHasService is returned when attaching a request to a driver that already carries one.
	ErrDriverHasService = errors.New("driver already has a service request")
	// ErrDriverHasNoService is returned when dropping off a driver that carries no request.
	ErrDriverHasNoService = errors.New("driver has no service request")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is the aggregate root of a registered driver.
//
// Business rules:
//   - Name, car model and license plate are required
//   - A blank address is accepted at registration and leaves the driver unmapped
//   - A driver carries at most one request, and only while Driving
//   - The zone always reflects the current address (ZoneNone when unmapped)
//
// Example usage:
//
//	d, err := driver.NewDriver("7000", "Frank", "Toyota Corolla", "ABC123", "34 Bay St", 1)
//	if err != nil {
//	    // Handle validation error
//	}
//	d.IsAvailable() // true
type Driver struct {
	id           kernel.ID
	name         string
	carModel     string
	licensePlate string
	address      string
	zone         kernel.Zone
	status       Status
	earnings     kernel.Money
	service      *request.Request
	guard        guard.ConstructorGuard
}

// NewDriver registers an Available driver at address.
//
// Parameters:
//   - id: driver id assigned by the registry
//   - name, carModel, licensePlate: required descriptive fields
//   - address: current address; may be blank, the driver is then unmapped
//   - zone: dispatch zone of address; ZoneNone is accepted at registration
//
// Returns:
//   - *Driver: the new driver
//   - error: joined validation errors for every invalid parameter
func NewDriver(
	id kernel.ID,
	name string,
	carModel string,
	licensePlate string,
	address string,
	zone kernel.Zone,
) (*Driver, error) {
	d := &Driver{
		address: strings.TrimSpace(address),
		status:  Available,
		zone:    zone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCarModel(carModel),
		d.setLicensePlate(licensePlate),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a Driver from storage.
// A non-nil service is only accepted together with the Driving status.
func RestoreDriver(
	id kernel.ID,
	name string,
	carModel string,
	licensePlate string,
	address string,
	zone kernel.Zone,
	status Status,
	earnings kernel.Money,
	service *request.Request,
) (*Driver, error) {
	d := &Driver{
		address: strings.TrimSpace(address),
		zone:    zone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCarModel(carModel),
		d.setLicensePlate(licensePlate),
		d.setStatus(status, service),
		d.setEarnings(earnings),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate returns ErrDriverIsNotConstructed for nil or zero-value drivers.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares drivers by id.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id == other.id
}

func (d *Driver) ID() kernel.ID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) CarModel() string {
	return d.carModel
}

func (d *Driver) LicensePlate() string {
	return d.licensePlate
}

func (d *Driver) Address() string {
	return d.address
}

func (d *Driver) Zone() kernel.Zone {
	return d.zone
}

func (d *Driver) Status() Status {
	return d.status
}

// Earnings returns the total pay received for completed services.
func (d *Driver) Earnings() kernel.Money {
	return d.earnings
}

// Service returns the attached request, or nil.
func (d *Driver) Service() *request.Request {
	return d.service
}

// HasService reports whether a request is attached.
func (d *Driver) HasService() bool {
	return d.service != nil
}

func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// Assign attaches a freshly created request without moving the driver.
// The driver has to be Available and becomes Driving.
func (d *Driver) Assign(service *request.Request) error {
	if err := service.Validate(); err != nil {
		return err
	}
	if d.service != nil {
		return ErrDriverHasService
	}

	status, err := d.status.Drive()
	if err != nil {
		return err
	}

	d.status = status
	d.service = service
	return nil
}

// PickUp takes a queued request from zone: the driver moves to the request's
// origin, attaches it and becomes Driving.
func (d *Driver) PickUp(service *request.Request, zone kernel.Zone) error {
	if err := service.Validate(); err != nil {
		return err
	}
	if d.service != nil {
		return ErrDriverHasService
	}

	status, err := d.status.Drive()
	if err != nil {
		return err
	}

	d.status = status
	d.service = service
	d.address = service.From()
	d.zone = zone
	return nil
}

// DropOff completes the attached request: the driver earns pay, moves to the
// request's destination in zone, detaches the request and becomes Available.
// It returns the completed request.
func (d *Driver) DropOff(pay kernel.Money, zone kernel.Zone) (*request.Request, error) {
	if d.service == nil {
		return nil, ErrDriverHasNoService
	}
	if pay.IsNegative() {
		return nil, errs.NewValueIsInvalidError("pay")
	}

	status, err := d.status.Release()
	if err != nil {
		return nil, err
	}

	completed := d.service
	d.earnings += pay
	d.address = completed.To()
	d.zone = zone
	d.service = nil
	d.status = status
	return completed, nil
}

// DriveTo repositions an Available driver to address without a passenger.
// The driver becomes Driving and stays unmatched until released.
func (d *Driver) DriveTo(address string, zone kernel.Zone) error {
	status, err := d.status.Drive()
	if err != nil {
		return err
	}
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}

	d.address = address
	d.status = status
	d.zone = zone
	return nil
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setCarModel(carModel string) error {
	if strings.TrimSpace(carModel) == "" {
		return ErrCarModelIsRequired
	}
	d.carModel = carModel
	return nil
}

func (d *Driver) setLicensePlate(licensePlate string) error {
	if strings.TrimSpace(licensePlate) == "" {
		return ErrLicensePlateIsRequired
	}
	d.licensePlate = licensePlate
	return nil
}

func (d *Driver) setStatus(status Status, service *request.Request) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if service != nil && status != Driving {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", ErrDriverHasService)
	}
	d.status = status
	d.service = service
	return nil
}

func (d *Driver) setEarnings(earnings kernel.Money) error {
	if earnings.IsNegative() {
		return ErrEarningsAreInvalid
	}
	d.earnings = earnings
	return nil
}

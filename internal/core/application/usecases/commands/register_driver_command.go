package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to sign up a driver.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	name         string
	carModel     string
	licensePlate string
	address      string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand checks that name, car model and license plate are
// present. The address is not validated: an unmapped or blank address simply
// gets no zone.
func NewRegisterDriverCommand(
	name string,
	carModel string,
	licensePlate string,
	address string,
) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setCarModel(carModel),
		command.setLicensePlate(licensePlate),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c RegisterDriverCommand) CarModel() string {
	return c.carModel
}

func (c RegisterDriverCommand) LicensePlate() string {
	return c.licensePlate
}

func (c RegisterDriverCommand) Address() string {
	return c.address
}

func (c *RegisterDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return driver.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setCarModel(carModel string) error {
	carModel = strings.TrimSpace(carModel)
	if carModel == "" {
		return driver.ErrCarModelIsRequired
	}

	c.carModel = carModel
	return nil
}

func (c *RegisterDriverCommand) setLicensePlate(licensePlate string) error {
	licensePlate = strings.TrimSpace(licensePlate)
	if licensePlate == "" {
		return driver.ErrLicensePlateIsRequired
	}

	c.licensePlate = licensePlate
	return nil
}

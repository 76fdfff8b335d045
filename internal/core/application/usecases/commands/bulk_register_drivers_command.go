package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrBulkRegisterDriversCommandIsNotConstructed = errors.New(
		"BulkRegisterDriversCommand must be created via NewBulkRegisterDriversCommand constructor",
	)
	ErrDriversAreRequired = errs.NewValueIsRequiredError("drivers")
)

// BulkRegisterDriversCommand absorbs preregistered drivers whose ids were
// already assigned by the loader.
type BulkRegisterDriversCommand struct {
	drivers []*driver.Driver

	guard guard.ConstructorGuard
}

func NewBulkRegisterDriversCommand(drivers []*driver.Driver) (BulkRegisterDriversCommand, error) {
	if len(drivers) == 0 {
		return BulkRegisterDriversCommand{}, ErrDriversAreRequired
	}
	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return BulkRegisterDriversCommand{}, err
		}
	}

	return BulkRegisterDriversCommand{
		drivers: append([]*driver.Driver(nil), drivers...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c BulkRegisterDriversCommand) Validate() error {
	return c.guard.Validate(ErrBulkRegisterDriversCommandIsNotConstructed)
}

func (c BulkRegisterDriversCommand) Drivers() []*driver.Driver {
	return c.drivers
}

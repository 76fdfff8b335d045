package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/pkg/guard"
)

var ErrRequestDeliveryCommandIsNotConstructed = errors.New(
	"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
)

// RequestDeliveryCommand represents a user ordering a food delivery from a restaurant.
type RequestDeliveryCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.ID
	from        string
	to          string
	restaurant  string
	foodOrderID string

	guard guard.ConstructorGuard
}

func NewRequestDeliveryCommand(
	userID string,
	from string,
	to string,
	restaurant string,
	foodOrderID string,
) (RequestDeliveryCommand, error) {
	command := RequestDeliveryCommand{
		from:  strings.TrimSpace(from),
		to:    strings.TrimSpace(to),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setOrder(restaurant, foodOrderID),
	); err != nil {
		return RequestDeliveryCommand{}, err
	}

	return command, nil
}

func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

func (c RequestDeliveryCommand) UserID() kernel.ID {
	return c.userID
}

func (c RequestDeliveryCommand) From() string {
	return c.from
}

func (c RequestDeliveryCommand) To() string {
	return c.to
}

func (c RequestDeliveryCommand) Restaurant() string {
	return c.restaurant
}

func (c RequestDeliveryCommand) FoodOrderID() string {
	return c.foodOrderID
}

func (c *RequestDeliveryCommand) setUserID(userID string) error {
	id, err := kernel.IDFromString(userID)
	if err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *RequestDeliveryCommand) setOrder(restaurant string, foodOrderID string) error {
	restaurant = strings.TrimSpace(restaurant)
	foodOrderID = strings.TrimSpace(foodOrderID)

	var err error
	if restaurant == "" {
		err = errors.Join(err, request.ErrRestaurantIsRequired)
	}
	if foodOrderID == "" {
		err = errors.Join(err, request.ErrFoodOrderIDIsRequired)
	}
	if err != nil {
		return err
	}

	c.restaurant = restaurant
	c.foodOrderID = foodOrderID
	return nil
}

package request

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// MinRideDistance is the shortest ride in blocks; anything closer is walked.
	MinRideDistance = 2
	// MinDeliveryDistance is the shortest delivery in blocks.
	MinDeliveryDistance = 1
)

var (
	// ErrInsufficientTravelDistance is returned for trips below the minimum distance of their kind.
	ErrInsufficientTravelDistance = errors.New("insufficient travel distance")
	// ErrFromIsRequired is returned for a blank pickup address.
	ErrFromIsRequired = errs.NewValueIsRequiredError("from")
	// ErrToIsRequired is returned for a blank destination address.
	ErrToIsRequired = errs.NewValueIsRequiredError("to")
	// ErrRestaurantIsRequired is returned for a delivery without a restaurant.
	ErrRestaurantIsRequired = errs.NewValueIsRequiredError("restaurant")
	// ErrFoodOrderIDIsRequired is returned for a delivery without a food order id.
	ErrFoodOrderIDIsRequired = errs.NewValueIsRequiredError("food order id")
	// ErrCostIsInvalid is returned for a negative cost.
	ErrCostIsInvalid = errs.NewValueIsInvalidError("cost")
	// ErrRequestIsNotConstructed is returned when using an improperly initialized Request.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRide or NewDelivery constructor")
)

// Request is a ride or delivery awaiting or undergoing fulfillment.
//
// Example usage:
//
//	ride, err := request.NewRide("9000", "34 Bay St", "12 King St", 10, 1500)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(ride.Kind(), ride.Cost()) // RIDE 15.00
type Request struct {
	id          kernel.UUID
	kind        Kind
	userID      kernel.ID
	from        string
	to          string
	distance    int
	cost        kernel.Money
	restaurant  string
	foodOrderID string
	guard       guard.ConstructorGuard
}

// NewRide creates a ride of at least MinRideDistance blocks.
//
// Parameters:
//   - userID: account id of the passenger
//   - from, to: pickup and destination addresses
//   - distance: block distance between the addresses
//   - cost: price charged at drop-off
//
// Returns:
//   - *Request: the ride
//   - error: ErrInsufficientTravelDistance or joined validation errors
func NewRide(userID kernel.ID, from string, to string, distance int, cost kernel.Money) (*Request, error) {
	return newRequest(kernel.NewUUID(), Ride, userID, from, to, distance, cost, "", "")
}

// NewDelivery creates a food delivery of at least MinDeliveryDistance blocks.
func NewDelivery(
	userID kernel.ID,
	from string,
	to string,
	distance int,
	cost kernel.Money,
	restaurant string,
	foodOrderID string,
) (*Request, error) {
	return newRequest(kernel.NewUUID(), Delivery, userID, from, to, distance, cost, restaurant, foodOrderID)
}

// RestoreRequest rebuilds a Request from storage under its original id.
func RestoreRequest(
	id kernel.UUID,
	kind Kind,
	userID kernel.ID,
	from string,
	to string,
	distance int,
	cost kernel.Money,
	restaurant string,
	foodOrderID string,
) (*Request, error) {
	return newRequest(id, kind, userID, from, to, distance, cost, restaurant, foodOrderID)
}

func newRequest(
	id kernel.UUID,
	kind Kind,
	userID kernel.ID,
	from string,
	to string,
	distance int,
	cost kernel.Money,
	restaurant string,
	foodOrderID string,
) (*Request, error) {
	if err := errors.Join(id.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	r := &Request{
		id:    id,
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setUserID(userID),
		r.setRoute(from, to),
		r.setDistance(distance),
		r.setCost(cost),
		r.setOrder(restaurant, foodOrderID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate returns ErrRequestIsNotConstructed for nil or zero-value requests.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) Kind() Kind {
	return r.kind
}

// UserID returns the account id of the requesting user.
func (r *Request) UserID() kernel.ID {
	return r.userID
}

func (r *Request) From() string {
	return r.from
}

func (r *Request) To() string {
	return r.to
}

// Distance returns the trip length in blocks.
func (r *Request) Distance() int {
	return r.distance
}

func (r *Request) Cost() kernel.Money {
	return r.cost
}

// Restaurant is empty for rides.
func (r *Request) Restaurant() string {
	return r.restaurant
}

// FoodOrderID is empty for rides.
func (r *Request) FoodOrderID() string {
	return r.foodOrderID
}

// IsEqual applies the duplicate rule of the request kind.
// A ride equals any other ride of the same user. A delivery equals another
// delivery of the same user, restaurant and food order id.
func (r *Request) IsEqual(other *Request) bool {
	if r == nil || other == nil {
		return false
	}
	if r.kind != other.kind || r.userID != other.userID {
		return false
	}
	if r.kind == Delivery {
		return r.restaurant == other.restaurant && r.foodOrderID == other.foodOrderID
	}
	return true
}

func (r *Request) String() string {
	s := fmt.Sprintf("%s user %s from %s to %s, %d blocks, cost %s",
		r.kind, r.userID, r.from, r.to, r.distance, r.cost)
	if r.kind == Delivery {
		s += fmt.Sprintf(", restaurant %s, food order #%s", r.restaurant, r.foodOrderID)
	}
	return s
}

func (r *Request) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *Request) setRoute(from string, to string) error {
	var err error
	if strings.TrimSpace(from) == "" {
		err = errors.Join(err, ErrFromIsRequired)
	}
	if strings.TrimSpace(to) == "" {
		err = errors.Join(err, ErrToIsRequired)
	}
	if err != nil {
		return err
	}
	r.from = from
	r.to = to
	return nil
}

func (r *Request) setDistance(distance int) error {
	minDistance := MinRideDistance
	if r.kind == Delivery {
		minDistance = MinDeliveryDistance
	}
	if distance < minDistance {
		return ErrInsufficientTravelDistance
	}
	r.distance = distance
	return nil
}

func (r *Request) setCost(cost kernel.Money) error {
	if cost.IsNegative() {
		return ErrCostIsInvalid
	}
	r.cost = cost
	return nil
}

func (r *Request) setOrder(restaurant string, foodOrderID string) error {
	if r.kind != Delivery {
		return nil
	}
	var err error
	if strings.TrimSpace(restaurant) == "" {
		err = errors.Join(err, ErrRestaurantIsRequired)
	}
	if strings.TrimSpace(foodOrderID) == "" {
		err = errors.Join(err, ErrFoodOrderIDIsRequired)
	}
	if err != nil {
		return err
	}
	r.restaurant = restaurant
	r.foodOrderID = foodOrderID
	return nil
}

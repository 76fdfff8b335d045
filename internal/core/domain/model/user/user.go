package user

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned for a blank user name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned for a blank address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrWalletIsInvalid is returned for a negative wallet balance.
	ErrWalletIsInvalid = errs.NewValueIsInvalidError("wallet")
	// ErrCounterIsInvalid is returned when restoring negative ride or delivery counters.
	ErrCounterIsInvalid = errs.NewValueIsInvalidError("service counter")
	// ErrInsufficientFunds is returned when the wallet cannot cover a service cost.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the aggregate root of a registered account.
//
// Example usage:
//
//	u, err := user.NewUser(kernel.NewSequentialID(kernel.UserIDBase, 0), "Alice", "34 Bay St", 5000)
//	if err != nil {
//	    // Handle validation error
//	}
//	u.CanAfford(1500) // true
type User struct {
	id         kernel.ID
	name       string
	address    string
	wallet     kernel.Money
	rides      int
	deliveries int
	guard      guard.ConstructorGuard
}

// NewUser registers a fresh account with no services requested yet.
//
// Parameters:
//   - id: account id assigned by the registry
//   - name: display name (must be non-blank)
//   - address: home address (must be non-blank; validity is checked by the city map)
//   - wallet: opening balance (must be non-negative)
//
// Returns:
//   - *User: the new account
//   - error: joined validation errors for every invalid parameter
func NewUser(id kernel.ID, name string, address string, wallet kernel.Money) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setAddress(address),
		u.setWallet(wallet),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a User from storage, counters included.
func RestoreUser(
	id kernel.ID,
	name string,
	address string,
	wallet kernel.Money,
	rides int,
	deliveries int,
) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setAddress(address),
		u.setWallet(wallet),
		u.setCounters(rides, deliveries),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate returns ErrUserIsNotConstructed for nil or zero-value users.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares users by account id.
func (u *User) IsEqual(other *User) bool {
	if other == nil {
		return false
	}
	return u.id == other.id
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Address() string {
	return u.address
}

func (u *User) Wallet() kernel.Money {
	return u.wallet
}

// Rides returns the number of rides requested by the user.
func (u *User) Rides() int {
	return u.rides
}

// Deliveries returns the number of deliveries requested by the user.
func (u *User) Deliveries() int {
	return u.deliveries
}

// CanAfford reports whether the wallet covers cost.
func (u *User) CanAfford(cost kernel.Money) bool {
	return u.wallet >= cost
}

// PayForService debits cost from the wallet.
// The wallet is left untouched and ErrInsufficientFunds is returned if it would go negative.
func (u *User) PayForService(cost kernel.Money) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}
	if !u.CanAfford(cost) {
		return ErrInsufficientFunds
	}
	u.wallet -= cost
	return nil
}

// AddRide counts a newly requested ride.
func (u *User) AddRide() {
	u.rides++
}

// AddDelivery counts a newly requested delivery.
func (u *User) AddDelivery() {
	u.deliveries++
}

func (u *User) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	u.address = address
	return nil
}

func (u *User) setWallet(wallet kernel.Money) error {
	if wallet.IsNegative() {
		return ErrWalletIsInvalid
	}
	u.wallet = wallet
	return nil
}

func (u *User) setCounters(rides int, deliveries int) error {
	if rides < 0 || deliveries < 0 {
		return ErrCounterIsInvalid
	}
	u.rides = rides
	u.deliveries = deliveries
	return nil
}

package request

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Kind tells rides and deliveries apart.
type Kind int

const (
	// UnknownKind catches uninitialized Kind values.
	UnknownKind Kind = iota
	// Ride transports the user.
	Ride
	// Delivery brings a restaurant order to the user.
	Delivery
)

func getKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		Ride:     "RIDE",
		Delivery: "DELIVERY",
	}
}

// KindFromString parses "RIDE" or "DELIVERY", case-insensitively.
func KindFromString(s string) (Kind, error) {
	for k, str := range getKindStrings() {
		if strings.EqualFold(strings.TrimSpace(s), str) {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid kind", s))
}

// Validate rejects UnknownKind and out-of-range values.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

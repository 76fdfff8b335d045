package kernel

import (
	"strconv"
	"strings"

	"dispatch/internal/pkg/errs"
)

const (
	// UserIDBase prefixes every user account id.
	UserIDBase = 900
	// DriverIDBase prefixes every driver id.
	DriverIDBase = 700
)

// ErrIDIsRequired is returned for a blank identifier.
var ErrIDIsRequired = errs.NewValueIsRequiredError("id")

// ID is an account or driver identifier.
//
// Ids are assigned in registration order as the decimal base followed by the
// decimal count of entities registered before: the first user is "9000", the
// eleventh user is "90010", the first driver is "7000".
type ID string

// NewSequentialID builds the id for the entity registered after count others.
func NewSequentialID(base int, count int) ID {
	return ID(strconv.Itoa(base) + strconv.Itoa(count))
}

// IDFromString trims s and rejects it when nothing is left.
func IDFromString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrIDIsRequired
	}
	return ID(s), nil
}

// Validate returns ErrIDIsRequired for an empty id.
func (id ID) Validate() error {
	if id == "" {
		return ErrIDIsRequired
	}
	return nil
}

func (id ID) String() string {
	return string(id)
}

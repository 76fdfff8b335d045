package driver

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status is the availability of a driver.
//
// State transitions:
//
//	Available ──(assign, pickup, drive to)──> Driving
//	Driving   ──(drop off)──────────────────> Available
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	// Available drivers can be matched to requests.
	Available
	// Driving drivers are serving a request or repositioning.
	Driving
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Driving:   "DRIVING",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "AVAILABLE",
		Driving:   "DRIVING",
	}
}

// StatusFromString parses "AVAILABLE" or "DRIVING", case-insensitively.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(strings.TrimSpace(s), str) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Drive transitions Available to Driving.
func (s Status) Drive() (Status, error) {
	if s != Available {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start driving", s),
		)
	}
	return Driving, nil
}

// Release transitions Driving back to Available.
func (s Status) Release() (Status, error) {
	if s != Driving {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to become available", s),
		)
	}
	return Available, nil
}

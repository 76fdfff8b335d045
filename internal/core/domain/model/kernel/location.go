package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Coordinate is an avenue (x) or street (y) index on the city grid.
type Coordinate int8

const (
	// LocationMinX is the westernmost avenue index.
	LocationMinX Coordinate = 0
	// LocationMinY is the northernmost street index.
	LocationMinY Coordinate = 0
	// LocationMaxX is the easternmost avenue index.
	LocationMaxX Coordinate = 9
	// LocationMaxY is the southernmost street index.
	LocationMaxY Coordinate = 9
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation")

// Location is a city block identified by its avenue and street indexes.
// The zero value is invalid; use NewLocation.
//
// Example:
//
//	loc, err := kernel.NewLocation(3, 7)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Location(3,7)
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location after checking that both coordinates lie on the grid.
//
// Parameters:
//   - x: avenue index in [LocationMinX..LocationMaxX]
//   - y: street index in [LocationMinY..LocationMaxY]
//
// Returns:
//   - Location: the block
//   - error: joined ValueIsOutOfRange errors for every coordinate off the grid
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate reports ErrLocationIsNotConstructed for a zero-value Location.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the avenue index.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the street index.
func (l Location) Y() Coordinate {
	return l.y
}

// String implements fmt.Stringer, e.g. "Location(3,7)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual reports whether both locations denote the same block.
// It fails if either location was not constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance returns the Manhattan distance in blocks, |x1-x2| + |y1-y2|.
// Movement through the city is restricted to avenues and streets, so this is
// the length of the shortest drive between the two blocks.
//
// Example:
//
//	a, _ := kernel.NewLocation(1, 1)
//	b, _ := kernel.NewLocation(4, 5)
//	d, _ := a.Distance(b) // 7
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(int(l.x) - int(other.x))
	dy := abs(int(l.y) - int(other.y))
	return dx + dy, nil
}

// setX uses a pointer receiver so the constructor can validate in place.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

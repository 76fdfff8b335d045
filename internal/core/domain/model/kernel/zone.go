package kernel

import (
	"strconv"

	"dispatch/internal/pkg/errs"
)

// Zone is one of the four dispatch zones of the city.
type Zone int8

const (
	// ZoneNone marks a valid address whose block belongs to no zone.
	ZoneNone Zone = -1
	// ZoneCount is the number of dispatch zones; valid zones are 0..ZoneCount-1.
	ZoneCount = 4
)

// NewZone converts a zone number, rejecting anything outside 0..3.
func NewZone(n int) (Zone, error) {
	if n < 0 || n >= ZoneCount {
		return ZoneNone, errs.NewValueIsOutOfRangeError("zone", n, 0, ZoneCount-1)
	}
	return Zone(n), nil
}

// AllZones lists the dispatch zones in ascending order.
func AllZones() []Zone {
	zones := make([]Zone, 0, ZoneCount)
	for z := range ZoneCount {
		zones = append(zones, Zone(z))
	}
	return zones
}

// IsValid reports whether z is one of the four dispatch zones.
func (z Zone) IsValid() bool {
	return z >= 0 && z < ZoneCount
}

// Int returns the zone number, -1 for ZoneNone.
func (z Zone) Int() int {
	return int(z)
}

func (z Zone) String() string {
	if !z.IsValid() {
		return "none"
	}
	return strconv.Itoa(int(z))
}

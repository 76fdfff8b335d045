package ports

import "dispatch/internal/core/domain/model/kernel"

// CityMap resolves addresses to dispatch zones and block distances.
type CityMap interface {
	// IsValidAddress reports whether address names a block of the city.
	IsValidAddress(address string) bool

	// Zone returns the zone of a valid address, or kernel.ZoneNone when the
	// address lies outside every zone.
	Zone(address string) kernel.Zone

	// Distance returns the block distance between two addresses.
	Distance(from string, to string) int
}

// Package kernel provides the shared value objects of the dispatch domain.
//
// The package includes:
//   - ID: sequential account and driver identifiers of the form "<base><count>"
//   - UUID: identity of service requests, backed by github.com/google/uuid
//   - Location: a block on the city grid with Manhattan distance
//   - Zone: one of the four dispatch zones, or ZoneNone for unmapped blocks
//   - Money and Rate: exact currency amounts in cents and fractions in basis points
//
// All values are immutable. Types that carry a ConstructorGuard report a zero
// value through their Validate method.
package kernel

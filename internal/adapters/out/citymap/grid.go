// Package citymap implements ports.CityMap for the grid city.
//
// The city is a 10x10 grid of blocks. Avenues run north-south and give the x
// index, streets run east-west and give the y index. An address is a house
// number from 1 to 99 followed by a road name. The house number selects the
// block along the road: "34 Bay St" lies on avenue 5 at street block 3.
//
// Blocks on the westernmost avenue or the northernmost street are outskirts
// and belong to no zone. The rest of the city is split into four quadrants:
//
//	0 NW | 1 NE
//	-----+-----
//	2 SW | 3 SE
package citymap

import (
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
)

const (
	minHouseNumber = 1
	maxHouseNumber = 99
	blockSize      = 10
	// quadrantEdge is the first avenue and street index of the eastern and
	// southern quadrants.
	quadrantEdge = 5
)

// Avenues lists the north-south roads from west (x = 0) to east.
var Avenues = [...]string{
	"Dufferin St",
	"Bathurst St",
	"Spadina Ave",
	"St George St",
	"University Ave",
	"Bay St",
	"Yonge St",
	"Church St",
	"Jarvis St",
	"Sherbourne St",
}

// Streets lists the east-west roads from north (y = 0) to south.
var Streets = [...]string{
	"Bloor St",
	"Wellesley St",
	"Carlton St",
	"Gerrard St",
	"Dundas St",
	"Queen St",
	"Richmond St",
	"Adelaide St",
	"King St",
	"Front St",
}

type road struct {
	avenue bool
	index  kernel.Coordinate
}

// Grid resolves addresses of the grid city. The zero value is not usable; use
// NewGrid.
type Grid struct {
	roads map[string]road
}

func NewGrid() *Grid {
	roads := make(map[string]road, len(Avenues)+len(Streets))
	for i, name := range Avenues {
		roads[normalize(name)] = road{avenue: true, index: kernel.Coordinate(i)}
	}
	for i, name := range Streets {
		roads[normalize(name)] = road{index: kernel.Coordinate(i)}
	}
	return &Grid{roads: roads}
}

// IsValidAddress reports whether address is "<1..99> <road>" for a known road.
func (g *Grid) IsValidAddress(address string) bool {
	_, ok := g.Locate(address)
	return ok
}

// Zone returns the quadrant of address, or kernel.ZoneNone for outskirts and
// invalid addresses.
func (g *Grid) Zone(address string) kernel.Zone {
	loc, ok := g.Locate(address)
	if !ok || loc.X() == kernel.LocationMinX || loc.Y() == kernel.LocationMinY {
		return kernel.ZoneNone
	}

	zone := 0
	if loc.Y() >= quadrantEdge {
		zone += 2
	}
	if loc.X() >= quadrantEdge {
		zone++
	}
	return kernel.Zone(zone)
}

// Distance returns the Manhattan block distance, 0 when either address is invalid.
func (g *Grid) Distance(from string, to string) int {
	a, ok := g.Locate(from)
	if !ok {
		return 0
	}
	b, ok := g.Locate(to)
	if !ok {
		return 0
	}

	d, err := a.Distance(b)
	if err != nil {
		return 0
	}
	return d
}

// Locate returns the block of address.
func (g *Grid) Locate(address string) (kernel.Location, bool) {
	number, name, found := strings.Cut(strings.TrimSpace(address), " ")
	if !found {
		return kernel.Location{}, false
	}

	n, err := strconv.Atoi(number)
	if err != nil || n < minHouseNumber || n > maxHouseNumber {
		return kernel.Location{}, false
	}

	r, ok := g.roads[normalize(name)]
	if !ok {
		return kernel.Location{}, false
	}

	block := kernel.Coordinate(n / blockSize)
	x, y := block, r.index
	if r.avenue {
		x, y = r.index, block
	}

	loc, err := kernel.NewLocation(x, y)
	if err != nil {
		return kernel.Location{}, false
	}
	return loc, true
}

// normalize lower-cases name and collapses runs of spaces.
func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

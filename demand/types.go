// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: OD value types, the optional Zone marker and their total orders.
// Invariants:
//   - OriginDestination orders by (Origin, Destination); Volume never participates.
//   - ClusteredOriginDestination orders by (OriginZone, DestinationZone, Origin, Destination).
//   - InvalidZone sorts before every valid zone.

package demand

import (
	"cmp"
	"slices"
	"strconv"
)

// OriginDestination is a travel demand of Volume trips from node Origin to
// node Destination. It is a plain value; copies are independent.
type OriginDestination struct {
	Origin      int
	Destination int
	Volume      int
}

// Compare orders a and b lexicographically by (Origin, Destination).
// It returns -1, 0 or +1. Volume is ignored.
func Compare(a, b OriginDestination) int {
	if c := cmp.Compare(a.Origin, b.Origin); c != 0 {
		return c
	}

	return cmp.Compare(a.Destination, b.Destination)
}

// Less reports whether od sorts before other.
func (od OriginDestination) Less(other OriginDestination) bool {
	return Compare(od, other) < 0
}

// Zone identifies a traffic zone, or its absence.
//
// The zero value is InvalidZone, which is distinct from every NewZone(id),
// including NewZone(0) and NewZone(-1).
type Zone struct {
	id    int
	valid bool
}

// InvalidZone marks a record without zone information.
var InvalidZone = Zone{}

// NewZone returns the valid zone with the given id.
func NewZone(id int) Zone {
	return Zone{id: id, valid: true}
}

// ID returns the zone id and whether the zone is valid.
func (z Zone) ID() (int, bool) {
	return z.id, z.valid
}

// Valid reports whether z carries a zone id.
func (z Zone) Valid() bool {
	return z.valid
}

// Compare orders zones: InvalidZone first, then valid zones by id.
func (z Zone) Compare(other Zone) int {
	switch {
	case z.valid == other.valid:
		if !z.valid {
			return 0
		}
		return cmp.Compare(z.id, other.id)
	case !z.valid:
		return -1
	default:
		return 1
	}
}

// String returns the decimal id, or "invalid".
func (z Zone) String() string {
	if !z.valid {
		return "invalid"
	}

	return strconv.Itoa(z.id)
}

// ClusteredOriginDestination is an OD pair whose endpoints are additionally
// assigned to an origin and a destination zone.
type ClusteredOriginDestination struct {
	OriginDestination

	OriginZone      Zone
	DestinationZone Zone
}

// CompareClustered orders a and b by (OriginZone, DestinationZone), then by
// the endpoint order of Compare. Zones take precedence over endpoints.
func CompareClustered(a, b ClusteredOriginDestination) int {
	if c := a.OriginZone.Compare(b.OriginZone); c != 0 {
		return c
	}
	if c := a.DestinationZone.Compare(b.DestinationZone); c != 0 {
		return c
	}

	return Compare(a.OriginDestination, b.OriginDestination)
}

// Less reports whether od sorts before other under CompareClustered.
func (od ClusteredOriginDestination) Less(other ClusteredOriginDestination) bool {
	return CompareClustered(od, other) < 0
}

// HasSameZones reports whether od and other share both the origin and the
// destination zone. Endpoints and volume are ignored.
func (od ClusteredOriginDestination) HasSameZones(other ClusteredOriginDestination) bool {
	return od.OriginZone == other.OriginZone && od.DestinationZone == other.DestinationZone
}

// SortODPairs sorts pairs in place by Compare. Equal pairs keep their order.
func SortODPairs(pairs []OriginDestination) {
	slices.SortStableFunc(pairs, Compare)
}

// SortClustered sorts pairs in place by CompareClustered. Equal pairs keep their order.
func SortClustered(pairs []ClusteredOriginDestination) {
	slices.SortStableFunc(pairs, CompareClustered)
}

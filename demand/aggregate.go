// SPDX-License-Identifier: MIT

package demand

import (
	"fmt"
	"math"
	"slices"
)

// ZoneDemand is the total demand between one pair of zones.
type ZoneDemand struct {
	OriginZone      Zone
	DestinationZone Zone
	Volume          int // sum of member volumes
	Pairs           int // number of member OD pairs
}

// AggregateByZone folds clustered OD pairs with the same zones (HasSameZones)
// into one ZoneDemand each. The result is ordered by (OriginZone,
// DestinationZone); records without zones group under InvalidZone.
// The input slice is not modified.
//
// Errors: ErrOverflow (wrapped) if a zone pair's total volume exceeds the range of int.
// Complexity: O(n log n) for n pairs.
func AggregateByZone(pairs []ClusteredOriginDestination) ([]ZoneDemand, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(pairs)
	SortClustered(sorted)

	var out []ZoneDemand
	head := sorted[0]
	acc := ZoneDemand{OriginZone: head.OriginZone, DestinationZone: head.DestinationZone}
	for _, od := range sorted {
		if !od.HasSameZones(head) {
			out = append(out, acc)
			head = od
			acc = ZoneDemand{OriginZone: od.OriginZone, DestinationZone: od.DestinationZone}
		}
		sum, ok := addInt(acc.Volume, od.Volume)
		if !ok {
			return nil, fmt.Errorf("demand: aggregate %v->%v: %w", acc.OriginZone, acc.DestinationZone, ErrOverflow)
		}
		acc.Volume = sum
		acc.Pairs++
	}

	return append(out, acc), nil
}

// addInt returns a+b and false if the sum overflows int.
func addInt(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}

	return a + b, true
}

// Package demand_test provides runnable examples for loading and grouping demand.
package demand_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/traffic/demand"
)

// ExampleLoadODPairs loads a plain demand table and sorts it.
func ExampleLoadODPairs() {
	table := `# morning peak
origin,destination,volume
3,4,7
1,2,5
`
	pairs, err := demand.LoadODPairs(strings.NewReader(table))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	demand.SortODPairs(pairs)
	for _, p := range pairs {
		fmt.Printf("%d->%d: %d\n", p.Origin, p.Destination, p.Volume)
	}
	// Output:
	// 1->2: 5
	// 3->4: 7
}

// ExampleAggregateByZone groups clustered pairs into zone-to-zone demand.
func ExampleAggregateByZone() {
	table := `origin,destination,volume,origin_zone,destination_zone
1,2,5,10,20
3,4,7,11,20
5,6,1,10,20
`
	pairs, err := demand.LoadClusteredODPairs(strings.NewReader(table))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	zones, err := demand.AggregateByZone(pairs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, zd := range zones {
		fmt.Printf("%v->%v: %d trips in %d pairs\n", zd.OriginZone, zd.DestinationZone, zd.Volume, zd.Pairs)
	}
	// Output:
	// 10->20: 6 trips in 2 pairs
	// 11->20: 7 trips in 1 pairs
}

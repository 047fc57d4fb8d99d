// SPDX-License-Identifier: MIT
//
// File: objective.go
// Role: Network-wide helpers over a flow vector indexed by edge.

package vdf

// Objective returns Beckmann's objective Σ_e ∫₀^flows[e] Cost(e, x) dx.
//
// flows[e] is the flow on edge e; len(flows) must not exceed the number of
// edges g knows about.
// Complexity: O(E) evaluations of f.Integral.
func Objective(f Function, g EdgeAttributes, flows []float64) float64 {
	var sum float64
	for e, x := range flows {
		sum += f.Integral(g, e, x)
	}

	return sum
}

// TravelTimes writes Cost(e, flows[e]) for every edge into dst and returns it.
// dst is reused when it has room for len(flows) values, otherwise a new
// slice is allocated.
// Complexity: O(E).
func TravelTimes(f Function, g EdgeAttributes, flows, dst []float64) []float64 {
	if cap(dst) < len(flows) {
		dst = make([]float64, len(flows))
	}
	dst = dst[:len(flows)]
	for e, x := range flows {
		dst[e] = f.Cost(g, e, x)
	}

	return dst
}

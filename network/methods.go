// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and read-only attribute queries.
// Determinism:
//   - Edges() returns edges in index order.
// Concurrency:
//   - AddEdge under the write lock; every query under the read lock.

package network

import "math"

// AddEdge appends a directed edge from→to and returns its dense index.
//
// Steps:
//  1. Validate endpoints (>= 0).
//  2. Validate capacity (> 0, finite) and free travel time (>= 0, finite).
//  3. Lock, append, track the node count, unlock.
//
// Errors: ErrNegativeVertex, ErrNonPositiveCapacity, ErrNegativeFreeTime.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, capacity, freeTime float64) (int, error) {
	// 1) Endpoint validation
	if from < 0 || to < 0 {
		return 0, ErrNegativeVertex
	}
	// 2) Attribute validation; the negated comparisons also reject NaN.
	if !(capacity > 0) || math.IsInf(capacity, 0) {
		return 0, ErrNonPositiveCapacity
	}
	if !(freeTime >= 0) || math.IsInf(freeTime, 0) {
		return 0, ErrNegativeFreeTime
	}

	// 3) Append under the write lock
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.edges)
	g.edges = append(g.edges, Edge{
		ID:             id,
		From:           from,
		To:             to,
		Capacity:       capacity,
		FreeTravelTime: freeTime,
	})
	if from >= g.numNodes {
		g.numNodes = from + 1
	}
	if to >= g.numNodes {
		g.numNodes = to + 1
	}

	return id, nil
}

// Capacity returns the capacity of edge e.
//
// e must lie in [0, NumEdges); an invalid index panics rather than
// yielding a fabricated value.
// Complexity: O(1).
func (g *Graph) Capacity(e int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[e].Capacity
}

// FreeTravelTime returns the free-flow travel time of edge e.
// Same index precondition as Capacity.
// Complexity: O(1).
func (g *Graph) FreeTravelTime(e int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[e].FreeTravelTime
}

// Edge returns a copy of edge e, or ErrEdgeOutOfRange.
// Complexity: O(1).
func (g *Graph) Edge(e int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e < 0 || e >= len(g.edges) {
		return Edge{}, ErrEdgeOutOfRange
	}

	return g.edges[e], nil
}

// Edges returns a copy of all edges in index order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NumEdges returns the number of stored edges.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NumNodes returns one plus the largest node id referenced by any edge.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numNodes
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph declarations, sentinel errors, GraphOption and the NewGraph constructor.
// Concurrency:
//   - A single sync.RWMutex guards the edge catalog; reads never block each other.
// Invariants:
//   - Edge indices are dense: the i-th successful AddEdge returns i.
//   - Every stored edge has Capacity > 0 and FreeTravelTime >= 0 (both finite).

package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrNegativeVertex indicates an edge endpoint with a negative node id.
	ErrNegativeVertex = errors.New("network: node id is negative")

	// ErrNonPositiveCapacity indicates a capacity that is zero, negative, NaN or infinite.
	ErrNonPositiveCapacity = errors.New("network: capacity must be positive and finite")

	// ErrNegativeFreeTime indicates a free-flow travel time that is negative, NaN or infinite.
	ErrNegativeFreeTime = errors.New("network: free travel time must be non-negative and finite")

	// ErrEdgeOutOfRange indicates an edge index outside [0, NumEdges).
	ErrEdgeOutOfRange = errors.New("network: edge index out of range")
)

// Edge is a directed road segment.
//
// ID equals the dense index under which the edge is stored.
type Edge struct {
	// ID is the dense edge index.
	ID int

	// From is the tail node id.
	From int

	// To is the head node id.
	To int

	// Capacity is the practical capacity of the segment (vehicles per period).
	Capacity float64

	// FreeTravelTime is the uncongested traversal time.
	FreeTravelTime float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacityHint pre-allocates storage for n edges.
// Non-positive hints are ignored.
func WithEdgeCapacityHint(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]Edge, 0, n)
		}
	}
}

// Graph is an append-only road network addressed by dense edge indices.
//
// It is the attribute provider consumed by volume-delay functions:
// Capacity(e) and FreeTravelTime(e) are O(1) reads under a read lock.
type Graph struct {
	mu sync.RWMutex // guards edges and numNodes

	edges    []Edge // index → Edge
	numNodes int    // 1 + largest node id seen
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) (O(n) with WithEdgeCapacityHint(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

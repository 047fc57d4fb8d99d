// Package network provides a thread-safe, append-only road network whose
// edges carry the two attributes every volume-delay function needs:
// practical capacity and free-flow travel time.
//
// Edges are addressed by dense integer indices in [0, NumEdges), assigned in
// insertion order. This keeps per-edge solver state (flows, costs, gradients)
// in plain slices indexed by the same integer.
//
// Invariants enforced at insertion:
//
//   - Capacity(e) > 0 and finite      (else ErrNonPositiveCapacity)
//   - FreeTravelTime(e) >= 0 and finite (else ErrNegativeFreeTime)
//   - node ids >= 0                   (else ErrNegativeVertex)
//
// Because these hold for every stored edge, cost functions evaluated against
// a *Graph never divide by a zero capacity.
//
// Core Methods:
//
//	AddEdge(from, to int, capacity, freeTime float64) (int, error) // O(1)†
//	Capacity(e int) float64                                        // O(1)
//	FreeTravelTime(e int) float64                                  // O(1)
//	Edge(e int) (Edge, error)                                      // O(1)
//	Edges() []Edge                                                 // O(E)
//	NumEdges() int, NumNodes() int                                 // O(1)
//
// † amortized slice growth.
//
// Concurrency:
//
//	Reads take a shared lock and may run in parallel with each other.
//	AddEdge takes the exclusive lock. Solvers typically build the network
//	once and then only read it.
package network

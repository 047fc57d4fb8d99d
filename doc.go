// Package traffic collects the primitives a static traffic-assignment
// solver is built on: edge cost curves with their calculus, and the travel
// demand that gets routed over the network.
//
// Everything is organized under small, independent packages:
//
//	network/ — append-only road network with dense edge indices,
//	           per-edge capacity and free-flow travel time
//	vdf/     — volume-delay functions (BPR, polynomial): cost, first and
//	           second derivative, antiderivative, integral, Beckmann objective
//	demand/  — OD pairs, zone-clustered OD pairs, their orders,
//	           comma-separated table loaders and zone aggregation
//	config/  — YAML/env configuration of the cost function and logging
//	logging/ — logr.Logger construction backed by zap
//
// A solver holds a *network.Graph and a vdf.Function and, on every
// iteration, evaluates Cost/Derivative/Integral per edge at the current flow:
//
//	g := network.NewGraph()
//	e, _ := g.AddEdge(0, 1, 1800, 0.5) // capacity, free-flow time
//	f := vdf.NewBPR()                  // t0 · (1 + 0.15 (x/c)^4)
//	t := f.Cost(g, e, 1200)
//
// Demand is loaded once, at startup:
//
//	pairs, err := demand.LoadODPairsFile("od.csv")
//
// The equilibrium procedure itself is not part of this module.
package traffic

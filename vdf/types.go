// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: The Function capability set, the EdgeAttributes provider and sentinel errors.
// Policy:
//   - Evaluation never returns errors; shape validation happens once, at construction.
//   - Attribute providers are passed per call, never stored.

package vdf

import "errors"

// Sentinel errors for cost-function construction.
var (
	// ErrBadShape indicates shape parameters that would make the cost curve
	// non-finite, decreasing or non-convex.
	ErrBadShape = errors.New("vdf: invalid cost function shape")

	// ErrUnknownKind indicates a Config.Kind with no registered variant.
	ErrUnknownKind = errors.New("vdf: unknown cost function kind")
)

// EdgeAttributes supplies the per-edge inputs of a volume-delay function.
//
// Contract (precondition, not checked here):
//   - Capacity(e) > 0 for every edge index passed to a Function.
//   - FreeTravelTime(e) >= 0.
//
// *network.Graph satisfies this interface and enforces both at insertion.
type EdgeAttributes interface {
	Capacity(e int) float64
	FreeTravelTime(e int) float64
}

// Function is the capability set an assignment procedure needs from a
// volume-delay function: the cost of edge e at flow x and its calculus.
//
// All methods are pure given (g, e, x) and safe for concurrent use,
// provided g's accessors are. Flows must be >= 0; behavior for negative
// flows is unspecified.
type Function interface {
	// Cost returns the travel cost of edge e at flow x.
	Cost(g EdgeAttributes, e int, x float64) float64

	// Derivative returns d Cost / dx at x.
	Derivative(g EdgeAttributes, e int, x float64) float64

	// SecondDerivative returns d² Cost / dx² at x.
	SecondDerivative(g EdgeAttributes, e int, x float64) float64

	// Antiderivative returns the antiderivative of Cost at x, normalized so
	// that Antiderivative(g, e, 0) == 0.
	Antiderivative(g EdgeAttributes, e int, x float64) float64

	// Integral returns the definite integral of Cost over [0, b].
	Integral(g EdgeAttributes, e int, b float64) float64
}

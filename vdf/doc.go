// Package vdf implements volume-delay functions: the edge cost curves an
// equilibrium traffic assignment evaluates on every iteration.
//
// A volume-delay function maps the flow x on an edge to its travel cost.
// Solvers need more than the cost itself, so every variant exposes the same
// capability set (Function):
//
//	Cost(g, e, x)             travel cost at flow x
//	Derivative(g, e, x)       d Cost / dx
//	SecondDerivative(g, e, x) d² Cost / dx²
//	Antiderivative(g, e, x)   ∫ Cost, normalized to 0 at x=0
//	Integral(g, e, b)         ∫₀ᵇ Cost(x) dx
//
// The four derived quantities are closed forms of the same curve, consistent
// to machine precision. Integral feeds Beckmann's objective (see Objective),
// whose minimizer is the user equilibrium.
//
// # Variants
//
//   - BPR:        t0 · (1 + α (x/c)^β), default α=0.15, β=4 (NewBPR).
//   - Polynomial: t0 · Σ a_k (x/c)^k with non-negative coefficients.
//
// Variants are chosen declaratively through Config and New, so solver code
// depends only on Function.
//
// # Edge attributes
//
// The capacity c and free-flow time t0 come from an EdgeAttributes provider
// passed on every call; functions hold no reference to a graph. Callers must
// guarantee c > 0 and x >= 0. These are preconditions, not errors: nothing
// is checked on the evaluation path, and *network.Graph rejects
// non-positive capacities when edges are added.
//
// # Concurrency
//
// Evaluation is allocation-free and stateless. Any number of goroutines may
// evaluate any edges at once as long as the provider is not being written.
package vdf

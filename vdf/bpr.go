// SPDX-License-Identifier: MIT
//
// File: bpr.go
// Role: The Bureau of Public Roads volume-delay function and its calculus.

package vdf

import "math"

// Default BPR shape: the conventional coefficient and congestion exponent.
const (
	DefaultAlpha = 0.15
	DefaultBeta  = 4
)

// BPR is the power-law volume-delay function
//
//	Cost(x) = t0 · (1 + α · (x/c)^β)
//
// where t0 is the free-flow travel time and c the capacity of the edge.
// The zero value is not usable; construct with NewBPR or set both fields
// and call Validate.
type BPR struct {
	Alpha float64 // α, scale of the congestion penalty
	Beta  float64 // β, congestion exponent
}

// NewBPR returns the BPR function with the default shape α=0.15, β=4.
func NewBPR() BPR {
	return BPR{Alpha: DefaultAlpha, Beta: DefaultBeta}
}

// Validate reports ErrBadShape unless α > 0 and β >= 1, both finite.
// α > 0 makes the curve strictly increasing; β >= 1 keeps it convex on x >= 0.
func (f BPR) Validate() error {
	if !(f.Alpha > 0) || math.IsInf(f.Alpha, 0) {
		return ErrBadShape
	}
	if !(f.Beta >= 1) || math.IsInf(f.Beta, 0) {
		return ErrBadShape
	}

	return nil
}

// Cost returns t0 · (1 + α r^β) with r = x/c. Cost(g, e, 0) == t0 exactly.
// Complexity: O(β) for integral β, O(1) otherwise.
func (f BPR) Cost(g EdgeAttributes, e int, x float64) float64 {
	r := x / g.Capacity(e)
	return g.FreeTravelTime(e) * (1 + f.Alpha*pow(r, f.Beta))
}

// Derivative returns t0 · α · β · r^(β-1) / c.
func (f BPR) Derivative(g EdgeAttributes, e int, x float64) float64 {
	c := g.Capacity(e)
	if f.Beta == 1 {
		return g.FreeTravelTime(e) * f.Alpha / c
	}
	r := x / c

	return g.FreeTravelTime(e) * f.Alpha * f.Beta * pow(r, f.Beta-1) / c
}

// SecondDerivative returns t0 · α · β · (β-1) · r^(β-2) / c².
// For 1 < β < 2 the value at x=0 is +Inf, the true one-sided limit,
// unless t0 == 0, where the curve is flat and the value is 0.
func (f BPR) SecondDerivative(g EdgeAttributes, e int, x float64) float64 {
	t0 := g.FreeTravelTime(e)
	if f.Beta == 1 || t0 == 0 {
		return 0
	}
	c := g.Capacity(e)
	r := x / c

	return t0 * f.Alpha * f.Beta * (f.Beta - 1) * pow(r, f.Beta-2) / (c * c)
}

// Antiderivative returns t0 · (x + α · x · r^β / (β+1)), which vanishes at x=0.
func (f BPR) Antiderivative(g EdgeAttributes, e int, x float64) float64 {
	r := x / g.Capacity(e)
	return g.FreeTravelTime(e) * (x + f.Alpha*x*pow(r, f.Beta)/(f.Beta+1))
}

// Integral returns Antiderivative(b) - Antiderivative(0), the integral of Cost over [0, b].
func (f BPR) Integral(g EdgeAttributes, e int, b float64) float64 {
	return f.Antiderivative(g, e, b) - f.Antiderivative(g, e, 0)
}

// maxUnrolledExponent bounds the exponents evaluated by repeated multiplication.
const maxUnrolledExponent = 16

// pow returns r^k. Small integral exponents use repeated multiplication so
// that the default shape evaluates exactly as r·r·r·r; everything else
// falls back to math.Pow.
func pow(r, k float64) float64 {
	if k == 0 {
		return 1
	}
	if k != math.Trunc(k) || math.Abs(k) > maxUnrolledExponent {
		return math.Pow(r, k)
	}
	n := int(math.Abs(k))
	p := r
	for i := 1; i < n; i++ {
		p *= r
	}
	if k < 0 {
		return 1 / p
	}

	return p
}

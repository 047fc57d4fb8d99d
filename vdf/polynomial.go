// SPDX-License-Identifier: MIT
//
// File: polynomial.go
// Role: Polynomial volume-delay function Cost(x) = t0 · Σ a_k (x/c)^k.
// Design:
//   - All five operations use Horner's scheme over the coefficient slice.
//   - a_0 == 1 pins Cost(0) to t0; non-negative coefficients with at least one
//     positive a_k (k >= 1) give a strictly increasing convex curve on x >= 0.

package vdf

import "math"

// Polynomial is the volume-delay function
//
//	Cost(x) = t0 · Σ_k Coefficients[k] · (x/c)^k
//
// Polynomial{Coefficients: []float64{1, 0, 0, 0, 0.15}} is the default BPR curve.
type Polynomial struct {
	Coefficients []float64 // a_0, a_1, ..., a_n
}

// Validate reports ErrBadShape unless a_0 == 1, every coefficient is finite
// and >= 0, and some a_k with k >= 1 is positive.
func (f Polynomial) Validate() error {
	if len(f.Coefficients) == 0 || f.Coefficients[0] != 1 {
		return ErrBadShape
	}
	increasing := false
	for k, a := range f.Coefficients {
		if !(a >= 0) || math.IsInf(a, 0) {
			return ErrBadShape
		}
		if k >= 1 && a > 0 {
			increasing = true
		}
	}
	if !increasing {
		return ErrBadShape
	}

	return nil
}

// Cost returns t0 · Σ a_k r^k. Cost(g, e, 0) == t0 for a valid shape.
// Complexity: O(n) for n coefficients.
func (f Polynomial) Cost(g EdgeAttributes, e int, x float64) float64 {
	r := x / g.Capacity(e)
	var sum float64
	for k := len(f.Coefficients) - 1; k >= 0; k-- {
		sum = sum*r + f.Coefficients[k]
	}

	return g.FreeTravelTime(e) * sum
}

// Derivative returns t0/c · Σ k a_k r^(k-1).
func (f Polynomial) Derivative(g EdgeAttributes, e int, x float64) float64 {
	c := g.Capacity(e)
	r := x / c
	var sum float64
	for k := len(f.Coefficients) - 1; k >= 1; k-- {
		sum = sum*r + float64(k)*f.Coefficients[k]
	}

	return g.FreeTravelTime(e) * sum / c
}

// SecondDerivative returns t0/c² · Σ k (k-1) a_k r^(k-2).
func (f Polynomial) SecondDerivative(g EdgeAttributes, e int, x float64) float64 {
	c := g.Capacity(e)
	r := x / c
	var sum float64
	for k := len(f.Coefficients) - 1; k >= 2; k-- {
		sum = sum*r + float64(k*(k-1))*f.Coefficients[k]
	}

	return g.FreeTravelTime(e) * sum / (c * c)
}

// Antiderivative returns t0 · x · Σ a_k r^k / (k+1), which vanishes at x=0.
func (f Polynomial) Antiderivative(g EdgeAttributes, e int, x float64) float64 {
	r := x / g.Capacity(e)
	var sum float64
	for k := len(f.Coefficients) - 1; k >= 0; k-- {
		sum = sum*r + f.Coefficients[k]/float64(k+1)
	}

	return g.FreeTravelTime(e) * x * sum
}

// Integral returns the integral of Cost over [0, b].
func (f Polynomial) Integral(g EdgeAttributes, e int, b float64) float64 {
	return f.Antiderivative(g, e, b) - f.Antiderivative(g, e, 0)
}

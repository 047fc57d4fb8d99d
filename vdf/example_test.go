// Package vdf_test provides runnable examples for volume-delay functions.
package vdf_test

import (
	"fmt"

	"github.com/katalvlaran/traffic/network"
	"github.com/katalvlaran/traffic/vdf"
)

// ExampleBPR evaluates the default BPR curve on a single edge with
// t0 = 10 and capacity 100, at free flow and at capacity.
func ExampleBPR() {
	g := network.NewGraph()
	e, _ := g.AddEdge(0, 1, 100, 10)

	f := vdf.NewBPR()
	fmt.Printf("cost(0)=%.2f cost(100)=%.2f\n", f.Cost(g, e, 0), f.Cost(g, e, 100))
	fmt.Printf("d/dx(100)=%.4f integral(100)=%.1f\n", f.Derivative(g, e, 100), f.Integral(g, e, 100))
	// Output:
	// cost(0)=10.00 cost(100)=11.50
	// d/dx(100)=0.0600 integral(100)=1030.0
}

// ExampleNew selects a variant declaratively and evaluates Beckmann's
// objective for a two-edge flow vector.
func ExampleNew() {
	g := network.NewGraph()
	_, _ = g.AddEdge(0, 1, 100, 10)
	_, _ = g.AddEdge(0, 1, 200, 12)

	f, err := vdf.New(vdf.Config{Kind: vdf.KindPolynomial, Coefficients: []float64{1, 0, 0, 0, 0.15}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("objective=%.1f\n", vdf.Objective(f, g, []float64{100, 0}))
	// Output: objective=1030.0
}

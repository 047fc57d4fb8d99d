// SPDX-License-Identifier: MIT
// Package network_test verifies insertion validation, dense indexing and
// read-only queries of network.Graph.

package network_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/traffic/network"
)

// GraphSuite groups network.Graph contract tests.
type GraphSuite struct {
	suite.Suite
}

// TestDenseIndices verifies that AddEdge returns 0,1,2,... in insertion order.
func (s *GraphSuite) TestDenseIndices() {
	g := network.NewGraph(network.WithEdgeCapacityHint(3))
	for i := 0; i < 3; i++ {
		id, err := g.AddEdge(i, i+1, 100, 10)
		require.NoError(s.T(), err)
		require.Equal(s.T(), i, id)
	}
	require.Equal(s.T(), 3, g.NumEdges())
	require.Equal(s.T(), 4, g.NumNodes())
}

// TestAttributes verifies that Capacity and FreeTravelTime read back stored values.
func (s *GraphSuite) TestAttributes() {
	g := network.NewGraph()
	e, err := g.AddEdge(0, 1, 1800, 0.5)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1800.0, g.Capacity(e))
	require.Equal(s.T(), 0.5, g.FreeTravelTime(e))

	edge, err := g.Edge(e)
	require.NoError(s.T(), err)
	require.Equal(s.T(), network.Edge{ID: 0, From: 0, To: 1, Capacity: 1800, FreeTravelTime: 0.5}, edge)
}

// TestZeroFreeTimeAllowed verifies that t0 = 0 is a legal attribute.
func (s *GraphSuite) TestZeroFreeTimeAllowed() {
	g := network.NewGraph()
	_, err := g.AddEdge(0, 1, 1, 0)
	require.NoError(s.T(), err)
}

// TestValidation verifies that every invalid attribute maps to its sentinel.
func (s *GraphSuite) TestValidation() {
	cases := []struct {
		name     string
		from, to int
		capacity float64
		freeTime float64
		want     error
	}{
		{"NegativeFrom", -1, 0, 1, 1, network.ErrNegativeVertex},
		{"NegativeTo", 0, -3, 1, 1, network.ErrNegativeVertex},
		{"ZeroCapacity", 0, 1, 0, 1, network.ErrNonPositiveCapacity},
		{"NegativeCapacity", 0, 1, -5, 1, network.ErrNonPositiveCapacity},
		{"NaNCapacity", 0, 1, math.NaN(), 1, network.ErrNonPositiveCapacity},
		{"InfCapacity", 0, 1, math.Inf(1), 1, network.ErrNonPositiveCapacity},
		{"NegativeFreeTime", 0, 1, 1, -0.1, network.ErrNegativeFreeTime},
		{"NaNFreeTime", 0, 1, 1, math.NaN(), network.ErrNegativeFreeTime},
		{"InfFreeTime", 0, 1, 1, math.Inf(1), network.ErrNegativeFreeTime},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			g := network.NewGraph()
			_, err := g.AddEdge(tc.from, tc.to, tc.capacity, tc.freeTime)
			require.ErrorIs(s.T(), err, tc.want)
			require.Zero(s.T(), g.NumEdges(), "rejected edge must not be stored")
		})
	}
}

// TestEdgeOutOfRange verifies the checked accessor.
func (s *GraphSuite) TestEdgeOutOfRange() {
	g := network.NewGraph()
	_, err := g.Edge(0)
	require.ErrorIs(s.T(), err, network.ErrEdgeOutOfRange)
	_, err = g.Edge(-1)
	require.ErrorIs(s.T(), err, network.ErrEdgeOutOfRange)
}

// TestEdgesIsCopy verifies that mutating the Edges() result leaves the graph intact.
func (s *GraphSuite) TestEdgesIsCopy() {
	g := network.NewGraph()
	_, _ = g.AddEdge(0, 1, 10, 1)
	edges := g.Edges()
	edges[0].Capacity = -1
	require.Equal(s.T(), 10.0, g.Capacity(0))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestConcurrentAddAndRead mixes writers and readers to verify no races or
// lost edges under concurrent use.
func TestConcurrentAddAndRead(t *testing.T) {
	g := network.NewGraph()
	const writers = 100
	var wg sync.WaitGroup
	wg.Add(2 * writers)

	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(id, id+1, float64(id+1), 1)
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.Capacity(e.ID) + g.FreeTravelTime(e.ID)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, writers, g.NumEdges())
	for i, e := range g.Edges() {
		require.Equal(t, i, e.ID)
		require.Positive(t, e.Capacity)
	}
}

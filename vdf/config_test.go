// SPDX-License-Identifier: MIT

package vdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/traffic/network"
	"github.com/katalvlaran/traffic/vdf"
)

func TestNewFromConfig(t *testing.T) {
	f, err := vdf.New(vdf.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, vdf.NewBPR(), f)

	f, err = vdf.New(vdf.Config{Kind: vdf.KindPolynomial, Coefficients: []float64{1, 0, 0.5}})
	require.NoError(t, err)
	require.IsType(t, vdf.Polynomial{}, f)
}

func TestNewCopiesCoefficients(t *testing.T) {
	coef := []float64{1, 0, 0.5}
	f, err := vdf.New(vdf.Config{Kind: vdf.KindPolynomial, Coefficients: coef})
	require.NoError(t, err)

	coef[2] = 99
	require.Equal(t, []float64{1, 0, 0.5}, f.(vdf.Polynomial).Coefficients)
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  vdf.Config
		want error
	}{
		{"EmptyKind", vdf.Config{}, vdf.ErrUnknownKind},
		{"UnknownKind", vdf.Config{Kind: "davidson"}, vdf.ErrUnknownKind},
		{"BadBeta", vdf.Config{Kind: vdf.KindBPR, Alpha: 0.15, Beta: 0}, vdf.ErrBadShape},
		{"NegativeAlpha", vdf.Config{Kind: vdf.KindBPR, Alpha: -1, Beta: 4}, vdf.ErrBadShape},
		{"ZeroAlpha", vdf.Config{Kind: vdf.KindBPR, Alpha: 0, Beta: 4}, vdf.ErrBadShape},
		{"NoCoefficients", vdf.Config{Kind: vdf.KindPolynomial}, vdf.ErrBadShape},
		{"ConstantPolynomial", vdf.Config{Kind: vdf.KindPolynomial, Coefficients: []float64{1}}, vdf.ErrBadShape},
		{"UnpinnedPolynomial", vdf.Config{Kind: vdf.KindPolynomial, Coefficients: []float64{0, 0, 3}}, vdf.ErrBadShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vdf.New(tc.cfg)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, tc.cfg.Validate(), tc.want)
		})
	}
}

func TestObjectiveAndTravelTimes(t *testing.T) {
	g := network.NewGraph()
	_, _ = g.AddEdge(0, 1, 100, 10)
	_, _ = g.AddEdge(1, 2, 50, 2)
	f := vdf.NewBPR()
	flows := []float64{100, 0}

	// Edge 0 at capacity integrates to 1030; edge 1 at zero flow to 0.
	require.InDelta(t, 1030.0, vdf.Objective(f, g, flows), 1e-9)
	require.Zero(t, vdf.Objective(f, g, nil))

	times := vdf.TravelTimes(f, g, flows, nil)
	require.Len(t, times, 2)
	require.InDelta(t, 11.5, times[0], 1e-12)
	require.Equal(t, 2.0, times[1])

	// A large enough destination is reused.
	buf := make([]float64, 0, 8)
	out := vdf.TravelTimes(f, g, flows, buf)
	require.Len(t, out, 2)
	require.Equal(t, cap(buf), cap(out))
}

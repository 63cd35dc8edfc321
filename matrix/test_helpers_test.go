// SPDX-License-Identifier: MIT
// Package matrix_test contains fixtures shared by the matrix tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/core"
	"github.com/stretchr/testify/require"
)

// sampleTunnels is the ten-room reference network, AA..JJ mapped to ids 0..9.
var sampleTunnels = [][2]core.ValveID{
	{0, 3}, {0, 8}, {0, 1}, // AA: DD II BB
	{1, 2},         // BB: CC
	{2, 3},         // CC: DD
	{3, 4},         // DD: EE
	{4, 5},         // EE: FF
	{5, 6},         // FF: GG
	{6, 7},         // GG: HH
	{8, 9},         // II: JJ
}

var sampleRates = []uint32{0, 13, 2, 20, 3, 0, 0, 22, 0, 21}

// sampleGraph builds the reference network.
func sampleGraph(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithCapacity(len(sampleRates), len(sampleTunnels)))
	for id, rate := range sampleRates {
		_, err := g.AddValve(core.ValveID(id), rate)
		require.NoError(t, err)
	}
	for _, e := range sampleTunnels {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// randomGraph returns a deterministic random graph with n valves.
// With connected=true a random spanning tree is laid first so every pair is reachable;
// extra holds the number of additional random tunnels.
func randomGraph(t testing.TB, seed int64, n, extra int, connected bool) *core.Graph {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithCapacity(n, n+extra))
	for i := 0; i < n; i++ {
		_, err := g.AddValve(core.ValveID(i), uint32(rng.Intn(25)))
		require.NoError(t, err)
	}
	if connected {
		for i := 1; i < n; i++ {
			require.NoError(t, g.AddEdge(core.ValveID(i), core.ValveID(rng.Intn(i))))
		}
	}
	for e := 0; e < extra; e++ {
		require.NoError(t, g.AddEdge(core.ValveID(rng.Intn(n)), core.ValveID(rng.Intn(n))))
	}

	return g
}

package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/compress"
	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/stretchr/testify/require"
)

// sampleRates and sampleTunnels describe the ten-room reference network (AA..JJ → 0..9).
var (
	sampleRates   = []uint32{0, 13, 2, 20, 3, 0, 0, 22, 0, 21}
	sampleTunnels = [][2]core.ValveID{
		{0, 3}, {0, 8}, {0, 1}, {1, 2}, {2, 3},
		{3, 4}, {4, 5}, {5, 6}, {6, 7}, {8, 9},
	}
)

// compressed builds and compresses a network from rates and tunnels, starting at valve 0.
func compressed(t testing.TB, rates []uint32, tunnels [][2]core.ValveID) *compress.Graph {
	t.Helper()

	g := core.NewGraph()
	for id, rate := range rates {
		_, err := g.AddValve(core.ValveID(id), rate)
		require.NoError(t, err)
	}
	for _, e := range tunnels {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	d, err := matrix.AllPairs(g)
	require.NoError(t, err)
	cg, err := compress.Build(g, d, 0)
	require.NoError(t, err)

	return cg
}

func sample(t testing.TB) *compress.Graph {
	t.Helper()

	return compressed(t, sampleRates, sampleTunnels)
}

// randomNetwork returns a connected network of n rooms; valve 0 has rate 0 and
// roughly half of the others have a positive rate.
func randomNetwork(seed int64, n int) ([]uint32, [][2]core.ValveID) {
	rng := rand.New(rand.NewSource(seed))
	rates := make([]uint32, n)
	for i := 1; i < n; i++ {
		if rng.Intn(2) == 0 {
			rates[i] = uint32(1 + rng.Intn(25))
		}
	}
	var tunnels [][2]core.ValveID
	for i := 1; i < n; i++ {
		tunnels = append(tunnels, [2]core.ValveID{core.ValveID(i), core.ValveID(rng.Intn(i))})
	}
	for e := 0; e < n/3; e++ {
		tunnels = append(tunnels, [2]core.ValveID{core.ValveID(rng.Intn(n)), core.ValveID(rng.Intn(n))})
	}

	return rates, tunnels
}

// bruteForce enumerates every ordered sequence of distinct openable positions and
// scores each affordable prefix independently of the engine. It returns the best
// score overall and the best score per OpenSet.
func bruteForce(g *compress.Graph, start int, budget uint32) (uint64, map[uint64]uint64) {
	perMask := map[uint64]uint64{0: 0}
	var best uint64
	used := make([]bool, g.Valves())

	var walk func(cur int, mask uint64, t uint32, score uint64)
	walk = func(cur int, mask uint64, t uint32, score uint64) {
		if prev, ok := perMask[mask]; !ok || score > prev {
			perMask[mask] = score
		}
		if score > best {
			best = score
		}
		for v := 0; v < g.Valves(); v++ {
			if used[v] {
				continue
			}
			arrive := t + g.Distance(cur, v) + 1 // minute the valve starts releasing
			if arrive >= budget {
				continue
			}
			used[v] = true
			walk(v, mask|1<<uint(v), arrive, score+uint64(budget-arrive)*uint64(g.Rate(v)))
			used[v] = false
		}
	}
	walk(start, 0, 0, 0)

	return best, perMask
}

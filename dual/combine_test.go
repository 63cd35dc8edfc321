package dual_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/compress"
	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/dual"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compressed builds a network from rates and tunnels and compresses it around valve 0.
func compressed(t testing.TB, rates []uint32, tunnels [][2]core.ValveID) *compress.Graph {
	t.Helper()

	g := core.NewGraph()
	for id, r := range rates {
		_, err := g.AddValve(core.ValveID(id), r)
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

// sampleMemo returns the memo of the ten-room reference network (AA..JJ → 0..9).
func sampleMemo(t testing.TB, budget uint32) *search.Result {
	t.Helper()

	cg := compressed(t,
		[]uint32{0, 13, 2, 20, 3, 0, 0, 22, 0, 21},
		[][2]core.ValveID{
			{0, 3}, {0, 8}, {0, 1}, {1, 2}, {2, 3},
			{3, 4}, {4, 5}, {5, 6}, {6, 7}, {8, 9},
		})
	res, err := search.Run(cg, cg.Start(), search.Options{Budget: budget, Memo: true})
	require.NoError(t, err)

	return res
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

// memoOf builds a memo from literal rows; the empty set is always added.
func memoOf(rows map[uint64]uint64) *search.Memo {
	m := search.NewMemo()
	m.Record(0, 0)
	for mask, score := range rows {
		m.Record(mask, score)
	}

	return m
}

// exhaustive is the plain O(M²) reference.
func exhaustive(m *search.Memo) uint64 {
	rows := m.Entries()
	var best uint64
	for i := range rows {
		for j := range rows {
			if rows[i].Mask&rows[j].Mask == 0 && rows[i].Score+rows[j].Score > best {
				best = rows[i].Score + rows[j].Score
			}
		}
	}

	return best
}

func TestCombine_Sample(t *testing.T) {
	res := sampleMemo(t, 26)

	p := dual.Combine(res.Memo)
	assert.Equal(t, uint64(1707), p.Score)
	assert.Equal(t, p.A.Score+p.B.Score, p.Score)
	assert.Zero(t, p.A.Mask&p.B.Mask)
	assert.GreaterOrEqual(t, p.A.Score, p.B.Score)
	assert.Greater(t, p.Score, res.Best)

	// both actors have work to do
	assert.NotZero(t, p.A.Mask)
	assert.NotZero(t, p.B.Mask)
	got, ok := res.Memo.Get(p.B.Mask)
	require.True(t, ok)
	assert.Equal(t, p.B.Score, got)
}

func TestCombine_DualAtLeastSingle(t *testing.T) {
	for _, budget := range []uint32{0, 5, 10, 26} {
		res := sampleMemo(t, budget)
		assert.GreaterOrEqual(t, dual.BestScore(res.Memo), res.Best, "budget %d", budget)
	}

	for seed := int64(1); seed <= 30; seed++ {
		rates, tunnels := randomNetwork(seed, 14)
		cg := compressed(t, rates, tunnels)
		for _, budget := range []uint32{4, 9, 15, 26} {
			single, err := search.Run(cg, cg.Start(), search.Options{Budget: budget, Prune: true})
			require.NoError(t, err)
			res, err := search.Run(cg, cg.Start(), search.Options{Budget: budget, Memo: true})
			require.NoError(t, err)

			p := dual.Combine(res.Memo)
			assert.GreaterOrEqual(t, p.Score, single.Best, "seed %d budget %d", seed, budget)
			assert.Zero(t, p.A.Mask&p.B.Mask, "seed %d budget %d", seed, budget)
			assert.Equal(t, exhaustive(res.Memo), p.Score, "seed %d budget %d", seed, budget)
		}
	}
}

func TestCombine_LargeScoresDoNotWrap(t *testing.T) {
	// the two top rows each exceed 2^63, so doubling either one would wrap
	const half = uint64(1) << 63
	m := memoOf(map[uint64]uint64{
		0b11: half + 1,
		0b01: half,
		0b10: 100,
	})

	p := dual.Combine(m)
	assert.Equal(t, half+100, p.Score)
	assert.Equal(t, search.Entry{Mask: 0b01, Score: half}, p.A)
	assert.Equal(t, search.Entry{Mask: 0b10, Score: 100}, p.B)
}

func TestCombine_EmptyAndNil(t *testing.T) {
	assert.Equal(t, dual.Pair{}, dual.Combine(nil))
	assert.Equal(t, dual.Pair{}, dual.Combine(search.NewMemo()))

	only := memoOf(nil)
	assert.Equal(t, dual.Pair{}, dual.Combine(only))
}

func TestCombine_SharedValvesRejected(t *testing.T) {
	m := memoOf(map[uint64]uint64{
		0b011: 100,
		0b110: 90,
		0b100: 10,
	})
	p := dual.Combine(m)
	// 0b011 overlaps 0b110; the best disjoint pair is 0b011 + 0b100
	assert.Equal(t, uint64(110), p.Score)
	assert.Equal(t, search.Entry{Mask: 0b011, Score: 100}, p.A)
	assert.Equal(t, search.Entry{Mask: 0b100, Score: 10}, p.B)
}

func TestCombine_SingleSetAlone(t *testing.T) {
	m := memoOf(map[uint64]uint64{0b1: 42})
	p := dual.Combine(m)
	assert.Equal(t, uint64(42), p.Score)
	assert.Equal(t, search.Entry{Mask: 0b1, Score: 42}, p.A)
	assert.Equal(t, search.Entry{}, p.B)
}

func TestCombine_MatchesExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		rows := make(map[uint64]uint64)
		for i := 0; i < 1+rng.Intn(40); i++ {
			rows[uint64(rng.Intn(1<<8))] = uint64(rng.Intn(500))
		}
		m := memoOf(rows)
		assert.Equal(t, exhaustive(m), dual.BestScore(m), "round %d", round)
	}
}

func BenchmarkCombine_Sample(b *testing.B) {
	res := sampleMemo(b, 26)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dual.Combine(res.Memo)
	}
}

// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Depth-first bitmask search with optional memo and bound pruning.

package search

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/valvenet/compress"
)

// engine holds all search data for one invocation.
// Graph data is copied into flat buffers so the hot loop avoids method calls.
type engine struct {
	n, k  int
	rates []uint64 // per position
	dist  []uint32 // dist[a*n+b]

	ctx   context.Context
	memo  *Memo
	prune bool

	best     uint64
	bestMask uint64
	stats    Stats
}

// Run searches g from the start position with the given options.
//
// Implementation:
//   - Stage 1: Validate graph, start and the overflow bound.
//   - Stage 2: Prefetch rates and distances into the engine.
//   - Stage 3: Depth-first visit from (start, ∅, Budget, 0).
//
// Errors:
//   - ErrGraphNil, ErrStartOutOfRange, ErrOverflow, or ctx.Err() when cancelled.
//
// Determinism:
//   - Children are tried in position order; Best, BestMask, Memo and Stats are
//     identical across runs with the same inputs.
func Run(g *compress.Graph, start int, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.Len() {
		return nil, fmt.Errorf("search: start %d of %d: %w", start, g.Len(), ErrStartOutOfRange)
	}
	if hi, _ := bits.Mul64(g.RateSum(), uint64(opts.Budget)); hi != 0 {
		return nil, fmt.Errorf("search: rate sum %d × budget %d: %w", g.RateSum(), opts.Budget, ErrOverflow)
	}

	e := newEngine(g, opts)
	if err := e.visit(start, 0, opts.Budget, 0); err != nil {
		return nil, err
	}

	res := &Result{
		Best:     e.best,
		BestMask: e.bestMask,
		Memo:     e.memo,
		Stats:    e.stats,
	}
	if e.memo != nil {
		res.Stats.MemoEntries = e.memo.Len()
	}

	return res, nil
}

// newEngine prefetches g and applies option policy.
func newEngine(g *compress.Graph, opts Options) *engine {
	n := g.Len()
	e := &engine{
		n:     n,
		k:     g.Valves(),
		rates: make([]uint64, n),
		dist:  make([]uint32, 0, n*n),
		ctx:   opts.Ctx,
		prune: opts.Prune && !opts.Memo,
	}
	if e.ctx == nil {
		e.ctx = context.Background()
	}
	for p := 0; p < n; p++ {
		e.rates[p] = uint64(g.Rate(p))
		e.dist = append(e.dist, g.DistanceRow(p)...)
	}
	if opts.Memo {
		e.memo = NewMemo()
	}

	return e
}

// visit expands one state and recurses into every affordable move.
func (e *engine) visit(cur int, open uint64, remaining uint32, score uint64) error {
	e.stats.States++
	if e.stats.States&cancelCheckMask == 1 {
		if err := e.ctx.Err(); err != nil {
			return err
		}
	}

	if e.memo != nil {
		e.memo.Record(open, score)
	}
	if score > e.best {
		e.best, e.bestMask = score, open
	}
	if e.prune && e.bound(cur, open, remaining, score) <= e.best {
		e.stats.Pruned++
		return nil
	}

	row := e.dist[cur*e.n : (cur+1)*e.n]
	moved := false
	var (
		v    int
		bit  uint64
		cost uint32
		left uint32
	)
	for v = 0; v < e.k; v++ {
		bit = 1 << uint(v)
		if open&bit != 0 {
			continue
		}
		cost = row[v] + 1
		if cost >= remaining {
			continue
		}
		moved = true
		left = remaining - cost
		if err := e.visit(v, open|bit, left, score+uint64(left)*e.rates[v]); err != nil {
			return err
		}
	}
	if !moved {
		e.stats.Terminal++
	}

	return nil
}

// bound is an optimistic completion score: every closed valve opened as soon as
// it could be reached directly from cur. Distances are shortest paths, so no
// real schedule opens any valve earlier.
func (e *engine) bound(cur int, open uint64, remaining uint32, score uint64) uint64 {
	row := e.dist[cur*e.n : (cur+1)*e.n]
	b := score
	var cost uint32
	for v := 0; v < e.k; v++ {
		if open&(1<<uint(v)) != 0 {
			continue
		}
		cost = row[v] + 1
		if cost < remaining {
			b += uint64(remaining-cost) * e.rates[v]
		}
	}

	return b
}

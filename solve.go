// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: Pipeline entry points: compression, single and dual actor solvers, Analyze.

package valvenet

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/valvenet/compress"
	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/dual"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/metrics"
	"github.com/katalvlaran/valvenet/search"
	"golang.org/x/sync/errgroup"
)

// Report carries both answers for one network together with the valves each
// actor opens and the search effort behind them.
type Report struct {
	SingleBudget uint32
	Single       uint64
	SingleValves []core.ValveID
	SingleStats  search.Stats

	DualBudget uint32
	Dual       uint64
	DualValves [2][]core.ValveID // one OpenSet per actor, higher scoring first
	DualStats  search.Stats
}

// BuildCompressedGraph computes all-pairs hop distances for g, checks they form
// a metric, and compresses the network around start.
//
// Errors:
//   - matrix.ErrGraphNil for a nil graph.
//   - core.ErrUnknownValve when start is not a valve of g.
//   - compress.ErrDisconnected, compress.ErrTooManyValves from compression.
func BuildCompressedGraph(g *core.Graph, start core.ValveID) (*compress.Graph, error) {
	d, err := matrix.AllPairs(g)
	if err != nil {
		return nil, fmt.Errorf("valvenet: distances: %w", err)
	}
	if err = matrix.ValidateMetric(d); err != nil {
		return nil, fmt.Errorf("valvenet: distances: %w", err)
	}
	cg, err := compress.Build(g, d, start)
	if err != nil {
		return nil, fmt.Errorf("valvenet: compress: %w", err)
	}

	return cg, nil
}

// SolveSingleActor returns the best pressure one actor standing at start can
// release within budget minutes.
//
// start must be a position retained by compression (the start valve used in
// BuildCompressedGraph, or any openable valve); otherwise the error wraps
// core.ErrUnknownValve.
func SolveSingleActor(cg *compress.Graph, start core.ValveID, budget uint32, opts ...Option) (uint64, error) {
	s := newSettings(opts)
	pos, err := position(cg, start)
	if err != nil {
		return 0, err
	}
	res, err := runSingle(s.ctx, cg, pos, budget, s)
	if err != nil {
		return 0, err
	}

	return res.Best, nil
}

// SolveDualActor returns the best pressure two actors, both starting at start
// and never opening the same valve, can release within budget minutes.
//
// The search runs once with a memo (no pruning); dual.Combine then picks the
// best disjoint pair of OpenSets.
func SolveDualActor(cg *compress.Graph, start core.ValveID, budget uint32, opts ...Option) (uint64, error) {
	s := newSettings(opts)
	pos, err := position(cg, start)
	if err != nil {
		return 0, err
	}
	_, pair, err := runDual(s.ctx, cg, pos, budget, s)
	if err != nil {
		return 0, err
	}

	return pair.Score, nil
}

// Analyze solves both problems side by side and reports scores and valves.
// The two searches are independent; the first failure cancels the other.
func Analyze(cg *compress.Graph, start core.ValveID, budget, dualBudget uint32, opts ...Option) (*Report, error) {
	s := newSettings(opts)
	pos, err := position(cg, start)
	if err != nil {
		return nil, err
	}

	var (
		single *search.Result
		both   *search.Result
		pair   dual.Pair
	)
	g, ctx := errgroup.WithContext(s.ctx)
	g.Go(func() error {
		var err error
		single, err = runSingle(ctx, cg, pos, budget, s)
		return err
	})
	g.Go(func() error {
		var err error
		both, pair, err = runDual(ctx, cg, pos, dualBudget, s)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		Single:       single.Best,
		SingleValves: cg.MaskIDs(single.BestMask),
		SingleStats:  single.Stats,
		Dual:         pair.Score,
		DualValves:   [2][]core.ValveID{cg.MaskIDs(pair.A.Mask), cg.MaskIDs(pair.B.Mask)},
		DualStats:    both.Stats,
		SingleBudget: budget,
		DualBudget:   dualBudget,
	}, nil
}

// position maps a valve id to its compressed position.
func position(cg *compress.Graph, start core.ValveID) (int, error) {
	if cg == nil {
		return 0, fmt.Errorf("valvenet: %w", compress.ErrGraphNil)
	}
	pos, err := cg.Position(start)
	if err != nil {
		return 0, fmt.Errorf("valvenet: start: %w", err)
	}

	return pos, nil
}

func runSingle(ctx context.Context, cg *compress.Graph, pos int, budget uint32, s settings) (*search.Result, error) {
	began := time.Now()
	res, err := search.Run(cg, pos, search.Options{Budget: budget, Prune: s.prune, Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("valvenet: single actor: %w", err)
	}
	elapsed := time.Since(began)
	s.rec.Observe(metrics.ModeSingle, res.Stats, elapsed)
	s.log.Debug("single actor search done",
		"budget", budget,
		"best", res.Best,
		"states", res.Stats.States,
		"pruned", res.Stats.Pruned,
		"elapsed", elapsed,
	)

	return res, nil
}

func runDual(ctx context.Context, cg *compress.Graph, pos int, budget uint32, s settings) (*search.Result, dual.Pair, error) {
	began := time.Now()
	res, err := search.Run(cg, pos, search.Options{Budget: budget, Memo: true, Ctx: ctx})
	if err != nil {
		return nil, dual.Pair{}, fmt.Errorf("valvenet: dual actor: %w", err)
	}
	pair := dual.Combine(res.Memo)
	elapsed := time.Since(began)
	s.rec.Observe(metrics.ModeDual, res.Stats, elapsed)
	s.log.Debug("dual actor search done",
		"budget", budget,
		"best", pair.Score,
		"states", res.Stats.States,
		"memo", res.Stats.MemoEntries,
		"elapsed", elapsed,
	)

	return res, pair, nil
}

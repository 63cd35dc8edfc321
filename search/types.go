// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Search options, results, statistics and sentinel errors.

package search

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when Run receives a nil compressed graph.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrStartOutOfRange indicates a start position outside [0, Len()).
	ErrStartOutOfRange = errors.New("search: start position out of range")

	// ErrOverflow indicates RateSum × Budget exceeds uint64, so scores could wrap.
	ErrOverflow = errors.New("search: score may overflow uint64")
)

// Default time budgets in minutes.
const (
	// DefaultBudget is the single-actor budget.
	DefaultBudget uint32 = 30

	// DefaultDualBudget is the budget each of two actors gets.
	DefaultDualBudget uint32 = 26
)

// cancelCheckMask sets the context polling cadence: the root, then every 4096 states.
const cancelCheckMask = 4095

// Options configures one search invocation.
type Options struct {
	// Budget is the number of minutes available.
	Budget uint32

	// Memo requests the OpenSet → best score table (Result.Memo).
	Memo bool

	// Prune enables bound-based pruning. Ignored when Memo is set.
	Prune bool

	// Ctx allows cancellation; nil means context.Background().
	Ctx context.Context
}

// DefaultOptions returns a 30-minute, pruned, memo-less search.
func DefaultOptions() Options {
	return Options{
		Budget: DefaultBudget,
		Memo:   false,
		Prune:  true,
		Ctx:    context.Background(),
	}
}

// Stats counts what one search did.
type Stats struct {
	// States is the number of states expanded, root included.
	States uint64

	// Pruned is the number of states whose children were skipped by the bound.
	Pruned uint64

	// Terminal is the number of states with no affordable move left.
	Terminal uint64

	// MemoEntries is the final memo size (0 without a memo).
	MemoEntries int
}

// Result is the outcome of Run.
type Result struct {
	// Best is the highest score over all explored states.
	Best uint64

	// BestMask is the OpenSet that first reached Best.
	BestMask uint64

	// Memo is the ScoreMemo, nil unless Options.Memo was set.
	Memo *Memo

	// Stats reports search effort.
	Stats Stats
}

// Package search explores every order of "walk to a closed valve, open it"
// on a compressed valve network and reports the most pressure that can be
// released within a time budget.
//
// State and transition:
//
//	state = (position, open OpenSet, remaining minutes, score)
//	from position c, for each closed valve v:
//	    cost = d[c][v] + 1                 // walk, then one minute to open
//	    if cost < remaining:
//	        visit(v, open|bit(v), remaining-cost, score + (remaining-cost)*rate(v))
//
// The root is (start, ∅, budget, 0). The OpenSet is a uint64 passed by value,
// so returning from a subtree restores the caller's set without explicit undo.
//
// ScoreMemo:
//
//	With Options.Memo every visited state records its score under its OpenSet,
//	keeping the maximum per set. The root records ∅ → 0, so the table always
//	contains the empty set. A set reached with a lower score than already
//	stored never overwrites the entry.
//
// Pruning:
//
//	With Options.Prune and no memo, a state is not expanded when the optimistic
//	bound
//	    score + Σ_{v closed, cost(v) < remaining} (remaining - cost(v)) * rate(v)
//	cannot beat the incumbent. The bound is admissible because distances form a
//	metric, so the answer is unchanged. Pruning is switched off whenever the memo
//	is requested: a pruned subtree would leave its OpenSets unrecorded.
//
// Cancellation:
//
//	Options.Ctx is polled at the root and then every 4096 expanded states.
//
// Complexity:
//
//	Worst case O(k!) states for k openable valves; the budget caps the depth.
//	Memory O(k) recursion plus the memo (at most 2^k entries).
//
// Errors:
//
//	ErrGraphNil          nil compressed graph
//	ErrStartOutOfRange   start position outside the graph
//	ErrOverflow          RateSum × Budget does not fit in uint64
//	ctx.Err()            cancellation
package search

// Package dual pairs two disjoint OpenSets from a ScoreMemo, modelling two
// actors that work the same network at the same time but never open the
// same valve.
//
// Given the memo of one search with the shared budget, the best joint score
// is
//
//	max score(A) + score(B)   over memo keys A, B with A & B == 0
//
// A == B is allowed only for the empty set, which every memo contains.
//
// Complexity:
//
//	Sorting is O(M log M) for M memo rows; the pair scan is O(M²) in the worst
//	case. Rows are visited by descending score, so the scan stops as soon as
//	no remaining pair can beat the incumbent; on typical memos only a small
//	prefix is examined.
package dual

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/valvenet/search"
)

// Pair is the best disjoint assignment found by Combine.
type Pair struct {
	// A and B are the OpenSets of the two actors; A is the higher scoring one.
	A, B search.Entry

	// Score is A.Score + B.Score.
	Score uint64
}

// Combine returns the best disjoint pair of memo rows.
//
// Implementation:
//   - Stage 1: Snapshot the rows and sort by score descending, mask ascending.
//   - Stage 2: For each i, scan j ≥ i; stop the inner scan once s[i]+s[j] ≤ best
//     and the outer scan once 2·s[i] ≤ best (no later pair can improve).
//
// Both cut-offs are evaluated as s ≤ best−s[i], which never wraps: once a pair
// is found, best ≥ s[i] because rows are visited by descending score. Only
// disjoint pairs are summed, and a memo produced by search.Run bounds every
// such sum by RateSum × Budget.
//
// A nil or empty memo yields the zero Pair. Ties keep the first pair found,
// so the result is deterministic.
func Combine(m *search.Memo) Pair {
	if m == nil || m.Len() == 0 {
		return Pair{}
	}

	rows := m.Entries()
	slices.SortFunc(rows, func(a, b search.Entry) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.Mask, b.Mask)
	})

	var (
		best  Pair
		found bool
		i, j  int
		a, b  search.Entry
	)
	for i = 0; i < len(rows); i++ {
		a = rows[i]
		if found && a.Score <= best.Score-a.Score {
			break
		}
		for j = i; j < len(rows); j++ {
			b = rows[j]
			if found && b.Score <= best.Score-a.Score {
				break
			}
			if a.Mask&b.Mask != 0 {
				continue
			}
			best = Pair{A: a, B: b, Score: a.Score + b.Score}
			found = true
		}
	}

	return best
}

// BestScore is Combine(m).Score.
func BestScore(m *search.Memo) uint64 { return Combine(m).Score }

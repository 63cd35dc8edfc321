// SPDX-License-Identifier: MIT
//
// File: memo.go
// Role: ScoreMemo, the best score seen per OpenSet.
//
// Storage is an ordered B-tree keyed by mask, so Scan and Entries are
// deterministic (ascending mask) regardless of the order states were found.

package search

import "github.com/tidwall/btree"

// Entry is one memo row.
type Entry struct {
	Mask  uint64
	Score uint64
}

// Memo maps an OpenSet to the best score recorded for it.
// Values only ever increase. A Memo is not safe for concurrent mutation;
// each search invocation owns its own.
type Memo struct {
	tree btree.Map[uint64, uint64]
}

// NewMemo returns an empty memo.
func NewMemo() *Memo { return &Memo{} }

// Record stores score under mask if the mask is new or score beats the stored value.
// It reports whether the table changed.
// Complexity: O(log M).
func (m *Memo) Record(mask, score uint64) bool {
	if prev, ok := m.tree.Get(mask); ok && prev >= score {
		return false
	}
	m.tree.Set(mask, score)

	return true
}

// Get returns the score stored for mask.
func (m *Memo) Get(mask uint64) (uint64, bool) { return m.tree.Get(mask) }

// Len returns the number of distinct OpenSets recorded.
func (m *Memo) Len() int { return m.tree.Len() }

// Scan calls fn for every entry in ascending mask order until fn returns false.
func (m *Memo) Scan(fn func(mask, score uint64) bool) { m.tree.Scan(fn) }

// Entries returns a snapshot of all rows in ascending mask order.
func (m *Memo) Entries() []Entry {
	out := make([]Entry, 0, m.tree.Len())
	m.tree.Scan(func(mask, score uint64) bool {
		out = append(out, Entry{Mask: mask, Score: score})
		return true
	})

	return out
}

// Merge folds other into m keeping the maximum per mask.
func (m *Memo) Merge(other *Memo) {
	if other == nil {
		return
	}
	other.tree.Scan(func(mask, score uint64) bool {
		m.Record(mask, score)
		return true
	})
}

// Best returns the highest-scoring row; ties go to the smallest mask.
// An empty memo yields the zero Entry.
func (m *Memo) Best() Entry {
	var best Entry
	first := true
	m.tree.Scan(func(mask, score uint64) bool {
		if first || score > best.Score {
			best = Entry{Mask: mask, Score: score}
			first = false
		}
		return true
	})

	return best
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the arenas.
// Policy:
//   - No algorithms here; every accessor is O(1) except the snapshots.
//   - Iteration order is deterministic: valves by index, neighbors by reverse insertion.

package core

import (
	"fmt"
	"iter"
)

// Len returns the number of registered valves.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected tunnels.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges) / 2
}

// Index resolves a valve id to its dense index.
//
// Errors:
//   - ErrUnknownValve (wrapped) if id was never registered.
func (g *Graph) Index(id ValveID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Index(%d): %w", id, ErrUnknownValve)
	}

	return idx, nil
}

// Has reports whether id is registered.
func (g *Graph) Has(id ValveID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Valve returns a snapshot of the valve at index i.
func (g *Graph) Valve(i int) (Valve, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.nodes) {
		return Valve{}, fmt.Errorf("Valve(%d): %w", i, ErrIndexOutOfRange)
	}
	n := g.nodes[i]

	return Valve{ID: n.id, Index: i, Rate: n.rate}, nil
}

// ID returns the id of the valve at index i. The index must be valid.
func (g *Graph) ID(i int) ValveID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[i].id
}

// Rate returns the release rate of the valve at index i. The index must be valid.
func (g *Graph) Rate(i int) uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[i].rate
}

// Degree returns the number of distinct neighbors of the valve at index i.
func (g *Graph) Degree(i int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[i].deg
}

// Valves returns a snapshot of all valves ordered by index.
// Complexity: O(V) time and space.
func (g *Graph) Valves() []Valve {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Valve, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = Valve{ID: n.id, Index: i, Rate: n.rate}
	}

	return out
}

// Neighbors yields the indices adjacent to i by walking its edge chain.
//
// The read lock is taken per step and released before yielding, so the
// consumer may call other Graph methods from inside the loop.
// An invalid index yields nothing.
//
// Complexity: O(deg(i)) time, O(1) space.
func (g *Graph) Neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		g.mu.RLock()
		if i < 0 || i >= len(g.nodes) {
			g.mu.RUnlock()
			return
		}
		e := g.nodes[i].first
		g.mu.RUnlock()

		var target int
		for e != noEdge {
			g.mu.RLock()
			target, e = g.edges[e].target, g.edges[e].next
			g.mu.RUnlock()
			if !yield(target) {
				return
			}
		}
	}
}

// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph construction (valves and tunnels).
//
// Concurrency:
//   - Mutations take mu exclusively; the arenas are append-only.

package core

import "fmt"

// AddValve registers a valve and returns its dense index.
//
// Implementation:
//   - Stage 1: Under the write lock, reject an id that is already registered.
//   - Stage 2: Append a node slot with an empty edge chain and record id→index.
//
// Inputs:
//   - id:   caller-chosen identity, unique within the graph.
//   - rate: pressure released per minute once open (zero for pass-through rooms).
//
// Returns:
//   - int: the dense index, equal to Len() before the call.
//
// Errors:
//   - ErrDuplicateValve if id is already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddValve(id ValveID, rate uint32) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; ok {
		return 0, fmt.Errorf("AddValve(%d): %w", id, ErrDuplicateValve)
	}

	idx := len(g.nodes)
	g.nodes = append(g.nodes, node{id: id, rate: rate, first: noEdge})
	g.index[id] = idx

	return idx, nil
}

// AddEdge joins valves a and b with a unit-length tunnel in both directions.
//
// Implementation:
//   - Stage 1: Resolve both ids to arena indices (ErrUnknownValve otherwise).
//   - Stage 2: Self-loops and already-present tunnels are accepted as no-ops.
//   - Stage 3: Push one edge slot per direction at the head of each chain.
//
// Behavior highlights:
//   - Idempotent: repeating AddEdge(a, b) or AddEdge(b, a) leaves the graph unchanged.
//   - Tunnels carry no weight; every hop costs one minute.
//
// Errors:
//   - ErrUnknownValve (wrapped with the offending id) if a or b is not registered.
//
// Complexity:
//   - Time O(deg(a)) for the duplicate scan, Space O(1) amortized.
func (g *Graph) AddEdge(a, b ValveID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ia, ok := g.index[a]
	if !ok {
		return fmt.Errorf("AddEdge(%d, %d): valve %d: %w", a, b, a, ErrUnknownValve)
	}
	ib, ok := g.index[b]
	if !ok {
		return fmt.Errorf("AddEdge(%d, %d): valve %d: %w", a, b, b, ErrUnknownValve)
	}

	if ia == ib || g.hasEdgeLocked(ia, ib) {
		return nil
	}

	g.pushEdgeLocked(ia, ib)
	g.pushEdgeLocked(ib, ia)

	return nil
}

// pushEdgeLocked prepends from→to to the outgoing chain of from. Caller holds mu.
func (g *Graph) pushEdgeLocked(from, to int) {
	e := len(g.edges)
	g.edges = append(g.edges, edge{target: to, next: g.nodes[from].first})
	g.nodes[from].first = e
	g.nodes[from].deg++
}

// hasEdgeLocked walks the chain of from looking for to. Caller holds mu.
func (g *Graph) hasEdgeLocked(from, to int) bool {
	for e := g.nodes[from].first; e != noEdge; e = g.edges[e].next {
		if g.edges[e].target == to {
			return true
		}
	}

	return false
}

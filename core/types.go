// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Valve, Graph, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownValve indicates an operation referenced a valve id that was never registered.
	ErrUnknownValve = errors.New("core: unknown valve")

	// ErrDuplicateValve indicates AddValve was called with an id that is already registered.
	ErrDuplicateValve = errors.New("core: duplicate valve")

	// ErrIndexOutOfRange indicates an index-based accessor received an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("core: valve index out of range")
)

// ValveID is the caller-chosen identity of a valve.
type ValveID uint32

// noEdge terminates an outgoing edge chain in the edge arena.
const noEdge = -1

// Valve is a read-only snapshot of one registered valve.
type Valve struct {
	// ID is the caller-chosen identity.
	ID ValveID

	// Index is the dense position assigned at registration.
	Index int

	// Rate is the pressure released per minute once the valve is open.
	Rate uint32
}

// node is one slot of the node arena.
type node struct {
	id    ValveID
	rate  uint32
	first int // head of the outgoing edge chain, noEdge when isolated
	deg   int
}

// edge is one slot of the edge arena. Undirected tunnels occupy two slots.
type edge struct {
	target int
	next   int
}

// Graph is the valve network.
//
// nodes and edges are arenas addressed by int; index maps ids to node slots.
// mu guards all three.
type Graph struct {
	mu sync.RWMutex

	nodes []node
	edges []edge
	index map[ValveID]int
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity preallocates the arenas for roughly valves nodes and
// tunnels undirected edges.
func WithCapacity(valves, tunnels int) GraphOption {
	return func(g *Graph) {
		if valves > 0 {
			g.nodes = make([]node, 0, valves)
			g.index = make(map[ValveID]int, valves)
		}
		if tunnels > 0 {
			g.edges = make([]edge, 0, 2*tunnels)
		}
	}
}

// NewGraph creates an empty valve graph.
// Complexity: O(1) plus any preallocation requested through options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[ValveID]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

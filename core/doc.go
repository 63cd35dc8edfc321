// Package core defines the valve network graph: valves carrying a
// pressure-release rate, joined by unit-length bidirectional tunnels.
//
// The Graph G = (V,E) is stored as two index-addressed arenas instead of
// pointer-linked nodes:
//
//   - node arena:  nodes[i] = {id, rate, first}, where first is the index of
//     the most recently added outgoing edge (or noEdge).
//   - edge arena:  edges[e] = {target, next}, where next chains the remaining
//     outgoing edges of the same source.
//
// Walking nodes[i].first → edges[e].next → … enumerates the neighbors of i in
// reverse insertion order without allocating per node.
//
// Identity:
//
//   - ValveID is an opaque small integer chosen by the caller (parsers intern
//     human-readable names such as "AA" into ids).
//   - Index is the dense position assigned by AddValve, in registration order.
//     Id→index lookup is O(1).
//
// Lifecycle:
//
//	g := core.NewGraph()
//	aa, _ := g.AddValve(0, 0)
//	bb, _ := g.AddValve(1, 13)
//	_ = g.AddEdge(0, 1)
//	for n := range g.Neighbors(aa) { … }
//
// The graph is built once and treated as read-only afterwards. All methods
// take an internal sync.RWMutex, so building from several goroutines and
// reading concurrently are both safe.
//
// Errors:
//
//	ErrUnknownValve   - an edge or lookup references an unregistered id.
//	ErrDuplicateValve - AddValve was called twice with the same id.
//	ErrIndexOutOfRange - an index-based accessor was given a bad index.
package core

// Package compress reduces a valve network to the valves that matter.
//
// What:
//
//	Build keeps the start valve plus every valve with a positive rate and
//	projects the full hop-distance table onto them. Shortest paths between a
//	subset of rooms in the original network are exactly the corresponding
//	entries of the full table, so no distance is recomputed.
//
// Layout of the compressed graph:
//
//	positions 0..k-1   openable valves (rate > 0), ordered by rate descending,
//	                   then by ValveID ascending. Position p owns bit p of an
//	                   OpenSet (uint64), so k ≤ 64.
//	position  k        the start valve, only when its rate is zero. It is a
//	                   place to stand, never a valve to open, and owns no bit.
//
//	A start valve with a positive rate is an ordinary openable position.
//
// Errors:
//
//	ErrGraphNil          - nil graph or distance table.
//	ErrDimensionMismatch - table order differs from the graph size.
//	core.ErrUnknownValve - start id not registered.
//	ErrDisconnected      - an openable valve has no path from start.
//	ErrTooManyValves     - more than 64 openable valves.
//
// Complexity: Build is O(V log V + k²).
package compress

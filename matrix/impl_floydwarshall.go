// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over hop counts with deterministic loop order.
//   - AllPairs seeds the table from a core.Graph; FloydWarshall closes any seeded table.
//
// Contract:
//   - Unreachable means "no path"; the diagonal must be 0 before calling FloydWarshall.

package matrix

import "github.com/katalvlaran/valvenet/core"

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opAllPairs      = "AllPairs"
)

// initFromGraph builds the seed table: diag 0, one hop per tunnel, Unreachable otherwise.
// Complexity: O(V² + E).
func initFromGraph(g *core.Graph) (*Distances, error) {
	n := g.Len()
	d, err := NewDistances(n)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i < n; i++ {
		base := i * n
		for j := range g.Neighbors(i) {
			d.data[base+j] = 1 // unit tunnel
		}
	}

	return d, nil
}

// floydWarshallInPlace runs the APSP closure on d.
//
// Loop order is fixed (k → i → j). Legs through Unreachable are skipped and
// candidates are summed in uint64, so hand-seeded tables with large entries
// cannot wrap around. No allocations inside the hot loops.
func floydWarshallInPlace(d *Distances) {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj       uint32
		cand         uint64
	)
	for k = 0; k < n; k++ { // intermediate valve
		baseK = k * n
		for i = 0; i < n; i++ { // source
			ik = data[i*n+k]
			if ik == Unreachable {
				continue // no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ { // destination
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = uint64(ik) + uint64(kj)
				if cand < uint64(data[baseI+j]) { // strict improvement only
					data[baseI+j] = uint32(cand)
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// Contract:
//   - d must be non-nil with a zero diagonal; Unreachable denotes "no edge".
//
// Determinism:
//   - Loop order is fixed (k → i → j).
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Distances) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if err := ValidateZeroDiagonal(d); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	floydWarshallInPlace(d)

	return nil
}

// AllPairs returns the hop-distance table of g, indexed by core.Graph index.
//
// Implementation:
//   - Stage 1: Seed diag=0, neighbors=1, others=Unreachable.
//   - Stage 2: Close with floydWarshallInPlace.
//
// Entries between different connected components remain Unreachable; deciding
// whether that is fatal is the caller's business (see compress.Build).
//
// Errors:
//   - ErrGraphNil if g is nil.
//
// Complexity: Time O(V³), Space O(V²).
func AllPairs(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, matrixErrorf(opAllPairs, ErrGraphNil)
	}
	d, err := initFromGraph(g)
	if err != nil {
		return nil, matrixErrorf(opAllPairs, err)
	}
	floydWarshallInPlace(d)

	return d, nil
}

// SPDX-License-Identifier: MIT
//
// File: impl_bfs.go
// Role: Breadth-first all-pairs hop distances, one sweep per source valve.

package matrix

import "github.com/katalvlaran/valvenet/core"

const opAllPairsBFS = "AllPairsBFS"

// sweeper holds the reusable queue for repeated single-source sweeps.
type sweeper struct {
	g     *core.Graph
	queue []int
}

// AllPairsBFS returns the same table as AllPairs by running a breadth-first
// sweep from every valve. Tunnels have unit length, so the first time a sweep
// reaches a valve is along a shortest path.
//
// Errors:
//   - ErrGraphNil if g is nil.
//
// Complexity: Time O(V·(V+E)), Space O(V²).
func AllPairsBFS(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, matrixErrorf(opAllPairsBFS, ErrGraphNil)
	}
	n := g.Len()
	d, err := NewDistances(n)
	if err != nil {
		return nil, matrixErrorf(opAllPairsBFS, err)
	}

	s := &sweeper{g: g, queue: make([]int, 0, n)}
	for src := 0; src < n; src++ {
		s.sweep(src, d.data[src*n:(src+1)*n])
	}

	return d, nil
}

// sweep fills row (pre-set to Unreachable with row[src] = 0) from src.
func (s *sweeper) sweep(src int, row []uint32) {
	s.queue = append(s.queue[:0], src)
	var head, cur int
	for head < len(s.queue) {
		cur = s.queue[head]
		head++
		for nbr := range s.g.Neighbors(cur) {
			if row[nbr] != Unreachable {
				continue // seen
			}
			row[nbr] = row[cur] + 1
			s.queue = append(s.queue, nbr)
		}
	}
}

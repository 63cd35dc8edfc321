// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Projection of a core.Graph + matrix.Distances onto the valves that matter.

package compress

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/matrix"
)

// Build compresses g around the start valve.
//
// Implementation:
//   - Stage 1: Validate inputs and resolve start.
//   - Stage 2: Collect openable valves (rate > 0), rejecting any unreachable from start.
//   - Stage 3: Order them by rate descending, id ascending; append a zero-rate start last.
//   - Stage 4: Copy the distance sub-table verbatim (no recomputation).
//
// Behavior highlights:
//   - Distance(a, b) equals d.At(index(ID(a)), index(ID(b))) for every pair.
//   - The high-rate-first order makes optimistic bounds tighten early in search.
//
// Errors:
//   - ErrGraphNil, ErrDimensionMismatch, core.ErrUnknownValve, ErrDisconnected, ErrTooManyValves.
//
// Complexity:
//   - Time O(V + k log k + k²), Space O(k²).
func Build(g *core.Graph, d *matrix.Distances, start core.ValveID) (*Graph, error) {
	if g == nil || d == nil {
		return nil, ErrGraphNil
	}
	if g.Len() != d.N() {
		return nil, fmt.Errorf("compress: graph has %d valves, table has order %d: %w", g.Len(), d.N(), ErrDimensionMismatch)
	}
	startIdx, err := g.Index(start)
	if err != nil {
		return nil, fmt.Errorf("compress: start: %w", err)
	}

	// Stage 2: openable valves, each reachable from start.
	var open []core.Valve
	for _, v := range g.Valves() {
		if v.Rate == 0 {
			continue
		}
		if !d.Reachable(startIdx, v.Index) {
			return nil, fmt.Errorf("compress: valve %d from start %d: %w", v.ID, start, ErrDisconnected)
		}
		open = append(open, v)
	}
	if len(open) > MaxValves {
		return nil, fmt.Errorf("compress: %d openable valves, limit %d: %w", len(open), MaxValves, ErrTooManyValves)
	}

	// Stage 3: deterministic position order.
	slices.SortFunc(open, func(a, b core.Valve) int {
		if a.Rate != b.Rate {
			return cmp.Compare(b.Rate, a.Rate)
		}
		return cmp.Compare(a.ID, b.ID)
	})
	retained := open
	if g.Rate(startIdx) == 0 {
		startValve, _ := g.Valve(startIdx)
		retained = append(retained, startValve)
	}

	n := len(retained)
	cg := &Graph{
		n:     n,
		k:     len(open),
		ids:   make([]core.ValveID, n),
		rates: make([]uint32, n),
		dist:  make([]uint32, n*n),
		index: make(map[core.ValveID]int, n),
	}
	for p, v := range retained {
		cg.ids[p] = v.ID
		cg.rates[p] = v.Rate
		cg.index[v.ID] = p
		cg.rateSum += uint64(v.Rate)
		if v.ID == start {
			cg.start = p
		}
	}

	// Stage 4: projection.
	var a, b int
	for a = 0; a < n; a++ {
		for b = 0; b < n; b++ {
			cg.dist[a*n+b], _ = d.At(retained[a].Index, retained[b].Index)
		}
	}

	return cg, nil
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Compressed graph type, sentinel errors and read-only accessors.

package compress

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/valvenet/core"
)

// MaxValves is the largest number of openable valves an OpenSet (uint64) can address.
const MaxValves = 64

// Sentinel errors for compression.
var (
	// ErrGraphNil indicates a nil graph or distance table.
	ErrGraphNil = errors.New("compress: graph is nil")

	// ErrDimensionMismatch indicates a distance table whose order differs from the graph size.
	ErrDimensionMismatch = errors.New("compress: distance table does not match graph")

	// ErrDisconnected indicates a positive-rate valve that cannot be reached from start.
	ErrDisconnected = errors.New("compress: valve unreachable from start")

	// ErrTooManyValves indicates more openable valves than an OpenSet can address.
	ErrTooManyValves = errors.New("compress: too many openable valves")
)

// Graph is the compressed valve network: the start position plus all
// openable valves, with the pairwise hop distances between them.
//
// Positions 0..Valves()-1 are openable; Start() is either one of them or,
// for a zero-rate start, the extra position Valves().
// The value is immutable once Build returns and safe for concurrent reads.
type Graph struct {
	n     int // positions
	k     int // openable positions, bits 0..k-1
	start int

	ids   []core.ValveID
	rates []uint32
	dist  []uint32 // dist[a*n+b]

	index   map[core.ValveID]int
	rateSum uint64
}

// Len returns the number of positions (openable valves plus a zero-rate start).
func (g *Graph) Len() int { return g.n }

// Valves returns the number of openable valves.
func (g *Graph) Valves() int { return g.k }

// Start returns the start position.
func (g *Graph) Start() int { return g.start }

// StartID returns the id of the start valve.
func (g *Graph) StartID() core.ValveID { return g.ids[g.start] }

// Position resolves a retained valve id to its position.
//
// Errors:
//   - core.ErrUnknownValve (wrapped) if id was dropped by compression or never existed.
func (g *Graph) Position(id core.ValveID) (int, error) {
	p, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("compress: Position(%d): %w", id, core.ErrUnknownValve)
	}

	return p, nil
}

// ID returns the valve id at position p.
func (g *Graph) ID(p int) core.ValveID { return g.ids[p] }

// Rate returns the release rate at position p.
func (g *Graph) Rate(p int) uint32 { return g.rates[p] }

// Openable reports whether position p owns an OpenSet bit.
func (g *Graph) Openable(p int) bool { return p >= 0 && p < g.k }

// Distance returns the hop count between positions a and b.
func (g *Graph) Distance(a, b int) uint32 { return g.dist[a*g.n+b] }

// DistanceRow returns the read-only distance row of position a.
// The slice aliases internal storage; callers must not modify it.
func (g *Graph) DistanceRow(a int) []uint32 { return g.dist[a*g.n : (a+1)*g.n] }

// Bit returns the OpenSet bit of position p, or 0 for a non-openable start.
func (g *Graph) Bit(p int) uint64 {
	if !g.Openable(p) {
		return 0
	}

	return 1 << uint(p)
}

// FullMask returns the OpenSet with every openable valve set.
func (g *Graph) FullMask() uint64 {
	if g.k == MaxValves {
		return ^uint64(0)
	}

	return 1<<uint(g.k) - 1
}

// RateSum returns the sum of all rates; RateSum × budget bounds any score.
func (g *Graph) RateSum() uint64 { return g.rateSum }

// MaskIDs lists the valve ids in mask in position order.
func (g *Graph) MaskIDs(mask uint64) []core.ValveID {
	out := make([]core.ValveID, 0, g.k)
	for p := 0; p < g.k; p++ {
		if mask&(1<<uint(p)) != 0 {
			out = append(out, g.ids[p])
		}
	}

	return out
}

// String renders positions, rates and the distance table, start marked with '*'.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "positions=%d openable=%d start=%d\n", g.n, g.k, g.start)
	for a := 0; a < g.n; a++ {
		mark := ' '
		if a == g.start {
			mark = '*'
		}
		fmt.Fprintf(&sb, "%c%3d id=%-4d rate=%-4d |", mark, a, g.ids[a], g.rates[a])
		for b := 0; b < g.n; b++ {
			fmt.Fprintf(&sb, " %3d", g.dist[a*g.n+b])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

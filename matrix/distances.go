// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense square hop-distance table with a flat row-major buffer.
//   - Bounds-checked public indexers; unchecked fast accessors for kernels.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Unreachable marks a pair of valves with no connecting path.
const Unreachable uint32 = math.MaxUint32

// Distances is an n×n table of hop counts; data[i*n+j] is the distance i→j.
type Distances struct {
	n    int
	data []uint32
}

// NewDistances allocates an n×n table with 0 on the diagonal and
// Unreachable elsewhere. n may be 0 (an empty table).
// Complexity: O(n²).
func NewDistances(n int) (*Distances, error) {
	if n < 0 {
		return nil, matrixErrorf("NewDistances", ErrDimensionMismatch)
	}
	d := &Distances{n: n, data: make([]uint32, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			if i != j {
				d.data[base+j] = Unreachable
			}
		}
	}

	return d, nil
}

// N returns the order of the table.
func (d *Distances) N() int { return d.n }

// inRange reports whether i is a valid row/column index.
func (d *Distances) inRange(i int) bool { return i >= 0 && i < d.n }

// At returns d[i][j].
func (d *Distances) At(i, j int) (uint32, error) {
	if !d.inRange(i) || !d.inRange(j) {
		return 0, matrixErrorf("At", ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set writes d[i][j] = v.
func (d *Distances) Set(i, j int, v uint32) error {
	if !d.inRange(i) || !d.inRange(j) {
		return matrixErrorf("Set", ErrOutOfRange)
	}
	d.data[i*d.n+j] = v

	return nil
}

// Fill replaces the whole table with a row-major copy of vals.
func (d *Distances) Fill(vals []uint32) error {
	if len(vals) != d.n*d.n {
		return matrixErrorf("Fill", ErrDimensionMismatch)
	}
	copy(d.data, vals)

	return nil
}

// Reachable reports whether j is reachable from i. Out-of-range indices are unreachable.
func (d *Distances) Reachable(i, j int) bool {
	if !d.inRange(i) || !d.inRange(j) {
		return false
	}

	return d.data[i*d.n+j] != Unreachable
}

// Row returns a copy of row i.
func (d *Distances) Row(i int) ([]uint32, error) {
	if !d.inRange(i) {
		return nil, matrixErrorf("Row", ErrOutOfRange)
	}
	out := make([]uint32, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out, nil
}

// Clone returns a deep copy.
func (d *Distances) Clone() *Distances {
	out := &Distances{n: d.n, data: make([]uint32, len(d.data))}
	copy(out.data, d.data)

	return out
}

// String renders the table with "-" for Unreachable, one row per line.
func (d *Distances) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			v := d.data[i*d.n+j]
			if v == Unreachable {
				sb.WriteString("  -")
				continue
			}
			fmt.Fprintf(&sb, "%3d", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

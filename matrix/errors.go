// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with the
// operation name); tests match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into AllPairs.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil *Distances was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a buffer whose length does not match n×n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonZeroDiagonal signals d[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals d[i][j] != d[j][i] for an undirected network.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrTriangle signals that some detour d[i][k] + d[k][j] is shorter than d[i][j],
	// i.e. the table is not a closed shortest-path table.
	ErrTriangle = errors.New("matrix: triangle inequality violated")
)

// matrixErrorf tags err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

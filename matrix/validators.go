// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for distance-table invariants.
//   - Return sentinels wrapped with the validator name and the offending cell.
//
// Determinism & Performance:
//   - Checks scan in row-major order and stop at the first violation.
//   - Nothing allocates on the success path.

package matrix

import "fmt"

// validatorErrorf wraps err with the validator tag and the cell that failed.
func validatorErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s: d[%d][%d]: %w", tag, i, j, err)
}

// ValidateZeroDiagonal checks d[i][i] == 0 for all i.
// Complexity: O(n).
func ValidateZeroDiagonal(d *Distances) error {
	if d == nil {
		return matrixErrorf("ValidateZeroDiagonal", ErrNilMatrix)
	}
	for i := 0; i < d.n; i++ {
		if d.data[i*d.n+i] != 0 {
			return validatorErrorf("ValidateZeroDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks d[i][j] == d[j][i] on the upper triangle.
// Complexity: O(n²).
func ValidateSymmetric(d *Distances) error {
	if d == nil {
		return matrixErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	n := d.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d.data[i*n+j] != d.data[j*n+i] {
				return validatorErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateTriangle checks d[i][j] <= d[i][k] + d[k][j] for every triple
// where both legs are reachable. An Unreachable d[i][j] with reachable legs
// is a violation too.
// Complexity: O(n³).
func ValidateTriangle(d *Distances) error {
	if d == nil {
		return matrixErrorf("ValidateTriangle", ErrNilMatrix)
	}
	n := d.n
	var (
		i, j, k int
		ik, kj  uint32
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = d.data[i*n+k]
			if ik == Unreachable {
				continue
			}
			for j = 0; j < n; j++ {
				kj = d.data[k*n+j]
				if kj == Unreachable {
					continue
				}
				if uint64(d.data[i*n+j]) > uint64(ik)+uint64(kj) {
					return validatorErrorf("ValidateTriangle", i, j, ErrTriangle)
				}
			}
		}
	}

	return nil
}

// ValidateMetric runs ValidateZeroDiagonal → ValidateSymmetric → ValidateTriangle.
func ValidateMetric(d *Distances) error {
	if err := ValidateZeroDiagonal(d); err != nil {
		return err
	}
	if err := ValidateSymmetric(d); err != nil {
		return err
	}

	return ValidateTriangle(d)
}

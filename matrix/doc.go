// Package matrix computes and validates all-pairs hop distances over a
// core.Graph.
//
// What:
//
//   - Distances: a dense n×n table of uint32 hop counts stored row-major in a
//     single flat buffer. Unreachable marks pairs with no connecting path.
//   - AllPairs: builds the initial table from the graph (diagonal 0, tunnels 1,
//     everything else Unreachable) and closes it with Floyd–Warshall.
//   - FloydWarshall: the in-place closure on its own, for callers that seed a
//     table by hand.
//   - AllPairsBFS: the same table from one breadth-first sweep per valve.
//     Faster on sparse networks and an independent check of AllPairs.
//   - Validators: zero diagonal, symmetry and the triangle inequality, each
//     reported through a sentinel error.
//
// Why hop counts and not float64 + Inf:
//
//	Tunnels all cost one minute, so every distance is a small integer that
//	later feeds integer time arithmetic. A sentinel value avoids both the
//	float→int conversion and NaN handling in the search hot loop.
//
// Complexity:
//
//   - AllPairs / FloydWarshall: Time O(n³), Space O(n²) for the table, O(1) extra.
//   - AllPairsBFS: Time O(n·(n+E)), Space O(n²) for the table, O(n) queue.
//   - ValidateTriangle: Time O(n³); the other validators O(n²).
//
// Errors:
//
//	ErrGraphNil          - nil *core.Graph passed to AllPairs or AllPairsBFS.
//	ErrNilMatrix         - nil *Distances passed to an operation.
//	ErrOutOfRange        - At/Set/Row index outside [0, n).
//	ErrDimensionMismatch - Fill buffer length differs from n².
//	ErrNonZeroDiagonal   - d[i][i] != 0.
//	ErrAsymmetry         - d[i][j] != d[j][i].
//	ErrTriangle          - d[i][j] > d[i][k] + d[k][j] for some k.
package matrix

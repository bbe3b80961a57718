// Package matrix holds the validated in-memory form of a co-occurrence tool
// run.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with error-returning At/Set.
//   - CorrelationMatrix: feature ids, a square score matrix and an optional
//     parallel p-value matrix, immutable after construction.
//   - The upper-triangle iterator (EachUpper, UpperTriangle, UpperScores),
//     the single source of truth for "which pairs exist".
//   - Validators (shape, ids, symmetry) returning sentinel errors.
//
// Only the strict upper triangle (i<j) is ever read; symmetry is assumed
// and can optionally be verified with WithSymmetryCheck.
//
// See the examples in this package for usage patterns.
package matrix

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors MUST return these sentinels (optionally
// wrapped with a context tag) and tests MUST check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Detection sites wrap with fmt.Errorf("%s: %w", tag, ErrX); callers still
// match the sentinel with errors.Is.
//
// ERROR PRIORITY (enforced in NewCorrelationMatrix):
// score shape -> id count -> p-value shape -> duplicate ids -> NaN policy
// -> symmetry (only when requested).

var (
	// ErrShape is returned when a score or p-value matrix is not square, when
	// the two matrices differ in shape, or when the number of feature ids does
	// not match the matrix order.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDuplicateID indicates that the feature id sequence repeats an id.
	ErrDuplicateID = errors.New("matrix: duplicate feature id")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals an invalid tolerance or a non-finite value where the
	// numeric policy requires a finite one.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

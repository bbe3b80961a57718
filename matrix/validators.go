// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the shape, id and
//    symmetry checks performed while building a CorrelationMatrix.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrShape.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrShape)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrShape)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrShape if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrShape)
	}

	return nil
}

// ValidateIDs checks that ids has exactly n unique, non-empty entries.
//
// Errors: ErrShape on a count mismatch, ErrDuplicateID on a repeated id.
// Complexity: O(n) time, O(n) space for the seen-set.
func ValidateIDs(ids []string, n int) error {
	if len(ids) != n {
		return validatorErrorf(fmt.Sprintf("ValidateIDs: %d ids for order %d", len(ids), n), ErrShape)
	}
	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return validatorErrorf(fmt.Sprintf("ValidateIDs: %q", id), ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// ValidateSymmetric verifies |A[i,j] - A[j,i]| <= tol for all i<j.
// Complexity: O(n^2) where n = Rows(A). Space: O(1).
// Returns ErrNilMatrix/ErrShape on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation. Cells where either side is NaN are skipped:
// missing scores are a property of the upstream tool, not an asymmetry.
func ValidateSymmetric(m Matrix, tol float64) error {
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrShape)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	n := m.Rows()
	if n <= 1 {
		return nil
	}

	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // scan only upper triangle
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.IsNaN(aij) || math.IsNaN(aji) {
				continue
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

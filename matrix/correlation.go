// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - CorrelationMatrix: the validated, immutable in-memory form of one tool
//     run: feature ids, a square score matrix and an optional parallel
//     p-value matrix.
//   - The strict upper triangle (i<j) is the only part ever read; symmetry
//     is assumed, never recomputed.
//
// Determinism & Performance:
//   - Inputs are copied once into row-major Dense buffers.
//   - Upper-triangle scans run in fixed row-major order.

package matrix

import (
	"fmt"
	"math"
)

const opNewCorrelationMatrix = "NewCorrelationMatrix"

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CorrelationMatrix is a square score matrix labelled by feature ids, with an
// optional p-value matrix of identical shape. It is immutable after
// construction and safe for concurrent readers.
type CorrelationMatrix struct {
	ids     []string
	index   map[string]int
	scores  *Dense
	pvalues *Dense // nil when the tool reported no per-pair p-values
}

// NewCorrelationMatrix validates and copies the normalized output of one tool.
// Implementation:
//   - Stage 1: copy scores into a Dense; every row must have n entries (ErrShape).
//   - Stage 2: check len(ids) == n and that ids are unique.
//   - Stage 3: copy p-values when present; shape must equal the score shape.
//   - Stage 4: apply the NaN policy and the optional symmetry check.
//
// Behavior highlights:
//   - pvalues == nil means "absent"; PValue then reports NaN.
//   - n == 0 is legal and yields an empty matrix with no pairs.
//
// Errors:
//   - ErrShape, ErrDuplicateID, ErrAsymmetry (only with WithSymmetryCheck).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewCorrelationMatrix(ids []string, scores, pvalues [][]float64, opts ...Option) (*CorrelationMatrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: scores.
	sd, err := denseFromRows(scores)
	if err != nil {
		return nil, matrixErrorf(opNewCorrelationMatrix+": scores", err)
	}
	n := sd.Rows()

	// Stage 2: ids.
	if err = ValidateIDs(ids, n); err != nil {
		return nil, matrixErrorf(opNewCorrelationMatrix, err)
	}

	// Stage 3: p-values.
	var pd *Dense
	if pvalues != nil {
		if pd, err = denseFromRows(pvalues); err != nil {
			return nil, matrixErrorf(opNewCorrelationMatrix+": pvalues", err)
		}
		if err = ValidateSameShape(sd, pd); err != nil {
			return nil, matrixErrorf(opNewCorrelationMatrix+": pvalues", err)
		}
	}

	// Stage 4: numeric policy.
	if o.nanPValuesAsOne && pd != nil {
		var k int
		for k = range pd.data {
			if math.IsNaN(pd.data[k]) {
				pd.data[k] = 1
				sd.data[k] = 0
			}
		}
	}
	if o.checkSymmetry {
		if err = ValidateSymmetric(sd, o.eps); err != nil {
			return nil, matrixErrorf(opNewCorrelationMatrix+": scores", err)
		}
		if pd != nil {
			if err = ValidateSymmetric(pd, o.eps); err != nil {
				return nil, matrixErrorf(opNewCorrelationMatrix+": pvalues", err)
			}
		}
	}

	cp := make([]string, n)
	copy(cp, ids)
	index := make(map[string]int, n)
	for i, id := range cp {
		index[id] = i
	}

	return &CorrelationMatrix{ids: cp, index: index, scores: sd, pvalues: pd}, nil
}

// Len returns the number of features n.
func (cm *CorrelationMatrix) Len() int { return len(cm.ids) }

// PairCount returns n(n-1)/2, the number of distinct unordered pairs.
func (cm *CorrelationMatrix) PairCount() int {
	n := len(cm.ids)
	return n * (n - 1) / 2
}

// IDs returns a copy of the feature ids in matrix order.
func (cm *CorrelationMatrix) IDs() []string {
	out := make([]string, len(cm.ids))
	copy(out, cm.ids)

	return out
}

// ID returns the feature id at position i. It panics on an invalid index,
// like a slice access; indexes come from UpperTriangle.
func (cm *CorrelationMatrix) ID(i int) string { return cm.ids[i] }

// IndexOf returns the matrix position of id and whether it exists.
func (cm *CorrelationMatrix) IndexOf(id string) (int, bool) {
	i, ok := cm.index[id]
	return i, ok
}

// HasPValues reports whether a p-value matrix was supplied.
func (cm *CorrelationMatrix) HasPValues() bool { return cm.pvalues != nil }

// Score returns scores[i][j] or ErrOutOfRange.
func (cm *CorrelationMatrix) Score(i, j int) (float64, error) {
	return cm.scores.At(i, j)
}

// PValue returns pvalues[i][j], NaN when no p-value matrix is present, or
// ErrOutOfRange.
func (cm *CorrelationMatrix) PValue(i, j int) (float64, error) {
	if cm.pvalues == nil {
		if _, err := cm.scores.At(i, j); err != nil {
			return 0, err
		}
		return math.NaN(), nil
	}

	return cm.pvalues.At(i, j)
}

// Scores returns a deep copy of the score matrix.
func (cm *CorrelationMatrix) Scores() Matrix { return cm.scores.Clone() }

// PValues returns a deep copy of the p-value matrix, or nil when absent.
func (cm *CorrelationMatrix) PValues() Matrix {
	if cm.pvalues == nil {
		return nil
	}

	return cm.pvalues.Clone()
}

// PairScore returns the score of an upper-triangle pair without bounds
// checks. p must come from UpperTriangle / EachUpper of the same matrix.
func (cm *CorrelationMatrix) PairScore(p Pair) float64 { return cm.scores.at(p.I, p.J) }

// PairPValue returns the p-value of an upper-triangle pair, NaN when absent.
func (cm *CorrelationMatrix) PairPValue(p Pair) float64 {
	if cm.pvalues == nil {
		return math.NaN()
	}

	return cm.pvalues.at(p.I, p.J)
}

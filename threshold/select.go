// SPDX-License-Identifier: MIT

package threshold

import (
	"github.com/afcarl/correlations/matrix"
)

// Selection is the outcome of applying a Policy to one score distribution.
//   - Indexes: positions of the significant candidates, ascending.
//   - Candidates: number of candidates examined (n(n-1)/2 for a matrix).
//   - Requested / Actual: requested level and realized selected fraction.
//
// For Fixed policies Actual is still the selected fraction, which is
// informational only (the level there is a p-value cutoff).
type Selection struct {
	Indexes    []int
	Bounds     Bounds
	Candidates int
	Requested  float64
	Actual     float64
}

// Deviates reports whether the realized fraction differs from the request.
// Only meaningful for quantile strategies.
func (s Selection) Deviates() bool { return s.Requested != s.Actual }

// SelectValues applies the policy to parallel score / p-value slices.
// pvalues may be nil for quantile strategies; for Fixed it must be as long
// as scores (ErrInvalidConfig otherwise).
// Complexity: O(k log k) for quantile strategies, O(k) for Fixed.
func (p Policy) SelectValues(scores, pvalues []float64) (Selection, error) {
	if p.strategy == Fixed && len(pvalues) != len(scores) {
		return Selection{}, thresholdErrorf(opSelect+": fixed cutoff needs one p-value per score", ErrInvalidConfig)
	}

	b := p.Bounds(scores)
	sel := Selection{Bounds: b, Candidates: len(scores), Requested: p.sigLvl}

	var (
		i  int
		pv float64
	)
	for i = range scores {
		if pvalues != nil {
			pv = pvalues[i]
		}
		if p.Significant(scores[i], pv, b) {
			sel.Indexes = append(sel.Indexes, i)
		}
	}
	if sel.Candidates > 0 {
		sel.Actual = float64(len(sel.Indexes)) / float64(sel.Candidates)
	}

	return sel, nil
}

// Select applies the policy to the upper triangle of cm. Indexes refer to
// positions in cm.UpperTriangle(); Pairs resolves them.
//
// Errors:
//   - ErrInvalidConfig when a Fixed policy meets a matrix without p-values.
func (p Policy) Select(cm *matrix.CorrelationMatrix) (Selection, []matrix.Pair, error) {
	if p.strategy == Fixed && !cm.HasPValues() {
		return Selection{}, nil, thresholdErrorf(opSelect+": fixed cutoff on a matrix without p-values", ErrInvalidConfig)
	}

	pairs := cm.UpperTriangle()
	scores := make([]float64, len(pairs))
	var pvalues []float64
	if cm.HasPValues() {
		pvalues = make([]float64, len(pairs))
	}
	for k, pr := range pairs {
		scores[k] = cm.PairScore(pr)
		if pvalues != nil {
			pvalues[k] = cm.PairPValue(pr)
		}
	}

	sel, err := p.SelectValues(scores, pvalues)
	if err != nil {
		return Selection{}, nil, err
	}
	out := make([]matrix.Pair, len(sel.Indexes))
	for k, idx := range sel.Indexes {
		out[k] = pairs[idx]
	}

	return sel, out, nil
}

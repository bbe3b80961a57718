// SPDX-License-Identifier: MIT

package matrix

// EachUpper calls fn for every strict upper-triangle pair (i<j) in row-major
// order, stopping early when fn returns false. The lower triangle and the
// diagonal are never visited, so no consumer can double count a symmetric
// pair or emit a self-pair.
// Complexity: O(n²) time, O(1) space.
func (cm *CorrelationMatrix) EachUpper(fn func(Pair) bool) {
	n := len(cm.ids)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !fn(Pair{I: i, J: j}) {
				return
			}
		}
	}
}

// UpperTriangle materializes the pairs visited by EachUpper.
// Complexity: O(n²) time and space.
func (cm *CorrelationMatrix) UpperTriangle() []Pair {
	out := make([]Pair, 0, cm.PairCount())
	cm.EachUpper(func(p Pair) bool {
		out = append(out, p)
		return true
	})

	return out
}

// UpperScores returns the scores of the upper triangle in EachUpper order.
func (cm *CorrelationMatrix) UpperScores() []float64 {
	out := make([]float64, 0, cm.PairCount())
	cm.EachUpper(func(p Pair) bool {
		out = append(out, cm.scores.at(p.I, p.J))
		return true
	})

	return out
}

// SPDX-License-Identifier: MIT

package threshold

import (
	"math"
	"slices"
)

// Bounds is the empirical boundary of a quantile Policy.
//   - Lower: scores <= Lower are significant (TwoTailed, LowerTail).
//   - Upper: scores >= Upper are significant (TwoTailed, UpperTail).
//   - Unique: m, the number of unique finite scores the bounds came from.
//   - None: the bounds select nothing (zero two-tailed level or m == 0).
//
// Unused sides are -Inf (Lower) and +Inf (Upper).
type Bounds struct {
	Lower  float64
	Upper  float64
	Unique int
	None   bool
}

// noBounds selects nothing and reports the open interval.
func noBounds(m int) Bounds {
	return Bounds{Lower: math.Inf(-1), Upper: math.Inf(1), Unique: m, None: true}
}

// UniqueSorted returns the ascending distinct non-NaN values of scores.
// The input is not modified.
// Complexity: O(k log k) for k = len(scores).
func UniqueSorted(scores []float64) []float64 {
	u := make([]float64, 0, len(scores))
	for _, v := range scores {
		if !math.IsNaN(v) {
			u = append(u, v)
		}
	}
	slices.Sort(u)

	return slices.Compact(u)
}

// Bounds computes the empirical boundary from the upper-triangle scores.
// Implementation:
//   - Stage 1: u = UniqueSorted(scores), m = len(u); m == 0 selects nothing.
//   - Stage 2 (TwoTailed): alpha = sig/2; sig == 0 selects nothing;
//     Lower = u[floor(alpha*m)], Upper = u[m-ceil(alpha*m)].
//   - Stage 2 (LowerTail): Lower = u[round(sig*m)-1].
//   - Stage 2 (UpperTail): Upper = u[m-round(sig*m)].
//   - Indexes are clamped into [0, m-1]; this only matters when sig*m < 0.5,
//     where the one-tailed rules then keep the single most extreme value.
//
// Behavior highlights:
//   - Fixed policies return open bounds (they are never consulted).
//   - round is half away from zero.
//
// Complexity:
//   - Time O(k log k), Space O(k).
func (p Policy) Bounds(scores []float64) Bounds {
	if p.strategy == Fixed {
		return Bounds{Lower: math.Inf(-1), Upper: math.Inf(1)}
	}

	u := UniqueSorted(scores)
	m := len(u)
	if m == 0 {
		return noBounds(0)
	}
	mf := float64(m)

	switch p.strategy {
	case TwoTailed:
		if p.sigLvl == 0 {
			return noBounds(m)
		}
		alpha := p.sigLvl / 2
		lo := int(math.Floor(alpha * mf))
		hi := m - int(math.Ceil(alpha*mf))
		return Bounds{Lower: u[clampIndex(lo, m)], Upper: u[clampIndex(hi, m)], Unique: m}
	case LowerTail:
		idx := int(math.Round(p.sigLvl*mf)) - 1
		return Bounds{Lower: u[clampIndex(idx, m)], Upper: math.Inf(1), Unique: m}
	case UpperTail:
		idx := m - int(math.Round(p.sigLvl*mf))
		return Bounds{Lower: math.Inf(-1), Upper: u[clampIndex(idx, m)], Unique: m}
	default:
		return noBounds(m)
	}
}

// clampIndex keeps idx inside [0, m-1].
func clampIndex(idx, m int) int {
	if idx < 0 {
		return 0
	}
	if idx > m-1 {
		return m - 1
	}

	return idx
}

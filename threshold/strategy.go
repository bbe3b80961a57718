// SPDX-License-Identifier: MIT

package threshold

import (
	"fmt"
	"strings"
)

// Strategy tags the significance rule of a Policy.
type Strategy int

const (
	// Fixed selects pairs whose p-value is at or below the level.
	Fixed Strategy = iota
	// TwoTailed selects both empirical tails of a signed score distribution.
	TwoTailed
	// LowerTail selects the low empirical tail (distances, dissimilarities).
	LowerTail
	// UpperTail selects the high empirical tail (information-like strengths).
	UpperTail
)

var strategyNames = [...]string{
	Fixed:     "fixed",
	TwoTailed: "two-tailed",
	LowerTail: "lower-tail",
	UpperTail: "upper-tail",
}

// String returns the configuration tag of s.
func (s Strategy) String() string {
	if s < Fixed || s > UpperTail {
		return fmt.Sprintf("strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Quantile reports whether s derives its boundary from the score distribution.
func (s Strategy) Quantile() bool { return s == TwoTailed || s == LowerTail || s == UpperTail }

// OneTailed reports whether s is LowerTail or UpperTail.
func (s Strategy) OneTailed() bool { return s == LowerTail || s == UpperTail }

// ParseStrategy maps a configuration tag to a Strategy. Matching ignores
// case and surrounding space; unknown tags fail with ErrInvalidConfig.
func ParseStrategy(tag string) (Strategy, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	for i, name := range strategyNames {
		if name == t {
			return Strategy(i), nil
		}
	}

	return 0, thresholdErrorf(fmt.Sprintf("ParseStrategy(%q)", tag), ErrInvalidConfig)
}

// SPDX-License-Identifier: MIT
// Package: threshold
//
// Purpose:
//   - Policy: immutable (strategy, level, filters) value validated once at
//     construction, so no scan ever starts with a bad configuration.
//   - Significant: the per-pair predicate shared by matrix and edge-list
//     extraction.

package threshold

import (
	"fmt"
	"math"
)

const (
	opNew    = "New"
	opSelect = "Select"
)

const (
	panicMagnitudeInvalid = "threshold: WithMagnitudeFilter: magnitude must be finite, non-negative"
)

// Option configures a Policy at construction.
type Option func(*Policy)

// WithMagnitudeFilter adds a secondary filter |score| >= magnitude, AND-ed
// with the p-value cutoff. Fixed strategy only.
// Panics if magnitude is NaN, ±Inf or negative.
func WithMagnitudeFilter(magnitude float64) Option {
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) || magnitude < 0 {
		panic(panicMagnitudeInvalid)
	}

	return func(p *Policy) {
		p.magnitude = magnitude
		p.hasMagnitude = true
	}
}

// WithStrictCutoff switches the Fixed rule from p <= level to p < level,
// the rule applied to pre-itemized local-similarity tables. Fixed strategy
// only.
func WithStrictCutoff() Option {
	return func(p *Policy) {
		p.strict = true
	}
}

// Policy is a significance rule. The zero value is not usable; build one
// with New.
type Policy struct {
	strategy     Strategy
	sigLvl       float64
	magnitude    float64
	hasMagnitude bool
	strict       bool
}

// New validates and returns a Policy.
// Implementation:
//   - Stage 1: reject unknown strategies.
//   - Stage 2: sigLvl must be finite and >= 0; quantile strategies also
//     require sigLvl <= 1 (it is a fraction of pairs).
//   - Stage 3: one-tailed strategies reject sigLvl == 0 (no boundary can be
//     placed from zero quantile mass).
//   - Stage 4: Fixed-only options must not be combined with quantile strategies.
//
// Errors:
//   - ErrInvalidConfig (wrapped with the reason).
func New(strategy Strategy, sigLvl float64, opts ...Option) (Policy, error) {
	p := Policy{strategy: strategy, sigLvl: sigLvl}
	for _, set := range opts {
		set(&p)
	}

	if strategy < Fixed || strategy > UpperTail {
		return Policy{}, thresholdErrorf(fmt.Sprintf("%s: unknown %s", opNew, strategy), ErrInvalidConfig)
	}
	if math.IsNaN(sigLvl) || math.IsInf(sigLvl, 0) || sigLvl < 0 {
		return Policy{}, thresholdErrorf(fmt.Sprintf("%s: significance level %g", opNew, sigLvl), ErrInvalidConfig)
	}
	if strategy.Quantile() && sigLvl > 1 {
		return Policy{}, thresholdErrorf(fmt.Sprintf("%s: %s fraction %g > 1", opNew, strategy, sigLvl), ErrInvalidConfig)
	}
	if strategy.OneTailed() && sigLvl == 0 {
		return Policy{}, thresholdErrorf(fmt.Sprintf("%s: %s needs a significance level > 0", opNew, strategy), ErrInvalidConfig)
	}
	if strategy != Fixed && (p.hasMagnitude || p.strict) {
		return Policy{}, thresholdErrorf(fmt.Sprintf("%s: cutoff options do not apply to %s", opNew, strategy), ErrInvalidConfig)
	}

	return p, nil
}

// MustNew is New that panics on error. Intended for package-level presets
// and tests with literal arguments.
func MustNew(strategy Strategy, sigLvl float64, opts ...Option) Policy {
	p, err := New(strategy, sigLvl, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Strategy returns the rule tag.
func (p Policy) Strategy() Strategy { return p.strategy }

// SigLvl returns the requested significance level.
func (p Policy) SigLvl() float64 { return p.sigLvl }

// MagnitudeFilter returns the magnitude filter and whether one is set.
func (p Policy) MagnitudeFilter() (float64, bool) { return p.magnitude, p.hasMagnitude }

// Strict reports whether the Fixed rule uses p < level.
func (p Policy) Strict() bool { return p.strict }

// NeedsPValues reports whether the rule reads p-values.
func (p Policy) NeedsPValues() bool { return p.strategy == Fixed }

// String renders the policy for logs, e.g. "fixed(0.05,|r|>=0.3)".
func (p Policy) String() string {
	switch {
	case p.hasMagnitude:
		return fmt.Sprintf("%s(%g,|r|>=%g)", p.strategy, p.sigLvl, p.magnitude)
	case p.strict:
		return fmt.Sprintf("%s(<%g)", p.strategy, p.sigLvl)
	default:
		return fmt.Sprintf("%s(%g)", p.strategy, p.sigLvl)
	}
}

// Significant is the per-pair predicate.
//
// Behavior highlights:
//   - Fixed: pvalue <= level (or < with WithStrictCutoff), AND |score| >=
//     magnitude when a filter is set. NaN p-values never pass.
//   - Quantile strategies compare score against b; bounds marked None
//     select nothing. NaN scores never pass.
func (p Policy) Significant(score, pvalue float64, b Bounds) bool {
	switch p.strategy {
	case Fixed:
		var ok bool
		if p.strict {
			ok = pvalue < p.sigLvl
		} else {
			ok = pvalue <= p.sigLvl
		}
		if ok && p.hasMagnitude {
			ok = math.Abs(score) >= p.magnitude
		}
		return ok
	case TwoTailed:
		return !b.None && (score <= b.Lower || score >= b.Upper)
	case LowerTail:
		return !b.None && score <= b.Lower
	case UpperTail:
		return !b.None && score >= b.Upper
	default:
		return false
	}
}

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for CorrelationMatrix ingestion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults then setters.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts ingestion and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by the optional symmetry check.
	DefaultEpsilon = 1e-9

	// DefaultCheckSymmetry keeps symmetry an assumption rather than a
	// verified property; only the upper triangle is ever read.
	DefaultCheckSymmetry = false

	// DefaultNaNPValuesAsOne leaves NaN p-values untouched (they never pass a
	// p <= cutoff comparison anyway).
	DefaultNaNPValuesAsOne = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithSymmetryCheck: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps             float64 // >= 0; DefaultEpsilon
	checkSymmetry   bool    // DefaultCheckSymmetry
	nanPValuesAsOne bool    // DefaultNaNPValuesAsOne
}

// WithSymmetryCheck makes NewCorrelationMatrix verify that the score matrix
// (and the p-value matrix when present) is symmetric within eps.
// Panics if eps is NaN, ±Inf or negative.
func WithSymmetryCheck(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.checkSymmetry = true
	}
}

// WithNaNPValuesAsOne sanitises missing p-values: every NaN p-value becomes 1
// and the score at the same cell becomes 0, so the pair can never be
// selected by a cutoff nor bias an empirical distribution toward an extreme.
// Has no effect when no p-value matrix is supplied.
func WithNaNPValuesAsOne() Option {
	return func(o *Options) {
		o.nanPValuesAsOne = true
	}
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:             DefaultEpsilon,
		checkSymmetry:   DefaultCheckSymmetry,
		nanPValuesAsOne: DefaultNaNPValuesAsOne,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

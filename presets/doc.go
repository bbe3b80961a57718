// Package presets binds each supported co-occurrence tool to the
// significance policy and interaction classifier its output needs.
//
// Matrix tools:
//
//	SparCC      fixed p-value cutoff, optional |r| filter, signed
//	Naive       NaN p-values become 1 (score 0); fixed cutoff or, when
//	            empirical, two-tailed on the scores; signed
//	BrayCurtis  lower tail of the dissimilarities, unsigned
//	MIC         upper tail of the information coefficients, unsigned
//
// Itemized tools:
//
//	LSA         strict p-value cutoff on one chosen sub-score, signed
//	CoNet       every listed edge, labels taken as given
//	RMT         every listed edge, signed
//
// Every preset returns a network.Network, so the significance level can be
// changed later without re-reading the input.
package presets

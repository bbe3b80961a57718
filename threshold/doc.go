// Package threshold decides which pairwise scores are significant.
//
// A Policy pairs a significance level with one of four strategies:
//
//	Fixed      p <= sig (optionally AND |score| >= magnitude filter)
//	TwoTailed  score <= lower || score >= upper, bounds taken from the
//	           unique sorted scores at floor(sig/2*m) and m-ceil(sig/2*m)
//	LowerTail  score <= u[round(sig*m)-1]   (dissimilarities)
//	UpperTail  score >= u[m-round(sig*m)]   (association strengths)
//
// where u is the ascending sequence of the m unique upper-triangle scores.
// Every occurrence of a boundary value is selected, so ties can push the
// realized fraction (Selection.Actual) above the requested one. That
// deviation is reported, never treated as an error.
//
// The lower tail rounds its target rank and then steps one down, while the
// upper tail counts round(sig*m) from the top, so the two are not mirror
// images. TODO: confirm with the tool authors whether the asymmetry is
// intended before changing either rule.
package threshold

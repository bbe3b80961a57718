// Package network turns significant pairs into a co-occurrence network and
// describes it.
//
// What & Why:
//
//	An Extractor applies a threshold.Policy and a Classifier to either a
//	matrix.CorrelationMatrix (upper triangle, row-major) or a pre-itemized
//	edge list (input order) and yields an EdgeSet in which every unordered
//	pair appears at most once and no self-pair appears at all.
//	A Network owns one immutable source and its current EdgeSet;
//	ChangeSignificance swaps in a freshly built EdgeSet as a unit.
//	Statistics (degree ranking, connectivity histogram, connection
//	fraction) are pure functions over an EdgeSet.
//
// Interactions:
//
//	Signed scores classify as Copresence when score >= 0 (zero included)
//	and MutualExclusion otherwise. Unsigned measures (dissimilarities,
//	information coefficients) carry no sign, so every edge is Copresence.
//
// Complexity:
//
//	FromMatrix is O(n² + k log k) for n features and k = n(n-1)/2 pairs;
//	FromEdgeList is O(t log t) for t tuples. Statistics are O(|E| + V log V).
package network

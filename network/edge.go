// SPDX-License-Identifier: MIT

package network

import (
	"github.com/afcarl/correlations/threshold"
)

// Edge is one significant unordered pair. OTU1/OTU2 follow traversal order
// (row id, column id for matrices; file order for edge lists) and carry no
// meaning beyond that. PValue is NaN when the tool reported none.
type Edge struct {
	OTU1        string      `json:"otu1" yaml:"otu1"`
	OTU2        string      `json:"otu2" yaml:"otu2"`
	Score       float64     `json:"score" yaml:"score"`
	PValue      float64     `json:"pvalue" yaml:"pvalue"`
	Interaction Interaction `json:"interaction" yaml:"interaction"`
}

// Touches reports whether id is an endpoint of e.
func (e Edge) Touches(id string) bool { return e.OTU1 == id || e.OTU2 == id }

// Tuple is one row of an already-itemized tool output. Interaction is
// optional; it is only read by the Given classifier.
type Tuple struct {
	ID1         string  `json:"id1" yaml:"id1"`
	ID2         string  `json:"id2" yaml:"id2"`
	Score       float64 `json:"score" yaml:"score"`
	PValue      float64 `json:"pvalue" yaml:"pvalue"`
	Interaction string  `json:"interaction,omitempty" yaml:"interaction,omitempty"`
}

// EdgeSet is an immutable, ordered sequence of edges together with the
// selection that produced it.
type EdgeSet struct {
	edges     []Edge
	nodes     []string // sig OTUs in node order
	policy    threshold.Policy
	bounds    threshold.Bounds
	requested float64
	actual    float64
}

// Len returns the number of edges.
func (es *EdgeSet) Len() int { return len(es.edges) }

// Edge returns the i-th edge. It panics on an invalid index, like a slice.
func (es *EdgeSet) Edge(i int) Edge { return es.edges[i] }

// Edges returns a copy of the edges in emission order.
func (es *EdgeSet) Edges() []Edge {
	out := make([]Edge, len(es.edges))
	copy(out, es.edges)

	return out
}

// SigOTUs returns the ids touching at least one edge. For matrix sources the
// order is matrix order; for edge lists it is first appearance.
func (es *EdgeSet) SigOTUs() []string {
	out := make([]string, len(es.nodes))
	copy(out, es.nodes)

	return out
}

// OTU1 returns the first endpoint of every edge.
func (es *EdgeSet) OTU1() []string {
	out := make([]string, len(es.edges))
	for i, e := range es.edges {
		out[i] = e.OTU1
	}

	return out
}

// OTU2 returns the second endpoint of every edge.
func (es *EdgeSet) OTU2() []string {
	out := make([]string, len(es.edges))
	for i, e := range es.edges {
		out[i] = e.OTU2
	}

	return out
}

// Scores returns the score of every edge.
func (es *EdgeSet) Scores() []float64 {
	out := make([]float64, len(es.edges))
	for i, e := range es.edges {
		out[i] = e.Score
	}

	return out
}

// PValues returns the p-value of every edge (NaN when absent).
func (es *EdgeSet) PValues() []float64 {
	out := make([]float64, len(es.edges))
	for i, e := range es.edges {
		out[i] = e.PValue
	}

	return out
}

// Interactions returns the interaction of every edge.
func (es *EdgeSet) Interactions() []Interaction {
	out := make([]Interaction, len(es.edges))
	for i, e := range es.edges {
		out[i] = e.Interaction
	}

	return out
}

// Policy returns the policy the set was extracted with.
func (es *EdgeSet) Policy() threshold.Policy { return es.policy }

// Bounds returns the empirical bounds (open bounds for Fixed).
func (es *EdgeSet) Bounds() threshold.Bounds { return es.bounds }

// RequestedSigLvl returns the requested significance level.
func (es *EdgeSet) RequestedSigLvl() float64 { return es.requested }

// ActualSigLvl returns the realized fraction of candidates selected.
func (es *EdgeSet) ActualSigLvl() float64 { return es.actual }

// SPDX-License-Identifier: MIT
// Package: network
//
// Purpose:
//   - Descriptive statistics of an EdgeSet: connection fraction, interaction
//     counts, degree histogram, average connectivity and degree ranking.
//
// Determinism:
//   - All functions are pure; ranking ties keep SigOTUs order.

package network

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// NodeDegree is a node and the number of edges touching it.
type NodeDegree struct {
	ID     string `json:"id" yaml:"id"`
	Degree int    `json:"degree" yaml:"degree"`
}

// Stats bundles every statistic for one EdgeSet.
type Stats struct {
	Edges               int          `json:"edges" yaml:"edges"`
	Nodes               int          `json:"nodes" yaml:"nodes"`
	SigOTUs             int          `json:"sig_otus" yaml:"sig_otus"`
	ConnectionFraction  float64      `json:"connection_fraction" yaml:"connection_fraction"`
	Copresences         int          `json:"copresences" yaml:"copresences"`
	Exclusions          int          `json:"exclusions" yaml:"exclusions"`
	ConnectionAbundance []int        `json:"connection_abundance" yaml:"connection_abundance"`
	AvgConnectivity     float64      `json:"avg_connectivity" yaml:"avg_connectivity"`
	OTUConnectivity     []NodeDegree `json:"otu_connectivity" yaml:"otu_connectivity"`
	RequestedSigLvl     float64      `json:"requested_sig_lvl" yaml:"requested_sig_lvl"`
	ActualSigLvl        float64      `json:"actual_sig_lvl" yaml:"actual_sig_lvl"`
}

// Summarize computes Stats for es against a total of totalNodes features.
func Summarize(es *EdgeSet, totalNodes int) Stats {
	return Stats{
		Edges:               es.Len(),
		Nodes:               totalNodes,
		SigOTUs:             len(es.nodes),
		ConnectionFraction:  ConnectionFraction(es, totalNodes),
		Copresences:         Copresences(es),
		Exclusions:          Exclusions(es),
		ConnectionAbundance: ConnectionAbundance(es),
		AvgConnectivity:     AvgConnectivity(es),
		OTUConnectivity:     OTUConnectivity(es),
		RequestedSigLvl:     es.requested,
		ActualSigLvl:        es.actual,
	}
}

// ConnectionFraction returns |E| / (N(N-1)/2), the share of all possible
// pairs that are edges. N is supplied by the caller because an EdgeSet only
// knows the nodes that survived filtering. Returns 0 when N < 2.
func ConnectionFraction(es *EdgeSet, totalNodes int) float64 {
	if totalNodes < 2 {
		return 0
	}
	n := float64(totalNodes)

	return float64(es.Len()) / (n * (n - 1) / 2)
}

// Copresences counts Copresence edges.
func Copresences(es *EdgeSet) int { return countInteraction(es, Copresence) }

// Exclusions counts MutualExclusion edges.
func Exclusions(es *EdgeSet) int { return countInteraction(es, MutualExclusion) }

func countInteraction(es *EdgeSet, in Interaction) int {
	var c int
	for _, e := range es.edges {
		if e.Interaction == in {
			c++
		}
	}

	return c
}

// Degrees maps every sig OTU to the number of edges touching it. Each edge
// adds one to both endpoints, so the degree sum is 2|E|.
func Degrees(es *EdgeSet) map[string]int {
	deg := make(map[string]int, len(es.nodes))
	for _, e := range es.edges {
		deg[e.OTU1]++
		deg[e.OTU2]++
	}

	return deg
}

// ConnectionAbundance returns the degree histogram of the sig OTUs: entry d
// is the number of nodes with degree d, for d in [0, max degree]. An empty
// EdgeSet yields an empty histogram.
func ConnectionAbundance(es *EdgeSet) []int {
	deg := Degrees(es)
	var maxDeg int
	for _, d := range deg {
		if d > maxDeg {
			maxDeg = d
		}
	}
	if len(deg) == 0 {
		return []int{}
	}

	hist := make([]int, maxDeg+1)
	for _, id := range es.nodes {
		hist[deg[id]]++
	}

	return hist
}

// AvgConnectivity is the mean degree of the sig OTUs,
// sum(d * hist[d]) / sum(hist[d]), computed in floating point. Returns 0
// for an empty EdgeSet.
func AvgConnectivity(es *EdgeSet) float64 {
	hist := ConnectionAbundance(es)
	if len(hist) == 0 {
		return 0
	}

	x := make([]float64, len(hist))
	w := make([]float64, len(hist))
	for d, c := range hist {
		x[d] = float64(d)
		w[d] = float64(c)
	}

	return stat.Mean(x, w)
}

// OTUConnectivity ranks the sig OTUs by degree, highest first. Ties keep
// SigOTUs order (stable sort).
func OTUConnectivity(es *EdgeSet) []NodeDegree {
	deg := Degrees(es)
	out := make([]NodeDegree, len(es.nodes))
	for i, id := range es.nodes {
		out[i] = NodeDegree{ID: id, Degree: deg[id]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Degree > out[j].Degree })

	return out
}

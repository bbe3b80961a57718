// SPDX-License-Identifier: MIT
// Package: presets
//
// Purpose:
//   - One constructor per tool, each returning a network.Network over the
//     normalized output of that tool.
//   - Build dispatches a Config over a Source.

package presets

import (
	"github.com/afcarl/correlations/matrix"
	"github.com/afcarl/correlations/network"
)

// Source is the normalized output of one tool run. Matrix tools fill IDs,
// Scores and (optionally) PValues; itemized tools fill Edges, LSA fills Rows.
type Source struct {
	IDs     []string
	Scores  [][]float64
	PValues [][]float64
	Edges   []network.Tuple
	Rows    []LSARow
}

// Build runs the preset named by cfg over src.
// Errors:
//   - threshold.ErrInvalidConfig, ErrUnknownMethod, ErrMissingColumn and
//     the construction errors of matrix.NewCorrelationMatrix.
func Build(cfg Config, src Source, opts ...network.Option) (*network.Network, error) {
	m, err := cfg.Tool()
	if err != nil {
		return nil, err
	}
	p, err := cfg.Policy()
	if err != nil {
		return nil, presetErrorf(m.String(), err)
	}
	all, err := cfg.Options(opts...)
	if err != nil {
		return nil, err
	}

	if m == LSA {
		filter := cfg.LSAFilter
		if filter == "" {
			filter = DefaultLSAFilter
		}
		tuples, err := LSATuples(src.Rows, filter)
		if err != nil {
			return nil, err
		}
		return network.NewEdgeListNetwork(tuples, p, all...)
	}
	if m.Itemized() {
		return network.NewEdgeListNetwork(src.Edges, p, all...)
	}

	var mopts []matrix.Option
	if m == Naive {
		mopts = append(mopts, matrix.WithNaNPValuesAsOne())
	}
	pvalues := src.PValues
	if m == BrayCurtis || m == MIC {
		pvalues = nil
	}
	cm, err := matrix.NewCorrelationMatrix(src.IDs, src.Scores, pvalues, mopts...)
	if err != nil {
		return nil, presetErrorf(m.String(), err)
	}

	return network.NewMatrixNetwork(cm, p, all...)
}

// NewSparCC keeps pairs whose bootstrapped p-value is <= sig and, when
// pearsonFilter is set, whose |correlation| is >= *pearsonFilter.
func NewSparCC(ids []string, corr, pvals [][]float64, sig float64, pearsonFilter *float64, opts ...network.Option) (*network.Network, error) {
	cfg := Config{Method: SparCC.String(), SigLvl: sig, PearsonFilter: pearsonFilter}
	return Build(cfg, Source{IDs: ids, Scores: corr, PValues: pvals}, opts...)
}

// NewNaive sanitises NaN p-values (p=1, score=0) and keeps pairs with
// p <= sig, or the two empirical score tails when empirical is set.
func NewNaive(ids []string, corr, pvals [][]float64, sig float64, empirical bool, opts ...network.Option) (*network.Network, error) {
	cfg := Config{Method: Naive.String(), SigLvl: sig, Empirical: empirical}
	return Build(cfg, Source{IDs: ids, Scores: corr, PValues: pvals}, opts...)
}

// NewBrayCurtis keeps the sig fraction of smallest dissimilarities.
// sig must be > 0.
func NewBrayCurtis(ids []string, dissim [][]float64, sig float64, opts ...network.Option) (*network.Network, error) {
	cfg := Config{Method: BrayCurtis.String(), SigLvl: sig}
	return Build(cfg, Source{IDs: ids, Scores: dissim}, opts...)
}

// NewMIC keeps the sig fraction of largest information coefficients.
// sig must be > 0.
func NewMIC(ids []string, mic [][]float64, sig float64, opts ...network.Option) (*network.Network, error) {
	cfg := Config{Method: MIC.String(), SigLvl: sig}
	return Build(cfg, Source{IDs: ids, Scores: mic}, opts...)
}

// NewLSA keeps rows whose p-value for the chosen sub-score is strictly
// below sig. With redundant set, (b,a) rows after (a,b) are dropped.
func NewLSA(rows []LSARow, filter string, sig float64, redundant bool, opts ...network.Option) (*network.Network, error) {
	cfg := Config{Method: LSA.String(), SigLvl: sig, LSAFilter: filter, Redundant: redundant}
	return Build(cfg, Source{Rows: rows}, opts...)
}

// NewCoNet keeps every listed edge with the interaction CoNet reported.
func NewCoNet(edges []network.Tuple, opts ...network.Option) (*network.Network, error) {
	return Build(Config{Method: CoNet.String()}, Source{Edges: edges}, opts...)
}

// NewRMT keeps every listed edge and classifies it by score sign.
func NewRMT(edges []network.Tuple, opts ...network.Option) (*network.Network, error) {
	return Build(Config{Method: RMT.String()}, Source{Edges: edges}, opts...)
}

// Rethreshold moves n to the significance level of cfg.
func Rethreshold(n *network.Network, cfg Config) error {
	p, err := cfg.Policy()
	if err != nil {
		return err
	}

	return n.ChangeSignificance(p)
}

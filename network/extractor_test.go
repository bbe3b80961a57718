// SPDX-License-Identifier: MIT

package network_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/afcarl/correlations/matrix"
	"github.com/afcarl/correlations/network"
	"github.com/afcarl/correlations/threshold"
)

// randomSymmetric returns a symmetric n×n score matrix and a matching
// p-value matrix, with a few deliberate ties in the scores.
func randomSymmetric(r *rand.Rand, n int) ([]string, [][]float64, [][]float64) {
	ids := make([]string, n)
	scores := make([][]float64, n)
	pvals := make([][]float64, n)
	for i := 0; i < n; i++ {
		ids[i] = "otu" + string(rune('a'+i))
		scores[i] = make([]float64, n)
		pvals[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := math.Round((r.Float64()*2-1)*10) / 10 // one decimal -> ties
			p := r.Float64()
			scores[i][j], scores[j][i] = v, v
			pvals[i][j], pvals[j][i] = p, p
		}
		scores[i][i] = 1
	}

	return ids, scores, pvals
}

// ExtractorSuite covers matrix and edge-list extraction.
type ExtractorSuite struct {
	suite.Suite
}

// TestNoDuplicatesNoSelfPairs checks every strategy on random matrices.
func (s *ExtractorSuite) TestNoDuplicatesNoSelfPairs() {
	r := rand.New(rand.NewSource(7))
	policies := []threshold.Policy{
		threshold.MustNew(threshold.Fixed, 0.3),
		threshold.MustNew(threshold.Fixed, 0.3, threshold.WithMagnitudeFilter(0.4)),
		threshold.MustNew(threshold.TwoTailed, 0.2),
		threshold.MustNew(threshold.LowerTail, 0.15),
		threshold.MustNew(threshold.UpperTail, 0.15),
	}
	for trial := 0; trial < 20; trial++ {
		n := 2 + r.Intn(10)
		ids, scores, pvals := randomSymmetric(r, n)
		cm, err := matrix.NewCorrelationMatrix(ids, scores, pvals)
		require.NoError(s.T(), err)

		for _, p := range policies {
			es, err := network.NewExtractor(p).FromMatrix(cm)
			require.NoError(s.T(), err)

			seen := map[[2]string]bool{}
			for _, e := range es.Edges() {
				require.NotEqual(s.T(), e.OTU1, e.OTU2, "self pair under %s", p)
				i, _ := cm.IndexOf(e.OTU1)
				j, _ := cm.IndexOf(e.OTU2)
				require.Less(s.T(), i, j, "lower triangle pair under %s", p)
				require.False(s.T(), seen[[2]string{e.OTU1, e.OTU2}], "duplicate under %s", p)
				require.False(s.T(), seen[[2]string{e.OTU2, e.OTU1}], "mirrored duplicate under %s", p)
				seen[[2]string{e.OTU1, e.OTU2}] = true
			}
		}
	}
}

// TestFixedExactSet compares against the brute-force definition.
func (s *ExtractorSuite) TestFixedExactSet() {
	r := rand.New(rand.NewSource(11))
	ids, scores, pvals := randomSymmetric(r, 9)
	cm, err := matrix.NewCorrelationMatrix(ids, scores, pvals)
	require.NoError(s.T(), err)

	es, err := network.NewExtractor(threshold.MustNew(threshold.Fixed, 0.25, threshold.WithMagnitudeFilter(0.3))).FromMatrix(cm)
	require.NoError(s.T(), err)

	var want []network.Edge
	for i := 0; i < 9; i++ {
		for j := i + 1; j < 9; j++ {
			if pvals[i][j] <= 0.25 && math.Abs(scores[i][j]) >= 0.3 {
				in := network.Copresence
				if scores[i][j] < 0 {
					in = network.MutualExclusion
				}
				want = append(want, network.Edge{OTU1: ids[i], OTU2: ids[j], Score: scores[i][j], PValue: pvals[i][j], Interaction: in})
			}
		}
	}
	require.Equal(s.T(), want, es.Edges())
}

// TestTwoTailedZeroIsEmpty holds regardless of matrix contents.
func (s *ExtractorSuite) TestTwoTailedZeroIsEmpty() {
	r := rand.New(rand.NewSource(3))
	ids, scores, _ := randomSymmetric(r, 8)
	cm, err := matrix.NewCorrelationMatrix(ids, scores, nil)
	require.NoError(s.T(), err)

	es, err := network.NewExtractor(threshold.MustNew(threshold.TwoTailed, 0)).FromMatrix(cm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, es.Len())
	require.Empty(s.T(), es.SigOTUs())
}

// TestSignedAndUnsigned classifies the zero boundary as copresence.
func (s *ExtractorSuite) TestSignedAndUnsigned() {
	cm, err := matrix.NewCorrelationMatrix(
		[]string{"A", "B", "C"},
		[][]float64{{0, 0, -0.6}, {0, 0, 0.1}, {-0.6, 0.1, 0}},
		[][]float64{{1, 0.01, 0.01}, {0.01, 1, 0.01}, {0.01, 0.01, 1}},
	)
	require.NoError(s.T(), err)
	p := threshold.MustNew(threshold.Fixed, 0.05)

	es, err := network.NewExtractor(p).FromMatrix(cm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []network.Interaction{network.Copresence, network.MutualExclusion, network.Copresence}, es.Interactions())
	require.Equal(s.T(), []string{"A", "A", "B"}, es.OTU1())
	require.Equal(s.T(), []string{"B", "C", "C"}, es.OTU2())
	require.Equal(s.T(), []float64{0, -0.6, 0.1}, es.Scores())
	require.Equal(s.T(), []float64{0.01, 0.01, 0.01}, es.PValues())
	require.Equal(s.T(), []string{"A", "B", "C"}, es.SigOTUs())

	es, err = network.NewExtractor(p, network.WithClassifier(network.Unsigned)).FromMatrix(cm)
	require.NoError(s.T(), err)
	for _, in := range es.Interactions() {
		require.Equal(s.T(), network.Copresence, in)
	}
}

// TestMatrixWithoutPValues reports NaN p-values on quantile edges and
// rejects a Fixed policy.
func (s *ExtractorSuite) TestMatrixWithoutPValues() {
	cm, err := matrix.NewCorrelationMatrix([]string{"x", "y"}, [][]float64{{0, 0.4}, {0.4, 0}}, nil)
	require.NoError(s.T(), err)

	es, err := network.NewExtractor(threshold.MustNew(threshold.UpperTail, 1)).FromMatrix(cm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, es.Len())
	require.True(s.T(), math.IsNaN(es.Edge(0).PValue))

	_, err = network.NewExtractor(threshold.MustNew(threshold.Fixed, 0.05)).FromMatrix(cm)
	require.ErrorIs(s.T(), err, threshold.ErrInvalidConfig)

	_, err = network.NewExtractor(threshold.MustNew(threshold.Fixed, 0.05)).FromMatrix(nil)
	require.ErrorIs(s.T(), err, network.ErrNilSource)
}

// TestEmptyInputWarning logs and returns an empty set.
func (s *ExtractorSuite) TestEmptyInputWarning() {
	core, logs := observer.New(zapcore.WarnLevel)
	x := network.NewExtractor(threshold.MustNew(threshold.Fixed, 0.05), network.WithLogger(zap.New(core)))

	cm, err := matrix.NewCorrelationMatrix(nil, nil, [][]float64{})
	require.NoError(s.T(), err)
	es, err := x.FromMatrix(cm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, es.Len())

	es, err = x.FromEdgeList(nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, es.Len())

	require.Equal(s.T(), 2, logs.FilterMessageSnippet("no candidate pairs").Len())
}

// TestDeviationWarning logs tie-induced over-selection.
func (s *ExtractorSuite) TestDeviationWarning() {
	core, logs := observer.New(zapcore.WarnLevel)
	cm, err := matrix.NewCorrelationMatrix(
		[]string{"A", "B", "C"},
		[][]float64{{0, 0.2, -0.6}, {0.2, 0, 0.1}, {-0.6, 0.1, 0}},
		nil,
	)
	require.NoError(s.T(), err)

	es, err := network.NewExtractor(threshold.MustNew(threshold.TwoTailed, 0.67), network.WithLogger(zap.New(core))).FromMatrix(cm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, es.Len())
	require.Equal(s.T(), 1.0, es.ActualSigLvl())
	require.Equal(s.T(), 0.67, es.RequestedSigLvl())
	require.Equal(s.T(), 0.2, es.Bounds().Lower)

	entries := logs.FilterMessageSnippet("significance level differs").All()
	require.Len(s.T(), entries, 1)
	require.Equal(s.T(), 1.0, entries[0].ContextMap()["actual"])
}

// TestEdgeListRedundant keeps the first orientation of each pair.
func (s *ExtractorSuite) TestEdgeListRedundant() {
	tuples := []network.Tuple{
		{ID1: "a", ID2: "a", Score: 1, PValue: 0},
		{ID1: "a", ID2: "b", Score: 0.5, PValue: 0.001},
		{ID1: "a", ID2: "c", Score: -0.4, PValue: 0.2},
		{ID1: "b", ID2: "a", Score: 0.5, PValue: 0.001},
		{ID1: "b", ID2: "b", Score: 1, PValue: 0},
		{ID1: "b", ID2: "c", Score: -0.7, PValue: 0.0001},
		{ID1: "c", ID2: "a", Score: -0.4, PValue: 0.2},
		{ID1: "c", ID2: "b", Score: -0.7, PValue: 0.0001},
		{ID1: "c", ID2: "c", Score: 1, PValue: 0},
	}
	require.True(s.T(), network.DetectRedundant(tuples))
	require.False(s.T(), network.DetectRedundant(tuples[1:]))

	p := threshold.MustNew(threshold.Fixed, 0.01, threshold.WithStrictCutoff())
	es, err := network.NewExtractor(p, network.WithRedundant(true)).FromEdgeList(tuples)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []network.Edge{
		{OTU1: "a", OTU2: "b", Score: 0.5, PValue: 0.001, Interaction: network.Copresence},
		{OTU1: "b", OTU2: "c", Score: -0.7, PValue: 0.0001, Interaction: network.MutualExclusion},
	}, es.Edges())
	require.Equal(s.T(), []string{"a", "b", "c"}, es.SigOTUs())
	require.InDelta(s.T(), 2.0/3.0, es.ActualSigLvl(), 1e-12)

	// Without the redundancy flag mirrored rows survive (self-pairs never do).
	es, err = network.NewExtractor(p).FromEdgeList(tuples)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, es.Len())
}

// TestEdgeListGivenLabels keeps delivered interactions.
func (s *ExtractorSuite) TestEdgeListGivenLabels() {
	tuples := []network.Tuple{
		{ID1: "o1", ID2: "o4", Score: 1.3, PValue: 0.01, Interaction: "mutualExclusion"},
		{ID1: "o13", ID2: "o38", Score: -1.2, PValue: 0.02, Interaction: "copresence"},
		{ID1: "o2", ID2: "o3", Score: -0.2, PValue: 0.03},
	}
	es, err := network.NewExtractor(threshold.Policy{}, network.WithClassifier(network.Given), network.WithPrefiltered()).FromEdgeList(tuples)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []network.Interaction{network.MutualExclusion, network.Copresence, network.MutualExclusion}, es.Interactions())
	require.Equal(s.T(), 1.0, es.ActualSigLvl())

	tuples[0].Interaction = "neutral"
	_, err = network.NewExtractor(threshold.Policy{}, network.WithClassifier(network.Given), network.WithPrefiltered()).FromEdgeList(tuples)
	require.ErrorIs(s.T(), err, network.ErrUnknownInteraction)
}

// TestEdgeListQuantile computes bounds over the candidate tuples only.
func (s *ExtractorSuite) TestEdgeListQuantile() {
	tuples := []network.Tuple{
		{ID1: "a", ID2: "b", Score: 0.9},
		{ID1: "a", ID2: "c", Score: 0.1},
		{ID1: "b", ID2: "c", Score: 0.5},
		{ID1: "c", ID2: "b", Score: 0.5},
		{ID1: "a", ID2: "a", Score: 5},
	}
	es, err := network.NewExtractor(threshold.MustNew(threshold.UpperTail, 0.34), network.WithRedundant(true), network.WithClassifier(network.Unsigned)).FromEdgeList(tuples)
	require.NoError(s.T(), err)
	// candidates: 0.9, 0.1, 0.5 -> m=3, 3 - round(1.02) = 2 -> 0.9
	require.Equal(s.T(), 1, es.Len())
	require.Equal(s.T(), "a", es.Edge(0).OTU1)
	require.Equal(s.T(), "b", es.Edge(0).OTU2)
}

// TestInteractionText round-trips the labels.
func (s *ExtractorSuite) TestInteractionText() {
	var in network.Interaction
	require.NoError(s.T(), in.UnmarshalText([]byte("MutualExclusion")))
	require.Equal(s.T(), network.MutualExclusion, in)
	b, err := in.MarshalText()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "mutualExclusion", string(b))
	require.Equal(s.T(), -1.0, in.Sign())
	require.Equal(s.T(), 1.0, network.Copresence.Sign())
	require.Error(s.T(), in.UnmarshalText([]byte("x")))
	require.Equal(s.T(), "interaction(7)", network.Interaction(7).String())
	require.Equal(s.T(), "given", network.Given.String())
}

// TestExtractorSuite runs ExtractorSuite.
func TestExtractorSuite(t *testing.T) {
	suite.Run(t, new(ExtractorSuite))
}

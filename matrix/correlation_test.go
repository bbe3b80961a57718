// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/afcarl/correlations/matrix"
)

// CorrelationSuite exercises construction and read access of CorrelationMatrix.
type CorrelationSuite struct {
	suite.Suite
}

// TestAccessors verifies ids, scores and p-values are reachable by index.
func (s *CorrelationSuite) TestAccessors() {
	cm := MustCorrelation(s.T(), triIDs, triScores, triPValues)
	require.Equal(s.T(), 3, cm.Len())
	require.Equal(s.T(), 3, cm.PairCount())
	require.Equal(s.T(), triIDs, cm.IDs())
	require.True(s.T(), cm.HasPValues())

	v, err := cm.Score(0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), -0.6, v)

	p, err := cm.PValue(1, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.01, p)

	i, ok := cm.IndexOf("C")
	require.True(s.T(), ok)
	require.Equal(s.T(), 2, i)
	_, ok = cm.IndexOf("Z")
	require.False(s.T(), ok)
}

// TestInputsAreCopied ensures later mutation of the caller's slices has no effect.
func (s *CorrelationSuite) TestInputsAreCopied() {
	scores := [][]float64{{0, 1}, {1, 0}}
	ids := []string{"x", "y"}
	cm := MustCorrelation(s.T(), ids, scores, nil)
	scores[0][1] = 42
	ids[0] = "mutated"

	v, err := cm.Score(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, v)
	require.Equal(s.T(), "x", cm.ID(0))

	// Returned copies are independent too.
	out := cm.IDs()
	out[1] = "z"
	require.Equal(s.T(), "y", cm.ID(1))
}

// TestAbsentPValues reports NaN for every cell.
func (s *CorrelationSuite) TestAbsentPValues() {
	cm := MustCorrelation(s.T(), triIDs, triScores, nil)
	require.False(s.T(), cm.HasPValues())
	require.Nil(s.T(), cm.PValues())

	p, err := cm.PValue(0, 1)
	require.NoError(s.T(), err)
	require.True(s.T(), math.IsNaN(p))
	require.True(s.T(), math.IsNaN(cm.PairPValue(matrix.Pair{I: 0, J: 1})))

	_, err = cm.PValue(5, 0)
	require.ErrorIs(s.T(), err, matrix.ErrOutOfRange)
}

// TestShapeErrors covers every ShapeError path.
func (s *CorrelationSuite) TestShapeErrors() {
	cases := []struct {
		name    string
		ids     []string
		scores  [][]float64
		pvalues [][]float64
	}{
		{"ragged scores", []string{"a", "b"}, [][]float64{{0, 1}, {1}}, nil},
		{"non-square scores", []string{"a", "b"}, [][]float64{{0, 1, 2}, {1, 0, 2}}, nil},
		{"id count", []string{"a"}, [][]float64{{0, 1}, {1, 0}}, nil},
		{"pvalue order", []string{"a", "b"}, [][]float64{{0, 1}, {1, 0}}, [][]float64{{0}}},
		{"ragged pvalues", []string{"a", "b"}, [][]float64{{0, 1}, {1, 0}}, [][]float64{{0, 1}, {1, 0, 3}}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := matrix.NewCorrelationMatrix(tc.ids, tc.scores, tc.pvalues)
			require.Error(s.T(), err)
			require.True(s.T(), errors.Is(err, matrix.ErrShape), "got %v", err)
		})
	}
}

// TestDuplicateIDs rejects repeated feature ids.
func (s *CorrelationSuite) TestDuplicateIDs() {
	_, err := matrix.NewCorrelationMatrix([]string{"a", "a"}, [][]float64{{0, 1}, {1, 0}}, nil)
	require.ErrorIs(s.T(), err, matrix.ErrDuplicateID)
}

// TestEmpty accepts the degenerate zero-feature run.
func (s *CorrelationSuite) TestEmpty() {
	cm := MustCorrelation(s.T(), nil, nil, nil)
	require.Equal(s.T(), 0, cm.Len())
	require.Equal(s.T(), 0, cm.PairCount())
	require.Empty(s.T(), cm.UpperTriangle())
}

// TestNaNPValuesAsOne sanitises NaN p-values and zeroes their scores.
func (s *CorrelationSuite) TestNaNPValuesAsOne() {
	nan := math.NaN()
	scores := [][]float64{{0, 0.9, 0.3}, {0.9, 0, -0.8}, {0.3, -0.8, 0}}
	pvalues := [][]float64{{nan, nan, 0.2}, {nan, nan, 0.001}, {0.2, 0.001, nan}}

	cm := MustCorrelation(s.T(), triIDs, scores, pvalues, matrix.WithNaNPValuesAsOne())
	p, _ := cm.PValue(0, 1)
	require.Equal(s.T(), 1.0, p)
	v, _ := cm.Score(0, 1)
	require.Equal(s.T(), 0.0, v)
	v, _ = cm.Score(1, 2)
	require.Equal(s.T(), -0.8, v)

	// Without the option NaN survives.
	raw := MustCorrelation(s.T(), triIDs, scores, pvalues)
	p, _ = raw.PValue(0, 1)
	require.True(s.T(), math.IsNaN(p))
}

// TestSymmetryCheck is opt-in.
func (s *CorrelationSuite) TestSymmetryCheck() {
	asym := [][]float64{{0, 0.5}, {0.4, 0}}
	_, err := matrix.NewCorrelationMatrix([]string{"a", "b"}, asym, nil)
	require.NoError(s.T(), err)

	_, err = matrix.NewCorrelationMatrix([]string{"a", "b"}, asym, nil, matrix.WithSymmetryCheck(1e-9))
	require.ErrorIs(s.T(), err, matrix.ErrAsymmetry)

	_, err = matrix.NewCorrelationMatrix([]string{"a", "b"}, asym, nil, matrix.WithSymmetryCheck(0.2))
	require.NoError(s.T(), err)

	require.Panics(s.T(), func() { matrix.WithSymmetryCheck(-1) })
	require.Panics(s.T(), func() { matrix.WithSymmetryCheck(math.NaN()) })
}

// TestUpperTriangle enumerates i<j pairs in row-major order only.
func (s *CorrelationSuite) TestUpperTriangle() {
	ids := []string{"a", "b", "c", "d"}
	scores := make([][]float64, 4)
	for i := range scores {
		scores[i] = make([]float64, 4)
		for j := range scores[i] {
			scores[i][j] = float64(10*i + j)
		}
	}
	cm := MustCorrelation(s.T(), ids, scores, nil)

	pairs := cm.UpperTriangle()
	require.Equal(s.T(), []matrix.Pair{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}, pairs)
	require.Equal(s.T(), []float64{1, 2, 3, 12, 13, 23}, cm.UpperScores())

	for _, p := range pairs {
		require.Less(s.T(), p.I, p.J)
		require.Equal(s.T(), float64(10*p.I+p.J), cm.PairScore(p))
	}

	// Early stop.
	var visited int
	cm.EachUpper(func(matrix.Pair) bool {
		visited++
		return visited < 2
	})
	require.Equal(s.T(), 2, visited)
}

// TestScoresCopy returns an independent clone.
func (s *CorrelationSuite) TestScoresCopy() {
	cm := MustCorrelation(s.T(), triIDs, triScores, triPValues)
	sc := cm.Scores().(*matrix.Dense)
	require.NoError(s.T(), sc.Set(0, 1, 99))
	v, _ := cm.Score(0, 1)
	require.Equal(s.T(), 0.2, v)
	require.NotNil(s.T(), cm.PValues())
}

// TestCorrelationSuite runs CorrelationSuite.
func TestCorrelationSuite(t *testing.T) {
	suite.Run(t, new(CorrelationSuite))
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afcarl/correlations/matrix"
)

// triIDs are the ids of the three-feature fixture.
var triIDs = []string{"A", "B", "C"}

// triScores is a symmetric 3×3 score fixture with a meaningless diagonal.
var triScores = [][]float64{
	{0, 0.2, -0.6},
	{0.2, 0, 0.1},
	{-0.6, 0.1, 0},
}

// triPValues is the p-value companion of triScores.
var triPValues = [][]float64{
	{1, 0.01, 0.04},
	{0.01, 1, 0.5},
	{0.04, 0.5, 1},
}

// MustCorrelation builds a CorrelationMatrix or aborts the test.
func MustCorrelation(t *testing.T, ids []string, scores, pvalues [][]float64, opts ...matrix.Option) *matrix.CorrelationMatrix {
	t.Helper()
	cm, err := matrix.NewCorrelationMatrix(ids, scores, pvalues, opts...)
	require.NoError(t, err)

	return cm
}

// SPDX-License-Identifier: MIT

package network_test

import (
	"fmt"

	"github.com/afcarl/correlations/matrix"
	"github.com/afcarl/correlations/network"
	"github.com/afcarl/correlations/threshold"
)

// ExampleNetwork_ChangeSignificance re-thresholds a small matrix.
func ExampleNetwork_ChangeSignificance() {
	cm, err := matrix.NewCorrelationMatrix(
		[]string{"A", "B", "C"},
		[][]float64{{0, 0.2, -0.6}, {0.2, 0, 0.1}, {-0.6, 0.1, 0}},
		[][]float64{{1, 0.01, 0.04}, {0.01, 1, 0.5}, {0.04, 0.5, 1}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	n, err := network.NewMatrixNetwork(cm, threshold.MustNew(threshold.Fixed, 0.05))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range n.EdgeSet().Edges() {
		fmt.Println(e.OTU1, e.OTU2, e.Score, e.Interaction)
	}

	_ = n.ChangeSignificance(threshold.MustNew(threshold.Fixed, 0.02))
	fmt.Println(n.EdgeSet().Len(), n.EdgeSet().SigOTUs())
	// Output:
	// A B 0.2 copresence
	// A C -0.6 mutualExclusion
	// 1 [A B]
}

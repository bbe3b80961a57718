// SPDX-License-Identifier: MIT

package network

import (
	"sync/atomic"

	"github.com/afcarl/correlations/matrix"
	"github.com/afcarl/correlations/threshold"
)

// Network binds one immutable source (a CorrelationMatrix or an itemized
// edge list) to its current EdgeSet.
//
// The EdgeSet is replaced as a unit by ChangeSignificance; readers either
// see the old set or the new one, never a partial rebuild. Distinct
// Networks share no mutable state.
type Network struct {
	cm     *matrix.CorrelationMatrix // nil for edge-list sources
	tuples []Tuple                   // nil for matrix sources
	nodes  int                       // total node count N
	opts   []Option

	current atomic.Pointer[EdgeSet]
}

// NewMatrixNetwork extracts the initial EdgeSet of cm under p.
// Errors are those of Extractor.FromMatrix.
func NewMatrixNetwork(cm *matrix.CorrelationMatrix, p threshold.Policy, opts ...Option) (*Network, error) {
	if cm == nil {
		return nil, networkErrorf("NewMatrixNetwork", ErrNilSource)
	}
	n := &Network{cm: cm, nodes: cm.Len(), opts: opts}
	if err := n.ChangeSignificance(p); err != nil {
		return nil, err
	}

	return n, nil
}

// NewEdgeListNetwork extracts the initial EdgeSet of an itemized table.
// The tuples are copied. N is the number of distinct ids in the table.
func NewEdgeListNetwork(tuples []Tuple, p threshold.Policy, opts ...Option) (*Network, error) {
	cp := make([]Tuple, len(tuples))
	copy(cp, tuples)

	ids := make(map[string]struct{})
	for _, t := range cp {
		ids[t.ID1] = struct{}{}
		ids[t.ID2] = struct{}{}
	}
	n := &Network{tuples: cp, nodes: len(ids), opts: opts}
	if err := n.ChangeSignificance(p); err != nil {
		return nil, err
	}

	return n, nil
}

// ChangeSignificance rebuilds the EdgeSet and everything derived from it at
// policy p, from the untouched source. On error the previous EdgeSet stays
// current.
func (n *Network) ChangeSignificance(p threshold.Policy) error {
	x := NewExtractor(p, n.opts...)

	var (
		es  *EdgeSet
		err error
	)
	if n.cm != nil {
		es, err = x.FromMatrix(n.cm)
	} else {
		es, err = x.FromEdgeList(n.tuples)
	}
	if err != nil {
		return err
	}
	n.current.Store(es)

	return nil
}

// EdgeSet returns the current EdgeSet.
func (n *Network) EdgeSet() *EdgeSet { return n.current.Load() }

// Matrix returns the matrix source, or nil for edge-list networks.
func (n *Network) Matrix() *matrix.CorrelationMatrix { return n.cm }

// Nodes returns the total node count N used by ConnectionFraction.
func (n *Network) Nodes() int { return n.nodes }

// Stats summarizes the current EdgeSet against Nodes().
func (n *Network) Stats() Stats { return Summarize(n.EdgeSet(), n.nodes) }

// SPDX-License-Identifier: MIT
// Package: network
//
// Purpose:
//   - Extractor: policy + classifier applied to a matrix upper triangle or
//     to an itemized edge list, producing an EdgeSet.
//
// Determinism:
//   - Matrix edges are emitted row-major over (i,j), i<j.
//   - Edge-list edges keep input order.

package network

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/afcarl/correlations/matrix"
	"github.com/afcarl/correlations/threshold"
)

const (
	opFromMatrix   = "FromMatrix"
	opFromEdgeList = "FromEdgeList"
)

// Option configures an Extractor or a Network.
type Option func(*config)

type config struct {
	classifier  Classifier
	logger      *zap.Logger
	redundant   bool
	prefiltered bool
}

func defaultConfig() config {
	return config{classifier: Signed, logger: zap.NewNop()}
}

func gatherConfig(opts ...Option) config {
	c := defaultConfig()
	for _, set := range opts {
		set(&c)
	}

	return c
}

// WithClassifier sets the interaction classifier (default Signed).
func WithClassifier(c Classifier) Option {
	return func(cfg *config) { cfg.classifier = c }
}

// WithLogger sets the logger used for warnings (default no-op).
// A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithRedundant declares that an edge list lists every pair in both orders
// (id_a,id_b and id_b,id_a); only the first occurrence is kept.
func WithRedundant(redundant bool) Option {
	return func(cfg *config) { cfg.redundant = redundant }
}

// WithPrefiltered declares that an edge list contains only edges the tool
// already judged significant; the policy is then not consulted.
func WithPrefiltered() Option {
	return func(cfg *config) { cfg.prefiltered = true }
}

// Extractor turns significant pairs into edges.
type Extractor struct {
	policy threshold.Policy
	cfg    config
}

// NewExtractor returns an Extractor for policy p.
func NewExtractor(p threshold.Policy, opts ...Option) *Extractor {
	return &Extractor{policy: p, cfg: gatherConfig(opts...)}
}

// Policy returns the extractor's policy.
func (x *Extractor) Policy() threshold.Policy { return x.policy }

// FromMatrix extracts the significant upper-triangle pairs of cm.
// Implementation:
//   - Stage 1: degenerate input (no pairs) logs ErrEmptyInput and returns
//     an empty set.
//   - Stage 2: the policy selects pairs over the upper triangle.
//   - Stage 3: each selected pair becomes one Edge, classified by score.
//
// Errors:
//   - ErrNilSource; threshold.ErrInvalidConfig (Fixed without p-values).
//
// Complexity:
//   - Time O(n² + k log k), Space O(k) for k = n(n-1)/2.
func (x *Extractor) FromMatrix(cm *matrix.CorrelationMatrix) (*EdgeSet, error) {
	if cm == nil {
		return nil, networkErrorf(opFromMatrix, ErrNilSource)
	}

	sel, pairs, err := x.policy.Select(cm)
	if err != nil {
		return nil, networkErrorf(opFromMatrix, err)
	}
	if sel.Candidates == 0 {
		x.warnEmpty(opFromMatrix, cm.Len())
	}

	es := &EdgeSet{
		edges:     make([]Edge, 0, len(pairs)),
		policy:    x.policy,
		bounds:    sel.Bounds,
		requested: sel.Requested,
		actual:    sel.Actual,
	}
	seen := make([]bool, cm.Len())
	for _, p := range pairs {
		score := cm.PairScore(p)
		es.edges = append(es.edges, Edge{
			OTU1:        cm.ID(p.I),
			OTU2:        cm.ID(p.J),
			Score:       score,
			PValue:      cm.PairPValue(p),
			Interaction: x.cfg.classifier.Classify(score),
		})
		seen[p.I] = true
		seen[p.J] = true
	}
	for i, ok := range seen {
		if ok {
			es.nodes = append(es.nodes, cm.ID(i))
		}
	}
	x.reportDeviation(opFromMatrix, sel)

	return es, nil
}

// FromEdgeList extracts significant tuples, preserving input order.
// Implementation:
//   - Stage 1: drop self-pairs; with WithRedundant also drop a pair whose
//     reverse (or itself) was already seen.
//   - Stage 2: unless prefiltered, the policy selects among the remaining
//     candidates (quantile bounds come from their unique scores).
//   - Stage 3: classify; Given keeps a delivered label.
//
// Errors:
//   - ErrUnknownInteraction for an unparsable label under Given.
//
// Complexity:
//   - Time O(t log t), Space O(t) for t tuples.
func (x *Extractor) FromEdgeList(tuples []Tuple) (*EdgeSet, error) {
	cand := x.candidates(tuples)
	if len(cand) == 0 {
		x.warnEmpty(opFromEdgeList, len(tuples))
	}

	var sel threshold.Selection
	if x.cfg.prefiltered {
		sel = threshold.Selection{
			Indexes:    make([]int, len(cand)),
			Bounds:     threshold.Bounds{Lower: math.Inf(-1), Upper: math.Inf(1)},
			Candidates: len(cand),
			Requested:  x.policy.SigLvl(),
		}
		for i := range cand {
			sel.Indexes[i] = i
		}
		if len(cand) > 0 {
			sel.Actual = 1
		}
	} else {
		scores := make([]float64, len(cand))
		pvalues := make([]float64, len(cand))
		for i, t := range cand {
			scores[i] = t.Score
			pvalues[i] = t.PValue
		}
		var err error
		if sel, err = x.policy.SelectValues(scores, pvalues); err != nil {
			return nil, networkErrorf(opFromEdgeList, err)
		}
	}

	es := &EdgeSet{
		edges:     make([]Edge, 0, len(sel.Indexes)),
		policy:    x.policy,
		bounds:    sel.Bounds,
		requested: sel.Requested,
		actual:    sel.Actual,
	}
	seen := make(map[string]struct{})
	addNode := func(id string) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			es.nodes = append(es.nodes, id)
		}
	}
	for _, idx := range sel.Indexes {
		t := cand[idx]
		in := x.cfg.classifier.Classify(t.Score)
		if x.cfg.classifier == Given && t.Interaction != "" {
			var err error
			if in, err = ParseInteraction(t.Interaction); err != nil {
				return nil, networkErrorf(fmt.Sprintf("%s(%s,%s)", opFromEdgeList, t.ID1, t.ID2), err)
			}
		}
		es.edges = append(es.edges, Edge{
			OTU1:        t.ID1,
			OTU2:        t.ID2,
			Score:       t.Score,
			PValue:      t.PValue,
			Interaction: in,
		})
		addNode(t.ID1)
		addNode(t.ID2)
	}
	if !x.cfg.prefiltered {
		x.reportDeviation(opFromEdgeList, sel)
	}

	return es, nil
}

// pairKey is an unordered id pair normalized to (min,max).
type pairKey struct{ a, b string }

func keyOf(id1, id2 string) pairKey {
	if id2 < id1 {
		id1, id2 = id2, id1
	}

	return pairKey{a: id1, b: id2}
}

// candidates applies the self-pair and redundancy rules.
func (x *Extractor) candidates(tuples []Tuple) []Tuple {
	out := make([]Tuple, 0, len(tuples))
	var seen map[pairKey]struct{}
	if x.cfg.redundant {
		seen = make(map[pairKey]struct{}, len(tuples)/2)
	}
	for _, t := range tuples {
		if t.ID1 == t.ID2 {
			continue
		}
		if seen != nil {
			k := keyOf(t.ID1, t.ID2)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
		}
		out = append(out, t)
	}

	return out
}

// warnEmpty logs the EmptyInputWarning.
func (x *Extractor) warnEmpty(op string, size int) {
	x.cfg.logger.Warn("no candidate pairs, returning an empty edge set",
		zap.String("op", op),
		zap.Int("input_size", size),
		zap.Error(ErrEmptyInput),
	)
}

// reportDeviation logs a requested-vs-actual mismatch of a quantile policy.
func (x *Extractor) reportDeviation(op string, sel threshold.Selection) {
	if !x.policy.Strategy().Quantile() || !sel.Deviates() || sel.Candidates == 0 {
		return
	}
	x.cfg.logger.Warn("calculated significance level differs from the requested one",
		zap.String("op", op),
		zap.Stringer("policy", x.policy),
		zap.Float64("requested", sel.Requested),
		zap.Float64("actual", sel.Actual),
	)
}

// DetectRedundant reports whether an itemized table lists pairs in both
// orders, judged by its first row: a full n² listing starts with a self-pair.
func DetectRedundant(tuples []Tuple) bool {
	return len(tuples) > 0 && tuples[0].ID1 == tuples[0].ID2
}

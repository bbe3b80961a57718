// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "cooccur"

// Metrics holds one gauge per statistic, labeled by input and policy.
type Metrics struct {
	Edges              *prometheus.GaugeVec
	Copresences        *prometheus.GaugeVec
	Exclusions         *prometheus.GaugeVec
	ConnectionFraction *prometheus.GaugeVec
	SigLevelActual     *prometheus.GaugeVec
	AvgConnectivity    *prometheus.GaugeVec
}

func newGauge(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		},
		[]string{"input", "policy"},
	)
}

// NewMetrics creates the gauges and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Edges:              newGauge("edges", "Significant edges in the network"),
		Copresences:        newGauge("copresences", "Edges classified as copresence"),
		Exclusions:         newGauge("exclusions", "Edges classified as mutual exclusion"),
		ConnectionFraction: newGauge("connection_fraction", "Edges over all possible pairs"),
		SigLevelActual:     newGauge("sig_level_actual", "Realized fraction of candidate pairs selected"),
		AvgConnectivity:    newGauge("avg_connectivity", "Mean degree of the significant features"),
	}
	for _, c := range []prometheus.Collector{
		m.Edges, m.Copresences, m.Exclusions,
		m.ConnectionFraction, m.SigLevelActual, m.AvgConnectivity,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("report: register metrics: %w", err)
		}
	}

	return m, nil
}

// Observe sets every gauge from s.
func (m *Metrics) Observe(s Summary) {
	l := prometheus.Labels{"input": s.Input, "policy": s.Policy}
	m.Edges.With(l).Set(float64(s.Stats.Edges))
	m.Copresences.With(l).Set(float64(s.Stats.Copresences))
	m.Exclusions.With(l).Set(float64(s.Stats.Exclusions))
	m.ConnectionFraction.With(l).Set(s.Stats.ConnectionFraction)
	m.SigLevelActual.With(l).Set(s.Stats.ActualSigLvl)
	m.AvgConnectivity.With(l).Set(s.Stats.AvgConnectivity)
}

// WriteTextfile writes summaries to path in the text exposition format,
// through a private registry.
func WriteTextfile(path string, summaries []Summary) error {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		m.Observe(s)
	}
	if err = prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}

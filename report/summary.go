// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/afcarl/correlations/network"
)

// Summary is the statistics of one input at one significance level.
type Summary struct {
	Input  string        `yaml:"input" json:"input"`
	Method string        `yaml:"method" json:"method"`
	Policy string        `yaml:"policy" json:"policy"`
	Stats  network.Stats `yaml:"stats" json:"stats"`
}

// Summarize captures the current EdgeSet of n.
func Summarize(input, method string, n *network.Network) Summary {
	return Summary{
		Input:  input,
		Method: method,
		Policy: n.EdgeSet().Policy().String(),
		Stats:  n.Stats(),
	}
}

// WriteYAML encodes summaries as one YAML sequence.
func WriteYAML(w io.Writer, summaries []Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("report: encode summaries: %w", err)
	}

	return enc.Close()
}

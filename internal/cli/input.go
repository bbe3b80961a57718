// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/afcarl/correlations/network"
	"github.com/afcarl/correlations/presets"
)

// ErrEmptyDocument indicates an input holding neither a matrix nor rows.
var ErrEmptyDocument = errors.New("cli: input has no ids, edges or rows")

// Document is the normalized form of one tool run. JSON inputs decode as
// YAML. Method, when present, overrides the --method flag for this input.
type Document struct {
	Method  string           `yaml:"method,omitempty"`
	IDs     []string         `yaml:"ids,omitempty"`
	Scores  [][]float64      `yaml:"scores,omitempty"`
	PValues [][]float64      `yaml:"pvalues,omitempty"`
	Edges   []network.Tuple  `yaml:"edges,omitempty"`
	Rows    []presets.LSARow `yaml:"rows,omitempty"`
}

// Source converts d for presets.Build.
func (d Document) Source() presets.Source {
	return presets.Source{IDs: d.IDs, Scores: d.Scores, PValues: d.PValues, Edges: d.Edges, Rows: d.Rows}
}

// DecodeDocument reads one document, rejecting unknown fields.
func DecodeDocument(r io.Reader) (Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, ErrEmptyDocument
		}
		return Document{}, fmt.Errorf("cli: decode: %w", err)
	}
	if d.IDs == nil && d.Scores == nil && d.Edges == nil && d.Rows == nil {
		return Document{}, ErrEmptyDocument
	}

	return d, nil
}

// ReadDocument decodes the file at path.
func ReadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("cli: %w", err)
	}
	defer f.Close()

	d, err := DecodeDocument(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// SPDX-License-Identifier: MIT
// Package: presets
//
// Purpose:
//   - Config: the run parameters of one preset, decodable from viper/YAML
//     and validated with go-playground/validator before any policy is built.

package presets

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/afcarl/correlations/network"
	"github.com/afcarl/correlations/threshold"
)

// DefaultLSAFilter is the LSA sub-score used when none is configured.
const DefaultLSAFilter = "ls"

// configValidate is shared by every Config.Validate call.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("method", validateMethod)
}

// validateMethod accepts any tag ParseMethod understands.
func validateMethod(fl validator.FieldLevel) bool {
	_, err := ParseMethod(fl.Field().String())
	return err == nil
}

// Config selects a preset and its significance parameters.
//
//   - Method: tool tag, see ParseMethod.
//   - SigLvl: p-value cutoff (SparCC, Naive, LSA) or fraction of pairs
//     (empirical Naive, BrayCurtis, MIC). Ignored by CoNet and RMT.
//   - PearsonFilter: optional |r| floor for SparCC.
//   - Empirical: Naive only, switch to the two-tailed rule.
//   - LSAFilter: LSA sub-score, one of ls, ss, sp, gs, gp.
//   - Redundant: LSA only, the table lists every pair in both orders.
type Config struct {
	Method        string   `mapstructure:"method" yaml:"method" json:"method" validate:"required,method"`
	SigLvl        float64  `mapstructure:"sig" yaml:"sig" json:"sig" validate:"gte=0"`
	PearsonFilter *float64 `mapstructure:"pearson_filter" yaml:"pearson_filter,omitempty" json:"pearson_filter,omitempty" validate:"omitempty,gte=0"`
	Empirical     bool     `mapstructure:"empirical" yaml:"empirical" json:"empirical"`
	LSAFilter     string   `mapstructure:"lsa_filter" yaml:"lsa_filter,omitempty" json:"lsa_filter,omitempty" validate:"omitempty,oneof=ls ss sp gs gp"`
	Redundant     bool     `mapstructure:"redundant" yaml:"redundant" json:"redundant"`
}

// Validate checks field constraints and that the level fits the method.
// Errors wrap threshold.ErrInvalidConfig.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return presetErrorf(fmt.Sprintf("Config.Validate: %v", err), threshold.ErrInvalidConfig)
	}
	if _, err := c.Policy(); err != nil {
		return presetErrorf("Config.Validate", err)
	}

	return nil
}

// Tool resolves the Method tag.
func (c Config) Tool() (Method, error) { return ParseMethod(c.Method) }

// Policy builds the significance rule of the configured method.
func (c Config) Policy() (threshold.Policy, error) {
	m, err := c.Tool()
	if err != nil {
		return threshold.Policy{}, err
	}

	switch m {
	case SparCC:
		if c.PearsonFilter != nil {
			if f := *c.PearsonFilter; f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
				return threshold.Policy{}, presetErrorf(fmt.Sprintf("pearson filter %g", *c.PearsonFilter), threshold.ErrInvalidConfig)
			}
			return threshold.New(threshold.Fixed, c.SigLvl, threshold.WithMagnitudeFilter(*c.PearsonFilter))
		}
		return threshold.New(threshold.Fixed, c.SigLvl)
	case Naive:
		if c.Empirical {
			return threshold.New(threshold.TwoTailed, c.SigLvl)
		}
		return threshold.New(threshold.Fixed, c.SigLvl)
	case BrayCurtis:
		return threshold.New(threshold.LowerTail, c.SigLvl)
	case MIC:
		return threshold.New(threshold.UpperTail, c.SigLvl)
	case LSA:
		return threshold.New(threshold.Fixed, c.SigLvl, threshold.WithStrictCutoff())
	default: // CoNet, RMT: the tool already filtered
		return threshold.New(threshold.Fixed, c.SigLvl)
	}
}

// Options returns the extractor options of the configured method, followed
// by extra.
func (c Config) Options(extra ...network.Option) ([]network.Option, error) {
	m, err := c.Tool()
	if err != nil {
		return nil, err
	}

	var opts []network.Option
	switch m {
	case BrayCurtis, MIC:
		opts = append(opts, network.WithClassifier(network.Unsigned))
	case LSA:
		opts = append(opts, network.WithRedundant(c.Redundant))
	case CoNet:
		opts = append(opts, network.WithClassifier(network.Given), network.WithPrefiltered())
	case RMT:
		opts = append(opts, network.WithPrefiltered())
	}

	return append(opts, extra...), nil
}

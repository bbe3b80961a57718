// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/afcarl/correlations/network"
	"github.com/afcarl/correlations/presets"
	"github.com/afcarl/correlations/report"
)

func newExtractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [flags] input.yaml...",
		Short: "Extract significant edges and print network statistics",
		Long: `Extract reads one or more normalized tool outputs, keeps the pairs that
are significant under the chosen method and prints one YAML summary per input
and significance level. Inputs are processed concurrently; each has its own
network.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args)
		},
	}

	f := cmd.Flags()
	f.String("method", "", "tool the inputs come from: "+fmt.Sprint(presets.MethodNames()))
	f.Float64("sig", 0.05, "p-value cutoff, or fraction of pairs for empirical methods")
	f.Float64("pearson-filter", 0, "sparcc: minimum |r| of a significant pair")
	f.Bool("empirical", false, "naive: select the two empirical score tails")
	f.String("lsa-filter", presets.DefaultLSAFilter, "lsa: sub-score to filter on "+fmt.Sprint(presets.LSAFilters()))
	f.Bool("redundant", false, "lsa: the table lists every pair in both orders (autodetected when unset)")
	f.Float64Slice("sweep", nil, "additional significance levels to re-threshold at")
	f.String("metrics-file", "", "write prometheus gauges to this textfile")
	f.Int("workers", runtime.GOMAXPROCS(0), "inputs processed at once")

	for key, flag := range map[string]string{
		"method":         "method",
		"sig":            "sig",
		"pearson_filter": "pearson-filter",
		"empirical":      "empirical",
		"lsa_filter":     "lsa-filter",
		"redundant":      "redundant",
		"metrics_file":   "metrics-file",
		"workers":        "workers",
	} {
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

// runConfig reads the preset configuration from viper.
func (a *app) runConfig() presets.Config {
	cfg := presets.Config{
		Method:    a.v.GetString("method"),
		SigLvl:    a.v.GetFloat64("sig"),
		Empirical: a.v.GetBool("empirical"),
		LSAFilter: a.v.GetString("lsa_filter"),
		Redundant: a.v.GetBool("redundant"),
	}
	if a.v.IsSet("pearson_filter") {
		pf := a.v.GetFloat64("pearson_filter")
		cfg.PearsonFilter = &pf
	}

	return cfg
}

func (a *app) runExtract(cmd *cobra.Command, inputs []string) error {
	logger, err := a.newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := a.runConfig()
	sweep, err := cmd.Flags().GetFloat64Slice("sweep")
	if err != nil {
		return err
	}
	workers := a.v.GetInt("workers")
	if workers < 1 {
		workers = 1
	}

	results := make([][]report.Summary, len(inputs))
	g, gCtx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, path := range inputs {
		i, path := i, path
		g.Go(func() error {
			sums, err := processInput(gCtx, path, cfg, sweep, logger.With(zap.String("input", path)))
			if err != nil {
				return err
			}
			results[i] = sums
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	var all []report.Summary
	for _, sums := range results {
		all = append(all, sums...)
	}
	if err = report.WriteYAML(cmd.OutOrStdout(), all); err != nil {
		return err
	}
	if path := a.v.GetString("metrics_file"); path != "" {
		if err = report.WriteTextfile(path, all); err != nil {
			return err
		}
		logger.Info("metrics written", zap.String("path", path), zap.Int("summaries", len(all)))
	}

	return nil
}

// processInput builds the network of one input and summarizes it at the
// configured level and at every sweep level.
func processInput(ctx context.Context, path string, cfg presets.Config, sweep []float64, logger *zap.Logger) ([]report.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	if doc.Method != "" {
		cfg.Method = doc.Method
	}
	m, err := cfg.Tool()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m == presets.LSA && !cfg.Redundant {
		cfg.Redundant = presets.DetectLSARedundant(doc.Rows)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	n, err := presets.Build(cfg, doc.Source(), network.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sums := []report.Summary{report.Summarize(path, m.String(), n)}
	logger.Debug("network extracted",
		zap.Stringer("method", m),
		zap.Int("edges", n.EdgeSet().Len()),
		zap.Int("nodes", n.Nodes()),
	)

	for _, lvl := range sweep {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		next := cfg
		next.SigLvl = lvl
		if err = presets.Rethreshold(n, next); err != nil {
			return nil, fmt.Errorf("%s: sweep %g: %w", path, lvl, err)
		}
		sums = append(sums, report.Summarize(path, m.String(), n))
	}

	return sums, nil
}

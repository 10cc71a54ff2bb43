package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
	"github.com/visgraphio/visgraph/pkg/pipeline"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		strategy   string
		configPath string
		noCache    bool
		refresh    bool
	)
	flags := newSettingsFlags()

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node positions for a graph",
		Long: `Compute node positions for a graph.

The layout command takes a graph.json file (node-link format: a "nodes" array
of ids and an "edges" array of {from, to} pairs) and computes a 2-D position
for every node. The output is a positions.json file mapping node id to {x, y},
the same format 'render -f json' produces.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			opts := pipeline.Options{
				Strategy: strategy,
				Settings: flags.apply(cmd, cfg.Layout),
				Refresh:  refresh,
				Logger:   c.Logger,
			}
			return c.runLayout(cmd.Context(), args[0], cfg, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.positions.json)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "layout strategy: force-directed (default), circular, bipartite, hierarchical, random")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: visgraph.toml if present)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")
	flags.register(cmd)

	return cmd
}

// runLayout loads the graph, computes the layout, and writes the output.
func (c *CLI) runLayout(ctx context.Context, input string, cfg *Config, opts pipeline.Options, output string, noCache bool) error {
	g, err := graph.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Strategy))
	spinner.Start()

	positions, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".positions.json"
	}

	if err := writePositionsFile(positions, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", "visgraph render "+input)

	return nil
}

// writePositionsFile writes a position map as indented JSON.
func writePositionsFile(positions layout.PositionMap, path string) error {
	data, err := json.MarshalIndent(positions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

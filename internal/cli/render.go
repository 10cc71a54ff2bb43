package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/pipeline"
)

// renderCommand creates the render command for producing artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		strategy   string
		formatsStr string
		configPath string
		noCache    bool
		refresh    bool
	)
	flags := newSettingsFlags()

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a graph to SVG, PNG, DOT or JSON",
		Long: `Render a graph to one or more artifact files.

The render command runs the full pipeline: it computes node positions with
the selected strategy, builds the scene and exports it in the requested
formats. Output files are named <base>.<format> where the base is derived
from the input file name or --output.

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
				Formats:  parseFormats(formatsStr),
				Refresh:  refresh,
				Logger:   c.Logger,
			}
			return c.runRender(cmd.Context(), args[0], cfg, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "layout strategy: force-directed (default), circular, bipartite, hierarchical, random")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: visgraph.toml if present)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")
	flags.register(cmd)

	return cmd
}

// runRender loads the graph, executes the pipeline and writes one file per
// requested format.
func (c *CLI) runRender(ctx context.Context, input string, cfg *Config, opts pipeline.Options, output string, noCache bool) error {
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

	result, err := c.executeWithProgress(ctx, runner, g, opts)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := artifactPath(output, input, format, len(opts.Formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(g.NodeCount(), g.EdgeCount(), result.CacheInfo.LayoutHit && result.CacheInfo.ExportHit)
	printKeyValue("strategy", opts.Strategy)
	printKeyValue("layout", result.Stats.LayoutTime.String())
	printKeyValue("export", result.Stats.ExportTime.String())

	return nil
}

// artifactPath derives the output file name for one format. A single-format
// --output is used verbatim; otherwise the base path gets the format as
// extension.
func artifactPath(output, input, format string, formatCount int) string {
	if output != "" && formatCount == 1 {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := filepath.Ext(base); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}

package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/visgraphio/visgraph/pkg/cache"
	"github.com/visgraphio/visgraph/pkg/errors"
	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
	"github.com/visgraphio/visgraph/pkg/observability"
	"github.com/visgraphio/visgraph/pkg/render"
	"github.com/visgraphio/visgraph/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, rasterizer and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache      cache.Cache
	Keyer      cache.Keyer
	Logger     *log.Logger
	Rasterizer render.Rasterizer
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:      c,
		Keyer:      keyer,
		Logger:     logger,
		Rasterizer: render.GraphvizRasterizer{},
	}
}

// Execute runs the complete layout → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, g graph.View, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.GraphHash = graphHash(g)

	// Stage 1: Layout
	layoutStart := time.Now()
	positions, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Positions = positions
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"strategy", opts.Strategy,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Export
	exportStart := time.Now()
	artifacts, exportHit, err := r.ExportWithCacheInfo(ctx, g, positions, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.ExportTime = time.Since(exportStart)
	result.CacheInfo.ExportHit = exportHit

	r.Logger.Info("exported artifacts",
		"formats", opts.Formats,
		"cached", exportHit,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo computes positions with caching and returns
// cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, g graph.View, opts Options) (layout.PositionMap, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.LayoutKey(graphHash(g), opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.PositionMap
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Strategy, g.NodeCount())
	positions, err := computeLayout(g, opts)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Strategy, time.Since(layoutStart), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(positions); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return positions, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, g graph.View, opts Options) (layout.PositionMap, error) {
	positions, _, err := r.ComputeLayoutWithCacheInfo(ctx, g, opts)
	return positions, err
}

// computeLayout dispatches to the layout engine, routing the progress
// callback to the force-directed simulation when one is set.
func computeLayout(g graph.View, opts Options) (layout.PositionMap, error) {
	if opts.strategy == layout.ForceDirected && opts.Progress != nil {
		return layout.ForceDirectedLayout(g, opts.Settings, opts.Progress)
	}
	return layout.Compute(g, opts.strategy, opts.Settings)
}

// ExportWithCacheInfo produces artifacts with caching and returns cache hit
// info.
func (r *Runner) ExportWithCacheInfo(ctx context.Context, g graph.View, positions layout.PositionMap, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	positionData, err := json.Marshal(positions)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize positions for cache key")
	}
	layoutHash := cache.Hash(positionData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	exported := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		exportStart := time.Now()
		observability.Pipeline().OnExportStart(ctx, format)
		data, err := r.export(ctx, g, positions, format, opts)
		observability.Pipeline().OnExportComplete(ctx, format, len(data), time.Since(exportStart), err)
		if err != nil {
			return nil, false, err
		}
		exported[format] = data
	}

	for format, data := range exported {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return exported, false, nil
}

// Export is a convenience wrapper that discards the cache hit info.
func (r *Runner) Export(ctx context.Context, g graph.View, positions layout.PositionMap, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.ExportWithCacheInfo(ctx, g, positions, opts)
	return artifacts, err
}

// export produces a single artifact.
func (r *Runner) export(ctx context.Context, g graph.View, positions layout.PositionMap, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		sc, err := scene.Build(g, positions, opts.Settings)
		if err != nil {
			return nil, err
		}
		return scene.RenderSVG(sc), nil

	case FormatDOT:
		return []byte(render.ToDOT(g, positions, opts.Settings)), nil

	case FormatPNG:
		dot := render.ToDOT(g, positions, opts.Settings)
		return r.Rasterizer.Rasterize(ctx, []byte(dot))

	case FormatJSON:
		return json.MarshalIndent(positions, "", "  ")

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q", format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// graphHash returns the content hash of a graph view.
func graphHash(g graph.View) string {
	data, err := graph.Marshal(g)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

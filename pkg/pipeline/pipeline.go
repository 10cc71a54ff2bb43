// Package pipeline provides the core render pipeline for visgraph.
//
// This package implements the complete layout → export pipeline that can be
// used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compute node positions for the graph with the selected strategy
//  2. Export: Serialize the result in one or more formats (SVG, PNG, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline,
// and each stage result is cached under a content-derived key.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Strategy: "force-directed",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	positions, err := runner.ComputeLayout(ctx, g, opts)
//
//	// Export with existing positions
//	artifacts, err := runner.Export(ctx, g, positions, opts)
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/visgraphio/visgraph/pkg/cache"
	"github.com/visgraphio/visgraph/pkg/errors"
	"github.com/visgraphio/visgraph/pkg/layout"
)

// DefaultStrategy is the layout used when none is requested.
const DefaultStrategy = "force-directed"

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatDOT:  "text/vnd.graphviz",
	FormatJSON: "application/json",
}

// Options contains all configuration for the render pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Strategy selects the layout algorithm by name.
	Strategy string `json:"strategy,omitempty"`

	// Settings configures the layout engine and the exporters. The zero
	// value is replaced with layout.DefaultSettings.
	Settings layout.Settings `json:"settings,omitempty"`

	// Formats lists the artifacts to produce. Defaults to ["svg"].
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache and recomputes everything.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger     `json:"-"`
	Progress layout.Progress `json:"-"`

	// strategy is the parsed form of Strategy.
	strategy layout.Strategy
	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	strategy, err := layout.ParseStrategy(o.Strategy)
	if err != nil {
		return err
	}
	o.strategy = strategy

	if o.Settings == (layout.Settings{}) {
		o.Settings = layout.DefaultSettings()
	}
	if err := o.Settings.Validate(); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format %q (must be one of: svg, png, dot, json)", f)
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// SettingsHash returns a content hash of the settings for cache keys.
func (o *Options) SettingsHash() string {
	data, _ := json.Marshal(o.Settings)
	return cache.Hash(data)
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Strategy:     o.Strategy,
		SettingsHash: o.SettingsHash(),
	}
}

// ArtifactKeyOpts returns cache key options for the export stage.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		SettingsHash: o.SettingsHash(),
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Positions is the computed position map.
	Positions layout.PositionMap

	// GraphHash is the content hash of the input graph.
	GraphHash string

	// Artifacts contains exported outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
	ExportTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the position map came from cache
	ExportHit bool // Whether all artifacts came from cache
}

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/visgraphio/visgraph/pkg/cache"
	"github.com/visgraphio/visgraph/pkg/errors"
	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%q) = %v", id, err)
		}
	}
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v) = %v", e, err)
		}
	}
	return g
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() = %v", err)
	}

	if opts.Strategy != DefaultStrategy {
		t.Errorf("Strategy = %q, want %q", opts.Strategy, DefaultStrategy)
	}
	if opts.Settings.Width != layout.DefaultWidth {
		t.Errorf("Settings not defaulted: width = %v", opts.Settings.Width)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() = %v", err)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{
			name:     "unknown strategy",
			opts:     Options{Strategy: "spiral"},
			wantCode: errors.ErrCodeInvalidStrategy,
		},
		{
			name:     "invalid format",
			opts:     Options{Formats: []string{"svg", "pdf"}},
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "case-sensitive format",
			opts:     Options{Formats: []string{"SVG"}},
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "invalid settings",
			opts:     Options{Settings: layout.Settings{Width: -1, Height: 100}},
			wantCode: errors.ErrCodeInvalidSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("ValidateAndSetDefaults() = nil, want error")
			}
			if code := errors.GetCode(err); code != tt.wantCode {
				t.Errorf("GetCode(err) = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestSettingsHashDistinguishesSettings(t *testing.T) {
	a := Options{Settings: layout.DefaultSettings()}
	b := Options{Settings: layout.DefaultSettings()}
	b.Settings.Seed = 7

	if a.SettingsHash() == b.SettingsHash() {
		t.Error("different settings should hash differently")
	}
	if a.SettingsHash() != (&Options{Settings: layout.DefaultSettings()}).SettingsHash() {
		t.Error("identical settings should hash identically")
	}
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	g := testGraph(t)
	opts := Options{
		Strategy: "circular",
		Formats:  []string{FormatSVG, FormatDOT, FormatJSON},
	}

	result, err := r.Execute(ctx, g, opts)
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}

	if len(result.Positions) != 4 {
		t.Errorf("got %d positions, want 4", len(result.Positions))
	}
	if result.GraphHash == "" {
		t.Error("GraphHash should be set")
	}
	if result.Stats.NodeCount != 4 || result.Stats.EdgeCount != 3 {
		t.Errorf("Stats = %+v, want 4 nodes / 3 edges", result.Stats)
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("svg artifact does not look like SVG: %q", svg[:min(40, len(svg))])
	}
	dot := string(result.Artifacts[FormatDOT])
	if !strings.HasPrefix(dot, "digraph") {
		t.Errorf("dot artifact does not look like DOT: %q", dot[:min(40, len(dot))])
	}
	if !strings.Contains(string(result.Artifacts[FormatJSON]), `"a"`) {
		t.Error("json artifact should contain node positions")
	}
}

func TestRunnerLayoutPrecondition(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	g := graph.New()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("c", "a")

	_, err := r.Execute(ctx, g, Options{Strategy: "hierarchical"})
	if err == nil {
		t.Fatal("Execute on cyclic graph with hierarchical layout = nil error")
	}
}

func TestRunnerCaching(t *testing.T) {
	ctx := context.Background()

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	g := testGraph(t)
	opts := Options{Strategy: "circular", Formats: []string{FormatSVG}}

	first, err := r.Execute(ctx, g, opts)
	if err != nil {
		t.Fatalf("first Execute() = %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.ExportHit {
		t.Errorf("first run should miss: %+v", first.CacheInfo)
	}

	second, err := r.Execute(ctx, g, opts)
	if err != nil {
		t.Fatalf("second Execute() = %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.ExportHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from computed artifact")
	}

	// Refresh bypasses the cache
	refreshed, err := r.Execute(ctx, g, Options{Strategy: "circular", Formats: []string{FormatSVG}, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute() = %v", err)
	}
	if refreshed.CacheInfo.LayoutHit || refreshed.CacheInfo.ExportHit {
		t.Errorf("refresh run should miss: %+v", refreshed.CacheInfo)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/visgraphio/visgraph/pkg/layout"
)

// settingsFlags binds layout settings to command-line flags. Flag defaults
// show the package defaults; apply overlays only explicitly set flags onto
// the config file values, so flags always win over the file.
type settingsFlags struct {
	s layout.Settings
}

func newSettingsFlags() *settingsFlags {
	return &settingsFlags{s: layout.DefaultSettings()}
}

// register adds all layout settings flags to cmd.
func (f *settingsFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&f.s.Width, "width", f.s.Width, "canvas width")
	fl.Float64Var(&f.s.Height, "height", f.s.Height, "canvas height")
	fl.Float64Var(&f.s.MarginX, "margin-x", f.s.MarginX, "horizontal margin fraction [0, 0.5)")
	fl.Float64Var(&f.s.MarginY, "margin-y", f.s.MarginY, "vertical margin fraction [0, 0.5)")
	fl.Float64Var(&f.s.NodeRadius, "node-radius", f.s.NodeRadius, "node circle radius")
	fl.Float64Var(&f.s.NodeSpacing, "node-spacing", f.s.NodeSpacing, "target distance between adjacent nodes")
	fl.Float64Var(&f.s.LayerSpacing, "layer-spacing", f.s.LayerSpacing, "distance between hierarchical layers")
	fl.Float64Var(&f.s.MinCircleRadius, "min-circle-radius", f.s.MinCircleRadius, "lower bound for the circular ring radius")
	fl.IntVar(&f.s.Iterations, "iterations", f.s.Iterations, "force-directed iteration count")
	fl.Float64Var(&f.s.Threshold, "threshold", f.s.Threshold, "force-directed convergence threshold (0 disables)")
	fl.Float64Var(&f.s.Spring, "spring", f.s.Spring, "spring force constant")
	fl.Float64Var(&f.s.Repulsion, "repulsion", f.s.Repulsion, "repulsion force constant")
	fl.Float64Var(&f.s.IdealEdgeLength, "ideal-edge-length", f.s.IdealEdgeLength, "spring rest length (0 derives it from the drawing area)")
	fl.IntVar(&f.s.BarycenterPasses, "barycenter-passes", f.s.BarycenterPasses, "hierarchical crossing reduction sweeps")
	fl.StringVar((*string)(&f.s.Orientation), "orientation", string(f.s.Orientation), "hierarchical orientation: top-bottom, bottom-top, left-right, right-left")
	fl.Uint64Var(&f.s.Seed, "seed", f.s.Seed, "random seed for force-directed and random layouts")
	fl.BoolVar(&f.s.Labels, "labels", f.s.Labels, "draw node labels")
	fl.Float64Var(&f.s.FontSize, "font-size", f.s.FontSize, "label font size")
	fl.Float64Var(&f.s.StrokeWidth, "stroke-width", f.s.StrokeWidth, "edge stroke width")
}

// apply overlays the flags the user explicitly set onto base.
func (f *settingsFlags) apply(cmd *cobra.Command, base layout.Settings) layout.Settings {
	fl := cmd.Flags()
	overlay := map[string]func(){
		"width":             func() { base.Width = f.s.Width },
		"height":            func() { base.Height = f.s.Height },
		"margin-x":          func() { base.MarginX = f.s.MarginX },
		"margin-y":          func() { base.MarginY = f.s.MarginY },
		"node-radius":       func() { base.NodeRadius = f.s.NodeRadius },
		"node-spacing":      func() { base.NodeSpacing = f.s.NodeSpacing },
		"layer-spacing":     func() { base.LayerSpacing = f.s.LayerSpacing },
		"min-circle-radius": func() { base.MinCircleRadius = f.s.MinCircleRadius },
		"iterations":        func() { base.Iterations = f.s.Iterations },
		"threshold":         func() { base.Threshold = f.s.Threshold },
		"spring":            func() { base.Spring = f.s.Spring },
		"repulsion":         func() { base.Repulsion = f.s.Repulsion },
		"ideal-edge-length": func() { base.IdealEdgeLength = f.s.IdealEdgeLength },
		"barycenter-passes": func() { base.BarycenterPasses = f.s.BarycenterPasses },
		"orientation":       func() { base.Orientation = f.s.Orientation },
		"seed":              func() { base.Seed = f.s.Seed },
		"labels":            func() { base.Labels = f.s.Labels },
		"font-size":         func() { base.FontSize = f.s.FontSize },
		"stroke-width":      func() { base.StrokeWidth = f.s.StrokeWidth },
	}
	for name, set := range overlay {
		if fl.Changed(name) {
			set()
		}
	}
	return base
}

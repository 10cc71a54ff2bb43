package layout

import (
	"github.com/visgraphio/visgraph/pkg/errors"
)

// Default values for [Settings]. See [DefaultSettings].
const (
	DefaultWidth            = 1000.0
	DefaultHeight           = 1000.0
	DefaultMargin           = 0.05
	DefaultNodeRadius       = 25.0
	DefaultNodeSpacing      = 80.0
	DefaultLayerSpacing     = 100.0
	DefaultMinCircleRadius  = 50.0
	DefaultIterations       = 300
	DefaultThreshold        = 0.0
	DefaultSpring           = 1.0
	DefaultRepulsion        = 1.0
	DefaultBarycenterPasses = 4
	DefaultSeed             = uint64(42)
	DefaultFontSize         = 16.0
	DefaultStrokeWidth      = 2.0
)

// Orientation controls the main axis of the hierarchical layout.
type Orientation string

// Hierarchical layout orientations. Top to bottom is the default.
const (
	TopToBottom Orientation = "top-bottom"
	BottomToTop Orientation = "bottom-top"
	LeftToRight Orientation = "left-right"
	RightToLeft Orientation = "right-left"
)

// Settings is the immutable configuration bundle consumed by every layout
// strategy and by the scene builder. Construct it with [DefaultSettings] and
// adjust fields, or decode it from a TOML file; either way, [Settings.Validate]
// must pass before use - invalid values fail fast instead of propagating NaNs
// through the numeric pipeline.
//
// All coordinates are in canvas units (pixels in the exported SVG).
type Settings struct {
	// Width and Height are the canvas dimensions. Strictly positive.
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`

	// MarginX and MarginY are fractional margins in [0, 0.5). A margin of
	// 0.1 reserves 10% of the corresponding dimension on each side, leaving
	// 80% as the drawing area.
	MarginX float64 `toml:"margin_x" json:"margin_x"`
	MarginY float64 `toml:"margin_y" json:"margin_y"`

	// NodeRadius is the radius of node circles. Strictly positive.
	NodeRadius float64 `toml:"node_radius" json:"node_radius"`

	// NodeSpacing is the target distance between adjacent nodes: arc spacing
	// on the circular ring, horizontal spacing within a hierarchical layer,
	// vertical spacing within a bipartite column. Strictly positive.
	NodeSpacing float64 `toml:"node_spacing" json:"node_spacing"`

	// LayerSpacing is the distance between consecutive hierarchical layers.
	// Strictly positive.
	LayerSpacing float64 `toml:"layer_spacing" json:"layer_spacing"`

	// MinCircleRadius is the lower bound for the circular layout ring radius.
	// Non-negative.
	MinCircleRadius float64 `toml:"min_circle_radius" json:"min_circle_radius"`

	// Iterations is the force-directed simulation length. Non-negative;
	// zero means the seeded initial placement is returned as-is.
	Iterations int `toml:"iterations" json:"iterations"`

	// Threshold enables early exit: the simulation stops once the maximum
	// per-node displacement of an iteration falls below it. Zero disables
	// early exit. Non-negative.
	Threshold float64 `toml:"threshold" json:"threshold"`

	// Spring scales the attractive force along edges. Strictly positive.
	Spring float64 `toml:"spring" json:"spring"`

	// Repulsion scales the pairwise repulsive force. Strictly positive.
	Repulsion float64 `toml:"repulsion" json:"repulsion"`

	// IdealEdgeLength is the spring rest length. Zero derives it from the
	// drawing area and node count. Non-negative.
	IdealEdgeLength float64 `toml:"ideal_edge_length" json:"ideal_edge_length"`

	// BarycenterPasses is the number of alternating down/up crossing
	// reduction sweeps in the hierarchical layout. Non-negative.
	BarycenterPasses int `toml:"barycenter_passes" json:"barycenter_passes"`

	// Orientation selects the hierarchical layout axis. Empty means
	// [TopToBottom].
	Orientation Orientation `toml:"orientation" json:"orientation"`

	// Seed drives the deterministic pseudo-random placement used by the
	// force-directed and random layouts. Identical inputs with identical
	// seeds reproduce identical output bit for bit.
	Seed uint64 `toml:"seed" json:"seed"`

	// Labels enables node label primitives in the scene.
	Labels bool `toml:"labels" json:"labels"`

	// FontSize is the label font size. Strictly positive.
	FontSize float64 `toml:"font_size" json:"font_size"`

	// StrokeWidth is the edge stroke width. Strictly positive.
	StrokeWidth float64 `toml:"stroke_width" json:"stroke_width"`
}

// DefaultSettings returns a Settings value with the package defaults.
// The result always passes [Settings.Validate].
func DefaultSettings() Settings {
	return Settings{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		MarginX:          DefaultMargin,
		MarginY:          DefaultMargin,
		NodeRadius:       DefaultNodeRadius,
		NodeSpacing:      DefaultNodeSpacing,
		LayerSpacing:     DefaultLayerSpacing,
		MinCircleRadius:  DefaultMinCircleRadius,
		Iterations:       DefaultIterations,
		Threshold:        DefaultThreshold,
		Spring:           DefaultSpring,
		Repulsion:        DefaultRepulsion,
		BarycenterPasses: DefaultBarycenterPasses,
		Orientation:      TopToBottom,
		Seed:             DefaultSeed,
		Labels:           true,
		FontSize:         DefaultFontSize,
		StrokeWidth:      DefaultStrokeWidth,
	}
}

// Validate checks all numeric constraints and returns a structured
// INVALID_SETTINGS error naming the first offending field.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return errors.New(errors.ErrCodeInvalidSettings, "dimensions (%v, %v) must be positive", s.Width, s.Height)
	case s.MarginX < 0 || s.MarginX >= 0.5 || s.MarginY < 0 || s.MarginY >= 0.5:
		return errors.New(errors.ErrCodeInvalidSettings, "margins (%v, %v) must lie in [0.0, 0.5)", s.MarginX, s.MarginY)
	case s.NodeRadius <= 0:
		return errors.New(errors.ErrCodeInvalidSettings, "node radius %v must be positive", s.NodeRadius)
	case s.NodeSpacing <= 0:
		return errors.New(errors.ErrCodeInvalidSettings, "node spacing %v must be positive", s.NodeSpacing)
	case s.LayerSpacing <= 0:
		return errors.New(errors.ErrCodeInvalidSettings, "layer spacing %v must be positive", s.LayerSpacing)
	case s.MinCircleRadius < 0:
		return errors.New(errors.ErrCodeInvalidSettings, "minimum circle radius %v must be non-negative", s.MinCircleRadius)
	case s.Iterations < 0:
		return errors.New(errors.ErrCodeInvalidSettings, "iteration count %d must be non-negative", s.Iterations)
	case s.Threshold < 0:
		return errors.New(errors.ErrCodeInvalidSettings, "convergence threshold %v must be non-negative", s.Threshold)
	case s.Spring <= 0:
		return errors.New(errors.ErrCodeInvalidSettings, "spring constant %v must be positive", s.Spring)
	case s.Repulsion <= 0:
		return errors.New(errors.ErrCodeInvalidSettings, "repulsion constant %v must be positive", s.Repulsion)
	case s.IdealEdgeLength < 0:
		return errors.New(errors.ErrCodeInvalidSettings, "ideal edge length %v must be non-negative", s.IdealEdgeLength)
	case s.BarycenterPasses < 0:
		return errors.New(errors.ErrCodeInvalidSettings, "barycenter passes %d must be non-negative", s.BarycenterPasses)
	case s.FontSize <= 0:
		return errors.New(errors.ErrCodeInvalidSettings, "font size %v must be positive", s.FontSize)
	case s.StrokeWidth <= 0:
		return errors.New(errors.ErrCodeInvalidSettings, "stroke width %v must be positive", s.StrokeWidth)
	}

	switch s.Orientation {
	case "", TopToBottom, BottomToTop, LeftToRight, RightToLeft:
	default:
		return errors.New(errors.ErrCodeInvalidSettings, "unknown orientation %q", s.Orientation)
	}
	return nil
}

// drawingArea returns the rectangle left after subtracting margins:
// x0 ≤ x ≤ x1, y0 ≤ y ≤ y1.
func (s Settings) drawingArea() (x0, y0, x1, y1 float64) {
	x0 = s.MarginX * s.Width
	y0 = s.MarginY * s.Height
	return x0, y0, s.Width - x0, s.Height - y0
}

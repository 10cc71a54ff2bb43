package scene

import (
	"math"

	"github.com/visgraphio/visgraph/pkg/errors"
	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
)

// Default primitive styling, overridable per node/edge via the With* options.
const (
	DefaultNodeFill  = "white"
	DefaultEdgeColor = "black"

	nodeLabelColor = "black"
	edgeLabelColor = "blue"
)

// edgeClosenessThreshold guards the boundary-trimming division. Edges between
// nodes closer than this are drawn center to center instead of trimmed.
const edgeClosenessThreshold = 0.001

// parallelSpreadFactor scales the control-point offset between parallel
// edges, in node radii.
const parallelSpreadFactor = 2.0

// selfLoopReachFactor places a self-loop's control point this many node radii
// above the node; each additional loop on the same node reaches further.
const selfLoopReachFactor = 3.0

// Option customizes Build. The zero configuration emits white nodes, black
// edges and node-ID labels.
type Option func(*builder)

type builder struct {
	nodeLabel func(id string) string
	edgeLabel func(e graph.Edge) string
	nodeColor func(id string) string
	edgeColor func(e graph.Edge) string
}

// WithNodeLabels overrides the default node-ID label text.
func WithNodeLabels(fn func(id string) string) Option {
	return func(b *builder) { b.nodeLabel = fn }
}

// WithEdgeLabels enables edge labels, anchored at each curve's midpoint.
// Without this option edges carry no label.
func WithEdgeLabels(fn func(e graph.Edge) string) Option {
	return func(b *builder) { b.edgeLabel = fn }
}

// WithNodeColors overrides the default node fill per node.
func WithNodeColors(fn func(id string) string) Option {
	return func(b *builder) { b.nodeColor = fn }
}

// WithEdgeColors overrides the default edge stroke color per edge.
func WithEdgeColors(fn func(e graph.Edge) string) Option {
	return func(b *builder) { b.edgeColor = fn }
}

// Build converts a graph view and a position map into a Scene.
//
// The scene contains exactly one [Circle] per node and exactly one [Curve]
// per edge, parallel edges included. Simple edges are straight lines trimmed
// to the node circle boundaries; self-loops and parallel edges bend so they
// stay visually distinguishable. When Settings.Labels is set, one [Label]
// per node follows, anchored at the node position with the node ID as
// default text.
//
// The position map must cover exactly the view's node set; a missing entry
// is an INVALID_INPUT error. The view and map are borrowed for the duration
// of the call; the returned Scene is freshly allocated and never mutated
// afterwards.
func Build(v graph.View, pm layout.PositionMap, s layout.Settings, opts ...Option) (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	nodes := v.Nodes()
	for _, id := range nodes {
		if _, ok := pm[id]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "position map is missing node %q", id)
		}
	}

	b := builder{
		nodeLabel: func(id string) string { return id },
		nodeColor: func(string) string { return DefaultNodeFill },
		edgeColor: func(graph.Edge) string { return DefaultEdgeColor },
	}
	for _, opt := range opts {
		opt(&b)
	}

	edges := v.Edges()
	sc := &Scene{
		Width:      s.Width,
		Height:     s.Height,
		Primitives: make([]Primitive, 0, len(nodes)+len(edges)),
	}

	for _, id := range nodes {
		sc.Primitives = append(sc.Primitives, Circle{
			Node:   id,
			Center: pm[id],
			Radius: s.NodeRadius,
			Fill:   b.nodeColor(id),
		})
	}

	curves := buildCurves(edges, pm, s, b.edgeColor)
	for _, c := range curves {
		sc.Primitives = append(sc.Primitives, c)
	}

	if s.Labels {
		for _, id := range nodes {
			sc.Primitives = append(sc.Primitives, Label{
				Text:   b.nodeLabel(id),
				Anchor: pm[id],
				Size:   s.FontSize,
				Color:  nodeLabelColor,
			})
		}
	}
	if b.edgeLabel != nil {
		for _, c := range curves {
			sc.Primitives = append(sc.Primitives, Label{
				Text:   b.edgeLabel(c.Edge),
				Anchor: curveMidpoint(c),
				Size:   s.FontSize,
				Color:  edgeLabelColor,
			})
		}
	}
	return sc, nil
}

// buildCurves emits one curve per edge in enumeration order. Parallel edges
// between the same unordered node pair receive symmetric control-point
// offsets: with m parallel edges, occurrence k is offset by
// (k - (m-1)/2) spread units along the pair's canonical perpendicular, so the
// bundle centers on the straight connecting line and the middle edge of an
// odd bundle stays straight.
func buildCurves(edges []graph.Edge, pm layout.PositionMap, s layout.Settings, color func(graph.Edge) string) []Curve {
	multiplicity := make(map[[2]string]int, len(edges))
	for _, e := range edges {
		multiplicity[pairKey(e)]++
	}

	curves := make([]Curve, 0, len(edges))
	occurrence := make(map[[2]string]int, len(multiplicity))
	for _, e := range edges {
		key := pairKey(e)
		k := occurrence[key]
		occurrence[key]++

		var c Curve
		if e.From == e.To {
			c = selfLoopCurve(e, pm[e.From], s, k)
		} else {
			factor := float64(k) - float64(multiplicity[key]-1)/2
			c = edgeCurve(e, pm[e.From], pm[e.To], s, factor)
		}
		c.Color = color(e)
		c.Width = s.StrokeWidth
		curves = append(curves, c)
	}
	return curves
}

// pairKey returns the unordered endpoint pair, lexicographically sorted, so
// opposite-direction edges between the same nodes share one bundle.
func pairKey(e graph.Edge) [2]string {
	if e.From <= e.To {
		return [2]string{e.From, e.To}
	}
	return [2]string{e.To, e.From}
}

// edgeCurve builds a curve between two distinct nodes. Endpoints are trimmed
// to the circle boundary along the center line; nodes closer than the
// closeness threshold are connected center to center untrimmed. A non-zero
// factor bends the curve sideways by factor spread units.
func edgeCurve(e graph.Edge, from, to layout.Point, s layout.Settings, factor float64) Curve {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)

	start, end := from, to
	if dist >= edgeClosenessThreshold {
		ux, uy := dx/dist, dy/dist
		start = layout.Point{X: from.X + s.NodeRadius*ux, Y: from.Y + s.NodeRadius*uy}
		end = layout.Point{X: to.X - s.NodeRadius*ux, Y: to.Y - s.NodeRadius*uy}
	}

	mid := layout.Point{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}
	if factor == 0 || dist < edgeClosenessThreshold {
		return Curve{Edge: e, Start: start, End: end, Control: mid}
	}

	// Perpendicular of the canonical (lexicographically sorted) direction,
	// so both directions of a parallel bundle offset to the same side.
	if e.From > e.To {
		dx, dy = -dx, -dy
	}
	nx, ny := -dy/dist, dx/dist
	offset := factor * parallelSpreadFactor * s.NodeRadius
	control := layout.Point{X: mid.X + nx*offset, Y: mid.Y + ny*offset}
	return Curve{Edge: e, Start: start, End: end, Control: control, Bent: true}
}

// selfLoopCurve builds the k-th loop on a node: a Bézier leaving the upper
// left of the circle and returning to the upper right, with the control point
// above the node. Additional loops reach further out.
func selfLoopCurve(e graph.Edge, at layout.Point, s layout.Settings, k int) Curve {
	r := s.NodeRadius
	offset := r * math.Sqrt2 / 2
	start := layout.Point{X: at.X - offset, Y: at.Y - offset}
	end := layout.Point{X: at.X + offset, Y: at.Y - offset}
	reach := (selfLoopReachFactor + parallelSpreadFactor*float64(k)) * r
	control := layout.Point{X: at.X, Y: at.Y - reach}
	return Curve{Edge: e, Start: start, End: end, Control: control, Bent: true}
}

// curveMidpoint returns the label anchor for a curve: the Bézier point at
// t=0.5 for bent curves, the segment midpoint otherwise.
func curveMidpoint(c Curve) layout.Point {
	if !c.Bent {
		return layout.Point{X: (c.Start.X + c.End.X) / 2, Y: (c.Start.Y + c.End.Y) / 2}
	}
	return layout.Point{
		X: 0.25*c.Start.X + 0.5*c.Control.X + 0.25*c.End.X,
		Y: 0.25*c.Start.Y + 0.5*c.Control.Y + 0.25*c.End.Y,
	}
}

package scene

import (
	"math"
	"testing"

	"github.com/visgraphio/visgraph/pkg/errors"
	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
)

func buildGraph(t *testing.T, nodes []string, edges [][2]string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range nodes {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%q) = %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%q, %q) = %v", e[0], e[1], err)
		}
	}
	return g
}

func layoutFor(t *testing.T, g *graph.Graph, s layout.Settings) layout.PositionMap {
	t.Helper()
	pm, err := layout.CircularLayout(g, s)
	if err != nil {
		t.Fatalf("CircularLayout() = %v", err)
	}
	return pm
}

// split partitions a scene's primitives by variant, preserving order.
func split(sc *Scene) (circles []Circle, curves []Curve, labels []Label) {
	for _, p := range sc.Primitives {
		switch p := p.(type) {
		case Circle:
			circles = append(circles, p)
		case Curve:
			curves = append(curves, p)
		case Label:
			labels = append(labels, p)
		}
	}
	return circles, curves, labels
}

func TestBuildCompleteness(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"a", "b"}, {"c", "c"}},
	)
	s := layout.DefaultSettings()
	pm := layoutFor(t, g, s)

	sc, err := Build(g, pm, s)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	circles, curves, labels := split(sc)
	if len(circles) != 3 {
		t.Errorf("got %d circles, want 3 (one per node)", len(circles))
	}
	if len(curves) != 4 {
		t.Errorf("got %d curves, want 4 (one per edge, parallel and loop included)", len(curves))
	}
	if len(labels) != 3 {
		t.Errorf("got %d labels, want 3 (labels enabled by default)", len(labels))
	}
	if sc.Width != s.Width || sc.Height != s.Height {
		t.Errorf("scene bounds %vx%v, want %vx%v", sc.Width, sc.Height, s.Width, s.Height)
	}
}

func TestBuildDrawOrder(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	s := layout.DefaultSettings()

	sc, err := Build(g, layoutFor(t, g, s), s)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	// Circles precede curves precede labels.
	stage := 0
	for i, p := range sc.Primitives {
		var want int
		switch p.(type) {
		case Circle:
			want = 0
		case Curve:
			want = 1
		case Label:
			want = 2
		}
		if want < stage {
			t.Fatalf("primitive %d out of draw order: %T after stage %d", i, p, stage)
		}
		stage = want
	}
}

func TestBuildLabelsDisabled(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	s := layout.DefaultSettings()
	s.Labels = false

	sc, err := Build(g, layoutFor(t, g, s), s)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if _, _, labels := split(sc); len(labels) != 0 {
		t.Errorf("got %d labels with labels disabled, want 0", len(labels))
	}
}

func TestBuildMissingPosition(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, nil)
	s := layout.DefaultSettings()
	pm := layout.PositionMap{"a": {X: 100, Y: 100}}

	_, err := Build(g, pm, s)
	if err == nil {
		t.Fatal("Build with incomplete position map = nil error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidInput {
		t.Errorf("GetCode(err) = %q, want %q", code, errors.ErrCodeInvalidInput)
	}
}

func TestBuildEdgeTrimming(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	s := layout.DefaultSettings()
	pm := layout.PositionMap{
		"a": {X: 100, Y: 500},
		"b": {X: 400, Y: 500},
	}

	sc, err := Build(g, pm, s)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	_, curves, _ := split(sc)
	c := curves[0]

	// A horizontal edge trims by exactly one radius at each end.
	if c.Start.X != 100+s.NodeRadius || c.Start.Y != 500 {
		t.Errorf("start %+v, want (%v, 500)", c.Start, 100+s.NodeRadius)
	}
	if c.End.X != 400-s.NodeRadius || c.End.Y != 500 {
		t.Errorf("end %+v, want (%v, 500)", c.End, 400-s.NodeRadius)
	}
	if c.Bent {
		t.Error("single simple edge should be straight")
	}
}

func TestBuildCoincidentNodesStillConnected(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	s := layout.DefaultSettings()
	pm := layout.PositionMap{
		"a": {X: 500, Y: 500},
		"b": {X: 500, Y: 500},
	}

	sc, err := Build(g, pm, s)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	_, curves, _ := split(sc)
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1 even for coincident endpoints", len(curves))
	}
	c := curves[0]
	if c.Start != pm["a"] || c.End != pm["b"] {
		t.Errorf("coincident edge not drawn center to center: %+v", c)
	}
	if math.IsNaN(c.Control.X) || math.IsNaN(c.Control.Y) {
		t.Errorf("coincident edge has NaN control point: %+v", c.Control)
	}
}

func TestBuildParallelEdges(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"},
		[][2]string{{"a", "b"}, {"a", "b"}, {"b", "a"}})
	s := layout.DefaultSettings()
	pm := layout.PositionMap{
		"a": {X: 200, Y: 500},
		"b": {X: 800, Y: 500},
	}

	sc, err := Build(g, pm, s)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	_, curves, _ := split(sc)
	if len(curves) != 3 {
		t.Fatalf("got %d curves, want 3", len(curves))
	}

	// Three parallel edges (direction ignored) spread symmetrically: offsets
	// -1, 0, +1 spread units, so the middle one stays straight and the outer
	// two mirror each other across the connecting line.
	if !curves[0].Bent || curves[1].Bent || !curves[2].Bent {
		t.Fatalf("bent flags = %v %v %v, want true false true",
			curves[0].Bent, curves[1].Bent, curves[2].Bent)
	}
	d0 := curves[0].Control.Y - 500
	d2 := curves[2].Control.Y - 500
	if d0 == 0 || d0 != -d2 {
		t.Errorf("outer offsets %v and %v are not symmetric", d0, d2)
	}
}

func TestBuildSelfLoop(t *testing.T) {
	g := buildGraph(t, []string{"a"}, [][2]string{{"a", "a"}, {"a", "a"}})
	s := layout.DefaultSettings()
	pm := layout.PositionMap{"a": {X: 500, Y: 500}}

	sc, err := Build(g, pm, s)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	_, curves, _ := split(sc)
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	for i, c := range curves {
		if !c.Bent {
			t.Errorf("loop %d is not bent", i)
		}
		if c.Control.Y >= 500-s.NodeRadius {
			t.Errorf("loop %d control %+v not above the node", i, c.Control)
		}
	}
	// The second loop reaches further than the first.
	if curves[1].Control.Y >= curves[0].Control.Y {
		t.Errorf("loop controls %v, %v do not spread", curves[0].Control.Y, curves[1].Control.Y)
	}
}

func TestBuildHooks(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	s := layout.DefaultSettings()

	sc, err := Build(g, layoutFor(t, g, s), s,
		WithNodeLabels(func(id string) string { return "node " + id }),
		WithNodeColors(func(id string) string { return "#ff0000" }),
		WithEdgeColors(func(e graph.Edge) string { return "#00ff00" }),
		WithEdgeLabels(func(e graph.Edge) string { return e.From + "->" + e.To }),
	)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	circles, curves, labels := split(sc)
	for _, c := range circles {
		if c.Fill != "#ff0000" {
			t.Errorf("circle fill %q, want #ff0000", c.Fill)
		}
	}
	for _, c := range curves {
		if c.Color != "#00ff00" {
			t.Errorf("curve color %q, want #00ff00", c.Color)
		}
	}

	var nodeLabels, edgeLabels []string
	for _, l := range labels {
		if l.Color == edgeLabelColor {
			edgeLabels = append(edgeLabels, l.Text)
		} else {
			nodeLabels = append(nodeLabels, l.Text)
		}
	}
	if len(nodeLabels) != 2 || nodeLabels[0] != "node a" {
		t.Errorf("node labels = %v", nodeLabels)
	}
	if len(edgeLabels) != 1 || edgeLabels[0] != "a->b" {
		t.Errorf("edge labels = %v", edgeLabels)
	}
}

func TestBuildValidatesSettings(t *testing.T) {
	g := buildGraph(t, []string{"a"}, nil)
	s := layout.DefaultSettings()
	s.NodeRadius = -1

	_, err := Build(g, layout.PositionMap{"a": {X: 0, Y: 0}}, s)
	if err == nil {
		t.Fatal("Build with invalid settings = nil error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidSettings {
		t.Errorf("GetCode(err) = %q, want %q", code, errors.ErrCodeInvalidSettings)
	}
}

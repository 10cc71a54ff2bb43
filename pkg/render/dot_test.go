package render

import (
	"strings"
	"testing"

	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
)

func TestToDOT(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"api", "db"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%q) = %v", id, err)
		}
	}
	if err := g.AddEdge("api", "db"); err != nil {
		t.Fatalf("AddEdge() = %v", err)
	}

	s := layout.DefaultSettings()
	pm := layout.PositionMap{
		"api": {X: 250, Y: 100},
		"db":  {X: 750, Y: 900},
	}

	dot := ToDOT(g, pm, s)

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	// Pinned positions, y flipped from canvas to DOT coordinates.
	if !strings.Contains(dot, `"api" [pos="250.00,900.00!"]`) {
		t.Errorf("api position not pinned:\n%s", dot)
	}
	if !strings.Contains(dot, `"db" [pos="750.00,100.00!"]`) {
		t.Errorf("db position not pinned:\n%s", dot)
	}
	if !strings.Contains(dot, `"api" -> "db";`) {
		t.Errorf("edge missing:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("missing closing brace")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%q) = %v", id, err)
		}
	}
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge() = %v", err)
		}
	}

	s := layout.DefaultSettings()
	pm, err := layout.CircularLayout(g, s)
	if err != nil {
		t.Fatalf("CircularLayout() = %v", err)
	}

	if first, second := ToDOT(g, pm, s), ToDOT(g, pm, s); first != second {
		t.Error("identical inputs produced different DOT output")
	}
}

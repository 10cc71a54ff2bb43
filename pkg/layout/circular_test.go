package layout

import (
	"math"
	"testing"
)

func TestCircularLayoutFourNodes(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"}, nil)
	s := DefaultSettings()

	pm, err := CircularLayout(g, s)
	if err != nil {
		t.Fatalf("CircularLayout() = %v", err)
	}
	assertCoverage(t, g, pm)

	cx, cy := s.Width/2, s.Height/2
	radius := 4 * s.NodeSpacing / (2 * math.Pi)
	if radius < s.MinCircleRadius {
		radius = s.MinCircleRadius
	}

	// Four nodes land at 0, 90, 180 and 270 degrees in enumeration order.
	want := map[string]Point{
		"a": {X: cx + radius, Y: cy},
		"b": {X: cx, Y: cy + radius},
		"c": {X: cx - radius, Y: cy},
		"d": {X: cx, Y: cy - radius},
	}
	for id, wp := range want {
		if got := pm[id]; got.Dist(wp) > 1e-9 {
			t.Errorf("node %q at %+v, want %+v", id, got, wp)
		}
	}
}

func TestCircularLayoutRadius(t *testing.T) {
	s := DefaultSettings()

	t.Run("spacing-driven", func(t *testing.T) {
		// 20 nodes at spacing 80 need a ring well past the minimum radius.
		ids := make([]string, 20)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}
		g := buildGraph(t, ids, nil)

		pm, err := CircularLayout(g, s)
		if err != nil {
			t.Fatalf("CircularLayout() = %v", err)
		}

		center := Point{X: s.Width / 2, Y: s.Height / 2}
		want := 20 * s.NodeSpacing / (2 * math.Pi)
		for id, p := range pm {
			if r := p.Dist(center); math.Abs(r-want) > 1e-9 {
				t.Errorf("node %q radius %v, want %v", id, r, want)
			}
		}
	})

	t.Run("minimum radius floor", func(t *testing.T) {
		g := buildGraph(t, []string{"a", "b"}, nil)

		pm, err := CircularLayout(g, s)
		if err != nil {
			t.Fatalf("CircularLayout() = %v", err)
		}

		// 2 * 80 / 2π ≈ 25.5 is below the 50 floor.
		center := Point{X: s.Width / 2, Y: s.Height / 2}
		for id, p := range pm {
			if r := p.Dist(center); math.Abs(r-s.MinCircleRadius) > 1e-9 {
				t.Errorf("node %q radius %v, want floor %v", id, r, s.MinCircleRadius)
			}
		}
	})
}

func TestCircularLayoutEvenSpacing(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d", "e"}, nil)
	s := DefaultSettings()

	pm, err := CircularLayout(g, s)
	if err != nil {
		t.Fatalf("CircularLayout() = %v", err)
	}

	// Consecutive nodes subtend equal chords.
	ids := g.Nodes()
	chord := pm[ids[0]].Dist(pm[ids[1]])
	for i := 1; i < len(ids); i++ {
		next := ids[(i+1)%len(ids)]
		if d := pm[ids[i]].Dist(pm[next]); math.Abs(d-chord) > 1e-9 {
			t.Errorf("chord %q-%q = %v, want %v", ids[i], next, d, chord)
		}
	}
}

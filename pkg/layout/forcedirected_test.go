package layout

import (
	"math"
	"testing"

	"github.com/visgraphio/visgraph/pkg/graph"
)

func forceTestGraph(t *testing.T) *graph.Graph {
	t.Helper()
	return buildGraph(t,
		[]string{"a", "b", "c", "d", "e", "f"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}, {"d", "e"}, {"e", "f"}},
	)
}

func TestForceDirectedLayoutBounded(t *testing.T) {
	g := forceTestGraph(t)
	s := DefaultSettings()
	x0, y0, x1, y1 := s.drawingArea()

	// Positions stay inside the drawing area for every iteration count,
	// including zero (seeded initial placement only).
	for _, iterations := range []int{0, 1, 10, 300} {
		s.Iterations = iterations
		pm, err := ForceDirectedLayout(g, s, nil)
		if err != nil {
			t.Fatalf("ForceDirectedLayout(iterations=%d) = %v", iterations, err)
		}
		assertCoverage(t, g, pm)
		for id, p := range pm {
			if p.X < x0 || p.X > x1 || p.Y < y0 || p.Y > y1 {
				t.Errorf("iterations=%d: node %q at %+v outside drawing area [%v,%v]x[%v,%v]",
					iterations, id, p, x0, x1, y0, y1)
			}
		}
	}
}

func TestForceDirectedLayoutDeterministic(t *testing.T) {
	s := DefaultSettings()
	s.Iterations = 120

	first, err := ForceDirectedLayout(forceTestGraph(t), s, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := ForceDirectedLayout(forceTestGraph(t), s, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	for id, p := range first {
		if q := second[id]; p != q {
			t.Errorf("node %q differs between runs: %+v vs %+v", id, p, q)
		}
	}
}

func TestForceDirectedLayoutSeedChangesResult(t *testing.T) {
	s := DefaultSettings()
	s.Iterations = 0 // compare the raw seeded placements

	base, err := ForceDirectedLayout(forceTestGraph(t), s, nil)
	if err != nil {
		t.Fatalf("seed %d: %v", s.Seed, err)
	}

	s.Seed = 7
	other, err := ForceDirectedLayout(forceTestGraph(t), s, nil)
	if err != nil {
		t.Fatalf("seed %d: %v", s.Seed, err)
	}

	same := true
	for id, p := range base {
		if other[id] != p {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical placements")
	}
}

func TestForceDirectedLayoutCoincidentStart(t *testing.T) {
	// A near-degenerate drawing area forces nodes to start almost on top of
	// each other; the minimum-distance clamp must keep forces finite.
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	s := DefaultSettings()
	s.MarginX, s.MarginY = 0.499, 0.499
	s.Iterations = 20

	pm, err := ForceDirectedLayout(g, s, nil)
	if err != nil {
		t.Fatalf("ForceDirectedLayout() = %v", err)
	}
	for id, p := range pm {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Errorf("node %q has NaN position %+v", id, p)
		}
	}
}

func TestForceDirectedLayoutSelfLoop(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "a"}, {"a", "b"}})
	s := DefaultSettings()
	s.Iterations = 50

	pm, err := ForceDirectedLayout(g, s, nil)
	if err != nil {
		t.Fatalf("ForceDirectedLayout() = %v", err)
	}
	assertCoverage(t, g, pm)
}

func TestForceDirectedLayoutProgress(t *testing.T) {
	g := forceTestGraph(t)
	s := DefaultSettings()
	s.Iterations = 25

	var calls int
	var lastIteration int
	_, err := ForceDirectedLayout(g, s, func(iteration, total int, maxDisplacement float64) {
		calls++
		lastIteration = iteration
		if total != 25 {
			t.Errorf("progress total = %d, want 25", total)
		}
		if math.IsNaN(maxDisplacement) {
			t.Error("progress maxDisplacement is NaN")
		}
	})
	if err != nil {
		t.Fatalf("ForceDirectedLayout() = %v", err)
	}
	if calls != 25 || lastIteration != 25 {
		t.Errorf("progress called %d times, last iteration %d, want 25/25", calls, lastIteration)
	}
}

func TestForceDirectedLayoutThresholdStopsEarly(t *testing.T) {
	g := forceTestGraph(t)
	s := DefaultSettings()
	s.Iterations = 1000
	s.Threshold = 1e6 // any first iteration satisfies this

	var calls int
	_, err := ForceDirectedLayout(g, s, func(iteration, total int, maxDisplacement float64) {
		calls++
	})
	if err != nil {
		t.Fatalf("ForceDirectedLayout() = %v", err)
	}
	if calls != 1 {
		t.Errorf("progress called %d times, want 1 (early exit)", calls)
	}
}

func TestRandomLayoutBoundedAndDeterministic(t *testing.T) {
	g := forceTestGraph(t)
	s := DefaultSettings()
	x0, y0, x1, y1 := s.drawingArea()

	first, err := RandomLayout(g, s)
	if err != nil {
		t.Fatalf("RandomLayout() = %v", err)
	}
	assertCoverage(t, g, first)
	for id, p := range first {
		if p.X < x0 || p.X > x1 || p.Y < y0 || p.Y > y1 {
			t.Errorf("node %q at %+v outside drawing area", id, p)
		}
	}

	second, err := RandomLayout(g, s)
	if err != nil {
		t.Fatalf("RandomLayout() = %v", err)
	}
	for id, p := range first {
		if second[id] != p {
			t.Errorf("node %q differs between runs: %+v vs %+v", id, p, second[id])
		}
	}
}

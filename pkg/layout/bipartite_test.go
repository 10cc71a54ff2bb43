package layout

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/visgraphio/visgraph/pkg/errors"
)

func TestBipartiteLayoutFourCycle(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}},
	)
	s := DefaultSettings()

	pm, err := BipartiteLayout(g, s, nil)
	if err != nil {
		t.Fatalf("BipartiteLayout() = %v", err)
	}
	assertCoverage(t, g, pm)

	// The 4-cycle 2-colors as {a, c} / {b, d}: two nodes per column.
	x0, _, x1, _ := s.drawingArea()
	xLeft := x0 + 0.25*(x1-x0)
	xRight := x0 + 0.75*(x1-x0)

	for _, id := range []string{"a", "c"} {
		if pm[id].X != xLeft {
			t.Errorf("node %q at x=%v, want left column %v", id, pm[id].X, xLeft)
		}
	}
	for _, id := range []string{"b", "d"} {
		if pm[id].X != xRight {
			t.Errorf("node %q at x=%v, want right column %v", id, pm[id].X, xRight)
		}
	}
}

func TestBipartiteLayoutRejectsOddCycle(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
	)

	_, err := BipartiteLayout(g, DefaultSettings(), nil)
	if err == nil {
		t.Fatal("BipartiteLayout on a triangle = nil error")
	}
	if !errors.Is(err, ErrNotBipartite) {
		t.Errorf("errors.Is(err, ErrNotBipartite) = false for %v", err)
	}
	var be *BipartiteError
	if !errors.As(err, &be) {
		t.Fatalf("errors.As(err, *BipartiteError) = false for %v", err)
	}
	if be.From == "" || be.To == "" {
		t.Errorf("BipartiteError does not name a conflicting edge: %+v", be)
	}
	if code := apperrors.GetCode(err); code != apperrors.ErrCodeNotBipartite {
		t.Errorf("GetCode(err) = %q, want %q", code, apperrors.ErrCodeNotBipartite)
	}
}

func TestBipartiteLayoutRejectsSelfLoop(t *testing.T) {
	g := buildGraph(t, []string{"a"}, [][2]string{{"a", "a"}})

	_, err := BipartiteLayout(g, DefaultSettings(), nil)
	if !errors.Is(err, ErrNotBipartite) {
		t.Errorf("self-loop: errors.Is(err, ErrNotBipartite) = false for %v", err)
	}
}

func TestBipartiteLayoutExplicitPartition(t *testing.T) {
	g := buildGraph(t,
		[]string{"u1", "u2", "v1"},
		[][2]string{{"u1", "v1"}, {"u2", "v1"}},
	)
	s := DefaultSettings()

	t.Run("valid partition", func(t *testing.T) {
		pm, err := BipartiteLayout(g, s, map[string]bool{"u1": true, "u2": true})
		if err != nil {
			t.Fatalf("BipartiteLayout() = %v", err)
		}
		assertCoverage(t, g, pm)

		if pm["u1"].X != pm["u2"].X {
			t.Errorf("u1 and u2 in different columns: %v vs %v", pm["u1"].X, pm["u2"].X)
		}
		if pm["u1"].X == pm["v1"].X {
			t.Error("u1 and v1 share a column")
		}
	})

	t.Run("partition violated by an edge", func(t *testing.T) {
		_, err := BipartiteLayout(g, s, map[string]bool{"u1": true, "v1": true})
		if !errors.Is(err, ErrNotBipartite) {
			t.Errorf("errors.Is(err, ErrNotBipartite) = false for %v", err)
		}
	})
}

func TestBipartiteLayoutColumnSpacing(t *testing.T) {
	g := buildGraph(t,
		[]string{"l1", "l2", "l3", "r1"},
		[][2]string{{"l1", "r1"}, {"l2", "r1"}, {"l3", "r1"}},
	)
	s := DefaultSettings()

	pm, err := BipartiteLayout(g, s, nil)
	if err != nil {
		t.Fatalf("BipartiteLayout() = %v", err)
	}

	_, y0, _, y1 := s.drawingArea()

	// Three left-column nodes span the full drawing height evenly.
	if pm["l1"].Y != y0 {
		t.Errorf("l1 at y=%v, want top %v", pm["l1"].Y, y0)
	}
	if mid := (y0 + y1) / 2; math.Abs(pm["l2"].Y-mid) > 1e-9 {
		t.Errorf("l2 at y=%v, want middle %v", pm["l2"].Y, mid)
	}
	if pm["l3"].Y != y1 {
		t.Errorf("l3 at y=%v, want bottom %v", pm["l3"].Y, y1)
	}

	// A single right-column node centers vertically.
	if mid := (y0 + y1) / 2; pm["r1"].Y != mid {
		t.Errorf("r1 at y=%v, want center %v", pm["r1"].Y, mid)
	}
}

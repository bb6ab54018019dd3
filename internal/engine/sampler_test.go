package engine

import (
	"math/rand"
	"testing"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

func onRectBoundary(p geometry.Point, width, length float64) bool {
	inX := p.X >= 0 && p.X <= width
	inY := p.Y >= 0 && p.Y <= length
	onEdge := p.X == 0 || p.X == width || p.Y == 0 || p.Y == length
	return inX && inY && onEdge
}

func TestBoundaryPointsCorners(t *testing.T) {
	points := boundaryPoints(100, 100, 6)
	// 6 points per edge, 4 corners shared pairwise.
	if len(points) != 20 {
		t.Fatalf("expected 20 distinct grid points, got %d", len(points))
	}
	corners := 0
	for _, p := range points {
		if !onRectBoundary(p.pt, 100, 100) {
			t.Errorf("grid point %v off the boundary", p.pt)
		}
		if p.edges&(p.edges-1) != 0 {
			corners++
		}
	}
	if corners != 4 {
		t.Errorf("expected 4 corner points carrying two edge bits, got %d", corners)
	}
}

func TestSampleCutsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cuts, err := SampleCuts(rng, 10, 100, 80, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(cuts) != 10 {
		t.Fatalf("expected 10 cuts, got %d", len(cuts))
	}
	seen := map[model.Cut]bool{}
	for i, c := range cuts {
		if !onRectBoundary(c.From, 100, 80) || !onRectBoundary(c.To, 100, 80) {
			t.Errorf("cut %d endpoints off the boundary: %v", i, c)
		}
		if sharesEdge(c, 100, 80) {
			t.Errorf("cut %d runs along an edge: %v", i, c)
		}
		key := c.Canonical()
		if seen[key] {
			t.Errorf("cut %d duplicates an earlier cut: %v", i, c)
		}
		seen[key] = true
	}
}

// sharesEdge reports whether both endpoints lie on a common edge of the
// width x length rectangle.
func sharesEdge(c model.Cut, width, length float64) bool {
	type test struct{ a, b bool }
	checks := []test{
		{c.From.X == 0, c.To.X == 0},
		{c.From.X == width, c.To.X == width},
		{c.From.Y == 0, c.To.Y == 0},
		{c.From.Y == length, c.To.Y == length},
	}
	for _, ch := range checks {
		if ch.a && ch.b {
			return true
		}
	}
	return false
}

func TestSampleCutsZero(t *testing.T) {
	cuts, err := SampleCuts(rand.New(rand.NewSource(1)), 0, 100, 100, 6)
	if err != nil || len(cuts) != 0 {
		t.Errorf("zero cuts should return an empty set, got %v, %v", cuts, err)
	}
}

func TestSampleCutsTooMany(t *testing.T) {
	if _, err := SampleCuts(rand.New(rand.NewSource(1)), 1000, 100, 100, 2); err == nil {
		t.Error("expected error when k exceeds the grid's distinct cut count")
	}
}

func TestSampleCutsDeterministic(t *testing.T) {
	a, err := SampleCuts(rand.New(rand.NewSource(7)), 5, 100, 100, 6)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SampleCuts(rand.New(rand.NewSource(7)), 5, 100, 100, 6)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("equal seeds must yield equal cuts: %v vs %v", a, b)
		}
	}
}

package geometry

import (
	"math"
	"testing"
)

func rectangle(w, h float64) Polygon {
	return Polygon{{0, 0}, {0, h}, {w, h}, {w, 0}}
}

func TestPolygonArea(t *testing.T) {
	r := rectangle(10, 4)
	if got := r.Area(); math.Abs(got-40) > 1e-9 {
		t.Errorf("expected area 40, got %f", got)
	}

	tri := Polygon{{0, 0}, {4, 0}, {0, 3}}
	if got := tri.Area(); math.Abs(got-6) > 1e-9 {
		t.Errorf("expected area 6, got %f", got)
	}
}

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}, {0, 0}}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("expected 4 hull vertices, got %d", len(hull))
	}
	if got := hull.Area(); math.Abs(got-100) > 1e-9 {
		t.Errorf("expected hull area 100, got %f", got)
	}
}

func TestSplitByLineBisectsRectangle(t *testing.T) {
	r := rectangle(100, 100)
	res, err := SplitByLine(r, Point{50, 0}, Point{50, 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Intersected {
		t.Fatal("expected an intersection")
	}
	if len(res.Pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(res.Pieces))
	}
	total := 0.0
	for _, p := range res.Pieces {
		a := p.Area()
		if math.Abs(a-5000) > 1e-6 {
			t.Errorf("expected piece area 5000, got %f", a)
		}
		total += a
	}
	if math.Abs(total-10000) > 1e-6 {
		t.Errorf("pieces do not conserve area: %f", total)
	}
}

func TestSplitByLineDiagonal(t *testing.T) {
	r := rectangle(10, 10)
	res, err := SplitByLine(r, Point{0, 0}, Point{10, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Intersected || len(res.Pieces) != 2 {
		t.Fatalf("expected diagonal split into 2 pieces, got %+v", res)
	}
	for _, p := range res.Pieces {
		if math.Abs(p.Area()-50) > 1e-6 {
			t.Errorf("expected triangle area 50, got %f", p.Area())
		}
	}
}

func TestSplitByLineMiss(t *testing.T) {
	r := rectangle(10, 10)
	res, err := SplitByLine(r, Point{20, 0}, Point{20, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intersected {
		t.Error("line outside the polygon must not intersect")
	}
}

func TestSplitByLineTangent(t *testing.T) {
	r := rectangle(10, 10)
	// Runs exactly along the left edge: grazing, not a split.
	res, err := SplitByLine(r, Point{0, 0}, Point{0, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intersected {
		t.Error("tangential line must not split")
	}
}

func TestSplitByLineMalformed(t *testing.T) {
	if _, err := SplitByLine(Polygon{{0, 0}, {1, 1}}, Point{0, 0}, Point{1, 0}); err == nil {
		t.Error("expected error for degenerate polygon")
	}
	if _, err := SplitByLine(rectangle(1, 1), Point{0, 0}, Point{0, 0}); err == nil {
		t.Error("expected error for zero-length line")
	}
	bad := Polygon{{0, 0}, {math.NaN(), 1}, {1, 0}}
	if _, err := SplitByLine(bad, Point{0, 0}, Point{1, 0}); err == nil {
		t.Error("expected error for non-finite polygon")
	}
}

func TestMinEnclosingCircleSquare(t *testing.T) {
	c := MinEnclosingCircle([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	want := math.Sqrt(200) / 2
	if math.Abs(c.Radius-want) > 1e-6 {
		t.Errorf("expected radius %f, got %f", want, c.Radius)
	}
	if math.Abs(c.Center.X-5) > 1e-6 || math.Abs(c.Center.Y-5) > 1e-6 {
		t.Errorf("expected center (5,5), got %+v", c.Center)
	}
}

func TestMinEnclosingCircleCollinear(t *testing.T) {
	c := MinEnclosingCircle([]Point{{0, 0}, {5, 0}, {10, 0}})
	if math.Abs(c.Radius-5) > 1e-6 {
		t.Errorf("expected radius 5, got %f", c.Radius)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(1.005); math.Abs(got-1.0) > 0.011 {
		t.Errorf("unexpected rounding: %f", got)
	}
	if got := Round2(3.14159); got != 3.14 {
		t.Errorf("expected 3.14, got %f", got)
	}
	p := Point{X: 1.2345, Y: 9.8765}.Round()
	if p.X != 1.23 || p.Y != 9.88 {
		t.Errorf("unexpected rounded point: %+v", p)
	}
}

// Package geometry provides the convex-polygon primitives used by the cut
// planner: convex hulls, polygon splitting by a line, and minimal enclosing
// circles. All coordinates are plain float64 in cake units.
package geometry

import (
	"errors"
	"math"
)

// ErrMalformed reports a polygon the primitives cannot operate on
// (fewer than three vertices, or non-finite coordinates). Callers treat
// this as fatal rather than retrying.
var ErrMalformed = errors.New("geometry: malformed polygon")

const eps = 1e-9

// Point represents a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Round2 rounds a coordinate to two decimal places. Cut endpoints are kept
// at this precision so cuts stay comparable and hashable.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round returns the point rounded to two decimal places per axis.
func (p Point) Round() Point {
	return Point{X: Round2(p.X), Y: Round2(p.Y)}
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between two points.
func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// cross returns the z component of (a-o) x (b-o).
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Polygon is a simple polygon given as an ordered vertex list. The polygon
// is implicitly closed: the last vertex connects back to the first.
type Polygon []Point

// Area returns the absolute area via the shoelace formula.
func (pg Polygon) Area() float64 {
	if len(pg) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pg {
		q := pg[(i+1)%len(pg)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the arithmetic mean of the vertices. For the convex
// pieces produced by the planner this is always an interior point, which is
// all the label placement needs.
func (pg Polygon) Centroid() Point {
	var c Point
	if len(pg) == 0 {
		return c
	}
	for _, p := range pg {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pg))
	c.Y /= float64(len(pg))
	return c
}

// BoundingBox returns the min and max corners of the polygon.
func (pg Polygon) BoundingBox() (min, max Point) {
	if len(pg) == 0 {
		return Point{}, Point{}
	}
	min, max = pg[0], pg[0]
	for _, p := range pg[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// finite reports whether all vertices have finite coordinates.
func (pg Polygon) finite() bool {
	for _, p := range pg {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// ConvexHull computes the convex hull of a point set using the monotone
// chain algorithm. The result is in counter-clockwise order without the
// closing point. Degenerate inputs (fewer than three distinct points)
// are returned as-is after deduplication.
func ConvexHull(pts []Point) Polygon {
	p := dedupePoints(pts)
	if len(p) < 3 {
		return Polygon(p)
	}
	sortPoints(p)

	lower := make([]Point, 0, len(p))
	for _, pt := range p {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], pt) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, pt)
	}

	upper := make([]Point, 0, len(p))
	for i := len(p) - 1; i >= 0; i-- {
		pt := p[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], pt) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, pt)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return Polygon(hull)
}

func dedupePoints(pts []Point) []Point {
	seen := make(map[Point]bool, len(pts))
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func sortPoints(p []Point) {
	// Lexicographic by X then Y; insertion sort keeps this dependency-free
	// for the small vertex counts involved.
	for i := 1; i < len(p); i++ {
		for j := i; j > 0; j-- {
			if p[j].X < p[j-1].X || (p[j].X == p[j-1].X && p[j].Y < p[j-1].Y) {
				p[j], p[j-1] = p[j-1], p[j]
			} else {
				break
			}
		}
	}
}

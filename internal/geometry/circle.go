package geometry

import "math"

// Circle is a center plus radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside the circle, with a small slack so
// points on the boundary count as inside.
func (c Circle) Contains(p Point) bool {
	return Dist(c.Center, p) <= c.Radius+1e-7
}

// MinEnclosingCircle computes the minimal circle enclosing all points using
// Welzl's move-to-front algorithm. The input order is used as-is, keeping
// the result deterministic; the point sets here are polygon vertices and
// small enough that the worst case does not matter.
func MinEnclosingCircle(pts []Point) Circle {
	if len(pts) == 0 {
		return Circle{}
	}
	c := Circle{Center: pts[0]}
	for i := 1; i < len(pts); i++ {
		if c.Contains(pts[i]) {
			continue
		}
		c = circleWithOne(pts[:i], pts[i])
	}
	return c
}

// circleWithOne returns the minimal circle over pts with q on its boundary.
func circleWithOne(pts []Point, q Point) Circle {
	c := Circle{Center: q}
	for i, p := range pts {
		if c.Contains(p) {
			continue
		}
		c = circleWithTwo(pts[:i], p, q)
	}
	return c
}

// circleWithTwo returns the minimal circle over pts with q1 and q2 on its
// boundary.
func circleWithTwo(pts []Point, q1, q2 Point) Circle {
	c := circleFromTwo(q1, q2)
	for _, p := range pts {
		if c.Contains(p) {
			continue
		}
		c = circleFromThree(q1, q2, p)
	}
	return c
}

func circleFromTwo(a, b Point) Circle {
	center := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return Circle{Center: center, Radius: Dist(a, b) / 2}
}

func circleFromThree(a, b, c Point) Circle {
	// Circumcircle via perpendicular bisector intersection. Collinear
	// triples fall back to the widest two-point circle.
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < eps {
		best := circleFromTwo(a, b)
		for _, cand := range []Circle{circleFromTwo(a, c), circleFromTwo(b, c)} {
			if cand.Radius > best.Radius {
				best = cand
			}
		}
		return best
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	center := Point{X: ux, Y: uy}
	return Circle{Center: center, Radius: Dist(center, a)}
}

package geometry

// SplitResult describes the outcome of splitting a convex polygon by a
// line. The three cases the planner cares about are kept explicit:
// no intersection (the polygon passes through unchanged), a real split
// into pieces, and malformed input (surfaced as an error by SplitByLine).
type SplitResult struct {
	Intersected bool
	Pieces      []Polygon
}

// SplitByLine splits a convex polygon by the infinite line through a and b,
// returning the convex-hulled pieces on each side. If the line misses the
// polygon or only grazes an edge or vertex, the result reports no
// intersection and the polygon should be kept unchanged.
//
// Within the planner every cut runs boundary to boundary across the cake,
// so the chord of the line inside any piece is always covered by the cut
// segment and splitting by the full line is equivalent to splitting by the
// segment.
func SplitByLine(pg Polygon, a, b Point) (SplitResult, error) {
	if len(pg) < 3 || !pg.finite() {
		return SplitResult{}, ErrMalformed
	}
	if Dist(a, b) < eps {
		return SplitResult{}, ErrMalformed
	}

	sides := make([]float64, len(pg))
	hasPos, hasNeg := false, false
	for i, p := range pg {
		s := cross(a, b, p)
		sides[i] = s
		if s > eps {
			hasPos = true
		} else if s < -eps {
			hasNeg = true
		}
	}
	if !hasPos || !hasNeg {
		return SplitResult{Intersected: false}, nil
	}

	var left, right []Point
	for i, p := range pg {
		s := sides[i]
		if s >= -eps {
			left = append(left, p)
		}
		if s <= eps {
			right = append(right, p)
		}
		j := (i + 1) % len(pg)
		sj := sides[j]
		if (s > eps && sj < -eps) || (s < -eps && sj > eps) {
			t := s / (s - sj)
			q := pg[j]
			x := Point{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
			left = append(left, x)
			right = append(right, x)
		}
	}

	var pieces []Polygon
	for _, side := range [][]Point{left, right} {
		// Hull-close each side; split slivers below numerical noise are
		// treated the same as a tangential line.
		h := ConvexHull(side)
		if h.Area() > eps {
			pieces = append(pieces, h)
		}
	}
	if len(pieces) < 2 {
		return SplitResult{Intersected: false}, nil
	}
	return SplitResult{Intersected: true, Pieces: pieces}, nil
}

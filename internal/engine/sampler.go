package engine

import (
	"fmt"
	"math/rand"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

// Edge bits for boundary point classification. A corner point carries two
// bits, so a cut never runs along any edge it touches.
const (
	edgeLeft = 1 << iota
	edgeRight
	edgeTop
	edgeBottom
)

// boundaryPoint is a candidate cut endpoint with the set of edges it lies on.
type boundaryPoint struct {
	pt    geometry.Point
	edges uint8
}

// boundaryPoints samples granularity evenly spaced points along each of the
// four edges, rounded to two decimals and deduplicated at the corners.
func boundaryPoints(width, length float64, granularity int) []boundaryPoint {
	gap := float64(granularity - 1)
	index := make(map[geometry.Point]int)
	var points []boundaryPoint

	add := func(p geometry.Point, edge uint8) {
		p = p.Round()
		if i, ok := index[p]; ok {
			points[i].edges |= edge
			return
		}
		index[p] = len(points)
		points = append(points, boundaryPoint{pt: p, edges: edge})
	}

	for i := 0; i < granularity; i++ {
		t := float64(i) / gap
		add(geometry.Point{X: 0, Y: length * t}, edgeLeft)
		add(geometry.Point{X: width, Y: length * t}, edgeRight)
		add(geometry.Point{X: width * t, Y: 0}, edgeTop)
		add(geometry.Point{X: width * t, Y: length}, edgeBottom)
	}
	return points
}

// maxDistinctCuts counts the unordered point pairs that share no edge, i.e.
// the number of distinct legal cuts the grid can produce.
func maxDistinctCuts(points []boundaryPoint) int {
	n := 0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].edges&points[j].edges == 0 {
				n++
			}
		}
	}
	return n
}

// SampleCuts draws k distinct random cuts between boundary grid points.
// Both endpoints of a cut always lie on different edges. Requesting more
// cuts than the grid can produce is a configuration error; the caller must
// choose granularity and k so the rejection loop terminates.
func SampleCuts(rng *rand.Rand, k int, width, length float64, granularity int) (model.CutSet, error) {
	if k == 0 {
		return model.CutSet{}, nil
	}
	if granularity < 2 {
		return nil, fmt.Errorf("granularity must be at least 2, got %d", granularity)
	}

	points := boundaryPoints(width, length, granularity)
	if limit := maxDistinctCuts(points); k > limit {
		return nil, fmt.Errorf("cannot sample %d distinct cuts from a %d-point grid (max %d)", k, len(points), limit)
	}

	selected := make(model.CutSet, 0, k)
	seen := make(map[model.Cut]bool, k)
	for len(selected) < k {
		from := points[rng.Intn(len(points))]

		var targets []geometry.Point
		for _, p := range points {
			if p.edges&from.edges == 0 {
				targets = append(targets, p.pt)
			}
		}
		to := targets[rng.Intn(len(targets))]

		cut := model.Cut{From: from.pt, To: to}
		key := cut.Canonical()
		if seen[key] {
			continue
		}
		seen[key] = true
		selected = append(selected, cut)
	}
	return selected, nil
}

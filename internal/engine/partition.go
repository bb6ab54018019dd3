package engine

import (
	"fmt"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

// baseRectangle returns the whole cake as a single polygon.
func baseRectangle(width, length float64) geometry.Polygon {
	return geometry.Polygon{
		{X: 0, Y: 0},
		{X: 0, Y: length},
		{X: width, Y: length},
		{X: width, Y: 0},
	}
}

// Partition applies the cut set in order to the full cake rectangle and
// returns the resulting convex pieces. Each cut splits every piece its line
// crosses; pieces the line misses pass through unchanged. A geometry error
// is fatal: it means a cut or piece violated an invariant, not a transient
// condition.
func Partition(cuts model.CutSet, width, length float64) ([]geometry.Polygon, error) {
	pieces := []geometry.Polygon{baseRectangle(width, length)}

	for i, cut := range cuts {
		next := make([]geometry.Polygon, 0, len(pieces)+1)
		for _, piece := range pieces {
			res, err := geometry.SplitByLine(piece, cut.From, cut.To)
			if err != nil {
				return nil, fmt.Errorf("apply cut %d (%v -> %v): %w", i, cut.From, cut.To, err)
			}
			if !res.Intersected {
				next = append(next, piece)
				continue
			}
			next = append(next, res.Pieces...)
		}
		pieces = next
	}
	return pieces, nil
}

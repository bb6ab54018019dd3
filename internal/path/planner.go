// Package path turns a cut set into a knife move sequence that never
// crosses the interior of the cake. Between cuts the knife travels along
// the boundary using the shaving trick: it hugs the nearest edge at a
// hair's distance, ricocheting off corners when the next cut starts on a
// different edge.
package path

import (
	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

// PlanMoves converts the cut set into knife instructions. The first move
// places the knife at the first cut's start; every later move is a cut,
// including the boundary-hugging transfers between consecutive cuts.
func PlanMoves(cuts model.CutSet, width, length float64) []model.Move {
	if len(cuts) == 0 {
		return nil
	}
	moves := make([]model.Move, 0, 2*len(cuts))
	var last geometry.Point
	for i, cut := range cuts {
		if i == 0 {
			moves = append(moves, model.Move{Kind: model.MoveInit, To: cut.From})
		} else {
			for _, p := range sneak(last, cut.From, width, length) {
				moves = append(moves, model.Move{Kind: model.MoveCut, To: p})
			}
		}
		moves = append(moves, model.Move{Kind: model.MoveCut, To: cut.To})
		last = cut.To
	}
	return moves
}

// sneak returns the waypoints that take the knife from start to end along
// the boundary. The final waypoint is always end itself. When the two
// points sit on different edges the knife shaves past a corner: it stops
// a hair short of the edge it is leaving, turns, and continues along the
// next edge.
func sneak(start, end geometry.Point, width, length float64) []geometry.Point {
	nearX, xDist := nearestEdgeX(start, width)
	nearY, yDist := nearestEdgeY(start, length)

	endX, endXDist := nearestEdgeX(end, width)
	endY, endYDist := nearestEdgeY(end, length)

	var pts []geometry.Point

	switch {
	case yDist == 0 && (xDist > 0.1 || nearX != endX):
		// On a horizontal edge and the target is not right next door.
		by := bounce(nearY)
		pts = append(pts, geometry.Point{X: endX, Y: by})

		if endYDist > 0 || nearY != endY {
			bx := bounce(endX)
			pts = append(pts, geometry.Point{X: bx, Y: nearY})

			if endYDist == 0 {
				// Target sits on the opposite horizontal edge.
				by = bounce(endY)
				pts = append(pts,
					geometry.Point{X: bx, Y: endY},
					geometry.Point{X: endX, Y: by},
				)
			}
		}
	case xDist == 0 && (yDist > 0.1 || nearY != endY):
		// On a vertical edge and the target is not right next door.
		bx := bounce(nearX)
		pts = append(pts, geometry.Point{X: bx, Y: endY})

		if endXDist > 0 || nearX != endX {
			by := bounce(endY)
			pts = append(pts, geometry.Point{X: nearX, Y: by})

			if endXDist == 0 {
				// Target sits on the opposite vertical edge.
				bx = bounce(endX)
				pts = append(pts,
					geometry.Point{X: endX, Y: by},
					geometry.Point{X: bx, Y: endY},
				)
			}
		}
	}

	return append(pts, end)
}

// nearestEdgeX returns the closer of the left and right edge x values and
// the distance to it.
func nearestEdgeX(p geometry.Point, width float64) (edge, dist float64) {
	if width-p.X < p.X {
		return width, width - p.X
	}
	return 0, p.X
}

// nearestEdgeY returns the closer of the top and bottom edge y values and
// the distance to it.
func nearestEdgeY(p geometry.Point, length float64) (edge, dist float64) {
	if length-p.Y < p.Y {
		return length, length - p.Y
	}
	return 0, p.Y
}

// bounce returns a coordinate one hundredth inside the given edge value.
func bounce(margin float64) float64 {
	if margin == 0 {
		return 0.01
	}
	return geometry.Round2(margin - 0.01)
}

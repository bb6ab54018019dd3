package path

import (
	"fmt"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

const eps = 1e-9

// Validate checks that a move sequence is executable on the given cake:
// the first move places the knife and every target lies on the boundary
// rectangle.
func Validate(moves []model.Move, width, length float64) error {
	if len(moves) == 0 {
		return nil
	}
	if moves[0].Kind != model.MoveInit {
		return fmt.Errorf("first move must be %q, got %q", model.MoveInit, moves[0].Kind)
	}
	for i, m := range moves {
		if i > 0 && m.Kind != model.MoveCut {
			return fmt.Errorf("move %d: knife may only be placed once", i)
		}
		if !onBoundary(m.To, width, length) {
			return fmt.Errorf("move %d: point (%g, %g) is not on the cake boundary", i, m.To.X, m.To.Y)
		}
	}
	return nil
}

func onBoundary(p geometry.Point, width, length float64) bool {
	if p.X < -eps || p.X > width+eps || p.Y < -eps || p.Y > length+eps {
		return false
	}
	onX := p.X < eps || p.X > width-eps
	onY := p.Y < eps || p.Y > length-eps
	return onX || onY
}

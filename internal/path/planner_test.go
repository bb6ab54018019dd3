package path

import (
	"testing"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

func TestPlanMovesEmpty(t *testing.T) {
	if moves := PlanMoves(nil, 100, 100); moves != nil {
		t.Errorf("expected no moves for empty cut set, got %v", moves)
	}
}

func TestPlanMovesSingleCut(t *testing.T) {
	cuts := model.CutSet{
		{From: geometry.Point{X: 0, Y: 50}, To: geometry.Point{X: 100, Y: 50}},
	}
	moves := PlanMoves(cuts, 100, 100)
	if len(moves) != 2 {
		t.Fatalf("expected init + cut, got %d moves: %v", len(moves), moves)
	}
	if moves[0].Kind != model.MoveInit || moves[0].To != cuts[0].From {
		t.Errorf("first move must place the knife at the cut start, got %v", moves[0])
	}
	if moves[1].Kind != model.MoveCut || moves[1].To != cuts[0].To {
		t.Errorf("second move must cut to the end point, got %v", moves[1])
	}
	if err := Validate(moves, 100, 100); err != nil {
		t.Errorf("moves failed validation: %v", err)
	}
}

func TestPlanMovesStaysOnBoundary(t *testing.T) {
	// Consecutive cuts starting on different edges force corner ricochets.
	cuts := model.CutSet{
		{From: geometry.Point{X: 0, Y: 30}, To: geometry.Point{X: 100, Y: 30}},
		{From: geometry.Point{X: 20, Y: 0}, To: geometry.Point{X: 20, Y: 100}},
		{From: geometry.Point{X: 0, Y: 70}, To: geometry.Point{X: 60, Y: 100}},
	}
	moves := PlanMoves(cuts, 100, 100)
	if err := Validate(moves, 100, 100); err != nil {
		t.Fatalf("planned moves left the boundary: %v", err)
	}
	// Every cut's end point must appear as a move target in order.
	mi := 0
	for ci, cut := range cuts {
		found := false
		for ; mi < len(moves); mi++ {
			if moves[mi].To == cut.To {
				found = true
				mi++
				break
			}
		}
		if !found {
			t.Fatalf("cut %d end point %v never reached", ci, cut.To)
		}
	}
}

func TestSneakCornerNeighborhoodDirectHop(t *testing.T) {
	// A start hugging a corner with the target on the same half of the
	// same edge needs no intermediate waypoints.
	start := geometry.Point{X: 0.05, Y: 0}
	end := geometry.Point{X: 30, Y: 0}
	pts := sneak(start, end, 100, 100)
	if len(pts) != 1 || pts[0] != end {
		t.Errorf("expected direct hop to %v, got %v", end, pts)
	}
}

func TestSneakOppositeEdgeRicochets(t *testing.T) {
	start := geometry.Point{X: 40, Y: 0}
	end := geometry.Point{X: 60, Y: 100}
	pts := sneak(start, end, 100, 100)
	if pts[len(pts)-1] != end {
		t.Fatalf("last waypoint must be the target, got %v", pts)
	}
	if len(pts) < 3 {
		t.Fatalf("opposite-edge transfer needs corner ricochets, got %v", pts)
	}
	for i, p := range pts {
		if !onBoundary(p, 100, 100) {
			t.Errorf("waypoint %d (%v) is not on the boundary", i, p)
		}
	}
}

func TestBounce(t *testing.T) {
	if got := bounce(0); got != 0.01 {
		t.Errorf("bounce(0) = %f, want 0.01", got)
	}
	if got := bounce(100); got != 99.99 {
		t.Errorf("bounce(100) = %f, want 99.99", got)
	}
}

func TestNearestEdges(t *testing.T) {
	edge, dist := nearestEdgeX(geometry.Point{X: 20, Y: 50}, 100)
	if edge != 0 || dist != 20 {
		t.Errorf("nearestEdgeX(20) = %f, %f, want 0, 20", edge, dist)
	}
	edge, dist = nearestEdgeX(geometry.Point{X: 80, Y: 50}, 100)
	if edge != 100 || dist != 20 {
		t.Errorf("nearestEdgeX(80) = %f, %f, want 100, 20", edge, dist)
	}
	edge, dist = nearestEdgeY(geometry.Point{X: 50, Y: 99}, 100)
	if edge != 100 || dist != 1 {
		t.Errorf("nearestEdgeY(99) = %f, %f, want 100, 1", edge, dist)
	}
}

func TestValidateRejectsInteriorPoint(t *testing.T) {
	moves := []model.Move{
		{Kind: model.MoveInit, To: geometry.Point{X: 0, Y: 50}},
		{Kind: model.MoveCut, To: geometry.Point{X: 50, Y: 50}},
	}
	if err := Validate(moves, 100, 100); err == nil {
		t.Error("expected error for interior cut target")
	}
}

func TestValidateRejectsLateInit(t *testing.T) {
	moves := []model.Move{
		{Kind: model.MoveInit, To: geometry.Point{X: 0, Y: 50}},
		{Kind: model.MoveInit, To: geometry.Point{X: 0, Y: 60}},
	}
	if err := Validate(moves, 100, 100); err == nil {
		t.Error("expected error for second init move")
	}
}

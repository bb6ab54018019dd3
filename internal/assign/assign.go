// Package assign matches cake pieces to area requests and scores the match.
// Two strategies are provided: a fast greedy best-fit (the default) and an
// exact minimum-cost matching. The evaluator folds plate feasibility and
// tolerance into a single scalar penalty: lower is better, zero is perfect.
package assign

import (
	"fmt"
	"math"
	"sort"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

// UnassignedPenalty is charged per request that gets no piece or whose
// piece does not fit the plate.
const UnassignedPenalty = 100.0

// Strategy pairs requests with pieces. The returned assignment has one
// entry per request, -1 for unassigned, and uses each piece at most once.
type Strategy interface {
	Name() string
	Assign(pieces []geometry.Polygon, requests []float64, tolerance float64) model.Assignment
}

// ByName resolves a strategy from its configuration name.
func ByName(name string) (Strategy, error) {
	switch name {
	case "", "greedy":
		return Greedy{}, nil
	case "hungarian":
		return Hungarian{}, nil
	default:
		return nil, fmt.Errorf("unknown assignment strategy %q", name)
	}
}

// Greedy assigns requests largest-first to the unused piece with the
// closest area. Fast enough to sit inside the search's inner loop.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Assign(pieces []geometry.Polygon, requests []float64, tolerance float64) model.Assignment {
	areas := make([]float64, len(pieces))
	for i, p := range pieces {
		areas[i] = p.Area()
	}

	order := make([]int, len(requests))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return requests[order[i]] > requests[order[j]]
	})

	assignment := make(model.Assignment, len(requests))
	for i := range assignment {
		assignment[i] = -1
	}
	used := make([]bool, len(pieces))

	for _, ri := range order {
		best := -1
		bestDiff := math.Inf(1)
		for pi, a := range areas {
			if used[pi] {
				continue
			}
			diff := math.Abs(a - requests[ri])
			if diff < bestDiff {
				bestDiff = diff
				best = pi
			}
		}
		if best >= 0 {
			assignment[ri] = best
			used[best] = true
		}
	}
	return assignment
}

// Evaluator computes the scalar penalty for a piece set against the
// requests. It wraps a matching strategy and applies the plate-fit check.
type Evaluator struct {
	Strategy    Strategy
	PlateRadius float64
	CrumbArea   float64
}

// NewEvaluator builds an evaluator with the given strategy and plate
// parameters.
func NewEvaluator(s Strategy, plateRadius, crumbArea float64) *Evaluator {
	return &Evaluator{Strategy: s, PlateRadius: plateRadius, CrumbArea: crumbArea}
}

// Evaluate returns both the assignment and its total penalty. Per request:
// 100 for unassigned or plate-infeasible; otherwise the percentage area
// error when it exceeds the tolerance; otherwise zero.
func (e *Evaluator) Evaluate(pieces []geometry.Polygon, requests []float64, tolerance float64) (model.Assignment, float64) {
	assignment := e.Strategy.Assign(pieces, requests, tolerance)

	var penalty float64
	for ri, pi := range assignment {
		if pi < 0 || !e.FitsPlate(pieces[pi]) {
			penalty += UnassignedPenalty
			continue
		}
		pct := 100 * math.Abs(pieces[pi].Area()-requests[ri]) / requests[ri]
		if pct > tolerance {
			penalty += pct
		}
	}
	return assignment, penalty
}

// Penalty is Evaluate without the assignment.
func (e *Evaluator) Penalty(pieces []geometry.Polygon, requests []float64, tolerance float64) float64 {
	_, p := e.Evaluate(pieces, requests, tolerance)
	return p
}

// FitsPlate reports whether a piece fits within the plate circle. Crumbs
// below the area threshold skip the enclosing-circle computation and always
// fit.
func (e *Evaluator) FitsPlate(piece geometry.Polygon) bool {
	if piece.Area() < e.CrumbArea {
		return true
	}
	return geometry.MinEnclosingCircle(piece).Radius <= e.PlateRadius
}

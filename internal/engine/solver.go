// Package engine searches for a set of straight cuts partitioning a
// rectangular cake into convex pieces matching a list of requested areas.
// The search runs in three stages: a randomized sweep over candidate cut
// counts, a high-volume sampling pass at the best count, and a genetic
// refinement of the winning cut set's endpoints. The final cut set is
// converted into a boundary-respecting knife move sequence.
package engine

import (
	"fmt"

	"github.com/sliceforge/cakecut/internal/assign"
	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
	"github.com/sliceforge/cakecut/internal/path"
)

// Stage identifies a solver phase for progress reporting.
type Stage string

const (
	StageSearch Stage = "search"
	StageSpam   Stage = "spam"
	StageShake  Stage = "shake"
)

// Solver runs the full cut-planning pipeline for one problem instance.
type Solver struct {
	requests  []float64
	width     float64
	length    float64
	tolerance float64
	settings  model.Settings
	eval      *assign.Evaluator
	seeds     *seedMaker

	// OnProgress, when set, is called after each completed trial or
	// generation. It runs on the solver's reducer goroutine.
	OnProgress func(stage Stage, done, total int)
}

// NewSolver validates the problem and builds a solver. All randomness
// derives from settings.Seed, so equal inputs produce equal outputs.
func NewSolver(requests []float64, width, length, tolerance float64, settings model.Settings) (*Solver, error) {
	if width <= 0 || length <= 0 {
		return nil, fmt.Errorf("cake dimensions must be positive, got %gx%g", width, length)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("tolerance must be non-negative, got %g", tolerance)
	}
	for i, r := range requests {
		if r <= 0 {
			return nil, fmt.Errorf("request %d must be positive, got %g", i, r)
		}
	}
	strategy, err := assign.ByName(settings.Strategy)
	if err != nil {
		return nil, err
	}
	return &Solver{
		requests:  requests,
		width:     width,
		length:    length,
		tolerance: tolerance,
		settings:  settings,
		eval:      assign.NewEvaluator(strategy, settings.PlateRadius, settings.CrumbArea),
		seeds:     newSeedMaker(settings.Seed),
	}, nil
}

// Solve runs search, refinement and path planning, returning the best
// solution found within the configured budgets. The result is always
// usable, even when the penalty is not zero.
func (s *Solver) Solve() (*model.Solution, error) {
	if len(s.requests) == 0 {
		return &model.Solution{
			Cuts:       model.CutSet{},
			Pieces:     []geometry.Polygon{baseRectangle(s.width, s.length)},
			Assignment: model.Assignment{},
		}, nil
	}

	cuts, penalty, err := s.searchBestCuts()
	if err != nil {
		return nil, err
	}

	cuts, penalty, err = s.shake(cuts, penalty)
	if err != nil {
		return nil, err
	}

	pieces, err := Partition(cuts, s.width, s.length)
	if err != nil {
		return nil, err
	}
	assignment, penalty := s.eval.Evaluate(pieces, s.requests, s.tolerance)

	return &model.Solution{
		Cuts:       cuts,
		CutCount:   len(cuts),
		Pieces:     pieces,
		Assignment: assignment,
		Moves:      path.PlanMoves(cuts, s.width, s.length),
		Penalty:    penalty,
	}, nil
}

func (s *Solver) progress(stage Stage, done, total int) {
	if s.OnProgress != nil {
		s.OnProgress(stage, done, total)
	}
}

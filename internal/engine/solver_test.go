package engine

import (
	"math"
	"testing"

	"github.com/sliceforge/cakecut/internal/model"
	"github.com/sliceforge/cakecut/internal/path"
)

func testSettings() model.Settings {
	s := model.DefaultSettings()
	// Large plate so geometry, not plate feasibility, drives the tests.
	s.PlateRadius = 200
	s.SpamTrials = 500
	return s
}

func TestNewSolverRejectsBadInput(t *testing.T) {
	s := testSettings()
	if _, err := NewSolver([]float64{100}, 0, 100, 0, s); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewSolver([]float64{100}, 100, 100, -1, s); err == nil {
		t.Error("expected error for negative tolerance")
	}
	if _, err := NewSolver([]float64{-5}, 100, 100, 0, s); err == nil {
		t.Error("expected error for non-positive request")
	}
	bad := s
	bad.Strategy = "nope"
	if _, err := NewSolver([]float64{100}, 100, 100, 0, bad); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestSolveNoRequests(t *testing.T) {
	sv, err := NewSolver(nil, 100, 80, 0, testSettings())
	if err != nil {
		t.Fatal(err)
	}
	sol, err := sv.Solve()
	if err != nil {
		t.Fatal(err)
	}
	if len(sol.Cuts) != 0 || len(sol.Pieces) != 1 || sol.Penalty != 0 {
		t.Errorf("empty problem must yield the uncut cake, got %+v", sol)
	}
}

func TestSolveTwoHalves(t *testing.T) {
	sv, err := NewSolver([]float64{5000, 5000}, 100, 100, 0, testSettings())
	if err != nil {
		t.Fatal(err)
	}
	sol, err := sv.Solve()
	if err != nil {
		t.Fatal(err)
	}
	// Any single cut beats leaving the cake whole (penalty 200), and the
	// coarse grid contains several exact halvings.
	if sol.Penalty >= 200 {
		t.Errorf("penalty %f not better than the uncut cake", sol.Penalty)
	}
	if len(sol.Assignment) != 2 {
		t.Fatalf("assignment length %d, want 2", len(sol.Assignment))
	}
	total := 0.0
	for _, p := range sol.Pieces {
		total += p.Area()
	}
	if math.Abs(total-10000) > 1e-6 {
		t.Errorf("pieces sum to %f, want the full cake area", total)
	}
	if err := path.Validate(sol.Moves, 100, 100); err != nil {
		t.Errorf("move plan invalid: %v", err)
	}
}

func TestSolveDeterministic(t *testing.T) {
	run := func() *model.Solution {
		s := testSettings()
		s.SpamTrials = 200
		sv, err := NewSolver([]float64{3000, 3000, 4000}, 100, 100, 5, s)
		if err != nil {
			t.Fatal(err)
		}
		sol, err := sv.Solve()
		if err != nil {
			t.Fatal(err)
		}
		return sol
	}
	a, b := run(), run()
	if a.Penalty != b.Penalty || a.CutCount != b.CutCount {
		t.Fatalf("equal seeds must yield equal solutions: %f/%d vs %f/%d",
			a.Penalty, a.CutCount, b.Penalty, b.CutCount)
	}
	for i := range a.Cuts {
		if a.Cuts[i] != b.Cuts[i] {
			t.Fatalf("cut %d differs between identical runs", i)
		}
	}
}

func TestSolveReportsProgress(t *testing.T) {
	s := testSettings()
	s.TrialsPerCount = 20
	s.SpamTrials = 0
	sv, err := NewSolver([]float64{5000, 5000}, 100, 100, 10, s)
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	sv.OnProgress = func(stage Stage, done, total int) { calls++ }
	if _, err := sv.Solve(); err != nil {
		t.Fatal(err)
	}
	if calls == 0 {
		t.Error("expected progress callbacks during the search")
	}
}

func TestCutCountBounds(t *testing.T) {
	cases := []struct{ n, min, max int }{
		{1, 0, 1},
		{2, 0, 1},
		{3, 1, 2},
		{9, 3, 8},
		{12, 4, 11},
	}
	for _, c := range cases {
		min, max := cutCountBounds(c.n)
		if min != c.min || max != c.max {
			t.Errorf("cutCountBounds(%d) = %d, %d, want %d, %d", c.n, min, max, c.min, c.max)
		}
	}
}

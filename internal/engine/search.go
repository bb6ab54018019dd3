package engine

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/sliceforge/cakecut/internal/model"
)

// cutCountBounds returns the cut-count search range for a request count.
// An average cut roughly triples the piece count, so the lower bound is a
// third of the requests; the upper bound is one cut per request minus one,
// raised above the lower bound when the two would collide.
func cutCountBounds(requestCount int) (minCuts, maxCuts int) {
	minCuts = requestCount / 3
	maxCuts = requestCount - 1
	if maxCuts <= minCuts {
		maxCuts = minCuts + 1
	}
	return minCuts, maxCuts
}

// trialOutcome is one scored random cut set.
type trialOutcome struct {
	idx     int
	cuts    model.CutSet
	penalty float64
	err     error
}

// runTrials samples and scores the given number of independent cut sets in
// parallel and returns the one with the lowest penalty. Each trial derives
// its own seed from the stage seed and its index, so results do not depend
// on scheduling; ties resolve to the lowest trial index.
func (s *Solver) runTrials(stage Stage, trials, cutCount, granularity int) (model.CutSet, float64, error) {
	workers := s.settings.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > trials {
		workers = trials
	}

	base := s.seeds.next()
	jobs := make(chan int)
	results := make(chan trialOutcome, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				rng := rand.New(rand.NewSource(trialSeed(base, idx)))
				cuts, err := SampleCuts(rng, cutCount, s.width, s.length, granularity)
				if err != nil {
					results <- trialOutcome{idx: idx, err: err}
					continue
				}
				pieces, err := Partition(cuts, s.width, s.length)
				if err != nil {
					results <- trialOutcome{idx: idx, err: err}
					continue
				}
				results <- trialOutcome{
					idx:     idx,
					cuts:    cuts,
					penalty: s.eval.Penalty(pieces, s.requests, s.tolerance),
				}
			}
		}()
	}
	go func() {
		for i := 0; i < trials; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	best := trialOutcome{idx: -1, penalty: math.Inf(1)}
	var firstErr error
	done := 0
	for r := range results {
		done++
		s.progress(stage, done, trials)
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		if r.penalty < best.penalty || (r.penalty == best.penalty && (best.idx < 0 || r.idx < best.idx)) {
			best = r
		}
	}
	if firstErr != nil {
		return nil, 0, firstErr
	}
	return best.cuts, best.penalty, nil
}

// searchBestCuts sweeps candidate cut counts, keeping the best-scoring cut
// set, then spends the spam budget on the winning count at a finer
// boundary grid. The sweep stops early once the candidate count exceeds
// the best-known count by the configured margin, assuming the penalty is
// roughly unimodal in the cut count.
func (s *Solver) searchBestCuts() (model.CutSet, float64, error) {
	minCuts, maxCuts := cutCountBounds(len(s.requests))

	// The coarse grid caps how many distinct cuts exist; clamp the range
	// so the sampler's rejection loop always terminates.
	if limit := maxDistinctCuts(boundaryPoints(s.width, s.length, s.settings.CoarseGranularity)); maxCuts > limit {
		maxCuts = limit
		if minCuts > maxCuts {
			minCuts = maxCuts
		}
	}

	bestCuts := model.CutSet{}
	bestPenalty := math.Inf(1)
	bestCount := minCuts

	for c := minCuts; c <= maxCuts; c++ {
		if bestCount+s.settings.EarlyExitMargin < c {
			break
		}
		cuts, penalty, err := s.runTrials(StageSearch, s.settings.TrialsPerCount, c, s.settings.CoarseGranularity)
		if err != nil {
			return nil, 0, err
		}
		if penalty < bestPenalty {
			bestCuts, bestPenalty, bestCount = cuts, penalty, c
		}
	}

	if s.settings.SpamTrials > 0 && bestCount > 0 && bestPenalty > 0 {
		cuts, penalty, err := s.runTrials(StageSpam, s.settings.SpamTrials, bestCount, s.settings.FineGranularity)
		if err != nil {
			return nil, 0, err
		}
		if penalty < bestPenalty {
			bestCuts, bestPenalty = cuts, penalty
		}
	}
	return bestCuts, bestPenalty, nil
}

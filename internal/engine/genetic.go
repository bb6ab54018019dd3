package engine

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

// endpointOffset is a perturbation of one cut endpoint.
type endpointOffset struct {
	dx, dy float64
}

// cutOffset perturbs both endpoints of one cut.
type cutOffset struct {
	from, to endpointOffset
}

// candidate is one genetic individual: a perturbation per cut of the base
// cut set. The all-zero candidate reproduces the base exactly.
type candidate struct {
	offsets []cutOffset
	penalty float64
	scored  bool
}

// refiner runs the population-based local search that nudges cut endpoints
// along their boundary edges to shave penalty off an already-good cut set.
type refiner struct {
	solver *Solver
	base   model.CutSet
	cfg    model.GeneticConfig
	rng    *rand.Rand
}

// shake refines the cut set's endpoints. The returned penalty is never
// worse than the input penalty.
func (s *Solver) shake(base model.CutSet, basePenalty float64) (model.CutSet, float64, error) {
	if len(base) == 0 || basePenalty == 0 {
		return base, basePenalty, nil
	}
	r := &refiner{
		solver: s,
		base:   base,
		cfg:    s.settings.Genetic,
		rng:    rand.New(rand.NewSource(s.seeds.next())),
	}
	return r.refine(basePenalty)
}

func (r *refiner) refine(basePenalty float64) (model.CutSet, float64, error) {
	// Seed with two unperturbed candidates so crossover has parents and
	// the base solution stays represented in the first generation.
	pop := []candidate{r.zeroCandidate(basePenalty), r.zeroCandidate(basePenalty)}

	minPenalty := basePenalty
	bestGen := 0
	for gen := 0; minPenalty > 0 && gen <= bestGen+r.cfg.StagnationLimit; gen++ {
		for len(pop) < r.cfg.PopulationSize {
			p1, p2 := r.pickParents(pop)
			pop = append(pop, r.createOffspring(p1, p2))
		}
		if err := r.scorePopulation(pop); err != nil {
			return nil, 0, err
		}
		sort.SliceStable(pop, func(i, j int) bool { return pop[i].penalty < pop[j].penalty })
		if cut := len(pop) - r.cfg.Cutoff; cut >= 2 {
			pop = pop[:cut]
		}
		if pop[0].penalty < minPenalty {
			minPenalty = pop[0].penalty
			bestGen = gen
		}
		r.solver.progress(StageShake, gen-bestGen, r.cfg.StagnationLimit)
	}

	if pop[0].penalty < basePenalty {
		return r.combined(pop[0]), pop[0].penalty, nil
	}
	return r.base, basePenalty, nil
}

func (r *refiner) zeroCandidate(penalty float64) candidate {
	return candidate{
		offsets: make([]cutOffset, len(r.base)),
		penalty: penalty,
		scored:  true,
	}
}

func (r *refiner) pickParents(pop []candidate) (candidate, candidate) {
	i := r.rng.Intn(len(pop))
	j := r.rng.Intn(len(pop))
	for j == i {
		j = r.rng.Intn(len(pop))
	}
	return pop[i], pop[j]
}

// createOffspring crosses two parents cut-by-cut and occasionally mutates
// one endpoint of an inherited cut along the axis that keeps it on its
// boundary edge.
func (r *refiner) createOffspring(p1, p2 candidate) candidate {
	offsets := make([]cutOffset, len(r.base))
	for i := range r.base {
		src := p1
		if r.rng.Float64() < 0.5 {
			src = p2
		}
		off := src.offsets[i]
		if r.rng.Float64() < r.cfg.MutationProb {
			if r.rng.Float64() < 0.5 {
				off.from = r.mutateEndpoint(r.base[i].From, off.from)
			} else {
				off.to = r.mutateEndpoint(r.base[i].To, off.to)
			}
		}
		off.from.dx = geometry.Round2(off.from.dx)
		off.from.dy = geometry.Round2(off.from.dy)
		off.to.dx = geometry.Round2(off.to.dx)
		off.to.dy = geometry.Round2(off.to.dy)
		offsets[i] = off
	}
	return candidate{offsets: offsets}
}

// mutateEndpoint shifts the endpoint by one step along its boundary edge,
// preferring the direction drawn first and falling back to the other when
// the shift would leave the cake.
func (r *refiner) mutateEndpoint(p geometry.Point, off endpointOffset) endpointOffset {
	step := r.cfg.MutationStep
	width := geometry.Round2(r.solver.width)
	length := geometry.Round2(r.solver.length)

	switch {
	case p.X == 0 || p.X == width: // left or right edge: only y moves
		if r.rng.Float64() < 0.5 && p.Y+off.dy+step < length {
			off.dy += step
		} else if p.Y+off.dy-step > 0 {
			off.dy -= step
		}
	case p.Y == 0 || p.Y == length: // top or bottom edge: only x moves
		if r.rng.Float64() < 0.5 && p.X+off.dx+step < width {
			off.dx += step
		} else if p.X+off.dx-step > 0 {
			off.dx -= step
		}
	}
	return off
}

// combined applies a candidate's offsets to the base cut set.
func (r *refiner) combined(c candidate) model.CutSet {
	out := make(model.CutSet, len(r.base))
	for i, cut := range r.base {
		off := c.offsets[i]
		out[i] = model.Cut{
			From: geometry.Point{
				X: geometry.Round2(cut.From.X + off.from.dx),
				Y: geometry.Round2(cut.From.Y + off.from.dy),
			},
			To: geometry.Point{
				X: geometry.Round2(cut.To.X + off.to.dx),
				Y: geometry.Round2(cut.To.Y + off.to.dy),
			},
		}
	}
	return out
}

// scorePopulation evaluates all unscored candidates concurrently. Scoring
// is pure with respect to shared state, so one goroutine per candidate is
// safe.
func (r *refiner) scorePopulation(pop []candidate) error {
	var wg sync.WaitGroup
	errs := make([]error, len(pop))
	for i := range pop {
		if pop[i].scored {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pieces, err := Partition(r.combined(pop[i]), r.solver.width, r.solver.length)
			if err != nil {
				errs[i] = err
				return
			}
			pop[i].penalty = r.solver.eval.Penalty(pieces, r.solver.requests, r.solver.tolerance)
			pop[i].scored = true
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

package genetic

import (
	"math"
	"math/rand"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/knapsack/problem"
)

// Engine is the state machine of one genetic run. It is not safe for
// concurrent use; run independent engines with independent random sources.
type Engine struct {
	p   *problem.Problem
	cfg Config
	rng *rand.Rand

	n           int     // chromosome length = p.Len()
	innerProb   float64 // effective per-gene flip probability
	generations int     // generation budget
	eliteCount  int     // even, < population size

	pop   []Candidate
	order []int // scratch permutation for tournaments
	best  Candidate
	gen   int

	stall     *stallTracker
	converged bool
}

// New validates cfg and builds the first population of p.
//
// Steps:
//  1. Validate p and cfg.
//  2. Resolve derived knobs: even population, even elite count, generation
//     budget and per-gene flip probability.
//  3. Build and score the initial population.
//
// Errors: ErrNilProblem, ErrBadPopulation, ErrBadProbability,
// ErrBadGenerations, ErrBadOption.
func New(p *problem.Problem, cfg Config) (*Engine, error) {
	// 1) Validation.
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2) Derived knobs.
	size := cfg.PopulationSize &^ 1
	e := &Engine{
		p:          p,
		cfg:        cfg,
		rng:        cfg.Rand,
		n:          p.Len(),
		eliteCount: int(float64(size)*cfg.ElitismFraction) &^ 1,
		order:      make([]int, size),
		stall:      newStallTracker(cfg.Patience, cfg.MinImprovement),
	}
	if e.rng == nil {
		e.rng = rngFromSeed(cfg.Seed)
	}
	e.generations = cfg.Generations
	if e.generations == 0 {
		e.generations = cfg.GenerationFactor * e.n
	}
	e.innerProb = cfg.InnerMutationProb
	if e.innerProb == 0 && e.n > 0 {
		e.innerProb = math.Min(1, cfg.ExpectedFlips/float64(e.n))
	}

	// 3) Initial population.
	e.pop = e.initial(size)
	e.best = e.pop[0].clone()
	e.track()

	return e, nil
}

// Solve runs a fresh engine to completion and returns the best individual.
func Solve(p *problem.Problem, cfg Config) (Result, error) {
	e, err := New(p, cfg)
	if err != nil {
		return Result{}, err
	}

	return e.Run(), nil
}

// Run steps the engine until the generation budget is spent or the
// patience rule fires, then returns the best individual ever seen.
// Problems without items finish immediately.
func (e *Engine) Run() Result {
	for e.n > 0 && e.gen < e.generations && !e.converged {
		e.Step()
	}

	return e.Best()
}

// Step advances one generation:
//  1. elites: the best eliteCount individuals, sorted by descending score;
//  2. parents: a pool of population/2 individuals by the selection rule;
//  3. offspring: population−elites children from random pairs of the pool;
//  4. mutation with repair of zero-score children;
//  5. replacement: elites ∪ offspring.
func (e *Engine) Step() {
	size := len(e.pop)
	elite := e.elites(e.eliteCount)
	pool := e.parents()
	kids := e.offspring(pool, size-e.eliteCount)

	next := make([]Candidate, 0, size)
	next = append(next, elite...)
	var k *bitset.BitSet
	for _, k = range kids {
		next = append(next, Candidate{Bits: k, Score: e.mutate(k)})
	}
	e.pop = next
	e.gen++

	mean := e.track()
	if e.cfg.OnGeneration != nil {
		e.cfg.OnGeneration(e.gen, e.best.Score, mean)
	}
	e.converged = e.stall.update(e.best.Score)
}

// track refreshes the best-ever individual and returns the mean score.
func (e *Engine) track() float64 {
	var (
		sum float64
		c   Candidate
	)
	for _, c = range e.pop {
		sum += c.Score
		if c.Score > e.best.Score {
			e.best = c.clone()
		}
	}

	return sum / float64(len(e.pop))
}

// Best returns the best individual seen so far.
func (e *Engine) Best() Result {
	return Result{
		Value:       e.best.Score,
		Items:       e.p.Decode(e.best.Bits),
		Bits:        e.best.Bits.Clone(),
		Generations: e.gen,
	}
}

// Population returns a deep copy of the current population.
func (e *Engine) Population() []Candidate {
	out := make([]Candidate, len(e.pop))
	var i int
	for i = range e.pop {
		out[i] = e.pop[i].clone()
	}

	return out
}

// Generation returns the number of generations run so far.
func (e *Engine) Generation() int { return e.gen }

// Converged reports whether the patience rule stopped the run.
func (e *Engine) Converged() bool { return e.converged }

// initial builds size scored individuals following cfg.Init.
func (e *Engine) initial(size int) []Candidate {
	pop := make([]Candidate, 0, size)
	var (
		b *bitset.BitSet
		i int
	)

	if e.cfg.Init == InitSingleItem {
		for i = 0; i < size; i++ {
			b = bitset.New(uint(e.n))
			if e.n > 0 {
				b.Set(uint(i % e.n))
			}
			pop = append(pop, Candidate{Bits: b, Score: e.p.Score(b)})
		}
		return pop
	}

	// Distinct individuals only when the search space holds enough of them.
	unique := e.n >= 62 || 1<<uint(e.n) >= size
	seen := make(map[string]struct{}, size)
	var (
		key string
		g   uint
	)
	for len(pop) < size {
		b = bitset.New(uint(e.n))
		for g = 0; g < uint(e.n); g++ {
			if e.rng.Intn(2) == 1 {
				b.Set(g)
			}
		}
		if unique {
			key = b.String()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		pop = append(pop, Candidate{Bits: b, Score: e.p.Score(b)})
	}

	return pop
}

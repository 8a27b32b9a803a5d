// Package swarm approximates the 0/1 knapsack optimum with the Mayfly
// swarm optimizer (github.com/cwbudde/mayfly).
//
// Mayfly works on continuous positions in [0,1]^n. A position is decoded to
// a rank-indexed bit-vector by thresholding each coordinate; with Repair set,
// over-capacity selections are made feasible by dropping the lowest-density
// items first. The objective handed to Mayfly is −Score(bits), so minimizing
// it maximizes value.
//
// Like the genetic engine this is a heuristic: the result is never assumed
// optimal. Every evaluated position is tracked, and the best decoded
// selection ever seen is returned.
package swarm

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
	"github.com/cwbudde/mayfly"

	"github.com/katalvlaran/knapsack/problem"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilProblem indicates that a nil *problem.Problem was passed.
	ErrNilProblem = errors.New("swarm: problem is nil")

	// ErrBadConfig indicates an out-of-range configuration value.
	ErrBadConfig = errors.New("swarm: invalid configuration")
)

// MinPopulation is the smallest swarm Mayfly accepts.
const MinPopulation = 20

// Config configures one Mayfly run.
type Config struct {
	Iterations int     // Mayfly iterations, > 0
	Population int     // swarm size, ≥ MinPopulation
	Seed       int64   // 0 ⇒ fixed default seed
	Threshold  float64 // coordinate ≥ Threshold selects the item, in (0,1)
	Repair     bool    // drop lowest-density items until the selection fits
}

// DefaultConfig returns 200 iterations, 30 mayflies, threshold 0.5 with repair.
func DefaultConfig() Config {
	return Config{
		Iterations: 200,
		Population: 30,
		Seed:       0,
		Threshold:  0.5,
		Repair:     true,
	}
}

// Result is the best selection found.
type Result struct {
	Value       float64
	Items       []problem.Item // sorted by Index
	Bits        *bitset.BitSet // rank-indexed selection
	Evaluations int            // objective calls made by Mayfly
}

// validate checks cfg against the ranges documented on Config.
func (cfg Config) validate() error {
	switch {
	case cfg.Iterations <= 0:
		return fmt.Errorf("%w: iterations %d", ErrBadConfig, cfg.Iterations)
	case cfg.Population < MinPopulation:
		return fmt.Errorf("%w: population %d < %d", ErrBadConfig, cfg.Population, MinPopulation)
	case !(cfg.Threshold > 0 && cfg.Threshold < 1):
		return fmt.Errorf("%w: threshold %v not in (0,1)", ErrBadConfig, cfg.Threshold)
	}

	return nil
}

// Solve runs Mayfly on p and returns the best decoded selection.
//
// Problems without retained items return a zero Result immediately.
//
// Errors: ErrNilProblem, ErrBadConfig, or an error from the optimizer wrapped
// with the "swarm:" prefix.
func Solve(p *problem.Problem, cfg Config) (Result, error) {
	// 1) Validation.
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	n := p.Len()
	if n == 0 {
		return Result{Bits: p.NewBits()}, nil
	}

	// 2) Objective over decoded positions, tracking the best selection seen.
	d := decoder{p: p, threshold: cfg.Threshold, repair: cfg.Repair}
	var (
		best  = p.NewBits()
		value float64
		evals int
	)
	objective := func(pos []float64) float64 {
		evals++
		bits := d.decode(pos)
		s := p.Score(bits)
		if s > value {
			value = s
			best = bits
		}

		return -s
	}

	// 3) Mayfly run.
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	mc := mayfly.NewDefaultConfig()
	mc.ObjectiveFunc = objective
	mc.ProblemSize = n
	mc.MaxIterations = cfg.Iterations
	mc.NPop = cfg.Population
	mc.LowerBound = 0
	mc.UpperBound = 1
	mc.Rand = rand.New(rand.NewSource(seed))

	res, err := mayfly.Optimize(mc)
	if err != nil {
		return Result{}, fmt.Errorf("swarm: optimize: %w", err)
	}

	// 4) The reported global best must not be worse than what we tracked.
	if res.GlobalBest.Position != nil {
		if bits := d.decode(res.GlobalBest.Position); p.Score(bits) > value {
			value, best = p.Score(bits), bits
		}
	}

	return Result{Value: value, Items: p.Decode(best), Bits: best, Evaluations: evals}, nil
}

// decoder maps continuous positions to feasible-where-possible bit-vectors.
type decoder struct {
	p         *problem.Problem
	threshold float64
	repair    bool
}

// decode thresholds pos; with repair it then unsets the highest-rank
// (lowest-density) selected items until the weight fits the capacity.
func (d decoder) decode(pos []float64) *bitset.BitSet {
	bits := d.p.NewBits()
	var (
		r int
		x float64
		w float64
	)
	for r, x = range pos {
		if r >= d.p.Len() {
			break
		}
		if x >= d.threshold {
			bits.Set(uint(r))
			w += d.p.Item(r).Weight
		}
	}
	if !d.repair {
		return bits
	}
	for r = d.p.Len() - 1; r >= 0 && w > d.p.Capacity(); r-- {
		if bits.Test(uint(r)) {
			bits.Clear(uint(r))
			w -= d.p.Item(r).Weight
		}
	}

	return bits
}

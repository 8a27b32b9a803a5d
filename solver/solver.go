// Package solver gives every knapsack engine one shape so that harnesses
// and the command line can drive them without knowing concrete types.
//
// A Solver has a stable Name and a Solve method. Two optional capabilities
// refine it:
//
//   - Exacter: Exact() reports whether results are provably optimal. Exact
//     solvers serve as oracles in comparisons.
//   - Seeder:  WithSeed returns a copy drawing from a different random
//     stream. Randomized solvers implement it so repeated runs differ
//     reproducibly.
//
// The adapters in this package wrap astar, genetic, exact and swarm.
package solver

import (
	"github.com/katalvlaran/knapsack/problem"
)

// Result is the common outcome of every solver.
type Result struct {
	Value float64        // total value of Items
	Items []problem.Item // sorted by Index
}

// Solver is a knapsack algorithm.
type Solver interface {
	Name() string
	Solve(p *problem.Problem) (Result, error)
}

// Exacter is implemented by solvers that can report optimality.
type Exacter interface {
	Exact() bool
}

// Seeder is implemented by randomized solvers.
type Seeder interface {
	WithSeed(seed int64) Solver
}

// IsExact reports whether s declares itself exact.
func IsExact(s Solver) bool {
	e, ok := s.(Exacter)
	return ok && e.Exact()
}

// Reseed returns s drawing from seed when s is a Seeder, and s unchanged otherwise.
func Reseed(s Solver, seed int64) Solver {
	if sd, ok := s.(Seeder); ok {
		return sd.WithSeed(seed)
	}

	return s
}

// Func adapts a plain function to Solver.
type Func struct {
	ID     string
	Fn     func(p *problem.Problem) (Result, error)
	Oracle bool // reported by Exact
}

// Name returns f.ID.
func (f Func) Name() string { return f.ID }

// Solve calls f.Fn.
func (f Func) Solve(p *problem.Problem) (Result, error) { return f.Fn(p) }

// Exact returns f.Oracle.
func (f Func) Exact() bool { return f.Oracle }

package solver

import (
	"github.com/katalvlaran/knapsack/astar"
	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/genetic"
	"github.com/katalvlaran/knapsack/problem"
	"github.com/katalvlaran/knapsack/swarm"
)

// Canonical solver names, as accepted on the command line.
const (
	NameAStar      = "astar"
	NameGenetic    = "genetic"
	NameDynamic    = "dynamic"
	NameBruteForce = "brute"
	NameMayfly     = "mayfly"
)

// AStar runs astar.Search with Options.
type AStar struct {
	Options []astar.Option
}

// Name returns NameAStar.
func (AStar) Name() string { return NameAStar }

// Exact reports true.
func (AStar) Exact() bool { return true }

// Solve forwards to astar.Search.
func (a AStar) Solve(p *problem.Problem) (Result, error) {
	r, err := astar.Search(p, a.Options...)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: r.Value, Items: r.Items}, nil
}

// Genetic runs genetic.Solve with Config. Config.Rand should be left nil
// so that every Solve starts from Config.Seed.
type Genetic struct {
	Config genetic.Config
}

// Name returns NameGenetic.
func (Genetic) Name() string { return NameGenetic }

// Exact reports false.
func (Genetic) Exact() bool { return false }

// Solve forwards to genetic.Solve.
func (g Genetic) Solve(p *problem.Problem) (Result, error) {
	r, err := genetic.Solve(p, g.Config)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: r.Value, Items: r.Items}, nil
}

// WithSeed returns a copy seeded with seed.
func (g Genetic) WithSeed(seed int64) Solver {
	g.Config.Seed = seed
	g.Config.Rand = nil

	return g
}

// Dynamic runs exact.Dynamic with Options.
type Dynamic struct {
	Options []exact.Option
}

// Name returns NameDynamic.
func (Dynamic) Name() string { return NameDynamic }

// Exact reports true.
func (Dynamic) Exact() bool { return true }

// Solve forwards to exact.Dynamic.
func (d Dynamic) Solve(p *problem.Problem) (Result, error) {
	r, err := exact.Dynamic(p, d.Options...)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: r.Value, Items: r.Items}, nil
}

// BruteForce runs exact.BruteForce.
type BruteForce struct{}

// Name returns NameBruteForce.
func (BruteForce) Name() string { return NameBruteForce }

// Exact reports true.
func (BruteForce) Exact() bool { return true }

// Solve forwards to exact.BruteForce.
func (BruteForce) Solve(p *problem.Problem) (Result, error) {
	r, err := exact.BruteForce(p)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: r.Value, Items: r.Items}, nil
}

// Mayfly runs swarm.Solve with Config.
type Mayfly struct {
	Config swarm.Config
}

// Name returns NameMayfly.
func (Mayfly) Name() string { return NameMayfly }

// Exact reports false.
func (Mayfly) Exact() bool { return false }

// Solve forwards to swarm.Solve.
func (m Mayfly) Solve(p *problem.Problem) (Result, error) {
	r, err := swarm.Solve(p, m.Config)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: r.Value, Items: r.Items}, nil
}

// WithSeed returns a copy seeded with seed.
func (m Mayfly) WithSeed(seed int64) Solver {
	m.Config.Seed = seed

	return m
}

package compare

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/genetic"
	"github.com/katalvlaran/knapsack/problem"
)

// SweepHeader is the first CSV record written by Sweep.
var SweepHeader = []string{
	"population size",
	"number iterations",
	"elitism fraction",
	"crossover probability",
	"mutation probability",
	"inner mutation probability",
	"score",
	"weight",
}

// Grid is the Cartesian product of genetic parameters explored by Sweep.
// Fields not covered by an axis come from Base.
type Grid struct {
	PopulationSizes    []int
	Generations        []int
	ElitismFractions   []float64
	CrossoverProbs     []float64
	MutationProbs      []float64
	InnerMutationProbs []float64

	Base        genetic.Config
	Parallelism int // configurations solved concurrently; < 1 ⇒ 1
}

// DefaultGrid returns the classic hyper-parameter grid: three population
// sizes, 150 generations, elitism 0.20 to 0.50, five crossover and
// mutation rates, and inner mutation 0 to 0.25.
func DefaultGrid() Grid {
	return Grid{
		PopulationSizes:    []int{50, 100, 500},
		Generations:        []int{150},
		ElitismFractions:   []float64{0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50},
		CrossoverProbs:     []float64{0, 0.1, 0.4, 0.7, 1},
		MutationProbs:      []float64{0, 0.1, 0.4, 0.7, 1},
		InnerMutationProbs: []float64{0, 0.05, 0.10, 0.15, 0.20, 0.25},
		Base:               genetic.DefaultConfig(),
		Parallelism:        1,
	}
}

// Size returns the number of configurations in g.
func (g Grid) Size() int {
	return len(g.PopulationSizes) * len(g.Generations) * len(g.ElitismFractions) *
		len(g.CrossoverProbs) * len(g.MutationProbs) * len(g.InnerMutationProbs)
}

// Configs expands g in row-major order, the last axis varying fastest.
// Configuration k is seeded with genetic.DeriveSeed(Base.Seed, k).
func (g Grid) Configs() []genetic.Config {
	out := make([]genetic.Config, 0, g.Size())
	for _, pop := range g.PopulationSizes {
		for _, gens := range g.Generations {
			for _, el := range g.ElitismFractions {
				for _, cx := range g.CrossoverProbs {
					for _, mu := range g.MutationProbs {
						for _, in := range g.InnerMutationProbs {
							cfg := g.Base
							cfg.PopulationSize = pop
							cfg.Generations = gens
							cfg.ElitismFraction = el
							cfg.CrossoverProb = cx
							cfg.MutationProb = mu
							cfg.InnerMutationProb = in
							cfg.Seed = genetic.DeriveSeed(g.Base.Seed, uint64(len(out)))
							cfg.Rand = nil
							cfg.OnGeneration = nil
							out = append(out, cfg)
						}
					}
				}
			}
		}
	}

	return out
}

// Sweep runs the genetic engine on p once per configuration of g and writes
// one CSV record per configuration to w, after SweepHeader. Records follow
// Configs order regardless of Parallelism.
func Sweep(ctx context.Context, p *problem.Problem, g Grid, w io.Writer) error {
	if p == nil {
		return fmt.Errorf("compare: sweep: %w", problem.ErrNilProblem)
	}
	if g.Size() == 0 {
		return ErrEmptyGrid
	}
	if g.Parallelism < 1 {
		g.Parallelism = 1
	}

	configs := g.Configs()
	results := make([]genetic.Result, len(configs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Parallelism)
	for k := range configs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := genetic.Solve(p, configs[k])
			if err != nil {
				return fmt.Errorf("compare: sweep configuration %d: %w", k, err)
			}
			results[k] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(SweepHeader); err != nil {
		return err
	}
	for k, cfg := range configs {
		_, weight := problem.Sum(results[k].Items)
		rec := []string{
			strconv.Itoa(cfg.PopulationSize),
			strconv.Itoa(cfg.Generations),
			ftoa(cfg.ElitismFraction),
			ftoa(cfg.CrossoverProb),
			ftoa(cfg.MutationProb),
			ftoa(cfg.InnerMutationProb),
			ftoa(results[k].Value),
			ftoa(weight),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func ftoa(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

package compare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/genetic"
	"github.com/katalvlaran/knapsack/solver"
)

// Run solves every case with every solver opts.Iterations times and
// summarizes the outcome. Cases are processed by up to opts.Parallelism
// workers; the solvers of one case run sequentially so timings are not
// skewed by each other.
//
// Iteration k of a randomized solver is reseeded with
// genetic.DeriveSeed(opts.Seed, k), so runs are reproducible and
// iterations are independent.
//
// The reference optimum of a case is its known optimum when present, and
// otherwise the best value produced by an exact solver. An exact solver
// that misses the reference by more than opts.Tolerance fails the run
// with ErrSuboptimal.
func Run(ctx context.Context, cases []Case, solvers []solver.Solver, opts Options) (Report, error) {
	if len(solvers) == 0 {
		return Report{}, ErrNoSolvers
	}
	opts = normalize(opts)

	report := Report{
		Solvers: make([]string, len(solvers)),
		Cases:   make([]CaseReport, len(cases)),
	}
	for i, s := range solvers {
		report.Solvers[i] = s.Name()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i := range cases {
		g.Go(func() error {
			cr, err := runCase(gCtx, cases[i], solvers, opts)
			if err != nil {
				return err
			}
			report.Cases[i] = cr

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return report, nil
}

func normalize(opts Options) Options {
	if opts.Iterations < 1 {
		opts.Iterations = 1
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	if opts.Tolerance < 0 {
		opts.Tolerance = 0
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return opts
}

// runCase measures every solver on c and validates exact results.
func runCase(ctx context.Context, c Case, solvers []solver.Solver, opts Options) (CaseReport, error) {
	cr := CaseReport{
		Name:     c.Name,
		Items:    c.Problem.Len(),
		Capacity: c.Problem.Capacity(),
		Solvers:  make([]SolverStats, len(solvers)),
	}
	log := opts.Logger.With("case", c.Name)
	log.Info("solving case", "items", cr.Items, "capacity", cr.Capacity)

	// 1) Measure.
	var (
		st  SolverStats
		err error
	)
	for i, s := range solvers {
		st, err = measure(ctx, c, s, opts)
		if err != nil {
			return CaseReport{}, err
		}
		cr.Solvers[i] = st
		if st.Skipped {
			log.Info("solver skipped", "solver", st.Solver, "reason", st.Reason)
		} else {
			log.Debug("solver done", "solver", st.Solver, "mean_value", st.MeanValue, "mean_time", st.MeanTime)
		}
	}

	// 2) Pick the reference.
	if c.HasOptimal {
		cr.Reference, cr.HasReference, cr.Source = c.Optimal, true, "file"
	} else {
		for _, st = range cr.Solvers {
			if st.Exact && !st.Skipped && (!cr.HasReference || st.MeanValue > cr.Reference) {
				cr.Reference, cr.HasReference, cr.Source = st.MeanValue, true, st.Solver
			}
		}
	}
	if !cr.HasReference {
		log.Info("no reference optimum; optimality not reported")
		return cr, nil
	}

	// 3) Check exact solvers, rate the rest.
	for i := range cr.Solvers {
		st = cr.Solvers[i]
		if st.Skipped {
			continue
		}
		if st.Exact && math.Abs(st.MeanValue-cr.Reference) > opts.Tolerance {
			return CaseReport{}, fmt.Errorf("%w: case %s, solver %s: got %v, want %v",
				ErrSuboptimal, c.Name, st.Solver, st.MeanValue, cr.Reference)
		}
		cr.Solvers[i].Optimality = optimality(st.MeanValue, cr.Reference)
	}

	return cr, nil
}

// measure runs s opts.Iterations times on c.
func measure(ctx context.Context, c Case, s solver.Solver, opts Options) (SolverStats, error) {
	st := SolverStats{Solver: s.Name(), Exact: solver.IsExact(s)}

	var (
		total   time.Duration
		sum     float64
		start   time.Time
		res     solver.Result
		err     error
		k       int
		current solver.Solver
	)
	for k = 0; k < opts.Iterations; k++ {
		if err = ctx.Err(); err != nil {
			return SolverStats{}, err
		}
		current = solver.Reseed(s, genetic.DeriveSeed(opts.Seed, uint64(k)))

		start = time.Now()
		res, err = current.Solve(c.Problem)
		total += time.Since(start)
		if err != nil {
			if opts.SkipUnsupported && unsupported(err) {
				st.Skipped, st.Reason = true, err.Error()
				return st, nil
			}
			return SolverStats{}, fmt.Errorf("compare: case %s, solver %s: %w", c.Name, st.Solver, err)
		}
		sum += res.Value
	}

	st.MeanTime = total / time.Duration(opts.Iterations)
	st.MeanValue = sum / float64(opts.Iterations)

	return st, nil
}

// unsupported reports errors that describe the instance, not a failure.
func unsupported(err error) bool {
	return errors.Is(err, exact.ErrTooLarge) || errors.Is(err, exact.ErrNonIntegral)
}

// optimality returns 100 × value / reference; an empty optimum counts as fully met.
func optimality(value, reference float64) float64 {
	if reference == 0 {
		if value == 0 {
			return 100
		}
		return 0
	}

	return 100 * value / reference
}

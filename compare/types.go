package compare

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/knapsack/problem"
)

// Sentinel errors returned by the harness.
var (
	// ErrSuboptimal indicates that an exact solver missed the reference value.
	ErrSuboptimal = errors.New("compare: exact solver result differs from the optimum")

	// ErrNoSolvers indicates an empty solver list.
	ErrNoSolvers = errors.New("compare: no solvers given")

	// ErrBadOptimal indicates an unreadable optimal-value file.
	ErrBadOptimal = errors.New("compare: malformed optimal value file")

	// ErrEmptyGrid indicates a sweep grid with an empty axis.
	ErrEmptyGrid = errors.New("compare: sweep grid has an empty axis")
)

// Case is one benchmark instance.
type Case struct {
	Name       string
	Problem    *problem.Problem
	Optimal    float64 // known optimum, valid when HasOptimal
	HasOptimal bool
}

// Options configures Run.
type Options struct {
	Iterations  int     // runs per solver and case, ≥ 1
	Parallelism int     // cases solved concurrently, ≥ 1
	Tolerance   float64 // allowed |exact − optimum|
	Seed        int64   // base seed for randomized solvers

	// SkipUnsupported records instances a solver cannot handle (too large,
	// non-integral weights) as skipped instead of failing the run.
	SkipUnsupported bool

	Logger *slog.Logger // nil ⇒ slog.Default()
}

// DefaultOptions returns 100 iterations, tolerance
// 1e-4, one worker per CPU, unsupported instances skipped.
func DefaultOptions() Options {
	return Options{
		Iterations:      100,
		Parallelism:     runtime.NumCPU(),
		Tolerance:       1e-4,
		Seed:            0,
		SkipUnsupported: true,
	}
}

// SolverStats summarizes one solver on one case.
type SolverStats struct {
	Solver     string
	Exact      bool
	MeanTime   time.Duration
	MeanValue  float64
	Optimality float64 // 100 × MeanValue / reference, valid when the case has a reference
	Skipped    bool
	Reason     string // why the solver was skipped
}

// CaseReport holds the per-solver statistics of one case.
type CaseReport struct {
	Name         string
	Items        int
	Capacity     float64
	Reference    float64 // optimum used for checks, valid when HasReference
	HasReference bool
	Source       string // "file", or the exact solver that produced Reference
	Solvers      []SolverStats
}

// Report is the outcome of Run, cases in input order.
type Report struct {
	Solvers []string
	Cases   []CaseReport
}

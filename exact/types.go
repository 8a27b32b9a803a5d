package exact

import (
	"errors"

	"github.com/katalvlaran/knapsack/problem"
)

// Sentinel errors returned by the exact solvers.
var (
	// ErrNilProblem indicates that a nil *problem.Problem was passed.
	ErrNilProblem = errors.New("exact: problem is nil")

	// ErrBadScale indicates a non-positive or non-finite weight scale.
	ErrBadScale = errors.New("exact: scale must be a finite positive number")

	// ErrNonIntegral indicates a weight that is not an integer after scaling.
	ErrNonIntegral = errors.New("exact: weight is not integral after scaling")

	// ErrTooLarge indicates an instance beyond the configured size limits
	// (table cells for Dynamic, item count for BruteForce).
	ErrTooLarge = errors.New("exact: instance too large")
)

// MaxBruteForceItems bounds the item count BruteForce accepts; 2^n subsets
// are enumerated.
const MaxBruteForceItems = 30

// integralTol is the tolerance used to accept a scaled weight as an integer.
const integralTol = 1e-9

// Result is the outcome of an exact solver.
type Result struct {
	Value float64        // optimal total value
	Items []problem.Item // an optimal item set sorted by Index; nil in RollingRow mode
}

// MemoryMode selects how much of the DP table is kept.
//
// FullTable  – store the (n+1)×(C+1) table; the item set is reconstructed.
// RollingRow – store a single row; only the optimal value is returned.
type MemoryMode int

const (
	// FullTable keeps the whole table and reconstructs the item set.
	FullTable MemoryMode = iota

	// RollingRow keeps one row of C+1 cells; Result.Items is nil.
	RollingRow
)

// Options configures Dynamic.
type Options struct {
	Scale      float64    // multiplier applied to weights and capacity
	MemoryMode MemoryMode // FullTable or RollingRow
	MaxCells   int        // upper bound on allocated table cells
}

// Option represents a functional option for configuring Dynamic.
type Option func(*Options)

// WithScale multiplies weights and capacity by f before tabulation, which
// lets problems with fixed-point weights (e.g. 2 decimals, f = 100) be solved.
func WithScale(f float64) Option {
	return func(o *Options) {
		o.Scale = f
	}
}

// WithMemoryMode selects full-table or rolling-row storage.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = m
	}
}

// WithMaxCells overrides the table size limit.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		o.MaxCells = n
	}
}

// DefaultOptions returns Scale 1, FullTable and a limit of 1<<27 cells.
func DefaultOptions() Options {
	return Options{
		Scale:      1,
		MemoryMode: FullTable,
		MaxCells:   1 << 27,
	}
}

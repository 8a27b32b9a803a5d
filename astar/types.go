// Package astar defines core types and configuration options for the A*
// search over the knapsack decision tree.
//
// Options:
//
//	– TieBreak:    order of fringe entries with identical priority (FIFO or LIFO
//	               on insertion sequence). Default FIFO.
//	– Heuristic:   admissible upper bound on the value still achievable from a
//	               state. Default Bound (fractional relaxation).
//	– OnExpand:    optional hook invoked for every expanded state.
//	– MaxExpanded: optional cap on expansions; 0 means unlimited.
//
// Errors (sentinel):
//
//	– ErrNilProblem  if the provided problem pointer is nil.
//	– ErrBudget      if the expansion cap is reached before a goal is popped.
//	– ErrExhausted   if the fringe empties without a goal (unreachable for
//	                 well-formed problems; kept as a guard).
//
// WithMaxExpanded panics with ErrBadBudget's message when given a negative cap.
package astar

import (
	"errors"

	"github.com/katalvlaran/knapsack/problem"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilProblem indicates that a nil *problem.Problem was passed to Search.
	ErrNilProblem = errors.New("astar: problem is nil")

	// ErrBadBudget indicates a negative expansion cap.
	ErrBadBudget = errors.New("astar: MaxExpanded must be non-negative")

	// ErrBudget indicates that the expansion cap was reached before the
	// first goal state was popped.
	ErrBudget = errors.New("astar: expansion budget exhausted")

	// ErrExhausted indicates that the fringe emptied without yielding a goal.
	ErrExhausted = errors.New("astar: fringe exhausted without reaching a goal")
)

// TieBreak selects the order of fringe entries whose priority is equal.
//
// TieBreakFIFO – the earliest pushed entry is popped first.
// TieBreakLIFO – the latest pushed entry is popped first.
type TieBreak int

const (
	// TieBreakFIFO pops equal-priority entries in insertion order.
	TieBreakFIFO TieBreak = iota

	// TieBreakLIFO pops equal-priority entries in reverse insertion order.
	TieBreakLIFO
)

// String returns the lowercase name of the tie-break rule.
func (t TieBreak) String() string {
	switch t {
	case TieBreakFIFO:
		return "fifo"
	case TieBreakLIFO:
		return "lifo"
	default:
		return "unknown"
	}
}

// HeuristicFunc estimates the best value still achievable from s. It must
// never underestimate (admissibility) and must return 0 on goal states.
type HeuristicFunc func(s problem.State) float64

// ExpandHook observes every expanded state together with its priority f.
type ExpandHook func(s problem.State, f float64)

// Stats summarizes the work done by a single search.
type Stats struct {
	Expanded   int // states popped and expanded
	Generated  int // successors pushed onto the fringe
	Duplicates int // popped or generated states whose key was already visited
	MaxFringe  int // peak fringe size
}

// Result is the outcome of a successful search.
type Result struct {
	Value float64        // optimal total value
	Items []problem.Item // optimal item set, sorted by Index
	Stats Stats
}

// Options configures the behavior of Search.
type Options struct {
	TieBreak    TieBreak      // ordering of equal-priority entries
	Heuristic   HeuristicFunc // admissible upper bound on remaining value
	OnExpand    ExpandHook    // optional observer of expanded states
	MaxExpanded int           // cap on expansions, 0 = unlimited
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithTieBreak sets the ordering of equal-priority fringe entries.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithHeuristic replaces the default fractional bound. A nil h restores Bound.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *Options) {
		if h == nil {
			h = Bound
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a hook called for every expanded state.
func WithOnExpand(fn ExpandHook) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithMaxExpanded caps the number of expansions. Zero disables the cap.
// Negative values cause a panic with ErrBadBudget.
func WithMaxExpanded(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxExpanded = n
	}
}

// DefaultOptions returns the baseline configuration:
//   - TieBreak:    TieBreakFIFO.
//   - Heuristic:   Bound.
//   - OnExpand:    nil.
//   - MaxExpanded: 0 (unlimited).
func DefaultOptions() Options {
	return Options{
		TieBreak:    TieBreakFIFO,
		Heuristic:   Bound,
		OnExpand:    nil,
		MaxExpanded: 0,
	}
}

package problem

import "errors"

// Sentinel errors returned by problem construction and parsing.
var (
	// ErrNilProblem indicates that a nil *Problem was passed to a solver.
	ErrNilProblem = errors.New("problem: problem is nil")

	// ErrBadCapacity indicates a negative, NaN or infinite knapsack capacity.
	ErrBadCapacity = errors.New("problem: capacity must be a finite non-negative number")

	// ErrBadItem indicates an item whose value or weight is not a finite positive number.
	ErrBadItem = errors.New("problem: item value and weight must be finite positive numbers")

	// ErrDuplicateIndex indicates that two items share the same Index.
	ErrDuplicateIndex = errors.New("problem: duplicate item index")

	// ErrFormat indicates a malformed problem file (missing header, non-numeric fields).
	ErrFormat = errors.New("problem: malformed input")

	// ErrMissingItems indicates that the input declares more items than it contains.
	ErrMissingItems = errors.New("problem: fewer item lines than declared")
)

// Item is a single candidate for the knapsack.
//
// Index is the 1-based position of the item in the original input, before
// any exclusion or re-sorting. Items are immutable values.
type Item struct {
	Index  int     // 1-based input position
	Value  float64 // > 0
	Weight float64 // > 0
}

// Density returns the value-per-weight ratio used to rank items.
func (it Item) Density() float64 { return it.Value / it.Weight }

// noItem marks the absence of a current item in a State.
const noItem = -1

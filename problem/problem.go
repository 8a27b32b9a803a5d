package problem

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Problem is a read-only 0/1 knapsack instance.
//
// Items whose weight exceeds the capacity are dropped at construction time,
// the rest are ranked by descending density. The rank of an item is its
// position in Items(); every bit-vector and State in this module is indexed
// by rank, so the ordering is load-bearing.
type Problem struct {
	capacity float64
	items    []Item // ranked by density, descending
	declared int    // number of items before exclusion
}

// New builds a Problem from a capacity and a list of items.
//
// Steps:
//  1. Validate capacity (finite, ≥ 0) and every item (Index ≥ 1, finite, > 0 value and weight).
//  2. Reject duplicate indices; identity of items in result sets relies on them.
//  3. Drop items with Weight > capacity (they can never be taken).
//  4. Stable-sort remaining items by Density descending, ties by Index ascending.
//
// Complexity: O(n log n) time, O(n) space.
func New(capacity float64, items []Item) (*Problem, error) {
	// 1) Capacity sanity.
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadCapacity, capacity)
	}

	// 2) Item sanity and index uniqueness.
	seen := make(map[int]struct{}, len(items))
	kept := make([]Item, 0, len(items))
	var it Item
	for _, it = range items {
		if it.Index < 1 || !positive(it.Value) || !positive(it.Weight) {
			return nil, fmt.Errorf("%w: item %d (value=%v weight=%v)", ErrBadItem, it.Index, it.Value, it.Weight)
		}
		if _, dup := seen[it.Index]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, it.Index)
		}
		seen[it.Index] = struct{}{}

		// 3) Exclusion of items that cannot fit even an empty knapsack.
		if it.Weight > capacity {
			continue
		}
		kept = append(kept, it)
	}

	// 4) Density ranking with deterministic tiebreak.
	sort.SliceStable(kept, func(i, j int) bool {
		di, dj := kept[i].Density(), kept[j].Density()
		if di == dj {
			return kept[i].Index < kept[j].Index
		}

		return di > dj
	})

	return &Problem{capacity: capacity, items: kept, declared: len(items)}, nil
}

// MustNew is like New but panics on error. Intended for tests and examples.
func MustNew(capacity float64, items []Item) *Problem {
	p, err := New(capacity, items)
	if err != nil {
		panic(err)
	}

	return p
}

// FromPairs builds a Problem from parallel value/weight slices, assigning
// 1-based indices in slice order. Mismatched lengths are a format error.
func FromPairs(capacity float64, values, weights []float64) (*Problem, error) {
	if len(values) != len(weights) {
		return nil, fmt.Errorf("%w: %d values but %d weights", ErrFormat, len(values), len(weights))
	}
	items := make([]Item, len(values))
	var i int
	for i = range values {
		items[i] = Item{Index: i + 1, Value: values[i], Weight: weights[i]}
	}

	return New(capacity, items)
}

// Capacity returns the knapsack capacity.
func (p *Problem) Capacity() float64 { return p.capacity }

// Len returns the number of retained (ranked) items.
func (p *Problem) Len() int { return len(p.items) }

// Declared returns the number of items given at construction, including dropped ones.
func (p *Problem) Declared() int { return p.declared }

// Item returns the item at density rank r. It panics if r is out of range.
func (p *Problem) Item(r int) Item { return p.items[r] }

// Items returns a copy of the retained items in rank order.
func (p *Problem) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)

	return out
}

// String renders the problem the way the CLI prints it: header then items by Index.
func (p *Problem) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Number of items: %d, Capacity: %v.\nItems:", p.declared, p.capacity)
	var it Item
	for _, it = range SortByIndex(p.Items()) {
		fmt.Fprintf(&b, "\n    %d. Value: %v, Weight: %v", it.Index, it.Value, it.Weight)
	}

	return b.String()
}

// Sum returns the total value and weight of items.
func Sum(items []Item) (value, weight float64) {
	var it Item
	for _, it = range items {
		value += it.Value
		weight += it.Weight
	}

	return value, weight
}

// SortByIndex sorts items in place by ascending Index and returns them.
// Solvers use it to render item sets deterministically.
func SortByIndex(items []Item) []Item {
	sort.Slice(items, func(i, j int) bool { return items[i].Index < items[j].Index })

	return items
}

// positive reports whether x is a finite number strictly greater than zero.
func positive(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}

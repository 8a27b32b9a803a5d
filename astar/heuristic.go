package astar

import "github.com/katalvlaran/knapsack/problem"

// Bound is the fractional-relaxation upper bound on the value still reachable
// from s.
//
// It walks the pending items (the current item, then the left items) in
// density order with a local copy of the remaining capacity: items that fit
// contribute their full value, the first item that does not fit contributes
// value × remaining/weight, and the walk stops there. No 0/1 completion of s
// can beat the best fractional one, so the bound is admissible.
//
// The current item is part of the walk because it is still undecided.
// Goal states have nothing pending and yield 0.
//
// Complexity: O(k) where k is the number of pending items.
func Bound(s problem.State) float64 {
	var (
		remaining = s.Remaining()
		h         float64
	)
	s.WalkPending(func(it problem.Item) bool {
		if it.Weight <= remaining {
			h += it.Value
			remaining -= it.Weight
			return true
		}
		h += it.Value * remaining / it.Weight

		return false
	})

	return h
}

// Loose is the trivial upper bound: the total value of every pending item.
// It is admissible but ignores capacity, so it prunes far less than Bound.
func Loose(s problem.State) float64 {
	var h float64
	s.WalkPending(func(it problem.Item) bool {
		h += it.Value
		return true
	})

	return h
}

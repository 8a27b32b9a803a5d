// Package astar_test provides runnable examples for the A* solver.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/astar"
	"github.com/katalvlaran/knapsack/problem"
)

// ExampleSearch solves the canonical three-item instance.
func ExampleSearch() {
	// 1) Items (value, weight) with capacity 10.
	p := problem.MustNew(10, []problem.Item{
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 6, Weight: 4},
		{Index: 3, Value: 5, Weight: 6},
	})

	// 2) Search with default options (fractional bound, FIFO tie-break).
	res, err := astar.Search(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the value and the chosen indices.
	fmt.Printf("value=%v items=", res.Value)
	for _, it := range res.Items {
		fmt.Printf("%d ", it.Index)
	}
	fmt.Println()
	// Output: value=16 items=1 2
}

// ExampleBound shows the fractional bound at the root state.
func ExampleBound() {
	p := problem.MustNew(10, []problem.Item{
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 6, Weight: 4},
		{Index: 3, Value: 5, Weight: 6},
	})
	fmt.Printf("%.3f\n", astar.Bound(p.StartState()))
	// Output: 16.833
}

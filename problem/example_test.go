// Package problem_test provides runnable examples for the problem model.
package problem_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/problem"
)

// ExampleParse reads the plain-text encoding and shows the density ranking.
func ExampleParse() {
	in := `3 10
10 5
6 4
5 6
`
	p, err := problem.Parse(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, it := range p.Items() {
		fmt.Printf("item %d density=%.2f\n", it.Index, it.Density())
	}
	// Output:
	// item 1 density=2.00
	// item 2 density=1.50
	// item 3 density=0.83
}

// ExampleProblem_Score scores a bit-vector: feasible selections count, the
// rest score zero.
func ExampleProblem_Score() {
	p := problem.MustNew(10, []problem.Item{
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 6, Weight: 4},
		{Index: 3, Value: 5, Weight: 6},
	})
	fmt.Println(p.Score(p.NewBits().Set(0).Set(1)))
	fmt.Println(p.Score(p.NewBits().Set(0).Set(2)))
	// Output:
	// 16
	// 0
}

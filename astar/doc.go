// Package astar solves the 0/1 knapsack problem exactly with A* search.
//
// The search space is the take/skip decision tree of a problem.Problem:
// every node is an immutable problem.State with one pending item, and its two
// successors either take that item (filtering out items that no longer fit)
// or skip it. Goal states have nothing pending.
//
// Priorities follow a minimization framing, f = −value − heuristic, so a
// min-heap pops the state with the greatest optimistic total first. The
// default heuristic, Bound, is the classic fractional relaxation: it never
// underestimates the value still reachable, hence the first goal popped is
// optimal.
//
// Complexity:
//
//   - Time:  O(S log S), S = number of distinct states reached (≤ 2^(n+1)).
//     In practice the fractional bound prunes most of the tree.
//   - Space: O(S) for the fringe and the visited set.
//
// Notes on implementation choices:
//
//   - The goal test happens at pop time, never at push time.
//   - A visited set keyed by problem.Key (pending item, taken bitset)
//     guarantees that no key is expanded twice; successors whose key was
//     already expanded are not pushed.
//   - Entries with equal f are ordered by insertion sequence (FIFO by
//     default, LIFO on request), making results reproducible.
//   - "Lazy" deletion: stale entries stay in the heap and are dropped when popped.
//
// Example usage:
//
//	p := problem.MustNew(10, []problem.Item{
//	    {Index: 1, Value: 10, Weight: 5},
//	    {Index: 2, Value: 6, Weight: 4},
//	    {Index: 3, Value: 5, Weight: 6},
//	})
//	res, err := astar.Search(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Value) // 16
package astar

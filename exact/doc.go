// Package exact provides the two reference solvers for the 0/1 knapsack
// problem: dynamic programming over integer capacities and brute-force
// subset enumeration.
//
// Both return a provably optimal value and are used as correctness oracles
// for the search and optimization engines (astar, genetic). Neither is meant
// for large inputs.
//
// Dynamic:
//
//   - Time O(n·C), memory O(n·C) or O(C) with RollingRow, C = ⌊capacity×scale⌋.
//   - Requires integral weights after scaling (ErrNonIntegral otherwise); the
//     capacity is floored. Use WithScale for fixed-point weights.
//
// BruteForce:
//
//   - Time O(2^n·n); rejected above MaxBruteForceItems (ErrTooLarge).
//   - Real-valued weights welcome.
//
// Example:
//
//	p := problem.MustNew(10, items)
//	dp, _ := exact.Dynamic(p)
//	bf, _ := exact.BruteForce(p)
//	fmt.Println(dp.Value == bf.Value) // true
package exact

// Package knapsack is a toolbox for the 0/1 knapsack problem: exact and
// heuristic solvers over one shared problem model, plus a harness that
// races them against each other.
//
// 🚀 What is inside?
//
//	• problem/: Item, Problem, search State, bit-vector encoding & the text format
//	• astar/  : best-first search with a fractional-relaxation bound (exact)
//	• genetic/: seeded genetic algorithm with elitism, tournament/roulette
//	             selection, midpoint/uniform crossover and repair
//	• exact/  : dynamic programming and brute-force baselines (oracles)
//	• swarm/  : mayfly swarm optimizer over a relaxed encoding
//	• solver/ : one Solver interface and a registry of every engine
//	• compare/: benchmark harness, table rendering and GA parameter sweeps
//	• cmd/knapsack: the command line: solve, compare, sweep, version
//
// ✨ Guarantees
//
//   - Determinism: equal inputs and seeds give equal results, including
//     A* statistics and GA populations.
//   - No global random state: every randomized engine owns its *rand.Rand.
//   - Sentinel errors per package ("astar: ...", "genetic: ..."), checked
//     with errors.Is.
//
// Quick example (Scenario A):
//
//	capacity 10, items (value, weight) = (10,5) (6,4) (5,6)
//	A*, DP and brute force all pick items 1 and 2 for a value of 16.
//
// See examples/ for runnable programs.
//
//	go get github.com/katalvlaran/knapsack
package knapsack

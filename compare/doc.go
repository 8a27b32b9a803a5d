// Package compare benchmarks knapsack solvers against each other.
//
// Run loads nothing itself: callers gather Cases (see LoadCases for the
// directory layout) and a solver list, and receive a Report with mean
// running time, mean value and, for heuristic solvers, optimality as a
// percentage of the reference optimum. Exact solvers double as oracles:
// a mismatch with the reference fails the run with ErrSuboptimal.
//
// Render prints a Report as a table. Sweep explores a grid of genetic
// parameters on one instance and writes a CSV record per configuration.
//
// Directory layout expected by LoadCases:
//
//	inputs/   one problem file per case (see problem.Parse)
//	optimal/  optional, same file names, optimum on the first line
package compare

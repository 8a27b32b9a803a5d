// Package genetic approximates the 0/1 knapsack optimum with a genetic
// algorithm.
//
// An individual is a bit-vector over the density-ranked items of a
// problem.Problem; its score is the total value of the selected items, or 0
// when they exceed the capacity. Infeasible individuals are penalized rather
// than rejected.
//
// One generation:
//
//  1. Elitism: the best ⌊pop×ElitismFraction⌋ individuals (rounded down to
//     even) survive unchanged.
//  2. Selection: a mating pool of pop/2 parents, by tournament over random
//     pairs or by fitness-proportional (roulette) draws.
//  3. Crossover: (pop−elites)/2 random pairs of parents produce two children
//     each, recombined with probability CrossoverProb (midpoint or uniform)
//     and copied otherwise.
//  4. Mutation: per-gene flips with probability InnerMutationProb, applied to
//     a child by the MutationPolicy gate or, with RepairInfeasible, whenever
//     the child scores 0. Zero-score children are mutated again up to
//     RepairAttempts times.
//  5. Replacement: elites ∪ offspring.
//
// The engine reports the best individual ever seen, not just the best of the
// last generation. It is a heuristic: nothing guarantees optimality.
//
// Determinism:
//
//   - All randomness comes from Config.Rand or, when nil, from a source
//     seeded with Config.Seed (0 ⇒ a fixed default). Equal seeds give equal runs.
//   - DeriveSeed produces independent seeds for repeated runs.
//
// Complexity: O(G·P·n) per run for G generations, population P, n items,
// plus the bounded repair loop.
//
// Example:
//
//	cfg := genetic.DefaultConfig()
//	cfg.Seed = 42
//	res, err := genetic.Solve(p, cfg)
package genetic

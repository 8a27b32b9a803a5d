// Package problem holds the 0/1 knapsack problem model shared by every
// solver in this module.
//
// Overview:
//
//   - Item and Problem describe an instance: a capacity and a set of
//     (value, weight) items. Items heavier than the capacity are dropped at
//     construction; the rest are ranked by value density, best first.
//   - State is an immutable node of the decision tree explored by A*:
//     pending item, taken set, items still undecided.
//   - Bit-vectors (*bitset.BitSet) indexed by density rank encode candidate
//     solutions for the genetic algorithm: Decode, Score, Weight, Encode.
//
// Density order:
//
//	The rank of an item is its position in Problem.Items(). The fractional
//	bound in package astar and the chromosome layout in package genetic both
//	rely on this order, so it is fixed at construction and never changes.
//
// Input format (Parse, LoadFile):
//
//	n capacity
//	v1 w1
//	:  :
//	vn wn
//
// Errors (sentinel):
//
//   - ErrBadCapacity, ErrBadItem, ErrDuplicateIndex from New.
//   - ErrFormat, ErrMissingItems from Parse.
//   - ErrNilProblem is shared by the solver packages.
//
// Thread safety:
//
//	A Problem is read-only after New and safe for concurrent readers.
//	States are values and may be shared freely.
package problem

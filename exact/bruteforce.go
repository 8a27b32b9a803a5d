package exact

import (
	"fmt"

	"github.com/katalvlaran/knapsack/problem"
)

// BruteForce enumerates every non-empty subset of p's items, by
// combinations of increasing size in lexicographic rank order, and keeps the
// first feasible subset with strictly greater value than the best so far.
//
// It is the reference oracle for the other solvers and is only practical for
// small n. Problems with more than MaxBruteForceItems items fail with
// ErrTooLarge.
//
// Complexity: O(2^n · n) time, O(n) space.
func BruteForce(p *problem.Problem) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	n := p.Len()
	if n > MaxBruteForceItems {
		return Result{}, fmt.Errorf("%w: %d items, limit %d", ErrTooLarge, n, MaxBruteForceItems)
	}

	var (
		best    float64
		bestSet []int
		comb    = make([]int, 0, n)
		k, i    int
		v, w    float64
	)
	for k = 1; k <= n; k++ {
		// 1) First combination of size k: ranks 0..k-1.
		comb = comb[:k]
		for i = range comb {
			comb[i] = i
		}
		for {
			// 2) Evaluate.
			v, w = 0, 0
			for _, i = range comb {
				v += p.Item(i).Value
				w += p.Item(i).Weight
			}
			if w <= p.Capacity() && v > best {
				best = v
				bestSet = append(bestSet[:0], comb...)
			}

			// 3) Advance to the next combination, or stop.
			if !nextCombination(comb, n) {
				break
			}
		}
	}

	items := make([]problem.Item, len(bestSet))
	for i = range bestSet {
		items[i] = p.Item(bestSet[i])
	}

	return Result{Value: best, Items: problem.SortByIndex(items)}, nil
}

// nextCombination advances comb (strictly increasing indices in [0, n)) to
// its lexicographic successor in place. It returns false after the last one.
func nextCombination(comb []int, n int) bool {
	k := len(comb)
	i := k - 1
	for i >= 0 && comb[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	comb[i]++
	for j := i + 1; j < k; j++ {
		comb[j] = comb[j-1] + 1
	}

	return true
}

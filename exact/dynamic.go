package exact

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapsack/problem"
)

// Dynamic solves p exactly by tabulation over integer capacities.
//
// Algorithm Outline (FullTable):
//  1. Scale weights and capacity by Options.Scale; C = ⌊capacity×scale⌋.
//     Every scaled weight must be integral (ErrNonIntegral).
//  2. Allocate T[(n+1)×(C+1)], T[0][c] = 0.
//  3. For i = 1..n and c = 0..C:
//     T[i][c] = T[i-1][c]
//     if w_i ≤ c: T[i][c] = max(T[i][c], v_i + T[i-1][c-w_i])
//  4. value = T[n][C].
//  5. Backtrack from (n, C): item i is taken iff T[i][c] ≠ T[i-1][c].
//
// RollingRow keeps a single row updated right to left and skips step 5.
//
// Complexity:
//
//	Time   = O(n·C)
//	Memory = O(n·C) (FullTable) or O(C) (RollingRow)
//
// Errors: ErrNilProblem, ErrBadScale, ErrNonIntegral, ErrTooLarge.
func Dynamic(p *problem.Problem, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) || cfg.Scale <= 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrBadScale, cfg.Scale)
	}

	// 1) Integer weights and capacity.
	n := p.Len()
	weights, err := scaledWeights(p, cfg.Scale)
	if err != nil {
		return Result{}, err
	}
	capF := math.Floor(p.Capacity()*cfg.Scale + integralTol)
	rows := n + 1
	if cfg.MemoryMode == RollingRow {
		rows = 1
	}
	if capF+1 > float64(cfg.MaxCells)/float64(rows) {
		return Result{}, fmt.Errorf("%w: %d×%.0f cells exceed %d", ErrTooLarge, rows, capF+1, cfg.MaxCells)
	}
	C := int(capF)

	if cfg.MemoryMode == RollingRow {
		return Result{Value: rolling(p, weights, C)}, nil
	}

	// 2) Full table, row-major; row i covers the first i items in rank order.
	width := C + 1
	table := make([]float64, (n+1)*width)
	var (
		i, c, w   int
		v, keep   float64
		prev, cur []float64
	)
	for i = 1; i <= n; i++ {
		prev = table[(i-1)*width : i*width]
		cur = table[i*width : (i+1)*width]
		w = weights[i-1]
		v = p.Item(i - 1).Value
		for c = 0; c <= C; c++ {
			keep = prev[c]
			if w <= c && v+prev[c-w] > keep {
				keep = v + prev[c-w]
			}
			cur[c] = keep
		}
	}

	// 3) Backtrack the taken set.
	items := make([]problem.Item, 0, n)
	c = C
	for i = n; i > 0; i-- {
		if table[i*width+c] != table[(i-1)*width+c] {
			items = append(items, p.Item(i-1))
			c -= weights[i-1]
		}
	}

	return Result{Value: table[n*width+C], Items: problem.SortByIndex(items)}, nil
}

// rolling runs the single-row variant and returns the optimal value only.
func rolling(p *problem.Problem, weights []int, C int) float64 {
	row := make([]float64, C+1)
	var (
		i, c, w int
		v       float64
	)
	for i, w = range weights {
		v = p.Item(i).Value
		for c = C; c >= w; c-- {
			if v+row[c-w] > row[c] {
				row[c] = v + row[c-w]
			}
		}
	}

	return row[C]
}

// scaledWeights converts every weight to an integer after scaling, failing
// with ErrNonIntegral when a weight is not within integralTol of an integer.
func scaledWeights(p *problem.Problem, scale float64) ([]int, error) {
	out := make([]int, p.Len())
	var (
		r      int
		it     problem.Item
		w, rnd float64
	)
	for r = range out {
		it = p.Item(r)
		w = it.Weight * scale
		rnd = math.Round(w)
		if math.Abs(w-rnd) > integralTol*math.Max(1, rnd) {
			return nil, fmt.Errorf("%w: item %d weight %v × %v", ErrNonIntegral, it.Index, it.Weight, scale)
		}
		out[r] = int(rnd)
	}

	return out, nil
}

package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knapsack/astar"
	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/problem"
)

func indices(items []problem.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Index
	}

	return out
}

// randomProblem draws n items with integral weights so that Dynamic applies.
func randomProblem(t testing.TB, rng *rand.Rand, n int) *problem.Problem {
	t.Helper()
	values := make([]float64, n)
	weights := make([]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		values[i] = float64(1 + rng.Intn(60))
		weights[i] = float64(1 + rng.Intn(25))
		total += weights[i]
	}
	p, err := problem.FromPairs(float64(int(total*0.4)), values, weights)
	require.NoError(t, err)

	return p
}

// SearchSuite exercises Search on the canonical scenarios.
type SearchSuite struct {
	suite.Suite
}

// TestScenarioA verifies the three-item instance: optimum 16 with items {1,2}.
func (s *SearchSuite) TestScenarioA() {
	p, err := problem.FromPairs(10, []float64{10, 6, 5}, []float64{5, 4, 6})
	require.NoError(s.T(), err)

	res, err := astar.Search(p)
	require.NoError(s.T(), err)
	s.Equal(16.0, res.Value)
	s.Equal([]int{1, 2}, indices(res.Items))
	s.Positive(res.Stats.Expanded)
}

// TestScenarioB verifies that an item heavier than the capacity is excluded.
func (s *SearchSuite) TestScenarioB() {
	p, err := problem.FromPairs(3, []float64{100}, []float64{4})
	require.NoError(s.T(), err)

	res, err := astar.Search(p)
	require.NoError(s.T(), err)
	s.Equal(0.0, res.Value)
	s.Empty(res.Items)
	s.Equal(0, res.Stats.Expanded, "the start state is already a goal")
}

// TestScenarioC verifies uniform items: any three of five.
func (s *SearchSuite) TestScenarioC() {
	p, err := problem.FromPairs(3, []float64{1, 1, 1, 1, 1}, []float64{1, 1, 1, 1, 1})
	require.NoError(s.T(), err)

	res, err := astar.Search(p)
	require.NoError(s.T(), err)
	s.Equal(3.0, res.Value)
	s.Len(res.Items, 3)
}

// TestZeroCapacity verifies that capacity 0 yields an empty solution.
func (s *SearchSuite) TestZeroCapacity() {
	p, err := problem.FromPairs(0, []float64{4, 2}, []float64{1, 1})
	require.NoError(s.T(), err)

	res, err := astar.Search(p)
	require.NoError(s.T(), err)
	s.Equal(0.0, res.Value)
	s.Empty(res.Items)
}

// TestNilProblem verifies the only input error.
func (s *SearchSuite) TestNilProblem() {
	_, err := astar.Search(nil)
	s.ErrorIs(err, astar.ErrNilProblem)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func TestSearch_MatchesExactSolvers(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		p := randomProblem(t, rng, 1+rng.Intn(14))

		bf, err := exact.BruteForce(p)
		require.NoError(t, err)
		dp, err := exact.Dynamic(p)
		require.NoError(t, err)
		require.Equal(t, bf.Value, dp.Value)

		for _, tb := range []astar.TieBreak{astar.TieBreakFIFO, astar.TieBreakLIFO} {
			res, err := astar.Search(p, astar.WithTieBreak(tb))
			require.NoError(t, err)
			assert.Equal(t, bf.Value, res.Value, "trial %d tie-break %s: %s", trial, tb, p)

			v, w := problem.Sum(res.Items)
			assert.Equal(t, res.Value, v)
			assert.LessOrEqual(t, w, p.Capacity())
		}
	}
}

func TestSearch_RealWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(10)
		values := make([]float64, n)
		weights := make([]float64, n)
		for i := range values {
			values[i] = 0.5 + 10*rng.Float64()
			weights[i] = 0.25 + 5*rng.Float64()
		}
		p, err := problem.FromPairs(2+8*rng.Float64(), values, weights)
		require.NoError(t, err)

		bf, err := exact.BruteForce(p)
		require.NoError(t, err)
		res, err := astar.Search(p)
		require.NoError(t, err)
		assert.InDelta(t, bf.Value, res.Value, 1e-9, "trial %d", trial)
	}
}

func TestSearch_LooseHeuristicStillOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		p := randomProblem(t, rng, 10)

		tight, err := astar.Search(p)
		require.NoError(t, err)
		loose, err := astar.Search(p, astar.WithHeuristic(astar.Loose))
		require.NoError(t, err)

		assert.Equal(t, tight.Value, loose.Value)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	p := randomProblem(t, rng, 16)

	first, err := astar.Search(p)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.Search(p)
		require.NoError(t, err)
		assert.Equal(t, first.Value, again.Value)
		assert.Equal(t, indices(first.Items), indices(again.Items))
		assert.Equal(t, first.Stats, again.Stats)
	}
}

func TestSearch_StatsAndHook(t *testing.T) {
	p, err := problem.FromPairs(10, []float64{10, 6, 5}, []float64{5, 4, 6})
	require.NoError(t, err)

	var (
		expanded int
		lastF    = -1e18
	)
	res, err := astar.Search(p, astar.WithOnExpand(func(s problem.State, f float64) {
		expanded++
		assert.False(t, s.IsGoal())
		// A consistent heuristic pops states in non-decreasing f order.
		assert.GreaterOrEqual(t, f, lastF-1e-9)
		lastF = f
	}))
	require.NoError(t, err)

	assert.Equal(t, res.Stats.Expanded, expanded)
	assert.GreaterOrEqual(t, res.Stats.Generated, 2*res.Stats.Expanded-res.Stats.Duplicates)
	assert.GreaterOrEqual(t, res.Stats.MaxFringe, 1)
}

func TestSearch_Budget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := randomProblem(t, rng, 18)

	_, err := astar.Search(p, astar.WithMaxExpanded(1))
	assert.ErrorIs(t, err, astar.ErrBudget)

	res, err := astar.Search(p, astar.WithMaxExpanded(1<<20))
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Stats.Expanded, 1<<20)

	assert.Panics(t, func() { _, _ = astar.Search(p, astar.WithMaxExpanded(-1)) })
}

func TestBound(t *testing.T) {
	p, err := problem.FromPairs(10, []float64{10, 6, 5}, []float64{5, 4, 6})
	require.NoError(t, err)
	start := p.StartState()

	// 10 (w5) + 6 (w4) + 5 × 1/6 of the third item.
	assert.InDelta(t, 16+5.0/6, astar.Bound(start), 1e-12)
	assert.Equal(t, 21.0, astar.Loose(start))

	take := p.Successors(start)[0]
	// pending: item 2 only (item 3 filtered); bound 6.
	assert.Equal(t, 6.0, astar.Bound(take))
}

func TestBound_ZeroOnGoals(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := randomProblem(t, rng, 8)

	stack := []problem.State{p.StartState()}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.IsGoal() {
			assert.Equal(t, 0.0, astar.Bound(s))
			assert.Equal(t, 0.0, astar.Loose(s))
			continue
		}
		stack = append(stack, p.Successors(s)...)
	}
}

// TestBound_Admissible checks that no leaf below a state beats its bound.
func TestBound_Admissible(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := randomProblem(t, rng, 9)

	var best func(s problem.State) float64
	best = func(s problem.State) float64 {
		if s.IsGoal() {
			return s.Value()
		}
		succ := p.Successors(s)
		return max(best(succ[0]), best(succ[1]))
	}

	stack := []problem.State{p.StartState()}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		assert.GreaterOrEqual(t, s.Value()+astar.Bound(s)+1e-9, best(s))
		stack = append(stack, p.Successors(s)...)
	}
}

func TestTieBreak_String(t *testing.T) {
	assert.Equal(t, "fifo", astar.TieBreakFIFO.String())
	assert.Equal(t, "lifo", astar.TieBreakLIFO.String())
	assert.Equal(t, "unknown", astar.TieBreak(9).String())
}

package swarm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/problem"
	"github.com/katalvlaran/knapsack/swarm"
)

func TestSolve_ScenarioA(t *testing.T) {
	p, err := problem.FromPairs(10, []float64{10, 6, 5}, []float64{5, 4, 6})
	require.NoError(t, err)

	cfg := swarm.DefaultConfig()
	cfg.Seed = 42
	res, err := swarm.Solve(p, cfg)
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Value, 16.0)
	assert.Positive(t, res.Value)
	assert.Equal(t, p.Score(res.Bits), res.Value)
	assert.Positive(t, res.Evaluations)
}

func TestSolve_NeverBeatsOptimum(t *testing.T) {
	p, err := problem.FromPairs(50,
		[]float64{12, 7, 30, 4, 9, 15, 22, 3, 8, 11},
		[]float64{6, 3, 20, 2, 5, 9, 14, 1, 4, 7})
	require.NoError(t, err)
	opt, err := exact.Dynamic(p)
	require.NoError(t, err)

	for _, repair := range []bool{true, false} {
		cfg := swarm.DefaultConfig()
		cfg.Iterations = 50
		cfg.Repair = repair
		res, err := swarm.Solve(p, cfg)
		require.NoError(t, err)

		assert.LessOrEqual(t, res.Value, opt.Value)
		v, w := problem.Sum(res.Items)
		assert.Equal(t, res.Value, v)
		assert.LessOrEqual(t, w, p.Capacity())
	}
}

func TestSolve_Deterministic(t *testing.T) {
	p, err := problem.FromPairs(20, []float64{5, 9, 4, 7, 3, 8}, []float64{4, 8, 3, 6, 2, 7})
	require.NoError(t, err)

	cfg := swarm.DefaultConfig()
	cfg.Iterations = 40
	cfg.Seed = 7
	a, err := swarm.Solve(p, cfg)
	require.NoError(t, err)
	b, err := swarm.Solve(p, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Value, b.Value)
	assert.True(t, a.Bits.Equal(b.Bits))
	assert.Equal(t, a.Evaluations, b.Evaluations)
}

func TestSolve_EmptyProblem(t *testing.T) {
	p := problem.MustNew(1, []problem.Item{{Index: 1, Value: 5, Weight: 2}})
	res, err := swarm.Solve(p, swarm.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Evaluations)
}

func TestSolve_Errors(t *testing.T) {
	_, err := swarm.Solve(nil, swarm.DefaultConfig())
	assert.ErrorIs(t, err, swarm.ErrNilProblem)

	p := problem.MustNew(10, []problem.Item{{Index: 1, Value: 5, Weight: 2}})
	tests := map[string]func(*swarm.Config){
		"zero iterations":  func(c *swarm.Config) { c.Iterations = 0 },
		"small population": func(c *swarm.Config) { c.Population = swarm.MinPopulation - 1 },
		"threshold zero":   func(c *swarm.Config) { c.Threshold = 0 },
		"threshold one":    func(c *swarm.Config) { c.Threshold = 1 },
	}
	for name, mod := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := swarm.DefaultConfig()
			mod(&cfg)
			_, err := swarm.Solve(p, cfg)
			assert.ErrorIs(t, err, swarm.ErrBadConfig)
		})
	}
}

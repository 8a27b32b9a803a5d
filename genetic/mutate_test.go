package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/problem"
)

// mutationEngine builds an engine on Scenario A (ranks 0,1,2 = items 1,2,3).
func mutationEngine(t *testing.T, tune func(*Config)) (*Engine, *problem.Problem) {
	t.Helper()
	p, err := problem.FromPairs(10, []float64{10, 6, 5}, []float64{5, 4, 6})
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.PopulationSize = 4
	cfg.Seed = 11
	tune(&cfg)
	e, err := New(p, cfg)
	require.NoError(t, err)

	return e, p
}

func TestMutate_GatedClosedLeavesChild(t *testing.T) {
	e, p := mutationEngine(t, func(c *Config) {
		c.MutationPolicy = MutateGated
		c.MutationProb = 0
		c.RepairInfeasible = false
		c.InnerMutationProb = 1
	})

	feasible := p.NewBits().Set(0).Set(1)
	orig := feasible.Clone()
	assert.Equal(t, 16.0, e.mutate(feasible))
	assert.True(t, orig.Equal(feasible))

	// Without repair an infeasible child is not touched either.
	infeasible := p.NewBits().Set(0).Set(1).Set(2)
	orig = infeasible.Clone()
	assert.Equal(t, 0.0, e.mutate(infeasible))
	assert.True(t, orig.Equal(infeasible))
}

func TestMutate_AlwaysFlipsEveryGene(t *testing.T) {
	e, p := mutationEngine(t, func(c *Config) {
		c.MutationPolicy = MutateAlways
		c.MutationProb = 0
		c.RepairInfeasible = false
		c.InnerMutationProb = 1
	})

	child := p.NewBits().Set(0).Set(1)
	score := e.mutate(child)
	assert.True(t, p.NewBits().Set(2).Equal(child), "got %s", child)
	assert.Equal(t, 5.0, score)
}

func TestMutate_RepairRestoresFeasibility(t *testing.T) {
	e, p := mutationEngine(t, func(c *Config) {
		c.MutationPolicy = MutateGated
		c.MutationProb = 0
		c.RepairInfeasible = true
		c.RepairAttempts = 100
		c.InnerMutationProb = 0.5
	})

	child := p.NewBits().Set(0).Set(1).Set(2)
	require.Equal(t, 0.0, p.Score(child))

	score := e.mutate(child)
	assert.Greater(t, score, 0.0)
	assert.Equal(t, p.Score(child), score)
	assert.LessOrEqual(t, p.Weight(child), p.Capacity())
}

func TestMutate_ExhaustedRepairAcceptsZeroScore(t *testing.T) {
	// ExpectedFlips 0 derives an inner probability of 0: no flip can help.
	for _, attempts := range []int{0, 5} {
		e, p := mutationEngine(t, func(c *Config) {
			c.MutationPolicy = MutateAlways
			c.RepairInfeasible = true
			c.RepairAttempts = attempts
			c.InnerMutationProb = 0
			c.ExpectedFlips = 0
		})
		require.Equal(t, 0.0, e.innerProb)

		child := p.NewBits().Set(0).Set(1).Set(2)
		orig := child.Clone()
		var score float64
		require.NotPanics(t, func() { score = e.mutate(child) })
		assert.Equal(t, 0.0, score, "attempts=%d", attempts)
		assert.True(t, orig.Equal(child))
	}
}

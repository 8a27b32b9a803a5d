package problem_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/knapsack/problem"
)

// allMasks enumerates every bit-vector of length n.
func allMasks(n int) []*bitset.BitSet {
	out := make([]*bitset.BitSet, 0, 1<<n)
	for m := 0; m < 1<<n; m++ {
		b := bitset.New(uint(n))
		for i := 0; i < n; i++ {
			if m&(1<<i) != 0 {
				b.Set(uint(i))
			}
		}
		out = append(out, b)
	}

	return out
}

func TestScore_ZeroWhenOverCapacity(t *testing.T) {
	p := scenarioA(t)
	for _, bits := range allMasks(p.Len()) {
		if p.Weight(bits) > p.Capacity() {
			assert.Equal(t, 0.0, p.Score(bits), "bits %v", bits)
		} else {
			v, _ := problem.Sum(p.Decode(bits))
			assert.Equal(t, v, p.Score(bits), "bits %v", bits)
		}
	}
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	p, _ := problem.FromPairs(9, []float64{4, 1, 8, 3, 3}, []float64{2, 1, 5, 3, 4})
	for _, bits := range allMasks(p.Len()) {
		back := p.Encode(p.Decode(bits))
		assert.True(t, back.Equal(bits), "round trip of %v gave %v", bits, back)
	}
}

func TestDecode_ScenarioAOptimum(t *testing.T) {
	p := scenarioA(t)
	bits := p.NewBits().Set(0).Set(1)

	assert.Equal(t, []int{1, 2}, indices(p.Decode(bits)))
	assert.Equal(t, 16.0, p.Score(bits))
	assert.Equal(t, 9.0, p.Weight(bits))
}

func TestEncode_IgnoresUnknownItems(t *testing.T) {
	p := scenarioA(t)
	bits := p.Encode([]problem.Item{{Index: 42, Value: 1, Weight: 1}, {Index: 3, Value: 5, Weight: 6}})

	assert.Equal(t, uint(1), bits.Count())
	assert.True(t, bits.Test(2))
}

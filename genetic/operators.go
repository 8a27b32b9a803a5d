package genetic

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// elites returns clones of the best k individuals, sorted by descending
// score. Ties keep population order. pop is reordered in place.
func (e *Engine) elites(k int) []Candidate {
	sort.SliceStable(e.pop, func(i, j int) bool { return e.pop[i].Score > e.pop[j].Score })
	out := make([]Candidate, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = e.pop[i].clone()
	}

	return out
}

// parents builds the mating pool of size len(pop)/2 with the configured selection.
func (e *Engine) parents() []Candidate {
	if e.cfg.Selection == SelectRoulette {
		return e.roulette(len(e.pop) / 2)
	}

	return e.tournament()
}

// tournament shuffles the population, pairs consecutive individuals and
// keeps the strictly better of each pair (the second one on ties).
func (e *Engine) tournament() []Candidate {
	var i int
	for i = range e.order {
		e.order[i] = i
	}
	shuffleInPlace(e.order, e.rng)

	pool := make([]Candidate, 0, len(e.pop)/2)
	var a, b Candidate
	for i = 0; i+1 < len(e.order); i += 2 {
		a, b = e.pop[e.order[i]], e.pop[e.order[i+1]]
		if a.Score > b.Score {
			pool = append(pool, a)
		} else {
			pool = append(pool, b)
		}
	}

	return pool
}

// roulette draws k parents with probability proportional to score. When
// every score is 0 the draw is uniform.
func (e *Engine) roulette(k int) []Candidate {
	var (
		total float64
		c     Candidate
	)
	for _, c = range e.pop {
		total += c.Score
	}

	pool := make([]Candidate, 0, k)
	var (
		i, j int
		x    float64
	)
	for i = 0; i < k; i++ {
		if total <= 0 {
			pool = append(pool, e.pop[e.rng.Intn(len(e.pop))])
			continue
		}
		x = e.rng.Float64() * total
		for j = 0; j < len(e.pop)-1; j++ {
			x -= e.pop[j].Score
			if x < 0 {
				break
			}
		}
		pool = append(pool, e.pop[j])
	}

	return pool
}

// offspring produces k children (k even) from random distinct pairs of the
// pool, recombined with probability CrossoverProb and copied otherwise.
func (e *Engine) offspring(pool []Candidate, k int) []*bitset.BitSet {
	out := make([]*bitset.BitSet, 0, k)
	var (
		i, a, b int
		c1, c2  *bitset.BitSet
	)
	for i = 0; i < k/2; i++ {
		a, b = distinctPair(len(pool), e.rng)
		if e.rng.Float64() < e.cfg.CrossoverProb {
			c1, c2 = e.cross(pool[a].Bits, pool[b].Bits)
		} else {
			c1, c2 = pool[a].Bits.Clone(), pool[b].Bits.Clone()
		}
		out = append(out, c1, c2)
	}

	return out
}

// cross recombines p1 and p2 into two fresh children.
func (e *Engine) cross(p1, p2 *bitset.BitSet) (*bitset.BitSet, *bitset.BitSet) {
	n := uint(e.n)
	c1, c2 := bitset.New(n), bitset.New(n)
	var i uint
	switch e.cfg.Crossover {
	case CrossoverUniform:
		for i = 0; i < n; i++ {
			if pick(p1, p2, e.rng.Intn(2)).Test(i) {
				c1.Set(i)
			}
			if pick(p1, p2, e.rng.Intn(2)).Test(i) {
				c2.Set(i)
			}
		}
	default:
		cut := n / 2
		for i = 0; i < n; i++ {
			if i < cut {
				c1.SetTo(i, p1.Test(i))
				c2.SetTo(i, p2.Test(i))
			} else {
				c1.SetTo(i, p2.Test(i))
				c2.SetTo(i, p1.Test(i))
			}
		}
	}

	return c1, c2
}

// pick returns a when side is 0 and b otherwise.
func pick(a, b *bitset.BitSet, side int) *bitset.BitSet {
	if side == 0 {
		return a
	}

	return b
}

// mutate applies the mutation policy to child in place and returns its score.
//
// A child is mutated when the policy is MutateAlways, when the gate draw is
// below MutationProb, or when it scores 0 and RepairInfeasible is set. A
// mutated child keeps being mutated while it scores 0, at most
// RepairAttempts more times; after that the zero-score child is accepted.
func (e *Engine) mutate(child *bitset.BitSet) float64 {
	score := e.p.Score(child)
	gate := e.cfg.MutationPolicy == MutateAlways || e.rng.Float64() < e.cfg.MutationProb
	if !gate && !(e.cfg.RepairInfeasible && score == 0) {
		return score
	}

	e.flip(child)
	score = e.p.Score(child)
	var attempt int
	for attempt = 0; score == 0 && attempt < e.cfg.RepairAttempts; attempt++ {
		e.flip(child)
		score = e.p.Score(child)
	}

	return score
}

// flip toggles every gene independently with probability innerProb.
func (e *Engine) flip(bits *bitset.BitSet) {
	var i uint
	for i = 0; i < uint(e.n); i++ {
		if e.rng.Float64() < e.innerProb {
			bits.Flip(i)
		}
	}
}

package problem

import "github.com/bits-and-blooms/bitset"

// NewBits returns an all-zero bit-vector sized for p.
func (p *Problem) NewBits() *bitset.BitSet { return bitset.New(uint(len(p.items))) }

// Decode returns the items selected by bits, sorted by Index.
// Bit r selects the item of density rank r; bits at or beyond Len() are ignored.
func (p *Problem) Decode(bits *bitset.BitSet) []Item {
	out := make([]Item, 0, len(p.items))
	var r int
	for r = range p.items {
		if bits.Test(uint(r)) {
			out = append(out, p.items[r])
		}
	}

	return SortByIndex(out)
}

// Weight returns the total weight selected by bits.
func (p *Problem) Weight(bits *bitset.BitSet) float64 {
	var (
		w float64
		r int
	)
	for r = range p.items {
		if bits.Test(uint(r)) {
			w += p.items[r].Weight
		}
	}

	return w
}

// Score returns the total value selected by bits, or 0 when the selection
// exceeds the capacity. Infeasible selections are penalized, never rejected.
//
// Complexity: O(n).
func (p *Problem) Score(bits *bitset.BitSet) float64 {
	var (
		v, w float64
		r    int
	)
	for r = range p.items {
		if bits.Test(uint(r)) {
			v += p.items[r].Value
			w += p.items[r].Weight
		}
	}
	if w > p.capacity {
		return 0
	}

	return v
}

// Encode is the inverse of Decode: it sets bit r for every retained item
// (matched by Index) present in items. Unknown items are ignored.
func (p *Problem) Encode(items []Item) *bitset.BitSet {
	want := make(map[int]struct{}, len(items))
	var it Item
	for _, it = range items {
		want[it.Index] = struct{}{}
	}
	bits := p.NewBits()
	var r int
	for r = range p.items {
		if _, ok := want[p.items[r].Index]; ok {
			bits.Set(uint(r))
		}
	}

	return bits
}

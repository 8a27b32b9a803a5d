package problem

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
)

// State is an immutable partial-decision snapshot of the search space.
//
// Items before the current one (in density order) are decided: they are
// either in the taken set or were skipped. The current item is pending, and
// left holds the still-undecided items that fit the remaining capacity.
//
// States share structure with their parents (left slices and taken sets are
// never written after construction), so copying a State is O(1).
type State struct {
	p         *Problem
	value     float64
	remaining float64
	current   int            // density rank, or noItem
	taken     *bitset.BitSet // bit r set ⇔ item of rank r taken
	left      []int          // density ranks, ascending
}

// Key is the deduplication identity of a State: the pending item together
// with the taken set. Value and remaining capacity are functions of the
// taken set, so they are not part of the key. Key is comparable and can be
// used as a map key.
type Key struct {
	current int
	taken   string
}

// StartState returns the root of the search space: nothing taken, the
// best-density item pending, every other item left.
func (p *Problem) StartState() State {
	s := State{
		p:         p,
		remaining: p.capacity,
		current:   noItem,
		taken:     bitset.New(uint(len(p.items))),
	}
	if len(p.items) == 0 {
		return s
	}
	s.current = 0
	s.left = make([]int, len(p.items)-1)
	var r int
	for r = 1; r < len(p.items); r++ {
		s.left[r-1] = r
	}

	return s
}

// Successors returns the take and skip successors of s, in that order, or
// nil when s is a goal state.
//
// take: the pending item goes into the knapsack; left items that no longer
// fit the reduced capacity are filtered out of this branch for good, since
// capacity only shrinks along a path. The first remaining item becomes pending.
//
// skip: the pending item is discarded and the next left item becomes pending.
// Capacity is unchanged, so no filtering is needed.
//
// Complexity: O(len(left)) time and space for take, O(1) for skip
// (plus O(n/64) to clone the taken set).
func (p *Problem) Successors(s State) []State {
	if s.IsGoal() {
		return nil
	}
	cur := p.items[s.current]

	// 1) take branch.
	take := State{
		p:         p,
		value:     s.value + cur.Value,
		remaining: s.remaining - cur.Weight,
		current:   noItem,
		taken:     s.taken.Clone().Set(uint(s.current)),
	}
	fits := make([]int, 0, len(s.left))
	var r int
	for _, r = range s.left {
		if p.items[r].Weight <= take.remaining {
			fits = append(fits, r)
		}
	}
	if len(fits) > 0 {
		take.current = fits[0]
		take.left = fits[1:]
	}

	// 2) skip branch.
	skip := State{
		p:         p,
		value:     s.value,
		remaining: s.remaining,
		current:   noItem,
		taken:     s.taken,
	}
	if len(s.left) > 0 {
		skip.current = s.left[0]
		skip.left = s.left[1:]
	}

	return []State{take, skip}
}

// IsGoal reports whether no decision is pending.
func (s State) IsGoal() bool { return s.current == noItem }

// Value returns the total value of the taken items.
func (s State) Value() float64 { return s.value }

// Remaining returns the capacity left after the taken items.
func (s State) Remaining() float64 { return s.remaining }

// Current returns the pending item, or false for a goal state.
func (s State) Current() (Item, bool) {
	if s.current == noItem {
		return Item{}, false
	}

	return s.p.items[s.current], true
}

// Taken returns the taken items sorted by Index.
func (s State) Taken() []Item {
	out := make([]Item, 0, s.taken.Count())
	var (
		r  uint
		ok bool
	)
	for r, ok = s.taken.NextSet(0); ok; r, ok = s.taken.NextSet(r + 1) {
		out = append(out, s.p.items[r])
	}

	return SortByIndex(out)
}

// Left returns the undecided items after the pending one, in density order.
func (s State) Left() []Item {
	out := make([]Item, len(s.left))
	var (
		i, r int
	)
	for i, r = range s.left {
		out[i] = s.p.items[r]
	}

	return out
}

// WalkPending calls fn for the pending item and then every left item, in
// density order, until fn returns false. It does not allocate.
func (s State) WalkPending(fn func(it Item) bool) {
	if s.current == noItem {
		return
	}
	if !fn(s.p.items[s.current]) {
		return
	}
	var r int
	for _, r = range s.left {
		if !fn(s.p.items[r]) {
			return
		}
	}
}

// Key returns the deduplication identity of s.
func (s State) Key() Key {
	return Key{current: s.current, taken: wordsKey(s.taken.Bytes())}
}

// TakenBits returns a copy of the taken set as a rank-indexed bit-vector,
// compatible with Decode and Score.
func (s State) TakenBits() *bitset.BitSet { return s.taken.Clone() }

// wordsKey packs bitset words into a string usable as a map key.
func wordsKey(words []uint64) string {
	buf := make([]byte, 0, 8*len(words))
	var w uint64
	for _, w = range words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}

	return string(buf)
}

package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/knapsack/problem"
)

// Search finds an optimal solution of p with A* over the take/skip decision
// tree. It accepts functional options to customize behavior (TieBreak,
// Heuristic, OnExpand, MaxExpanded).
//
// The search is framed as minimization: g(s) = −value(s) and the priority is
// f(s) = g(s) − h(s). With an admissible h the first goal state popped is
// optimal, because every fringe entry bounds from below the cost of all goals
// beneath it.
//
// Preconditions and validation:
//  1. p must be non-nil (ErrNilProblem).
//
// Returns:
//
//   - Result.Value: optimal total value (0 for problems with no retained items).
//   - Result.Items: optimal item set sorted by Index.
//   - Result.Stats: expansion counters.
//   - err: ErrNilProblem, ErrBudget when MaxExpanded is reached, or ErrExhausted
//     (never for a well-formed problem, since the all-skip path always ends in a goal).
//
// Complexity:
//
//   - Time:  O(S log S) where S is the number of distinct (current, taken) keys
//     reached, bounded by 2^n.
//   - Space: O(S) for the visited set and fringe.
func Search(p *problem.Problem, opts ...Option) (Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the problem.
	if p == nil {
		return Result{}, ErrNilProblem
	}

	// 3) Initialize runner with the visited set and the fringe.
	r := &runner{
		p:       p,
		options: cfg,
		visited: make(map[problem.Key]struct{}, 2*p.Len()+1),
		fringe:  statePQ{lifo: cfg.TieBreak == TieBreakLIFO},
	}

	// 4) Seed the fringe and run the main loop.
	r.init()
	goal, err := r.process()
	if err != nil {
		return Result{Stats: r.stats}, err
	}

	return Result{Value: goal.Value(), Items: goal.Taken(), Stats: r.stats}, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	p       *problem.Problem         // read-only input
	options Options                  // configuration
	visited map[problem.Key]struct{} // keys already expanded
	fringe  statePQ                  // min-heap on (f, seq)
	seq     uint64                   // insertion counter for tie-breaking
	stats   Stats
}

// init pushes the start state onto an empty fringe.
func (r *runner) init() {
	heap.Init(&r.fringe)
	r.push(r.p.StartState())
}

// process is the core loop. It pops the entry with minimum f and either
// returns it as the goal, drops it as a duplicate, or expands it.
//
// Loop termination conditions:
//
//   - A goal state is popped (success).
//   - MaxExpanded expansions have been performed (ErrBudget).
//   - The fringe becomes empty (ErrExhausted).
func (r *runner) process() (problem.State, error) {
	var (
		e   *entry
		key problem.Key
		s   problem.State
	)
	for r.fringe.Len() > 0 {
		// 1) Pop the most promising entry.
		e = heap.Pop(&r.fringe).(*entry)

		// 2) The goal test happens at pop time; this is what makes the result optimal.
		if e.state.IsGoal() {
			return e.state, nil
		}

		// 3) Skip stale entries whose key was expanded through another path.
		key = e.state.Key()
		if _, seen := r.visited[key]; seen {
			r.stats.Duplicates++
			continue
		}

		// 4) Respect the expansion budget, if any.
		if r.options.MaxExpanded > 0 && r.stats.Expanded >= r.options.MaxExpanded {
			return problem.State{}, fmt.Errorf("%w: %d expansions", ErrBudget, r.stats.Expanded)
		}

		// 5) Mark visited and expand.
		r.visited[key] = struct{}{}
		r.stats.Expanded++
		if r.options.OnExpand != nil {
			r.options.OnExpand(e.state, e.f)
		}
		for _, s = range r.p.Successors(e.state) {
			if _, seen := r.visited[s.Key()]; seen {
				r.stats.Duplicates++
				continue
			}
			r.push(s)
			r.stats.Generated++
		}
	}

	return problem.State{}, ErrExhausted
}

// push computes f for s and inserts it with the next sequence number.
func (r *runner) push(s problem.State) {
	heap.Push(&r.fringe, &entry{
		state: s,
		f:     -s.Value() - r.options.Heuristic(s),
		seq:   r.seq,
	})
	r.seq++
	if n := r.fringe.Len(); n > r.stats.MaxFringe {
		r.stats.MaxFringe = n
	}
}

// entry is a fringe element: a state with its priority and insertion sequence.
type entry struct {
	state problem.State
	f     float64 // −value − heuristic
	seq   uint64  // insertion order, used only to break ties in f
}

// statePQ is a min-heap of *entry ordered by f ascending, then by seq
// (ascending for FIFO, descending for LIFO). Stale entries are tolerated and
// skipped at pop time through the visited set (lazy deletion).
type statePQ struct {
	items []*entry
	lifo  bool
}

// Len returns the number of entries in the heap.
func (pq statePQ) Len() int { return len(pq.items) }

// Less orders by f, then by insertion sequence according to the tie-break rule.
func (pq statePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if pq.lifo {
		return a.seq > b.seq
	}

	return a.seq < b.seq
}

// Swap swaps two entries.
func (pq statePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x; called by heap.Push.
func (pq *statePQ) Push(x interface{}) { pq.items = append(pq.items, x.(*entry)) }

// Pop removes the last entry; called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return item
}

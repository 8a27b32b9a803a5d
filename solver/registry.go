package solver

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/knapsack/genetic"
	"github.com/katalvlaran/knapsack/swarm"
)

// Sentinel errors returned by Registry.
var (
	// ErrNilSolver indicates that a nil Solver was registered.
	ErrNilSolver = errors.New("solver: solver is nil")

	// ErrAlreadyRegistered indicates a name collision.
	ErrAlreadyRegistered = errors.New("solver: name already registered")

	// ErrUnknownSolver indicates a lookup of an unregistered name.
	ErrUnknownSolver = errors.New("solver: unknown solver")
)

// Registry maps names to solvers. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[string]Solver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[string]Solver)}
}

// Default returns a registry holding the five built-in solvers with
// default settings: astar, brute, dynamic, genetic and mayfly.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(AStar{})
	r.MustRegister(BruteForce{})
	r.MustRegister(Dynamic{})
	r.MustRegister(Genetic{Config: genetic.DefaultConfig()})
	r.MustRegister(Mayfly{Config: swarm.DefaultConfig()})

	return r
}

// Register adds s under s.Name().
//
// Errors: ErrNilSolver, ErrAlreadyRegistered.
func (r *Registry) Register(s Solver) error {
	if s == nil {
		return ErrNilSolver
	}
	name := s.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.solvers[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.solvers[name] = s

	return nil
}

// MustRegister registers s and panics on error. Intended for setup code.
func (r *Registry) MustRegister(s Solver) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Replace registers s under s.Name(), overwriting any previous entry.
func (r *Registry) Replace(s Solver) error {
	if s == nil {
		return ErrNilSolver
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvers[s.Name()] = s

	return nil
}

// Get returns the solver registered under name.
func (r *Registry) Get(name string) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}

	return s, nil
}

// Select returns the solvers registered under names, in that order.
// An empty names list selects every solver in Names order.
func (r *Registry) Select(names []string) ([]Solver, error) {
	if len(names) == 0 {
		names = r.Names()
	}
	out := make([]Solver, 0, len(names))
	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

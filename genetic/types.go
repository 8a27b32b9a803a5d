package genetic

import (
	"errors"
	"math/rand"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/knapsack/problem"
)

// Sentinel errors returned by the genetic engine.
var (
	// ErrNilProblem indicates that a nil *problem.Problem was passed.
	ErrNilProblem = errors.New("genetic: problem is nil")

	// ErrBadPopulation indicates a population that is smaller than 2 after
	// rounding down to an even size.
	ErrBadPopulation = errors.New("genetic: population size must be at least 2")

	// ErrBadProbability indicates a probability outside [0,1], or an
	// elitism fraction outside [0,1).
	ErrBadProbability = errors.New("genetic: probability out of range")

	// ErrBadGenerations indicates a negative generation count or factor.
	ErrBadGenerations = errors.New("genetic: generations must be non-negative")

	// ErrBadOption indicates an unknown strategy value or a negative
	// repair budget, patience or expected flip count.
	ErrBadOption = errors.New("genetic: invalid option")
)

// MutationPolicy decides which offspring go through mutation.
type MutationPolicy int

const (
	// MutateGated mutates an offspring with probability MutationProb.
	MutateGated MutationPolicy = iota

	// MutateAlways mutates every offspring.
	MutateAlways
)

// Selection picks the parent pool from the current population.
type Selection int

const (
	// SelectTournament pairs individuals at random and keeps the better of each pair.
	SelectTournament Selection = iota

	// SelectRoulette draws parents with probability proportional to score.
	SelectRoulette
)

// Crossover recombines two parents into two children.
type Crossover int

const (
	// CrossoverMidpoint swaps the second halves of the parents.
	CrossoverMidpoint Crossover = iota

	// CrossoverUniform draws every gene of each child from either parent.
	CrossoverUniform
)

// Init selects how the first population is built.
type Init int

const (
	// InitRandom draws uniform random bit-vectors, distinct while 2^n allows.
	InitRandom Init = iota

	// InitSingleItem gives individual i only the item of rank i mod n.
	InitSingleItem
)

// GenerationHook observes the best-ever and mean population score after each generation.
type GenerationHook func(gen int, best, mean float64)

// Config holds every knob of the genetic algorithm. Zero values of
// Generations and InnerMutationProb mean "derive from the item count".
type Config struct {
	PopulationSize   int     // rounded down to even, ≥ 2
	Generations      int     // 0 ⇒ GenerationFactor × item count
	GenerationFactor int     // used when Generations is 0
	ElitismFraction  float64 // [0,1); elite count rounded down to even

	CrossoverProb     float64 // [0,1]
	MutationProb      float64 // [0,1], per-individual gate for MutateGated
	InnerMutationProb float64 // [0,1], per-gene flip; 0 ⇒ ExpectedFlips / item count
	ExpectedFlips     float64 // used when InnerMutationProb is 0

	MutationPolicy   MutationPolicy
	RepairInfeasible bool // mutate zero-score offspring even when the gate fails
	RepairAttempts   int  // extra mutations while the score stays 0

	Selection Selection
	Crossover Crossover
	Init      Init

	Patience       int     // stop after this many generations without improvement; 0 disables
	MinImprovement float64 // relative gain that counts as improvement

	Seed int64      // used when Rand is nil; 0 ⇒ fixed default seed
	Rand *rand.Rand // explicit random source, not safe for concurrent use

	OnGeneration GenerationHook
}

// DefaultConfig returns the configuration used by the command-line tools.
func DefaultConfig() Config {
	return Config{
		PopulationSize:    64,
		Generations:       0,
		GenerationFactor:  10,
		ElitismFraction:   0.1,
		CrossoverProb:     0.5,
		MutationProb:      0.5,
		InnerMutationProb: 0,
		ExpectedFlips:     1,
		MutationPolicy:    MutateGated,
		RepairInfeasible:  true,
		RepairAttempts:    100,
		Selection:         SelectTournament,
		Crossover:         CrossoverMidpoint,
		Init:              InitRandom,
	}
}

// Candidate is one individual: a rank-indexed bit-vector and its score.
type Candidate struct {
	Bits  *bitset.BitSet
	Score float64
}

// clone returns a deep copy of c.
func (c Candidate) clone() Candidate {
	return Candidate{Bits: c.Bits.Clone(), Score: c.Score}
}

// Result is the best individual found by a run.
type Result struct {
	Value       float64        // score of the best individual
	Items       []problem.Item // decoded items, sorted by Index
	Bits        *bitset.BitSet // rank-indexed chromosome
	Generations int            // generations actually run
}

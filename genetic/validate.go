package genetic

import "fmt"

// validate checks cfg and returns the first violated constraint, wrapped
// around its sentinel error.
func (cfg Config) validate() error {
	// 1) Population.
	if cfg.PopulationSize&^1 < 2 {
		return fmt.Errorf("%w: got %d", ErrBadPopulation, cfg.PopulationSize)
	}

	// 2) Probabilities.
	if !(cfg.ElitismFraction >= 0 && cfg.ElitismFraction < 1) {
		return fmt.Errorf("%w: elitism fraction %v not in [0,1)", ErrBadProbability, cfg.ElitismFraction)
	}
	probs := [...]struct {
		name string
		v    float64
	}{
		{"crossover", cfg.CrossoverProb},
		{"mutation", cfg.MutationProb},
		{"inner mutation", cfg.InnerMutationProb},
	}
	for _, pr := range probs {
		if !unit(pr.v) {
			return fmt.Errorf("%w: %s probability %v not in [0,1]", ErrBadProbability, pr.name, pr.v)
		}
	}

	// 3) Generation budget.
	if cfg.Generations < 0 || cfg.GenerationFactor < 0 {
		return fmt.Errorf("%w: generations=%d factor=%d", ErrBadGenerations, cfg.Generations, cfg.GenerationFactor)
	}

	// 4) Remaining knobs.
	switch {
	case !(cfg.ExpectedFlips >= 0):
		return fmt.Errorf("%w: expected flips %v", ErrBadOption, cfg.ExpectedFlips)
	case cfg.RepairAttempts < 0:
		return fmt.Errorf("%w: repair attempts %d", ErrBadOption, cfg.RepairAttempts)
	case cfg.Patience < 0:
		return fmt.Errorf("%w: patience %d", ErrBadOption, cfg.Patience)
	case !(cfg.MinImprovement >= 0):
		return fmt.Errorf("%w: min improvement %v", ErrBadOption, cfg.MinImprovement)
	case cfg.MutationPolicy != MutateGated && cfg.MutationPolicy != MutateAlways:
		return fmt.Errorf("%w: mutation policy %d", ErrBadOption, cfg.MutationPolicy)
	case cfg.Selection != SelectTournament && cfg.Selection != SelectRoulette:
		return fmt.Errorf("%w: selection %d", ErrBadOption, cfg.Selection)
	case cfg.Crossover != CrossoverMidpoint && cfg.Crossover != CrossoverUniform:
		return fmt.Errorf("%w: crossover %d", ErrBadOption, cfg.Crossover)
	case cfg.Init != InitRandom && cfg.Init != InitSingleItem:
		return fmt.Errorf("%w: init %d", ErrBadOption, cfg.Init)
	}

	return nil
}

// unit reports whether x lies in [0,1]; NaN does not.
func unit(x float64) bool { return x >= 0 && x <= 1 }

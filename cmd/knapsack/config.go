package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/astar"
	"github.com/katalvlaran/knapsack/compare"
	"github.com/katalvlaran/knapsack/genetic"
	"github.com/katalvlaran/knapsack/solver"
	"github.com/katalvlaran/knapsack/swarm"
)

// Config is the CLI configuration: knapsack.yaml, KNAPSACK_* variables and
// flags, in increasing precedence.
type Config struct {
	Seed    int64         `mapstructure:"seed"`
	AStar   AStarConfig   `mapstructure:"astar"`
	Genetic GeneticConfig `mapstructure:"genetic"`
	Mayfly  MayflyConfig  `mapstructure:"mayfly"`
	Compare CompareConfig `mapstructure:"compare"`
}

// AStarConfig is the "astar" section, mapped onto astar options.
type AStarConfig struct {
	TieBreak    string `mapstructure:"tie_break" validate:"oneof=fifo lifo"`
	Heuristic   string `mapstructure:"heuristic" validate:"oneof=bound loose"`
	MaxExpanded int    `mapstructure:"max_expanded" validate:"gte=0"`
}

// GeneticConfig is the "genetic" section. Zero Generations and
// InnerMutation are derived from the item count.
type GeneticConfig struct {
	Population       int     `mapstructure:"population" validate:"gte=2"`
	Generations      int     `mapstructure:"generations" validate:"gte=0"`
	GenerationFactor int     `mapstructure:"generation_factor" validate:"gte=0"`
	Elitism          float64 `mapstructure:"elitism" validate:"gte=0,lt=1"`
	Crossover        float64 `mapstructure:"crossover" validate:"gte=0,lte=1"`
	Mutation         float64 `mapstructure:"mutation" validate:"gte=0,lte=1"`
	InnerMutation    float64 `mapstructure:"inner_mutation" validate:"gte=0,lte=1"`
	MutationPolicy   string  `mapstructure:"mutation_policy" validate:"oneof=gated always"`
	Selection        string  `mapstructure:"selection" validate:"oneof=tournament roulette"`
	CrossoverMode    string  `mapstructure:"crossover_mode" validate:"oneof=midpoint uniform"`
	Init             string  `mapstructure:"init" validate:"oneof=random single"`
	Patience         int     `mapstructure:"patience" validate:"gte=0"`
}

// MayflyConfig is the "mayfly" section.
type MayflyConfig struct {
	Iterations int     `mapstructure:"iterations" validate:"gte=1"`
	Population int     `mapstructure:"population" validate:"gte=20"`
	Threshold  float64 `mapstructure:"threshold" validate:"gt=0,lt=1"`
	Repair     bool    `mapstructure:"repair"`
}

// CompareConfig is the "compare" section used by compare and sweep.
type CompareConfig struct {
	Iterations  int      `mapstructure:"iterations" validate:"gte=1"`
	Parallelism int      `mapstructure:"parallelism" validate:"gte=1"`
	Tolerance   float64  `mapstructure:"tolerance" validate:"gte=0"`
	Algos       []string `mapstructure:"algos" validate:"dive,oneof=astar genetic dynamic brute mayfly"`
}

var validate = validator.New()

// setDefaults seeds v with the library defaults so that every key is
// known to AutomaticEnv.
func setDefaults(v *viper.Viper) {
	g := genetic.DefaultConfig()
	m := swarm.DefaultConfig()
	c := compare.DefaultOptions()

	v.SetDefault("seed", 0)

	v.SetDefault("astar.tie_break", "fifo")
	v.SetDefault("astar.heuristic", "bound")
	v.SetDefault("astar.max_expanded", 0)

	v.SetDefault("genetic.population", g.PopulationSize)
	v.SetDefault("genetic.generations", g.Generations)
	v.SetDefault("genetic.generation_factor", g.GenerationFactor)
	v.SetDefault("genetic.elitism", g.ElitismFraction)
	v.SetDefault("genetic.crossover", g.CrossoverProb)
	v.SetDefault("genetic.mutation", g.MutationProb)
	v.SetDefault("genetic.inner_mutation", g.InnerMutationProb)
	v.SetDefault("genetic.mutation_policy", "gated")
	v.SetDefault("genetic.selection", "tournament")
	v.SetDefault("genetic.crossover_mode", "midpoint")
	v.SetDefault("genetic.init", "random")
	v.SetDefault("genetic.patience", g.Patience)

	v.SetDefault("mayfly.iterations", m.Iterations)
	v.SetDefault("mayfly.population", m.Population)
	v.SetDefault("mayfly.threshold", m.Threshold)
	v.SetDefault("mayfly.repair", m.Repair)

	v.SetDefault("compare.iterations", c.Iterations)
	v.SetDefault("compare.parallelism", c.Parallelism)
	v.SetDefault("compare.tolerance", c.Tolerance)
	v.SetDefault("compare.algos", []string{})
}

// readConfig points v at cfgFile, or at knapsack.yaml in the working
// directory or ~/.config/knapsack, and reads it when present.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("knapsack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "knapsack"))
		}
	}

	v.SetEnvPrefix("KNAPSACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// loadConfig decodes and validates v.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c AStarConfig) options() []astar.Option {
	opts := []astar.Option{astar.WithMaxExpanded(c.MaxExpanded)}
	if c.TieBreak == "lifo" {
		opts = append(opts, astar.WithTieBreak(astar.TieBreakLIFO))
	}
	if c.Heuristic == "loose" {
		opts = append(opts, astar.WithHeuristic(astar.Loose))
	}

	return opts
}

func (c GeneticConfig) config(seed int64) genetic.Config {
	g := genetic.DefaultConfig()
	g.PopulationSize = c.Population
	g.Generations = c.Generations
	g.GenerationFactor = c.GenerationFactor
	g.ElitismFraction = c.Elitism
	g.CrossoverProb = c.Crossover
	g.MutationProb = c.Mutation
	g.InnerMutationProb = c.InnerMutation
	g.Patience = c.Patience
	g.Seed = seed
	if c.MutationPolicy == "always" {
		g.MutationPolicy = genetic.MutateAlways
	}
	if c.Selection == "roulette" {
		g.Selection = genetic.SelectRoulette
	}
	if c.CrossoverMode == "uniform" {
		g.Crossover = genetic.CrossoverUniform
	}
	if c.Init == "single" {
		g.Init = genetic.InitSingleItem
	}

	return g
}

func (c MayflyConfig) config(seed int64) swarm.Config {
	m := swarm.DefaultConfig()
	m.Iterations = c.Iterations
	m.Population = c.Population
	m.Threshold = c.Threshold
	m.Repair = c.Repair
	m.Seed = seed

	return m
}

// registry builds the solver set described by cfg.
func (cfg Config) registry() *solver.Registry {
	r := solver.NewRegistry()
	r.MustRegister(solver.AStar{Options: cfg.AStar.options()})
	r.MustRegister(solver.BruteForce{})
	r.MustRegister(solver.Dynamic{})
	r.MustRegister(solver.Genetic{Config: cfg.Genetic.config(cfg.Seed)})
	r.MustRegister(solver.Mayfly{Config: cfg.Mayfly.config(cfg.Seed)})

	return r
}

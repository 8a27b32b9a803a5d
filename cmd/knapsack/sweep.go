package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/compare"
	"github.com/katalvlaran/knapsack/problem"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		input    string
		out      string
		parallel int
	)
	grid := compare.DefaultGrid()

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Explore genetic algorithm parameters on one instance",
		Long: `Sweep runs the genetic algorithm once per combination of the parameter
lists and writes one CSV record per run with the parameters, the best
score and its weight. Parameters not swept come from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.LoadFile(input)
			if err != nil {
				return err
			}

			grid.Base = a.cfg.Genetic.config(a.cfg.Seed)
			grid.Parallelism = parallel

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err = compare.Sweep(cmd.Context(), p, grid, f); err != nil {
				_ = f.Close()
				return err
			}

			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input knapsack problem file")
	cmd.Flags().StringVar(&out, "out", "results.csv", "CSV output file")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "configurations solved concurrently")
	cmd.Flags().IntSliceVar(&grid.PopulationSizes, "population", grid.PopulationSizes, "population sizes")
	cmd.Flags().IntSliceVar(&grid.Generations, "generations", grid.Generations, "generation counts")
	cmd.Flags().Float64SliceVar(&grid.ElitismFractions, "elitism", grid.ElitismFractions, "elitism fractions")
	cmd.Flags().Float64SliceVar(&grid.CrossoverProbs, "crossover", grid.CrossoverProbs, "crossover probabilities")
	cmd.Flags().Float64SliceVar(&grid.MutationProbs, "mutation", grid.MutationProbs, "mutation probabilities")
	cmd.Flags().Float64SliceVar(&grid.InnerMutationProbs, "inner-mutation", grid.InnerMutationProbs, "inner mutation probabilities")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/compare"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		input   string
		optimal string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Benchmark solvers on a directory of cases",
		Long: `Compare runs every selected solver on every problem file of the input
directory and prints mean running times and, for heuristic solvers, the
mean value as a percentage of the optimum. Optimal values are read from
same-named files of the optimal directory; without one, the best exact
solver defines the optimum. An exact solver missing the optimum fails
the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := compare.LoadCases(input, optimal)
			if err != nil {
				return err
			}
			solvers, err := a.cfg.registry().Select(a.cfg.Compare.Algos)
			if err != nil {
				return err
			}

			opts := compare.Options{
				Iterations:      a.cfg.Compare.Iterations,
				Parallelism:     a.cfg.Compare.Parallelism,
				Tolerance:       a.cfg.Compare.Tolerance,
				Seed:            a.cfg.Seed,
				SkipUnsupported: true,
				Logger:          slog.Default(),
			}
			rep, err := compare.Run(cmd.Context(), cases, solvers, opts)
			if err != nil {
				return err
			}

			return compare.Render(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input directory of problem cases")
	cmd.Flags().StringVarP(&optimal, "optimal", "o", "", "directory of optimal values, one file per case")
	cmd.Flags().Int("iters", 0, "runs per solver and case")
	cmd.Flags().Int("parallel", 0, "cases solved concurrently")
	cmd.Flags().StringSlice("algos", nil, "solvers to compare (default: all)")
	_ = cmd.MarkFlagRequired("input")

	a.bindFlag(cmd, "compare.iterations", "iters")
	a.bindFlag(cmd, "compare.parallelism", "parallel")
	a.bindFlag(cmd, "compare.algos", "algos")

	return cmd
}

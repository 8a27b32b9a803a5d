package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/katalvlaran/knapsack/problem"
	"github.com/katalvlaran/knapsack/solver"
)

// solveReport is the YAML document written by solve --out.
type solveReport struct {
	Algorithm string       `yaml:"algorithm"`
	Input     string       `yaml:"input"`
	Capacity  float64      `yaml:"capacity"`
	Value     float64      `yaml:"value"`
	Weight    float64      `yaml:"weight"`
	Items     []reportItem `yaml:"items"`
	Millis    float64      `yaml:"millis,omitempty"`
}

type reportItem struct {
	Index  int     `yaml:"index"`
	Value  float64 `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		input string
		algo  string
		timed bool
		out   string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one knapsack instance",
		Long: `Solve reads a problem file ("n capacity" header, then one "value weight"
line per item), runs the chosen algorithm and prints the best value found
and the selected items in index order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.LoadFile(input)
			if err != nil {
				return err
			}
			s, err := a.cfg.registry().Get(algo)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Solving with %s.\n\nProblem: %s\n\n", s.Name(), p)

			start := time.Now()
			res, err := s.Solve(p)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}

			printSolution(w, res)
			ms := float64(elapsed) / float64(time.Millisecond)
			if timed {
				fmt.Fprintf(w, "Time: %.2f milliseconds.\n", ms)
			}

			if out == "" {
				return nil
			}
			rep := newSolveReport(s.Name(), input, p, res)
			if timed {
				rep.Millis = ms
			}

			return writeYAML(out, rep)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input knapsack problem file")
	cmd.Flags().StringVarP(&algo, "algorithm", "a", solver.NameAStar, "astar, genetic, dynamic, brute or mayfly")
	cmd.Flags().BoolVarP(&timed, "time", "t", false, "print the running time")
	cmd.Flags().StringVar(&out, "out", "", "write a YAML report to this file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func printSolution(w io.Writer, res solver.Result) {
	_, weight := problem.Sum(res.Items)
	fmt.Fprintf(w, "Value found: %v. Weight: %v.\nSolution:", res.Value, weight)
	for _, it := range res.Items {
		fmt.Fprintf(w, "\n    %d. Value: %v, Weight: %v", it.Index, it.Value, it.Weight)
	}
	fmt.Fprintln(w)
}

func newSolveReport(algo, input string, p *problem.Problem, res solver.Result) solveReport {
	rep := solveReport{
		Algorithm: algo,
		Input:     input,
		Capacity:  p.Capacity(),
		Value:     res.Value,
		Items:     make([]reportItem, len(res.Items)),
	}
	for i, it := range res.Items {
		rep.Items[i] = reportItem{Index: it.Index, Value: it.Value, Weight: it.Weight}
		rep.Weight += it.Weight
	}

	return rep
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

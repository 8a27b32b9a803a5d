// Command knapsack solves 0/1 knapsack instances and benchmarks the solvers.
//
//	knapsack solve   -i problem.txt [-a astar] [-t] [--out report.yaml]
//	knapsack compare -i inputs/ [-o optimal/] [--iters 100] [--algos astar,genetic]
//	knapsack sweep   -i problem.txt --out results.csv
//	knapsack version
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// app is the state shared by the subcommands of one root command.
type app struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string
	cfg      Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	root := &cobra.Command{
		Use:   "knapsack",
		Short: "Exact and heuristic solvers for the 0/1 knapsack problem",
		Long: `knapsack solves 0/1 knapsack instances with A* search, a genetic algorithm,
dynamic programming, brute force or a mayfly swarm, and compares them on
directories of benchmark cases.

Settings come from knapsack.yaml (working directory or ~/.config/knapsack),
KNAPSACK_* environment variables (KNAPSACK_GENETIC_POPULATION=128) and flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLogger(cmd.ErrOrStderr())
			if err := readConfig(a.v, a.cfgFile); err != nil {
				return err
			}
			if used := a.v.ConfigFileUsed(); used != "" {
				slog.Debug("using config file", "path", used)
			}
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./knapsack.yaml or ~/.config/knapsack/knapsack.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Int64("seed", 0, "base seed for randomized solvers")
	_ = a.v.BindPFlag("seed", root.PersistentFlags().Lookup("seed"))

	root.AddCommand(
		newSolveCmd(a),
		newCompareCmd(a),
		newSweepCmd(a),
		newVersionCmd(),
	)

	return root
}

// setupLogger installs a JSON slog handler on w as the default logger.
func (a *app) setupLogger(w io.Writer) {
	var level slog.Level
	switch a.logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
}

// bindFlag binds flag name of cmd to config key, panicking on a typo.
func (a *app) bindFlag(cmd *cobra.Command, key, name string) {
	if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

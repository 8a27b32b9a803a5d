package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/katalvlaran/knapsack/solver"
)

const scenarioText = "3 10\n10 5\n6 4\n5 6\n"

// execute runs the CLI with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()

	return out.String(), err
}

func problemFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario")
	require.NoError(t, os.WriteFile(path, []byte(scenarioText), 0o644))

	return path
}

func TestSolve(t *testing.T) {
	in := problemFile(t)
	report := filepath.Join(t.TempDir(), "report.yaml")

	out, err := execute(t, "solve", "-i", in, "-a", "dynamic", "-t", "--out", report)
	require.NoError(t, err)
	assert.Contains(t, out, "Value found: 16.")
	assert.Contains(t, out, "1. Value: 10, Weight: 5")
	assert.Contains(t, out, "2. Value: 6, Weight: 4")
	assert.Contains(t, out, "Time: ")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var rep solveReport
	require.NoError(t, yaml.Unmarshal(data, &rep))
	assert.Equal(t, "dynamic", rep.Algorithm)
	assert.Equal(t, 16.0, rep.Value)
	assert.Equal(t, 9.0, rep.Weight)
	require.Len(t, rep.Items, 2)
	assert.Equal(t, 1, rep.Items[0].Index)
	assert.Equal(t, 2, rep.Items[1].Index)
}

func TestSolve_EveryAlgorithm(t *testing.T) {
	in := problemFile(t)
	for _, algo := range solver.Default().Names() {
		t.Run(algo, func(t *testing.T) {
			out, err := execute(t, "solve", "-i", in, "-a", algo)
			require.NoError(t, err)
			assert.Contains(t, out, "Solving with "+algo)
			assert.NotContains(t, out, "Time: ")
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "solve", "-i", problemFile(t), "-a", "simplex")
	assert.ErrorIs(t, err, solver.ErrUnknownSolver)

	_, err = execute(t, "solve", "-i", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = execute(t, "solve")
	assert.Error(t, err, "input is required")
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("KNAPSACK_GENETIC_POPULATION", "1")
	_, err := execute(t, "solve", "-i", problemFile(t), "-a", "genetic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestConfig_File(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "knapsack.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("astar:\n  tie_break: sideways\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, "solve", "-i", problemFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	require.NoError(t, os.WriteFile(cfgPath, []byte("astar:\n  tie_break: lifo\n  heuristic: loose\n"), 0o644))
	out, err := execute(t, "--config", cfgPath, "solve", "-i", problemFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Value found: 16.")

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "version")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	root := t.TempDir()
	in, opt := filepath.Join(root, "inputs"), filepath.Join(root, "optimal")
	require.NoError(t, os.MkdirAll(in, 0o755))
	require.NoError(t, os.MkdirAll(opt, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "scenario"), []byte(scenarioText), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(opt, "scenario"), []byte("16\n"), 0o644))

	out, err := execute(t, "compare", "-i", in, "-o", opt, "--iters", "2", "--algos", "astar,dynamic,genetic")
	require.NoError(t, err)
	assert.Contains(t, out, "astar time (ms)")
	assert.Contains(t, out, "genetic optimality (%)")
	assert.Contains(t, out, "scenario")
	assert.NotContains(t, out, "mayfly")

	require.NoError(t, os.WriteFile(filepath.Join(opt, "scenario"), []byte("17\n"), 0o644))
	_, err = execute(t, "compare", "-i", in, "-o", opt, "--iters", "1", "--algos", "dynamic")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out := filepath.Join(t.TempDir(), "results.csv")
	_, err := execute(t, "sweep", "-i", problemFile(t), "--out", out,
		"--population", "8,10", "--generations", "4", "--elitism", "0.25",
		"--crossover", "0.5", "--mutation", "0.1,0.9", "--inner-mutation", "0.3")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 5)
	assert.Equal(t, "population size", records[0][0])
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "knapsack dev\n", out)
}

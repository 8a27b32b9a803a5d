package compare

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/problem"
)

// LoadCases parses every regular, non-hidden file of inputDir as a problem.
// When optimalDir is non-empty, a file with the same name there supplies
// the known optimum on its first line; a missing file just means no optimum.
// Cases are returned sorted by name.
func LoadCases(inputDir, optimalDir string) ([]Case, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("compare: read %s: %w", inputDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	cases := make([]Case, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		p, err := problem.LoadFile(filepath.Join(inputDir, e.Name()))
		if err != nil {
			return nil, err
		}
		c := Case{Name: e.Name(), Problem: p}
		if optimalDir != "" {
			c.Optimal, c.HasOptimal, err = readOptimal(filepath.Join(optimalDir, e.Name()))
			if err != nil {
				return nil, err
			}
		}
		cases = append(cases, c)
	}

	return cases, nil
}

// readOptimal reads the first non-blank line of path as a number.
func readOptimal(path string) (float64, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("compare: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.Fields(line)[0], 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s: %q", ErrBadOptimal, path, line)
		}
		return v, true, nil
	}
	if err = sc.Err(); err != nil {
		return 0, false, fmt.Errorf("compare: read %s: %w", path, err)
	}

	return 0, false, fmt.Errorf("%w: %s is empty", ErrBadOptimal, path)
}

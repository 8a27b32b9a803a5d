package problem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxPrealloc bounds the item slice sized from an untrusted header.
const maxPrealloc = 1024

// Parse reads a problem in the plain-text encoding:
//
//	n capacity
//	v1 w1
//	v2 w2
//	:  :
//	vn wn
//
// n is an integer, every other field a real number. Items are indexed
// 1..n by their line order. Blank lines are skipped and lines after the
// n-th item are ignored. Any malformed line fails the whole parse.
//
// Errors: ErrFormat (header or field syntax, wrapped with the line number),
// ErrMissingItems, plus the validation errors of New.
func Parse(r io.Reader) (*Problem, error) {
	var (
		sc       = bufio.NewScanner(r)
		lineNo   int
		header   bool
		declared int
		capacity float64
		items    []Item
		fields   []string
		err      error
	)

	for sc.Scan() {
		lineNo++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		// 1) Header line: "<n> <capacity>".
		if !header {
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: header needs 2 fields, got %d", ErrFormat, lineNo, len(fields))
			}
			if declared, err = strconv.Atoi(fields[0]); err != nil || declared < 0 {
				return nil, fmt.Errorf("%w: line %d: bad item count %q", ErrFormat, lineNo, fields[0])
			}
			if capacity, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: bad capacity %q", ErrFormat, lineNo, fields[1])
			}
			header = true
			items = make([]Item, 0, min(declared, maxPrealloc))
			continue
		}

		// 2) Item lines until the declared count is reached.
		if len(items) == declared {
			break
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: item needs 2 fields, got %d", ErrFormat, lineNo, len(fields))
		}
		it := Item{Index: len(items) + 1}
		if it.Value, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d: bad value %q", ErrFormat, lineNo, fields[0])
		}
		if it.Weight, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrFormat, lineNo, fields[1])
		}
		items = append(items, it)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("problem: read input: %w", err)
	}

	if !header {
		return nil, fmt.Errorf("%w: missing header line", ErrFormat)
	}
	if len(items) < declared {
		return nil, fmt.Errorf("%w: declared %d, found %d", ErrMissingItems, declared, len(items))
	}

	return New(capacity, items)
}

// LoadFile opens path and parses it with Parse.
func LoadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

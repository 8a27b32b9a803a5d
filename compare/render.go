package compare

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Headers returns the column titles of r: the case name, one mean-time
// column per solver, then one optimality column per heuristic solver.
func Headers(r Report) []string {
	h := []string{"Problem"}
	for _, name := range r.Solvers {
		h = append(h, name+" time (ms)")
	}
	for i, name := range r.Solvers {
		if !exactColumn(r, i) {
			h = append(h, name+" optimality (%)")
		}
	}

	return h
}

// Rows returns the table cells of r in Headers order.
// Skipped solvers show "skipped"; cases without a reference show "n/a".
func Rows(r Report) [][]string {
	rows := make([][]string, 0, len(r.Cases))
	for _, c := range r.Cases {
		row := []string{c.Name}
		for _, st := range c.Solvers {
			if st.Skipped {
				row = append(row, "skipped")
				continue
			}
			row = append(row, millis(st.MeanTime))
		}
		for i, st := range c.Solvers {
			if exactColumn(r, i) {
				continue
			}
			switch {
			case st.Skipped:
				row = append(row, "skipped")
			case !c.HasReference:
				row = append(row, "n/a")
			default:
				row = append(row, strconv.FormatFloat(st.Optimality, 'f', 2, 64))
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// Render writes r as a bordered table to w.
func Render(w io.Writer, r Report) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers(r)...).
		Rows(Rows(r)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// exactColumn reports whether solver column i is exact. Exactness is a
// property of the solver, so the first case decides.
func exactColumn(r Report, i int) bool {
	if len(r.Cases) == 0 || i >= len(r.Cases[0].Solvers) {
		return false
	}

	return r.Cases[0].Solvers[i].Exact
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}

package diag

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Matrix is a renderable snapshot of an augmented matrix: one header per
// unassigned symbol's column plus a trailing constant column, and one row
// per expression. It carries no solver-specific types so that diag stays
// free of a dependency on the solver package; System.Matrix builds one of
// these from the most recent Solve's working matrix when a caller asks for
// it.
type Matrix struct {
	ColumnNames []string // one per unassigned symbol, left to right
	Rows        [][]float64
}

// Pretty renders the matrix as optional diagnostic output: a table with
// one labeled column per unknown plus a constant column, via
// go-pretty/table — the same library grafana-tempo uses for its own CLI
// status tables.
func (m *Matrix) Pretty() string {
	t := table.NewWriter()

	header := make(table.Row, 0, len(m.ColumnNames)+1)
	for _, name := range m.ColumnNames {
		header = append(header, name)
	}
	header = append(header, "=")
	t.AppendHeader(header)

	for _, row := range m.Rows {
		r := make(table.Row, 0, len(row))
		for _, v := range row {
			r = append(r, fmt.Sprintf("%.6g", v))
		}
		t.AppendRow(r)
	}

	return t.Render()
}

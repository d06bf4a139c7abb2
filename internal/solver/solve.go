package solver

import (
	"math"

	"github.com/go-kit/log/level"

	"github.com/santileortiz/layoutsolver/internal/diag"
)

// Solve assembles the augmented matrix over every symbol still
// Unassigned, row-reduces it by Gaussian elimination with partial
// pivoting, back-substitutes, and reads the solution back into the symbol
// table. It returns whether the system fully solved (no overconstraint and
// no symbol left unsolved) and a diagnostic report naming every
// overconstrained and unsolved symbol.
//
// Solve does not reset any symbol's state: a symbol already Assigned or
// Solved from a previous call is folded into this one as a known constant,
// so re-running Solve on a fully determined system is idempotent. The
// design does not guarantee anything beyond that for repeated solves on
// the same instance.
func (s *System) Solve() (bool, *diag.Report) {
	report := &diag.Report{}

	unassigned, colOf := s.unassignedColumns()
	nUnk := len(unassigned)

	// No unknowns means nothing to build.
	if nUnk == 0 {
		s.lastMatrix = nil
		s.lastColumns = nil
		s.Success = true
		level.Debug(s.logger).Log("msg", "solve: no unassigned symbols")
		return true, report
	}

	matrix := s.assemble(unassigned, colOf)
	s.eliminate(matrix, unassigned, report)
	s.backSubstitute(matrix, nUnk)
	s.readBack(matrix, unassigned)

	for _, def := range unassigned {
		if def.State == Unassigned {
			report.AddUnsolved(def.Name)
		}
	}

	s.lastMatrix = matrix
	s.lastColumns = unassigned

	s.Success = report.Empty()
	level.Debug(s.logger).Log("msg", "solve complete", "success", s.Success, "unknowns", nUnk, "equations", len(s.Expressions))
	return s.Success, report
}

// unassignedColumns numbers every Unassigned symbol in lexicographic name
// order, returning the ordered slice and a lookup from symbol id to column
// index.
func (s *System) unassignedColumns() ([]*Definition, map[int]int) {
	var unassigned []*Definition
	colOf := make(map[int]int)
	for _, name := range s.Table.Names() {
		def, _ := s.Table.Lookup(name)
		if def.State == Unassigned {
			colOf[def.ID] = len(unassigned)
			unassigned = append(unassigned, def)
		}
	}
	return unassigned, colOf
}

// assemble builds the |E| x (|U|+1) augmented matrix. Known (Assigned or
// Solved) symbols contribute to the constant column; unassigned symbols
// get their sign written into their column. A symbol that appears twice in
// one expression overwrites rather than sums its coefficient — a literal,
// deliberate reproduction of the source behavior, not an oversight.
func (s *System) assemble(unassigned []*Definition, colOf map[int]int) [][]float64 {
	nUnk := len(unassigned)
	matrix := make([][]float64, len(s.Expressions))

	for i, expr := range s.Expressions {
		row := make([]float64, nUnk+1)
		for _, ref := range expr.Refs {
			sign := ref.Sign()
			if ref.Def.Known() {
				row[nUnk] -= sign * ref.Def.Value
			} else {
				row[colOf[ref.Def.ID]] = sign
			}
		}
		matrix[i] = row
	}
	return matrix
}

// eliminate runs Gaussian elimination with partial pivoting over matrix,
// pivoting rows h..len(matrix)-1 against columns k upward. It detects
// overconstraint inline: a row that reduces to "all zero across the
// remaining unknown columns, but nonzero in the constant column" is
// unsatisfiable, and its pivot-column symbol is reported as a
// representative of the connected component.
func (s *System) eliminate(matrix [][]float64, unassigned []*Definition, report *diag.Report) {
	nRows := len(matrix)
	nUnk := len(unassigned)

	h, k := 0, 0
	for h < nRows && k < nUnk {
		pivotRow, maxAbs := -1, 0.0
		for i := h; i < nRows; i++ {
			if v := math.Abs(matrix[i][k]); v > maxAbs {
				maxAbs, pivotRow = v, i
			}
		}

		if pivotRow == -1 || maxAbs == 0 {
			k++
			continue
		}

		matrix[h], matrix[pivotRow] = matrix[pivotRow], matrix[h]
		level.Debug(s.logger).Log("msg", "row pivoted", "symbol", unassigned[k].Name, "row", pivotRow)

		for i := h + 1; i < nRows; i++ {
			wasZero := matrix[i][k] == 0
			if wasZero {
				continue
			}

			factor := matrix[i][k] / matrix[h][k]
			for c := k; c <= nUnk; c++ {
				matrix[i][c] -= factor * matrix[h][c]
			}
			matrix[i][k] = 0 // exact zero, as the elimination step requires

			allZero := true
			for c := k + 1; c < nUnk; c++ {
				if matrix[i][c] != 0 {
					allZero = false
					break
				}
			}
			if allZero && matrix[i][nUnk] != 0 {
				report.AddOverconstrained(unassigned[k].Name)
				level.Debug(s.logger).Log("msg", "overconstrained symbol", "symbol", unassigned[k].Name, "row", i)
			}
		}

		h++
		k++
	}
}

// backSubstitute walks matrix bottom-up, normalizing each row that has a
// clean leading coefficient (no other nonzero entries past it) to 1 and
// eliminating that column from every row above. Rows that are zero,
// overconstraining, or part of an underconstrained block (more than one
// nonzero entry among the unknown columns) are left untouched and simply
// skipped.
func (s *System) backSubstitute(matrix [][]float64, nUnk int) {
	for h := len(matrix) - 1; h >= 0; h-- {
		lead := -1
		for c := 0; c < nUnk; c++ {
			if matrix[h][c] != 0 {
				lead = c
				break
			}
		}
		if lead == -1 {
			continue // entirely zero, or zero except the constant column
		}

		underconstrained := false
		for c := lead + 1; c < nUnk; c++ {
			if matrix[h][c] != 0 {
				underconstrained = true
				break
			}
		}
		if underconstrained {
			continue
		}

		pivot := matrix[h][lead]
		for c := lead; c <= nUnk; c++ {
			matrix[h][c] /= pivot
		}

		for r := 0; r < h; r++ {
			factor := matrix[r][lead]
			if factor == 0 {
				continue
			}
			for c := lead; c <= nUnk; c++ {
				matrix[r][c] -= factor * matrix[h][c]
			}
		}
	}
}

// readBack walks rows [0, min(len(matrix), |U|)) — a system with fewer
// equations than unknowns simply has no further rows to read, and those
// columns stay Unassigned below — setting a symbol Solved wherever its row
// reduced to a single unit coefficient. Rows with any other shape encode
// an ambiguous combination and are left for the unsolved pass.
func (s *System) readBack(matrix [][]float64, unassigned []*Definition) {
	nUnk := len(unassigned)
	limit := len(matrix)
	if nUnk < limit {
		limit = nUnk
	}

	for i := 0; i < limit; i++ {
		count, col := 0, -1
		for c := 0; c < nUnk; c++ {
			if matrix[i][c] != 0 {
				count++
				col = c
			}
		}
		if count == 1 && matrix[i][col] == 1 {
			def := unassigned[col]
			def.State = Solved
			def.Value = matrix[i][nUnk]
			level.Debug(s.logger).Log("msg", "symbol solved", "symbol", def.Name, "value", def.Value)
		}
	}
}

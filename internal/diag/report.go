// Package diag implements the solver's diagnostic text: one line per
// overconstrained symbol discovered during elimination, one line per
// symbol still unassigned after back-substitution, and an optional
// pretty-printed augmented matrix for debugging.
package diag

import "strings"

// Report accumulates diagnostic lines across a single Solve call. It has
// no dependency on the solver package itself — Solve appends to it as it
// works, and it is purely a line-oriented text accumulator: every
// overconstrained symbol encountered is appended to the diagnostic string.
// It carries no success flag of its own; Empty reports whether any line
// was recorded.
type Report struct {
	lines []string
}

// AddOverconstrained records that name's column was the pivot of an
// unsatisfiable row during elimination. Diagnostics name the pivot
// column's symbol as a representative of the connected component, not
// necessarily the root cause.
func (r *Report) AddOverconstrained(name string) {
	r.lines = append(r.lines, "Overconstrained symbol '"+name+"'")
}

// AddUnsolved records that name remained Unassigned after back-substitution.
func (r *Report) AddUnsolved(name string) {
	r.lines = append(r.lines, "Unsolved symbol '"+name+"'")
}

// Empty reports whether no diagnostic lines were recorded, i.e. Solve
// succeeded outright.
func (r *Report) Empty() bool {
	return len(r.lines) == 0
}

// Lines returns the diagnostic lines in the order they were recorded.
func (r *Report) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// String renders the report as line-oriented text: one diagnostic per
// line, no structured format.
func (r *Report) String() string {
	return strings.Join(r.lines, "\n")
}

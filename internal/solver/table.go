package solver

import "sort"

// Table is the symbol table: two associative containers — name to
// definition and id to definition — sharing the same value objects, kept
// in lockstep on every insertion, with no deletions.
//
// original_source/linear_solver.c realizes this with a pair of
// BINARY_TREE_NEW trees (id_to_symbol_definition, name_to_symbol_definition)
// sharing struct symbol_definition_t* values. Go's idiomatic equivalent for
// a dense, never-shrinking id space is a slice indexed directly by id (ids
// are a dense prefix [0, lastID)) paired with a map for name lookups; an
// insertion-sorted name slice gives lexicographic iteration without
// re-sorting on every Solve.
type Table struct {
	byName      map[string]*Definition
	byID        []*Definition
	sortedNames []string
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		byName: make(map[string]*Definition),
	}
}

// Lookup returns the definition for name, or (nil, false) if it has never
// been interned. This is the signal the parser uses to decide whether to
// create a new definition.
func (t *Table) Lookup(name string) (*Definition, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// ByID returns the definition with the given id, or (nil, false) if id is
// out of range. Ids are a dense prefix, so this is a direct slice index.
func (t *Table) ByID(id int) (*Definition, bool) {
	if id < 0 || id >= len(t.byID) {
		return nil, false
	}
	return t.byID[id], true
}

// Intern returns the existing definition for name, creating one with a
// fresh id, Unassigned state, and zero value if it doesn't exist yet.
func (t *Table) Intern(name string) *Definition {
	if d, ok := t.byName[name]; ok {
		return d
	}

	d := &Definition{
		ID:    len(t.byID),
		Name:  name,
		State: Unassigned,
	}

	t.byName[name] = d
	t.byID = append(t.byID, d)

	i := sort.SearchStrings(t.sortedNames, name)
	t.sortedNames = append(t.sortedNames, "")
	copy(t.sortedNames[i+1:], t.sortedNames[i:])
	t.sortedNames[i] = name

	return d
}

// LastID returns the number of symbols interned so far, i.e. the id that
// would be assigned to the next new symbol.
func (t *Table) LastID() int {
	return len(t.byID)
}

// Names returns every interned symbol name in lexicographic order. The
// returned slice is owned by the caller.
func (t *Table) Names() []string {
	names := make([]string, len(t.sortedNames))
	copy(names, t.sortedNames)
	return names
}

// Definitions returns every definition in lexicographic name order, the
// iteration order a renderer or formatter walks to dump solved state.
func (t *Table) Definitions() []*Definition {
	defs := make([]*Definition, len(t.sortedNames))
	for i, name := range t.sortedNames {
		defs[i] = t.byName[name]
	}
	return defs
}

package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInternReturnsSameDefinitionForSameName(t *testing.T) {
	table := NewTable()

	a := table.Intern("x")
	b := table.Intern("x")

	if a != b {
		t.Fatalf("Intern(x) returned different definitions on second call")
	}
	if a.State != Unassigned || a.Value != 0 {
		t.Fatalf("new definition = %+v, want Unassigned with zero value", a)
	}
}

func TestInternAssignsDenseIncreasingIDs(t *testing.T) {
	table := NewTable()

	x := table.Intern("x")
	y := table.Intern("y")
	z := table.Intern("z")

	if x.ID != 0 || y.ID != 1 || z.ID != 2 {
		t.Fatalf("ids = %d, %d, %d, want 0, 1, 2", x.ID, y.ID, z.ID)
	}
	if table.LastID() != 3 {
		t.Fatalf("LastID() = %d, want 3", table.LastID())
	}
}

func TestByIDAndByNameAgree(t *testing.T) {
	table := NewTable()
	def := table.Intern("r1.min.x")

	byName, ok := table.Lookup("r1.min.x")
	if !ok || byName != def {
		t.Fatalf("Lookup(r1.min.x) did not return the interned definition")
	}

	byID, ok := table.ByID(def.ID)
	if !ok || byID != def {
		t.Fatalf("ByID(%d) did not return the interned definition", def.ID)
	}
}

func TestByIDOutOfRange(t *testing.T) {
	table := NewTable()
	table.Intern("x")

	if _, ok := table.ByID(-1); ok {
		t.Fatalf("ByID(-1) = ok, want not found")
	}
	if _, ok := table.ByID(5); ok {
		t.Fatalf("ByID(5) = ok, want not found")
	}
}

func TestNamesAreLexicographicallySorted(t *testing.T) {
	table := NewTable()
	table.Intern("b")
	table.Intern("a")
	table.Intern("c")

	got := table.Names()
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionsMatchLexicographicOrder(t *testing.T) {
	table := NewTable()
	table.Intern("zebra")
	table.Intern("apple")

	defs := table.Definitions()
	if len(defs) != 2 || defs[0].Name != "apple" || defs[1].Name != "zebra" {
		t.Fatalf("Definitions() order wrong: %+v", defs)
	}

	// Definitions returned must be the exact same objects Lookup would give,
	// not copies, since the solver mutates them by pointer.
	apple, _ := table.Lookup("apple")
	if apple != defs[0] {
		t.Fatalf("Definitions()[0] is a different object than Lookup(apple)")
	}
}

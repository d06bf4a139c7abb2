package format

import (
	"strings"
	"testing"

	"github.com/santileortiz/layoutsolver/internal/layout"
	"github.com/santileortiz/layoutsolver/internal/solver"
)

func TestApplyWiresRectanglesLinksFixesEquationsAssignments(t *testing.T) {
	doc := &Document{
		Rectangles: []RectangleDoc{
			{Ref: "r1", Width: 90, Height: 20},
			{Ref: "r2", Width: 90, Height: 20},
		},
		Links: []LinkDoc{
			{Ref: "L", Src: "r1", SrcAnchor: layout.AnchorB, Dst: "r2", DstAnchor: layout.FeatureMin, DX: 10, DY: 15},
		},
		Fixes: []FixDoc{
			{Rectangle: "r1", Anchor: layout.FeatureMin, X: 100, Y: 100},
		},
	}

	sys := solver.New()
	comp := layout.NewCompiler(sys)

	refs, err := Apply(doc, comp)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if _, ok := refs["r1"]; !ok {
		t.Fatalf("refs missing r1: %v", refs)
	}
	if _, ok := refs["L"]; !ok {
		t.Fatalf("refs missing link ref L: %v", refs)
	}

	ok, report := sys.Solve()
	if !ok {
		t.Fatalf("Solve() = false, want true; diagnostics: %v", report.Lines())
	}

	r2 := refs["r2"]
	if got := sys.Value(layout.Symbol(r2, layout.FeatureMin, layout.AxisX)); got != 110 {
		t.Fatalf("r2.min.x = %v, want 110", got)
	}
}

func TestApplyRawEquationsAndAssignments(t *testing.T) {
	doc := &Document{
		Equations:   []string{"x + w - y"},
		Assignments: []AssignmentDoc{{Symbol: "w", Value: 10}, {Symbol: "y", Value: 100}},
	}

	sys := solver.New()
	comp := layout.NewCompiler(sys)

	if _, err := Apply(doc, comp); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	ok, _ := sys.Solve()
	if !ok {
		t.Fatalf("Solve() = false, want true")
	}
	if got := sys.Value("x"); got != 90 {
		t.Fatalf("x = %v, want 90", got)
	}
}

func TestApplyUnknownLinkSrcRefFails(t *testing.T) {
	doc := &Document{
		Rectangles: []RectangleDoc{{Ref: "r1", Width: 10, Height: 10}},
		Links:      []LinkDoc{{Ref: "L", Src: "missing", SrcAnchor: "b", Dst: "r1", DstAnchor: "min"}},
	}

	comp := layout.NewCompiler(solver.New())
	if _, err := Apply(doc, comp); err == nil {
		t.Fatalf("Apply succeeded, want an error for unknown src ref")
	}
}

func TestApplyUnknownFixRectangleRefFails(t *testing.T) {
	doc := &Document{
		Fixes: []FixDoc{{Rectangle: "missing", Anchor: "min", X: 1, Y: 1}},
	}

	comp := layout.NewCompiler(solver.New())
	if _, err := Apply(doc, comp); err == nil {
		t.Fatalf("Apply succeeded, want an error for unknown rectangle ref")
	}
}

func TestApplyDuplicateRectangleRefFails(t *testing.T) {
	doc := &Document{
		Rectangles: []RectangleDoc{
			{Ref: "r1", Width: 10, Height: 10},
			{Ref: "r1", Width: 20, Height: 20},
		},
	}

	comp := layout.NewCompiler(solver.New())
	_, err := Apply(doc, comp)
	if err == nil {
		t.Fatalf("Apply succeeded, want an error for duplicate ref")
	}
	if !strings.Contains(err.Error(), "duplicate ref") {
		t.Fatalf("error = %v, want it to mention duplicate ref", err)
	}
}

func TestApplyMissingRectangleRefFails(t *testing.T) {
	doc := &Document{Rectangles: []RectangleDoc{{Width: 10, Height: 10}}}

	comp := layout.NewCompiler(solver.New())
	if _, err := Apply(doc, comp); err == nil {
		t.Fatalf("Apply succeeded, want an error for a rectangle with no ref")
	}
}

package format

import (
	"strings"
	"testing"
)

func TestJSONRoundTripsDocument(t *testing.T) {
	doc := &Document{
		Rectangles:  []RectangleDoc{{Ref: "r1", Width: 90, Height: 20}},
		Links:       []LinkDoc{{Ref: "L", Src: "r1", SrcAnchor: "b", Dst: "r1", DstAnchor: "min", DX: 1, DY: 2}},
		Fixes:       []FixDoc{{Rectangle: "r1", Anchor: "min", X: 100, Y: 100}},
		Equations:   []string{"x + w - y"},
		Assignments: []AssignmentDoc{{Symbol: "w", Value: 10}},
	}

	data, err := EncodeJSON(doc)
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}

	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}

	if len(got.Rectangles) != 1 || got.Rectangles[0].Ref != "r1" || got.Rectangles[0].Width != 90 {
		t.Fatalf("Rectangles = %+v", got.Rectangles)
	}
	if len(got.Links) != 1 || got.Links[0].Dst != "r1" {
		t.Fatalf("Links = %+v", got.Links)
	}
	if len(got.Fixes) != 1 || got.Fixes[0].X != 100 {
		t.Fatalf("Fixes = %+v", got.Fixes)
	}
	if len(got.Equations) != 1 || got.Equations[0] != "x + w - y" {
		t.Fatalf("Equations = %+v", got.Equations)
	}
	if len(got.Assignments) != 1 || got.Assignments[0].Value != 10 {
		t.Fatalf("Assignments = %+v", got.Assignments)
	}
}

func TestEncodeJSONEmptyDocumentReturnsEmptyObject(t *testing.T) {
	data, err := EncodeJSON(&Document{})
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Fatalf("EncodeJSON(empty) = %s, want {}", data)
	}
}

func TestEncodeSolvedJSONEscapesDottedSymbolNames(t *testing.T) {
	symbols := []SolvedSymbol{
		{Name: "0.min.x", State: "solved", Value: 90},
	}

	data, err := EncodeSolvedJSON(symbols)
	if err != nil {
		t.Fatalf("EncodeSolvedJSON error: %v", err)
	}

	// The path escaping keeps "0.min.x" as one flat key instead of nesting
	// into {"0":{"min":{"x":...}}}.
	if !strings.Contains(string(data), `"0.min.x"`) {
		t.Fatalf("EncodeSolvedJSON output = %s, want a flat key \"0.min.x\"", data)
	}
}

// Package format implements the input/output codecs for layout documents: a
// declarative description of rectangles, anchors, links, fixes, raw
// equations, and assignments that internal/layout and internal/solver then
// turn into a solved system.
//
// original_source/layouter.c hardcodes this wiring directly in main():
// a handful of solver_expr_equals_zero and solver_symbol_assign calls
// building one fixed rectangle. This package is the natural completion the
// spec's supplemented features call for — the same wiring, expressed as
// data instead of as a sequence of C function calls, with YAML and JSON
// front ends.
package format

import (
	"fmt"

	"github.com/santileortiz/layoutsolver/internal/layout"
)

// Document is the declarative, codec-agnostic layout description. Decoding
// (YAML or JSON) produces one of these; Apply then drives an
// *layout.Compiler with it.
type Document struct {
	Rectangles  []RectangleDoc  `yaml:"rectangles,omitempty" json:"rectangles,omitempty"`
	Links       []LinkDoc       `yaml:"links,omitempty" json:"links,omitempty"`
	Fixes       []FixDoc        `yaml:"fixes,omitempty" json:"fixes,omitempty"`
	Equations   []string        `yaml:"equations,omitempty" json:"equations,omitempty"`
	Assignments []AssignmentDoc `yaml:"assignments,omitempty" json:"assignments,omitempty"`
}

// RectangleDoc declares one rectangle. Ref is a document-local name used by
// Links and Fixes to refer back to the rectangle id the compiler allocates
// for it; it is never itself a solver symbol.
type RectangleDoc struct {
	Ref    string  `yaml:"ref" json:"ref"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// LinkDoc declares a link between two rectangles' anchors by ref.
type LinkDoc struct {
	Ref       string  `yaml:"ref,omitempty" json:"ref,omitempty"`
	Src       string  `yaml:"src" json:"src"`
	SrcAnchor string  `yaml:"src_anchor" json:"src_anchor"`
	Dst       string  `yaml:"dst" json:"dst"`
	DstAnchor string  `yaml:"dst_anchor" json:"dst_anchor"`
	DX        float64 `yaml:"dx" json:"dx"`
	DY        float64 `yaml:"dy" json:"dy"`
}

// FixDoc fixes one anchor of a rectangle (by ref) to a concrete point.
type FixDoc struct {
	Rectangle string  `yaml:"rectangle" json:"rectangle"`
	Anchor    string  `yaml:"anchor" json:"anchor"`
	X         float64 `yaml:"x" json:"x"`
	Y         float64 `yaml:"y" json:"y"`
}

// AssignmentDoc assigns a raw symbol name a value directly, for
// user-written symbols (the "{type}_{id}.{feature}.{axis}" convention)
// that don't go through a rectangle/link/fix primitive.
type AssignmentDoc struct {
	Symbol string  `yaml:"symbol" json:"symbol"`
	Value  float64 `yaml:"value" json:"value"`
}

// Apply drives comp with doc, in the fixed order rectangles, links, fixes,
// equations, assignments — rectangles and links must come first since
// later sections refer to them by ref. It returns the ref-to-id mapping the
// compiler allocated, for callers that want to report ids back to a
// document author.
func Apply(doc *Document, comp *layout.Compiler) (map[string]int, error) {
	refs := make(map[string]int, len(doc.Rectangles)+len(doc.Links))

	for _, r := range doc.Rectangles {
		if r.Ref == "" {
			return nil, fmt.Errorf("format: rectangle missing ref")
		}
		if _, dup := refs[r.Ref]; dup {
			return nil, fmt.Errorf("format: duplicate ref %q", r.Ref)
		}
		id, err := comp.RectangleWithSize(r.Width, r.Height)
		if err != nil {
			return nil, fmt.Errorf("format: rectangle %q: %w", r.Ref, err)
		}
		refs[r.Ref] = id
	}

	for _, l := range doc.Links {
		srcID, ok := refs[l.Src]
		if !ok {
			return nil, fmt.Errorf("format: link %q: unknown src ref %q", l.Ref, l.Src)
		}
		dstID, ok := refs[l.Dst]
		if !ok {
			return nil, fmt.Errorf("format: link %q: unknown dst ref %q", l.Ref, l.Dst)
		}
		id, err := comp.Link(srcID, l.SrcAnchor, dstID, l.DstAnchor, l.DX, l.DY)
		if err != nil {
			return nil, fmt.Errorf("format: link %q: %w", l.Ref, err)
		}
		if l.Ref != "" {
			refs[l.Ref] = id
		}
	}

	for _, f := range doc.Fixes {
		id, ok := refs[f.Rectangle]
		if !ok {
			return nil, fmt.Errorf("format: fix: unknown rectangle ref %q", f.Rectangle)
		}
		comp.Fix(id, f.Anchor, f.X, f.Y)
	}

	for _, eq := range doc.Equations {
		if err := comp.Sys.AddEquation(eq); err != nil {
			return nil, fmt.Errorf("format: equation %q: %w", eq, err)
		}
	}

	for _, a := range doc.Assignments {
		comp.Sys.Assign(a.Symbol, a.Value)
	}

	return refs, nil
}

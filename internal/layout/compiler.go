// Package layout implements the layout-to-equations compiler: it turns
// sized rectangles, anchors, links, and fixed positions into the named
// symbols and equations internal/solver consumes, following the naming
// scheme that lets a renderer recover geometry by symbol lookup.
//
// original_source/layouter.c shows the shape this generalizes: a single
// hardcoded rectangle built from `rectangle_1.min.x + rectangle_1.width -
// rectangle_1.max.x = 0`-style calls to solver_expr_equals_zero, followed
// by solver_symbol_assign calls fixing its min and size. The primitives
// below are that pattern made reusable and composable across many
// rectangles and links.
package layout

import (
	"fmt"

	"github.com/santileortiz/layoutsolver/internal/solver"
)

// Feature names used in the internal symbol scheme "{id}.{feature}.{axis}".
const (
	FeatureMin  = "min"
	FeatureMax  = "max"
	FeatureSize = "size"
	AnchorB     = "b" // bottom-left
	AnchorD     = "d" // top-right
)

// Axis names.
const (
	AxisX = "x"
	AxisY = "y"
)

// Compiler emits symbols and equations into a *solver.System, allocating a
// fresh entity id for every rectangle and link from its own monotonic
// counter — a separate id space from the solver's own per-symbol ids,
// since entities and symbols are different kinds of thing.
type Compiler struct {
	Sys    *solver.System
	nextID int

	// anchors tracks which lazy anchors (b, d) have already been added for
	// a given rectangle id, so Link's "lazily ensures" doesn't emit
	// duplicate, linearly-dependent equations on every call. AddAnchor
	// called directly bypasses this cache and is idempotent only in intent,
	// not enforced.
	anchors map[int]map[string]bool
}

// NewCompiler creates a layout compiler writing into sys.
func NewCompiler(sys *solver.System) *Compiler {
	return &Compiler{
		Sys:     sys,
		anchors: make(map[int]map[string]bool),
	}
}

// NextID allocates and returns a fresh entity id.
func (c *Compiler) NextID() int {
	id := c.nextID
	c.nextID++
	return id
}

// Symbol builds the internal symbol name "{id}.{feature}.{axis}".
func Symbol(id int, feature, axis string) string {
	return fmt.Sprintf("%d.%s.%s", id, feature, axis)
}

// RectangleWithSize allocates a new rectangle id, adds
// "min + size - max = 0" for both axes, and assigns size.x = w, size.y = h.
func (c *Compiler) RectangleWithSize(w, h float64) (int, error) {
	id := c.NextID()

	for _, axis := range [2]string{AxisX, AxisY} {
		eq := fmt.Sprintf("%s + %s - %s", Symbol(id, FeatureMin, axis), Symbol(id, FeatureSize, axis), Symbol(id, FeatureMax, axis))
		if err := c.Sys.AddEquation(eq); err != nil {
			return id, err
		}
	}

	c.Sys.Assign(Symbol(id, FeatureSize, AxisX), w)
	c.Sys.Assign(Symbol(id, FeatureSize, AxisY), h)
	return id, nil
}

// AddAnchor adds the defining equations for the bottom-left ('b') or
// top-right ('d') anchor of rectangle id, relative to min and size:
//
//	b: min.x = b.x,             min.y + size.y = b.y
//	d: min.x + size.x = d.x,    min.y = d.y
//
// Calling this twice for the same (id, anchor) pair is safe in the sense
// that nothing panics, but it does add a second, linearly dependent pair
// of equations — AddAnchor itself does not deduplicate; Link's lazy
// bookkeeping is what avoids that in normal use.
func (c *Compiler) AddAnchor(id int, anchor string) error {
	switch anchor {
	case AnchorB:
		if err := c.Sys.AddEquation(fmt.Sprintf("%s - %s", Symbol(id, FeatureMin, AxisX), Symbol(id, AnchorB, AxisX))); err != nil {
			return err
		}
		return c.Sys.AddEquation(fmt.Sprintf("%s + %s - %s", Symbol(id, FeatureMin, AxisY), Symbol(id, FeatureSize, AxisY), Symbol(id, AnchorB, AxisY)))
	case AnchorD:
		if err := c.Sys.AddEquation(fmt.Sprintf("%s + %s - %s", Symbol(id, FeatureMin, AxisX), Symbol(id, FeatureSize, AxisX), Symbol(id, AnchorD, AxisX))); err != nil {
			return err
		}
		return c.Sys.AddEquation(fmt.Sprintf("%s - %s", Symbol(id, FeatureMin, AxisY), Symbol(id, AnchorD, AxisY)))
	default:
		return fmt.Errorf("layout: unknown anchor %q, want %q or %q", anchor, AnchorB, AnchorD)
	}
}

// ensureAnchor adds anchor's defining equations the first time it is asked
// for a given rectangle id, and is a no-op for "min"/"max" (always present
// from RectangleWithSize) and for a (id, anchor) pair already ensured.
func (c *Compiler) ensureAnchor(id int, anchor string) error {
	if anchor != AnchorB && anchor != AnchorD {
		return nil
	}

	seen := c.anchors[id]
	if seen == nil {
		seen = make(map[string]bool)
		c.anchors[id] = seen
	}
	if seen[anchor] {
		return nil
	}

	if err := c.AddAnchor(id, anchor); err != nil {
		return err
	}
	seen[anchor] = true
	return nil
}

// Link allocates a fresh link id, lazily ensures both the source and
// destination anchors exist, then adds
// "src.anchor.axis + d.axis - dst.anchor.axis = 0" for both axes and
// assigns the link's offset.
func (c *Compiler) Link(srcID int, srcAnchor string, dstID int, dstAnchor string, dx, dy float64) (int, error) {
	if err := c.ensureAnchor(srcID, srcAnchor); err != nil {
		return 0, err
	}
	if err := c.ensureAnchor(dstID, dstAnchor); err != nil {
		return 0, err
	}

	id := c.NextID()
	for _, axis := range [2]string{AxisX, AxisY} {
		eq := fmt.Sprintf("%s + %s - %s", Symbol(srcID, srcAnchor, axis), Symbol(id, "d", axis), Symbol(dstID, dstAnchor, axis))
		if err := c.Sys.AddEquation(eq); err != nil {
			return id, err
		}
	}

	c.Sys.Assign(Symbol(id, "d", AxisX), dx)
	c.Sys.Assign(Symbol(id, "d", AxisY), dy)
	return id, nil
}

// Fix assigns the two "{id}.{anchor}.{x|y}" symbols to concrete values.
// Unlike Link, Fix does not ensure the anchor's defining equations exist — fixing an anchor that was never introduced by RectangleWithSize
// or AddAnchor simply creates a floating, disconnected symbol pair.
func (c *Compiler) Fix(id int, anchor string, x, y float64) {
	c.Sys.Assign(Symbol(id, anchor, AxisX), x)
	c.Sys.Assign(Symbol(id, anchor, AxisY), y)
}

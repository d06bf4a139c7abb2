// Package layoutsolver is the public facade over the internal solver and
// layout packages: the four linear-system operations (add-equation,
// assign, solve, get-symbol-value) plus iterate-symbol-definitions, the
// rendering collaborator's interface, and the layout compiler's
// primitives, gathered behind one type so that callers outside this module
// never need to import internal/solver or internal/layout directly — the
// same shape as wrapping an interpreter behind a single constructor for
// embedding callers.
package layoutsolver

import (
	"github.com/go-kit/log"

	"github.com/santileortiz/layoutsolver/internal/diag"
	"github.com/santileortiz/layoutsolver/internal/layout"
	"github.com/santileortiz/layoutsolver/internal/solver"
)

// Symbol is one (name, state, value) triple, the shape
// iterate-symbol-definitions yields.
type Symbol struct {
	Name  string
	State string
	Value float64
}

// Engine owns a linear system and a layout compiler over it. The zero
// value is not usable; construct one with New.
type Engine struct {
	sys  *solver.System
	comp *layout.Compiler
}

// Option configures an Engine at construction time.
type Option func(*solver.System)

// WithLogger attaches a structured logger for solve-time diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(s *solver.System) {
		solver.WithLogger(logger)(s)
	}
}

// New creates an empty Engine.
func New(opts ...Option) *Engine {
	var sysOpts []solver.Option
	for _, opt := range opts {
		sysOpts = append(sysOpts, solver.Option(opt))
	}
	sys := solver.New(sysOpts...)
	return &Engine{sys: sys, comp: layout.NewCompiler(sys)}
}

// AddEquation parses text as a linear expression and appends it to the
// system, interning any symbol seen for the first time.
func (e *Engine) AddEquation(text string) error {
	return e.sys.AddEquation(text)
}

// Assign marks name as Assigned with value, interning it first if needed.
func (e *Engine) Assign(name string, value float64) {
	e.sys.Assign(name, value)
}

// Solve row-reduces the system and reports success plus any diagnostics.
func (e *Engine) Solve() (bool, *diag.Report) {
	return e.sys.Solve()
}

// Value returns the named symbol's value (zero if unknown or unassigned).
func (e *Engine) Value(name string) float64 {
	return e.sys.Value(name)
}

// Symbols returns every symbol in the system in lexicographic name order,
// the sequence iterate-symbol-definitions promises the rendering
// collaborator.
func (e *Engine) Symbols() []Symbol {
	defs := e.sys.Table.Definitions()
	out := make([]Symbol, len(defs))
	for i, def := range defs {
		out[i] = Symbol{Name: def.Name, State: def.State.String(), Value: def.Value}
	}
	return out
}

// Matrix returns a renderable snapshot of the most recent Solve's augmented
// matrix, or nil if Solve has not run.
func (e *Engine) Matrix() *diag.Matrix {
	return e.sys.Matrix()
}

// RectangleWithSize allocates a rectangle id and its min/size/max
// equations, sized w by h.
func (e *Engine) RectangleWithSize(w, h float64) (int, error) {
	return e.comp.RectangleWithSize(w, h)
}

// AddAnchor adds the defining equations for a rectangle's 'b' or 'd'
// anchor.
func (e *Engine) AddAnchor(id int, anchor string) error {
	return e.comp.AddAnchor(id, anchor)
}

// Link binds two rectangles' anchors by a fixed offset, returning the
// link's own id.
func (e *Engine) Link(srcID int, srcAnchor string, dstID int, dstAnchor string, dx, dy float64) (int, error) {
	return e.comp.Link(srcID, srcAnchor, dstID, dstAnchor, dx, dy)
}

// Fix assigns a rectangle anchor's two coordinate symbols directly.
func (e *Engine) Fix(id int, anchor string, x, y float64) {
	e.comp.Fix(id, anchor, x, y)
}

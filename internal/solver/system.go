// Package solver implements the symbolic linear-equation engine at the
// core of this module: the expression parser and symbol table, the linear
// system, and the Gaussian-elimination solver with partial pivoting.
package solver

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/santileortiz/layoutsolver/internal/diag"
)

// System owns a symbol table, the expressions added to it, and the
// success flag set by the most recent Solve.
//
// A System is single-threaded and exclusively owns its symbol
// definitions, expressions, and any solve-time scratch storage; it
// carries no synchronization and must not be shared across goroutines.
type System struct {
	Table       *Table
	Expressions []*Expression
	Success     bool

	logger      log.Logger
	lastMatrix  [][]float64
	lastColumns []*Definition
}

// Option configures a System at construction time.
type Option func(*System)

// WithLogger attaches a structured logger the solver uses to report
// interning, pivoting, and solve-step decisions at debug level. The
// default is a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(s *System) {
		s.logger = logger
	}
}

// New creates an empty linear system.
func New(opts ...Option) *System {
	s := &System{
		Table:  NewTable(),
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Assign marks name as Assigned with value, interning the symbol first if
// it has never been seen, so that assigning a symbol before any equation
// references it is legal. Assign is idempotent in name but not in value —
// calling it again with a different value overwrites the previous one; the
// last call wins.
func (s *System) Assign(name string, value float64) {
	def := s.Table.Intern(name)
	def.State = Assigned
	def.Value = value
	level.Debug(s.logger).Log("msg", "symbol assigned", "symbol", name, "value", value)
}

// Value returns the value of the named symbol. It is meaningful only when
// the symbol is Assigned or Solved; for an Unassigned or never-interned
// symbol it returns zero, the struct's initial value, but callers should
// not rely on that to mean "solved to zero".
func (s *System) Value(name string) float64 {
	def, ok := s.Table.Lookup(name)
	if !ok {
		return 0
	}
	return def.Value
}

// Matrix returns a renderable snapshot of the augmented matrix built by
// the most recent Solve call, for optional debug output. It returns
// nil if Solve has not run, or ran on an empty system with no unknowns.
func (s *System) Matrix() *diag.Matrix {
	if s.lastMatrix == nil {
		return nil
	}

	names := make([]string, len(s.lastColumns))
	for i, def := range s.lastColumns {
		names[i] = def.Name
	}

	rows := make([][]float64, len(s.lastMatrix))
	for i, row := range s.lastMatrix {
		rows[i] = append([]float64(nil), row...)
	}

	return &diag.Matrix{ColumnNames: names, Rows: rows}
}

// Package scanner implements the byte-cursor primitive the expression
// parser builds its tokenizer on top of.
//
// A Scanner never decodes UTF-8 or tracks lines: the expression grammar
// only ever uses the ASCII identifier class `[A-Za-z0-9._-]` plus `+`/`-`,
// so a plain byte cursor with peek/advance/accept-set operations is
// sufficient, matching original_source/linear_solver.c's scanner_t.
package scanner

import (
	"fmt"
	"strings"

	"github.com/santileortiz/layoutsolver/internal/token"
)

// Scanner advances a cursor through an expression string one byte at a
// time. EOFIsError controls whether running out of input while a required
// read is in progress is reported as an error (true) or treated as a
// normal terminator (false); the expression parser flips it around each
// required read the same way solver_tokenizer_next does in the C source.
type Scanner struct {
	input       string
	pos         int
	EOFIsError  bool
	err         string
	errPosition int
}

// New creates a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{input: src}
}

// Source returns the full string being scanned, for callers that need to
// slice out the text between two positions (e.g. an identifier's literal).
func (s *Scanner) Source() string {
	return s.input
}

// AtEOF reports whether the cursor has reached the end of the input.
func (s *Scanner) AtEOF() bool {
	return s.pos >= len(s.input)
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() token.Position {
	return token.Position{Offset: s.pos}
}

// Peek returns the byte at the cursor without consuming it, or 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.AtEOF() {
		return 0
	}
	return s.input[s.pos]
}

// Advance consumes and returns the byte at the cursor. Advancing past EOF
// is only valid when EOFIsError is false; otherwise it raises an error.
func (s *Scanner) Advance() byte {
	if s.AtEOF() {
		if s.EOFIsError {
			s.SetError("unexpected end of input")
		}
		return 0
	}
	b := s.input[s.pos]
	s.pos++
	return b
}

// PeekAny reports whether the current byte belongs to set, without
// consuming it. At EOF this is always false.
func (s *Scanner) PeekAny(set string) bool {
	if s.AtEOF() {
		return false
	}
	return strings.IndexByte(set, s.input[s.pos]) >= 0
}

// AcceptAny consumes and returns the current byte if it belongs to set,
// reporting true; otherwise the cursor is left unchanged and it returns
// false. Mirrors original_source/linear_solver.c's scanner_char_any.
func (s *Scanner) AcceptAny(set string) (byte, bool) {
	if !s.PeekAny(set) {
		return 0, false
	}
	b := s.input[s.pos]
	s.pos++
	return b, true
}

// SkipSpace consumes a run of ASCII space and tab characters. Expression
// text carries no newlines, so only those two are whitespace here.
func (s *Scanner) SkipSpace() {
	for s.PeekAny(" \t") {
		s.pos++
	}
}

// SetError records a scan error at the current position. Once set, the
// error is sticky: later calls do not overwrite it, matching the parser's
// "first error wins" behavior when a malformed expression keeps scanning.
func (s *Scanner) SetError(format string, args ...any) {
	if s.err != "" {
		return
	}
	s.err = fmt.Sprintf(format, args...)
	s.errPosition = s.pos
}

// Err returns the first scan error recorded, or "" if none occurred.
func (s *Scanner) Err() string {
	return s.err
}

// ErrPos returns the position at which the first error was recorded.
func (s *Scanner) ErrPos() token.Position {
	return token.Position{Offset: s.errPosition}
}

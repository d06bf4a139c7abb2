package solver

import (
	"fmt"
	"strings"

	"github.com/go-kit/log/level"

	"github.com/santileortiz/layoutsolver/internal/scanner"
	"github.com/santileortiz/layoutsolver/internal/token"
)

// identifierChars is the character class symbol names are drawn from:
// letters, digits, '.', '_', '-'. Note '-' is shared with the subtraction
// operator; see tokenizer.next for how that ambiguity is resolved.
const identifierChars = "._-abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ParseError reports a failure to parse an expression. It is always
// non-nil alongside a partially-built Expression: a parse failure never
// rolls back whatever was already appended, so callers that treat
// add-equation input as machine-generated (layout compiler output) can
// still inspect what was parsed.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Format renders the error with a caret pointing at the offending byte in
// source, collapsed to a single line since expressions never span more
// than one.
func (e *ParseError) Format(source string) string {
	caret := strings.Repeat(" ", e.Pos.Offset) + "^"
	return fmt.Sprintf("%s\n%s\n%s", e.Message, source, caret)
}

// tokenizer turns an expression string into a stream of sign/identifier
// tokens. It is the Go counterpart of original_source/linear_solver.c's
// solver_tokenizer_next/solver_tokenizer_expect pair: one struct holding a
// Scanner plus the last token produced.
type tokenizer struct {
	scn  *scanner.Scanner
	kind token.Kind
	lit  string
}

func newTokenizer(expr string) *tokenizer {
	return &tokenizer{scn: scanner.New(expr)}
}

// next scans the following token, skipping leading and trailing
// whitespace. It toggles EOFIsError around the read so that running out of
// input mid-token is an error but reaching EOF at a token boundary is not,
// exactly like the C source's scnr->eof_is_error dance.
func (tz *tokenizer) next() {
	tz.scn.EOFIsError = true
	tz.lit = ""

	tz.scn.SkipSpace()

	if b, ok := tz.scn.AcceptAny("+-"); ok {
		tz.kind = token.Operator
		tz.lit = string(b)
	} else if tz.scn.PeekAny(identifierChars) {
		tz.kind = token.Identifier
		start := tz.scn.Pos().Offset
		for tz.scn.PeekAny(identifierChars) {
			tz.scn.Advance()
		}
		tz.lit = tz.literalSince(start)
	} else if tz.scn.AtEOF() {
		tz.kind = token.EOF
	} else {
		tz.kind = token.Illegal
		tz.lit = string(tz.scn.Peek())
		tz.scn.SetError("unexpected character %q", rune(tz.scn.Peek()))
	}

	tz.scn.EOFIsError = false
	tz.scn.SkipSpace()
}

// literalSince reassembles the bytes consumed between start and the
// current cursor position by slicing the Scanner's Source() up to Pos().
func (tz *tokenizer) literalSince(start int) string {
	end := tz.scn.Pos().Offset
	return tz.scn.Source()[start:end]
}

// expect scans the next token and records a parse error naming the
// expected token kind and the offending text if it doesn't match.
func (tz *tokenizer) expect(kind token.Kind) *ParseError {
	tz.next()
	if tz.kind == kind {
		return nil
	}
	if tz.kind == token.EOF {
		return &ParseError{
			Message: fmt.Sprintf("expected %s, got end of input", kind),
			Pos:     tz.scn.Pos(),
		}
	}
	return &ParseError{
		Message: fmt.Sprintf("expected %s, got %q of type %s", kind, tz.lit, tz.kind),
		Pos:     tz.scn.Pos(),
	}
}

func (tz *tokenizer) negative() bool {
	return tz.lit == "-"
}

// AddEquation parses text as an expression and appends it to the system,
// interning any symbol seen for the first time. The system contains
// exactly one more expression after this returns, whether or not it
// returns an error: a parse failure leaves the partially-built expression
// in place rather than rolling it back, since add-equation input is
// machine-generated by the layout compiler and a parse failure is treated
// as a programming error.
func (s *System) AddEquation(text string) error {
	expr := &Expression{}
	s.Expressions = append(s.Expressions, expr)

	tz := newTokenizer(text)
	tz.next()

	push := func(negative bool, name string) {
		_, seen := s.Table.Lookup(name)
		def := s.Table.Intern(name)
		if !seen {
			level.Debug(s.logger).Log("msg", "symbol interned", "symbol", name, "id", def.ID)
		}
		expr.Refs = append(expr.Refs, Ref{Negative: negative, Def: def})
	}

	switch tz.kind {
	case token.Identifier:
		push(false, tz.lit)
	case token.Operator:
		neg := tz.negative()
		if err := tz.expect(token.Identifier); err != nil {
			return err
		}
		push(neg, tz.lit)
	case token.EOF:
		return &ParseError{Message: "expected an expression, got end of input", Pos: tz.scn.Pos()}
	default:
		return &ParseError{Message: fmt.Sprintf("unexpected character %q", tz.lit), Pos: tz.scn.Pos()}
	}

	for !tz.scn.AtEOF() {
		if err := tz.expect(token.Operator); err != nil {
			return err
		}
		neg := tz.negative()

		if err := tz.expect(token.Identifier); err != nil {
			return err
		}
		push(neg, tz.lit)
	}

	return nil
}

package automaton

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// The three failure classes are distinct types so callers can tell a malformed
// encoding apart from a broken model apart from a broken execution. Tests and
// the CLI match them with errors.As; a reject outcome is never reported as any
// of these.

// SyntaxError reports a grammar violation in the source text, with the
// position of the offending token.
type SyntaxError struct {
	Pos lexer.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("automaton: syntax error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// SemanticError reports a structurally valid encoding that violates a model
// invariant. Field names the violated part of the encoding.
type SemanticError struct {
	Field string
	Msg   string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("automaton: invalid %s: %s", e.Field, e.Msg)
}

func semanticErrorf(field, format string, args ...any) *SemanticError {
	return &SemanticError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// RuntimeError reports an exceptional condition during execution. Out-of-range
// input symbols are not runtime errors: by policy they reject (see Accepts).
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return "automaton: runtime error: " + e.Msg
}

/*
Package leftrec models context-free grammars and checks them for left
recursion, both direct (a rule whose alternative starts with its own
left-hand symbol) and indirect (a cycle of leftmost-derivation steps
returning to the starting symbol). Recursive-descent and LL parsers do
not terminate on left-recursive rules, so the check belongs before any
parser is built from a grammar.

Consists of subpackages:
  - grammar: defines the grammar structure (symbols, productions, rules) and the recursion checks;
  - bnf: converts grammar description (written in a line-oriented BNF notation) to a grammar structure;
  - format: renders a grammar back to text;
  - cmd/leftrec: console utility checking a grammar file for left recursion.

Typical usage is:

1. Describe a grammar, either building it through the grammar package API
or writing it in the bnf notation.

2. Call Grammar.HasLeftRecursion and act on the verdict: a left-recursive
grammar must be rewritten before it can drive a descent parser.
*/
package leftrec

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by grammar
	SyntaxErrors  = 101 // used by bnf
)

// Error is the error type used by leftrec subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and line information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int
}

// NewError creates new Error structure.
// name and line will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line int) *Error {
	if name != "" && line != 0 {
		msg += fmt.Sprintf(" in %s at line %d", name, line)
	}
	return &Error{code, msg, name, line}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and line information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0)
}

// FormatErrorAt creates Error structure with source and line information.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorAt(name string, line, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, name, line)
}

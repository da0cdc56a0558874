// Package syntax implements the pattern front end: a tokenizer and a
// recursive-descent parser producing the syntax tree consumed by the
// NFA compiler.
//
// The supported syntax is deliberately small: literal characters,
// concatenation, alternation '|', zero-or-more '*', grouping '(' ')',
// and '\' forcing the next character to be a literal. Precedence from
// highest to lowest is star, concatenation, alternation, with grouping
// overriding.
package syntax

import (
	"errors"
	"fmt"
)

// Pattern error kinds. Callers test them with errors.Is.
var (
	// ErrDanglingEscape indicates the pattern ends with an unconsumed
	// escape character.
	ErrDanglingEscape = errors.New("dangling escape at end of pattern")

	// ErrUnexpectedToken indicates a token where the grammar expects none.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnclosedGroup indicates a '(' with no matching ')'.
	ErrUnclosedGroup = errors.New("unclosed group")

	// ErrDanglingStar indicates a '*' with no preceding atom.
	ErrDanglingStar = errors.New("star with no preceding atom")
)

// Error is a pattern error at a specific byte position.
type Error struct {
	// Pos is the byte offset of the offending character in the pattern.
	Pos int

	// Err is the error kind, one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at position %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying error kind.
func (e *Error) Unwrap() error {
	return e.Err
}

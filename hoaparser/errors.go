package hoaparser

import "fmt"

// ParseError is the base error type for all hoaparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unterminated string or comment,
// invalid character).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected token).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// RangeError reports an atomic-proposition or acceptance-set index outside
// its declared range.
type RangeError struct {
	ParseError
	What  string // "atomic proposition" or "acceptance set"
	Index int
	Count int // declared count; valid indices are [0, Count)
}

// DuplicateAliasError reports a second Alias declaration for the same name.
type DuplicateAliasError struct {
	ParseError
	Name string
}

// UndeclaredAliasError reports a reference to an alias with no preceding
// declaration.
type UndeclaredAliasError struct {
	ParseError
	Name string
}

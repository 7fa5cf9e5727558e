package ir

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax           = errors.New("syntax error")
	ErrUnknownAlias     = errors.New("unknown alias")
	ErrDuplicateAlias   = errors.New("duplicate alias")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrEncoding         = errors.New("encoding error")
	ErrInputTooLarge    = errors.New("input too large")
	ErrTooManyRows      = errors.New("too many rows")
	ErrRecursionTooDeep = errors.New("recursion too deep")
)

// SyntaxError is a failure tied to a position in the input. Line and Column
// are 1-based; Column counts runes.
type SyntaxError struct {
	Kind   error
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

func (e *SyntaxError) Error() string {
	kind := e.Kind
	if kind == nil {
		kind = ErrSyntax
	}
	return fmt.Sprintf("%s at line %d, column %d: %s", kind.Error(), e.Line, e.Column, e.Msg)
}

func NewSyntaxError(kind error, line, col int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Kind:   kind,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// Kind returns the taxonomy sentinel err wraps, or nil if err is not one of
// ours.
func Kind(err error) error {
	for _, k := range []error{
		ErrUnknownAlias,
		ErrDuplicateAlias,
		ErrSchemaMismatch,
		ErrEncoding,
		ErrInputTooLarge,
		ErrTooManyRows,
		ErrRecursionTooDeep,
		ErrSyntax,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// EncodingErr reports a value which cannot be written without corrupting the
// grammar.
func EncodingErr(path string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrEncoding, path, fmt.Sprintf(format, args...))
}

// DepthErr reports a nesting level over max.
func DepthErr(depth, max int) error {
	return fmt.Errorf("%w: depth %d exceeds maximum of %d", ErrRecursionTooDeep, depth, max)
}

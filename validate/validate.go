package validate

import (
	"errors"

	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/parse"
)

// Result is the outcome of Validate. Line and Column are 1-based and zero
// when the failure has no position.
type Result struct {
	Success bool   `json:"success"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Error   string `json:"error,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// Validate parses text to completion or to its first error.
func Validate(text string, opts ...parse.ParseOption) Result {
	_, err := parse.ParseString(text, opts...)
	return ResultOf(err)
}

// ResultOf converts a parse error to a Result.
func ResultOf(err error) Result {
	if err == nil {
		return Result{Success: true}
	}
	res := Result{Error: err.Error(), Hint: hints[ir.Kind(err)]}
	var se *ir.SyntaxError
	if errors.As(err, &se) {
		res.Line, res.Column = se.Line, se.Column
		res.Error = se.Msg
	}
	return res
}

var hints = map[error]string{
	ir.ErrSyntax:           "each line must be a comment, record (name.key:value), stream (name>a|b), table header (name=col%hint), alias ($name:value) or a row of an open table",
	ir.ErrUnknownAlias:     "define the alias with $name:value before referring to it",
	ir.ErrDuplicateAlias:   "aliases are write-once; pick a new name",
	ir.ErrSchemaMismatch:   "check the row against the table header: cell count, type hints and ditto use",
	ir.ErrEncoding:         "the value cannot be written without escapes",
	ir.ErrInputTooLarge:    "split the document or raise the input size limit",
	ir.ErrTooManyRows:      "split the table or raise the row limit",
	ir.ErrRecursionTooDeep: "flatten nested records or raise the depth limit",
}

func MaxInputSize() int      { return parse.DefaultMaxInputSize }
func MaxTableRows() int      { return parse.DefaultMaxTableRows }
func MaxRecursionDepth() int { return parse.DefaultMaxRecursionDepth }

package parse

import (
	"bytes"
	"math"
	"strconv"

	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/token"
)

const (
	ditto       = '_'
	legacyDitto = '"'
)

// infer applies lexical inference to text found at off. depth is the
// nesting level of the value, checked against the recursion limit.
func (p *parser) infer(text []byte, off, depth int) (*ir.Value, error) {
	if max := p.opts.limits.MaxRecursionDepth; depth > max {
		return nil, p.errAt(ir.ErrRecursionTooDeep, off, "depth %d exceeds maximum of %d", depth, max)
	}
	lit := token.Infer(text)
	switch lit.Kind {
	case token.LitTrue:
		return ir.FromBool(true), nil
	case token.LitFalse:
		return ir.FromBool(false), nil
	case token.LitNull:
		return ir.Null(), nil
	case token.LitInt:
		if i, err := strconv.ParseInt(string(text), 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
		// too wide for int64: read it as a float
		f, err := strconv.ParseFloat(string(text), 64)
		if err != nil {
			return nil, p.errAt(ir.ErrSyntax, off, "integer %s out of range", text)
		}
		return ir.FromFloat(f), nil
	case token.LitFloat:
		f, err := strconv.ParseFloat(string(text), 64)
		if err != nil {
			return nil, p.errAt(ir.ErrSyntax, off, "float %s out of range", text)
		}
		return ir.FromFloat(f), nil
	case token.LitAliasRef:
		v, ok := p.aliases[string(lit.Name)]
		if !ok {
			return nil, p.errAt(ir.ErrUnknownAlias, off, "alias %q is not defined", lit.Name)
		}
		return v.Clone(), nil
	case token.LitAliasDef:
		v, err := p.define(lit.Name, lit.Value, off+1, off+lit.ValueOff, depth)
		if err != nil {
			return nil, err
		}
		return v.Clone(), nil
	default:
		return ir.FromString(string(text)), nil
	}
}

// cell decodes one row or ghost root cell under hint. prev is the value in
// the same column of the preceding row, nil on the first row.
func (p *parser) cell(c token.Cell, hint ir.Hint, prev *ir.Value) (*ir.Value, error) {
	t := c.Text
	if len(t) == 1 {
		switch t[0] {
		case legacyDitto:
			return nil, p.errAt(ir.ErrSyntax, c.Off, "'\"' is not a ditto mark, use '_'")
		case ditto:
			if prev == nil {
				return nil, p.errAt(ir.ErrSchemaMismatch, c.Off, "ditto with no preceding row")
			}
			return prev.Clone(), nil
		}
	}
	switch hint {
	case ir.HintString:
		return ir.FromString(string(t)), nil
	case ir.HintInt:
		if token.IsInt(t) {
			if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
				return ir.FromInt(i), nil
			}
		}
	case ir.HintFloat:
		if token.IsInt(t) || token.IsFloat(t) {
			if f, err := strconv.ParseFloat(string(t), 64); err == nil {
				return ir.FromFloat(f), nil
			}
		}
	case ir.HintBool:
		switch string(t) {
		case "+":
			return ir.FromBool(true), nil
		case "-":
			return ir.FromBool(false), nil
		}
	case ir.HintBase62:
		if ir.IsBase62(t) {
			if n, err := ir.DecodeBase62(string(t)); err == nil && n <= math.MaxInt64 {
				return ir.FromInt(int64(n)), nil
			}
		}
	case ir.HintAuto:
		return p.infer(t, c.Off, 1)
	}
	return nil, p.errAt(ir.ErrSchemaMismatch, c.Off, "%q is not a valid %s", t, hint)
}

// spread maps blank separated cells onto n data columns. Surplus cells are
// absorbed by the vacuum column, joined by single spaces.
func (p *parser) spread(cells []token.Cell, cols []ir.Column, vacuum int) ([]token.Cell, error) {
	n := len(cols)
	switch {
	case len(cells) < n:
		return nil, p.errAt(ir.ErrSchemaMismatch, len(p.line), "expected %d values, found %d", n, len(cells))
	case len(cells) == n:
		return cells, nil
	case vacuum == -1:
		return nil, p.errAt(ir.ErrSchemaMismatch, cells[n].Off, "expected %d values, found %d", n, len(cells))
	}
	extra := len(cells) - n
	parts := make([][]byte, extra+1)
	for i := range parts {
		parts[i] = cells[vacuum+i].Text
	}
	res := make([]token.Cell, 0, n)
	res = append(res, cells[:vacuum]...)
	res = append(res, token.Cell{Text: bytes.Join(parts, []byte{' '}), Off: cells[vacuum].Off})
	return append(res, cells[vacuum+extra+1:]...), nil
}

// vacuumOf returns the index of the first string column, or -1.
func vacuumOf(cols []ir.Column) int {
	for i := range cols {
		if cols[i].Hint == ir.HintString {
			return i
		}
	}
	return -1
}

// column parses a column name with an optional hint letter. A nil hint means
// string; an empty one is an error.
func (p *parser) column(name, hint []byte, off int, prior []ir.Column) (ir.Column, error) {
	if !token.IsName(name) {
		return ir.Column{}, p.errAt(ir.ErrSyntax, off, "invalid column name %q", name)
	}
	for i := range prior {
		if prior[i].Name == string(name) {
			return ir.Column{}, p.errAt(ir.ErrSyntax, off, "duplicate column %q", name)
		}
	}
	col := ir.Column{Name: string(name), Hint: ir.HintString}
	if hint == nil {
		return col, nil
	}
	hintOff := off + len(name) + 1
	if len(hint) != 1 {
		return ir.Column{}, p.errAt(ir.ErrSyntax, hintOff, "invalid type hint %q", hint)
	}
	h, ok := ir.HintFromLetter(hint[0])
	if !ok {
		return ir.Column{}, p.errAt(ir.ErrSyntax, hintOff, "unknown type hint %q", hint)
	}
	col.Hint = h
	return col, nil
}

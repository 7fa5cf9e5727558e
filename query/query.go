// Package query selects table rows with expressions over their columns.
//
// Expressions use the github.com/expr-lang/expr language. Each column is
// a variable holding the cell value, so
//
//	k > 8 && sun
//
// keeps the rows whose k exceeds 8 and whose sun column is true. The
// result is interpreted with ir.Truth.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/dx-format/go-dx/convert"
	"github.com/signadot/dx-format/go-dx/ir"
)

var ErrNotTable = errors.New("not a table")

type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string { return f.src }

// Match evaluates f against a keyed row.
func (f *Filter) Match(row *ir.Value) (bool, error) {
	env := map[string]any{}
	for _, fld := range row.Fields {
		env[fld.Name] = convert.ToGoValue(fld.Value)
	}
	res, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", f.src, err)
	}
	v, err := convert.FromGoValue(res)
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", f.src, err)
	}
	return ir.Truth(v), nil
}

// Table returns the rows of tab matching f. Auto-increment columns become
// int columns so that the kept identifiers survive re-encoding.
func (f *Filter) Table(tab *ir.Table) (*ir.Table, error) {
	res := &ir.Table{Columns: make([]ir.Column, len(tab.Columns))}
	for j, c := range tab.Columns {
		if c.Hint == ir.HintAutoIncrement {
			c.Hint = ir.HintInt
		}
		res.Columns[j] = c
	}
	for i := range tab.Rows {
		ok, err := f.Match(tab.RowRecord(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if !ok {
			continue
		}
		row := make([]*ir.Value, len(tab.Rows[i]))
		for j, v := range tab.Rows[i] {
			row[j] = v.Clone()
		}
		if err := res.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Select filters the table bound to name in doc, returning a document
// holding only that binding.
func Select(doc *ir.Document, name, where string) (*ir.Document, error) {
	b := doc.Binding(name)
	if b == nil || b.Value.Type != ir.TableType {
		return nil, fmt.Errorf("%w: %q", ErrNotTable, name)
	}
	f, err := Compile(where)
	if err != nil {
		return nil, err
	}
	tab, err := f.Table(b.Value.Table)
	if err != nil {
		return nil, err
	}
	res := ir.NewDocument()
	res.Bind(name, ir.FromTable(tab)).Comments = b.Comments
	return res, nil
}

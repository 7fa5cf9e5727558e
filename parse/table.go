package parse

import (
	"bytes"

	"github.com/signadot/dx-format/go-dx/debug"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/token"
)

// tableHeader handles name=c1%h1 c2%h2 and opens the table for rows.
func (p *parser) tableHeader(st token.Statement) error {
	p.lastRecord = nil
	p.cells = token.Cells(st.Body, st.BodyOff, p.cells[:0])
	if len(p.cells) == 0 {
		return p.errAt(ir.ErrSyntax, st.BodyOff, "table %q declares no columns", st.Name)
	}
	tab := &ir.Table{Columns: make([]ir.Column, 0, len(p.cells))}
	for _, c := range p.cells {
		name, hint := c.Text, []byte(nil)
		if i := bytes.IndexByte(c.Text, '%'); i != -1 {
			name, hint = c.Text[:i], c.Text[i+1:]
		}
		col, err := p.column(name, hint, c.Off, tab.Columns)
		if err != nil {
			return err
		}
		tab.Columns = append(tab.Columns, col)
	}
	if tab.DataColumns() == 0 {
		return p.errAt(ir.ErrSyntax, st.BodyOff, "table %q has only auto-increment columns", st.Name)
	}
	b, err := p.bindNew(st.Name, st.BodyOff-1-len(st.Name), ir.FromTable(tab))
	if err != nil {
		return err
	}
	p.table = tab
	p.tableBind = b
	p.dataCols = dataColumns(tab)
	p.vacuum = vacuumOf(p.dataCols)
	return nil
}

func (p *parser) closeTable() {
	if p.table != nil && debug.Parse() {
		debug.Logf("table %q closed with %d rows\n", p.tableBind.Name, len(p.table.Rows))
	}
	p.table = nil
	p.tableBind = nil
	p.dataCols = nil
}

func (p *parser) row(st token.Statement) error {
	tab := p.table
	if max := p.opts.limits.MaxTableRows; len(tab.Rows) >= max {
		if debug.Limits() {
			debug.Logf("table %q over row limit %d\n", p.tableBind.Name, max)
		}
		return p.errAt(ir.ErrTooManyRows, st.BodyOff, "table %q exceeds %d rows", p.tableBind.Name, max)
	}
	p.touch(p.tableBind)
	cells, err := p.spread(token.Cells(st.Body, st.BodyOff, p.cells[:0]), p.dataCols, p.vacuum)
	if err != nil {
		return err
	}
	var prev []*ir.Value
	if n := len(tab.Rows); n > 0 {
		prev = tab.Rows[n-1]
	}
	// every auto-increment column holds the row's 1-based sequence number
	seq := int64(len(tab.Rows) + 1)
	row := make([]*ir.Value, len(tab.Columns))
	ci := 0
	for j, col := range tab.Columns {
		if col.Hint == ir.HintAutoIncrement {
			row[j] = ir.FromInt(seq)
			continue
		}
		var above *ir.Value
		if prev != nil {
			above = prev[j]
		}
		v, err := p.cell(cells[ci], col.Hint, above)
		if err != nil {
			return err
		}
		row[j] = v
		ci++
	}
	tab.Rows = append(tab.Rows, row)
	return nil
}

func dataColumns(tab *ir.Table) []ir.Column {
	res := make([]ir.Column, 0, len(tab.Columns))
	for _, c := range tab.Columns {
		if c.Hint != ir.HintAutoIncrement {
			res = append(res, c)
		}
	}
	return res
}

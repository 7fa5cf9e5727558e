package parse

import (
	"bytes"

	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/token"
)

// record handles name.k1:v1^k2:v2, creating or extending a record binding.
func (p *parser) record(st token.Statement) error {
	nameOff := st.BodyOff - 1 - len(st.Name)
	var rec *ir.Value
	if b := p.doc.Binding(string(st.Name)); b != nil {
		if b.Value.Type != ir.RecordType {
			return p.errAt(ir.ErrSyntax, nameOff, "%q is already bound to a %s", st.Name, b.Value.Type)
		}
		p.touch(b)
		rec = b.Value
	} else {
		b, err := p.bindNew(st.Name, nameOff, ir.NewRecord())
		if err != nil {
			return err
		}
		rec = b.Value
	}
	if err := p.fields(rec, st.Body, st.BodyOff); err != nil {
		return err
	}
	p.lastRecord = rec
	return nil
}

func (p *parser) continuation(st token.Statement) error {
	if p.lastRecord == nil {
		return p.errAt(ir.ErrSyntax, st.BodyOff-1, "continuation without a preceding record")
	}
	return p.fields(p.lastRecord, st.Body, st.BodyOff)
}

// fields sets each '^' separated key path in rec.
func (p *parser) fields(rec *ir.Value, body []byte, off int) error {
	p.cells = token.Split(body, '^', off, p.cells[:0])
	if len(p.cells) == 0 {
		return p.errAt(ir.ErrSyntax, off, "expected key:value")
	}
	for _, part := range p.cells {
		k := token.KeyPathLen(part.Text)
		if k == 0 {
			return p.errAt(ir.ErrSyntax, part.Off, "expected key")
		}
		if k == len(part.Text) || part.Text[k] != ':' {
			return p.errAt(ir.ErrSyntax, part.Off+k, "expected ':' after key")
		}
		path := bytes.Split(part.Text[:k], []byte{'.'})
		if 1+len(path) > p.opts.limits.MaxRecursionDepth {
			return p.errAt(ir.ErrRecursionTooDeep, part.Off, "key path of %d segments exceeds maximum depth %d", len(path), p.opts.limits.MaxRecursionDepth)
		}
		text, textOff := trimBlanks(part.Text[k+1:], part.Off+k+1)
		v, err := p.infer(text, textOff, 1+len(path))
		if err != nil {
			return err
		}
		if err := p.setPath(rec, path, v, part.Off); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) setPath(rec *ir.Value, path [][]byte, v *ir.Value, off int) error {
	at := rec
	for i, seg := range path {
		name := string(seg)
		cur := at.Get(name)
		if i == len(path)-1 {
			if cur != nil && cur.Type == ir.RecordType {
				return p.errAt(ir.ErrSyntax, off, "%q is a record and cannot be assigned a value", bytes.Join(path, []byte{'.'}))
			}
			at.Set(name, v)
			return nil
		}
		switch {
		case cur == nil:
			cur = ir.NewRecord()
			at.Set(name, cur)
		case cur.Type != ir.RecordType:
			return p.errAt(ir.ErrSyntax, off, "%q is a %s, not a record", bytes.Join(path[:i+1], []byte{'.'}), cur.Type)
		}
		at = cur
	}
	return nil
}

// stream handles name>a|b|c.
func (p *parser) stream(st token.Statement) error {
	p.lastRecord = nil
	items := []*ir.Value{}
	p.cells = token.Split(st.Body, '|', st.BodyOff, p.cells[:0])
	for _, part := range p.cells {
		text, off := trimBlanks(part.Text, part.Off)
		v, err := p.infer(text, off, 1)
		if err != nil {
			return err
		}
		items = append(items, v)
	}
	_, err := p.bindNew(st.Name, st.BodyOff-1-len(st.Name), ir.FromSlice(items))
	return err
}

// alias handles $name:value.
func (p *parser) alias(st token.Statement) error {
	text, off := trimBlanks(st.Body, st.BodyOff)
	_, err := p.define(st.Name, text, st.BodyOff-1-len(st.Name), off, 1)
	return err
}

func (p *parser) define(name, text []byte, nameOff, off, depth int) (*ir.Value, error) {
	if _, ok := p.aliases[string(name)]; ok {
		return nil, p.errAt(ir.ErrDuplicateAlias, nameOff, "alias %q is already defined", name)
	}
	if len(text) == 0 {
		return nil, p.errAt(ir.ErrSyntax, off, "alias %q has no value", name)
	}
	v, err := p.infer(text, off, depth+1)
	if err != nil {
		return nil, err
	}
	p.aliases[string(name)] = v
	return v, nil
}

// loose handles a top level key:value, a field of the root record.
func (p *parser) loose(st token.Statement) error {
	p.lastRecord = nil
	k := bytes.IndexByte(st.Body, ':')
	text, off := trimBlanks(st.Body[k+1:], st.BodyOff+k+1)
	v, err := p.infer(text, off, 2)
	if err != nil {
		return err
	}
	root := p.root()
	if cur := root.Get(string(st.Body[:k])); cur != nil && cur.Type == ir.RecordType {
		return p.errAt(ir.ErrSyntax, st.BodyOff, "%q is a record and cannot be assigned a value", st.Body[:k])
	}
	root.Set(string(st.Body[:k]), v)
	return nil
}

// ghostRoot handles .=k1:h1 k2:h2; the values arrive on the next line.
func (p *parser) ghostRoot(st token.Statement) error {
	p.lastRecord = nil
	if b := p.doc.Binding(ir.RootName); b != nil && len(b.Value.Fields) != 0 {
		return p.errAt(ir.ErrSyntax, st.BodyOff-2, "root record is already defined")
	}
	p.cells = token.Cells(st.Body, st.BodyOff, p.cells[:0])
	if len(p.cells) == 0 {
		return p.errAt(ir.ErrSyntax, st.BodyOff, "ghost root declares no fields")
	}
	cols := make([]ir.Column, 0, len(p.cells))
	for _, c := range p.cells {
		name, hint := c.Text, []byte(nil)
		if i := bytes.IndexByte(c.Text, ':'); i != -1 {
			name, hint = c.Text[:i], c.Text[i+1:]
		}
		col, err := p.column(name, hint, c.Off, cols)
		if err != nil {
			return err
		}
		if col.Hint == ir.HintAutoIncrement {
			return p.errAt(ir.ErrSyntax, c.Off, "ghost root field %q cannot auto-increment", name)
		}
		cols = append(cols, col)
	}
	p.ghost = cols
	p.ghostLine = p.lineNo
	p.root()
	return nil
}

// ghostValues consumes the positional values line following a ghost root.
func (p *parser) ghostValues() error {
	cols := p.ghost
	p.ghost = nil
	body, off := trimBlanks(p.line, 0)
	var cells []token.Cell
	if bytes.IndexByte(body, '|') != -1 {
		cells = token.Split(body, '|', off, nil)
		for i := range cells {
			cells[i].Text, cells[i].Off = trimBlanks(cells[i].Text, cells[i].Off)
		}
		if len(cells) != len(cols) {
			return p.errAt(ir.ErrSchemaMismatch, off, "ghost root has %d fields but %d values", len(cols), len(cells))
		}
	} else {
		var err error
		cells, err = p.spread(token.Cells(body, off, nil), cols, vacuumOf(cols))
		if err != nil {
			return err
		}
	}
	root := p.root()
	for i, col := range cols {
		v, err := p.cell(cells[i], col.Hint, nil)
		if err != nil {
			return err
		}
		root.Set(col.Name, v)
	}
	return nil
}

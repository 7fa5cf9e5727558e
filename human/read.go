package human

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/dx-format/go-dx/debug"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/parse"
	"github.com/signadot/dx-format/go-dx/token"
)

type hline struct {
	no     int
	indent int
	text   string
}

type reader struct {
	cfg     Config
	lines   []hline
	i       int
	doc     *ir.Document
	pending []string
}

// Read parses human text into a document.
func Read(text string, cfg Config) (*ir.Document, error) {
	if max := parse.DefaultMaxInputSize; len(text) > max {
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum of %d", ir.ErrInputTooLarge, len(text), max)
	}
	r := &reader{cfg: cfg, doc: ir.NewDocument()}
	if err := r.split(text); err != nil {
		return nil, err
	}
	if err := r.run(); err != nil {
		return nil, err
	}
	return r.doc, nil
}

// split drops blank lines and measures indentation. Comments stay in place
// so that they can attach to the binding which follows them.
func (r *reader) split(text string) error {
	for n, l := range strings.Split(text, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if i := token.InvalidUTF8([]byte(l)); i != -1 {
			return ir.NewSyntaxError(ir.ErrSyntax, n+1, token.Column([]byte(l), i), "invalid UTF-8 byte 0x%02x", l[i])
		}
		body := strings.TrimLeft(l, " ")
		if strings.TrimSpace(body) == "" {
			continue
		}
		if body[0] == '\t' {
			return ir.NewSyntaxError(ir.ErrSyntax, n+1, len(l)-len(body)+1, "tabs are not allowed in indentation")
		}
		r.lines = append(r.lines, hline{
			no:     n + 1,
			indent: len(l) - len(body),
			text:   strings.TrimRight(body, " \t"),
		})
	}
	return nil
}

func (r *reader) errAt(kind error, l hline, col int, format string, args ...any) error {
	return ir.NewSyntaxError(kind, l.no, l.indent+col+1, format, args...)
}

// peek returns the next non-comment line, collecting comments on the way.
func (r *reader) peek() (hline, bool) {
	for r.i < len(r.lines) {
		l := r.lines[r.i]
		if !strings.HasPrefix(l.text, "#") {
			return l, true
		}
		if r.cfg.comments {
			r.pending = append(r.pending, strings.TrimPrefix(l.text[1:], " "))
		}
		r.i++
	}
	return hline{}, false
}

func (r *reader) touch(b *ir.Binding) {
	if len(r.pending) == 0 {
		return
	}
	b.Comments = append(b.Comments, r.pending...)
	r.pending = nil
}

func (r *reader) run() error {
	for {
		l, ok := r.peek()
		if !ok {
			break
		}
		if l.indent != 0 {
			return r.errAt(ir.ErrSyntax, l, 0, "unexpected indentation")
		}
		r.i++
		key, rest, err := r.splitKey(l)
		if err != nil {
			return err
		}
		if debug.Human() {
			debug.Logf("human line %d: %q %q\n", l.no, key, rest)
		}
		switch {
		case rest == "":
			b, err := r.bind(l, key)
			if err != nil {
				return err
			}
			v, err := r.block(l.indent, 1)
			if err != nil {
				return err
			}
			b.Value = v
		case rest == "!array":
			b, err := r.bind(l, key)
			if err != nil {
				return err
			}
			v, err := r.array(l)
			if err != nil {
				return err
			}
			b.Value = v
		case strings.HasPrefix(rest, "!table"):
			b, err := r.bind(l, key)
			if err != nil {
				return err
			}
			tab, err := r.table(l, rest)
			if err != nil {
				return err
			}
			b.Value = ir.FromTable(tab)
		case strings.HasPrefix(rest, "!"):
			return r.errAt(ir.ErrSyntax, l, len(key)+1, "unknown tag %q", rest)
		default:
			if err := r.rootField(l, key, rest); err != nil {
				return err
			}
		}
	}
	if r.cfg.comments && len(r.pending) != 0 {
		r.doc.Trailing = r.pending
	}
	return nil
}

func (r *reader) bind(l hline, name string) (*ir.Binding, error) {
	if r.doc.Binding(name) != nil {
		return nil, r.errAt(ir.ErrSyntax, l, 0, "duplicate binding %q", name)
	}
	b := r.doc.Bind(name, ir.Null())
	r.touch(b)
	return b, nil
}

func (r *reader) rootField(l hline, key, rest string) error {
	b := r.doc.Binding(ir.RootName)
	if b == nil {
		b = &ir.Binding{Name: ir.RootName, Value: ir.NewRecord()}
		r.doc.Bindings = append([]*ir.Binding{b}, r.doc.Bindings...)
	}
	r.touch(b)
	if b.Value.Get(key) != nil {
		return r.errAt(ir.ErrSyntax, l, 0, "duplicate field %q", key)
	}
	v, err := r.value(l, rest)
	if err != nil {
		return err
	}
	b.Value.Set(key, v)
	return nil
}

// splitKey splits key: rest. rest is empty for a block opener.
func (r *reader) splitKey(l hline) (string, string, error) {
	i := strings.IndexByte(l.text, ':')
	if i == -1 {
		return "", "", r.errAt(ir.ErrSyntax, l, len(l.text), "expected ':'")
	}
	key := l.text[:i]
	if !token.IsName([]byte(key)) {
		return "", "", r.errAt(ir.ErrSyntax, l, 0, "invalid key %q", key)
	}
	return key, strings.TrimSpace(l.text[i+1:]), nil
}

func (r *reader) value(l hline, text string) (*ir.Value, error) {
	v, err := readScalar(text)
	if err != nil {
		return nil, r.errAt(ir.ErrSyntax, l, strings.Index(l.text, text), "invalid value %s: %v", text, err)
	}
	return v, nil
}

// block reads the record whose fields are indented deeper than parent.
func (r *reader) block(parent, depth int) (*ir.Value, error) {
	if depth >= maxDepth {
		l, _ := r.peek()
		return nil, r.errAt(ir.ErrRecursionTooDeep, l, 0, "depth %d exceeds maximum of %d", depth+1, maxDepth)
	}
	rec := ir.NewRecord()
	indent := -1
	for {
		l, ok := r.peek()
		if !ok || l.indent <= parent {
			break
		}
		if indent == -1 {
			indent = l.indent
		} else if l.indent != indent {
			return nil, r.errAt(ir.ErrSyntax, l, 0, "inconsistent indentation")
		}
		r.i++
		key, rest, err := r.splitKey(l)
		if err != nil {
			return nil, err
		}
		if rec.Get(key) != nil {
			return nil, r.errAt(ir.ErrSyntax, l, 0, "duplicate field %q", key)
		}
		switch {
		case rest == "":
			sub, err := r.block(l.indent, depth+1)
			if err != nil {
				return nil, err
			}
			rec.Set(key, sub)
		case strings.HasPrefix(rest, "!"):
			return nil, r.errAt(ir.ErrSyntax, l, len(key)+1, "only scalars and records may nest in a record")
		default:
			v, err := r.value(l, rest)
			if err != nil {
				return nil, err
			}
			rec.Set(key, v)
		}
	}
	return rec, nil
}

func (r *reader) array(head hline) (*ir.Value, error) {
	items := []*ir.Value{}
	indent := -1
	for {
		l, ok := r.peek()
		if !ok || l.indent <= head.indent {
			break
		}
		if indent == -1 {
			indent = l.indent
		} else if l.indent != indent {
			return nil, r.errAt(ir.ErrSyntax, l, 0, "inconsistent indentation")
		}
		r.i++
		if !strings.HasPrefix(l.text, "- ") {
			return nil, r.errAt(ir.ErrSyntax, l, 0, "expected '- ' array item")
		}
		v, err := r.value(l, strings.TrimSpace(l.text[2:]))
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return ir.FromSlice(items), nil
}

// tableHeader parses !table(c1:hint c2:hint).
func (r *reader) tableHeader(l hline, tag string) (*ir.Table, error) {
	col := strings.Index(l.text, tag)
	if !strings.HasPrefix(tag, "!table(") || !strings.HasSuffix(tag, ")") {
		return nil, r.errAt(ir.ErrSyntax, l, col, "expected !table(column:hint ...)")
	}
	tab := &ir.Table{}
	for _, f := range strings.Fields(tag[len("!table(") : len(tag)-1]) {
		name, hintName, ok := strings.Cut(f, ":")
		if !ok {
			hintName = ir.HintString.String()
		}
		h, ok := ir.HintFromName(hintName)
		if !ok {
			return nil, r.errAt(ir.ErrSyntax, l, col, "unknown hint %q", hintName)
		}
		if !token.IsName([]byte(name)) || tab.ColumnIndex(name) != -1 {
			return nil, r.errAt(ir.ErrSyntax, l, col, "invalid or duplicate column %q", name)
		}
		tab.Columns = append(tab.Columns, ir.Column{Name: name, Hint: h})
	}
	if tab.DataColumns() == 0 {
		return nil, r.errAt(ir.ErrSyntax, l, col, "table declares no data columns")
	}
	return tab, nil
}

func (r *reader) table(head hline, tag string) (*ir.Table, error) {
	tab, err := r.tableHeader(head, tag)
	if err != nil {
		return nil, err
	}
	l, ok := r.peek()
	if !ok || l.indent <= head.indent {
		return tab, nil
	}
	if isRule(l.text) || gridBar(l.text) != "" {
		err = r.gridRows(head, tab)
	} else {
		err = r.keyedRows(head, tab)
	}
	if err != nil {
		return nil, err
	}
	return tab, nil
}

// appendRow fills auto-increment cells and checks the row limit.
func (r *reader) appendRow(l hline, tab *ir.Table, row []*ir.Value) error {
	if len(tab.Rows) >= parse.DefaultMaxTableRows {
		return r.errAt(ir.ErrTooManyRows, l, 0, "table exceeds %d rows", parse.DefaultMaxTableRows)
	}
	for j, c := range tab.Columns {
		if c.Hint == ir.HintAutoIncrement {
			row[j] = ir.FromInt(int64(len(tab.Rows) + 1))
		}
	}
	return tab.AppendRow(row)
}

func (r *reader) cell(l hline, text string, c ir.Column) (*ir.Value, error) {
	if c.Hint == ir.HintAutoIncrement {
		return nil, nil
	}
	v, err := readCell(text, c.Hint)
	if err != nil {
		kind := ir.ErrSyntax
		if errors.Is(err, ir.ErrSchemaMismatch) {
			kind = ir.ErrSchemaMismatch
		}
		return nil, r.errAt(kind, l, max(strings.Index(l.text, text), 0), "%s is not a valid %s", text, c.Hint)
	}
	return v, nil
}

func (r *reader) gridRows(head hline, tab *ir.Table) error {
	seenHeader := false
	for {
		l, ok := r.peek()
		if !ok || l.indent <= head.indent {
			return nil
		}
		r.i++
		if isRule(l.text) {
			continue
		}
		bar := gridBar(l.text)
		if bar == "" {
			return r.errAt(ir.ErrSyntax, l, 0, "expected a grid row")
		}
		cells, err := splitGrid(l.text, bar)
		if err != nil {
			return r.errAt(ir.ErrSyntax, l, 0, "%v", err)
		}
		if len(cells) != len(tab.Columns) {
			return r.errAt(ir.ErrSchemaMismatch, l, 0, "expected %d cells, found %d", len(tab.Columns), len(cells))
		}
		if !seenHeader {
			for j, c := range tab.Columns {
				if cells[j] != c.Name {
					return r.errAt(ir.ErrSchemaMismatch, l, 0, "grid column %d is %q, want %q", j+1, cells[j], c.Name)
				}
			}
			seenHeader = true
			continue
		}
		row := make([]*ir.Value, len(tab.Columns))
		for j, c := range tab.Columns {
			if row[j], err = r.cell(l, cells[j], c); err != nil {
				return err
			}
		}
		if err := r.appendRow(l, tab, row); err != nil {
			return err
		}
	}
}

func (r *reader) keyedRows(head hline, tab *ir.Table) error {
	var (
		row   []*ir.Value
		start hline
		dash  = -1
	)
	flush := func() error {
		if row == nil {
			return nil
		}
		for j, c := range tab.Columns {
			if row[j] == nil && c.Hint != ir.HintAutoIncrement {
				return r.errAt(ir.ErrSchemaMismatch, start, 0, "row is missing column %q", c.Name)
			}
		}
		err := r.appendRow(start, tab, row)
		row = nil
		return err
	}
	for {
		l, ok := r.peek()
		if !ok || l.indent <= head.indent {
			break
		}
		r.i++
		text := l.text
		if strings.HasPrefix(text, "- ") {
			if dash == -1 {
				dash = l.indent
			} else if l.indent != dash {
				return r.errAt(ir.ErrSyntax, l, 0, "inconsistent indentation")
			}
			if err := flush(); err != nil {
				return err
			}
			row = make([]*ir.Value, len(tab.Columns))
			start = l
			text = strings.TrimLeft(text[2:], " ")
		} else if row == nil || l.indent <= dash {
			return r.errAt(ir.ErrSyntax, l, 0, "expected '- ' table row")
		}
		key, rest, ok := strings.Cut(text, ":")
		if !ok {
			return r.errAt(ir.ErrSyntax, l, len(l.text), "expected ':'")
		}
		j := tab.ColumnIndex(key)
		if j == -1 {
			return r.errAt(ir.ErrSchemaMismatch, l, 0, "unknown column %q", key)
		}
		if row[j] != nil {
			return r.errAt(ir.ErrSyntax, l, 0, "duplicate column %q", key)
		}
		v, err := r.cell(l, strings.TrimSpace(rest), tab.Columns[j])
		if err != nil {
			return err
		}
		if v == nil {
			v = ir.Null()
		}
		row[j] = v
	}
	return flush()
}

package human

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/token"
)

type renderer struct {
	cfg   Config
	buf   strings.Builder
	depth int
}

// Render writes doc in human form.
func Render(doc *ir.Document, cfg Config) (string, error) {
	r := &renderer{cfg: cfg}
	if err := r.document(doc); err != nil {
		return "", err
	}
	return r.buf.String(), nil
}

func (r *renderer) color(t ir.Type, a encode.ColorAttr, s string) string {
	if r.cfg.colors == nil {
		return s
	}
	return r.cfg.colors.Color(t, a, s)
}

func (r *renderer) line(parts ...string) {
	r.buf.WriteString(strings.Repeat(" ", r.depth*r.cfg.IndentSize()))
	for _, p := range parts {
		r.buf.WriteString(p)
	}
	r.buf.WriteByte('\n')
}

func (r *renderer) comments(cs []string) {
	if !r.cfg.comments {
		return
	}
	for _, c := range cs {
		if c == "" {
			r.line(r.color(ir.StringType, encode.CommentColor, "#"))
			continue
		}
		r.line(r.color(ir.StringType, encode.CommentColor, "# "+c))
	}
}

func (r *renderer) document(doc *ir.Document) error {
	n := 0
	if b := doc.Binding(ir.RootName); b != nil {
		r.comments(b.Comments)
		if b.Value.Type != ir.RecordType {
			return ir.EncodingErr("$", "root must be a record, not %s", b.Value.Type)
		}
		for _, f := range b.Value.Fields {
			if !f.Value.Type.IsLeaf() {
				return ir.EncodingErr(f.Name, "root fields must be scalars, not %s", f.Value.Type)
			}
		}
		if err := r.fields("", b.Value, 0); err != nil {
			return err
		}
		n++
	}
	for _, b := range doc.Bindings {
		if b.Name == ir.RootName {
			continue
		}
		if !token.IsName([]byte(b.Name)) {
			return ir.EncodingErr(b.Name, "invalid binding name")
		}
		if n > 0 {
			r.buf.WriteByte('\n')
		}
		n++
		r.comments(b.Comments)
		if err := r.binding(b); err != nil {
			return err
		}
	}
	if len(doc.Trailing) != 0 && r.cfg.comments && n > 0 {
		r.buf.WriteByte('\n')
	}
	r.comments(doc.Trailing)
	return nil
}

func (r *renderer) binding(b *ir.Binding) error {
	key := r.color(b.Value.Type, encode.NameColor, b.Name) + ":"
	switch b.Value.Type {
	case ir.RecordType:
		r.line(key)
		r.depth++
		defer func() { r.depth-- }()
		return r.fields(b.Name, b.Value, 1)
	case ir.ArrayType:
		r.line(key, " ", r.color(ir.ArrayType, encode.HintColor, "!array"))
		r.depth++
		defer func() { r.depth-- }()
		return r.items(b.Name, b.Value)
	case ir.TableType:
		return r.table(b.Name, key, b.Value.Table)
	default:
		return ir.EncodingErr(b.Name, "a %s cannot be bound at top level", b.Value.Type)
	}
}

// fields writes the fields of a record, one per line at the current depth.
func (r *renderer) fields(path string, v *ir.Value, depth int) error {
	if depth >= maxDepth {
		return ir.DepthErr(depth+1, maxDepth)
	}
	width := 0
	if r.cfg.align {
		for _, f := range v.Fields {
			if f.Value.Type.IsLeaf() {
				width = max(width, utf8.RuneCountInString(f.Name))
			}
		}
	}
	for _, f := range v.Fields {
		fp := ir.JoinPath(path, f.Name)
		if !token.IsName([]byte(f.Name)) {
			return ir.EncodingErr(fp, "invalid field name")
		}
		key := r.color(ir.RecordType, encode.FieldColor, f.Name) + ":"
		if f.Value.Type == ir.RecordType {
			r.line(key)
			r.depth++
			err := r.fields(fp, f.Value, depth+1)
			r.depth--
			if err != nil {
				return err
			}
			continue
		}
		s, err := r.scalar(fp, f.Value, "")
		if err != nil {
			return err
		}
		r.line(key, pad(f.Name, width), " ", r.color(f.Value.Type, encode.ValueColor, s))
	}
	return nil
}

func (r *renderer) items(path string, v *ir.Value) error {
	for i, item := range v.Items {
		s, err := r.scalar(fmt.Sprintf("%s[%d]", path, i), item, "")
		if err != nil {
			return err
		}
		r.line(r.color(ir.ArrayType, encode.SepColor, "-"), " ", r.color(item.Type, encode.ValueColor, s))
	}
	return nil
}

// tableTag is !table(c1:hint c2:hint).
func tableTag(tab *ir.Table) string {
	cols := make([]string, len(tab.Columns))
	for i, c := range tab.Columns {
		cols[i] = c.Name + ":" + c.Hint.String()
	}
	return "!table(" + strings.Join(cols, " ") + ")"
}

func (r *renderer) table(name, key string, tab *ir.Table) error {
	if tab == nil || len(tab.Columns) == 0 {
		return ir.EncodingErr(name, "table has no columns")
	}
	for _, c := range tab.Columns {
		if !token.IsName([]byte(c.Name)) {
			return ir.EncodingErr(ir.JoinPath(name, c.Name), "invalid column name")
		}
	}
	r.line(key, " ", r.color(ir.TableType, encode.HintColor, tableTag(tab)))
	r.depth++
	defer func() { r.depth-- }()
	if r.cfg.box {
		return r.grid(name, tab)
	}
	return r.keyedRows(name, tab)
}

// keyedRows writes each row as a list item of column: value lines.
func (r *renderer) keyedRows(name string, tab *ir.Table) error {
	width := 0
	if r.cfg.align {
		for _, c := range tab.Columns {
			width = max(width, utf8.RuneCountInString(c.Name))
		}
	}
	for i, row := range tab.Rows {
		if len(row) != len(tab.Columns) {
			return ir.EncodingErr(fmt.Sprintf("%s[%d]", name, i), "row has %d cells, table has %d columns", len(row), len(tab.Columns))
		}
		for j, c := range tab.Columns {
			s, err := r.scalar(fmt.Sprintf("%s[%d].%s", name, i, c.Name), row[j], "")
			if err != nil {
				return err
			}
			lead := "  "
			if j == 0 {
				lead = r.color(ir.TableType, encode.SepColor, "-") + " "
			}
			r.line(lead, r.color(ir.TableType, encode.FieldColor, c.Name), ":", pad(c.Name, width), " ", r.color(row[j].Type, encode.ValueColor, s))
		}
	}
	return nil
}

func pad(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

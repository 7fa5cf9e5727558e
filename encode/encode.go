package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/dx-format/go-dx/debug"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/parse"
	"github.com/signadot/dx-format/go-dx/token"
)

type EncState struct {
	comments bool
	ditto    bool
	maxDepth int

	Color func(ir.Type, ColorAttr, string) string

	buf  bytes.Buffer
	line line
}

// Encode writes doc as dense text. The root record, if any, is written
// first.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		comments: true,
		ditto:    true,
		maxDepth: parse.DefaultMaxRecursionDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.document(doc); err != nil {
		return err
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

// EncodeBytes is Encode into a new slice.
func EncodeBytes(doc *ir.Document, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(doc, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MustString(doc *ir.Document) string {
	d, err := EncodeBytes(doc)
	if err != nil {
		panic(err)
	}
	return string(d)
}

func (es *EncState) document(doc *ir.Document) error {
	if b := doc.Binding(ir.RootName); b != nil {
		if err := es.binding(b); err != nil {
			return err
		}
	}
	seen := map[string]bool{}
	for _, b := range doc.Bindings {
		if b.Name == ir.RootName {
			continue
		}
		if !token.IsName([]byte(b.Name)) {
			return ir.EncodingErr(b.Name, "invalid binding name")
		}
		if seen[b.Name] {
			return ir.EncodingErr(b.Name, "duplicate binding")
		}
		seen[b.Name] = true
		if err := es.binding(b); err != nil {
			return err
		}
	}
	return es.writeComments(doc.Trailing)
}

func (es *EncState) binding(b *ir.Binding) error {
	if err := es.writeComments(b.Comments); err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("encode %q %s\n", b.Name, b.Value.Type)
	}
	if b.Name == ir.RootName {
		return es.ghostRoot(b.Value)
	}
	switch b.Value.Type {
	case ir.RecordType:
		return es.record(b.Name, b.Value)
	case ir.ArrayType:
		return es.stream(b.Name, b.Value)
	case ir.TableType:
		return es.table(b.Name, b.Value.Table)
	default:
		return ir.EncodingErr(b.Name, "a %s cannot be bound at top level", b.Value.Type)
	}
}

func (es *EncState) writeComments(cs []string) error {
	if !es.comments {
		return nil
	}
	for _, c := range cs {
		if strings.ContainsAny(c, "\r\n") {
			return ir.EncodingErr("#", "comment %q spans lines", c)
		}
		es.line.reset()
		if c == "" {
			es.line.add(ir.StringType, CommentColor, "#")
		} else {
			es.line.add(ir.StringType, CommentColor, "# "+c)
		}
		es.flush()
	}
	return nil
}

// record writes name.k1:v1^k2.k3:v3 with leaves in depth first order.
func (es *EncState) record(name string, v *ir.Value) error {
	if len(v.Fields) == 0 {
		return ir.EncodingErr(name, "empty record")
	}
	es.line.reset()
	es.line.add(ir.RecordType, NameColor, name)
	es.line.add(ir.RecordType, SepColor, ".")
	first := true
	if err := es.leaves(name, "", v, 1, &first); err != nil {
		return err
	}
	es.flush()
	return nil
}

func (es *EncState) leaves(path, prefix string, v *ir.Value, depth int, first *bool) error {
	if depth >= es.maxDepth {
		return ir.DepthErr(depth+1, es.maxDepth)
	}
	for _, f := range v.Fields {
		fp := ir.JoinPath(path, f.Name)
		if !token.IsName([]byte(f.Name)) {
			return ir.EncodingErr(fp, "invalid field name")
		}
		key := f.Name
		if prefix != "" {
			key = prefix + "." + f.Name
		}
		if f.Value.Type == ir.RecordType {
			if len(f.Value.Fields) == 0 {
				return ir.EncodingErr(fp, "empty record")
			}
			if err := es.leaves(fp, key, f.Value, depth+1, first); err != nil {
				return err
			}
			continue
		}
		s, err := lexical(fp, f.Value, ctxRecord)
		if err != nil {
			return err
		}
		if !*first {
			es.line.add(ir.RecordType, SepColor, "^")
		}
		*first = false
		es.line.add(ir.RecordType, FieldColor, key)
		es.line.add(ir.RecordType, SepColor, ":")
		es.line.add(f.Value.Type, ValueColor, s)
	}
	return nil
}

// stream writes name>a|b|c.
func (es *EncState) stream(name string, v *ir.Value) error {
	es.line.reset()
	es.line.add(ir.ArrayType, NameColor, name)
	es.line.add(ir.ArrayType, SepColor, ">")
	for i, item := range v.Items {
		p := ir.JoinPath(name, "["+itoa(i)+"]")
		if len(v.Items) == 1 && item.Type == ir.StringType && item.String == "" {
			return ir.EncodingErr(p, "a lone empty string reads back as an empty array")
		}
		s, err := lexical(p, item, ctxStream)
		if err != nil {
			return err
		}
		if i > 0 {
			es.line.add(ir.ArrayType, SepColor, "|")
		}
		es.line.add(item.Type, ValueColor, s)
	}
	es.flush()
	return nil
}

// ghostRoot writes .=k1:h1 k2:h2 and the positional values line.
func (es *EncState) ghostRoot(v *ir.Value) error {
	if v.Type != ir.RecordType {
		return ir.EncodingErr("$", "root must be a record, not %s", v.Type)
	}
	if len(v.Fields) == 0 {
		return ir.EncodingErr("$", "empty root record")
	}
	vals := make([]string, len(v.Fields))
	es.line.reset()
	es.line.add(ir.RecordType, SepColor, ".=")
	for i, f := range v.Fields {
		if !token.IsName([]byte(f.Name)) {
			return ir.EncodingErr(f.Name, "invalid field name")
		}
		s, hint, err := ghostValue(f.Name, f.Value, len(v.Fields) == 1)
		if err != nil {
			return err
		}
		if i == 0 && strings.HasPrefix(s, "#") {
			return ir.EncodingErr(f.Name, "first root value cannot start with '#'")
		}
		vals[i] = s
		if i > 0 {
			es.line.add(ir.RecordType, SepColor, " ")
		}
		es.line.add(ir.RecordType, FieldColor, f.Name)
		es.line.add(ir.RecordType, SepColor, ":")
		es.line.add(ir.RecordType, HintColor, string(hint.Letter()))
	}
	es.flush()
	es.line.reset()
	for i, s := range vals {
		if i > 0 {
			es.line.add(ir.RecordType, SepColor, "|")
		}
		es.line.add(v.Fields[i].Value.Type, ValueColor, s)
	}
	es.flush()
	return nil
}

func ghostValue(path string, v *ir.Value, single bool) (string, ir.Hint, error) {
	switch v.Type {
	case ir.NullType:
		return "~", ir.HintAuto, nil
	case ir.BoolType:
		return boolSigil(v.Bool), ir.HintBool, nil
	case ir.IntType:
		s, err := lexical(path, v, ctxGhost)
		return s, ir.HintInt, err
	case ir.FloatType:
		s, err := lexical(path, v, ctxGhost)
		return s, ir.HintFloat, err
	case ir.StringType:
		s := v.String
		if err := checkCellMarks(path, s); err != nil {
			return "", 0, err
		}
		if single {
			if err := checkVacuum(path, s); err != nil {
				return "", 0, err
			}
			if strings.Contains(s, "|") {
				return "", 0, ir.EncodingErr(path, "%q contains a reserved separator \"|\"", s)
			}
		} else if err := checkReserved(path, s, ctxGhost); err != nil {
			return "", 0, err
		}
		return s, ir.HintString, nil
	default:
		return "", 0, ir.EncodingErr(path, "root fields must be scalars, not %s", v.Type)
	}
}

func (es *EncState) flush() {
	if es.Color == nil {
		for _, s := range es.line.segs {
			es.buf.WriteString(s.s)
		}
	} else {
		for _, s := range es.line.segs {
			es.buf.WriteString(es.Color(s.t, s.a, s.s))
		}
	}
	es.buf.WriteByte('\n')
}

type seg struct {
	t ir.Type
	a ColorAttr
	s string
}

// line collects the colorable parts of one output line.
type line struct {
	segs []seg
}

func (l *line) reset() {
	l.segs = l.segs[:0]
}

func (l *line) add(t ir.Type, a ColorAttr, s string) {
	l.segs = append(l.segs, seg{t: t, a: a, s: s})
}

func (l *line) String() string {
	var b strings.Builder
	for _, s := range l.segs {
		b.WriteString(s.s)
	}
	return b.String()
}

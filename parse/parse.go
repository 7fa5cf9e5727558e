package parse

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/dx-format/go-dx/debug"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := newOpts(opts)
	if len(d) > pOpts.limits.MaxInputSize {
		if debug.Limits() {
			debug.Logf("input of %d bytes over limit %d\n", len(d), pOpts.limits.MaxInputSize)
		}
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum of %d", ir.ErrInputTooLarge, len(d), pOpts.limits.MaxInputSize)
	}
	p := newParser(pOpts)
	if err := p.run(d); err != nil {
		return nil, err
	}
	return p.doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads at most one byte over the input limit before failing, so
// an oversized stream is never buffered whole.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Document, error) {
	pOpts := newOpts(opts)
	max := pOpts.limits.MaxInputSize
	d, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, err
	}
	if len(d) > max {
		return nil, fmt.Errorf("%w: more than %d bytes", ir.ErrInputTooLarge, max)
	}
	return Parse(d, opts...)
}

// parser is the state of one parse call.
type parser struct {
	opts *parseOpts
	doc  *ir.Document

	aliases map[string]*ir.Value

	line   []byte
	lineNo int

	table     *ir.Table
	tableBind *ir.Binding
	dataCols  []ir.Column
	vacuum    int

	lastRecord *ir.Value

	ghost     []ir.Column
	ghostLine int

	pending []string
	cells   []token.Cell
}

func newParser(opts *parseOpts) *parser {
	return &parser{
		opts:    opts,
		doc:     ir.NewDocument(),
		aliases: map[string]*ir.Value{},
	}
}

func (p *parser) run(d []byte) error {
	lines := token.NewLines(d)
	for {
		line, n, ok := lines.Next()
		if !ok {
			break
		}
		p.line, p.lineNo = line, n
		if i := token.InvalidUTF8(line); i != -1 {
			return p.errAt(ir.ErrSyntax, i, "invalid UTF-8 byte 0x%02x", line[i])
		}
		if err := p.statement(); err != nil {
			return err
		}
	}
	if p.ghost != nil {
		p.line, p.lineNo = nil, p.ghostLine
		return p.errAt(ir.ErrSyntax, 0, "ghost root schema has no values line")
	}
	if p.opts.comments && len(p.pending) != 0 {
		p.doc.Trailing = p.pending
	}
	return nil
}

func (p *parser) statement() error {
	st := token.Classify(p.line, p.table != nil)
	switch st.Kind {
	case token.KindBlank:
		return nil
	case token.KindComment:
		if p.opts.comments {
			p.pending = append(p.pending, strings.TrimPrefix(string(st.Body), " "))
		}
		return nil
	}
	if p.ghost != nil {
		return p.ghostValues()
	}
	if st.Kind.IsHeader() {
		p.closeTable()
	}
	if debug.Parse() {
		debug.Logf("line %d: %s %q\n", p.lineNo, st.Kind, st.Name)
	}
	switch st.Kind {
	case token.KindRecord:
		return p.record(st)
	case token.KindContinuation:
		return p.continuation(st)
	case token.KindGhostRoot:
		return p.ghostRoot(st)
	case token.KindStream:
		return p.stream(st)
	case token.KindTable:
		return p.tableHeader(st)
	case token.KindAlias:
		return p.alias(st)
	case token.KindLoose:
		return p.loose(st)
	case token.KindRow:
		return p.row(st)
	default:
		return p.errAt(ir.ErrSyntax, st.BodyOff, "unrecognized statement")
	}
}

// touch attaches pending comments to b.
func (p *parser) touch(b *ir.Binding) {
	if len(p.pending) == 0 {
		return
	}
	b.Comments = append(b.Comments, p.pending...)
	p.pending = nil
}

// bindNew creates a binding which must not already exist.
func (p *parser) bindNew(name []byte, off int, v *ir.Value) (*ir.Binding, error) {
	if p.doc.Binding(string(name)) != nil {
		return nil, p.errAt(ir.ErrSyntax, off, "duplicate binding %q", name)
	}
	b := p.doc.Bind(string(name), v)
	p.touch(b)
	return b, nil
}

// root returns the root record, creating it first if needed.
func (p *parser) root() *ir.Value {
	b := p.doc.Binding(ir.RootName)
	if b == nil {
		b = &ir.Binding{Name: ir.RootName, Value: ir.NewRecord()}
		p.doc.Bindings = append([]*ir.Binding{b}, p.doc.Bindings...)
	}
	p.touch(b)
	return b.Value
}

func (p *parser) errAt(kind error, off int, format string, args ...any) error {
	return ir.NewSyntaxError(kind, p.lineNo, token.Column(p.line, off), format, args...)
}

func trimBlanks(d []byte, off int) ([]byte, int) {
	n := len(d)
	d = bytes.TrimLeft(d, " \t")
	off += n - len(d)
	return bytes.TrimRight(d, " \t"), off
}

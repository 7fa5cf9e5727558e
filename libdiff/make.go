package libdiff

import (
	"github.com/signadot/dx-format/go-dx/convert"
	"github.com/signadot/dx-format/go-dx/ir"
)

// Change is one difference at Path. From is nil for an insert and To is
// nil for a delete.
type Change struct {
	Path string
	Op   Op
	From *ir.Value
	To   *ir.Value
}

func MakeChange(path string, from, to *ir.Value) Change {
	switch {
	case from == nil:
		return Change{Path: path, Op: Insert, To: to}
	case to == nil:
		return Change{Path: path, Op: Delete, From: from}
	default:
		return Change{Path: path, Op: Replace, From: from, To: to}
	}
}

func (c Change) String() string {
	path := c.Path
	if path == "" {
		path = "$"
	}
	switch c.Op {
	case Insert:
		return c.Op.Sigil() + " " + path + ": " + show(c.To)
	case Delete:
		return c.Op.Sigil() + " " + path + ": " + show(c.From)
	default:
		return c.Op.Sigil() + " " + path + ": " + show(c.From) + " -> " + show(c.To)
	}
}

func show(v *ir.Value) string {
	s, err := convert.ValueYAML(v)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return s
}

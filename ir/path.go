package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a value inside a document: "$.hikes[0].name" or, without
// the leading "$.", "hikes[0].name". Fields containing '.' or '[' may be
// single quoted.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			f := *x.Field
			if f != "" && strings.IndexAny(f, "'.[]") == -1 {
				buf.WriteString("." + f)
			} else {
				buf.WriteString(".'" + strings.ReplaceAll(f, "'", "\\'") + "'")
			}
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if p == "" || p == "$" {
		return nil, nil
	}
	switch {
	case p[0] == '$':
		p = p[1:]
	case p[0] != '[' && p[0] != '.':
		p = "." + p
	}
	root := &Path{}
	if err := parseFrag(p, root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		u64, err := strconv.ParseUint(frag[1:i+1], 10, 31)
		if err != nil {
			return err
		}
		index := int(u64)
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if rest == "" {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath navigates v. Indexing a table yields the row as a record; a field
// of a table yields that column as an array.
func (v *Value) GetPath(p string) (*Value, error) {
	pp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return v.getPath(pp)
}

func (v *Value) getPath(p *Path) (*Value, error) {
	res := v
	for ; p != nil; p = p.Next {
		switch {
		case p.Index != nil:
			i := *p.Index
			switch res.Type {
			case ArrayType:
				if i >= len(res.Items) {
					return nil, fmt.Errorf("index %d out of range (%d items)", i, len(res.Items))
				}
				res = res.Items[i]
			case TableType:
				if i >= len(res.Table.Rows) {
					return nil, fmt.Errorf("index %d out of range (%d rows)", i, len(res.Table.Rows))
				}
				res = res.Table.RowRecord(i)
			default:
				return nil, fmt.Errorf("cannot index %s", res.Type)
			}
		case p.Field != nil:
			f := *p.Field
			switch res.Type {
			case RecordType:
				next := res.Get(f)
				if next == nil {
					return nil, fmt.Errorf("no field %q", f)
				}
				res = next
			case TableType:
				j := res.Table.ColumnIndex(f)
				if j == -1 {
					return nil, fmt.Errorf("no column %q", f)
				}
				items := make([]*Value, len(res.Table.Rows))
				for k, row := range res.Table.Rows {
					items[k] = row[j]
				}
				res = FromSlice(items)
			default:
				return nil, fmt.Errorf("cannot select field %q of %s", f, res.Type)
			}
		}
	}
	return res, nil
}

// Lookup resolves a path whose first field names a binding. When no binding
// has that name, the path is resolved against the root record.
func (d *Document) Lookup(p string) (*Value, error) {
	pp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	if pp == nil {
		return nil, fmt.Errorf("empty path")
	}
	if pp.Field != nil {
		if b := d.Binding(*pp.Field); b != nil && b.Name != RootName {
			return b.Value.getPath(pp.Next)
		}
	}
	root := d.Root()
	if root == nil {
		return nil, fmt.Errorf("no binding for %s", pp)
	}
	return root.getPath(pp)
}

package libdiff

import (
	"github.com/signadot/dx-format/go-dx/ir"
)

// Documents returns the changes turning from into to, binding by binding.
// Comments are ignored.
func Documents(from, to *ir.Document) []Change {
	var res []Change
	for _, b := range from.Bindings {
		tb := to.Binding(b.Name)
		if tb == nil {
			res = append(res, MakeChange(bindingPath(b.Name), b.Value, nil))
			continue
		}
		res = append(res, Values(bindingPath(b.Name), b.Value, tb.Value)...)
	}
	for _, b := range to.Bindings {
		if from.Binding(b.Name) == nil {
			res = append(res, MakeChange(bindingPath(b.Name), nil, b.Value))
		}
	}
	return res
}

func bindingPath(name string) string {
	if name == ir.RootName {
		return ""
	}
	return name
}

// Values returns the changes turning from into to below path.
func Values(path string, from, to *ir.Value) []Change {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil || from.Type != to.Type:
		return []Change{MakeChange(path, from, to)}
	}
	switch from.Type {
	case ir.RecordType:
		return diffRecords(path, from, to)
	case ir.ArrayType:
		return DiffArrayByIndex(path, from.Items, to.Items)
	case ir.TableType:
		return diffTables(path, from.Table, to.Table)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		return []Change{MakeChange(path, from, to)}
	}
}

func diffRecords(path string, from, to *ir.Value) []Change {
	var res []Change
	for _, f := range from.Fields {
		fp := ir.JoinPath(path, f.Name)
		tv := to.Get(f.Name)
		if tv == nil {
			res = append(res, MakeChange(fp, f.Value, nil))
			continue
		}
		res = append(res, Values(fp, f.Value, tv)...)
	}
	for _, f := range to.Fields {
		if from.Get(f.Name) == nil {
			res = append(res, MakeChange(ir.JoinPath(path, f.Name), nil, f.Value))
		}
	}
	return res
}

// diffTables compares rows as keyed records when the columns agree and
// replaces the table otherwise.
func diffTables(path string, from, to *ir.Table) []Change {
	same := len(from.Columns) == len(to.Columns)
	for i := 0; same && i < len(from.Columns); i++ {
		same = from.Columns[i] == to.Columns[i]
	}
	if !same {
		return []Change{MakeChange(path, ir.FromTable(from), ir.FromTable(to))}
	}
	return DiffArrayByIndex(path, rows(from), rows(to))
}

func rows(t *ir.Table) []*ir.Value {
	res := make([]*ir.Value, len(t.Rows))
	for i := range t.Rows {
		res[i] = t.RowRecord(i)
	}
	return res
}

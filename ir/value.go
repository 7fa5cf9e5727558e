package ir

import (
	"strings"
)

type Value struct {
	Type Type

	Bool   bool
	Int    int64
	Float  float64
	String string
	Items  []*Value
	Fields []*Field
	Table  *Table
}

type Field struct {
	Name  string
	Value *Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int: v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: FloatType, Float: f}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromSlice(items []*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{Type: ArrayType, Items: items}
}

func FromTable(t *Table) *Value {
	return &Value{Type: TableType, Table: t}
}

// NewRecord returns an empty record.
func NewRecord() *Value {
	return &Value{Type: RecordType}
}

// FromFields builds a record from name/value pairs in order. Later
// duplicates replace earlier values in place.
func FromFields(fields ...*Field) *Value {
	res := NewRecord()
	for _, f := range fields {
		res.Set(f.Name, f.Value)
	}
	return res
}

func (v *Value) Get(name string) *Value {
	if v.Type != RecordType {
		return nil
	}
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// Set assigns name in a record, keeping the position of an existing field.
func (v *Value) Set(name string, val *Value) {
	for _, f := range v.Fields {
		if f.Name == name {
			f.Value = val
			return
		}
	}
	v.Fields = append(v.Fields, &Field{Name: name, Value: val})
}

// Keys returns the record field names in order.
func (v *Value) Keys() []string {
	res := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		res[i] = f.Name
	}
	return res
}

// Len is the number of items, fields or rows.
func (v *Value) Len() int {
	switch v.Type {
	case ArrayType:
		return len(v.Items)
	case RecordType:
		return len(v.Fields)
	case TableType:
		return len(v.Table.Rows)
	default:
		return 0
	}
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{}
	*res = *v
	switch v.Type {
	case ArrayType:
		res.Items = make([]*Value, len(v.Items))
		for i, item := range v.Items {
			res.Items[i] = item.Clone()
		}
	case RecordType:
		res.Fields = make([]*Field, len(v.Fields))
		for i, f := range v.Fields {
			res.Fields[i] = &Field{Name: f.Name, Value: f.Value.Clone()}
		}
	case TableType:
		res.Table = v.Table.Clone()
	}
	return res
}

// JoinPath extends a dotted diagnostic path.
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	if strings.HasPrefix(name, "[") {
		return parent + name
	}
	return parent + "." + name
}

package convert

import (
	"github.com/goccy/go-yaml"
	"github.com/signadot/dx-format/go-dx/ir"
)

// ToGo renders d as an ordered mapping: root record fields first, then one
// entry per named binding.
func ToGo(d *ir.Document) yaml.MapSlice {
	res := yaml.MapSlice{}
	if root := d.Root(); root != nil {
		for _, f := range root.Fields {
			res = append(res, yaml.MapItem{Key: f.Name, Value: ToGoValue(f.Value)})
		}
	}
	for _, b := range d.Bindings {
		if b.Name == ir.RootName {
			continue
		}
		res = append(res, yaml.MapItem{Key: b.Name, Value: ToGoValue(b.Value)})
	}
	return res
}

// ToGoValue renders v with Go natives; records become yaml.MapSlice and
// tables a []any of row mappings.
func ToGoValue(v *ir.Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return v.Bool
	case ir.IntType:
		return v.Int
	case ir.FloatType:
		return v.Float
	case ir.StringType:
		return v.String
	case ir.ArrayType:
		res := make([]any, len(v.Items))
		for i, item := range v.Items {
			res[i] = ToGoValue(item)
		}
		return res
	case ir.RecordType:
		res := make(yaml.MapSlice, len(v.Fields))
		for i, f := range v.Fields {
			res[i] = yaml.MapItem{Key: f.Name, Value: ToGoValue(f.Value)}
		}
		return res
	case ir.TableType:
		res := make([]any, len(v.Table.Rows))
		for i, row := range v.Table.Rows {
			ms := make(yaml.MapSlice, len(row))
			for j, c := range v.Table.Columns {
				ms[j] = yaml.MapItem{Key: c.Name, Value: ToGoValue(row[j])}
			}
			res[i] = ms
		}
		return res
	}
	return nil
}

func ToYAML(d *ir.Document) ([]byte, error) {
	return yaml.MarshalWithOptions(ToGo(d), yaml.Indent(2), yaml.IndentSequence(true))
}

func ToJSON(d *ir.Document) ([]byte, error) {
	return yaml.MarshalWithOptions(ToGo(d), yaml.JSON())
}

// ValueYAML renders a single value on one line in flow style.
func ValueYAML(v *ir.Value) (string, error) {
	out, err := yaml.MarshalWithOptions(ToGoValue(v), yaml.Flow(true))
	if err != nil {
		return "", err
	}
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return string(out), nil
}

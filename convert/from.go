package convert

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/signadot/dx-format/go-dx/ir"
)

var ErrShape = errors.New("unsupported document shape")

// FromYAML decodes a YAML mapping into a document, keeping key order.
func FromYAML(data []byte) (*ir.Document, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromGo(v)
}

// FromJSON decodes a JSON object into a document, keeping key order.
func FromJSON(data []byte) (*ir.Document, error) {
	return FromYAML(data)
}

// FromGo maps a decoded tree onto a document. v must be a mapping, either a
// yaml.MapSlice or a map[string]any; map keys are sorted.
func FromGo(v any) (*ir.Document, error) {
	doc := ir.NewDocument()
	if v == nil {
		return doc, nil
	}
	items, err := mapItems(v)
	if err != nil {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrShape)
	}
	var root *ir.Value
	for _, item := range items {
		name, err := keyString(item.Key)
		if err != nil {
			return nil, err
		}
		switch x := item.Value.(type) {
		case yaml.MapSlice, map[string]any:
			rec, err := FromGoValue(x)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			doc.Bind(name, rec)
		case []any:
			if tab, ok, err := tableFrom(x); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			} else if ok {
				doc.Bind(name, ir.FromTable(tab))
				continue
			}
			arr, err := FromGoValue(x)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			doc.Bind(name, arr)
		default:
			sv, err := FromGoValue(x)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if root == nil {
				root = ir.NewRecord()
				doc.Bindings = append([]*ir.Binding{{Name: ir.RootName, Value: root}}, doc.Bindings...)
			}
			root.Set(name, sv)
		}
	}
	return doc, nil
}

// FromGoValue converts one decoded value.
func FromGoValue(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: integer %d out of range", ErrShape, x)
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x), nil
	case []any:
		items := make([]*ir.Value, len(x))
		for i, elt := range x {
			iv, err := FromGoValue(elt)
			if err != nil {
				return nil, err
			}
			items[i] = iv
		}
		return ir.FromSlice(items), nil
	case yaml.MapSlice, map[string]any:
		kvs, _ := mapItems(x)
		res := ir.NewRecord()
		for _, kv := range kvs {
			k, err := keyString(kv.Key)
			if err != nil {
				return nil, err
			}
			fv, err := FromGoValue(kv.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Set(k, fv)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrShape, v)
	}
}

func mapItems(v any) ([]yaml.MapItem, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		return x, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := make([]yaml.MapItem, len(keys))
		for i, k := range keys {
			res[i] = yaml.MapItem{Key: k, Value: x[k]}
		}
		return res, nil
	}
	return nil, ErrShape
}

func keyString(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case int, int64, uint64, bool:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("%w: key of type %T", ErrShape, k)
}

// tableFrom recognises a non-empty sequence of flat mappings with identical
// keys in identical order.
func tableFrom(seq []any) (*ir.Table, bool, error) {
	if len(seq) == 0 {
		return nil, false, nil
	}
	var names []string
	rows := make([][]*ir.Value, 0, len(seq))
	for i, elt := range seq {
		kvs, err := mapItems(elt)
		if err != nil {
			return nil, false, nil
		}
		if i == 0 {
			if len(kvs) == 0 {
				return nil, false, nil
			}
			for _, kv := range kvs {
				k, err := keyString(kv.Key)
				if err != nil {
					return nil, false, err
				}
				names = append(names, k)
			}
		}
		if len(kvs) != len(names) {
			return nil, false, nil
		}
		row := make([]*ir.Value, len(names))
		for j, kv := range kvs {
			if k, _ := keyString(kv.Key); k != names[j] {
				return nil, false, nil
			}
			cv, err := FromGoValue(kv.Value)
			if err != nil {
				return nil, false, err
			}
			if !cv.Type.IsLeaf() {
				return nil, false, nil
			}
			row[j] = cv
		}
		rows = append(rows, row)
	}
	tab := &ir.Table{Rows: rows}
	for j, name := range names {
		tab.Columns = append(tab.Columns, ir.Column{Name: name, Hint: columnHint(rows, j)})
	}
	return tab, true, nil
}

// columnHint picks the narrowest hint every cell of column j satisfies.
func columnHint(rows [][]*ir.Value, j int) ir.Hint {
	seen := map[ir.Type]bool{}
	for _, row := range rows {
		seen[row[j].Type] = true
	}
	switch {
	case len(seen) == 1 && seen[ir.IntType]:
		return ir.HintInt
	case len(seen) == 1 && seen[ir.FloatType]:
		return ir.HintFloat
	case len(seen) == 2 && seen[ir.IntType] && seen[ir.FloatType]:
		for _, row := range rows {
			if row[j].Type == ir.IntType {
				row[j] = ir.FromFloat(float64(row[j].Int))
			}
		}
		return ir.HintFloat
	case len(seen) == 1 && seen[ir.BoolType]:
		return ir.HintBool
	case len(seen) == 1 && seen[ir.StringType]:
		return ir.HintString
	default:
		return ir.HintAuto
	}
}

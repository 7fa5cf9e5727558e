package libdiff

import (
	"fmt"
	"strconv"

	"github.com/signadot/dx-format/go-dx/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex aligns two sequences and reports changes by index.
//
//  1. each value is summarized as a string: scalars by type and value,
//     containers by type alone
//  2. summaries are mapped to runes and the rune sequences diffed
//  3. equal runs recurse, so containers of the same type are compared
//     field by field
//  4. a delete directly followed by an insert becomes a replace
//
// Deleted elements are indexed in from, all others in to.
func DiffArrayByIndex(path string, from, to []*ir.Value) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti := 0, 0
	pendingDel := -1
	at := func(i int) string { return fmt.Sprintf("%s[%d]", path, i) }
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, MakeChange(at(fi), from[fi], nil))
				pendingDel = len(res) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			pendingDel = -1
			for range n {
				res = append(res, Values(at(ti), from[fi], to[ti])...)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if pendingDel != -1 && pendingDel == len(res)-1 {
					res[pendingDel] = MakeChange(at(ti), res[pendingDel].From, to[ti])
				} else {
					res = append(res, MakeChange(at(ti), nil, to[ti]))
				}
				pendingDel = -1
				ti++
			}
		}
	}
	return res
}

func mapValues(m map[string]rune, vals []*ir.Value) []rune {
	rs := make([]rune, len(vals))
	for i, v := range vals {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v *ir.Value) string {
	switch v.Type {
	case ir.RecordType, ir.ArrayType, ir.TableType, ir.NullType:
		return v.Type.String()
	case ir.BoolType:
		return v.Type.String() + "-" + strconv.FormatBool(v.Bool)
	case ir.StringType:
		return v.Type.String() + "-" + v.String
	case ir.IntType:
		return v.Type.String() + "-" + strconv.FormatInt(v.Int, 10)
	case ir.FloatType:
		return v.Type.String() + "-" + strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		panic("type")
	}
}

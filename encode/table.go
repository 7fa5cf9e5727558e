package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/token"
)

// table writes the header and one row per line. Auto-increment cells are
// omitted; each written row is reclassified so that a cell which would turn
// the row into a statement is reported rather than written.
func (es *EncState) table(name string, tab *ir.Table) error {
	if tab == nil || len(tab.Columns) == 0 {
		return ir.EncodingErr(name, "table has no columns")
	}
	if tab.DataColumns() == 0 {
		return ir.EncodingErr(name, "table has only auto-increment columns")
	}
	es.line.reset()
	es.line.add(ir.TableType, NameColor, name)
	es.line.add(ir.TableType, SepColor, "=")
	vacuum := -1
	for j, col := range tab.Columns {
		if !token.IsName([]byte(col.Name)) {
			return ir.EncodingErr(ir.JoinPath(name, col.Name), "invalid column name")
		}
		if tab.ColumnIndex(col.Name) != j {
			return ir.EncodingErr(ir.JoinPath(name, col.Name), "duplicate column")
		}
		if vacuum == -1 && col.Hint == ir.HintString {
			vacuum = j
		}
		if j > 0 {
			es.line.add(ir.TableType, SepColor, " ")
		}
		es.line.add(ir.TableType, FieldColor, col.Name)
		es.line.add(ir.TableType, SepColor, "%")
		es.line.add(ir.TableType, HintColor, string(col.Hint.Letter()))
	}
	es.flush()

	for i, row := range tab.Rows {
		rp := fmt.Sprintf("%s[%d]", name, i)
		if len(row) != len(tab.Columns) {
			return ir.EncodingErr(rp, "row has %d cells, table has %d columns", len(row), len(tab.Columns))
		}
		es.line.reset()
		first := true
		for j, col := range tab.Columns {
			cp := ir.JoinPath(rp, col.Name)
			v := row[j]
			if v == nil {
				return ir.EncodingErr(cp, "missing cell")
			}
			if col.Hint == ir.HintAutoIncrement {
				if v.Type != ir.IntType || v.Int != int64(i+1) {
					return ir.EncodingErr(cp, "auto-increment cell must be %d", i+1)
				}
				continue
			}
			var above *ir.Value
			if i > 0 {
				above = tab.Rows[i-1][j]
			}
			s, err := es.cell(cp, v, col.Hint, j == vacuum, above)
			if err != nil {
				return err
			}
			if !first {
				es.line.add(ir.TableType, SepColor, " ")
			}
			first = false
			es.line.add(v.Type, ValueColor, s)
		}
		if k := token.Classify([]byte(es.line.String()), true).Kind; k != token.KindRow {
			return ir.EncodingErr(rp, "row would read back as a %s statement", k)
		}
		es.flush()
	}
	return nil
}

func (es *EncState) cell(path string, v *ir.Value, hint ir.Hint, vacuum bool, above *ir.Value) (string, error) {
	if above != nil && ir.Equal(v, above) {
		if es.ditto {
			return "_", nil
		}
	}
	if v.Type == ir.StringType && v.String == "_" {
		// only a ditto can carry a literal underscore
		if above == nil || !ir.Equal(v, above) {
			return "", ir.EncodingErr(path, "%q reads back as a ditto mark", v.String)
		}
		return "_", nil
	}
	if v.Type == ir.NullType && hint != ir.HintAuto {
		return "", ir.EncodingErr(path, "null requires an auto column, not %s", hint)
	}
	switch hint {
	case ir.HintString:
		if v.Type != ir.StringType {
			return "", ir.EncodingErr(path, "%s in a string column", v.Type)
		}
		s := v.String
		if err := checkCellMarks(path, s); err != nil {
			return "", err
		}
		if vacuum {
			return s, checkVacuum(path, s)
		}
		if s == "" || strings.ContainsAny(s, " \t\r\n") {
			return "", ir.EncodingErr(path, "%q must be non-empty without blanks outside the first string column", s)
		}
		return s, nil
	case ir.HintInt:
		if v.Type != ir.IntType {
			return "", ir.EncodingErr(path, "%s in an int column", v.Type)
		}
		return strconv.FormatInt(v.Int, 10), nil
	case ir.HintFloat:
		if v.Type != ir.FloatType {
			return "", ir.EncodingErr(path, "%s in a float column", v.Type)
		}
		return lexical(path, v, ctxCell)
	case ir.HintBool:
		if v.Type != ir.BoolType {
			return "", ir.EncodingErr(path, "%s in a bool column", v.Type)
		}
		return boolSigil(v.Bool), nil
	case ir.HintBase62:
		if v.Type != ir.IntType || v.Int < 0 {
			return "", ir.EncodingErr(path, "base62 cells must be non-negative ints")
		}
		return ir.EncodeBase62(uint64(v.Int)), nil
	case ir.HintAuto:
		return lexical(path, v, ctxCell)
	default:
		return "", ir.EncodingErr(path, "unknown hint %s", hint)
	}
}

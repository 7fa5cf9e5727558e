package human

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/token"
)

const (
	checkMark = "✓"
	crossMark = "✗"
	boxBar    = "│"
	asciiBar  = "|"
)

// scalar renders a leaf. bar is the cell separator when v sits in a box
// drawn table, empty otherwise.
func (r *renderer) scalar(path string, v *ir.Value, bar string) (string, error) {
	switch v.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		switch {
		case r.cfg.unicode && v.Bool:
			return checkMark, nil
		case r.cfg.unicode:
			return crossMark, nil
		case v.Bool:
			return "true", nil
		default:
			return "false", nil
		}
	case ir.IntType:
		return strconv.FormatInt(v.Int, 10), nil
	case ir.FloatType:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return "", ir.EncodingErr(path, "%v has no human form", v.Float)
		}
		return token.FormatFloat(v.Float), nil
	case ir.StringType:
		if !r.cfg.smart || needsQuote(v.String, bar) {
			return strconv.Quote(v.String), nil
		}
		return v.String, nil
	default:
		return "", ir.EncodingErr(path, "%s is not a scalar", v.Type)
	}
}

// needsQuote reports whether s would not read back as itself unquoted.
func needsQuote(s, bar string) bool {
	if s == "" || !utf8.ValidString(s) {
		return true
	}
	if readsAs(s) != ir.StringType {
		return true
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	switch s[0] {
	case '"', '!', '#':
		return true
	}
	if strings.Contains(s, boxBar) {
		return true
	}
	if bar != "" && strings.ContainsAny(s, bar+`"`) {
		return true
	}
	return strings.IndexFunc(s, unicode.IsControl) != -1
}

func readsAs(s string) ir.Type {
	switch s {
	case "null", "~":
		return ir.NullType
	case "true", "false", checkMark, crossMark:
		return ir.BoolType
	}
	switch {
	case token.IsInt([]byte(s)):
		return ir.IntType
	case token.IsFloat([]byte(s)):
		return ir.FloatType
	}
	return ir.StringType
}

// readScalar is the inverse of scalar.
func readScalar(text string) (*ir.Value, error) {
	if strings.HasPrefix(text, `"`) {
		s, err := strconv.Unquote(text)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	switch readsAs(text) {
	case ir.NullType:
		return ir.Null(), nil
	case ir.BoolType:
		return ir.FromBool(text == "true" || text == checkMark), nil
	case ir.IntType:
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(f), nil
	case ir.FloatType:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(f), nil
	}
	return ir.FromString(text), nil
}

// readCell reads a table cell under its column hint. Unquoted text in a
// string column is taken verbatim.
func readCell(text string, hint ir.Hint) (*ir.Value, error) {
	if hint == ir.HintString && !strings.HasPrefix(text, `"`) {
		return ir.FromString(text), nil
	}
	v, err := readScalar(text)
	if err != nil {
		return nil, err
	}
	ok := false
	switch hint {
	case ir.HintString:
		ok = v.Type == ir.StringType
	case ir.HintInt:
		ok = v.Type == ir.IntType
	case ir.HintFloat:
		if v.Type == ir.IntType {
			v = ir.FromFloat(float64(v.Int))
		}
		ok = v.Type == ir.FloatType
	case ir.HintBool:
		ok = v.Type == ir.BoolType
	case ir.HintBase62:
		ok = v.Type == ir.IntType && v.Int >= 0
	case ir.HintAuto:
		ok = true
	}
	if !ok {
		return nil, ir.ErrSchemaMismatch
	}
	return v, nil
}

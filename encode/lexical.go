package encode

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/token"
)

type context int

const (
	ctxRecord context = iota
	ctxStream
	ctxCell
	ctxGhost
)

// sep is the byte which ends a value in the context.
func (c context) sep() string {
	switch c {
	case ctxRecord:
		return "^"
	case ctxStream, ctxGhost:
		return "|"
	default:
		return " \t"
	}
}

func boolSigil(b bool) string {
	if b {
		return "+"
	}
	return "-"
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

// lexical renders a scalar so that lexical inference reads back the same
// value in context c.
func lexical(path string, v *ir.Value, c context) (string, error) {
	switch v.Type {
	case ir.NullType:
		return "~", nil
	case ir.BoolType:
		return boolSigil(v.Bool), nil
	case ir.IntType:
		return strconv.FormatInt(v.Int, 10), nil
	case ir.FloatType:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return "", ir.EncodingErr(path, "%v has no dense form", v.Float)
		}
		return token.FormatFloat(v.Float), nil
	case ir.StringType:
		s := v.String
		if !utf8.ValidString(s) {
			return "", ir.EncodingErr(path, "string %q is not valid UTF-8", s)
		}
		if k := token.InferString(s); k != token.LitString {
			return "", ir.EncodingErr(path, "string %q would read back as %s", s, k)
		}
		if c == ctxCell {
			if s == "" {
				return "", ir.EncodingErr(path, "empty cell")
			}
			if err := checkCellMarks(path, s); err != nil {
				return "", err
			}
		}
		if err := checkReserved(path, s, c); err != nil {
			return "", err
		}
		return s, nil
	default:
		return "", ir.EncodingErr(path, "%s is not a scalar", v.Type)
	}
}

// checkReserved rejects line breaks, the context separator and blanks the
// parser would trim.
func checkReserved(path, s string, c context) error {
	if strings.ContainsAny(s, "\r\n") {
		return ir.EncodingErr(path, "%q contains a line break", s)
	}
	if strings.ContainsAny(s, c.sep()) {
		return ir.EncodingErr(path, "%q contains a reserved separator %q", s, c.sep())
	}
	if s != "" && (token.IsBlank(s[0]) || token.IsBlank(s[len(s)-1])) {
		return ir.EncodingErr(path, "%q has surrounding blanks", s)
	}
	return nil
}

// checkCellMarks rejects cells which read back as ditto marks.
func checkCellMarks(path, s string) error {
	if s == "_" || s == `"` {
		return ir.EncodingErr(path, "%q reads back as a ditto mark", s)
	}
	if !utf8.ValidString(s) {
		return ir.EncodingErr(path, "string %q is not valid UTF-8", s)
	}
	return nil
}

// checkVacuum requires s to survive a blank split and a single space join.
func checkVacuum(path, s string) error {
	if s == "" {
		return ir.EncodingErr(path, "empty cell")
	}
	if strings.ContainsAny(s, "\t\r\n") {
		return ir.EncodingErr(path, "%q contains a tab or line break", s)
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' || strings.Contains(s, "  ") {
		return ir.EncodingErr(path, "%q must have single inner spaces only", s)
	}
	return nil
}

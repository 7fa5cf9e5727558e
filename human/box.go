package human

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/ir"
)

// rules holds the drawing characters of a grid.
type rules struct {
	h, v       string
	tl, tm, tr string
	ml, mm, mr string
	bl, bm, br string
}

var (
	unicodeRules = rules{
		h: "─", v: boxBar,
		tl: "┌", tm: "┬", tr: "┐",
		ml: "├", mm: "┼", mr: "┤",
		bl: "└", bm: "┴", br: "┘",
	}
	asciiRules = rules{
		h: "-", v: asciiBar,
		tl: "+", tm: "+", tr: "+",
		ml: "+", mm: "+", mr: "+",
		bl: "+", bm: "+", br: "+",
	}
)

func (r *renderer) rules() rules {
	if r.cfg.unicode {
		return unicodeRules
	}
	return asciiRules
}

// grid writes tab as a box drawn grid whose first row names the columns.
func (r *renderer) grid(name string, tab *ir.Table) error {
	rs := r.rules()
	cells := make([][]string, 0, len(tab.Rows)+1)
	head := make([]string, len(tab.Columns))
	for j, c := range tab.Columns {
		head[j] = c.Name
	}
	cells = append(cells, head)
	for i, row := range tab.Rows {
		if len(row) != len(tab.Columns) {
			return ir.EncodingErr(fmt.Sprintf("%s[%d]", name, i), "row has %d cells, table has %d columns", len(row), len(tab.Columns))
		}
		line := make([]string, len(row))
		for j, v := range row {
			s, err := r.scalar(fmt.Sprintf("%s[%d].%s", name, i, tab.Columns[j].Name), v, rs.v)
			if err != nil {
				return err
			}
			line[j] = s
		}
		cells = append(cells, line)
	}
	widths := make([]int, len(tab.Columns))
	for _, line := range cells {
		for j, s := range line {
			widths[j] = max(widths[j], utf8.RuneCountInString(s))
		}
	}
	rule := func(l, m, rt string) {
		segs := make([]string, len(widths))
		for j, w := range widths {
			segs[j] = strings.Repeat(rs.h, w+2)
		}
		r.line(r.color(ir.TableType, encode.SepColor, l+strings.Join(segs, m)+rt))
	}
	bar := r.color(ir.TableType, encode.SepColor, rs.v)
	rule(rs.tl, rs.tm, rs.tr)
	for i, line := range cells {
		var b strings.Builder
		b.WriteString(bar)
		for j, s := range line {
			b.WriteByte(' ')
			switch {
			case i == 0:
				b.WriteString(r.color(ir.TableType, encode.FieldColor, s))
			default:
				b.WriteString(r.color(tab.Rows[i-1][j].Type, encode.ValueColor, s))
			}
			b.WriteString(pad(s, widths[j]))
			b.WriteByte(' ')
			b.WriteString(bar)
		}
		r.line(b.String())
		if i == 0 {
			rule(rs.ml, rs.mm, rs.mr)
		}
	}
	rule(rs.bl, rs.bm, rs.br)
	return nil
}

func isRule(line string) bool {
	switch {
	case strings.HasPrefix(line, unicodeRules.tl),
		strings.HasPrefix(line, unicodeRules.ml),
		strings.HasPrefix(line, unicodeRules.bl),
		strings.HasPrefix(line, asciiRules.tl):
		return true
	}
	return false
}

// gridBar returns the cell separator line starts with, or "".
func gridBar(line string) string {
	switch {
	case strings.HasPrefix(line, boxBar):
		return boxBar
	case strings.HasPrefix(line, asciiBar):
		return asciiBar
	}
	return ""
}

// splitGrid splits a grid row on bar outside of quoted cells. The row must
// start and end with bar.
func splitGrid(line, bar string) ([]string, error) {
	if !strings.HasPrefix(line, bar) || !strings.HasSuffix(line, bar) || len(line) < 2*len(bar) {
		return nil, fmt.Errorf("grid row must start and end with %q", bar)
	}
	body := line[len(bar) : len(line)-len(bar)]
	var res []string
	start, quoted := 0, false
	for i := 0; i < len(body); i++ {
		switch {
		case quoted && body[i] == '\\':
			i++
		case body[i] == '"':
			quoted = !quoted
		case !quoted && strings.HasPrefix(body[i:], bar):
			res = append(res, strings.TrimSpace(body[start:i]))
			i += len(bar) - 1
			start = i + 1
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quoted cell")
	}
	return append(res, strings.TrimSpace(body[start:])), nil
}

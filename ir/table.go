package ir

import "fmt"

// Hint is the declared type of a table column.
type Hint int

const (
	HintString Hint = iota
	HintInt
	HintFloat
	HintBool
	HintBase62
	HintAutoIncrement
	HintAuto
)

var hintLetters = map[Hint]byte{
	HintString:        's',
	HintInt:           'i',
	HintFloat:         'f',
	HintBool:          'b',
	HintBase62:        'x',
	HintAutoIncrement: '#',
	HintAuto:          'a',
}

var hintNames = map[Hint]string{
	HintString:        "string",
	HintInt:           "int",
	HintFloat:         "float",
	HintBool:          "bool",
	HintBase62:        "base62",
	HintAutoIncrement: "autoinc",
	HintAuto:          "auto",
}

// Letter is the dense suffix character following '%'.
func (h Hint) Letter() byte {
	return hintLetters[h]
}

func (h Hint) String() string {
	s, ok := hintNames[h]
	if ok {
		return s
	}
	return "<unknown hint>"
}

// HintFromLetter resolves a dense hint suffix.
func HintFromLetter(c byte) (Hint, bool) {
	for h, l := range hintLetters {
		if l == c {
			return h, true
		}
	}
	return 0, false
}

// HintFromName resolves a human hint name.
func HintFromName(s string) (Hint, bool) {
	for h, n := range hintNames {
		if n == s {
			return h, true
		}
	}
	return 0, false
}

type Column struct {
	Name string
	Hint Hint
}

func (c Column) String() string {
	return fmt.Sprintf("%s%%%c", c.Name, c.Hint.Letter())
}

type Table struct {
	Columns []Column
	Rows    [][]*Value
}

func NewTable(cols ...Column) *Table {
	return &Table{Columns: cols}
}

// ColumnIndex returns the position of the named column or -1.
func (t *Table) ColumnIndex(name string) int {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

// DataColumns is the number of columns that appear in row text.
func (t *Table) DataColumns() int {
	n := 0
	for i := range t.Columns {
		if t.Columns[i].Hint != HintAutoIncrement {
			n++
		}
	}
	return n
}

// Cell returns the value of column name in row i, or nil.
func (t *Table) Cell(i int, name string) *Value {
	j := t.ColumnIndex(name)
	if j == -1 || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i][j]
}

// RowRecord renders row i as a keyed record.
func (t *Table) RowRecord(i int) *Value {
	res := NewRecord()
	for j, c := range t.Columns {
		res.Fields = append(res.Fields, &Field{Name: c.Name, Value: t.Rows[i][j]})
	}
	return res
}

// AppendRow adds a row, checking it is rectangular.
func (t *Table) AppendRow(row []*Value) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("%w: row has %d values, schema has %d columns", ErrSchemaMismatch, len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	res := &Table{
		Columns: append([]Column(nil), t.Columns...),
		Rows:    make([][]*Value, len(t.Rows)),
	}
	for i, row := range t.Rows {
		nr := make([]*Value, len(row))
		for j, v := range row {
			nr[j] = v.Clone()
		}
		res.Rows[i] = nr
	}
	return res
}

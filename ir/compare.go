package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case FloatType:
		return cmp.Compare(a.Float, b.Float)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareSlices(a.Items, b.Items)
	case RecordType:
		return compareRecords(a, b)
	case TableType:
		return compareTables(a.Table, b.Table)
	}
	return 0
}

// Equal reports whether a and b hold the same data.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Float < String < Array < Record < Table
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case RecordType:
		return 6
	case TableType:
		return 7
	}
	return 100
}

func compareSlices(a, b []*Value) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// compareRecords is order sensitive: records keep insertion order and two
// records with the same fields in a different order are distinct documents.
func compareRecords(a, b *Value) int {
	minLen := min(len(a.Fields), len(b.Fields))
	for i := 0; i < minLen; i++ {
		fa, fb := a.Fields[i], b.Fields[i]
		if c := strings.Compare(fa.Name, fb.Name); c != 0 {
			return c
		}
		if c := Compare(fa.Value, fb.Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}

func compareTables(a, b *Table) int {
	minCols := min(len(a.Columns), len(b.Columns))
	for i := 0; i < minCols; i++ {
		ca, cb := a.Columns[i], b.Columns[i]
		if c := strings.Compare(ca.Name, cb.Name); c != 0 {
			return c
		}
		if c := cmp.Compare(ca.Hint, cb.Hint); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a.Columns), len(b.Columns)); c != 0 {
		return c
	}
	minRows := min(len(a.Rows), len(b.Rows))
	for i := 0; i < minRows; i++ {
		if c := compareSlices(a.Rows[i], b.Rows[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Rows), len(b.Rows))
}

// CompareDocuments compares binding by binding. Comments are ignored.
func CompareDocuments(a, b *Document) int {
	minLen := min(len(a.Bindings), len(b.Bindings))
	for i := 0; i < minLen; i++ {
		ba, bb := a.Bindings[i], b.Bindings[i]
		if c := strings.Compare(ba.Name, bb.Name); c != 0 {
			return c
		}
		if c := Compare(ba.Value, bb.Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Bindings), len(b.Bindings))
}

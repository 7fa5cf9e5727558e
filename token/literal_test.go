package token

import (
	"testing"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		in    string
		kind  LitKind
		name  string
		value string
	}{
		{"+", LitTrue, "", ""},
		{"-", LitFalse, "", ""},
		{"~", LitNull, "", ""},
		{"42", LitInt, "", ""},
		{"-7", LitInt, "", ""},
		{"007", LitInt, "", ""},
		{"7.5", LitFloat, "", ""},
		{"-1e10", LitFloat, "", ""},
		{"2.5E-3", LitFloat, "", ""},
		{"1.", LitString, "", ""},
		{".5", LitString, "", ""},
		{"1e", LitString, "", ""},
		{"+1", LitString, "", ""},
		{"--", LitString, "", ""},
		{"", LitString, "", ""},
		{"Boulder", LitString, "", ""},
		{"spring_2025", LitString, "", ""},
		{"$loc", LitAliasRef, "loc", ""},
		{"$loc:Boulder", LitAliasDef, "loc", "Boulder"},
		{"$loc:", LitAliasDef, "loc", ""},
		{"$", LitString, "", ""},
		{"$.x", LitString, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lit := Infer([]byte(tt.in))
			if lit.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", lit.Kind, tt.kind)
			}
			if string(lit.Name) != tt.name {
				t.Errorf("name = %q, want %q", lit.Name, tt.name)
			}
			if string(lit.Value) != tt.value {
				t.Errorf("value = %q, want %q", lit.Value, tt.value)
			}
			if lit.Kind == LitAliasDef && tt.in[lit.ValueOff:] != tt.value {
				t.Errorf("ValueOff %d is wrong", lit.ValueOff)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		7.5:   "7.5",
		1:     "1.0",
		-3:    "-3.0",
		1e21:  "1e+21",
		0.001: "0.001",
	}
	for f, want := range tests {
		got := FormatFloat(f)
		if got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", f, got, want)
		}
		if !IsFloat([]byte(got)) {
			t.Errorf("%q does not read back as a float", got)
		}
	}
}

func TestCellsAndSplit(t *testing.T) {
	cells := Cells([]byte("  Blue  Lake\t7.5 "), 3, nil)
	want := []Cell{{[]byte("Blue"), 5}, {[]byte("Lake"), 11}, {[]byte("7.5"), 16}}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells", len(cells))
	}
	for i := range want {
		if string(cells[i].Text) != string(want[i].Text) || cells[i].Off != want[i].Off {
			t.Errorf("cell %d: got %q@%d, want %q@%d", i, cells[i].Text, cells[i].Off, want[i].Text, want[i].Off)
		}
	}
	parts := Split([]byte("a||b"), '|', 0, nil)
	if len(parts) != 3 || string(parts[1].Text) != "" || parts[2].Off != 3 {
		t.Errorf("bad split %v", parts)
	}
	if parts := Split(nil, '|', 0, nil); len(parts) != 0 {
		t.Errorf("empty input split into %d parts", len(parts))
	}
}

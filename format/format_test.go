package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"dx":    DenseFormat,
		"human": HumanFormat,
		"j":     JSONFormat,
		"yml":   YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestText(t *testing.T) {
	for _, f := range []Format{DenseFormat, HumanFormat, JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil || g != f {
			t.Errorf("%s: got %v, %v", f, g, err)
		}
	}
}

func TestFromPath(t *testing.T) {
	for in, want := range map[string]Format{
		"a/b.dx":     DenseFormat,
		"b.dxh":      HumanFormat,
		"c.json":     JSONFormat,
		"d.yaml":     YAMLFormat,
		"noext":      DenseFormat,
		"weird.toml": DenseFormat,
	} {
		if got := FromPath(in); got != want {
			t.Errorf("FromPath(%q) = %v, want %v", in, got, want)
		}
		if got := FromPath("x" + want.Suffix()); got != want {
			t.Errorf("suffix %q does not map back to %v", want.Suffix(), want)
		}
	}
}

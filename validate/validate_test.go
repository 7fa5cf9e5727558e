package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/parse"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		in   string
		want Result
	}{
		{in: "c.a:1^b:2\nf>x|y\n", want: Result{Success: true}},
		{in: "", want: Result{Success: true}},
		{in: "c.a:1\nnonsense\n", want: Result{Line: 2, Column: 1}},
		{in: "r.k:$nope\n", want: Result{Line: 1, Column: 5}},
		{in: "t=a%i\nx\n", want: Result{Line: 2, Column: 1}},
		{in: "$a:1\n$a:2\n", want: Result{Line: 2, Column: 2}},
		{in: "c.a:1\nc.b:é\xff\n", want: Result{Line: 2, Column: 6}},
		{in: "c.a:99999999999999999999\n", want: Result{Success: true}},
	}
	for _, c := range cases {
		got := Validate(c.in)
		got.Error, got.Hint = "", ""
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestValidateMessages(t *testing.T) {
	res := Validate("t=a%i b%i\n1\n")
	if res.Success || res.Error == "" || res.Hint == "" {
		t.Errorf("got %+v", res)
	}
	res = Validate("aaaa", parse.WithLimits(parse.Limits{MaxInputSize: 2}))
	if res.Success || res.Line != 0 || res.Hint != hints[ir.ErrInputTooLarge] {
		t.Errorf("got %+v", res)
	}
}

func TestIsSaveable(t *testing.T) {
	cases := map[string]bool{
		"":                         true,
		"# only a comment":         true,
		"$x:":                      false,
		"$x:42":                    true,
		"$x":                       false,
		"t=a%i\n":                  false,
		"t=a%i\n\n# c\n":           false,
		"t=a%i\n1\n":               true,
		"t=":                       false,
		".=a:i\n":                  false,
		".=a:i\n# c\n":             false,
		".=a:i\n1\n":               true,
		"r.k":                      false,
		"r.k:":                     false,
		"r.k:v^":                   false,
		"r.k:v^j":                  false,
		"r.k:v^j:w":                true,
		"r.k:v\n^":                 false,
		"s>":                       true,
		"s>a|":                     false,
		"s>a|b":                    true,
		"x:":                       false,
		"x:1":                      true,
		"r.k:caf\xc3":              false,
		"r.k:café":                 true,
		"t=a%s\nsome row\n":        true,
		"hello":                    false,
		"r.k:v\nr.k2":              false,
		"hello world":              true,
		"r.k:v\n  not a statement": true,
	}
	for in, want := range cases {
		if got := IsSaveable(in); got != want {
			t.Errorf("IsSaveable(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsSaveableAllocs(t *testing.T) {
	in := "c.task:Our favorite hikes together^loc:Boulder\nf>ana|luis\nh=id%# n%s\nBlue Lake Trail\n$x:"
	if n := testing.AllocsPerRun(100, func() { IsSaveable(in) }); n != 0 {
		t.Errorf("IsSaveable allocated %v times", n)
	}
}

func TestLimits(t *testing.T) {
	if MaxInputSize() != 100<<20 || MaxTableRows() != 10_000_000 || MaxRecursionDepth() != 1000 {
		t.Errorf("got %d %d %d", MaxInputSize(), MaxTableRows(), MaxRecursionDepth())
	}
}

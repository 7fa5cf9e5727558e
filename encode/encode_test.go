package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/parse"
)

const hikes = `c.task:Our favorite hikes together^loc:Boulder^seas:spring_2025
f>ana|luis|sam
h=id%# n%s k%f g%x w%s sun%b
Blue Lake Trail 7.5 5A ana +
Ridge Overlook 9.2 8i luis -
`

func TestEncodeHikes(t *testing.T) {
	doc, err := parse.ParseString(hikes)
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeBytes(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(hikes, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	ins := []string{
		hikes,
		".=name:s age:i ok:b\nbob|42|+\n",
		".=title\nA Long Title\n",
		".=x:f n:a\n1.5|~\n",
		"a.b.c:1^b.d:x y^e:~\n",
		"a.x:1\n^y:2\n",
		"s>1|2.0|+|~|word|with space\n",
		"s>\n",
		"$z:zero\nr.k:$z\n",
		"t=a%a b%s\n~ x\n+ x\n1 some text here\n",
		"t=n%i m%s\n1 a\n1 a\n2 b\n",
		"t=g%x\n0\nzz\n",
		"# head\nr.k:v\n# tail\n",
		"x:1\ny:two\n",
	}
	for _, in := range ins {
		doc, err := parse.ParseString(in)
		if err != nil {
			t.Errorf("parse %q: %v", in, err)
			continue
		}
		for _, ditto := range []bool{true, false} {
			d, err := EncodeBytes(doc, EncodeDitto(ditto))
			if err != nil {
				t.Errorf("encode %q: %v", in, err)
				continue
			}
			back, err := parse.Parse(d)
			if err != nil {
				t.Errorf("reparse %q from %q: %v", d, in, err)
				continue
			}
			if ir.CompareDocuments(doc, back) != 0 {
				t.Errorf("%q encoded as %q reads back differently", in, d)
			}
		}
	}
}

func TestDitto(t *testing.T) {
	doc, err := parse.ParseString("t=n%i m%s\n1 a\n1 a\n2 a\n")
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeBytes(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("t=n%i m%s\n1 a\n_ _\n2 _\n", string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err = EncodeBytes(doc, EncodeDitto(false))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("t=n%i m%s\n1 a\n1 a\n2 a\n", string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestComments(t *testing.T) {
	in := "# one\n#\nr.k:v\n# end\n"
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeBytes(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err = EncodeBytes(doc, EncodeComments(false))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("r.k:v\n", string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func rec(kv ...any) *ir.Value {
	v := ir.NewRecord()
	for i := 0; i < len(kv); i += 2 {
		v.Set(kv[i].(string), kv[i+1].(*ir.Value))
	}
	return v
}

func oneTable(cols []ir.Column, rows ...[]*ir.Value) *ir.Document {
	d := ir.NewDocument()
	d.Bind("t", ir.FromTable(&ir.Table{Columns: cols, Rows: rows}))
	return d
}

func TestEncodingErrors(t *testing.T) {
	str := ir.FromString
	s := []ir.Column{{Name: "a", Hint: ir.HintString}, {Name: "b", Hint: ir.HintString}}
	cases := map[string]*ir.Document{
		"caret in record": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("r", rec("k", str("a^b")))
			return d
		}(),
		"pipe in stream": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("s", ir.FromSlice([]*ir.Value{str("a|b")}))
			return d
		}(),
		"numeric string": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("r", rec("k", str("42")))
			return d
		}(),
		"sigil string": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("s", ir.FromSlice([]*ir.Value{str("~")}))
			return d
		}(),
		"alias string": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("r", rec("k", str("$x")))
			return d
		}(),
		"nan": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("r", rec("k", ir.FromFloat(math.NaN())))
			return d
		}(),
		"invalid utf8": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("r", rec("k", str("ok\xff")))
			return d
		}(),
		"invalid utf8 cell": func() *ir.Document {
			d := ir.NewDocument()
			tab := ir.NewTable(s...)
			tab.Rows = [][]*ir.Value{{str("x"), str("\xc3")}}
			d.Bind("t", ir.FromTable(tab))
			return d
		}(),
		"newline": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("r", rec("k", str("a\nb")))
			return d
		}(),
		"lone empty stream item": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("s", ir.FromSlice([]*ir.Value{str("")}))
			return d
		}(),
		"empty record": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("r", ir.NewRecord())
			return d
		}(),
		"array in record": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("r", rec("k", ir.FromSlice(nil)))
			return d
		}(),
		"nested root": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind(ir.RootName, rec("k", rec("x", ir.FromInt(1))))
			return d
		}(),
		"root hash": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind(ir.RootName, rec("k", str("#x"), "j", str("y")))
			return d
		}(),
		"scalar binding": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("x", ir.FromInt(1))
			return d
		}(),
		"bad name": func() *ir.Document {
			d := ir.NewDocument()
			d.Bind("a.b", rec("k", ir.FromInt(1)))
			return d
		}(),
		"blank outside vacuum": oneTable(s, []*ir.Value{str("x"), str("y z")}),
		"double space vacuum":  oneTable(s, []*ir.Value{str("x  y"), str("z")}),
		"quote cell":           oneTable(s, []*ir.Value{str(`"`), str("z")}),
		"underscore cell":      oneTable(s, []*ir.Value{str("_"), str("z")}),
		"empty cell":           oneTable(s, []*ir.Value{str(""), str("z")}),
		"row as header":        oneTable(s, []*ir.Value{str("x"), str("y")}, []*ir.Value{str("#c"), str("y")}),
		"row as record":        oneTable(s, []*ir.Value{str("q.k:v"), str("y")}),
		"wrong type": oneTable([]ir.Column{{Name: "n", Hint: ir.HintInt}},
			[]*ir.Value{str("x")}),
		"null in typed": oneTable([]ir.Column{{Name: "n", Hint: ir.HintInt}},
			[]*ir.Value{ir.Null()}),
		"negative base62": oneTable([]ir.Column{{Name: "n", Hint: ir.HintBase62}},
			[]*ir.Value{ir.FromInt(-1)}),
		"bad autoinc": oneTable([]ir.Column{{Name: "id", Hint: ir.HintAutoIncrement}, {Name: "n", Hint: ir.HintInt}},
			[]*ir.Value{ir.FromInt(7), ir.FromInt(1)}),
		"auto blank": oneTable([]ir.Column{{Name: "n", Hint: ir.HintAuto}},
			[]*ir.Value{str("a b")}),
		"short row": oneTable(s, []*ir.Value{str("x")}),
	}
	for name, doc := range cases {
		var out strings.Builder
		err := Encode(doc, &out)
		if !errors.Is(err, ir.ErrEncoding) {
			t.Errorf("%s: got %v, want encoding error", name, err)
		}
		if out.Len() != 0 {
			t.Errorf("%s: wrote %q on error", name, out.String())
		}
	}
}

func TestMaxDepth(t *testing.T) {
	d := ir.NewDocument()
	d.Bind("r", rec("a", rec("b", rec("c", ir.FromInt(1)))))
	if _, err := EncodeBytes(d, MaxDepth(3)); !errors.Is(err, ir.ErrRecursionTooDeep) {
		t.Errorf("got %v, want recursion error", err)
	}
	if _, err := EncodeBytes(d, MaxDepth(4)); err != nil {
		t.Error(err)
	}
}

func TestColors(t *testing.T) {
	doc, err := parse.ParseString(hikes)
	if err != nil {
		t.Fatal(err)
	}
	colors := NewColors()
	colors.Map = nil
	got, err := EncodeBytes(doc, EncodeColors(colors))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != hikes {
		t.Errorf("default colors changed output: %q", got)
	}
	if _, err := EncodeBytes(doc, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
}

package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dx-format/go-dx/ir"
)

const hikes = `c.task:Our favorite hikes together^loc:Boulder^seas:spring_2025
f>ana|luis|sam
h=id%# n%s k%f g%x w%s sun%b
Blue Lake Trail 7.5 5A ana +
Ridge Overlook 9.2 8i luis -
`

func row(vals ...*ir.Value) []*ir.Value { return vals }

func hikesTable() *ir.Table {
	return &ir.Table{
		Columns: []ir.Column{
			{Name: "id", Hint: ir.HintAutoIncrement},
			{Name: "n", Hint: ir.HintString},
			{Name: "k", Hint: ir.HintFloat},
			{Name: "g", Hint: ir.HintBase62},
			{Name: "w", Hint: ir.HintString},
			{Name: "sun", Hint: ir.HintBool},
		},
		Rows: [][]*ir.Value{
			row(ir.FromInt(1), ir.FromString("Blue Lake Trail"), ir.FromFloat(7.5), ir.FromInt(320), ir.FromString("ana"), ir.FromBool(true)),
			row(ir.FromInt(2), ir.FromString("Ridge Overlook"), ir.FromFloat(9.2), ir.FromInt(540), ir.FromString("luis"), ir.FromBool(false)),
		},
	}
}

func TestParseHikes(t *testing.T) {
	doc, err := ParseString(hikes)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.NewDocument()
	want.Bind("c", ir.FromFields(
		&ir.Field{Name: "task", Value: ir.FromString("Our favorite hikes together")},
		&ir.Field{Name: "loc", Value: ir.FromString("Boulder")},
		&ir.Field{Name: "seas", Value: ir.FromString("spring_2025")},
	))
	want.Bind("f", ir.FromSlice([]*ir.Value{ir.FromString("ana"), ir.FromString("luis"), ir.FromString("sam")}))
	want.Bind("h", ir.FromTable(hikesTable()))
	if ir.CompareDocuments(doc, want) != 0 {
		t.Errorf("got bindings %v", doc.Names())
		for _, b := range doc.Bindings {
			if w := want.Get(b.Name); !ir.Equal(w, b.Value) {
				t.Errorf("binding %q differs", b.Name)
			}
		}
	}
}

type parseTest struct {
	in   string
	path string
	want *ir.Value
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: "a.x:1", path: "a.x", want: ir.FromInt(1)},
		{in: "a.x:-7", path: "a.x", want: ir.FromInt(-7)},
		{in: "a.x:2.5e3", path: "a.x", want: ir.FromFloat(2500)},
		{in: "a.x:+^y:-^z:~", path: "a.z", want: ir.Null()},
		{in: "a.x:+^y:-^z:~", path: "a.y", want: ir.FromBool(false)},
		{in: "a.x:hello world", path: "a.x", want: ir.FromString("hello world")},
		{in: "a.url:http://x.io:80/p", path: "a.url", want: ir.FromString("http://x.io:80/p")},
		{in: "a.x:", path: "a.x", want: ir.FromString("")},
		{in: "cfg.db.host:localhost^db.port:5432", path: "cfg.db.port", want: ir.FromInt(5432)},
		{in: "cfg.db.host:localhost\n^port:5432", path: "cfg.port", want: ir.FromInt(5432)},
		{in: "cfg.a:1\ncfg.b:2", path: "cfg.b", want: ir.FromInt(2)},
		{in: "f>", path: "f", want: ir.FromSlice(nil)},
		{in: "f>1|two|3.0|+", path: "f[2]", want: ir.FromFloat(3)},
		{in: "f>a||b", path: "f[1]", want: ir.FromString("")},
		{in: "$loc:Boulder\nc.loc:$loc", path: "c.loc", want: ir.FromString("Boulder")},
		{in: "c.loc:$loc:Boulder^again:$loc", path: "c.again", want: ir.FromString("Boulder")},
		{in: "$n:42\nf>$n|$n", path: "f[1]", want: ir.FromInt(42)},
		{in: "task:Our hikes\nyear:2025", path: "year", want: ir.FromInt(2025)},
		{in: ".=name:s age:i ok:b\nAlice Smith 30 +", path: "name", want: ir.FromString("Alice Smith")},
		{in: ".=name:s age:i ok:b\nAlice|30|+", path: "age", want: ir.FromInt(30)},
		{in: ".=name age:i\n# between\nBob 4", path: "age", want: ir.FromInt(4)},
		{in: ".=a:a b:a\n~|$x:7", path: "b", want: ir.FromInt(7)},
		{in: "t=n id%# v%i\nx 1\ny _", path: "t[1].v", want: ir.FromInt(1)},
		{in: "t=n id%# v%i\nx 1\ny _", path: "t[1].id", want: ir.FromInt(2)},
		{in: "t=v%a\n~\n+\n$q:3\n$q", path: "t[2].v", want: ir.FromInt(3)},
		{in: "t=v%f\n3", path: "t[0].v", want: ir.FromFloat(3)},
		{in: "t=v%x\n0", path: "t[0].v", want: ir.FromInt(0)},
		{in: "t=a%i b c%i\n1 lots of words 2", path: "t[0].b", want: ir.FromString("lots of words")},
		{in: "t=a%i\n1\n$z:9\n2", path: "t[1].a", want: ir.FromInt(2)},
		{in: "t=a%i\n1\n# note\n2", path: "t[1].a", want: ir.FromInt(2)},
		{in: "t=a%i\n1\nu=b%i\n5", path: "u[0].b", want: ir.FromInt(5)},
		{in: "t=a\n  x  \r\n", path: "t[0].a", want: ir.FromString("x")},
		{in: "a.x:99999999999999999999", path: "a.x", want: ir.FromFloat(1e20)},
		{in: "f>-99999999999999999999", path: "f[0]", want: ir.FromFloat(-1e20)},
		{in: "t=a%a\n99999999999999999999", path: "t[0].a", want: ir.FromFloat(1e20)},
		{in: "a.x:café", path: "a.x", want: ir.FromString("café")},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			doc, err := ParseString(pt.in)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			got, err := doc.Lookup(pt.path)
			if err != nil {
				t.Fatalf("lookup %s: %v", pt.path, err)
			}
			if !ir.Equal(got, pt.want) {
				t.Errorf("%s: got %s %v, want %s %v", pt.path, got.Type, got, pt.want.Type, pt.want)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "\n\n", "   \n\t\n"} {
		doc, err := ParseString(in)
		if err != nil {
			t.Fatal(err)
		}
		if len(doc.Bindings) != 0 {
			t.Errorf("%q: got %d bindings", in, len(doc.Bindings))
		}
	}
}

type errTest struct {
	in   string
	kind error
	line int
	col  int
}

func TestParseErrors(t *testing.T) {
	ets := []errTest{
		{"hello", ir.ErrSyntax, 1, 1},
		{"a.x:1\n  what is this", ir.ErrSyntax, 2, 3},
		{"$x", ir.ErrSyntax, 1, 1},
		{"$x:", ir.ErrSyntax, 1, 4},
		{"$x:1\n$x:2", ir.ErrDuplicateAlias, 2, 2},
		{"c.a:$nope", ir.ErrUnknownAlias, 1, 5},
		{"c.a:1\nc.a.b:2", ir.ErrSyntax, 2, 3},
		{"c.a.b:1\nc.a:2", ir.ErrSyntax, 2, 3},
		{"f>a\nf>b", ir.ErrSyntax, 2, 1},
		{"f>a\nf.x:1", ir.ErrSyntax, 2, 1},
		{"^x:1", ir.ErrSyntax, 1, 1},
		{"c.x:1^", ir.ErrSyntax, 1, 7},
		{"c.x:1^y", ir.ErrSyntax, 1, 8},
		{"t=", ir.ErrSyntax, 1, 3},
		{"t=id%#", ir.ErrSyntax, 1, 3},
		{"t=a a", ir.ErrSyntax, 1, 5},
		{"t=a%q", ir.ErrSyntax, 1, 5},
		{"t=a%", ir.ErrSyntax, 1, 5},
		{"t=a%i\nx", ir.ErrSchemaMismatch, 2, 1},
		{"t=a%b\n1", ir.ErrSchemaMismatch, 2, 1},
		{"t=a%x\n-1", ir.ErrSchemaMismatch, 2, 1},
		{"t=a%x\nzzzzzzzzzzzz", ir.ErrSchemaMismatch, 2, 1},
		{"t=a%i b%i\n1", ir.ErrSchemaMismatch, 2, 2},
		{"t=a%i b%i\n1 2 3", ir.ErrSchemaMismatch, 2, 5},
		{"t=a%i\n_", ir.ErrSchemaMismatch, 2, 1},
		{"t=a%i\n1\n\"", ir.ErrSyntax, 3, 1},
		{"t=a%i\n99999999999999999999", ir.ErrSchemaMismatch, 2, 1},
		{"c.a:1e999", ir.ErrSyntax, 1, 5},
		{"a.x:ok\xff\xfe", ir.ErrSyntax, 1, 7},
		{"f>café|\xc3", ir.ErrSyntax, 1, 8},
		{"# note \xff\nc.a:1", ir.ErrSyntax, 1, 8},
		{".=a:i", ir.ErrSyntax, 1, 1},
		{".=a:i b:i\n1|2|3", ir.ErrSchemaMismatch, 2, 1},
		{".=a:#\n1", ir.ErrSyntax, 1, 3},
		{".=a:i\n1\n.=b:i\n2", ir.ErrSyntax, 3, 1},
	}
	for _, et := range ets {
		t.Run(et.in, func(t *testing.T) {
			_, err := ParseString(et.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, et.kind) {
				t.Errorf("got %v, want kind %v", err, et.kind)
			}
			var se *ir.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("%v is not positioned", err)
			}
			if se.Line != et.line || se.Column != et.col {
				t.Errorf("%v: got %d:%d, want %d:%d", err, se.Line, se.Column, et.line, et.col)
			}
		})
	}
}

func TestAutoIncrementDeterminism(t *testing.T) {
	in := "t=id%# n\na\nb\nc\nu=id%# n\nx\n"
	var first []int64
	for i := 0; i < 2; i++ {
		doc, err := ParseString(in)
		if err != nil {
			t.Fatal(err)
		}
		var ids []int64
		for _, r := range doc.Get("t").Table.Rows {
			ids = append(ids, r[0].Int)
		}
		if diff := cmp.Diff([]int64{1, 2, 3}, ids); diff != "" {
			t.Errorf("ids (-want +got):\n%s", diff)
		}
		if i == 1 {
			if diff := cmp.Diff(first, ids); diff != "" {
				t.Errorf("second parse differs:\n%s", diff)
			}
		}
		first = ids
		if u := doc.Get("u").Table.Rows[0][0].Int; u != 1 {
			t.Errorf("second table starts at %d", u)
		}
	}
}

func TestAutoIncrementColumns(t *testing.T) {
	doc, err := ParseString("t=a%# b%# c%s\nx\ny\n")
	if err != nil {
		t.Fatal(err)
	}
	var got [][]int64
	for _, r := range doc.Get("t").Table.Rows {
		got = append(got, []int64{r[0].Int, r[1].Int})
	}
	if diff := cmp.Diff([][]int64{{1, 1}, {2, 2}}, got); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
}

func TestDitto(t *testing.T) {
	doc, err := ParseString("t=n%s k%f w\nBlue Lake 7.5 ana\nRidge _ _\n")
	if err != nil {
		t.Fatal(err)
	}
	tab := doc.Get("t").Table
	for j := range tab.Columns {
		if tab.Columns[j].Name == "n" {
			continue
		}
		if !ir.Equal(tab.Rows[0][j], tab.Rows[1][j]) {
			t.Errorf("column %s: %v != %v", tab.Columns[j].Name, tab.Rows[0][j], tab.Rows[1][j])
		}
	}
	// cells must not share storage
	tab.Rows[1][1].Float = 0
	if tab.Rows[0][1].Float != 7.5 {
		t.Error("ditto shares the value above")
	}
}

func TestComments(t *testing.T) {
	in := "# top\nc.a:1\n# for f\n# more\nf>x\nt=a\n# inside\nv\n# trailing\n"
	doc, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string][]string{}
	for _, b := range doc.Bindings {
		got[b.Name] = b.Comments
	}
	want := map[string][]string{
		"c": {"top"},
		"f": {"for f", "more"},
		"t": {"inside"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comments (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"trailing"}, doc.Trailing); diff != "" {
		t.Errorf("trailing (-want +got):\n%s", diff)
	}
	doc, err = ParseString(in, ParseComments(false))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Get("c").Fields) != 1 || doc.Bindings[0].Comments != nil || doc.Trailing != nil {
		t.Error("comments kept with ParseComments(false)")
	}
}

func TestGuards(t *testing.T) {
	lim := WithLimits(Limits{MaxInputSize: 32, MaxTableRows: 2, MaxRecursionDepth: 4})

	_, err := ParseString(strings.Repeat("a", 33), lim)
	if !errors.Is(err, ir.ErrInputTooLarge) {
		t.Errorf("size: got %v", err)
	}
	_, err = ParseReader(strings.NewReader(strings.Repeat("# comment\n", 1000)), lim)
	if !errors.Is(err, ir.ErrInputTooLarge) {
		t.Errorf("reader size: got %v", err)
	}
	_, err = ParseString("t=a\nx\ny\nz", lim)
	if !errors.Is(err, ir.ErrTooManyRows) {
		t.Errorf("rows: got %v", err)
	}
	if _, err = ParseString("t=a\nx\ny", lim); err != nil {
		t.Errorf("rows at limit: %v", err)
	}
	_, err = ParseString("c.a.b.c.d:1", lim)
	if !errors.Is(err, ir.ErrRecursionTooDeep) {
		t.Errorf("path depth: got %v", err)
	}
	_, err = ParseString("c.a:$a:$b:$c:$d:1", lim)
	if !errors.Is(err, ir.ErrRecursionTooDeep) {
		t.Errorf("alias depth: got %v", err)
	}
}

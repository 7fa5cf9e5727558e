package ir

import (
	"testing"
)

func pathDoc() *Document {
	d := NewDocument()
	d.Bind(RootName, FromFields(
		&Field{Name: "task", Value: FromString("Our favorite hikes together")},
		&Field{Name: "season", Value: FromString("spring_2025")},
	))
	d.Bind("friends", FromSlice([]*Value{FromString("ana"), FromString("luis")}))
	tab := NewTable(
		Column{Name: "id", Hint: HintAutoIncrement},
		Column{Name: "name", Hint: HintString},
		Column{Name: "km", Hint: HintFloat},
	)
	tab.Rows = [][]*Value{
		{FromInt(1), FromString("Blue Lake Trail"), FromFloat(7.5)},
		{FromInt(2), FromString("Ridge Overlook"), FromFloat(9.2)},
	}
	d.Bind("hikes", FromTable(tab))
	d.Bind("config", FromFields(
		&Field{Name: "db", Value: FromFields(&Field{Name: "host", Value: FromString("localhost")})},
	))
	return d
}

func TestLookup(t *testing.T) {
	d := pathDoc()
	tests := []struct {
		path string
		want *Value
	}{
		{"task", FromString("Our favorite hikes together")},
		{"$.season", FromString("spring_2025")},
		{"friends[1]", FromString("luis")},
		{"hikes[1].name", FromString("Ridge Overlook")},
		{"hikes[0].id", FromInt(1)},
		{"hikes.km", FromSlice([]*Value{FromFloat(7.5), FromFloat(9.2)})},
		{"config.db.host", FromString("localhost")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := d.Lookup(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupErrors(t *testing.T) {
	d := pathDoc()
	for _, p := range []string{"", "friends[5]", "hikes.nope", "config.db.port", "task[0]", "a..b", "x['y"} {
		if _, err := d.Lookup(p); err == nil {
			t.Errorf("Lookup(%q) expected error", p)
		}
	}
}

func TestPathString(t *testing.T) {
	for _, p := range []string{"$.a.b[0]", "$[3]", "$.'a.b'.c"} {
		pp, err := ParsePath(p)
		if err != nil {
			t.Fatal(err)
		}
		if got := pp.String(); got != p {
			t.Errorf("ParsePath(%q).String() = %q", p, got)
		}
	}
}

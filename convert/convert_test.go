package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dx-format/go-dx/ir"
)

const hikesJSON = `{
  "task": "Our favorite hikes together",
  "location": "Boulder",
  "friends": ["ana", "luis", "sam"],
  "hikes": [
    {"name": "Blue Lake Trail", "km": 7.5, "gain": 320, "sun": true},
    {"name": "Ridge Overlook", "km": 9, "gain": 540, "sun": false}
  ],
  "config": {"db": {"host": "localhost", "port": 5432}}
}`

func TestFromJSON(t *testing.T) {
	doc, err := FromJSON([]byte(hikesJSON))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Names(), []string{"", "friends", "hikes", "config"}; !cmp.Equal(got, want) {
		t.Fatalf("bindings %v, want %v", got, want)
	}
	root := doc.Root()
	if !ir.Equal(root.Get("location"), ir.FromString("Boulder")) {
		t.Errorf("location = %v", root.Get("location"))
	}
	hikes := doc.Get("hikes")
	if hikes.Type != ir.TableType {
		t.Fatalf("hikes is %s", hikes.Type)
	}
	hints := []ir.Hint{}
	for _, c := range hikes.Table.Columns {
		hints = append(hints, c.Hint)
	}
	if want := []ir.Hint{ir.HintString, ir.HintFloat, ir.HintInt, ir.HintBool}; !cmp.Equal(hints, want) {
		t.Errorf("hints %v, want %v", hints, want)
	}
	if km := hikes.Table.Cell(1, "km"); !ir.Equal(km, ir.FromFloat(9)) {
		t.Errorf("km widened to %v", km)
	}
	port, err := doc.Lookup("config.db.port")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(port, ir.FromInt(5432)) {
		t.Errorf("port = %v", port)
	}
}

func TestFromYAMLShape(t *testing.T) {
	for _, in := range []string{"- 1\n- 2\n", "42\n"} {
		if _, err := FromYAML([]byte(in)); err == nil {
			t.Errorf("%q: expected shape error", in)
		}
	}
	doc, err := FromYAML([]byte("mixed:\n  - {a: 1}\n  - {b: 2}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Get("mixed").Type; got != ir.ArrayType {
		t.Errorf("mixed is %s, want Array", got)
	}
}

func TestToJSONKeepsOrder(t *testing.T) {
	doc, err := FromJSON([]byte(`{"z": 1, "a": {"y": true, "b": null}}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	if ir.CompareDocuments(doc, back) != 0 {
		t.Errorf("round trip through %s changed the document", out)
	}
}

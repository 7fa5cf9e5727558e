package dx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/human"
	"github.com/signadot/dx-format/go-dx/ir"
)

const hikes = `c.task:Our favorite hikes together^loc:Boulder^seas:spring_2025
f>ana|luis|sam
h=id%# n%s k%f g%x w%s sun%b
Blue Lake Trail 7.5 5A ana +
Ridge Overlook 9.2 8i luis -
`

func TestSurface(t *testing.T) {
	doc, err := Parse([]byte(hikes))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Get("h").Table.Cell(1, "g"); !ir.Equal(got, ir.FromInt(540)) {
		t.Errorf("g = %v", got)
	}
	out, err := Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(hikes, string(out)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	h, err := ToHuman(hikes, human.Default())
	if err != nil {
		t.Fatal(err)
	}
	d, err := ToDense(h, human.Default())
	if err != nil {
		t.Fatal(err)
	}
	if d != hikes {
		t.Errorf("round trip:\n%s", d)
	}
	doc, err = Parse([]byte("# note\nt=a%s b%s\nx y\nz y\n"))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		opts []encode.EncodeOption
		want string
	}{
		{nil, "# note\nt=a%s b%s\nx y\nz _\n"},
		{[]encode.EncodeOption{encode.EncodeComments(false), encode.EncodeDitto(false)}, "t=a%s b%s\nx y\nz y\n"},
	} {
		out, err := Encode(doc, c.opts...)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(c.want, string(out)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
	if r := Validate(hikes); !r.Success {
		t.Errorf("validate: %+v", r)
	}
	if r := Validate("h=a%i\nx\n"); r.Success || r.Line != 2 {
		t.Errorf("validate: %+v", r)
	}
	if !IsSaveable(hikes) || IsSaveable("c.task:") {
		t.Errorf("IsSaveable")
	}
	if MaxInputSize() <= 0 || MaxTableRows() <= 0 || MaxRecursionDepth() <= 0 {
		t.Errorf("limits")
	}
}

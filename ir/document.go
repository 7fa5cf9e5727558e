package ir

// RootName is the binding name of the anonymous root record.
const RootName = ""

type Binding struct {
	Name     string
	Value    *Value
	Comments []string
}

type Document struct {
	Bindings []*Binding
	Trailing []string
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Binding(name string) *Binding {
	for _, b := range d.Bindings {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Get returns the value bound to name, or nil.
func (d *Document) Get(name string) *Value {
	b := d.Binding(name)
	if b == nil {
		return nil
	}
	return b.Value
}

// Bind appends a new binding. It does not check for duplicates.
func (d *Document) Bind(name string, v *Value) *Binding {
	b := &Binding{Name: name, Value: v}
	d.Bindings = append(d.Bindings, b)
	return b
}

// Root returns the root record, or nil when the document has none.
func (d *Document) Root() *Value {
	return d.Get(RootName)
}

func (d *Document) Names() []string {
	res := make([]string, len(d.Bindings))
	for i, b := range d.Bindings {
		res[i] = b.Name
	}
	return res
}

func (d *Document) Clone() *Document {
	res := &Document{Trailing: append([]string(nil), d.Trailing...)}
	for _, b := range d.Bindings {
		res.Bindings = append(res.Bindings, &Binding{
			Name:     b.Name,
			Value:    b.Value.Clone(),
			Comments: append([]string(nil), b.Comments...),
		})
	}
	return res
}

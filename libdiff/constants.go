package libdiff

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	s, ok := map[Op]string{
		Insert:  "insert",
		Delete:  "delete",
		Replace: "replace",
	}[op]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Sigil is the line prefix used when printing a change.
func (op Op) Sigil() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

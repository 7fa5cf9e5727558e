package token

// Kind is the statement kind of a line.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindRecord
	KindContinuation
	KindGhostRoot
	KindStream
	KindTable
	KindAlias
	KindLoose
	KindRow
	KindInvalid
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindBlank:        "blank",
		KindComment:      "comment",
		KindRecord:       "record",
		KindContinuation: "continuation",
		KindGhostRoot:    "ghost root",
		KindStream:       "stream",
		KindTable:        "table header",
		KindAlias:        "alias",
		KindLoose:        "loose field",
		KindRow:          "row",
		KindInvalid:      "invalid",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// IsHeader reports whether a statement of kind k ends an open table.
func (k Kind) IsHeader() bool {
	switch k {
	case KindRecord, KindContinuation, KindGhostRoot, KindStream, KindTable, KindLoose:
		return true
	default:
		return false
	}
}

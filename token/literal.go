package token

type LitKind int

const (
	LitString LitKind = iota
	LitTrue
	LitFalse
	LitNull
	LitInt
	LitFloat
	LitAliasRef
	LitAliasDef
)

func (k LitKind) String() string {
	s, ok := map[LitKind]string{
		LitString:   "string",
		LitTrue:     "true",
		LitFalse:    "false",
		LitNull:     "null",
		LitInt:      "int",
		LitFloat:    "float",
		LitAliasRef: "alias reference",
		LitAliasDef: "alias definition",
	}[k]
	if ok {
		return s
	}
	return "<unknown literal>"
}

// Literal is the result of lexical inference. For alias kinds Name holds
// the alias name; for a definition Value holds the defining text, at byte
// ValueOff of the inferred input.
type Literal struct {
	Kind     LitKind
	Name     []byte
	Value    []byte
	ValueOff int
}

// Infer classifies d in the order sigils, alias, integer, float, string.
func Infer(d []byte) Literal {
	if len(d) == 1 {
		switch d[0] {
		case '+':
			return Literal{Kind: LitTrue}
		case '-':
			return Literal{Kind: LitFalse}
		case '~':
			return Literal{Kind: LitNull}
		}
	}
	if len(d) > 1 && d[0] == '$' {
		n := nameLen(d[1:])
		switch {
		case n == 0:
		case 1+n == len(d):
			return Literal{Kind: LitAliasRef, Name: d[1:]}
		case d[1+n] == ':':
			return Literal{Kind: LitAliasDef, Name: d[1 : 1+n], Value: d[2+n:], ValueOff: 2 + n}
		}
	}
	if IsInt(d) {
		return Literal{Kind: LitInt}
	}
	if IsFloat(d) {
		return Literal{Kind: LitFloat}
	}
	return Literal{Kind: LitString}
}

// InferString reports the kind a string would be read back as.
func InferString(s string) LitKind {
	return Infer([]byte(s)).Kind
}

package token

// Statement is a classified line. Name and Body alias the line; BodyOff is
// the byte offset of Body within the line.
type Statement struct {
	Kind    Kind
	Name    []byte
	Body    []byte
	BodyOff int
}

// IsNameByte reports whether c may appear in a binding, field or column
// name.
func IsNameByte(c byte) bool {
	switch c {
	case '.', '=', '>', '$', '#', ':', '^', '|', '%', ' ', '\t', '\n', '\r', '\v', '\f':
		return false
	default:
		return true
	}
}

// IsName reports whether s is a non-empty run of name bytes.
func IsName(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	return nameLen(s) == len(s)
}

func IsBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func nameLen(d []byte) int {
	i := 0
	for i < len(d) && IsNameByte(d[i]) {
		i++
	}
	return i
}

// Classify determines the statement kind of line. Lines which match no
// statement form are rows when inTable and invalid otherwise.
func Classify(line []byte, inTable bool) Statement {
	start := 0
	for start < len(line) && IsBlank(line[start]) {
		start++
	}
	d := line[start:]
	if len(d) == 0 {
		return Statement{Kind: KindBlank}
	}
	fallback := Statement{Kind: KindInvalid, Body: d, BodyOff: start}
	if inTable {
		fallback.Kind = KindRow
	}
	switch d[0] {
	case '#':
		return Statement{Kind: KindComment, Body: d[1:], BodyOff: start + 1}
	case '^':
		return Statement{Kind: KindContinuation, Body: d[1:], BodyOff: start + 1}
	case '.':
		if len(d) > 1 && d[1] == '=' {
			return Statement{Kind: KindGhostRoot, Body: d[2:], BodyOff: start + 2}
		}
		return fallback
	case '$':
		n := nameLen(d[1:])
		if n > 0 && 1+n < len(d) && d[1+n] == ':' {
			return Statement{Kind: KindAlias, Name: d[1 : 1+n], Body: d[2+n:], BodyOff: start + 2 + n}
		}
		return fallback
	}
	n := nameLen(d)
	if n == 0 || n == len(d) {
		return fallback
	}
	name := d[:n]
	switch d[n] {
	case '=':
		return Statement{Kind: KindTable, Name: name, Body: d[n+1:], BodyOff: start + n + 1}
	case '>':
		return Statement{Kind: KindStream, Name: name, Body: d[n+1:], BodyOff: start + n + 1}
	case '.':
		if k := KeyPathLen(d[n+1:]); k > 0 && n+1+k < len(d) && d[n+1+k] == ':' {
			return Statement{Kind: KindRecord, Name: name, Body: d[n+1:], BodyOff: start + n + 1}
		}
	case ':':
		if !inTable {
			return Statement{Kind: KindLoose, Body: d, BodyOff: start}
		}
	}
	return fallback
}

// KeyPathLen returns the length of the dotted key path at the start of d,
// or 0 if there is none.
func KeyPathLen(d []byte) int {
	i := 0
	for {
		n := nameLen(d[i:])
		if n == 0 {
			return 0
		}
		i += n
		if i < len(d) && d[i] == '.' {
			i++
			continue
		}
		return i
	}
}

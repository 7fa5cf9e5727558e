package validate

import (
	"bytes"
	"unicode/utf8"
	"unsafe"

	"github.com/signadot/dx-format/go-dx/token"
)

var cr = []byte{'\r'}

// IsSaveable reports whether text does not end in the middle of a
// construct. It does not check that text parses: a finished line which
// matches no statement form is saveable, while a last line which could
// still grow into one (r.k, $x, ^) is not.
func IsSaveable(text string) bool {
	return IsSaveableBytes(unsafe.Slice(unsafe.StringData(text), len(text)))
}

// IsSaveableBytes is IsSaveable over d, which it does not modify. It does
// not allocate.
func IsSaveableBytes(d []byte) bool {
	if truncated(d) {
		return false
	}
	var (
		last     token.Statement
		seen     bool
		inTable  bool
		awaiting bool
	)
	for len(d) > 0 {
		line := d
		if i := bytes.IndexByte(d, '\n'); i != -1 {
			line, d = d[:i], d[i+1:]
		} else {
			d = nil
		}
		line = bytes.TrimSuffix(line, cr)
		st := token.Classify(line, inTable)
		switch st.Kind {
		case token.KindBlank, token.KindComment:
			continue
		}
		if awaiting {
			awaiting = false
			last = token.Statement{Kind: token.KindRow}
			continue
		}
		if st.Kind.IsHeader() {
			inTable = false
		}
		switch st.Kind {
		case token.KindTable:
			inTable = true
		case token.KindGhostRoot:
			awaiting = true
		}
		last, seen = st, true
	}
	if awaiting {
		return false
	}
	return !seen || complete(last)
}

func truncated(d []byte) bool {
	i := len(d) - 1
	for i > 0 && i > len(d)-utf8.UTFMax && !utf8.RuneStart(d[i]) {
		i--
	}
	return i >= 0 && !utf8.FullRune(d[i:])
}

func complete(st token.Statement) bool {
	body := bytes.TrimSpace(st.Body)
	switch st.Kind {
	case token.KindRow:
		return true
	case token.KindTable:
		// a header is complete once a row follows it
		return false
	case token.KindAlias:
		return len(body) != 0
	case token.KindRecord, token.KindContinuation:
		part := body
		if i := bytes.LastIndexByte(body, '^'); i != -1 {
			part = body[i+1:]
		}
		k := bytes.IndexByte(part, ':')
		return k != -1 && k != len(part)-1
	case token.KindLoose:
		k := bytes.IndexByte(body, ':')
		return k != len(body)-1
	case token.KindStream:
		return len(body) == 0 || body[len(body)-1] != '|'
	case token.KindInvalid:
		return !partial(body)
	default:
		return false
	}
}

// partial reports whether body is a prefix of some statement: a run of
// name bytes joined by the sigils which may precede a ':', '>' or '='.
func partial(body []byte) bool {
	if len(body) == 0 {
		return true
	}
	for _, c := range body {
		switch {
		case token.IsNameByte(c), c == '.', c == '$', c == '^':
		default:
			return false
		}
	}
	return true
}

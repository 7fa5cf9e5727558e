package token

import (
	"fmt"
	"unicode/utf8"
)

// Pos is a 1-based line and column. Columns count runes.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Col)
}

// Column returns the 1-based rune column of byte offset off in line.
func Column(line []byte, off int) int {
	if off > len(line) {
		off = len(line)
	}
	if off < 0 {
		off = 0
	}
	return utf8.RuneCount(line[:off]) + 1
}

// Lines iterates over the lines of a buffer. A trailing '\r' is dropped from
// each line.
type Lines struct {
	src []byte
	off int
	n   int
}

func NewLines(src []byte) *Lines {
	return &Lines{src: src}
}

// Next returns the next line and its 1-based number.
func (l *Lines) Next() ([]byte, int, bool) {
	if l.off >= len(l.src) {
		return nil, l.n, false
	}
	rest := l.src[l.off:]
	end := len(rest)
	next := len(l.src)
	for i, c := range rest {
		if c == '\n' {
			end = i
			next = l.off + i + 1
			break
		}
	}
	line := rest[:end]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	l.off = next
	l.n++
	return line, l.n, true
}

// InvalidUTF8 returns the offset of the first byte of line which does not
// start a valid UTF-8 sequence, or -1.
func InvalidUTF8(line []byte) int {
	for i := 0; i < len(line); {
		c := line[i]
		if c < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(line[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

package token

// Cell is a slice of a line with its byte offset in that line.
type Cell struct {
	Text []byte
	Off  int
}

// Cells appends the blank separated cells of d to dst. off is the offset of
// d within its line.
func Cells(d []byte, off int, dst []Cell) []Cell {
	i := 0
	for i < len(d) {
		for i < len(d) && IsBlank(d[i]) {
			i++
		}
		if i == len(d) {
			break
		}
		j := i
		for j < len(d) && !IsBlank(d[j]) {
			j++
		}
		dst = append(dst, Cell{Text: d[i:j], Off: off + i})
		i = j
	}
	return dst
}

// Split appends the sep separated parts of d to dst. An empty d yields no
// parts; otherwise there is always one more part than separators.
func Split(d []byte, sep byte, off int, dst []Cell) []Cell {
	if len(d) == 0 {
		return dst
	}
	start := 0
	for i, c := range d {
		if c == sep {
			dst = append(dst, Cell{Text: d[start:i], Off: off + start})
			start = i + 1
		}
	}
	return append(dst, Cell{Text: d[start:], Off: off + start})
}

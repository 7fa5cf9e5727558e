package token

import (
	"strconv"
	"strings"
)

// IsInt matches -?[0-9]+.
func IsInt(d []byte) bool {
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	return len(d) > 0 && asciiDigits(d) == len(d)
}

// IsFloat matches -?digits[.digits][(e|E)[+-]digits] with at least one of the
// fraction or exponent present.
func IsFloat(d []byte) bool {
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	digits := asciiDigits(d)
	if digits == 0 {
		return false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return f+e > 0 && digits+f+e == len(d)
}

// FormatFloat renders f so that it reads back as a float. NaN and the
// infinities have no dense form and are rejected by the encoder.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

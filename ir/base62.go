package ir

import (
	"errors"
	"fmt"
	"math"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var (
	ErrBase62Digit    = errors.New("invalid base62 digit")
	ErrBase62Overflow = errors.New("base62 value overflows uint64")
)

// EncodeBase62 writes n with the 62 symbol alphabet: digits, then uppercase,
// then lowercase.
func EncodeBase62(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = base62Alphabet[n%62]
		n /= 62
	}
	return string(buf[i:])
}

// DecodeBase62 is the inverse of EncodeBase62. The empty string is an error.
func DecodeBase62(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrBase62Digit)
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		d, ok := base62Digit(s[i])
		if !ok {
			return 0, fmt.Errorf("%w %q at %d", ErrBase62Digit, s[i], i)
		}
		if n > (math.MaxUint64-d)/62 {
			return 0, fmt.Errorf("%w: %q", ErrBase62Overflow, s)
		}
		n = n*62 + d
	}
	return n, nil
}

// IsBase62 reports whether s is a non-empty run of alphabet symbols.
func IsBase62(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if _, ok := base62Digit(c); !ok {
			return false
		}
	}
	return true
}

func base62Digit(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 36, true
	}
	return 0, false
}

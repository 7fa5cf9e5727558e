package ir

import (
	"errors"
	"math"
	"testing"
)

func TestBase62(t *testing.T) {
	tests := []struct {
		n   uint64
		enc string
	}{
		{0, "0"},
		{9, "9"},
		{10, "A"},
		{35, "Z"},
		{36, "a"},
		{61, "z"},
		{320, "5A"},
		{540, "8i"},
		{62, "10"},
		{3844, "100"},
		{math.MaxUint64, "LygHa16AHYF"},
	}
	for _, tt := range tests {
		got := EncodeBase62(tt.n)
		if got != tt.enc {
			t.Errorf("EncodeBase62(%d) = %q, want %q", tt.n, got, tt.enc)
		}
		back, err := DecodeBase62(got)
		if err != nil {
			t.Errorf("DecodeBase62(%q): %v", got, err)
			continue
		}
		if back != tt.n {
			t.Errorf("DecodeBase62(%q) = %d, want %d", got, back, tt.n)
		}
	}
}

func TestBase62Errors(t *testing.T) {
	for _, in := range []string{"", "-1", "a_b", "é"} {
		if _, err := DecodeBase62(in); !errors.Is(err, ErrBase62Digit) {
			t.Errorf("DecodeBase62(%q) err = %v, want digit error", in, err)
		}
	}
	if _, err := DecodeBase62("LygHa16AHYG"); !errors.Is(err, ErrBase62Overflow) {
		t.Errorf("expected overflow, got %v", err)
	}
}

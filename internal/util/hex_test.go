package util

import (
	"math"
	"strings"
	"testing"
)

func TestHexDigitValue(t *testing.T) {
	const digits = "0123456789abcdef"
	var b byte
	for ; b < math.MaxUint8; b++ {
		wantIdx := strings.IndexByte(digits, ByteLowercaseOne(b))
		got, ok := HexDigitValue(b)
		if ok != (wantIdx >= 0) || (ok && got != byte(wantIdx)) {
			const tmpl = "HexDigitValue(%q): got %d, %t; want %d, %t"
			t.Errorf(tmpl, b, got, ok, wantIdx, wantIdx >= 0)
		}
	}
}

func TestUpperHexDigit(t *testing.T) {
	const want = "0123456789ABCDEF"
	for v := byte(0); v < 16; v++ {
		if got := UpperHexDigit(v); got != want[v] {
			const tmpl = "UpperHexDigit(%d): got %q; want %q"
			t.Errorf(tmpl, v, got, want[v])
		}
	}
}

func TestPredicates(t *testing.T) {
	var b byte
	for ; b < math.MaxUint8; b++ {
		if got, want := IsDigit(b), '0' <= b && b <= '9'; got != want {
			t.Errorf("IsDigit(%q): got %t; want %t", b, got, want)
		}
		wantAlpha := 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
		if got := IsAlpha(b); got != wantAlpha {
			t.Errorf("IsAlpha(%q): got %t; want %t", b, got, wantAlpha)
		}
		wantAlnum := wantAlpha || '0' <= b && b <= '9'
		if got := IsAlphanumeric(b); got != wantAlnum {
			t.Errorf("IsAlphanumeric(%q): got %t; want %t", b, got, wantAlnum)
		}
	}
}

func TestByteLowercase(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"EXAMPLE.COM", "example.com"},
		{"mIxEd-09_~", "mixed-09_~"},
		{"%2E", "%2e"},
		// non-ASCII bytes are left alone
		{"É", "É"},
	}
	for _, tc := range cases {
		if got := ByteLowercase(tc.input); got != tc.want {
			const tmpl = "ByteLowercase(%q): got %q; want %q"
			t.Errorf(tmpl, tc.input, got, tc.want)
		}
	}
}

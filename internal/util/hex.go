package util

const upperhex = "0123456789ABCDEF"

// HexDigitValue returns the numerical value of hex digit c
// (e.g. 11 for 'b') and reports whether c is a hex digit at all.
func HexDigitValue(c byte) (v byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// UpperHexDigit returns the uppercase hex digit for value v,
// which must be less than 16.
func UpperHexDigit(v byte) byte {
	return upperhex[v]
}

// IsDigit returns true if b is in the 0x30-0x39 ASCII range,
// and false otherwise.
func IsDigit(b byte) bool {
	// see https://go.googlesource.com/go/+/refs/tags/go1.24.2/src/net/textproto/reader.go#678
	const mask = (1<<10 - 1) << '0'
	return ((uint64(1)<<b)&(mask&(1<<64-1)) |
		(uint64(1)<<(b-64))&(mask>>64)) != 0
}

// IsAlpha returns true if b is an ASCII letter, and false otherwise.
func IsAlpha(b byte) bool {
	// see https://go.googlesource.com/go/+/refs/tags/go1.24.2/src/net/textproto/reader.go#678
	const mask = (1<<26-1)<<'A' | (1<<26-1)<<'a'
	return ((uint64(1)<<b)&(mask&(1<<64-1)) |
		(uint64(1)<<(b-64))&(mask>>64)) != 0
}

// IsAlphanumeric returns true if b is an ASCII letter or digit,
// and false otherwise.
func IsAlphanumeric(b byte) bool {
	// see https://go.googlesource.com/go/+/refs/tags/go1.24.2/src/net/textproto/reader.go#678
	const mask = (1<<10-1)<<'0' | (1<<26-1)<<'A' | (1<<26-1)<<'a'
	return ((uint64(1)<<b)&(mask&(1<<64-1)) |
		(uint64(1)<<(b-64))&(mask>>64)) != 0
}

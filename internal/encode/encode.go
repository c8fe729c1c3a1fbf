// Package encode implements the percent-encoding codec of the URL standard:
// per-byte encoding under a named percent-encode set, and total decoding.
package encode

import (
	"strings"

	"github.com/webstd/whatwgurl/internal/util"
)

// AppendByte appends byte c to dst, percent-encoding it if set contains c
// or if c lies outside the ASCII range, and returns the extended slice.
// Hex digits are always emitted in uppercase.
func AppendByte(dst []byte, c byte, set *util.ASCIISet) []byte {
	if c >= 0x80 || set.Contains(c) {
		return append(dst, '%', util.UpperHexDigit(c>>4), util.UpperHexDigit(c&0xf))
	}
	return append(dst, c)
}

// String percent-encodes every byte of str under set.
func String(str string, set *util.ASCIISet) string {
	var i int
	for ; i < len(str); i++ {
		if c := str[i]; c >= 0x80 || set.Contains(c) {
			break
		}
	}
	if i == len(str) { // nothing to encode
		return str
	}
	dst := make([]byte, 0, len(str)+2)
	dst = append(dst, str[:i]...)
	for ; i < len(str); i++ {
		dst = AppendByte(dst, str[i], set)
	}
	return string(dst)
}

// Decode percent-decodes str. Decoding is total: a '%' that is not
// followed by two hex digits is passed through literally.
func Decode(str string) string {
	i := strings.IndexByte(str, '%')
	if i == -1 {
		return str
	}
	dst := make([]byte, 0, len(str))
	dst = append(dst, str[:i]...)
	for ; i < len(str); i++ {
		b, ok := decodeAt(str, i)
		if !ok {
			dst = append(dst, str[i])
			continue
		}
		dst = append(dst, b)
		i += 2
	}
	return string(dst)
}

// ValidEscapeAt reports whether a well-formed %HH sequence starts
// at index i in str.
func ValidEscapeAt(str string, i int) bool {
	_, ok := decodeAt(str, i)
	return ok
}

// decodeAt returns the percent-decoded byte at index i in str.
// Returns true in ok if successful and false otherwise.
func decodeAt(str string, i int) (v byte, ok bool) {
	if i+3 > len(str) || str[i] != '%' {
		return 0, false
	}
	vhi, okhi := util.HexDigitValue(str[i+1])
	vlo, oklo := util.HexDigitValue(str[i+2])
	if !okhi || !oklo {
		return 0, false
	}
	return vhi<<4 | vlo, true
}

package util

import (
	"strings"
)

// ByteLowercase returns a [byte-lowercase] version of str.
//
// [byte-lowercase]: https://infra.spec.whatwg.org/#byte-lowercase
func ByteLowercase(str string) string {
	return strings.Map(byteLowercaseOne, str)
}

func byteLowercaseOne(asciiRune rune) rune {
	if 'A' <= asciiRune && asciiRune <= 'Z' {
		return asciiRune + toLower
	}
	return asciiRune
}

// ByteLowercaseOne returns the byte-lowercase version of byte c.
func ByteLowercaseOne(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + toLower
	}
	return c
}

const toLower = 'a' - 'A'

package hosts

import (
	"strconv"

	"github.com/webstd/whatwgurl/internal/util"
)

// ParseIPv6 parses the text between the brackets of an IPv6 host into
// eight 16-bit pieces. At most one :: compression may appear; a trailing
// dotted-decimal IPv4 address occupies the final two pieces and its parts
// must be plain decimal octets without leading zeros.
func ParseIPv6(input string) ([8]uint16, error) {
	var (
		pieces     [8]uint16
		pieceIndex int
		compress   = -1
		i          int
	)
	fail := func() ([8]uint16, error) {
		return [8]uint16{}, hostError("[" + input + "]")
	}

	if len(input) > 0 && input[0] == ':' {
		if len(input) < 2 || input[1] != ':' {
			return fail()
		}
		i = 2
		pieceIndex = 1
		compress = pieceIndex
	}
	for i < len(input) {
		if pieceIndex == 8 {
			return fail()
		}
		if input[i] == ':' {
			if compress != -1 {
				return fail()
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}
		var value uint16
		var length int
		for length < 4 && i < len(input) {
			v, ok := util.HexDigitValue(input[i])
			if !ok {
				break
			}
			value = value<<4 | uint16(v)
			i++
			length++
		}
		switch {
		case i < len(input) && input[i] == '.':
			if length == 0 {
				return fail()
			}
			i -= length
			if pieceIndex > 6 {
				return fail()
			}
			var numbersSeen int
			for i < len(input) {
				if numbersSeen > 0 {
					if input[i] != '.' || numbersSeen == 4 {
						return fail()
					}
					i++
				}
				if i == len(input) || !util.IsDigit(input[i]) {
					return fail()
				}
				ipv4Piece := -1
				for i < len(input) && util.IsDigit(input[i]) {
					n := int(input[i] - '0')
					switch {
					case ipv4Piece == -1:
						ipv4Piece = n
					case ipv4Piece == 0: // leading zero
						return fail()
					default:
						ipv4Piece = ipv4Piece*10 + n
					}
					if ipv4Piece > 255 {
						return fail()
					}
					i++
				}
				pieces[pieceIndex] = pieces[pieceIndex]<<8 | uint16(ipv4Piece)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}
			if numbersSeen != 4 {
				return fail()
			}
			goto expand
		case i < len(input) && input[i] == ':':
			i++
			if i == len(input) {
				return fail()
			}
		case i < len(input):
			return fail()
		}
		pieces[pieceIndex] = value
		pieceIndex++
	}

expand:
	if compress != -1 {
		swaps := pieceIndex - compress
		for pieceIndex = 7; pieceIndex != 0 && swaps > 0; {
			pieces[pieceIndex], pieces[compress+swaps-1] =
				pieces[compress+swaps-1], pieces[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		return fail()
	}
	return pieces, nil
}

// serializeIPv6 writes the canonical textual form of the address:
// lowercase hex pieces without leading zeros, with the leftmost longest
// run of two or more zero pieces compressed to ::.
func serializeIPv6(pieces [8]uint16) string {
	compress, compressLen := -1, 1
	for i := 0; i < len(pieces); {
		if pieces[i] != 0 {
			i++
			continue
		}
		j := i
		for j < len(pieces) && pieces[j] == 0 {
			j++
		}
		if j-i > compressLen {
			compress, compressLen = i, j-i
		}
		i = j
	}

	dst := make([]byte, 0, len("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"))
	for i := 0; i < len(pieces); i++ {
		if i == compress {
			if i == 0 {
				dst = append(dst, ':')
			}
			dst = append(dst, ':')
			i += compressLen - 1
			continue
		}
		dst = strconv.AppendUint(dst, uint64(pieces[i]), 16)
		if i != len(pieces)-1 {
			dst = append(dst, ':')
		}
	}
	return string(dst)
}

package hosts

import (
	"strconv"
	"strings"

	"github.com/webstd/whatwgurl/internal/util"
)

const ipv4PartSep = '.'

// endsInNumber reports whether the final dot-separated part of domain is
// numeric, in which case the whole domain must parse as an IPv4 address.
// A single trailing separator is ignored, since absolute domain names
// carry one too.
func endsInNumber(domain string) bool {
	last := domain
	if i := strings.LastIndexByte(domain, ipv4PartSep); i != -1 {
		last = domain[i+1:]
		if last == "" && i > 0 {
			j := strings.LastIndexByte(domain[:i], ipv4PartSep)
			last = domain[j+1 : i]
		}
	}
	if last == "" {
		return false
	}
	if rest, ok := cutRadixPrefix(last); ok {
		for i := 0; i < len(rest); i++ {
			if _, ok := util.HexDigitValue(rest[i]); !ok {
				return false
			}
		}
		return true
	}
	for i := 0; i < len(last); i++ {
		if !util.IsDigit(last[i]) {
			return false
		}
	}
	return true
}

// cutRadixPrefix strips a hexadecimal 0x/0X prefix from part.
func cutRadixPrefix(part string) (rest string, ok bool) {
	if len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X') {
		return part[2:], true
	}
	return part, false
}

// parseIPv4Number parses one dot-separated part of an IPv4 host.
// The radix is detected from the part itself: a 0x/0X prefix selects
// hexadecimal, a leading zero on a longer part selects octal, and
// everything else is decimal. A bare radix prefix denotes zero.
func parseIPv4Number(part string) (uint64, bool) {
	if part == "" {
		return 0, false
	}
	base := 10
	if rest, ok := cutRadixPrefix(part); ok {
		if rest == "" {
			return 0, true
		}
		part, base = rest, 16
	} else if len(part) >= 2 && part[0] == '0' {
		part, base = part[1:], 8
	}
	n, err := strconv.ParseUint(part, base, 64)
	if err != nil {
		// Out-of-range values exceed every per-part bound below,
		// so both syntax and range errors fail the same way.
		return 0, false
	}
	return n, true
}

// ParseIPv4 parses a dotted IPv4 host into an address in network byte
// order. At most four parts are allowed; all but the last must fit in one
// octet, and the last must fit in the octets that remain.
func ParseIPv4(input string) (uint32, error) {
	parts := strings.Split(input, string(ipv4PartSep))
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return 0, hostError(input)
	}
	numbers := make([]uint64, len(parts))
	for i, part := range parts {
		n, ok := parseIPv4Number(part)
		if !ok {
			return 0, hostError(input)
		}
		numbers[i] = n
	}
	last := numbers[len(numbers)-1]
	if last >= uint64(1)<<(8*(5-len(numbers))) {
		return 0, hostError(input)
	}
	addr := uint32(last)
	for i, n := range numbers[:len(numbers)-1] {
		if n > 0xff {
			return 0, hostError(input)
		}
		addr += uint32(n) << (8 * (3 - i))
	}
	return addr, nil
}

// serializeIPv4 writes addr as four decimal octets
// in network byte order.
func serializeIPv4(addr uint32) string {
	dst := make([]byte, 0, len("255.255.255.255"))
	for i := 3; i >= 0; i-- {
		dst = strconv.AppendUint(dst, uint64(addr>>(8*i))&0xff, 10)
		if i > 0 {
			dst = append(dst, ipv4PartSep)
		}
	}
	return string(dst)
}

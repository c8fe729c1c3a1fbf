// Package hosts implements host parsing and serialization for URLs:
// bracketed IPv6 addresses, numeric IPv4 hosts, ASCII domains,
// and opaque hosts of non-special schemes.
package hosts

import (
	"strings"

	"github.com/webstd/whatwgurl/internal/encode"
	"github.com/webstd/whatwgurl/internal/util"
	"github.com/webstd/whatwgurl/urlerrors"
)

// Kind represents the kind of a parsed host.
type Kind uint8

const (
	None   Kind = iota // no host at all
	Empty              // a present but empty host (file URLs)
	Domain             // an ASCII domain
	IPv4               // a 32-bit IPv4 address
	IPv6               // a 128-bit IPv6 address
	Opaque             // a percent-encoded opaque host
)

// A Host represents the host of a URL.
// The zero value marks the absence of a host.
type Host struct {
	// Kind discriminates the remaining fields.
	Kind Kind
	// Value is the host's serialization-ready string form;
	// it is only meaningful for kinds Domain and Opaque.
	Value string
	// Addr4 is the address in network byte order, for kind IPv4.
	Addr4 uint32
	// Addr6 holds the eight 16-bit pieces of the address, for kind IPv6.
	Addr6 [8]uint16
}

// IsNull reports whether h marks the absence of a host.
func (h Host) IsNull() bool {
	return h.Kind == None
}

// String serializes h. IPv6 addresses are bracketed;
// absent and empty hosts serialize to the empty string.
func (h Host) String() string {
	switch h.Kind {
	case Domain, Opaque:
		return h.Value
	case IPv4:
		return serializeIPv4(h.Addr4)
	case IPv6:
		return "[" + serializeIPv6(h.Addr6) + "]"
	default:
		return ""
	}
}

const (
	// forbiddenHost holds the characters that may not appear in any host:
	// NUL, TAB, LF, CR, space, and #/:<>?@[\]^|.
	forbiddenHost = "\x00\t\n\r #/:<>?@[\\]^|"
	// forbiddenDomain additionally excludes '%', which is only meaningful
	// in hosts that remain percent-encoded.
	forbiddenDomain = forbiddenHost + "%"
)

var (
	forbiddenHostSet   = util.MakeASCIISet(forbiddenHost)
	forbiddenDomainSet = util.MakeASCIISet(forbiddenDomain)
)

// Parse parses input into a Host. isSpecial selects between domain/IP
// interpretation (special schemes) and opaque hosts (all other schemes).
// The input is assumed free of surrounding whitespace; an empty input
// yields the empty host.
func Parse(input string, isSpecial bool) (Host, error) {
	if input == "" {
		return Host{Kind: Empty}, nil
	}
	if input[0] == '[' {
		if input[len(input)-1] != ']' {
			return Host{}, hostError(input)
		}
		addr, err := ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return Host{Kind: IPv6, Addr6: addr}, nil
	}
	if !isSpecial {
		return parseOpaque(input)
	}
	// Bytes that do not decode as UTF-8 become U+FFFD, which the IDNA
	// mapping rejects.
	domain, err := domainToASCII(strings.ToValidUTF8(encode.Decode(input), "�"))
	if err != nil {
		return Host{}, &urlerrors.ParseError{
			Value: input,
			Kind:  urlerrors.KindIDNA,
			Cause: err,
		}
	}
	if domain == "" {
		return Host{}, hostError(input)
	}
	for i := 0; i < len(domain); i++ {
		if forbiddenDomainSet.Contains(domain[i]) {
			return Host{}, hostError(input)
		}
	}
	if endsInNumber(domain) {
		addr, err := ParseIPv4(domain)
		if err != nil {
			return Host{}, err
		}
		return Host{Kind: IPv4, Addr4: addr}, nil
	}
	return Host{Kind: Domain, Value: domain}, nil
}

// parseOpaque parses the host of a non-special URL: forbidden characters
// are rejected and everything else is preserved, percent-encoded under the
// C0-control set so that serialization round-trips.
func parseOpaque(input string) (Host, error) {
	for i := 0; i < len(input); i++ {
		if forbiddenHostSet.Contains(input[i]) {
			return Host{}, hostError(input)
		}
	}
	return Host{
		Kind:  Opaque,
		Value: encode.String(input, &encode.C0Control),
	}, nil
}

func hostError(input string) error {
	return &urlerrors.ParseError{Value: input, Kind: urlerrors.KindHost}
}

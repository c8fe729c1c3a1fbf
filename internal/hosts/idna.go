package hosts

import (
	"golang.org/x/net/idna"
)

// lookup approximates the URL standard's domain-to-ASCII operation with
// beStrict unset: UTS-46 non-transitional processing, STD3 rules off,
// hyphen placement unchecked, DNS length limits not enforced.
// ASCII-only domains come out byte-lowercased; the remaining forbidden
// code points are rejected by the caller.
var lookup = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.CheckHyphens(false),
	idna.StrictDomainName(false),
	idna.Transitional(false),
)

// domainToASCII maps a percent-decoded domain to its ASCII form.
func domainToASCII(domain string) (string, error) {
	return lookup.ToASCII(domain)
}

package whatwgurl

import (
	"slices"

	"github.com/webstd/whatwgurl/internal/hosts"
	"github.com/webstd/whatwgurl/internal/util"
)

// noPort marks the absence of an explicit port.
const noPort = -1

// A URL represents a parsed URL record. The zero value is not a valid URL;
// use [Parse], [ParseWithBase], or UnmarshalText to obtain one.
//
// A URL owns all of its components: it shares no memory with the input it
// was parsed from, with any base URL, or with other URLs, so distinct URL
// values may be used from distinct goroutines without synchronization.
type URL struct {
	// scheme is byte-lowercased and matches the scheme grammar.
	scheme   string
	username string
	password string
	host     hosts.Host
	// port is noPort whenever absent or equal to the scheme's default.
	port int
	// path holds percent-encoded segments; for cannot-be-a-base URLs it
	// holds at most one opaque entry.
	path        []string
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
	// cannotBeABase marks URLs whose path is a single opaque string
	// (e.g. mailto:foo@bar).
	cannotBeABase bool
	// validationError records that the input exhibited a non-fatal,
	// spec-defined validation error. It never affects the parse result.
	validationError bool
}

// defaultPorts maps the special schemes to their default port;
// file has none.
var defaultPorts = map[string]int{
	"ftp":   21,
	"file":  noPort,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

func isSpecialScheme(scheme string) bool {
	_, ok := defaultPorts[scheme]
	return ok
}

// defaultPort returns the default port of scheme,
// or noPort if it has none.
func defaultPort(scheme string) int {
	if port, ok := defaultPorts[scheme]; ok {
		return port
	}
	return noPort
}

func (u *URL) isSpecial() bool {
	return isSpecialScheme(u.scheme)
}

func (u *URL) includesCredentials() bool {
	return u.username != "" || u.password != ""
}

// cannotHaveCredentialsOrPort reports whether u structurally rejects
// credentials and an explicit port.
func (u *URL) cannotHaveCredentialsOrPort() bool {
	return u.host.Kind == hosts.None ||
		u.host.Kind == hosts.Empty ||
		u.cannotBeABase ||
		u.scheme == "file"
}

// shortenPath removes the last path segment, except that the drive letter
// of a file URL is never removed.
func (u *URL) shortenPath() {
	if u.scheme == "file" &&
		len(u.path) == 1 &&
		isNormalizedWindowsDriveLetter(u.path[0]) {
		return
	}
	if len(u.path) > 0 {
		u.path = u.path[:len(u.path)-1]
	}
}

func (u *URL) clone() *URL {
	c := *u
	c.path = slices.Clone(u.path)
	return &c
}

// Equal reports whether u and other serialize identically,
// optionally ignoring fragments.
func (u *URL) Equal(other *URL, excludeFragments bool) bool {
	return u.serialize(excludeFragments) == other.serialize(excludeFragments)
}

// A Windows drive letter is an ASCII letter followed by ':' or '|';
// a normalized one is followed by ':'. Both only matter under the
// file scheme.

func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && util.IsAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && util.IsAlpha(s[0]) && s[1] == ':'
}

// startsWithWindowsDriveLetter reports whether s starts with a Windows
// drive letter that is a whole path segment.
func startsWithWindowsDriveLetter(s string) bool {
	return len(s) >= 2 &&
		isWindowsDriveLetter(s[:2]) &&
		(len(s) == 2 || s[2] == '/' || s[2] == '\\' || s[2] == '?' || s[2] == '#')
}

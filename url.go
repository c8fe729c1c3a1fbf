package whatwgurl

import (
	"errors"
	"strconv"
	"strings"

	"github.com/webstd/whatwgurl/internal/encode"
	"github.com/webstd/whatwgurl/internal/hosts"
)

// Parse parses input as an absolute URL and returns the resulting record.
// On failure it returns a [*github.com/webstd/whatwgurl/urlerrors.ParseError]
// classifying the failure; no partial record is ever returned.
func Parse(input string) (*URL, error) {
	return basicParse(input, nil, nil, stateNone)
}

// ParseWithBase parses input, resolving it against base if input is
// relative. A nil base behaves like [Parse].
func ParseWithBase(input string, base *URL) (*URL, error) {
	return basicParse(input, base, nil, stateNone)
}

// Decode percent-decodes str. Decoding is total: a '%' that is not
// followed by two hex digits is passed through literally.
func Decode(str string) string {
	return encode.Decode(str)
}

// Scheme returns u's scheme, without the trailing colon.
func (u *URL) Scheme() string { return u.scheme }

// Username returns u's username, percent-encoded.
func (u *URL) Username() string { return u.username }

// Password returns u's password, percent-encoded.
func (u *URL) Password() string { return u.password }

// DecodedUsername returns u's username, percent-decoded.
func (u *URL) DecodedUsername() string { return encode.Decode(u.username) }

// DecodedPassword returns u's password, percent-decoded.
func (u *URL) DecodedPassword() string { return encode.Decode(u.password) }

// Hostname returns the serialization of u's host, without the port.
// IPv6 addresses are bracketed.
func (u *URL) Hostname() string { return u.host.String() }

// Host returns the serialization of u's host followed by its port,
// if an explicit one is set.
func (u *URL) Host() string {
	if u.host.Kind == hosts.None {
		return ""
	}
	if u.port == noPort {
		return u.host.String()
	}
	return u.host.String() + ":" + strconv.Itoa(u.port)
}

// Port returns the decimal serialization of u's port, or the empty string
// if u carries no explicit port.
func (u *URL) Port() string {
	if u.port == noPort {
		return ""
	}
	return strconv.Itoa(u.port)
}

// Pathname returns u's path: the single opaque entry for
// cannot-be-a-base URLs, and the slash-prefixed segments otherwise.
func (u *URL) Pathname() string {
	if u.cannotBeABase {
		if len(u.path) == 0 {
			return ""
		}
		return u.path[0]
	}
	var sb strings.Builder
	for _, segment := range u.path {
		sb.WriteByte('/')
		sb.WriteString(segment)
	}
	return sb.String()
}

// DecodedPathname returns u's path, percent-decoded.
func (u *URL) DecodedPathname() string { return encode.Decode(u.Pathname()) }

// Search returns u's query prefixed with '?', or the empty string if the
// query is absent or empty.
func (u *URL) Search() string {
	if !u.hasQuery || u.query == "" {
		return ""
	}
	return "?" + u.query
}

// DecodedSearch returns u's query, percent-decoded and without the '?'.
func (u *URL) DecodedSearch() string { return encode.Decode(u.query) }

// Hash returns u's fragment prefixed with '#', or the empty string if the
// fragment is absent or empty.
func (u *URL) Hash() string {
	if !u.hasFragment || u.fragment == "" {
		return ""
	}
	return "#" + u.fragment
}

// DecodedHash returns u's fragment, percent-decoded and without the '#'.
func (u *URL) DecodedHash() string { return encode.Decode(u.fragment) }

// CannotBeABase reports whether u's path is a single opaque string, in
// which case u cannot serve as the base of a relative URL.
func (u *URL) CannotBeABase() bool { return u.cannotBeABase }

// HasValidationError reports whether parsing or mutating u exhibited a
// non-fatal, spec-defined validation error. Validation errors never
// affect the parse result; they exist for diagnostics only.
func (u *URL) HasValidationError() bool { return u.validationError }

var (
	errNoAuthority = errors.New(
		"whatwgurl: URL cannot carry credentials or a port")
	errOpaquePath = errors.New(
		"whatwgurl: URL with an opaque path cannot be modified this way")
)

// SetScheme changes u's scheme to v (with or without a trailing colon).
// Changes between special and non-special schemes are rejected, as are
// changes that would strand credentials, a port, or an absent host on a
// file URL. On error, u is unchanged.
func (u *URL) SetScheme(v string) error {
	v, _, _ = strings.Cut(v, ":")
	parsed, err := basicParse(v+":", nil, u, stateSchemeStart)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// SetUsername sets u's username, percent-encoding v as needed.
func (u *URL) SetUsername(v string) error {
	if u.cannotHaveCredentialsOrPort() {
		return errNoAuthority
	}
	u.username = encode.String(v, &encode.Userinfo)
	return nil
}

// SetPassword sets u's password, percent-encoding v as needed.
func (u *URL) SetPassword(v string) error {
	if u.cannotHaveCredentialsOrPort() {
		return errNoAuthority
	}
	u.password = encode.String(v, &encode.Userinfo)
	return nil
}

// SetHost reparses v as u's host, optionally followed by a port.
// On error, u is unchanged.
func (u *URL) SetHost(v string) error {
	if u.cannotBeABase {
		return errOpaquePath
	}
	parsed, err := basicParse(v, nil, u, stateHost)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// SetHostname reparses v as u's host; anything from a ':' onward is
// ignored rather than parsed as a port. On error, u is unchanged.
func (u *URL) SetHostname(v string) error {
	if u.cannotBeABase {
		return errOpaquePath
	}
	parsed, err := basicParse(v, nil, u, stateHostname)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// SetPort reparses v as u's port; an empty v removes the port.
// On error, u is unchanged.
func (u *URL) SetPort(v string) error {
	if u.cannotHaveCredentialsOrPort() {
		return errNoAuthority
	}
	if v == "" {
		u.port = noPort
		return nil
	}
	parsed, err := basicParse(v, nil, u, statePort)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// SetPathname reparses v as u's path, replacing it entirely.
// On error, u is unchanged.
func (u *URL) SetPathname(v string) error {
	if u.cannotBeABase {
		return errOpaquePath
	}
	scratch := u.clone()
	scratch.path = nil
	parsed, err := basicParse(v, nil, scratch, statePathStart)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// SetSearch reparses v (with or without a leading '?') as u's query;
// an empty v removes the query. On error, u is unchanged.
func (u *URL) SetSearch(v string) error {
	if v == "" {
		u.query, u.hasQuery = "", false
		return nil
	}
	v = strings.TrimPrefix(v, "?")
	scratch := u.clone()
	scratch.query, scratch.hasQuery = "", true
	parsed, err := basicParse(v, nil, scratch, stateQuery)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// SetHash reparses v (with or without a leading '#') as u's fragment;
// an empty v removes the fragment. On error, u is unchanged.
func (u *URL) SetHash(v string) error {
	if v == "" {
		u.fragment, u.hasFragment = "", false
		return nil
	}
	v = strings.TrimPrefix(v, "#")
	scratch := u.clone()
	scratch.fragment, scratch.hasFragment = "", true
	parsed, err := basicParse(v, nil, scratch, stateFragment)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

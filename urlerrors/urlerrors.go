/*
Package urlerrors provides functionalities for programmatically handling
parse errors produced by package [github.com/webstd/whatwgurl].

Most users of package [github.com/webstd/whatwgurl] only need to know
whether a parse succeeded. However, programs that surface URL diagnostics
to their own users (linters, form validators, crawlers that report broken
links) may find this package useful: it classifies every failure into a
small, stable taxonomy that survives message-wording changes.
*/
package urlerrors

import "fmt"

// A Kind identifies the component of a URL on which parsing failed.
type Kind uint8

const (
	// KindScheme indicates a scheme that does not match the scheme
	// grammar, or an empty scheme where one is required.
	KindScheme Kind = iota + 1
	// KindHost indicates a malformed host: an invalid IPv4 or IPv6
	// address, a forbidden host code point, or an empty host where one
	// is required.
	KindHost
	// KindPort indicates a non-numeric port or one greater than 65535.
	KindPort
	// KindPath indicates a path that is illegal in its context.
	KindPath
	// KindQuery indicates a query that is illegal in its context.
	// It only arises when reparsing a single field of an existing URL.
	KindQuery
	// KindFragment indicates a fragment that is illegal in its context.
	// It only arises when reparsing a single field of an existing URL.
	KindFragment
	// KindRelative indicates a relative input for which no base URL
	// was supplied.
	KindRelative
	// KindIDNA indicates a domain that the IDNA mapping rejected.
	KindIDNA
)

func (k Kind) String() string {
	switch k {
	case KindScheme:
		return "invalid scheme"
	case KindHost:
		return "invalid host"
	case KindPort:
		return "invalid port"
	case KindPath:
		return "invalid path"
	case KindQuery:
		return "invalid query"
	case KindFragment:
		return "invalid fragment"
	case KindRelative:
		return "missing base for relative input"
	case KindIDNA:
		return "IDNA failure"
	default:
		return "unknown error"
	}
}

// A ParseError reports why an input failed to parse as a URL.
type ParseError struct {
	Value string // the input (or input fragment) that could not be parsed
	Kind  Kind   // classification of the failure
	Cause error  // underlying error, if any (IDNA failures only)
}

func (err *ParseError) Error() string {
	const tmpl = "whatwgurl: %s in %q"
	return fmt.Sprintf(tmpl, err.Kind, err.Value)
}

// Unwrap returns the underlying cause of err, if any.
func (err *ParseError) Unwrap() error {
	return err.Cause
}

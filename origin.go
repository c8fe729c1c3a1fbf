package whatwgurl

import (
	"strconv"

	"github.com/webstd/whatwgurl/internal/hosts"
)

// An Origin represents a (tuple) [Web origin]: a scheme, a host, and an
// optional port. The zero value is an opaque origin.
//
// [Web origin]: https://developer.mozilla.org/en-US/docs/Glossary/Origin
type Origin struct {
	scheme string
	host   hosts.Host
	port   int
	tuple  bool
}

// tupleOriginSchemes holds the schemes whose URLs carry a tuple origin.
// Everything else — including file and blob URLs — gets an opaque origin.
var tupleOriginSchemes = map[string]struct{}{
	"ftp":   {},
	"http":  {},
	"https": {},
	"ws":    {},
	"wss":   {},
}

// Origin computes u's origin.
func (u *URL) Origin() Origin {
	if _, ok := tupleOriginSchemes[u.scheme]; !ok {
		return Origin{}
	}
	return Origin{
		scheme: u.scheme,
		host:   u.host,
		port:   u.port,
		tuple:  true,
	}
}

// IsOpaque reports whether o is an opaque origin.
func (o Origin) IsOpaque() bool {
	return !o.tuple
}

// String serializes o: "scheme://host" with the port appended when one is
// set, or "null" for opaque origins.
func (o Origin) String() string {
	if !o.tuple {
		return "null"
	}
	s := o.scheme + "://" + o.host.String()
	if o.port != noPort {
		s += ":" + strconv.Itoa(o.port)
	}
	return s
}

// Equal reports whether o and other are the same origin. Opaque origins
// carry no identity here, so they compare unequal even to themselves.
func (o Origin) Equal(other Origin) bool {
	return o.tuple && other.tuple && o == other
}

// SameOrigin reports whether u and other have the same origin.
func (u *URL) SameOrigin(other *URL) bool {
	return u.Origin().Equal(other.Origin())
}

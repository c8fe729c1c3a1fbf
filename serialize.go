package whatwgurl

import (
	"strconv"
	"strings"

	"github.com/webstd/whatwgurl/internal/hosts"
)

// String returns the canonical serialization of u.
// Parsing the result again yields a record equal to u.
func (u *URL) String() string {
	return u.serialize(false)
}

// Href returns the canonical serialization of u, like String.
func (u *URL) Href() string {
	return u.serialize(false)
}

func (u *URL) serialize(excludeFragment bool) string {
	var sb strings.Builder
	sb.WriteString(u.scheme)
	sb.WriteByte(':')
	if u.host.Kind != hosts.None {
		sb.WriteString("//")
		if u.includesCredentials() {
			sb.WriteString(u.username)
			if u.password != "" {
				sb.WriteByte(':')
				sb.WriteString(u.password)
			}
			sb.WriteByte('@')
		}
		sb.WriteString(u.host.String())
		if u.port != noPort {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(u.port))
		}
	}
	if u.cannotBeABase {
		if len(u.path) > 0 {
			sb.WriteString(u.path[0])
		}
	} else {
		for _, segment := range u.path {
			sb.WriteByte('/')
			sb.WriteString(segment)
		}
	}
	if u.hasQuery {
		sb.WriteByte('?')
		sb.WriteString(u.query)
	}
	if !excludeFragment && u.hasFragment {
		sb.WriteByte('#')
		sb.WriteString(u.fragment)
	}
	return sb.String()
}

// MarshalText implements [encoding.TextMarshaler];
// it returns the canonical serialization of u.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler];
// it parses text as an absolute URL.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

package whatwgurl

import (
	"testing"
)

func TestOriginString(t *testing.T) {
	cases := []struct {
		desc  string
		input string
		want  string
	}{
		{
			desc:  "http origin",
			input: "http://example.com/a/b?q#f",
			want:  "http://example.com",
		}, {
			desc:  "explicit port",
			input: "https://example.com:8080/",
			want:  "https://example.com:8080",
		}, {
			desc:  "default port is absent",
			input: "https://example.com:443/",
			want:  "https://example.com",
		}, {
			desc:  "credentials are not part of the origin",
			input: "http://u:p@example.com/",
			want:  "http://example.com",
		}, {
			desc:  "IPv6 host",
			input: "ws://[::1]:90/chat",
			want:  "ws://[::1]:90",
		}, {
			desc:  "ftp origin",
			input: "ftp://example.com/",
			want:  "ftp://example.com",
		}, {
			desc:  "file URLs have an opaque origin",
			input: "file:///C:/x",
			want:  "null",
		}, {
			desc:  "opaque-path URLs have an opaque origin",
			input: "mailto:x@y",
			want:  "null",
		}, {
			desc:  "blob URLs have an opaque origin",
			input: "blob:https://example.com/id",
			want:  "null",
		}, {
			desc:  "non-special schemes have an opaque origin",
			input: "sc://example.com/",
			want:  "null",
		},
	}
	for _, tc := range cases {
		u := mustParse(t, tc.input)
		if got := u.Origin().String(); got != tc.want {
			const tmpl = "%s: Origin of %q: got %q; want %q"
			t.Errorf(tmpl, tc.desc, tc.input, got, tc.want)
		}
	}
}

func TestSameOrigin(t *testing.T) {
	cases := []struct {
		desc string
		a, b string
		want bool
	}{
		{
			desc: "same host and scheme",
			a:    "http://example.com/a",
			b:    "http://example.com/b?q#f",
			want: true,
		}, {
			desc: "explicit default port matches implicit",
			a:    "https://example.com/",
			b:    "https://example.com:443/x",
			want: true,
		}, {
			desc: "different ports",
			a:    "http://example.com/",
			b:    "http://example.com:8080/",
			want: false,
		}, {
			desc: "different schemes",
			a:    "http://example.com/",
			b:    "https://example.com/",
			want: false,
		}, {
			desc: "different hosts",
			a:    "http://example.com/",
			b:    "http://example.org/",
			want: false,
		}, {
			desc: "opaque origins never match",
			a:    "mailto:x@y",
			b:    "mailto:x@y",
			want: false,
		}, {
			desc: "file URLs never match",
			a:    "file:///a",
			b:    "file:///a",
			want: false,
		},
	}
	for _, tc := range cases {
		a := mustParse(t, tc.a)
		b := mustParse(t, tc.b)
		if got := a.SameOrigin(b); got != tc.want {
			const tmpl = "%s: SameOrigin(%q, %q): got %t; want %t"
			t.Errorf(tmpl, tc.desc, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestOriginIsOpaque(t *testing.T) {
	if mustParse(t, "http://h/").Origin().IsOpaque() {
		t.Error("http origin reported opaque")
	}
	if !mustParse(t, "file:///x").Origin().IsOpaque() {
		t.Error("file origin reported non-opaque")
	}
}

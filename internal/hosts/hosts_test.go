package hosts

import (
	"errors"
	"testing"

	"github.com/webstd/whatwgurl/urlerrors"
)

var parseHostCases = []struct {
	desc      string
	input     string
	isSpecial bool
	want      Host
	failure   bool
	kind      urlerrors.Kind
}{
	{
		desc:      "plain domain",
		input:     "example.com",
		isSpecial: true,
		want:      Host{Kind: Domain, Value: "example.com"},
	}, {
		desc:      "domain folds to lowercase",
		input:     "EXAMPLE.com",
		isSpecial: true,
		want:      Host{Kind: Domain, Value: "example.com"},
	}, {
		desc:      "percent-encoded domain is decoded first",
		input:     "ex%41mple.com",
		isSpecial: true,
		want:      Host{Kind: Domain, Value: "example.com"},
	}, {
		desc:      "IDNA mapping",
		input:     "münchen.de",
		isSpecial: true,
		want:      Host{Kind: Domain, Value: "xn--mnchen-3ya.de"},
	}, {
		desc:      "punycode passes through",
		input:     "xn--mnchen-3ya.de",
		isSpecial: true,
		want:      Host{Kind: Domain, Value: "xn--mnchen-3ya.de"},
	}, {
		desc:      "underscore tolerated in domains",
		input:     "some_host",
		isSpecial: true,
		want:      Host{Kind: Domain, Value: "some_host"},
	}, {
		desc:      "localhost is a plain domain here",
		input:     "localhost",
		isSpecial: true,
		want:      Host{Kind: Domain, Value: "localhost"},
	}, {
		desc:      "numeric host becomes IPv4",
		input:     "0x7f.1",
		isSpecial: true,
		want:      Host{Kind: IPv4, Addr4: 0x7f000001},
	}, {
		desc:      "dotted quad",
		input:     "127.0.0.1",
		isSpecial: true,
		want:      Host{Kind: IPv4, Addr4: 0x7f000001},
	}, {
		desc:      "numeric host out of range",
		input:     "4294967296",
		isSpecial: true,
		failure:   true,
		kind:      urlerrors.KindHost,
	}, {
		desc:      "bracketed IPv6",
		input:     "[::1]",
		isSpecial: true,
		want:      Host{Kind: IPv6, Addr6: [8]uint16{7: 1}},
	}, {
		desc:      "bracketed IPv6 for non-special schemes too",
		input:     "[::1]",
		isSpecial: false,
		want:      Host{Kind: IPv6, Addr6: [8]uint16{7: 1}},
	}, {
		desc:      "unmatched bracket",
		input:     "[::1",
		isSpecial: true,
		failure:   true,
		kind:      urlerrors.KindHost,
	}, {
		desc:      "malformed IPv6",
		input:     "[1::2::3]",
		isSpecial: true,
		failure:   true,
		kind:      urlerrors.KindHost,
	}, {
		desc:      "space is forbidden in domains",
		input:     "ex ample.com",
		isSpecial: true,
		failure:   true,
		kind:      urlerrors.KindHost,
	}, {
		desc:      "decoded forbidden byte",
		input:     "ex%2Fample",
		isSpecial: true,
		failure:   true,
		kind:      urlerrors.KindHost,
	}, {
		desc:      "leftover percent is forbidden in domains",
		input:     "100%",
		isSpecial: true,
		failure:   true,
		kind:      urlerrors.KindHost,
	}, {
		desc:      "opaque host keeps escapes",
		input:     "ho%20st",
		isSpecial: false,
		want:      Host{Kind: Opaque, Value: "ho%20st"},
	}, {
		desc:      "opaque host keeps case",
		input:     "EXAMPLE.com",
		isSpecial: false,
		want:      Host{Kind: Opaque, Value: "EXAMPLE.com"},
	}, {
		desc:      "opaque host encodes control bytes",
		input:     "h\x01st",
		isSpecial: false,
		want:      Host{Kind: Opaque, Value: "h%01st"},
	}, {
		desc:      "space is forbidden in opaque hosts",
		input:     "h st",
		isSpecial: false,
		failure:   true,
		kind:      urlerrors.KindHost,
	}, {
		desc:      "percent is allowed in opaque hosts",
		input:     "100%",
		isSpecial: false,
		want:      Host{Kind: Opaque, Value: "100%"},
	}, {
		desc:  "empty input is the empty host",
		input: "",
		want:  Host{Kind: Empty},
	},
}

func TestParseHost(t *testing.T) {
	for _, tc := range parseHostCases {
		got, err := Parse(tc.input, tc.isSpecial)
		if tc.failure {
			if err == nil {
				const tmpl = "%s: Parse(%q, %t): got %+v; want failure"
				t.Errorf(tmpl, tc.desc, tc.input, tc.isSpecial, got)
				continue
			}
			var parseErr *urlerrors.ParseError
			if !errors.As(err, &parseErr) || parseErr.Kind != tc.kind {
				const tmpl = "%s: Parse(%q, %t): got error %v; want kind %v"
				t.Errorf(tmpl, tc.desc, tc.input, tc.isSpecial, err, tc.kind)
			}
			continue
		}
		if err != nil {
			const tmpl = "%s: Parse(%q, %t): got %v; want %+v"
			t.Errorf(tmpl, tc.desc, tc.input, tc.isSpecial, err, tc.want)
			continue
		}
		if got != tc.want {
			const tmpl = "%s: Parse(%q, %t): got %+v; want %+v"
			t.Errorf(tmpl, tc.desc, tc.input, tc.isSpecial, got, tc.want)
		}
	}
}

func TestHostString(t *testing.T) {
	cases := []struct {
		desc string
		host Host
		want string
	}{
		{
			desc: "null host",
			host: Host{},
			want: "",
		}, {
			desc: "empty host",
			host: Host{Kind: Empty},
			want: "",
		}, {
			desc: "domain",
			host: Host{Kind: Domain, Value: "example.com"},
			want: "example.com",
		}, {
			desc: "opaque",
			host: Host{Kind: Opaque, Value: "ho%20st"},
			want: "ho%20st",
		}, {
			desc: "IPv4",
			host: Host{Kind: IPv4, Addr4: 0x7f000001},
			want: "127.0.0.1",
		}, {
			desc: "IPv6 is bracketed",
			host: Host{Kind: IPv6, Addr6: [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}},
			want: "[2001:db8::1]",
		},
	}
	for _, tc := range cases {
		if got := tc.host.String(); got != tc.want {
			const tmpl = "%s: String(): got %q; want %q"
			t.Errorf(tmpl, tc.desc, got, tc.want)
		}
	}
}

func TestDomainToASCII(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		failure bool
	}{
		{input: "example.com", want: "example.com"},
		{input: "EXAMPLE.COM", want: "example.com"},
		{input: "münchen.de", want: "xn--mnchen-3ya.de"},
		// non-transitional processing keeps sharp s distinct
		{input: "faß.de", want: "xn--fa-hia.de"},
		{input: "0x7f.1", want: "0x7f.1"},
		{input: "�", failure: true},
	}
	for _, tc := range cases {
		got, err := domainToASCII(tc.input)
		if tc.failure {
			if err == nil {
				const tmpl = "domainToASCII(%q): got %q; want failure"
				t.Errorf(tmpl, tc.input, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			const tmpl = "domainToASCII(%q): got %q, %v; want %q"
			t.Errorf(tmpl, tc.input, got, err, tc.want)
		}
	}
}

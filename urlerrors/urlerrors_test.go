package urlerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	cases := []struct {
		err  *ParseError
		want string
	}{
		{
			err:  &ParseError{Value: "http://[::1", Kind: KindHost},
			want: `whatwgurl: invalid host in "http://[::1"`,
		}, {
			err:  &ParseError{Value: "http://h:abc/", Kind: KindPort},
			want: `whatwgurl: invalid port in "http://h:abc/"`,
		}, {
			err:  &ParseError{Value: "foo", Kind: KindRelative},
			want: `whatwgurl: missing base for relative input in "foo"`,
		},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error(): got %q; want %q", got, tc.want)
		}
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("idna: disallowed rune")
	err := fmt.Errorf("wrapped: %w", &ParseError{
		Value: "http://%ff/",
		Kind:  KindIDNA,
		Cause: cause,
	})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Kind != KindIDNA {
		t.Fatalf("errors.As: failed to recover *ParseError from %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is: cause not found in %v", err)
	}
}

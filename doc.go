/*
Package whatwgurl parses, serializes, and mutates URLs as defined by the
[WHATWG URL standard] — the algorithm browsers implement — rather than the
RFC 3986 grammar implemented by [net/url].

The two disagree in ways that matter whenever your output must match what
a browser would request: this package resolves backslashes, strips tabs
and newlines, case-folds and IDNA-maps domains, normalizes numeric hosts
(http://0x7f.1/ is http://127.0.0.1/), compresses IPv6 addresses,
suppresses default ports, and percent-encodes each component under that
component's encode set.

[Parse] and [ParseWithBase] produce a [URL] record; its String method
returns the canonical serialization, and its setters (SetScheme, SetHost,
SetPathname, ...) mutate single fields by re-running the parser in
state-override mode, leaving the record untouched on error. Parse
failures are classified by package
[github.com/webstd/whatwgurl/urlerrors].

Inputs may be arbitrary byte sequences: non-ASCII bytes survive through
percent-encoding, and valid UTF-8 input produces output identical to the
standard's. Domains are mapped to ASCII through UTS-46 lookup processing
(via [golang.org/x/net/idna]); ASCII-only domains simply fold to
lowercase.

[WHATWG URL standard]: https://url.spec.whatwg.org
*/
package whatwgurl

package encode

import (
	"github.com/webstd/whatwgurl/internal/util"
)

// The [percent-encode sets] of the URL standard. Fragment and Query each
// extend C0Control; SpecialQuery and Path each extend Query; Userinfo
// extends Path, and Component extends Userinfo. A byte is percent-encoded under a set if
// the set contains it; bytes outside the ASCII range are always encoded,
// regardless of the set (see [AppendByte]).
//
// [percent-encode sets]: https://url.spec.whatwg.org/#percent-encoded-bytes
var (
	C0Control    = util.ASCIISet{}.WithRange(0x00, 0x1f).WithRange(0x7f, 0x7f)
	Fragment     = C0Control.Union(util.MakeASCIISet(" \"<>`"))
	Query        = C0Control.Union(util.MakeASCIISet(" \"#<>"))
	SpecialQuery = Query.Union(util.MakeASCIISet("'"))
	Path         = Query.Union(util.MakeASCIISet("?`{}"))
	Userinfo     = Path.Union(util.MakeASCIISet("/:;=@[\\]^|"))
	Component    = Userinfo.Union(util.MakeASCIISet("$%&+,"))
)

// urlCodePoints holds the ASCII characters that are [URL code points]:
// alphanumerics plus a fixed set of punctuation.
//
// [URL code points]: https://url.spec.whatwg.org/#url-code-points
var urlCodePoints = util.MakeASCIISet(
	"0123456789" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"!$&'()*+,-./:;=?@_~")

// IsURLCodePoint reports whether byte c may appear verbatim in a URL
// component. Bytes outside the ASCII range are treated as opaque and
// allowed; they get percent-encoded rather than rejected.
func IsURLCodePoint(c byte) bool {
	return c >= 0x80 || urlCodePoints.Contains(c)
}

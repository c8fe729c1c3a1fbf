package whatwgurl

import (
	"slices"
	"strconv"
	"strings"

	"github.com/webstd/whatwgurl/internal/encode"
	"github.com/webstd/whatwgurl/internal/hosts"
	"github.com/webstd/whatwgurl/internal/util"
	"github.com/webstd/whatwgurl/urlerrors"
)

// A state identifies one state of the parser state machine.
type state uint8

const (
	stateNone state = iota // marks the absence of a state override

	stateSchemeStart
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)

// An action tells the driver what to do with the cursor after a state
// handler has processed the current byte.
type action uint8

const (
	// actionAdvance moves the cursor to the next byte.
	actionAdvance action = iota
	// actionReprocess feeds the current byte to the (new) current state
	// without moving the cursor.
	actionReprocess
	// actionDone ends the parse successfully, before end of input.
	actionDone
)

// A parser holds the mutable state of one run of the state machine.
// It writes through a scratch record that the caller commits on success,
// so a failed run never corrupts an existing URL.
type parser struct {
	input    string
	base     *URL
	url      *URL
	state    state
	override state // stateNone when parsing a full URL

	i      int // cursor into input
	buffer []byte

	atSignSeen        bool
	insideBrackets    bool
	passwordTokenSeen bool
}

// preprocess trims leading and trailing C0 controls and spaces (full
// parses only) and removes all tabs and newlines. It reports whether the
// input was modified, which the caller records as a validation error.
func preprocess(input string, trim bool) (string, bool) {
	modified := false
	if trim {
		trimmed := strings.TrimFunc(input, func(r rune) bool { return r <= 0x20 })
		modified = len(trimmed) != len(input)
		input = trimmed
	}
	if strings.ContainsAny(input, "\t\n\r") {
		modified = true
		var sb strings.Builder
		sb.Grow(len(input))
		for i := 0; i < len(input); i++ {
			switch input[i] {
			case '\t', '\n', '\r':
			default:
				sb.WriteByte(input[i])
			}
		}
		input = sb.String()
	}
	return input, modified
}

// basicParse runs the state machine over input. When existing is non-nil,
// it parses into a clone of existing, starting from override and writing
// only the overridden field; otherwise it parses a complete URL from
// scratch, resolving against base if one is given.
func basicParse(input string, base, existing *URL, override state) (*URL, error) {
	url := &URL{port: noPort}
	if existing != nil {
		url = existing.clone()
	}
	input, modified := preprocess(input, existing == nil)
	if modified {
		url.validationError = true
	}
	p := parser{
		input:    input,
		base:     base,
		url:      url,
		state:    stateSchemeStart,
		override: override,
	}
	if override != stateNone {
		p.state = override
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return url, nil
}

// run drives the state machine: one byte (or the EOF sentinel) per
// iteration, with the cursor owned here so that handlers can ask for the
// current byte to be reprocessed in a new state without double-advancing.
func (p *parser) run() error {
	for {
		var c byte
		eof := p.i >= len(p.input)
		if !eof {
			c = p.input[p.i]
		}
		act, err := p.step(c, eof)
		if err != nil {
			return err
		}
		switch act {
		case actionDone:
			return nil
		case actionReprocess:
			continue
		}
		// The cursor may have been rewound; re-check against the live
		// position rather than the eof flag computed above.
		if p.i >= len(p.input) {
			return nil
		}
		p.i++
	}
}

func (p *parser) step(c byte, eof bool) (action, error) {
	switch p.state {
	case stateSchemeStart:
		return p.schemeStart(c, eof)
	case stateScheme:
		return p.scheme(c, eof)
	case stateNoScheme:
		return p.noScheme(c, eof)
	case stateSpecialRelativeOrAuthority:
		return p.specialRelativeOrAuthority(c, eof)
	case statePathOrAuthority:
		return p.pathOrAuthority(c, eof)
	case stateRelative:
		return p.relative(c, eof)
	case stateRelativeSlash:
		return p.relativeSlash(c, eof)
	case stateSpecialAuthoritySlashes:
		return p.specialAuthoritySlashes(c, eof)
	case stateSpecialAuthorityIgnoreSlashes:
		return p.specialAuthorityIgnoreSlashes(c, eof)
	case stateAuthority:
		return p.authority(c, eof)
	case stateHost, stateHostname:
		return p.host(c, eof)
	case statePort:
		return p.port(c, eof)
	case stateFile:
		return p.file(c, eof)
	case stateFileSlash:
		return p.fileSlash(c, eof)
	case stateFileHost:
		return p.fileHost(c, eof)
	case statePathStart:
		return p.pathStart(c, eof)
	case statePath:
		return p.path(c, eof)
	case stateOpaquePath:
		return p.opaquePath(c, eof)
	case stateQuery:
		return p.query(c, eof)
	case stateFragment:
		return p.fragment(c, eof)
	default:
		panic("whatwgurl: unknown parser state")
	}
}

// remaining returns the input after the current byte.
func (p *parser) remaining() string {
	if p.i+1 >= len(p.input) {
		return ""
	}
	return p.input[p.i+1:]
}

// fromCursor returns the input from the current byte on.
func (p *parser) fromCursor() string {
	if p.i >= len(p.input) {
		return ""
	}
	return p.input[p.i:]
}

func (p *parser) fail(kind urlerrors.Kind) (action, error) {
	return 0, &urlerrors.ParseError{Value: p.input, Kind: kind}
}

func (p *parser) schemeStart(c byte, eof bool) (action, error) {
	if !eof && util.IsAlpha(c) {
		p.buffer = append(p.buffer, util.ByteLowercaseOne(c))
		p.state = stateScheme
		return actionAdvance, nil
	}
	if p.override == stateNone {
		p.state = stateNoScheme
		p.i = 0
		return actionReprocess, nil
	}
	p.url.validationError = true
	return p.fail(urlerrors.KindScheme)
}

func (p *parser) scheme(c byte, eof bool) (action, error) {
	switch {
	case !eof && (util.IsAlphanumeric(c) || c == '+' || c == '-' || c == '.'):
		p.buffer = append(p.buffer, util.ByteLowercaseOne(c))
		return actionAdvance, nil
	case !eof && c == ':':
		scheme := string(p.buffer)
		if p.override != stateNone {
			if isSpecialScheme(p.url.scheme) != isSpecialScheme(scheme) {
				return p.fail(urlerrors.KindScheme)
			}
			if scheme == "file" && (p.url.includesCredentials() || p.url.port != noPort) {
				return p.fail(urlerrors.KindScheme)
			}
			if p.url.scheme == "file" &&
				(p.url.host.Kind == hosts.None || p.url.host.Kind == hosts.Empty) {
				return p.fail(urlerrors.KindScheme)
			}
			p.url.scheme = scheme
			if p.url.port != noPort && p.url.port == defaultPort(scheme) {
				p.url.port = noPort
			}
			return actionDone, nil
		}
		p.url.scheme = scheme
		p.buffer = p.buffer[:0]
		switch {
		case p.url.scheme == "file":
			if !strings.HasPrefix(p.remaining(), "//") {
				p.url.validationError = true
			}
			p.state = stateFile
		case p.url.isSpecial() && p.base != nil && p.base.scheme == p.url.scheme:
			p.state = stateSpecialRelativeOrAuthority
		case p.url.isSpecial():
			p.state = stateSpecialAuthoritySlashes
		case strings.HasPrefix(p.remaining(), "/"):
			p.state = statePathOrAuthority
			p.i++
		default:
			p.url.cannotBeABase = true
			p.url.path = append(p.url.path, "")
			p.state = stateOpaquePath
		}
		return actionAdvance, nil
	case p.override == stateNone:
		p.buffer = p.buffer[:0]
		p.state = stateNoScheme
		p.i = 0
		return actionReprocess, nil
	default:
		return p.fail(urlerrors.KindScheme)
	}
}

func (p *parser) noScheme(c byte, eof bool) (action, error) {
	if p.base == nil || (p.base.cannotBeABase && (eof || c != '#')) {
		p.url.validationError = true
		return p.fail(urlerrors.KindRelative)
	}
	if p.base.cannotBeABase && c == '#' {
		p.url.scheme = p.base.scheme
		p.url.path = slices.Clone(p.base.path)
		p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
		p.url.fragment, p.url.hasFragment = "", true
		p.url.cannotBeABase = true
		p.state = stateFragment
		return actionAdvance, nil
	}
	if p.base.scheme != "file" {
		p.state = stateRelative
	} else {
		p.state = stateFile
	}
	p.i = 0
	return actionReprocess, nil
}

func (p *parser) specialRelativeOrAuthority(c byte, eof bool) (action, error) {
	if !eof && c == '/' && strings.HasPrefix(p.remaining(), "/") {
		p.i++ // skip the second slash too
		p.state = stateSpecialAuthorityIgnoreSlashes
		return actionAdvance, nil
	}
	p.url.validationError = true
	p.state = stateRelative
	return actionReprocess, nil
}

func (p *parser) pathOrAuthority(c byte, eof bool) (action, error) {
	if !eof && c == '/' {
		p.state = stateAuthority
		return actionAdvance, nil
	}
	p.state = statePath
	return actionReprocess, nil
}

// copyBaseAuthority copies the base URL's credentials, host, and port.
func (p *parser) copyBaseAuthority() {
	p.url.username = p.base.username
	p.url.password = p.base.password
	p.url.host = p.base.host
	p.url.port = p.base.port
}

func (p *parser) relative(c byte, eof bool) (action, error) {
	p.url.scheme = p.base.scheme
	switch {
	case eof:
		p.copyBaseAuthority()
		p.url.path = slices.Clone(p.base.path)
		p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
		return actionAdvance, nil
	case c == '/':
		p.state = stateRelativeSlash
		return actionAdvance, nil
	case c == '?':
		p.copyBaseAuthority()
		p.url.path = slices.Clone(p.base.path)
		p.url.query, p.url.hasQuery = "", true
		p.state = stateQuery
		return actionAdvance, nil
	case c == '#':
		p.copyBaseAuthority()
		p.url.path = slices.Clone(p.base.path)
		p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
		p.url.fragment, p.url.hasFragment = "", true
		p.state = stateFragment
		return actionAdvance, nil
	case p.url.isSpecial() && c == '\\':
		p.url.validationError = true
		p.state = stateRelativeSlash
		return actionAdvance, nil
	default:
		p.copyBaseAuthority()
		p.url.path = slices.Clone(p.base.path)
		p.url.shortenPath()
		p.state = statePath
		return actionReprocess, nil
	}
}

func (p *parser) relativeSlash(c byte, eof bool) (action, error) {
	switch {
	case !eof && p.url.isSpecial() && (c == '/' || c == '\\'):
		if c == '\\' {
			p.url.validationError = true
		}
		p.state = stateSpecialAuthorityIgnoreSlashes
		return actionAdvance, nil
	case !eof && c == '/':
		p.state = stateAuthority
		return actionAdvance, nil
	default:
		p.copyBaseAuthority()
		p.state = statePath
		return actionReprocess, nil
	}
}

func (p *parser) specialAuthoritySlashes(c byte, eof bool) (action, error) {
	if !eof && c == '/' && strings.HasPrefix(p.remaining(), "/") {
		p.i++ // skip the second slash too
		p.state = stateSpecialAuthorityIgnoreSlashes
		return actionAdvance, nil
	}
	p.url.validationError = true
	p.state = stateSpecialAuthorityIgnoreSlashes
	return actionReprocess, nil
}

func (p *parser) specialAuthorityIgnoreSlashes(c byte, eof bool) (action, error) {
	if eof || (c != '/' && c != '\\') {
		p.state = stateAuthority
		return actionReprocess, nil
	}
	p.url.validationError = true
	return actionAdvance, nil
}

func (p *parser) authority(c byte, eof bool) (action, error) {
	switch {
	case !eof && c == '@':
		p.url.validationError = true
		if p.atSignSeen {
			p.buffer = append([]byte("%40"), p.buffer...)
		}
		p.atSignSeen = true
		username := []byte(p.url.username)
		password := []byte(p.url.password)
		for _, b := range p.buffer {
			if b == ':' && !p.passwordTokenSeen {
				p.passwordTokenSeen = true
				continue
			}
			if p.passwordTokenSeen {
				password = encode.AppendByte(password, b, &encode.Userinfo)
			} else {
				username = encode.AppendByte(username, b, &encode.Userinfo)
			}
		}
		p.url.username = string(username)
		p.url.password = string(password)
		p.buffer = p.buffer[:0]
		return actionAdvance, nil
	case eof || c == '/' || c == '?' || c == '#' || (p.url.isSpecial() && c == '\\'):
		if p.atSignSeen && len(p.buffer) == 0 {
			p.url.validationError = true
			return p.fail(urlerrors.KindHost)
		}
		// Rewind to the first byte of the host and reparse it there.
		p.i -= len(p.buffer) + 1
		p.buffer = p.buffer[:0]
		p.state = stateHost
		return actionAdvance, nil
	default:
		p.buffer = append(p.buffer, c)
		return actionAdvance, nil
	}
}

func (p *parser) host(c byte, eof bool) (action, error) {
	if p.override != stateNone && p.url.scheme == "file" {
		p.state = stateFileHost
		return actionReprocess, nil
	}
	switch {
	case !eof && c == ':' && !p.insideBrackets:
		if len(p.buffer) == 0 {
			p.url.validationError = true
			return p.fail(urlerrors.KindHost)
		}
		host, err := hosts.Parse(string(p.buffer), p.url.isSpecial())
		if err != nil {
			return 0, err
		}
		p.url.host = host
		p.buffer = p.buffer[:0]
		p.state = statePort
		if p.override == stateHostname {
			return actionDone, nil
		}
		return actionAdvance, nil
	case eof || c == '/' || c == '?' || c == '#' || (p.url.isSpecial() && c == '\\'):
		if p.url.isSpecial() && len(p.buffer) == 0 {
			p.url.validationError = true
			return p.fail(urlerrors.KindHost)
		}
		if p.override != stateNone && len(p.buffer) == 0 &&
			(p.url.includesCredentials() || p.url.port != noPort) {
			p.url.validationError = true
			return actionDone, nil
		}
		host, err := hosts.Parse(string(p.buffer), p.url.isSpecial())
		if err != nil {
			return 0, err
		}
		p.url.host = host
		p.buffer = p.buffer[:0]
		if p.override != stateNone {
			return actionDone, nil
		}
		p.state = statePathStart
		return actionReprocess, nil
	default:
		if c == '[' {
			p.insideBrackets = true
		}
		if c == ']' {
			p.insideBrackets = false
		}
		p.buffer = append(p.buffer, c)
		return actionAdvance, nil
	}
}

func (p *parser) port(c byte, eof bool) (action, error) {
	switch {
	case !eof && util.IsDigit(c):
		p.buffer = append(p.buffer, c)
		return actionAdvance, nil
	case eof || c == '/' || c == '?' || c == '#' ||
		(p.url.isSpecial() && c == '\\') ||
		p.override != stateNone:
		if len(p.buffer) > 0 {
			port, err := strconv.ParseUint(string(p.buffer), 10, 64)
			if err != nil || port > 65535 {
				p.url.validationError = true
				return p.fail(urlerrors.KindPort)
			}
			if int(port) == defaultPort(p.url.scheme) {
				p.url.port = noPort
			} else {
				p.url.port = int(port)
			}
			p.buffer = p.buffer[:0]
		}
		if p.override != stateNone {
			return actionDone, nil
		}
		p.state = statePathStart
		return actionReprocess, nil
	default:
		p.url.validationError = true
		return p.fail(urlerrors.KindPort)
	}
}

func (p *parser) file(c byte, eof bool) (action, error) {
	p.url.scheme = "file"
	p.url.host = hosts.Host{Kind: hosts.Empty}
	switch {
	case !eof && (c == '/' || c == '\\'):
		if c == '\\' {
			p.url.validationError = true
		}
		p.state = stateFileSlash
		return actionAdvance, nil
	case p.base != nil && p.base.scheme == "file":
		switch {
		case eof:
			p.url.host = p.base.host
			p.url.path = slices.Clone(p.base.path)
			p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
			return actionAdvance, nil
		case c == '?':
			p.url.host = p.base.host
			p.url.path = slices.Clone(p.base.path)
			p.url.query, p.url.hasQuery = "", true
			p.state = stateQuery
			return actionAdvance, nil
		case c == '#':
			p.url.host = p.base.host
			p.url.path = slices.Clone(p.base.path)
			p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
			p.url.fragment, p.url.hasFragment = "", true
			p.state = stateFragment
			return actionAdvance, nil
		default:
			if !startsWithWindowsDriveLetter(p.fromCursor()) {
				p.url.host = p.base.host
				p.url.path = slices.Clone(p.base.path)
				p.url.shortenPath()
			} else {
				p.url.validationError = true
			}
			p.state = statePath
			return actionReprocess, nil
		}
	default:
		p.state = statePath
		return actionReprocess, nil
	}
}

func (p *parser) fileSlash(c byte, eof bool) (action, error) {
	if !eof && (c == '/' || c == '\\') {
		if c == '\\' {
			p.url.validationError = true
		}
		p.state = stateFileHost
		return actionAdvance, nil
	}
	if p.base != nil && p.base.scheme == "file" &&
		!startsWithWindowsDriveLetter(p.fromCursor()) {
		if len(p.base.path) > 0 && isNormalizedWindowsDriveLetter(p.base.path[0]) {
			// The base's drive letter survives even though its host
			// does not get inherited.
			p.url.path = append(p.url.path, p.base.path[0])
		} else {
			p.url.host = p.base.host
		}
	}
	p.state = statePath
	return actionReprocess, nil
}

func (p *parser) fileHost(c byte, eof bool) (action, error) {
	if eof || c == '/' || c == '\\' || c == '?' || c == '#' {
		if p.override == stateNone && isWindowsDriveLetter(string(p.buffer)) {
			// Not a host after all; the buffer is left for the path
			// state to consume as a drive letter.
			p.url.validationError = true
			p.state = statePath
			return actionReprocess, nil
		}
		if len(p.buffer) == 0 {
			p.url.host = hosts.Host{Kind: hosts.Empty}
			if p.override != stateNone {
				return actionDone, nil
			}
			p.state = statePathStart
			return actionReprocess, nil
		}
		host, err := hosts.Parse(string(p.buffer), p.url.isSpecial())
		if err != nil {
			return 0, err
		}
		if host.Kind == hosts.Domain && host.Value == "localhost" {
			host = hosts.Host{Kind: hosts.Empty}
		}
		p.url.host = host
		if p.override != stateNone {
			return actionDone, nil
		}
		p.buffer = p.buffer[:0]
		p.state = statePathStart
		return actionReprocess, nil
	}
	p.buffer = append(p.buffer, c)
	return actionAdvance, nil
}

func (p *parser) pathStart(c byte, eof bool) (action, error) {
	if p.url.isSpecial() {
		if !eof && c == '\\' {
			p.url.validationError = true
		}
		p.state = statePath
		if eof || (c != '/' && c != '\\') {
			return actionReprocess, nil
		}
		return actionAdvance, nil
	}
	switch {
	case p.override == stateNone && !eof && c == '?':
		p.url.query, p.url.hasQuery = "", true
		p.state = stateQuery
		return actionAdvance, nil
	case p.override == stateNone && !eof && c == '#':
		p.url.fragment, p.url.hasFragment = "", true
		p.state = stateFragment
		return actionAdvance, nil
	case !eof:
		p.state = statePath
		if c != '/' {
			return actionReprocess, nil
		}
		return actionAdvance, nil
	default:
		return actionAdvance, nil
	}
}

func isSingleDotSegment(segment string) bool {
	switch len(segment) {
	case 1:
		return segment[0] == '.'
	case 3:
		return util.ByteLowercase(segment) == "%2e"
	default:
		return false
	}
}

func isDoubleDotSegment(segment string) bool {
	switch len(segment) {
	case 2:
		return segment == ".."
	case 4, 6:
		switch util.ByteLowercase(segment) {
		case ".%2e", "%2e.", "%2e%2e":
			return true
		}
	}
	return false
}

func (p *parser) path(c byte, eof bool) (action, error) {
	slash := !eof && (c == '/' || (p.url.isSpecial() && c == '\\'))
	if slash || eof || (p.override == stateNone && (c == '?' || c == '#')) {
		if !eof && p.url.isSpecial() && c == '\\' {
			p.url.validationError = true
		}
		segment := string(p.buffer)
		switch {
		case isDoubleDotSegment(segment):
			p.url.shortenPath()
			if !slash {
				p.url.path = append(p.url.path, "")
			}
		case isSingleDotSegment(segment):
			if !slash {
				p.url.path = append(p.url.path, "")
			}
		default:
			if p.url.scheme == "file" && len(p.url.path) == 0 &&
				isWindowsDriveLetter(segment) {
				if p.url.host.Kind != hosts.None && p.url.host.Kind != hosts.Empty {
					p.url.validationError = true
					p.url.host = hosts.Host{Kind: hosts.Empty}
				}
				segment = segment[:1] + ":"
			}
			p.url.path = append(p.url.path, segment)
		}
		p.buffer = p.buffer[:0]
		if p.url.scheme == "file" && (eof || c == '?' || c == '#') {
			for len(p.url.path) > 1 && p.url.path[0] == "" {
				p.url.validationError = true
				p.url.path = p.url.path[1:]
			}
		}
		switch {
		case !eof && c == '?' && p.override == stateNone:
			p.url.query, p.url.hasQuery = "", true
			p.state = stateQuery
		case !eof && c == '#' && p.override == stateNone:
			p.url.fragment, p.url.hasFragment = "", true
			p.state = stateFragment
		}
		return actionAdvance, nil
	}
	if !encode.IsURLCodePoint(c) && c != '%' {
		p.url.validationError = true
	}
	if c == '%' && !encode.ValidEscapeAt(p.input, p.i) {
		p.url.validationError = true
	}
	p.buffer = encode.AppendByte(p.buffer, c, &encode.Path)
	return actionAdvance, nil
}

func (p *parser) opaquePath(c byte, eof bool) (action, error) {
	flush := func() {
		if len(p.buffer) > 0 {
			p.url.path[0] += string(p.buffer)
			p.buffer = p.buffer[:0]
		}
	}
	switch {
	case !eof && c == '?':
		flush()
		p.url.query, p.url.hasQuery = "", true
		p.state = stateQuery
		return actionAdvance, nil
	case !eof && c == '#':
		flush()
		p.url.fragment, p.url.hasFragment = "", true
		p.state = stateFragment
		return actionAdvance, nil
	case eof:
		flush()
		return actionAdvance, nil
	default:
		if !encode.IsURLCodePoint(c) && c != '%' {
			p.url.validationError = true
		}
		if c == '%' && !encode.ValidEscapeAt(p.input, p.i) {
			p.url.validationError = true
		}
		p.buffer = encode.AppendByte(p.buffer, c, &encode.C0Control)
		return actionAdvance, nil
	}
}

func (p *parser) query(c byte, eof bool) (action, error) {
	if p.override == stateNone && !eof && c == '#' {
		p.url.query += string(p.buffer)
		p.buffer = p.buffer[:0]
		p.url.fragment, p.url.hasFragment = "", true
		p.state = stateFragment
		return actionAdvance, nil
	}
	if eof {
		p.url.query += string(p.buffer)
		p.buffer = p.buffer[:0]
		return actionAdvance, nil
	}
	set := &encode.Query
	if p.url.isSpecial() {
		set = &encode.SpecialQuery
	}
	p.buffer = encode.AppendByte(p.buffer, c, set)
	return actionAdvance, nil
}

func (p *parser) fragment(c byte, eof bool) (action, error) {
	if eof {
		p.url.fragment += string(p.buffer)
		p.buffer = p.buffer[:0]
		return actionAdvance, nil
	}
	if c == 0 {
		p.url.validationError = true
		return actionAdvance, nil
	}
	p.buffer = encode.AppendByte(p.buffer, c, &encode.Fragment)
	return actionAdvance, nil
}

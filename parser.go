package url

import (
	"strconv"
	"strings"
)

// state names one node of the WHATWG basic URL parser state machine from
// spec.md §4.9. Grounded on fasturl's single forward-pass parse with
// named sub-steps (getscheme/parseAuthority/setPath), generalized here
// into the full state enumeration the spec names instead of fasturl's
// two-branch dispatch.
type state int

const (
	stateSchemeStart state = iota
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
	stateCannotBeABaseURLPath
	stateQuery
	stateFragment
)

func (s state) String() string {
	switch s {
	case stateSchemeStart:
		return "scheme-start"
	case stateScheme:
		return "scheme"
	case stateNoScheme:
		return "no-scheme"
	case stateSpecialRelativeOrAuthority:
		return "special-relative-or-authority"
	case statePathOrAuthority:
		return "path-or-authority"
	case stateRelative:
		return "relative"
	case stateRelativeSlash:
		return "relative-slash"
	case stateSpecialAuthoritySlashes:
		return "special-authority-slashes"
	case stateSpecialAuthorityIgnoreSlashes:
		return "special-authority-ignore-slashes"
	case stateAuthority:
		return "authority"
	case stateHost:
		return "host"
	case stateHostname:
		return "hostname"
	case statePort:
		return "port"
	case stateFile:
		return "file"
	case stateFileSlash:
		return "file-slash"
	case stateFileHost:
		return "file-host"
	case statePathStart:
		return "path-start"
	case statePath:
		return "path"
	case stateCannotBeABaseURLPath:
		return "cannot-be-a-base-url-path"
	case stateQuery:
		return "query"
	case stateFragment:
		return "fragment"
	}
	return "unknown"
}

const eof rune = -1

// noOverride is passed as runBasicParser's override parameter for a
// fresh top-level Parse call, distinct from stateSchemeStart (which a
// setter can legitimately pass as an explicit override target).
const noOverride state = -1

// preprocess strips spec.md §4.9's leading/trailing C0-or-space and all
// interior tab/newline code points, reporting which trims fired.
func preprocess(input string) (string, []ValidationError) {
	var errs []ValidationError

	trimmed := strings.TrimFunc(input, func(r rune) bool {
		return r <= 0x20
	})
	if trimmed != input {
		errs = append(errs, ValidationError{Kind: ValC0OrSpaceTrimmed, Offset: 0})
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	stripped := false
	for _, r := range trimmed {
		if r == '\t' || r == '\n' || r == '\r' {
			stripped = true
			continue
		}
		b.WriteRune(r)
	}
	if stripped {
		errs = append(errs, ValidationError{Kind: ValTabOrNewlineStripped, Offset: 0})
	}
	return b.String(), errs
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isASCIIAlphanumeric(r rune) bool { return isASCIIAlpha(r) || isASCIIDigit(r) }

func isSchemeCodePoint(r rune) bool {
	return isASCIIAlphanumeric(r) || r == '+' || r == '-' || r == '.'
}

// isWindowsDriveLetter reports whether the two runes form a Windows
// drive letter ("c:" or "c|").
func isWindowsDriveLetter(a, b rune) bool {
	return isASCIIAlpha(a) && (b == ':' || b == '|')
}

func isNormalizedWindowsDriveLetter(a, b rune) bool {
	return isASCIIAlpha(a) && b == ':'
}

// startsWithWindowsDriveLetter reports whether runes[i:] begins with a
// drive letter followed by EOF, '/', '\\', '?' or '#'.
func startsWithWindowsDriveLetter(runes []rune, i int) bool {
	if len(runes)-i < 2 {
		return false
	}
	if !isWindowsDriveLetter(runes[i], runes[i+1]) {
		return false
	}
	if len(runes)-i == 2 {
		return true
	}
	switch runes[i+2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}

// parser holds the mutable working state of one basic-parser run.
type parser struct {
	url     *URL
	base    *URL
	cfg     *parseConfig
	input   []rune
	pointer int
	buffer  string
	state   state
	errs    []ValidationError

	stateOverride     bool
	atSignSeen        bool
	insideBrackets    bool
	passwordTokenSeen bool
}

func (p *parser) c() rune {
	if p.pointer < 0 || p.pointer >= len(p.input) {
		return eof
	}
	return p.input[p.pointer]
}

func (p *parser) remaining() []rune {
	if p.pointer+1 >= len(p.input) {
		return nil
	}
	return p.input[p.pointer+1:]
}

func (p *parser) report(kind ValidationErrorKind) {
	p.errs = append(p.errs, ValidationError{Kind: kind, Offset: p.pointer})
}

func (p *parser) fail(kind ParseErrorKind) error {
	return newParseError(kind, string(p.input), p.state.String())
}

// runBasicParser implements spec.md §4.9's basic URL parser, writing the
// result into dst on success. On error dst is left untouched, matching
// spec.md §7's rollback contract.
func runBasicParser(dst *URL, input string, base *URL, override state, cfg *parseConfig) error {
	cleaned, preErrs := preprocess(input)

	var work *URL
	if override == noOverride {
		work = &URL{}
	} else {
		// A setter re-entry starts from the existing record so that only
		// the overridden component's state chain gets to mutate it.
		work = cloneURL(dst)
	}
	p := &parser{
		url:     work,
		base:    base,
		cfg:     cfg,
		input:   []rune(cleaned),
		pointer: 0,
		state:   stateSchemeStart,
		errs:    preErrs,
	}
	if override != noOverride {
		p.state = override
		p.stateOverride = true
	}

	for {
		if err := p.step(); err != nil {
			return err
		}
		if p.pointer > len(p.input) {
			break
		}
		p.pointer++
		if p.pointer > len(p.input) {
			break
		}
	}

	*dst = *work
	dst.validationErrors = p.errs
	if override == noOverride {
		dst.legacySemicolonSeparator = cfg.legacySemicolonSeparator
	}
	return nil
}

// step executes the action for the current state at the current
// pointer, possibly advancing p.state. The EOF iteration (pointer ==
// len(p.input)) still runs exactly once per state, matching the spec's
// "c is EOF" branches.
func (p *parser) step() error {
	switch p.state {
	case stateSchemeStart:
		return p.schemeStart()
	case stateScheme:
		return p.scheme()
	case stateNoScheme:
		return p.noScheme()
	case stateSpecialRelativeOrAuthority:
		return p.specialRelativeOrAuthority()
	case statePathOrAuthority:
		return p.pathOrAuthority()
	case stateRelative:
		return p.relative()
	case stateRelativeSlash:
		return p.relativeSlash()
	case stateSpecialAuthoritySlashes:
		return p.specialAuthoritySlashes()
	case stateSpecialAuthorityIgnoreSlashes:
		return p.specialAuthorityIgnoreSlashes()
	case stateAuthority:
		return p.authority()
	case stateHost, stateHostname:
		return p.host()
	case statePort:
		return p.port()
	case stateFile:
		return p.file()
	case stateFileSlash:
		return p.fileSlash()
	case stateFileHost:
		return p.fileHost()
	case statePathStart:
		return p.pathStart()
	case statePath:
		return p.path()
	case stateCannotBeABaseURLPath:
		return p.cannotBeABaseURLPath()
	case stateQuery:
		return p.query()
	case stateFragment:
		return p.fragment()
	}
	return nil
}

func (p *parser) schemeStart() error {
	c := p.c()
	switch {
	case isASCIIAlpha(c):
		p.buffer += string(toLowerASCII(c))
		p.state = stateScheme
	default:
		if p.stateOverride {
			return p.fail(ErrKindMissingSchemeNonRelativeURL)
		}
		p.state = stateNoScheme
		p.pointer--
	}
	return nil
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func (p *parser) scheme() error {
	c := p.c()
	switch {
	case isSchemeCodePoint(c):
		p.buffer += string(toLowerASCII(c))
		return nil
	case c == ':':
		scheme := p.buffer
		if p.stateOverride {
			wasSpecial := isSpecialScheme(p.url.scheme)
			nowSpecial := isSpecialScheme(scheme)
			if wasSpecial != nowSpecial {
				return nil
			}
			if (scheme == "file" && (p.url.username != "" || p.url.password != "" || p.url.hasHost)) ||
				(p.url.scheme == "file" && !p.url.hasHost) {
				return nil
			}
		}
		p.url.scheme = scheme
		if p.stateOverride {
			if port, ok := DefaultPort(p.url.scheme); ok && p.url.port != nil && *p.url.port == port {
				p.url.port = nil
			}
			p.pointer = len(p.input)
			return nil
		}
		p.buffer = ""
		switch {
		case p.url.scheme == "file":
			p.state = stateFile
		case isSpecialScheme(p.url.scheme) && p.base != nil && p.base.scheme == p.url.scheme:
			p.state = stateSpecialRelativeOrAuthority
		case isSpecialScheme(p.url.scheme):
			p.state = stateSpecialAuthoritySlashes
		case len(p.remaining()) > 0 && p.remaining()[0] == '/':
			p.state = statePathOrAuthority
			p.pointer++
		default:
			p.url.cannotBeABaseURL = true
			p.url.pathSegments = nil
			p.state = stateCannotBeABaseURLPath
		}
		return nil
	default:
		if p.stateOverride {
			return p.fail(ErrKindMissingSchemeNonRelativeURL)
		}
		p.buffer = ""
		p.state = stateNoScheme
		p.pointer = -1
	}
	return nil
}

func (p *parser) noScheme() error {
	c := p.c()
	if p.base == nil || (p.base.cannotBeABaseURL && c != '#') {
		return p.fail(ErrKindMissingSchemeNonRelativeURL)
	}
	if p.base.cannotBeABaseURL && c == '#' {
		p.url.scheme = p.base.scheme
		p.url.cannotBeABaseURL = true
		p.url.opaquePath = p.base.opaquePath
		p.url.query = copyStrPtr(p.base.query)
		p.url.fragment = ptrTo("")
		p.buffer = ""
		p.state = stateFragment
		return nil
	}
	if p.base.scheme != "file" {
		p.state = stateRelative
		p.pointer--
		return nil
	}
	p.state = stateFile
	p.pointer--
	return nil
}

func (p *parser) specialRelativeOrAuthority() error {
	c := p.c()
	if c == '/' && len(p.remaining()) > 0 && p.remaining()[0] == '/' {
		p.state = stateSpecialAuthorityIgnoreSlashes
		p.pointer++
		return nil
	}
	p.state = stateRelative
	p.pointer--
	return nil
}

func (p *parser) pathOrAuthority() error {
	if p.c() == '/' {
		p.state = stateAuthority
		return nil
	}
	p.state = statePath
	p.pointer--
	return nil
}

func (p *parser) relative() error {
	p.url.scheme = p.base.scheme
	c := p.c()
	switch {
	case c == '/':
		p.state = stateRelativeSlash
	case isSpecialScheme(p.url.scheme) && c == '\\':
		p.report(ValBackslashInSpecialPath)
		p.state = stateRelativeSlash
	default:
		p.url.username = p.base.username
		p.url.password = p.base.password
		p.url.host = p.base.host
		p.url.hasHost = p.base.hasHost
		p.url.port = copyU16Ptr(p.base.port)
		p.url.pathSegments = append([]string(nil), p.base.pathSegments...)
		p.url.query = copyStrPtr(p.base.query)
		switch c {
		case '?':
			p.url.query = ptrTo("")
			p.state = stateQuery
		case '#':
			p.url.fragment = ptrTo("")
			p.state = stateFragment
		case eof:
		default:
			p.url.query = nil
			if len(p.url.pathSegments) > 0 {
				p.url.pathSegments = p.url.pathSegments[:len(p.url.pathSegments)-1]
			}
			p.state = statePath
			p.pointer--
		}
	}
	return nil
}

func (p *parser) relativeSlash() error {
	c := p.c()
	if isSpecialScheme(p.url.scheme) && (c == '/' || c == '\\') {
		if c == '\\' {
			p.report(ValBackslashInSpecialPath)
		}
		p.state = stateSpecialAuthorityIgnoreSlashes
		return nil
	}
	if c == '/' {
		p.state = stateAuthority
		return nil
	}
	p.url.username = p.base.username
	p.url.password = p.base.password
	p.url.host = p.base.host
	p.url.hasHost = p.base.hasHost
	p.url.port = copyU16Ptr(p.base.port)
	p.state = statePath
	p.pointer--
	return nil
}

func (p *parser) specialAuthoritySlashes() error {
	if p.c() == '/' && len(p.remaining()) > 0 && p.remaining()[0] == '/' {
		p.pointer++
		p.state = stateSpecialAuthorityIgnoreSlashes
		return nil
	}
	p.report(ValSpecialSchemeMissingSol)
	p.state = stateSpecialAuthorityIgnoreSlashes
	p.pointer--
	return nil
}

func (p *parser) specialAuthorityIgnoreSlashes() error {
	c := p.c()
	if c != '/' && c != '\\' {
		p.state = stateAuthority
		p.pointer--
		return nil
	}
	p.report(ValSpecialSchemeMissingSol)
	return nil
}

func (p *parser) authority() error {
	c := p.c()
	if c == '@' {
		p.report(ValInvalidCredentials)
		if p.atSignSeen {
			p.buffer = prependString(p.buffer, "%40")
		}
		p.atSignSeen = true
		buffered := []rune(p.buffer)
		for _, r := range buffered {
			if r == ':' && !p.passwordTokenSeen {
				p.passwordTokenSeen = true
				continue
			}
			enc := percentEncodeRune(r, userinfoEncodeSet)
			if p.passwordTokenSeen {
				p.url.password += enc
			} else {
				p.url.username += enc
			}
		}
		p.buffer = ""
		return nil
	}
	if c == eof || c == '/' || c == '?' || c == '#' || (isSpecialScheme(p.url.scheme) && c == '\\') {
		if p.atSignSeen && len(p.buffer) == 0 {
			return p.fail(ErrKindEmptyHost)
		}
		p.pointer -= len([]rune(p.buffer)) + 1
		p.buffer = ""
		p.state = stateHost
		return nil
	}
	p.buffer += string(c)
	return nil
}

func (p *parser) host() error {
	c := p.c()
	if p.stateOverride && p.url.scheme == "file" {
		p.pointer--
		p.state = stateFileHost
		return nil
	}
	if c == ':' && !p.insideBrackets {
		if len(p.buffer) == 0 {
			return p.fail(ErrKindEmptyHost)
		}
		if p.stateOverride && p.state == stateHostname {
			p.pointer = len(p.input)
			return nil
		}
		h, err := parseHost(p.buffer, isSpecialScheme(p.url.scheme))
		if err != nil {
			return err
		}
		p.url.host = h
		p.url.hasHost = true
		p.buffer = ""
		p.state = statePort
		return nil
	}
	if c == eof || c == '/' || c == '?' || c == '#' || (isSpecialScheme(p.url.scheme) && c == '\\') {
		p.pointer--
		if isSpecialScheme(p.url.scheme) && len(p.buffer) == 0 {
			return p.fail(ErrKindEmptyHost)
		}
		if p.stateOverride && len(p.buffer) == 0 && (p.url.username != "" || p.url.password != "" || p.url.port != nil) {
			p.pointer = len(p.input)
			return nil
		}
		h, err := parseHost(p.buffer, isSpecialScheme(p.url.scheme))
		if err != nil {
			return err
		}
		p.url.host = h
		p.url.hasHost = true
		p.buffer = ""
		p.state = statePathStart
		if p.stateOverride {
			p.pointer = len(p.input)
		}
		return nil
	}
	switch c {
	case '[':
		p.insideBrackets = true
	case ']':
		p.insideBrackets = false
	}
	p.buffer += string(c)
	return nil
}

func (p *parser) port() error {
	c := p.c()
	switch {
	case isASCIIDigit(c):
		p.buffer += string(c)
		return nil
	case c == eof || c == '/' || c == '?' || c == '#' || (isSpecialScheme(p.url.scheme) && c == '\\') || p.stateOverride:
		if len(p.buffer) > 0 {
			n, err := strconv.ParseUint(p.buffer, 10, 32)
			if err != nil || n > 65535 {
				return p.fail(ErrKindInvalidPort)
			}
			port := uint16(n)
			if def, ok := DefaultPort(p.url.scheme); ok && def == port {
				p.url.port = nil
			} else {
				p.url.port = &port
			}
			p.buffer = ""
		}
		if p.stateOverride {
			p.pointer = len(p.input)
			return nil
		}
		p.state = statePathStart
		p.pointer--
		return nil
	default:
		return p.fail(ErrKindInvalidPort)
	}
}

func (p *parser) file() error {
	p.url.scheme = "file"
	p.url.host = Host{}
	p.url.hasHost = true
	c := p.c()
	switch {
	case c == '/' || c == '\\':
		if c == '\\' {
			p.report(ValBackslashInSpecialPath)
		}
		p.state = stateFileSlash
	case p.base != nil && p.base.scheme == "file":
		p.url.host = p.base.host
		p.url.hasHost = p.base.hasHost
		p.url.pathSegments = append([]string(nil), p.base.pathSegments...)
		p.url.query = copyStrPtr(p.base.query)
		switch c {
		case '?':
			p.url.query = ptrTo("")
			p.state = stateQuery
		case '#':
			p.url.fragment = ptrTo("")
			p.state = stateFragment
		case eof:
		default:
			p.url.query = nil
			if !startsWithWindowsDriveLetter(p.input, p.pointer) {
				if len(p.url.pathSegments) > 0 {
					p.url.pathSegments = p.url.pathSegments[:len(p.url.pathSegments)-1]
				}
			} else {
				p.report(ValFileInvalidWindowsDrive)
				p.url.pathSegments = nil
			}
			p.state = statePath
			p.pointer--
		}
	default:
		p.state = statePath
		p.pointer--
	}
	return nil
}

func (p *parser) fileSlash() error {
	c := p.c()
	if c == '/' || c == '\\' {
		if c == '\\' {
			p.report(ValBackslashInSpecialPath)
		}
		p.state = stateFileHost
		return nil
	}
	if p.base != nil && p.base.scheme == "file" {
		p.url.host = p.base.host
		p.url.hasHost = p.base.hasHost
		if !startsWithWindowsDriveLetter(p.input, p.pointer) {
			if len(p.base.pathSegments) > 0 && isNormalizedWindowsDriveLetterStr(p.base.pathSegments[0]) {
				p.url.pathSegments = append([]string{p.base.pathSegments[0]}, p.url.pathSegments...)
			}
		}
	}
	p.state = statePath
	p.pointer--
	return nil
}

func isNormalizedWindowsDriveLetterStr(s string) bool {
	r := []rune(s)
	return len(r) == 2 && isNormalizedWindowsDriveLetter(r[0], r[1])
}

func (p *parser) fileHost() error {
	c := p.c()
	if c == eof || c == '/' || c == '\\' || c == '?' || c == '#' {
		p.pointer--
		buf := p.buffer
		if isWindowsDriveLetterStr(buf) {
			p.report(ValFileInvalidWindowsDrive)
			p.state = statePath
			return nil
		}
		if buf == "" {
			p.url.host = Host{}
			p.url.hasHost = true
			if p.stateOverride {
				p.pointer = len(p.input)
				return nil
			}
			p.state = statePathStart
			return nil
		}
		h, err := parseHost(buf, true)
		if err != nil {
			return err
		}
		if h.IsDomain() && h.domain == "localhost" {
			h = Host{}
		}
		p.url.host = h
		p.url.hasHost = true
		p.buffer = ""
		if p.stateOverride {
			p.pointer = len(p.input)
			return nil
		}
		p.state = statePathStart
		return nil
	}
	p.buffer += string(c)
	return nil
}

func isWindowsDriveLetterStr(s string) bool {
	r := []rune(s)
	return len(r) == 2 && isWindowsDriveLetter(r[0], r[1])
}

func (p *parser) pathStart() error {
	c := p.c()
	isSpecial := isSpecialScheme(p.url.scheme)
	if isSpecial {
		if c == '\\' {
			p.report(ValBackslashInSpecialPath)
		}
		p.state = statePath
		if c != '/' && c != '\\' {
			p.pointer--
		}
		return nil
	}
	if !p.stateOverride && c == '?' {
		p.url.query = ptrTo("")
		p.state = stateQuery
		return nil
	}
	if !p.stateOverride && c == '#' {
		p.url.fragment = ptrTo("")
		p.state = stateFragment
		return nil
	}
	if c != eof {
		p.state = statePath
		if c != '/' {
			p.pointer--
		}
		return nil
	}
	if p.stateOverride && !p.url.hasHost {
		p.url.pathSegments = append(p.url.pathSegments, "")
	}
	return nil
}

func (p *parser) path() error {
	c := p.c()
	isSpecial := isSpecialScheme(p.url.scheme)
	atSegmentEnd := c == eof || c == '/' || (isSpecial && c == '\\') ||
		(!p.stateOverride && (c == '?' || c == '#'))
	if atSegmentEnd {
		if isSpecial && c == '\\' {
			p.report(ValBackslashInSpecialPath)
		}
		seg := p.buffer
		if isDoubleDotSegment(seg) {
			if len(p.url.pathSegments) > 0 {
				last := len(p.url.pathSegments) - 1
				if !(isSpecial && p.url.scheme == "file" && len(p.url.pathSegments) == 1 && isNormalizedWindowsDriveLetterStr(p.url.pathSegments[0])) {
					p.url.pathSegments = p.url.pathSegments[:last]
				}
			}
			if c != '/' && !(isSpecial && c == '\\') {
				p.url.pathSegments = append(p.url.pathSegments, "")
			}
		} else if isSingleDotSegment(seg) {
			if c != '/' && !(isSpecial && c == '\\') {
				p.url.pathSegments = append(p.url.pathSegments, "")
			}
		} else {
			if p.url.scheme == "file" && len(p.url.pathSegments) == 0 && isWindowsDriveLetterStr(seg) {
				r := []rune(seg)
				seg = string(r[0]) + ":"
			}
			p.url.pathSegments = append(p.url.pathSegments, seg)
		}
		p.buffer = ""
		if c == '?' {
			p.url.query = ptrTo("")
			p.state = stateQuery
		} else if c == '#' {
			p.url.fragment = ptrTo("")
			p.state = stateFragment
		}
		return nil
	}
	p.buffer += percentEncodeRune(c, pathEncodeSet)
	return nil
}

func isSingleDotSegment(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDotSegment(s string) bool {
	switch strings.ToLower(s) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}

func (p *parser) cannotBeABaseURLPath() error {
	c := p.c()
	switch c {
	case '?':
		p.url.opaquePath = p.buffer
		p.url.query = ptrTo("")
		p.state = stateQuery
	case '#':
		p.url.opaquePath = p.buffer
		p.url.fragment = ptrTo("")
		p.state = stateFragment
	case eof:
		p.url.opaquePath = p.buffer
	default:
		p.buffer += percentEncodeRune(c, c0ControlEncodeSet)
	}
	return nil
}

func (p *parser) query() error {
	c := p.c()
	set := queryEncodeSet
	if isSpecialScheme(p.url.scheme) {
		set = specialQueryEncodeSet
	}
	if (c == '#' && !p.stateOverride) || c == eof {
		*p.url.query += p.buffer
		p.buffer = ""
		if c == '#' {
			p.url.fragment = ptrTo("")
			p.state = stateFragment
		}
		return nil
	}
	p.buffer += percentEncodeRune(c, set)
	return nil
}

func (p *parser) fragment() error {
	c := p.c()
	if c == eof {
		*p.url.fragment += p.buffer
		p.buffer = ""
		return nil
	}
	p.buffer += percentEncodeRune(c, fragmentEncodeSet)
	return nil
}

func prependString(s, prefix string) string { return prefix + s }

func ptrTo(s string) *string { return &s }

func copyStrPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyU16Ptr(v *uint16) *uint16 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

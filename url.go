package url

import "strings"

// URL is the canonical in-memory parsed-URL record from spec.md §3. Its
// zero value is not a valid parsed URL — always obtain one via Parse or
// a Set* accessor.
type URL struct {
	scheme   string
	username string
	password string
	host     Host
	hasHost  bool
	port     *uint16

	// pathSegments holds the list-form path; opaquePath holds the
	// single-string form. Exactly one is meaningful, selected by
	// cannotBeABaseURL.
	pathSegments     []string
	opaquePath       string
	cannotBeABaseURL bool

	query    *string
	fragment *string

	legacySemicolonSeparator bool

	validationErrors []ValidationError

	// params lazily holds the owning SearchParams view, created on
	// first SearchParams() call and kept for the URL's lifetime, per
	// spec.md §4.12's "created lazily per-URL and shares lifetime with
	// the owner".
	params *SearchParams
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseConfig)

type parseConfig struct {
	legacySemicolonSeparator bool
}

// WithLegacySemicolonSeparator makes SearchParams parsing accept ';' as
// an additional pair separator alongside '&', matching the legacy
// behavior spec.md §9's open question flags as non-default. WHATWG mode
// (the default) only recognizes '&'.
func WithLegacySemicolonSeparator() ParseOption {
	return func(c *parseConfig) { c.legacySemicolonSeparator = true }
}

// Parse parses input, optionally resolved against base, into a URL
// record. This is the main entry point described in spec.md §6.
func Parse(input string, base *URL, opts ...ParseOption) (*URL, error) {
	cfg := &parseConfig{}
	for _, o := range opts {
		o(cfg)
	}
	u := &URL{}
	if err := runBasicParser(u, input, base, noOverride, cfg); err != nil {
		return nil, err
	}
	return u, nil
}

// MustParse is a thin convenience facade that panics on error, matching
// spec.md §9's "a convenience facade that panics/throws on error is
// acceptable but should be a thin wrapper".
func MustParse(input string) *URL {
	u, err := Parse(input, nil)
	if err != nil {
		panic(err)
	}
	return u
}

// ValidationErrors returns every non-fatal validation error accumulated
// during the parse, for strict-mode callers per spec.md §7.
func (u *URL) ValidationErrors() []ValidationError {
	return u.validationErrors
}

// Scheme returns the ASCII-lowercase scheme.
func (u *URL) Scheme() string { return u.scheme }

// IsSpecial reports whether u's scheme is one of the six special schemes.
func (u *URL) IsSpecial() bool { return isSpecialScheme(u.scheme) }

// CannotBeABaseURL reports whether u has an opaque path.
func (u *URL) CannotBeABaseURL() bool { return u.cannotBeABaseURL }

// IsIPv4Address reports whether u's host is a parsed IPv4 address.
func (u *URL) IsIPv4Address() bool { return u.hasHost && u.host.IsIPv4() }

// IsIPv6Address reports whether u's host is a parsed IPv6 address.
func (u *URL) IsIPv6Address() bool { return u.hasHost && u.host.IsIPv6() }

// IPv4Address returns the host's 32-bit value and true, if the host is
// an IPv4 address.
func (u *URL) IPv4Address() (uint32, bool) {
	if !u.IsIPv4Address() {
		return 0, false
	}
	return u.host.ipv4, true
}

// IPv6Address returns the host's eight 16-bit pieces and true, if the
// host is an IPv6 address.
func (u *URL) IPv6Address() ([8]uint16, bool) {
	if !u.IsIPv6Address() {
		return [8]uint16{}, false
	}
	return u.host.ipv6, true
}

// Domain returns the ASCII domain string and true, if the host is a
// parsed domain (not an IP address or opaque host).
func (u *URL) Domain() (string, bool) {
	if !u.hasHost || !u.host.IsDomain() {
		return "", false
	}
	return u.host.domain, true
}

// pathString renders the path the way the serializer does, without the
// scheme/host/query/fragment.
func (u *URL) pathString() string {
	if u.cannotBeABaseURL {
		return u.opaquePath
	}
	if len(u.pathSegments) == 0 {
		return ""
	}
	return "/" + strings.Join(u.pathSegments, "/")
}

func cloneURL(u *URL) *URL {
	c := *u
	c.pathSegments = append([]string(nil), u.pathSegments...)
	c.params = nil
	if u.port != nil {
		p := *u.port
		c.port = &p
	}
	if u.query != nil {
		q := *u.query
		c.query = &q
	}
	if u.fragment != nil {
		f := *u.fragment
		c.fragment = &f
	}
	c.validationErrors = append([]ValidationError(nil), u.validationErrors...)
	return &c
}

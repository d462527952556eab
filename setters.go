package url

import (
	"strings"

	"github.com/go-whatwg/url/internal/percent"
)

// Href returns the full serialization, equivalent to String().
func (u *URL) Href() string { return u.String() }

// SetHref reparses value as a brand new URL (no base), replacing u's
// contents on success. u is left untouched on error.
func (u *URL) SetHref(value string) error {
	parsed, err := Parse(value, nil)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// Protocol returns the scheme followed by ':'.
func (u *URL) Protocol() string { return u.scheme + ":" }

// SetProtocol re-enters the state machine at scheme-start state, per
// spec.md §4.11's protocol setter.
func (u *URL) SetProtocol(value string) error {
	return runBasicParser(u, value+":", nil, stateSchemeStart, &parseConfig{})
}

// Username returns the percent-encoded username component.
func (u *URL) Username() string { return u.username }

// SetUsername sets the username, percent-encoding value with the
// userinfo encode set. A no-op, per spec.md §4.11, if u cannot have a
// username (no host, or opaque path, or "file" scheme).
func (u *URL) SetUsername(value string) error {
	if !canHaveUsernamePasswordPort(u) {
		return nil
	}
	u.username = encodeRunes(value, userinfoEncodeSet)
	return nil
}

// Password returns the percent-encoded password component.
func (u *URL) Password() string { return u.password }

// SetPassword sets the password, percent-encoding value with the
// userinfo encode set.
func (u *URL) SetPassword(value string) error {
	if !canHaveUsernamePasswordPort(u) {
		return nil
	}
	u.password = encodeRunes(value, userinfoEncodeSet)
	return nil
}

func canHaveUsernamePasswordPort(u *URL) bool {
	return u.hasHost && !u.host.IsNone() && u.scheme != "file"
}

// encodeRunes percent-encodes each code point of s under set, matching
// the per-code-point (not per-byte) encoding spec.md §4.2 requires for
// setter inputs that may contain non-ASCII text.
func encodeRunes(s string, set percent.Set) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(percentEncodeRune(r, set))
	}
	return b.String()
}

// Host returns "hostname[:port]".
func (u *URL) Host() string {
	if !u.hasHost {
		return ""
	}
	if u.port == nil {
		return u.host.String()
	}
	return u.host.String() + ":" + portString(*u.port)
}

// SetHost re-enters the state machine at host state.
func (u *URL) SetHost(value string) error {
	if u.cannotBeABaseURL {
		return nil
	}
	return runBasicParser(u, value, nil, stateHost, &parseConfig{})
}

// Hostname returns the host without any port.
func (u *URL) Hostname() string {
	if !u.hasHost {
		return ""
	}
	return u.host.String()
}

// SetHostname re-enters the state machine at hostname state, which
// behaves like host state but never consumes a trailing ":port".
func (u *URL) SetHostname(value string) error {
	if u.cannotBeABaseURL {
		return nil
	}
	return runBasicParser(u, value, nil, stateHostname, &parseConfig{})
}

// Port returns the port as a decimal string, or "" if absent.
func (u *URL) Port() string {
	if u.port == nil {
		return ""
	}
	return portString(*u.port)
}

// SetPort re-enters the state machine at port state. Setting the empty
// string clears the port.
func (u *URL) SetPort(value string) error {
	if !canHaveUsernamePasswordPort(u) {
		return nil
	}
	if value == "" {
		u.port = nil
		return nil
	}
	return runBasicParser(u, value, nil, statePort, &parseConfig{})
}

// Pathname returns the path component.
func (u *URL) Pathname() string { return u.pathString() }

// SetPathname re-enters the state machine at path-start state. A no-op
// if u cannot be a base URL.
func (u *URL) SetPathname(value string) error {
	if u.cannotBeABaseURL {
		return nil
	}
	u.pathSegments = nil
	return runBasicParser(u, value, nil, statePathStart, &parseConfig{})
}

// Search returns "?query", or "" if there is no query.
func (u *URL) Search() string {
	if u.query == nil || *u.query == "" {
		return ""
	}
	return "?" + *u.query
}

// SetSearch re-enters the state machine at query state. An empty value
// clears the query entirely rather than leaving an empty one, per
// spec.md §4.11.
func (u *URL) SetSearch(value string) error {
	value = strings.TrimPrefix(value, "?")
	if value == "" {
		u.query = nil
		if u.params != nil {
			u.params.reset("")
		}
		return nil
	}
	u.query = ptrTo("")
	cfg := &parseConfig{}
	if err := runBasicParser(u, value, nil, stateQuery, cfg); err != nil {
		return err
	}
	if u.params != nil {
		u.params.reset(*u.query)
	}
	return nil
}

// Hash returns "#fragment", or "" if there is no fragment.
func (u *URL) Hash() string {
	if u.fragment == nil || *u.fragment == "" {
		return ""
	}
	return "#" + *u.fragment
}

// SetHash re-enters the state machine at fragment state. An empty value
// clears the fragment entirely.
func (u *URL) SetHash(value string) error {
	value = strings.TrimPrefix(value, "#")
	if value == "" {
		u.fragment = nil
		return nil
	}
	u.fragment = ptrTo("")
	return runBasicParser(u, value, nil, stateFragment, &parseConfig{})
}

// SearchParams returns the lazily-created SearchParams view over u's
// query string, sharing u's lifetime, per spec.md §4.12.
func (u *URL) SearchParams() *SearchParams {
	if u.params == nil {
		q := ""
		if u.query != nil {
			q = *u.query
		}
		u.params = newSearchParams(u, q)
	}
	return u.params
}

package url

import (
	"strings"

	"github.com/go-whatwg/url/internal/idna"
	"github.com/go-whatwg/url/internal/ipaddr"
	"github.com/go-whatwg/url/internal/percent"
)

// hostKind tags the variant held by a Host value, per spec.md §3's
// "tagged variant: empty / domain(ASCII) / ipv4(u32) / ipv6(16 bytes) /
// opaque(ASCII)" and §9's "reproduce this directly as a sum type rather
// than a class hierarchy".
type hostKind int

const (
	hostNone hostKind = iota
	hostDomain
	hostIPv4
	hostIPv6
	hostOpaque
)

// Host is the tagged-union host record.
type Host struct {
	kind   hostKind
	domain string // ASCII, for hostDomain
	opaque string // for hostOpaque
	ipv4   uint32
	ipv6   [8]uint16
}

// IsNone reports whether the host is absent.
func (h Host) IsNone() bool { return h.kind == hostNone }

// IsDomain reports whether the host is a domain.
func (h Host) IsDomain() bool { return h.kind == hostDomain }

// IsIPv4 reports whether the host is an IPv4 address.
func (h Host) IsIPv4() bool { return h.kind == hostIPv4 }

// IsIPv6 reports whether the host is an IPv6 address.
func (h Host) IsIPv6() bool { return h.kind == hostIPv6 }

// IsOpaque reports whether the host is an opaque (non-special-scheme) host.
func (h Host) IsOpaque() bool { return h.kind == hostOpaque }

// String renders the host the way it appears in a serialized URL: a bare
// domain or opaque string, a dotted-quad IPv4 address, or a
// bracket-delimited IPv6 literal.
func (h Host) String() string {
	switch h.kind {
	case hostNone:
		return ""
	case hostDomain:
		return h.domain
	case hostOpaque:
		return h.opaque
	case hostIPv4:
		return ipaddr.SerializeIPv4(h.ipv4)
	case hostIPv6:
		return ipaddr.SerializeIPv6(h.ipv6)
	}
	return ""
}

// forbiddenHostCodePoint reports whether b is in spec.md §4.8's
// forbidden-host-code-point set. allowPercent controls whether '%' is
// permitted (it is, for opaque hosts only).
func forbiddenHostCodePoint(b byte, allowPercent bool) bool {
	switch b {
	case 0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	case '%':
		return !allowPercent
	}
	return false
}

// parseHost dispatches among opaque/domain/IPv4/IPv6 per spec.md §4.8.
// isSpecial controls whether the domain/IPv4 branch (vs. opaque) is
// taken.
func parseHost(input string, isSpecial bool) (Host, error) {
	if input == "" {
		return Host{}, newParseError(ErrKindEmptyHost, input, "host")
	}

	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return Host{}, newParseError(ErrKindInvalidIPv6Address, input, "host")
		}
		pieces, err := ipaddr.ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, newParseError(ErrKindInvalidIPv6Address, input, "host")
		}
		return Host{kind: hostIPv6, ipv6: pieces}, nil
	}

	if !isSpecial {
		for i := 0; i < len(input); i++ {
			if forbiddenHostCodePoint(input[i], true) {
				return Host{}, newParseError(ErrKindInvalidURLUnit, input, "host")
			}
		}
		return Host{kind: hostOpaque, opaque: percent.Encode(input, percent.C0ControlSet)}, nil
	}

	decoded := percent.DecodeLenient(input)
	for i := 0; i < len(decoded); i++ {
		if forbiddenHostCodePoint(decoded[i], false) {
			return Host{}, newParseError(ErrKindInvalidURLUnit, input, "host")
		}
	}

	asciiDomain, err := idna.ToASCII(decoded, idna.Options{})
	if err != nil {
		return Host{}, newParseError(ErrKindIDNA, input, "host")
	}
	if asciiDomain == "" {
		return Host{}, newParseError(ErrKindEmptyHost, input, "host")
	}

	addr, looksV4, v4err := ipaddr.ParseIPv4(asciiDomain)
	if looksV4 {
		if v4err != nil {
			return Host{}, newParseError(ErrKindInvalidIPv4Address, input, "host")
		}
		return Host{kind: hostIPv4, ipv4: addr}, nil
	}

	return Host{kind: hostDomain, domain: asciiDomain}, nil
}

// Package ipaddr implements the WHATWG IPv4 and IPv6 host parsers and
// their canonical serializers, grounded on the teacher's bracket-literal
// slicing in fasturl.parseHost, generalized into full numeric parsing
// per spec.md §4.6/§4.7.
package ipaddr

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidSegmentNumber names the invalid-segment-number failure.
	// ParseIPv4 does not return it: a part that is not a number at all
	// yields ok == false with a nil error, and an out-of-range part
	// yields ErrIPv4Overflow.
	ErrInvalidSegmentNumber = errors.New("ipaddr: invalid ipv4 segment number")
	// ErrIPv4Overflow is returned when a syntactically-numeric IPv4
	// address nonetheless exceeds 32 bits.
	ErrIPv4Overflow = errors.New("ipaddr: ipv4 address overflow")
)

// ParseIPv4Number parses a single IPv4 "part" per spec.md §4.6: an
// optional 0x/0X hex prefix, else a leading-zero octal form, else
// decimal. It returns the parsed value and whether the part looked
// numeric at all (false means "not IPv4 syntax", not an error).
func ParseIPv4Number(part string) (value uint64, looksNumeric bool) {
	if part == "" {
		return 0, false
	}
	radix := 10
	digits := part
	switch {
	case len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X'):
		radix = 16
		digits = part[2:]
	case len(part) >= 1 && part[0] == '0':
		radix = 8
		digits = part[1:]
	}
	if digits == "" {
		// A bare "0" or "0x" is valid/zero.
		return 0, true
	}
	v, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		// Distinguish "not a number at all" from "too big" by re-checking
		// that every digit is valid in the radix; ParseUint fails both
		// ways, so re-scan digit validity ourselves.
		if !allDigitsValidInRadix(digits, radix) {
			return 0, false
		}
		return 0xFFFFFFFFFFFFFFFF, true // overflow sentinel, still numeric
	}
	return v, true
}

func allDigitsValidInRadix(s string, radix int) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'z':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			d = int(c-'A') + 10
		default:
			return false
		}
		if d >= radix {
			return false
		}
	}
	return true
}

// ParseIPv4 parses an ASCII (post-IDNA) domain string as an IPv4
// address. ok is false if the string does not even look like IPv4
// syntax (a non-numeric part) — the caller should treat it as a plain
// domain. A syntactically-numeric but out-of-range address is a hard
// error (ErrIPv4Overflow).
func ParseIPv4(input string) (addr uint32, ok bool, err error) {
	parts := strings.Split(input, ".")
	if len(parts) > 4 {
		return 0, false, nil
	}
	// Trailing empty part from a trailing dot is allowed by the spec's
	// number-parts grammar only if it is not the sole part.
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 || len(parts) > 4 {
		return 0, false, nil
	}

	values := make([]uint64, len(parts))
	for i, p := range parts {
		v, numeric := ParseIPv4Number(p)
		if !numeric {
			return 0, false, nil
		}
		values[i] = v
	}

	for i, v := range values {
		limit := uint64(256)
		if i == len(values)-1 {
			limit = 1 << 32
		}
		if v >= limit {
			return 0, true, ErrIPv4Overflow
		}
	}

	var result uint64
	n := len(values)
	for i := 0; i < n-1; i++ {
		shift := uint(8 * (n - 1 - i))
		result += values[i] << shift
	}
	result += values[n-1]
	if result > 0xFFFFFFFF {
		return 0, true, ErrIPv4Overflow
	}
	return uint32(result), true, nil
}

// SerializeIPv4 renders addr as four decimal octets separated by '.'.
func SerializeIPv4(addr uint32) string {
	return strconv.Itoa(int(addr>>24&0xFF)) + "." +
		strconv.Itoa(int(addr>>16&0xFF)) + "." +
		strconv.Itoa(int(addr>>8&0xFF)) + "." +
		strconv.Itoa(int(addr&0xFF))
}

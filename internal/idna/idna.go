// Package idna implements UTS #46 ToASCII/ToUnicode domain processing and
// RFC 3492 Punycode, as required by the WHATWG URL host parser's domain
// branch. It is a from-scratch component per spec.md §1/§4.5 rather than
// a wrapper around golang.org/x/net/idna — see DESIGN.md.
package idna

import (
	"strings"

	"github.com/go-whatwg/url/internal/transcode"
)

// FailureKind names one of the domain-processing failure kinds from
// spec.md §4.5.
type FailureKind string

const (
	FailDisallowedCodePoint FailureKind = "disallowed_code_point"
	FailBadInput            FailureKind = "bad_input"
	FailInvalidLength       FailureKind = "invalid_length"
	FailEncodingError       FailureKind = "encoding_error"
	FailTooManyLabels       FailureKind = "too_many_labels"
	FailEmptyString         FailureKind = "empty_string"
	FailOverflow            FailureKind = "overflow"
)

// Error is a domain-processing failure.
type Error struct {
	Kind  FailureKind
	Label string
}

func (e *Error) Error() string {
	if e.Label != "" {
		return "idna: " + string(e.Kind) + ": " + e.Label
	}
	return "idna: " + string(e.Kind)
}

func fail(kind FailureKind, label string) error {
	return &Error{Kind: kind, Label: label}
}

const maxLabels = 32

// Options controls ToASCII per spec.md §4.5. The zero value matches the
// library's non-strict default (UseSTD3ASCIIRules off, VerifyDnsLength
// off); Strict() returns the strict-mode configuration. CheckBidi and
// CheckJoiners are accepted but ToASCII does not read them: no bidi or
// joiner (ZWJ/ZWNJ context) validation is performed.
type Options struct {
	UseSTD3ASCIIRules       bool
	CheckHyphens            bool
	CheckBidi               bool
	CheckJoiners            bool
	TransitionalProcessing  bool
	VerifyDNSLength         bool
}

// Strict returns the strict-mode option set spec.md §4.5 describes.
func Strict() Options {
	return Options{
		UseSTD3ASCIIRules: true,
		CheckBidi:         true,
		CheckJoiners:      true,
		VerifyDNSLength:   true,
	}
}

// ToASCII implements UTS #46 ToASCII with the given options, converting a
// UTF-8 domain into its ASCII (possibly xn--prefixed) form.
func ToASCII(input string, opts Options) (string, error) {
	if input == "" {
		return "", fail(FailEmptyString, "")
	}

	points, err := transcode.U8ToU32([]byte(input))
	if err != nil {
		return "", fail(FailEncodingError, "")
	}

	mapped, err := mapPoints(points, opts)
	if err != nil {
		return "", err
	}

	labels := splitLabels(string(mapped))
	if len(labels) > maxLabels {
		return "", fail(FailTooManyLabels, "")
	}

	out := make([]string, len(labels))
	totalLen := 0
	for i, label := range labels {
		processed, err := processLabel(label, opts)
		if err != nil {
			return "", err
		}
		if opts.VerifyDNSLength {
			if l := len(processed); l < 1 || l > 63 {
				return "", fail(FailInvalidLength, processed)
			}
		}
		out[i] = processed
		totalLen += len(processed) + 1
	}

	result := strings.Join(out, ".")
	if opts.VerifyDNSLength {
		n := len(result)
		if n < 1 || n > 253 {
			return "", fail(FailInvalidLength, result)
		}
	}
	return result, nil
}

// ToUnicode implements UTS #46 ToUnicode: like ToASCII but never fails
// the overall domain on a disallowed/invalid label (each label is
// converted best-effort — WHATWG only requires ToASCII to be strict).
// Per spec.md §9's open question, ToUnicode here ONLY inverts Punycode;
// it never re-applies IDNA mapping, since mapping is not invertible.
func ToUnicode(input string) string {
	labels := strings.Split(input, ".")
	out := make([]string, len(labels))
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), "xn--") {
			decoded, err := PunycodeDecode(label[4:])
			if err != nil {
				out[i] = label
				continue
			}
			s, err := transcode.U32ToU8(decoded)
			if err != nil {
				out[i] = label
				continue
			}
			out[i] = s
		} else {
			out[i] = label
		}
	}
	return strings.Join(out, ".")
}

func splitLabels(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, ".")
}

// mapPoints applies the IDNA status map to every code point of input per
// spec.md §4.5 step 2.
func mapPoints(input []rune, opts Options) ([]rune, error) {
	var out []rune
	for _, r := range input {
		st, repl := lookup(r)
		switch st {
		case statusDisallowed:
			return nil, fail(FailDisallowedCodePoint, string(r))
		case statusDisallowedSTD3Valid:
			if opts.UseSTD3ASCIIRules {
				return nil, fail(FailDisallowedCodePoint, string(r))
			}
			out = append(out, r)
		case statusDisallowedSTD3Mapped:
			if opts.UseSTD3ASCIIRules {
				return nil, fail(FailDisallowedCodePoint, string(r))
			}
			out = append(out, []rune(repl)...)
		case statusIgnored:
			// dropped
		case statusMapped:
			out = append(out, []rune(repl)...)
		case statusDeviation:
			if opts.TransitionalProcessing {
				out = append(out, []rune(repl)...)
			} else {
				out = append(out, r)
			}
		default: // statusValid
			out = append(out, r)
		}
	}
	return out, nil
}

// processLabel validates and, if necessary, Punycode-encodes a single
// already-mapped label, per spec.md §4.5 step 4.
func processLabel(label string, opts Options) (string, error) {
	lower := strings.ToLower(label)
	if strings.HasPrefix(lower, "xn--") {
		decoded, err := PunycodeDecode(label[4:])
		if err != nil {
			if err == ErrPunycodeOverflow {
				return "", fail(FailOverflow, label)
			}
			return "", fail(FailBadInput, label)
		}
		if err := validateLabelPoints(decoded, opts); err != nil {
			return "", err
		}
		// The xn-- form is already ASCII; keep it canonical (lowercase).
		return lower, nil
	}

	points := []rune(label)
	if opts.CheckHyphens {
		if err := checkHyphens(points, label); err != nil {
			return "", err
		}
	}
	if err := validateLabelPoints(points, opts); err != nil {
		return "", err
	}

	hasNonASCII := false
	for _, r := range points {
		if r >= 0x80 {
			hasNonASCII = true
			break
		}
	}
	if !hasNonASCII {
		return label, nil
	}

	encoded, err := PunycodeEncode(points)
	if err != nil {
		return "", fail(FailOverflow, label)
	}
	return "xn--" + encoded, nil
}

func checkHyphens(points []rune, label string) error {
	if len(points) == 0 {
		return nil
	}
	if points[0] == '-' || points[len(points)-1] == '-' {
		return fail(FailBadInput, label)
	}
	if len(points) >= 4 && points[2] == '-' && points[3] == '-' {
		return fail(FailBadInput, label)
	}
	return nil
}

func validateLabelPoints(points []rune, opts Options) error {
	for _, r := range points {
		st, _ := lookup(r)
		switch st {
		case statusValid, statusDisallowedSTD3Valid:
			continue
		case statusDeviation:
			// Deviation characters are valid outside transitional
			// processing, per spec.md §4.5 step 4's validation rule.
			continue
		default:
			return fail(FailDisallowedCodePoint, string(r))
		}
	}
	return nil
}

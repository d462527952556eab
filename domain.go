package url

import (
	"github.com/go-whatwg/url/internal/idna"
	"github.com/go-whatwg/url/internal/percent"
)

// DomainToASCII runs UTS #46 processing on domain and returns its
// Punycode-ASCII form, per spec.md §6's "domain_to_ascii". beStrict
// additionally verifies per-label DNS length constraints.
func DomainToASCII(domain string, beStrict bool) (string, error) {
	opts := idna.Options{}
	if beStrict {
		opts = idna.Strict()
	}
	return idna.ToASCII(domain, opts)
}

// DomainToUnicode inverts a Punycode-ASCII domain back to Unicode. Per
// spec.md §9's open-question decision, this only reverses the Punycode
// step (ToASCII's label mapping is not invertible in general).
func DomainToUnicode(domain string) string {
	return idna.ToUnicode(domain)
}

// PercentEncode encodes every byte of s that set matches. The built-in
// component sets mirror spec.md §4.2's named encode sets.
func PercentEncode(s string, set EncodeSet) string {
	return percent.Encode(s, percent.Set(set))
}

// PercentDecode decodes "%HH" escapes in s, leaving other bytes
// unchanged. The output is not re-validated as UTF-8.
func PercentDecode(s string) ([]byte, error) {
	return percent.Decode(s)
}

// EncodeSet is an inclusion predicate for PercentEncode, matching
// internal/percent.Set's shape so callers never need to import the
// internal package directly.
type EncodeSet func(b byte) bool

// The named encode sets from spec.md §4.2, exported for library callers
// that need to percent-encode a component manually.
var (
	EncodeSetC0Control    EncodeSet = percent.C0ControlSet
	EncodeSetFragment     EncodeSet = percent.FragmentSet
	EncodeSetQuery        EncodeSet = percent.QuerySet
	EncodeSetSpecialQuery EncodeSet = percent.SpecialQuerySet
	EncodeSetPath         EncodeSet = percent.PathSet
	EncodeSetUserinfo     EncodeSet = percent.UserinfoSet
	EncodeSetComponent    EncodeSet = percent.ComponentSet
)

package idna

// status classifies a code point per UTS #46's IDNA Mapping Table.
type status int

const (
	statusValid status = iota
	statusIgnored
	statusMapped
	statusDeviation
	statusDisallowed
	statusDisallowedSTD3Valid
	statusDisallowedSTD3Mapped
)

// rangeEntry is one row of the embedded mapping table: a contiguous
// [lo, hi] code point range sharing one status, with an optional
// replacement string for mapped/deviation entries (empty for single
// code points that map to nothing, i.e. "ignored").
type rangeEntry struct {
	lo, hi  rune
	st      status
	mapped  string
}

// table is a curated, sorted-by-lo subset of the UTS #46 IDNA Mapping
// Table: ASCII, Latin-1 supplement, the deviation characters, and a
// representative slice of disallowed ranges (surrogates, private use,
// noncharacters). See DESIGN.md for why this is a subset rather than a
// full transcription of the Unicode data file.
var table = []rangeEntry{
	{0x0000, 0x002C, statusDisallowed, ""}, // controls + space + punctuation before '-'
	{0x002D, 0x002D, statusValid, ""},      // '-'
	{0x002E, 0x002E, statusValid, ""},      // '.'
	{0x002F, 0x002F, statusDisallowed, ""}, // '/'
	{0x0030, 0x0039, statusValid, ""},      // 0-9
	{0x003A, 0x0040, statusDisallowed, ""}, // : ; < = > ? @
	{0x0041, 0x005A, statusMapped, ""},     // A-Z -> lowercase (mapped per-rune, see lookup)
	{0x005B, 0x0060, statusDisallowed, ""}, // [ \ ] ^ _ `
	{0x0061, 0x007A, statusValid, ""},      // a-z
	{0x007B, 0x007F, statusDisallowed, ""}, // { | } ~ DEL
	{0x0080, 0x009F, statusDisallowed, ""}, // C1 controls
	{0x00A0, 0x00A0, statusDisallowed, ""}, // NBSP
	{0x00A1, 0x00B6, statusValid, ""},
	{0x00B7, 0x00B7, statusValid, ""},
	{0x00B8, 0x00BE, statusValid, ""},
	{0x00BF, 0x00FF, statusValid, ""},
	{0x0100, 0x024F, statusValid, ""}, // Latin Extended-A/B (approx, treated valid)
	{0x0370, 0x03FF, statusValid, ""}, // Greek
	{0x0400, 0x04FF, statusValid, ""}, // Cyrillic
	{0x200B, 0x200B, statusIgnored, ""},     // ZERO WIDTH SPACE
	{0x200C, 0x200C, statusDeviation, ""},   // ZWNJ — valid in context, deviation otherwise
	{0x200D, 0x200D, statusDeviation, ""},   // ZWJ
	{0x200E, 0x200F, statusDisallowed, ""},  // LRM/RLM
	{0x2010, 0x2027, statusDisallowed, ""},
	{0x3000, 0x3000, statusDisallowed, ""}, // ideographic space
	{0x3001, 0x9FFF, statusValid, ""},      // CJK (approx, treated valid)
	{0xAC00, 0xD7A3, statusValid, ""},      // Hangul syllables
	{0xD800, 0xDFFF, statusDisallowed, ""}, // surrogates
	{0xE000, 0xF8FF, statusDisallowed, ""}, // private use
	{0xFDD0, 0xFDEF, statusDisallowed, ""}, // noncharacters
	{0xFE00, 0xFE0F, statusIgnored, ""},    // variation selectors
	{0xFEFF, 0xFEFF, statusIgnored, ""},    // BOM / ZWNBSP
	{0xFFFF, 0xFFFF, statusDisallowed, ""}, // noncharacter
}

// exceptions holds single code points whose status/mapping does not fit
// the coarse ranges above (the deviation characters); it is consulted
// before the range table.
var exceptions = map[rune]rangeEntry{
	0x00DF: {st: statusDeviation, mapped: "ss"},     // ß
	0x03C2: {st: statusDeviation, mapped: "σ"}, // ς -> σ
	0x200C: {st: statusDeviation, mapped: ""},       // ZWNJ
	0x200D: {st: statusDeviation, mapped: ""},       // ZWJ
}

// lookup returns the status and any mapped replacement for code point r.
func lookup(r rune) (status, string) {
	if e, ok := exceptions[r]; ok {
		return e.st, e.mapped
	}
	if r >= 'A' && r <= 'Z' {
		return statusMapped, string(r - 'A' + 'a')
	}

	lo, hi := 0, len(table)
	for lo < hi {
		mid := (lo + hi) / 2
		if table[mid].hi < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(table) && r >= table[lo].lo && r <= table[lo].hi {
		e := table[lo]
		return e.st, e.mapped
	}
	// Anything not covered by the embedded subset is treated as
	// disallowed: UTS #46's default for unassigned code points.
	return statusDisallowed, ""
}

package url

import (
	"sort"
	"strings"

	"github.com/go-whatwg/url/internal/percent"
)

// searchParam is one ordered name/value pair, per spec.md §4.12's "list
// of name-value string pairs maintaining insertion order".
type searchParam struct {
	name  string
	value string
}

// SearchParams is a view over its owner URL's query string, per the
// WHATWG URLSearchParams interface it mirrors. It holds the parsed pair
// list: reads are answered from that list, every mutator writes the
// re-serialized list back into the owner's query, and the owner's
// SetSearch re-parses the list from the new query.
type SearchParams struct {
	owner  *URL
	params []searchParam
}

func newSearchParams(owner *URL, query string) *SearchParams {
	sp := &SearchParams{owner: owner}
	sp.params = parseQueryString(query, owner.legacySemicolon())
	return sp
}

func (u *URL) legacySemicolon() bool { return u.legacySemicolonSeparator }

func parseQueryString(query string, legacySemicolon bool) []searchParam {
	if query == "" {
		return nil
	}
	var params []searchParam
	for _, pair := range splitQueryPairs(query, legacySemicolon) {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		name = strings.ReplaceAll(name, "+", " ")
		value = strings.ReplaceAll(value, "+", " ")
		decodedName := percent.DecodeLenient(name)
		decodedValue := percent.DecodeLenient(value)
		params = append(params, searchParam{name: decodedName, value: decodedValue})
	}
	return params
}

func splitQueryPairs(query string, legacySemicolon bool) []string {
	if !legacySemicolon {
		return strings.Split(query, "&")
	}
	return strings.FieldsFunc(query, func(r rune) bool { return r == '&' || r == ';' })
}

// reset replaces the param list by reparsing query, used when the
// owner's query is overwritten through SetSearch rather than through
// the SearchParams mutators.
func (sp *SearchParams) reset(query string) {
	legacy := sp.owner != nil && sp.owner.legacySemicolon()
	sp.params = parseQueryString(query, legacy)
}

// Append adds a new name/value pair without removing any existing
// entry of the same name.
func (sp *SearchParams) Append(name, value string) {
	sp.params = append(sp.params, searchParam{name: name, value: value})
	sp.update()
}

// Delete removes every pair named name. If value is provided (len(value)
// == 1), only pairs matching both name and that value are removed,
// matching the two-argument form of the WHATWG delete() method.
func (sp *SearchParams) Delete(name string, value ...string) {
	filterByValue := len(value) > 0
	out := sp.params[:0:0]
	for _, p := range sp.params {
		if p.name == name && (!filterByValue || p.value == value[0]) {
			continue
		}
		out = append(out, p)
	}
	sp.params = out
	sp.update()
}

// Get returns the value of the first pair named name, and whether one
// exists.
func (sp *SearchParams) Get(name string) (string, bool) {
	for _, p := range sp.params {
		if p.name == name {
			return p.value, true
		}
	}
	return "", false
}

// GetAll returns every value for pairs named name, in insertion order.
func (sp *SearchParams) GetAll(name string) []string {
	var values []string
	for _, p := range sp.params {
		if p.name == name {
			values = append(values, p.value)
		}
	}
	return values
}

// Has reports whether any pair named name exists. If value is provided,
// it additionally requires a pair matching that value.
func (sp *SearchParams) Has(name string, value ...string) bool {
	filterByValue := len(value) > 0
	for _, p := range sp.params {
		if p.name == name && (!filterByValue || p.value == value[0]) {
			return true
		}
	}
	return false
}

// Set replaces the value of the first pair named name (removing any
// others of the same name) or appends a new pair if none exists.
func (sp *SearchParams) Set(name, value string) {
	found := false
	out := sp.params[:0:0]
	for _, p := range sp.params {
		if p.name != name {
			out = append(out, p)
			continue
		}
		if found {
			continue
		}
		out = append(out, searchParam{name: name, value: value})
		found = true
	}
	if !found {
		out = append(out, searchParam{name: name, value: value})
	}
	sp.params = out
	sp.update()
}

// Clear removes every pair.
func (sp *SearchParams) Clear() {
	sp.params = nil
	sp.update()
}

// Sort reorders pairs by name using a stable sort, per spec.md §4.12's
// "stable sort by name, ties preserve relative insertion order".
func (sp *SearchParams) Sort() {
	sort.SliceStable(sp.params, func(i, j int) bool {
		return sp.params[i].name < sp.params[j].name
	})
	sp.update()
}

// Size reports the number of pairs.
func (sp *SearchParams) Size() int { return len(sp.params) }

// Iterate calls fn for each pair in order, stopping early if fn returns
// false.
func (sp *SearchParams) Iterate(fn func(name, value string) bool) {
	for _, p := range sp.params {
		if !fn(p.name, p.value) {
			return
		}
	}
}

// String serializes the pairs using application/x-www-form-urlencoded,
// matching spec.md §4.12's serializer.
func (sp *SearchParams) String() string {
	var b strings.Builder
	for i, p := range sp.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(formURLEncode(p.name))
		b.WriteByte('=')
		b.WriteString(formURLEncode(p.value))
	}
	return b.String()
}

// update re-serializes the param list back into the owner URL's query,
// the write-through half of the live view.
func (sp *SearchParams) update() {
	if sp.owner == nil {
		return
	}
	s := sp.String()
	if s == "" {
		sp.owner.query = nil
		return
	}
	sp.owner.query = ptrTo(s)
}

// formURLEncode implements application/x-www-form-urlencoded
// percent-encoding: space becomes '+', and every other byte in the
// component encode set or among the bytes ! ' ( ) ~ is escaped.
func formURLEncode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' {
			b.WriteByte('+')
			continue
		}
		b.WriteString(percentEncodeRune(r, formURLEncodeSet))
	}
	return b.String()
}

var formURLEncodeSet = percent.Set(func(b byte) bool {
	if percent.ComponentSet(b) {
		return true
	}
	switch b {
	case '!', '\'', '(', ')', '~':
		return true
	}
	return false
})

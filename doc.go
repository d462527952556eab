// Package url implements the WHATWG URL Living Standard: a parser,
// serializer, and set of component accessors that produce a normalized
// URL record from an input string, optionally resolved against a base
// URL.
//
// The public surface mirrors the WHATWG IDL closely (Parse, the Get*/
// Set* accessors, SearchParams) while staying idiomatic Go: fallible
// operations return (value, error) rather than throwing, and the only
// mutable shared state is the explicit owner back-pointer held by a
// SearchParams view.
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// component breakdown and grounding notes; they are not part of the
// package's API documentation.
package url

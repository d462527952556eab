package url

import "fmt"

// ParseErrorKind names one of the fatal parse-error kinds from spec.md §7.
type ParseErrorKind string

const (
	ErrKindEmptyHost                         ParseErrorKind = "empty-host"
	ErrKindIDNA                              ParseErrorKind = "idna-error"
	ErrKindInvalidPort                       ParseErrorKind = "invalid-port"
	ErrKindInvalidIPv4Address                ParseErrorKind = "invalid-ipv4-address"
	ErrKindInvalidIPv6Address                ParseErrorKind = "invalid-ipv6-address"
	ErrKindInvalidURLUnit                    ParseErrorKind = "invalid-url-unit"
	ErrKindFileInvalidWindowsDriveLetterHost ParseErrorKind = "file-invalid-windows-drive-letter-host"
	ErrKindSpecialSchemeMissingSolidus       ParseErrorKind = "special-scheme-missing-following-solidus"
	ErrKindMissingSchemeNonRelativeURL       ParseErrorKind = "missing-scheme-non-relative-url"
	ErrKindCannotBeABaseURL                  ParseErrorKind = "cannot-be-a-base-url"
	ErrKindCannotHaveUsernamePasswordPort    ParseErrorKind = "cannot-have-a-username-password-or-port"
)

// ParseError is returned for any fatal failure to parse a URL. It is
// never returned with a partially-mutated record: parse errors leave the
// target URL (if any, as with a setter's state-override re-entry)
// untouched, per spec.md §7.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	// Offset is -1 on every ParseError this package returns; the
	// position of the failure within Input is not recorded.
	Offset int
	// State is the name of the C9 state active when the failure was
	// detected, grounded on fasturl.Error's Op field.
	State string
}

func (e *ParseError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("url: parse %q: %s (in state %s)", e.Input, e.Kind, e.State)
	}
	return fmt.Sprintf("url: parse %q: %s", e.Input, e.Kind)
}

func newParseError(kind ParseErrorKind, input, state string) *ParseError {
	return &ParseError{Kind: kind, Input: input, Offset: -1, State: state}
}

// ValidationErrorKind names one of the non-fatal validation-error kinds
// from spec.md §7. These never abort a parse; they accumulate on the
// resulting URL's ValidationErrors slice for strict-mode callers.
type ValidationErrorKind string

const (
	ValTabOrNewlineStripped     ValidationErrorKind = "tab-or-newline-stripped"
	ValC0OrSpaceTrimmed         ValidationErrorKind = "c0-control-or-space-trimmed"
	ValInvalidURLUnit           ValidationErrorKind = "invalid-url-unit"
	ValBackslashInSpecialPath   ValidationErrorKind = "backslash-in-special-path"
	ValPercentNotFollowedByHex  ValidationErrorKind = "percent-sign-not-followed-by-hex"
	ValTrailingColonOnHost      ValidationErrorKind = "trailing-colon-on-host"
	ValUnicodeInDomainMapped    ValidationErrorKind = "unicode-code-point-in-domain-mapped"
	ValSpecialSchemeMissingSol  ValidationErrorKind = "special-scheme-missing-following-solidus"
	ValInvalidCredentials       ValidationErrorKind = "invalid-credentials"
	ValFileInvalidWindowsDrive  ValidationErrorKind = "file-invalid-windows-drive-letter"
)

// ValidationError is one non-fatal spec deviation observed during a parse.
type ValidationError struct {
	Kind   ValidationErrorKind
	Offset int
}

// Domain/Punycode/percent codec errors are surfaced directly as the
// underlying internal package's sentinel errors via errors.Is/As; C9
// lifts them into ErrKindIDNA per spec.md §7 ("an IDNA failure within
// C9's host parsing becomes an idna-error parse result").

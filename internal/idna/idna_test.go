package idna_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-whatwg/url/internal/idna"
)

func TestPunycodeRoundTrip(t *testing.T) {
	cases := [][]rune{
		[]rune("bücher"),
		[]rune("日本語"),
		[]rune("ليهمابتكلموشعربي؟"),
		[]rune("abc"),
	}
	for _, label := range cases {
		enc, err := idna.PunycodeEncode(label)
		require.NoError(t, err)
		dec, err := idna.PunycodeDecode(enc)
		require.NoError(t, err)
		assert.Equal(t, label, dec)
	}
}

func TestPunycodeKnownVector(t *testing.T) {
	// "bücher" -> "bcher-kva" (RFC 3492-style reference example family).
	enc, err := idna.PunycodeEncode([]rune("bücher"))
	require.NoError(t, err)
	assert.Equal(t, "bcher-kva", enc)
}

func TestToASCIIPlainDomain(t *testing.T) {
	out, err := idna.ToASCII("example.com", idna.Options{})
	require.NoError(t, err)
	assert.Equal(t, "example.com", out)
}

func TestToASCIIUppercaseIsMapped(t *testing.T) {
	out, err := idna.ToASCII("EXAMPLE.COM", idna.Options{})
	require.NoError(t, err)
	assert.Equal(t, "example.com", out)
}

func TestToASCIIUnicodeLabel(t *testing.T) {
	out, err := idna.ToASCII("bücher.example", idna.Options{})
	require.NoError(t, err)
	assert.Equal(t, "xn--bcher-kva.example", out)
}

func TestToASCIIRejectsDisallowed(t *testing.T) {
	_, err := idna.ToASCII("exa mple.com", idna.Options{})
	require.Error(t, err)
	var idnaErr *idna.Error
	require.ErrorAs(t, err, &idnaErr)
	assert.Equal(t, idna.FailDisallowedCodePoint, idnaErr.Kind)
}

func TestToASCIITooManyLabels(t *testing.T) {
	s := ""
	for i := 0; i < 40; i++ {
		if i > 0 {
			s += "."
		}
		s += "a"
	}
	_, err := idna.ToASCII(s, idna.Options{})
	require.Error(t, err)
	var idnaErr *idna.Error
	require.ErrorAs(t, err, &idnaErr)
	assert.Equal(t, idna.FailTooManyLabels, idnaErr.Kind)
}

func TestToUnicodeInvertsPunycodeOnly(t *testing.T) {
	out := idna.ToUnicode("xn--bcher-kva.example")
	assert.Equal(t, "bücher.example", out)
}

func TestToUnicodeLeavesPlainASCIIAlone(t *testing.T) {
	out := idna.ToUnicode("example.com")
	assert.Equal(t, "example.com", out)
}

func TestStrictVerifiesDNSLength(t *testing.T) {
	// A 64-letter label passes without strict mode but exceeds the
	// 63-octet per-label DNS limit that Strict enforces.
	label := strings.Repeat("a", 64)
	_, err := idna.ToASCII(label, idna.Strict())
	require.Error(t, err)
	var idnaErr *idna.Error
	require.ErrorAs(t, err, &idnaErr)
	assert.Equal(t, idna.FailInvalidLength, idnaErr.Kind)
}

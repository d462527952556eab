package percent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-whatwg/url/internal/percent"
)

func TestEncodeSetHierarchy(t *testing.T) {
	// Every byte in a "smaller" set must also be in the sets that contain it.
	for b := 0; b < 256; b++ {
		byt := byte(b)
		if percent.C0ControlSet(byt) {
			assert.True(t, percent.FragmentSet(byt), "byte %x", b)
		}
		if percent.FragmentSet(byt) {
			assert.True(t, percent.QuerySet(byt), "byte %x", b)
		}
		if percent.QuerySet(byt) {
			assert.True(t, percent.SpecialQuerySet(byt), "byte %x", b)
			assert.True(t, percent.PathSet(byt), "byte %x", b)
		}
		if percent.PathSet(byt) {
			assert.True(t, percent.UserinfoSet(byt), "byte %x", b)
		}
		if percent.UserinfoSet(byt) {
			assert.True(t, percent.ComponentSet(byt), "byte %x", b)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		byt := byte(b)
		if percent.ComponentSet(byt) {
			enc := percent.EncodeByte(byt)
			require.Len(t, enc, 3)
			require.Equal(t, byte('%'), enc[0])
			dec, err := percent.Decode(enc)
			require.NoError(t, err)
			require.Len(t, dec, 1)
			assert.Equal(t, byt, dec[0])
		} else {
			out := percent.Encode(string(byt), percent.ComponentSet)
			assert.Equal(t, string(byt), out)
		}
	}
}

func TestDecodeNonHexInput(t *testing.T) {
	_, err := percent.Decode("%zz")
	assert.ErrorIs(t, err, percent.ErrNonHexInput)
}

func TestDecodeOverflow(t *testing.T) {
	_, err := percent.Decode("ab%4")
	assert.ErrorIs(t, err, percent.ErrOverflow)
}

func TestDecodeLenientPreservesStrayPercent(t *testing.T) {
	assert.Equal(t, "100%", percent.DecodeLenient("100%"))
	assert.Equal(t, "100% done", percent.DecodeLenient("100% done"))
	assert.Equal(t, "a", percent.DecodeLenient("%61"))
}

func TestEncodeFragmentSetExamples(t *testing.T) {
	assert.True(t, percent.FragmentSet(' '))
	assert.True(t, percent.FragmentSet('"'))
	assert.False(t, percent.FragmentSet('a'))
	assert.False(t, percent.FragmentSet('#')) // fragment set itself does not encode '#'
	assert.True(t, percent.QuerySet('#'))
}

func TestComponentSetEncodesReservedPunct(t *testing.T) {
	for _, b := range []byte{'$', '%', '&', '+', ','} {
		assert.True(t, percent.ComponentSet(b))
	}
}

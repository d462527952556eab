package transcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-whatwg/url/internal/transcode"
)

func TestUTF8DecodeASCII(t *testing.T) {
	d := transcode.NewUTF8Decoder([]byte("abc"))
	for _, want := range []rune{'a', 'b', 'c'} {
		r, err, ok := d.Next()
		require.True(t, ok)
		require.NoError(t, err)
		assert.Equal(t, want, r)
	}
	_, err, ok := d.Next()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestUTF8RoundTrip(t *testing.T) {
	cases := []string{"hello", "héllo", "日本語", "\U0001F363\U0001F37A"}
	for _, s := range cases {
		pts, err := transcode.U8ToU32([]byte(s))
		require.NoError(t, err)
		out, err := transcode.U32ToU8(pts)
		require.NoError(t, err)
		assert.Equal(t, s, out)
	}
}

func TestUTF8InvalidLead(t *testing.T) {
	d := transcode.NewUTF8Decoder([]byte{0xFF})
	_, err, ok := d.Next()
	require.True(t, ok)
	assert.ErrorIs(t, err, transcode.ErrInvalidLead)
}

func TestUTF8OverlongRejected(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of U+0000.
	d := transcode.NewUTF8Decoder([]byte{0xC0, 0x80})
	_, err, ok := d.Next()
	require.True(t, ok)
	assert.ErrorIs(t, err, transcode.ErrIllegalByteSequence)
}

func TestUTF8TruncatedSequence(t *testing.T) {
	d := transcode.NewUTF8Decoder([]byte{0xE2, 0x82}) // truncated 3-byte seq
	_, err, ok := d.Next()
	require.True(t, ok)
	assert.ErrorIs(t, err, transcode.ErrIllegalByteSequence)
}

func TestUTF8SurrogateRejected(t *testing.T) {
	// U+D800 encoded in (invalid) 3-byte form: ED A0 80
	d := transcode.NewUTF8Decoder([]byte{0xED, 0xA0, 0x80})
	_, err, ok := d.Next()
	require.True(t, ok)
	assert.ErrorIs(t, err, transcode.ErrInvalidCodePoint)
}

func TestUTF16SurrogatePairDecode(t *testing.T) {
	// U+1F363 (sushi) as a surrogate pair.
	d := transcode.NewUTF16Decoder([]uint16{0xD83C, 0xDF63})
	r, err, ok := d.Next()
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, rune(0x1F363), r)
}

func TestUTF16LoneSurrogateIsError(t *testing.T) {
	d := transcode.NewUTF16Decoder([]uint16{0xD800})
	_, err, ok := d.Next()
	require.True(t, ok)
	assert.ErrorIs(t, err, transcode.ErrInvalidCodePoint)
}

func TestUTF16MisorderedSurrogateIsError(t *testing.T) {
	d := transcode.NewUTF16Decoder([]uint16{0xDC00, 0xD800})
	_, err, ok := d.Next()
	require.True(t, ok)
	assert.ErrorIs(t, err, transcode.ErrInvalidCodePoint)
}

func TestU8ToU16ToU8RoundTrip(t *testing.T) {
	s := "café \U0001F363"
	u16, err := transcode.U8ToU16([]byte(s))
	require.NoError(t, err)
	back, err := transcode.U16ToU8(u16)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

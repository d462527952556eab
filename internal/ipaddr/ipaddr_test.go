package ipaddr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-whatwg/url/internal/ipaddr"
)

func TestParseIPv4Basic(t *testing.T) {
	addr, ok, err := ipaddr.ParseIPv4("192.168.0.1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(0xC0A80001), addr)
	assert.Equal(t, "192.168.0.1", ipaddr.SerializeIPv4(addr))
}

func TestParseIPv4HexOctal(t *testing.T) {
	addr, ok, err := ipaddr.ParseIPv4("0x100")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(256), addr)

	addr2, ok, err := ipaddr.ParseIPv4("0300")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(0300), addr2) // octal 300 = decimal 192
}

func TestParseIPv4ShortForms(t *testing.T) {
	// Per spec.md §4.6's combination formula: p[n-1] + sum_{i<n-1} p[i]*256^(n-1-i).
	// For n=2, p[0]'s exponent is 1, not 3: "1.2" assembles to 1*256 + 2.
	addr, ok, err := ipaddr.ParseIPv4("1.2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(1)<<8|uint32(2), addr)
}

func TestParseIPv4NotNumericFallsThrough(t *testing.T) {
	_, ok, err := ipaddr.ParseIPv4("example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseIPv4OverflowIsHardError(t *testing.T) {
	_, ok, err := ipaddr.ParseIPv4("999.1.1.1")
	assert.True(t, ok)
	assert.ErrorIs(t, err, ipaddr.ErrIPv4Overflow)
}

func TestParseIPv6Basic(t *testing.T) {
	pieces, err := ipaddr.ParseIPv6("2001:0db8:0:0:0:0:1428:57ab")
	require.NoError(t, err)
	assert.Equal(t, "[2001:db8::1428:57ab]", ipaddr.SerializeIPv6(pieces))
}

func TestParseIPv6Compressed(t *testing.T) {
	pieces, err := ipaddr.ParseIPv6("1::2")
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{1, 0, 0, 0, 0, 0, 0, 2}, pieces)
}

func TestParseIPv6AllZero(t *testing.T) {
	pieces, err := ipaddr.ParseIPv6("::")
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{}, pieces)
	assert.Equal(t, "[::]", ipaddr.SerializeIPv6(pieces))
}

func TestParseIPv6LeadingCompression(t *testing.T) {
	pieces, err := ipaddr.ParseIPv6("::1")
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, pieces)
	assert.Equal(t, "[::1]", ipaddr.SerializeIPv6(pieces))
}

func TestParseIPv6TrailingCompression(t *testing.T) {
	pieces, err := ipaddr.ParseIPv6("2001:db8::")
	require.NoError(t, err)
	assert.Equal(t, "[2001:db8::]", ipaddr.SerializeIPv6(pieces))
}

func TestParseIPv6V4Tail(t *testing.T) {
	pieces, err := ipaddr.ParseIPv6("::ffff:192.168.1.1")
	require.NoError(t, err)
	assert.Equal(t, uint16(0xffff), pieces[5])
	assert.Equal(t, uint16(0xc0a8), pieces[6])
	assert.Equal(t, uint16(0x0101), pieces[7])
}

func TestParseIPv6DoubleCompressionRejected(t *testing.T) {
	_, err := ipaddr.ParseIPv6("1::2::3")
	assert.ErrorIs(t, err, ipaddr.ErrInvalidIPv6)
}

func TestParseIPv6TooManyPieces(t *testing.T) {
	_, err := ipaddr.ParseIPv6("1:2:3:4:5:6:7:8:9")
	assert.ErrorIs(t, err, ipaddr.ErrInvalidIPv6)
}

func TestParseIPv6BadHexPiece(t *testing.T) {
	_, err := ipaddr.ParseIPv6("1:2:3:4:5:6:7:zzzz")
	assert.ErrorIs(t, err, ipaddr.ErrInvalidIPv6)
}

package hpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeInteger(value uint32, prefixBits int) []byte {
	buf := &bytes.Buffer{}
	writeInteger(buf, value, prefixBits, 0x00)
	return buf.Bytes()
}

func TestWriteIntegerVectors(t *testing.T) {
	// Vectors from draft-07 section 4.1.1
	assert.Equal(t, []byte{10}, encodeInteger(10, 5))
	assert.Equal(t, []byte{31, 154, 10}, encodeInteger(1337, 5))
	assert.Equal(t, []byte{42}, encodeInteger(42, 8))
}

func TestReadIntegerVectors(t *testing.T) {
	cases := []struct {
		input      []byte
		prefixBits int
		want       uint32
	}{
		{[]byte{10}, 5, 10},
		{[]byte{31, 154, 10}, 5, 1337},
		{[]byte{42}, 8, 42},
		{[]byte{0x1f, 0x00}, 5, 31},
	}

	for _, tc := range cases {
		got, err := readInteger(bytes.NewReader(tc.input), tc.prefixBits)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 30, 31, 32, 127, 128, 254, 255, 256, 1337, 3999, 4000,
		65535, 123456789, 22222222, 1 << 27, 1<<28 - 1}

	for prefixBits := 1; prefixBits <= 8; prefixBits++ {
		for _, value := range values {
			buf := bytes.NewReader(encodeInteger(value, prefixBits))
			got, err := readInteger(buf, prefixBits)
			require.NoError(t, err, "value %d prefix %d", value, prefixBits)
			assert.Equal(t, value, got)
			assert.Zero(t, buf.Len(), "value %d prefix %d left trailing bytes", value, prefixBits)
		}
	}
}

func TestIntegerPacked(t *testing.T) {
	// Two integers packed back to back decode independently
	buf := &bytes.Buffer{}
	writeInteger(buf, 3999, 6, 0x00)
	writeInteger(buf, 4000, 7, 0x00)

	r := bytes.NewReader(buf.Bytes())
	first, err := readInteger(r, 6)
	require.NoError(t, err)
	second, err := readInteger(r, 7)
	require.NoError(t, err)

	assert.Equal(t, uint32(3999), first)
	assert.Equal(t, uint32(4000), second)
}

func TestReadIntegerFlagBitsIgnored(t *testing.T) {
	// High flag bits outside the prefix do not leak into the value
	got, err := readInteger(bytes.NewReader([]byte{0x85}), 7)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), got)
}

func TestReadIntegerTruncated(t *testing.T) {
	_, err := readInteger(bytes.NewReader(nil), 5)
	assert.ErrorIs(t, err, ErrProtocol)

	// Continuation never terminates
	_, err = readInteger(bytes.NewReader([]byte{0x1f, 0x9a}), 5)
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestReadIntegerOverflow(t *testing.T) {
	// Continuation shifted past 28 bits
	_, err := readInteger(bytes.NewReader([]byte{0x1f, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}), 5)
	assert.ErrorIs(t, err, ErrIntegerOverflow)

	// Accumulator overflows the 32-bit range on the final group
	_, err = readInteger(bytes.NewReader([]byte{0x1f, 0xff, 0xff, 0xff, 0xff, 0x0f}), 5)
	assert.ErrorIs(t, err, ErrIntegerOverflow)
}

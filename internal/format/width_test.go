package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/locpack/internal/buf"
)

func TestSignWidthBoundary(t *testing.T) {
	gap := []byte{0x32, 0x00}

	zero := menuLineVersion.append(nil, 0, gap)
	assert.Equal(t, []byte{0x00, 0x00, 0x32, 0x00, 0x00, 0x00, 0x00, 0x00}, zero,
		"0 uses the 2-byte form with 4 zero bytes")

	neg := menuLineVersion.append(nil, -1, gap)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0x32, 0x00, 0x00, 0x00}, neg,
		"-1 uses the 4-byte form with 2 zero bytes")

	for _, tc := range []struct {
		raw  []byte
		want int32
	}{{zero, 0}, {neg, -1}} {
		c := buf.NewCursor(tc.raw)
		v, g, ok := menuLineVersion.read(c)
		require.True(t, ok)
		assert.Equal(t, tc.want, v)
		assert.Equal(t, gap, g)
		assert.True(t, c.Done())
	}
}

func TestSignWidthSubtitle(t *testing.T) {
	tests := []struct {
		name string
		v    int32
		raw  []byte
	}{
		{"zero", 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"positive", 0x1234, []byte{0x34, 0x12, 0x00, 0x00}},
		{"max int16", 32767, []byte{0xff, 0x7f, 0x00, 0x00}},
		{"minus one", -1, []byte{0xff, 0xff, 0xff, 0xff}},
		{"wide negative", -70000, []byte{0x90, 0xee, 0xfe, 0xff}},
		{"low half positive", -65536, []byte{0x00, 0x00, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subtitleUnk0.append(nil, tt.v, nil)
			require.Equal(t, tt.raw, got)

			c := buf.NewCursor(got)
			v, _, ok := subtitleUnk0.read(c)
			require.True(t, ok)
			assert.Equal(t, tt.v, v)
			assert.Equal(t, len(tt.raw), c.Offset())
		})
	}
}

func TestSignWidthFallsBackOnNonZeroPadding(t *testing.T) {
	// Narrow value looks valid but the padding is not zero: must re-read wide.
	c := buf.NewCursor([]byte{0x05, 0x00, 0x01, 0x00})
	v, _, ok := subtitleUnk0.read(c)
	require.True(t, ok)
	assert.Equal(t, int32(0x00010005), v)
	assert.Equal(t, 4, c.Offset())
}

func TestSignWidthTruncated(t *testing.T) {
	c := buf.NewCursor([]byte{0x05, 0x00, 0x00})
	_, _, ok := subtitleUnk0.read(c)
	require.False(t, ok)
	assert.Equal(t, 0, c.Offset(), "failed read rewinds to the field start")
}

func TestCheckSignWidth(t *testing.T) {
	require.NoError(t, checkSignWidth("v", 32767, -32768))
	require.NoError(t, checkSignWidth("v", -32768, -32768))
	require.Error(t, checkSignWidth("v", 32768, -32768))
	require.Error(t, checkSignWidth("v", -32769, -32768))
}

package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := I16BE(data); got != 0x0123 {
		t.Fatalf("I16BE = 0x%x, want 0x0123", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := I32LE(data); got != 0x67452301 {
		t.Fatalf("I32LE = 0x%x, want 0x67452301", got)
	}
	if got := I16LE([]byte{0xff, 0xff}); got != -1 {
		t.Fatalf("I16LE = %d, want -1", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 || I16LE(short) != 0 || I16BE(short) != 0 {
		t.Fatalf("short 16-bit reads should return 0")
	}
	if U32LE(short) != 0 || I32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestAppendHelpers(t *testing.T) {
	var out []byte
	out = AppendI16LE(out, -2)
	out = AppendI16BE(out, 0x0102)
	out = AppendI32LE(out, -1)
	out = AppendU16LE(out, 0xBEEF)
	out = AppendZeros(out, 3)

	require.Equal(t, []byte{
		0xfe, 0xff,
		0x01, 0x02,
		0xff, 0xff, 0xff, 0xff,
		0xef, 0xbe,
		0x00, 0x00, 0x00,
	}, out)

	require.Empty(t, AppendZeros(nil, 0))
}

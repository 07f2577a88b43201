package loctext

import (
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/locpack/pkg/types"
)

func utf16LE(s string, bom bool) []byte {
	var out []byte
	if bom {
		out = append(out, 0xFF, 0xFE)
	}
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

func TestDecodeInput(t *testing.T) {
	const text = "6,,,\n30887,,,\nÄ"

	got, err := decodeInput([]byte(text), "")
	require.NoError(t, err)
	assert.Equal(t, text, got)

	got, err = decodeInput(append([]byte{0xEF, 0xBB, 0xBF}, text...), "")
	require.NoError(t, err)
	assert.Equal(t, text, got, "UTF-8 BOM is dropped")

	got, err = decodeInput(utf16LE(text, true), "")
	require.NoError(t, err)
	assert.Equal(t, text, got, "UTF-16 BOM overrides the default")

	got, err = decodeInput(utf16LE(text, false), EncodingUTF16LE)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestDecodeInputKeepsInvalidUTF8(t *testing.T) {
	raw := []byte{'a', 0xff, 'b'}
	got, err := decodeInput(raw, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, string(raw), got)
}

func TestDecodeInputUnsupported(t *testing.T) {
	_, err := decodeInput([]byte("x"), "EBCDIC")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnsupported))
}

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKind(t *testing.T) {
	e := Errorf(ErrKindMalformedLine, "expected %d fields, got %d", 4, 2)
	e.Line = 7

	require.True(t, errors.Is(e, ErrMalformedLine))
	require.False(t, errors.Is(e, ErrTruncated))

	wrapped := fmt.Errorf("convert: %w", e)
	require.True(t, errors.Is(wrapped, ErrMalformedLine))

	var target *Error
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 7, target.Line)
}

func TestErrorMessageIncludesLocation(t *testing.T) {
	e := NewError(ErrKindTruncated, "need 2 bytes")
	e.Record = 3
	e.Offset = 0x1c
	assert.Equal(t, "record 3, offset 0x1c: need 2 bytes", e.Error())

	stamped := WithFile(e, "menus.locpackbin")
	assert.Equal(t, "menus.locpackbin, record 3, offset 0x1c: need 2 bytes", stamped.Error())
	assert.Equal(t, "", e.File, "WithFile must not mutate the original")

	cause := errors.New("boom")
	e2 := NewError(ErrKindCorrupt, "")
	e2.Err = cause
	assert.Equal(t, "corrupt record: boom", e2.Error())
	assert.ErrorIs(t, e2, cause)
}

func TestWithFilePlainError(t *testing.T) {
	require.NoError(t, WithFile(nil, "x"))
	err := WithFile(errors.New("disk full"), "out.locpack")
	assert.Equal(t, "out.locpack: disk full", err.Error())
}

func TestFileKindHelpers(t *testing.T) {
	assert.Equal(t, 3, KindMenu.TrailingCommas())
	assert.Equal(t, 5, KindSubtitle.TrailingCommas())
	assert.Equal(t, 4, KindMenu.FieldCount())
	assert.Equal(t, 6, KindSubtitle.FieldCount())
	assert.Equal(t, "menu", KindMenu.String())

	k, ok := ParseFileKind("subtitles")
	require.True(t, ok)
	assert.Equal(t, KindSubtitle, k)
	_, ok = ParseFileKind("audio")
	assert.False(t, ok)
}

package titles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/locpack/pkg/types"
)

func TestDefaultClassify(t *testing.T) {
	tests := []struct {
		name   string
		header types.Header
		want   types.FileKind
	}{
		{"avatar menus", types.Header{Line1: 6, Line2: 30887}, types.KindMenu},
		{"outlaws menus", types.Header{Line1: 6, Line2: 17106}, types.KindMenu},
		{"avatar subtitles", types.Header{Line1: 7, Line2: 65565}, types.KindSubtitle},
		{"outlaws subtitles", types.Header{Line1: 8, Line2: 98265}, types.KindSubtitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default().Classify(tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	for _, h := range []types.Header{{Line1: 6, Line2: 65565}, {Line1: 0, Line2: 0}, {Line1: 7, Line2: 30887}} {
		kind, err := Default().Classify(h)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrUnrecognizedHeader))
		assert.Equal(t, types.KindUnknown, kind)
		assert.False(t, Default().IsMenus(h))
		assert.False(t, Default().IsSubtitles(h))
	}
}

func TestExtendLeavesReceiverUntouched(t *testing.T) {
	base := Default()
	before := base.Len()

	ext, err := base.Extend(Entry{Title: "Test Title", Kind: types.KindMenu, Line1: 9, Line2: 1234})
	require.NoError(t, err)

	assert.Equal(t, before, base.Len())
	assert.Equal(t, before+1, ext.Len())
	assert.True(t, ext.IsMenus(types.Header{Line1: 9, Line2: 1234}))
	assert.False(t, base.IsMenus(types.Header{Line1: 9, Line2: 1234}))

	e, ok := ext.Lookup(types.Header{Line1: 9, Line2: 1234})
	require.True(t, ok)
	assert.Equal(t, "Test Title", e.Title)
}

func TestConflictingKinds(t *testing.T) {
	_, err := Default().Extend(Entry{Title: "Clash", Kind: types.KindSubtitle, Line1: 6, Line2: 30887})
	require.Error(t, err)

	_, err = New(Entry{Title: "Bad", Kind: types.KindUnknown, Line1: 1, Line2: 1})
	require.Error(t, err)

	// Same pair, same kind is fine.
	tbl, err := Default().Extend(Entry{Title: "Avatar (dup)", Kind: types.KindMenu, Line1: 6, Line2: 30887})
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), tbl.Len())
}

func TestEntriesOrdered(t *testing.T) {
	got := Default().Entries()
	require.Len(t, got, 4)
	assert.Equal(t, types.Header{Line1: 6, Line2: 17106}, got[0].Header())
	assert.Equal(t, types.Header{Line1: 6, Line2: 30887}, got[1].Header())
	assert.Equal(t, types.Header{Line1: 7, Line2: 65565}, got[2].Header())
	assert.Equal(t, types.Header{Line1: 8, Line2: 98265}, got[3].Header())
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	_, err := tbl.Classify(types.Header{Line1: 6, Line2: 30887})
	assert.True(t, errors.Is(err, types.ErrUnrecognizedHeader))
	assert.Equal(t, 0, tbl.Len())
	assert.Nil(t, tbl.Entries())
}

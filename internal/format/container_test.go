package format

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/locpack/pkg/titles"
	"github.com/joshuapare/locpack/pkg/types"
)

var (
	menuHeader     = types.Header{Line1: 6, Line2: 30887}
	subtitleHeader = types.Header{Line1: 8, Line2: 98265}
)

func TestEncodeDecodeMenuFile(t *testing.T) {
	f := &types.File{
		Header: menuHeader,
		Kind:   types.KindMenu,
		Menus: []types.MenuRecord{
			{ID: mustGUID(t, "3F2504E0-4F89-11D3-9A0C-0305E82C3301"), LineVersion: 1, MaxLength: 50, Text: []byte(`Hello, "World"`)},
			{ID: mustGUID(t, "00112233-4455-6677-8899-AABBCCDDEEFF"), LineVersion: -1, MaxLength: 0, Text: []byte("--menu")},
			{ID: mustGUID(t, "FFFFFFFF-0000-0000-0000-000000000001"), LineVersion: 0, MaxLength: 0},
		},
	}
	data, err := EncodeFile(f)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0, 0, 0, 0xA7, 0x78, 0, 0}, data[:HeaderSize])

	back, err := DecodeFile(data, titles.Default())
	require.NoError(t, err)
	if diff := cmp.Diff(f, back); diff != "" {
		t.Fatalf("decoded file mismatch (-want +got):\n%s", diff)
	}

	again, err := EncodeFile(back)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestEncodeDecodeSubtitleFile(t *testing.T) {
	f := &types.File{
		Header: subtitleHeader,
		Kind:   types.KindSubtitle,
		Subtitles: []types.SubtitleRecord{
			{ID: mustGUID(t, "3F2504E0-4F89-11D3-9A0C-0305E82C3301"), Unk0: 4, Unk1: 1, Unk2: 300, Unk3: 2},
			{ID: mustGUID(t, "3F2504E0-4F89-11D3-9A0C-0305E82C3302"), Unk0: -3, Unk1: 1, Unk2: -300, Unk3: 2, Text: []byte("Line, with comma")},
			{ID: mustGUID(t, "3F2504E0-4F89-11D3-9A0C-0305E82C3303"), Unk0: 4, Unk2: 5, Text: []byte("ok")},
		},
	}
	data, err := EncodeFile(f)
	require.NoError(t, err)

	back, err := DecodeFile(data, titles.Default())
	require.NoError(t, err)
	if diff := cmp.Diff(f, back); diff != "" {
		t.Fatalf("decoded file mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFileHeaderOnly(t *testing.T) {
	f, err := DecodeFile(AppendHeader(nil, menuHeader), titles.Default())
	require.NoError(t, err)
	assert.Equal(t, types.KindMenu, f.Kind)
	assert.Equal(t, 0, f.Len())
}

func TestDecodeFileUnrecognizedHeader(t *testing.T) {
	data := AppendHeader(nil, types.Header{Line1: 1, Line2: 2})
	data = append(data, make([]byte, 64)...)
	f, err := DecodeFile(data, titles.Default())
	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, types.ErrUnrecognizedHeader))
}

func TestDecodeFileTruncated(t *testing.T) {
	_, err := DecodeFile([]byte{0x06, 0, 0}, titles.Default())
	require.True(t, errors.Is(err, types.ErrTruncated))

	f := &types.File{Header: menuHeader, Kind: types.KindMenu, Menus: []types.MenuRecord{
		{LineVersion: 1, MaxLength: 2, Text: []byte("ab")},
		{LineVersion: 2, MaxLength: 2, Text: []byte("cd")},
	}}
	data, err := EncodeFile(f)
	require.NoError(t, err)

	_, err = DecodeFile(data[:len(data)-1], titles.Default())
	require.Error(t, err)
	var te *types.Error
	require.True(t, errors.As(err, &te))
	assert.Equal(t, types.ErrKindTruncated, te.Kind)
	assert.Equal(t, 1, te.Record)
}

func TestEncodeFileReportsRecordIndex(t *testing.T) {
	f := &types.File{Header: menuHeader, Kind: types.KindMenu, Menus: []types.MenuRecord{
		{LineVersion: 1, Text: []byte("fine")},
		{LineVersion: 99999, Text: []byte("too wide")},
	}}
	_, err := EncodeFile(f)
	require.Error(t, err)
	var te *types.Error
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 1, te.Record)
	assert.Equal(t, types.ErrKindMalformedLine, te.Kind)
}

func TestEncodeFileUnknownKind(t *testing.T) {
	_, err := EncodeFile(&types.File{Header: menuHeader})
	require.True(t, errors.Is(err, types.ErrUnsupported))
}

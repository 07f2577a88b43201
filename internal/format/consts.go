// Package format houses the low-level encoders and decoders for the
// LocPackBin record layouts. It works on in-memory buffers only and keeps no
// state between calls.
//
// File layout (little-endian unless noted):
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    Header line 1 (int32)
//	 0x04    4    Header line 2 (int32)
//	 0x08    ...  Records, tightly packed, no count and no separators
//
// Menu record:
//
//	GUID(16) | lineVersion(2|4) | maxLength(2) | zero(4|2) | textLength(2) | text
//
// Subtitle record:
//
//	GUID(16) | unk0(2|4) | zero(2|0) | unk1(2) | zero(1) | unk2 BE(2) | zero(3) |
//	unk3(2) | zero(2) | textLength(2) | text
//
// The widths marked a|b depend on the sign of lineVersion / unk0: non-negative
// values take the narrow form, negative values the wide one, and the zero run
// that follows shrinks by the difference. Record boundaries are recovered
// purely from these rules.
package format

const (
	// HeaderSize is the size of the two int32 header values.
	HeaderSize = 8

	// GUIDSize is the size of an embedded identifier.
	GUIDSize = 16

	// NarrowIntSize and WideIntSize are the two widths of a sign-dependent field.
	NarrowIntSize = 2
	WideIntSize   = 4

	// Int16Size is the size of every fixed-width integer field.
	Int16Size = 2

	// TextLengthSize is the size of the unsigned text length prefix.
	TextLengthSize = 2

	// MaxTextLength is the largest text payload a record can carry.
	MaxTextLength = 0xFFFF
)

// Menu record padding.
const (
	MenuNarrowPad = 4 // zero bytes after maxLength when lineVersion >= 0
	MenuWidePad   = 2 // zero bytes after maxLength when lineVersion < 0

	// MenuFixedSize is the record size excluding text; identical for both widths.
	MenuFixedSize = GUIDSize + NarrowIntSize + Int16Size + MenuNarrowPad + TextLengthSize
)

// Subtitle record padding.
const (
	SubtitleNarrowPad = 2 // zero bytes after unk0 when unk0 >= 0
	SubtitleWidePad   = 0 // zero bytes after unk0 when unk0 < 0
	SubtitleGapSize   = 1 // single byte between unk1 and unk2
	SubtitleUnk2Pad   = 3 // zero bytes after unk2
	SubtitleUnk3Pad   = 2 // zero bytes after unk3

	// SubtitleFixedSize is the record size excluding text for the regular layout.
	SubtitleFixedSize = GUIDSize + NarrowIntSize + SubtitleNarrowPad + Int16Size +
		SubtitleGapSize + Int16Size + SubtitleUnk2Pad + Int16Size + SubtitleUnk3Pad + TextLengthSize
)

// Irregular subtitle layout. Files written by the reference encoder store
// records with unk0 == 4 and no text differently: the gap byte holds
// SubtitleSentinel, unk2 is stored little-endian, and the zero run after it
// is one byte shorter.
const (
	SubtitleQuirkUnk0    = 4
	SubtitleSentinel     = 0xFF
	SubtitleQuirkUnk2Pad = 2

	SubtitleQuirkFixedSize = SubtitleFixedSize - (SubtitleUnk2Pad - SubtitleQuirkUnk2Pad)
)

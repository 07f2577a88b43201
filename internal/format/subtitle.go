package format

import (
	"math"

	"github.com/joshuapare/locpack/internal/buf"
	"github.com/joshuapare/locpack/pkg/types"
)

// ValidateSubtitle checks that every field of rec fits the binary layout.
// unk0 accepts any negative int32: its narrow padding sits where the high
// half of the wide form is, so the width probe cannot confuse the two.
func ValidateSubtitle(rec types.SubtitleRecord) error {
	if err := checkSignWidth("unk0", rec.Unk0, math.MinInt32); err != nil {
		return err
	}
	if len(rec.Text) > MaxTextLength {
		return outOfRange("text length", int64(len(rec.Text)), 0, MaxTextLength)
	}
	return nil
}

// isQuirk reports whether rec uses the irregular layout.
func isQuirk(rec types.SubtitleRecord) bool {
	return rec.Unk0 == SubtitleQuirkUnk0 && len(rec.Text) == 0
}

// SubtitleSize returns the encoded size of rec.
func SubtitleSize(rec types.SubtitleRecord) int {
	if isQuirk(rec) {
		return SubtitleQuirkFixedSize
	}
	return SubtitleFixedSize + len(rec.Text)
}

// AppendSubtitle appends the binary form of rec to dst.
func AppendSubtitle(dst []byte, rec types.SubtitleRecord) ([]byte, error) {
	if err := ValidateSubtitle(rec); err != nil {
		return dst, err
	}

	dst = AppendGUID(dst, rec.ID)
	dst = subtitleUnk0.append(dst, rec.Unk0, nil)
	dst = buf.AppendI16LE(dst, rec.Unk1)

	if isQuirk(rec) {
		// Reproduces the reference encoder byte for byte; see the const block.
		dst = append(dst, SubtitleSentinel)
		dst = buf.AppendI16LE(dst, rec.Unk2)
		dst = buf.AppendZeros(dst, SubtitleQuirkUnk2Pad)
	} else {
		dst = append(dst, 0)
		dst = buf.AppendI16BE(dst, rec.Unk2)
		dst = buf.AppendZeros(dst, SubtitleUnk2Pad)
	}

	dst = buf.AppendI16LE(dst, rec.Unk3)
	dst = buf.AppendZeros(dst, SubtitleUnk3Pad)
	dst = buf.AppendU16LE(dst, uint16(len(rec.Text)))
	return append(dst, rec.Text...), nil
}

// ReadSubtitle decodes one subtitle record at the cursor. index is the
// record's position in the file and is only used for error context.
func ReadSubtitle(c *buf.Cursor, index int) (types.SubtitleRecord, error) {
	var rec types.SubtitleRecord
	start := c.Offset()

	id, err := readGUID(c, index)
	if err != nil {
		return rec, err
	}
	rec.ID = id

	unk0, _, ok := subtitleUnk0.read(c)
	if !ok {
		return rec, truncated(index, c.Offset(), "subtitle unk0", c.Len())
	}
	rec.Unk0 = unk0

	if rec.Unk1, ok = c.I16LE(); !ok {
		return rec, truncated(index, c.Offset(), "subtitle unk1", c.Len())
	}

	marker, ok := c.Byte()
	if !ok {
		return rec, truncated(index, c.Offset(), "subtitle gap", c.Len())
	}
	quirk := marker == SubtitleSentinel && rec.Unk0 == SubtitleQuirkUnk0

	unk2Pad := SubtitleUnk2Pad
	if quirk {
		rec.Unk2, ok = c.I16LE()
		unk2Pad = SubtitleQuirkUnk2Pad
	} else {
		rec.Unk2, ok = c.I16BE()
	}
	if !ok {
		return rec, truncated(index, c.Offset(), "subtitle unk2", c.Len())
	}
	if _, ok := c.Bytes(unk2Pad); !ok {
		return rec, truncated(index, c.Offset(), "subtitle unk2 padding", c.Len())
	}

	if rec.Unk3, ok = c.I16LE(); !ok {
		return rec, truncated(index, c.Offset(), "subtitle unk3", c.Len())
	}
	if _, ok := c.Bytes(SubtitleUnk3Pad); !ok {
		return rec, truncated(index, c.Offset(), "subtitle unk3 padding", c.Len())
	}

	text, err := readText(c, index)
	if err != nil {
		return rec, err
	}
	rec.Text = text

	if quirk && len(text) != 0 {
		return rec, corrupt(index, start, "irregular subtitle layout with %d bytes of text", len(text))
	}
	return rec, nil
}

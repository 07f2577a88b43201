package format

import (
	"bytes"
	"math"

	"github.com/joshuapare/locpack/internal/buf"
	"github.com/joshuapare/locpack/pkg/types"
)

// ValidateMenu checks that every field of rec fits the binary layout.
// Negative lineVersion values take the wide form. A wide value whose low
// half is non-negative, followed by a zero maxLength, reads back as the
// narrow form, so that combination is rejected.
func ValidateMenu(rec types.MenuRecord) error {
	if err := checkSignWidth("lineVersion", rec.LineVersion, math.MinInt32); err != nil {
		return err
	}
	if readsAsNarrow(rec.LineVersion, effectiveMaxLength(rec)) {
		return types.Errorf(types.ErrKindMalformedLine,
			"lineVersion %d needs a non-zero maxLength and non-empty text to be stored", rec.LineVersion)
	}
	if len(rec.Text) > MaxTextLength {
		return outOfRange("text length", int64(len(rec.Text)), 0, MaxTextLength)
	}
	return nil
}

// effectiveMaxLength is the maxLength actually written for rec.
func effectiveMaxLength(rec types.MenuRecord) int16 {
	if len(rec.Text) == 0 {
		return 0
	}
	return rec.MaxLength
}

// readsAsNarrow reports whether the wide encoding of lineVersion followed by
// maxLength would pass the narrow probe.
func readsAsNarrow(lineVersion int32, maxLength int16) bool {
	return lineVersion < 0 && int16(lineVersion) >= 0 && maxLength == 0
}

// MenuSize returns the encoded size of rec.
func MenuSize(rec types.MenuRecord) int {
	return MenuFixedSize + len(rec.Text)
}

// AppendMenu appends the binary form of rec to dst.
func AppendMenu(dst []byte, rec types.MenuRecord) ([]byte, error) {
	if err := ValidateMenu(rec); err != nil {
		return dst, err
	}
	maxLength := effectiveMaxLength(rec)

	dst = AppendGUID(dst, rec.ID)
	dst = menuLineVersion.append(dst, rec.LineVersion, buf.AppendI16LE(nil, maxLength))
	dst = buf.AppendU16LE(dst, uint16(len(rec.Text)))
	return append(dst, rec.Text...), nil
}

// ReadMenu decodes one menu record at the cursor. index is the record's
// position in the file and is only used for error context.
func ReadMenu(c *buf.Cursor, index int) (types.MenuRecord, error) {
	var rec types.MenuRecord

	id, err := readGUID(c, index)
	if err != nil {
		return rec, err
	}
	rec.ID = id

	lineVersion, gap, ok := menuLineVersion.read(c)
	if !ok {
		return rec, truncated(index, c.Offset(), "menu lineVersion", c.Len())
	}
	rec.LineVersion = lineVersion
	rec.MaxLength = buf.I16LE(gap)

	text, err := readText(c, index)
	if err != nil {
		return rec, err
	}
	rec.Text = text
	return rec, nil
}

func readGUID(c *buf.Cursor, index int) (types.GUID, error) {
	raw, ok := c.Bytes(GUIDSize)
	if !ok {
		return types.GUID{}, truncated(index, c.Offset(), "identifier", c.Len())
	}
	var b [GUIDSize]byte
	copy(b[:], raw)
	return UnpermuteGUID(b), nil
}

// readText reads the length-prefixed text. The bytes are copied so records
// never alias the (possibly memory-mapped) input buffer.
func readText(c *buf.Cursor, index int) ([]byte, error) {
	n, ok := c.U16LE()
	if !ok {
		return nil, truncated(index, c.Offset(), "text length", c.Len())
	}
	if n == 0 {
		return nil, nil
	}
	raw, ok := c.Bytes(int(n))
	if !ok {
		return nil, truncated(index, c.Offset(), "text", c.Len())
	}
	return bytes.Clone(raw), nil
}

package format

import (
	"math"

	"github.com/joshuapare/locpack/internal/buf"
)

// signWidth describes an integer stored as int16 when non-negative and as
// int32 when negative. gap bytes belonging to the next field sit between the
// value and its zero padding; the padding is narrowPad or widePad long so the
// total size is the same for both widths.
type signWidth struct {
	gap       int
	narrowPad int
	widePad   int
}

var (
	menuLineVersion = signWidth{gap: Int16Size, narrowPad: MenuNarrowPad, widePad: MenuWidePad}
	subtitleUnk0    = signWidth{gap: 0, narrowPad: SubtitleNarrowPad, widePad: SubtitleWidePad}
)

// size returns the encoded size of value, gap and padding.
func (w signWidth) size() int {
	return NarrowIntSize + w.gap + w.narrowPad
}

// append writes v, gap and the matching zero padding. len(gap) must equal w.gap.
func (w signWidth) append(dst []byte, v int32, gap []byte) []byte {
	if v >= 0 {
		dst = buf.AppendI16LE(dst, int16(v))
		dst = append(dst, gap...)
		return buf.AppendZeros(dst, w.narrowPad)
	}
	dst = buf.AppendI32LE(dst, v)
	dst = append(dst, gap...)
	return buf.AppendZeros(dst, w.widePad)
}

// read decodes a sign-dependent field. It first tries the narrow form and
// commits to it only if the value is non-negative and its padding is all
// zero; otherwise it rewinds to the field start and reads the wide form.
// ok is false when the buffer ends inside the field.
func (w signWidth) read(c *buf.Cursor) (v int32, gap []byte, ok bool) {
	start := c.Offset()
	if v, gap, ok := w.readNarrow(c); ok {
		return v, gap, true
	}
	c.Seek(start)
	return w.readWide(c)
}

func (w signWidth) readNarrow(c *buf.Cursor) (int32, []byte, bool) {
	n, ok := c.I16LE()
	if !ok || n < 0 {
		return 0, nil, false
	}
	gap, ok := c.Bytes(w.gap)
	if !ok {
		return 0, nil, false
	}
	zero, ok := c.Zeros(w.narrowPad)
	if !ok || !zero {
		return 0, nil, false
	}
	return int32(n), gap, true
}

func (w signWidth) readWide(c *buf.Cursor) (int32, []byte, bool) {
	start := c.Offset()
	v, ok := c.I32LE()
	if !ok {
		return 0, nil, false
	}
	gap, ok := c.Bytes(w.gap)
	if !ok {
		c.Seek(start)
		return 0, nil, false
	}
	// Wide padding is skipped, not checked, as the reference decoder does.
	if _, ok := c.Bytes(w.widePad); !ok {
		c.Seek(start)
		return 0, nil, false
	}
	return v, gap, true
}

// checkSignWidth validates that v survives the narrow/wide rule: non-negative
// values must fit in int16 and negatives must not go below minNeg.
func checkSignWidth(field string, v int32, minNeg int64) error {
	if int64(v) > math.MaxInt16 || int64(v) < minNeg {
		return outOfRange(field, int64(v), minNeg, math.MaxInt16)
	}
	return nil
}

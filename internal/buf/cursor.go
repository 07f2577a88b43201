package buf

// Cursor is a forward reader over an in-memory buffer. Every read is bounds
// checked and reports ok = false instead of panicking; a failed read leaves
// the position unchanged. Seek supports the speculative reads used by
// formats whose field widths are only known after looking ahead.
type Cursor struct {
	b   []byte
	off int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.off }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.b) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.b) - c.off }

// Done reports whether the cursor has consumed the whole buffer.
func (c *Cursor) Done() bool { return c.off >= len(c.b) }

// Seek moves the cursor to an absolute offset previously returned by Offset.
func (c *Cursor) Seek(off int) bool {
	if off < 0 || off > len(c.b) {
		return false
	}
	c.off = off
	return true
}

// Bytes returns the next n bytes without copying.
func (c *Cursor) Bytes(n int) ([]byte, bool) {
	s, ok := Slice(c.b, c.off, n)
	if !ok {
		return nil, false
	}
	c.off += n
	return s, true
}

// Byte reads a single byte.
func (c *Cursor) Byte() (byte, bool) {
	s, ok := c.Bytes(1)
	if !ok {
		return 0, false
	}
	return s[0], true
}

// U16LE reads a little-endian uint16.
func (c *Cursor) U16LE() (uint16, bool) {
	s, ok := c.Bytes(2)
	if !ok {
		return 0, false
	}
	return U16LE(s), true
}

// I16LE reads a little-endian int16.
func (c *Cursor) I16LE() (int16, bool) {
	s, ok := c.Bytes(2)
	if !ok {
		return 0, false
	}
	return I16LE(s), true
}

// I16BE reads a big-endian int16.
func (c *Cursor) I16BE() (int16, bool) {
	s, ok := c.Bytes(2)
	if !ok {
		return 0, false
	}
	return I16BE(s), true
}

// I32LE reads a little-endian int32.
func (c *Cursor) I32LE() (int32, bool) {
	s, ok := c.Bytes(4)
	if !ok {
		return 0, false
	}
	return I32LE(s), true
}

// Zeros consumes n bytes and reports whether they were all zero. ok is false
// when fewer than n bytes remain.
func (c *Cursor) Zeros(n int) (zero bool, ok bool) {
	s, ok := c.Bytes(n)
	if !ok {
		return false, false
	}
	return AllZero(s), true
}

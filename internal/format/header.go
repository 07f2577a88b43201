package format

import (
	"github.com/joshuapare/locpack/internal/buf"
	"github.com/joshuapare/locpack/pkg/types"
)

// AppendHeader appends the two header integers.
func AppendHeader(dst []byte, h types.Header) []byte {
	dst = buf.AppendI32LE(dst, h.Line1)
	return buf.AppendI32LE(dst, h.Line2)
}

// ReadHeader reads the two header integers at the cursor.
func ReadHeader(c *buf.Cursor) (types.Header, error) {
	line1, ok := c.I32LE()
	if !ok {
		return types.Header{}, truncated(-1, c.Offset(), "header", c.Len())
	}
	line2, ok := c.I32LE()
	if !ok {
		return types.Header{}, truncated(-1, c.Offset(), "header", c.Len())
	}
	return types.Header{Line1: line1, Line2: line2}, nil
}

package format

import "github.com/joshuapare/locpack/pkg/types"

// truncated reports that a read of field at off ran past the end of the buffer.
func truncated(record, off int, field string, bufLen int) error {
	e := types.Errorf(types.ErrKindTruncated, "%s: unexpected end of buffer (len %d)", field, bufLen)
	e.Record = record
	e.Offset = off
	return e
}

// corrupt reports a layout violation in record at off.
func corrupt(record, off int, format string, args ...any) error {
	e := types.Errorf(types.ErrKindCorrupt, format, args...)
	e.Record = record
	e.Offset = off
	return e
}

// outOfRange reports a field value the binary layout cannot represent.
func outOfRange(field string, v int64, lo, hi int64) error {
	return types.Errorf(types.ErrKindMalformedLine, "%s %d out of range [%d, %d]", field, v, lo, hi)
}

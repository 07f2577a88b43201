package writer

// MemWriter captures output bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteOutput stores a copy of buf, replacing anything captured before.
func (w *MemWriter) WriteOutput(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}

//go:build windows

package writer

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync flushes file buffers with FlushFileBuffers.
func fdatasync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

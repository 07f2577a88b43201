//go:build darwin

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync uses fsync; macOS has no fdatasync.
func fdatasync(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}

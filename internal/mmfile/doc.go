// Package mmfile maps input files read-only for conversion.
//
// Map returns the file contents and a cleanup function that must be called
// once the caller no longer references the returned slice. On platforms
// without mmap support the file is read into memory and cleanup is a no-op.
package mmfile

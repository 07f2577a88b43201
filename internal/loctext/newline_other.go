//go:build !windows

package loctext

// PlatformNewline is the default line separator for emitted LocPack text.
const PlatformNewline = LF

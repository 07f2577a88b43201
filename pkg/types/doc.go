// Package types defines the public data model shared by the locpack codec,
// its facade, and the command-line tool.
//
// A localization pack exists in two forms:
//   - LocPack: a comma-delimited UTF-8 text file meant for editing.
//   - LocPackBin: the packed binary form read by the game engine.
//
// Both forms open with a two-integer Header whose value identifies the title
// and the record kind (Menu or Subtitle). Everything after the header is an
// ordered list of records of that kind.
//
// Design goals:
//   - Lossless, byte-exact conversion in both directions.
//   - Paranoid bounds checking; never panic on malformed input.
//   - Typed errors with stable categories (header/line/truncated/...).
//
// This package depends only on github.com/google/uuid beyond the standard library.
package types

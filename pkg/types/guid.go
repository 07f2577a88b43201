package types

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// GUID is a 16-byte identifier in Microsoft mixed-endian order: the first
// three groups little-endian, the last two as written. This is the order
// .NET's Guid.ToByteArray produces and the order the binary permutation in
// internal/format starts from.
type GUID [16]byte

// mixedEndianTranspose maps RFC 4122 byte positions to mixed-endian ones.
// It is its own inverse.
var mixedEndianTranspose = [16]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// GUIDFromUUID converts a standard UUID into its mixed-endian encoding.
func GUIDFromUUID(u uuid.UUID) (g GUID) {
	for dest, from := range mixedEndianTranspose {
		g[dest] = u[from]
	}
	return g
}

// UUID converts back to the standard RFC 4122 byte order.
func (g GUID) UUID() (u uuid.UUID) {
	for from, dest := range mixedEndianTranspose {
		u[dest] = g[from]
	}
	return u
}

// ParseGUID parses the textual forms accepted by uuid.Parse: hyphenated,
// braced, urn-prefixed or 32 bare hex digits, in either case.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		e := Errorf(ErrKindInvalidIdentifier, "invalid identifier %q", s)
		e.Err = err
		return GUID{}, e
	}
	return GUIDFromUUID(u), nil
}

// String renders the canonical upper-case 8-4-4-4-12 form.
func (g GUID) String() string {
	return strings.ToUpper(g.UUID().String())
}

// Compact renders 32 upper-case hex digits without separators.
func (g GUID) Compact() string {
	u := g.UUID()
	return strings.ToUpper(hex.EncodeToString(u[:]))
}

// GUIDStyle selects how identifiers are rendered in LocPack text.
type GUIDStyle int

const (
	// GUIDHyphenated renders 8-4-4-4-12 upper-case groups.
	GUIDHyphenated GUIDStyle = iota
	// GUIDCompact renders 32 upper-case hex digits, as older converters wrote them.
	GUIDCompact
)

// Format renders g in the requested style.
func (g GUID) Format(style GUIDStyle) string {
	if style == GUIDCompact {
		return g.Compact()
	}
	return g.String()
}

// ParseGUIDStyle accepts "hyphenated" (or "") and "compact".
func ParseGUIDStyle(s string) (GUIDStyle, bool) {
	switch strings.ToLower(s) {
	case "", "hyphenated", "d":
		return GUIDHyphenated, true
	case "compact", "n":
		return GUIDCompact, true
	default:
		return GUIDHyphenated, false
	}
}

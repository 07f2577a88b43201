package format

import "github.com/joshuapare/locpack/pkg/types"

// binaryFromCanonical[i] is the canonical byte index stored at binary index i:
// group 3, group 2, group 1, then group 5 and group 4 each byte-reversed.
var binaryFromCanonical = [GUIDSize]int{
	6, 7, // group 3
	4, 5, // group 2
	0, 1, 2, 3, // group 1
	15, 14, 13, 12, 11, 10, // group 5, reversed
	9, 8, // group 4, reversed
}

// canonicalFromBinary is the inverse of binaryFromCanonical.
var canonicalFromBinary [GUIDSize]int

func init() {
	for bin, canon := range binaryFromCanonical {
		canonicalFromBinary[canon] = bin
	}
}

// PermuteGUID converts a canonical GUID to its on-disk byte order.
func PermuteGUID(g types.GUID) (out [GUIDSize]byte) {
	for i, from := range binaryFromCanonical {
		out[i] = g[from]
	}
	return out
}

// UnpermuteGUID converts on-disk GUID bytes back to canonical order.
func UnpermuteGUID(b [GUIDSize]byte) (g types.GUID) {
	for i, from := range canonicalFromBinary {
		g[i] = b[from]
	}
	return g
}

// AppendGUID appends the on-disk form of g to dst.
func AppendGUID(dst []byte, g types.GUID) []byte {
	p := PermuteGUID(g)
	return append(dst, p[:]...)
}

// Package guid renders 16-byte identifiers as canonical hyphenated hex text.
package guid

import "encoding/hex"

const dash byte = '-'

// Format returns the canonical 36-character text representation of a 16-byte
// identifier, grouped 8-4-4-4-12. The identifier's first three fields are
// 32-, 16-, and 16-bit little-endian values; they render most-significant
// digit first, so their bytes swap within each group. The trailing ten bytes
// render in buffer order. This implementation is optimized to not use fmt.
// Example: 3ade6419-8d00-0650-65ff-4c5bcbd204a6
func Format(u [16]byte) string {
	fields := [16]byte{
		u[3], u[2], u[1], u[0],
		u[5], u[4],
		u[7], u[6],
	}
	copy(fields[8:], u[8:])

	var scratch [36]byte

	hex.Encode(scratch[:8], fields[0:4])
	scratch[8] = dash
	hex.Encode(scratch[9:13], fields[4:6])
	scratch[13] = dash
	hex.Encode(scratch[14:18], fields[6:8])
	scratch[18] = dash
	hex.Encode(scratch[19:23], fields[8:10])
	scratch[23] = dash
	hex.Encode(scratch[24:], fields[10:])

	return string(scratch[:])
}

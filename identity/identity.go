// Package identity derives 128-bit identifiers deterministically from int32
// seeds. Equal seeds always yield the same identifier; the avalanche mix and
// the wide multiplier make collisions between distinct seeds unreachable in
// any enumerable range, though a 32-to-128-bit expansion cannot rule them
// out in principle.
//
// The derivation is not cryptographic. The seed is recoverable from the
// first identifier field (see Source), so these identifiers must never be
// used as security tokens.
package identity

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/numtext/numtext/internal/guid"
)

// Murmur3 32-bit finalizer multipliers.
const (
	mixMultiplier1 = 0x85EBCA6B
	mixMultiplier2 = 0xC2B2AE35
)

// productMultiplier spreads the seed across the upper eight identifier
// bytes. It is the MMIX linear-congruential multiplier, a large odd constant
// with good spectral properties.
const productMultiplier = 6364136223846793005

// Mix32 applies a murmur3-finalizer avalanche to value: shifts are logical
// (zero-fill) regardless of sign, and both multiplies wrap on overflow. The
// wrapping is what gives the transform its avalanche quality; flipping any
// input bit flips roughly half the output bits.
func Mix32(value int32) int32 {
	v := uint32(value)
	v ^= v >> 16
	v *= mixMultiplier1
	v ^= v >> 13
	v *= mixMultiplier2
	v ^= v >> 16
	return int32(v)
}

// ID is a 128-bit identifier buffer: bytes [0:4] hold the little-endian
// seed, [4:8] the little-endian Mix32 of the seed, and [8:16] the
// little-endian wrapping product of the seed and productMultiplier.
type ID [16]byte

// Bytes returns a copy of the raw 16-byte buffer.
func (id ID) Bytes() []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

// String returns the canonical 36-character hyphenated lowercase hex form.
func (id ID) String() string {
	return guid.Format(id)
}

// Derive builds the identifier buffer for seed. Pure and total: every int32
// including zero and both extremes produces a well-formed identifier.
func Derive(seed int32) ID {
	var id ID
	binary.LittleEndian.PutUint32(id[0:4], uint32(seed))
	binary.LittleEndian.PutUint32(id[4:8], uint32(Mix32(seed)))
	binary.LittleEndian.PutUint64(id[8:16], uint64(int64(seed)*productMultiplier))
	return id
}

// FromInt32 derives the identifier for seed and renders it in canonical
// form.
func FromInt32(seed int32) string {
	return Derive(seed).String()
}

// Source recovers the seed an identifier string was derived from. The first
// identifier field is the seed itself, so recovery is a parse plus a
// re-derivation check that confirms the remaining fields are consistent.
// Returns an error when s is not a canonical identifier produced by
// FromInt32.
func Source(s string) (int32, error) {
	if len(s) != 36 {
		return 0, fmt.Errorf("malformed identifier %q: expect 36 characters, have %d", s, len(s))
	}

	field, err := strconv.ParseUint(s[:8], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed identifier %q: %w", s, err)
	}

	seed := int32(uint32(field))
	if FromInt32(seed) != s {
		return 0, fmt.Errorf("identifier %q is not a seed derivation", s)
	}
	return seed, nil
}

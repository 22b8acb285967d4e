package types

import (
	"encoding/hex"

	"github.com/soyerSO/casper-node/hash"
)

// Hash32Length in bytes.
const Hash32Length = hash.Size

// Hash32 is a 32-byte digest, used for chainspec checksums.
type Hash32 [Hash32Length]byte

// BytesToHash32 copies buf into a Hash32.
func BytesToHash32(buf []byte) (h Hash32) {
	copy(h[:], buf)
	return h
}

// Bytes returns the digest as a byte slice.
func (h Hash32) Bytes() []byte {
	return h[:]
}

// Hex returns the 0x-prefixed hex representation.
func (h Hash32) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

// String implements fmt.Stringer with a shortened hex form.
func (h Hash32) String() string {
	return Shorten(h.Hex(), 12)
}

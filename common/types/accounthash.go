package types

import (
	"encoding/hex"
	"fmt"

	"github.com/soyerSO/casper-node/codec"
	"github.com/soyerSO/casper-node/hash"
)

// AccountHashSize in bytes.
const AccountHashSize = hash.Size

// AccountHash is the ledger-side account identity derived from a public key.
type AccountHash [AccountHashSize]byte

// BytesToAccountHash copies buf into an AccountHash.
func BytesToAccountHash(buf []byte) (h AccountHash) {
	copy(h[:], buf)
	return h
}

// Bytes returns the canonical encoding, the raw 32 bytes.
func (h AccountHash) Bytes() []byte {
	return h[:]
}

// SerializedLen returns the exact length of Bytes.
func (h AccountHash) SerializedLen() int {
	return AccountHashSize
}

// String returns the hex representation.
func (h AccountHash) String() string {
	return hex.EncodeToString(h[:])
}

// ShortString returns the first characters of the hex form, for logging.
func (h AccountHash) ShortString() string {
	return Shorten(h.String(), 10)
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (h AccountHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from the hex form.
func (h *AccountHash) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("parse account hash: %w", err)
	}
	if len(raw) != AccountHashSize {
		return fmt.Errorf("parse account hash: expected %d bytes, got %d", AccountHashSize, len(raw))
	}
	copy(h[:], raw)
	return nil
}

// DecodeAccountHash reads an AccountHash from the front of buf and returns
// the remainder.
func DecodeAccountHash(buf []byte) (AccountHash, []byte, error) {
	if len(buf) < AccountHashSize {
		return AccountHash{}, nil, codec.ErrEarlyEnd
	}
	return BytesToAccountHash(buf[:AccountHashSize]), buf[AccountHashSize:], nil
}

// Shorten truncates s to at most n characters, for log fields.
func Shorten(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// Package signing defines the public-key identity used by genesis accounts.
// Keys are opaque at this layer: they are carried, encoded and hashed, never
// used to verify signatures.
package signing

import (
	"encoding/hex"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/soyerSO/casper-node/codec"
	"github.com/soyerSO/casper-node/common/types"
	"github.com/soyerSO/casper-node/hash"
)

// Algorithm identifies the scheme of a public key. It doubles as the
// discriminant tag of the canonical encoding.
type Algorithm uint8

const (
	// AlgorithmEd25519 tags 32-byte ed25519 keys.
	AlgorithmEd25519 Algorithm = 1
	// AlgorithmSecp256k1 tags 33-byte compressed secp256k1 points.
	AlgorithmSecp256k1 Algorithm = 2
)

const (
	// Ed25519PublicKeySize in bytes.
	Ed25519PublicKeySize = ed25519.PublicKeySize
	// Secp256k1PublicKeySize in bytes, compressed form.
	Secp256k1PublicKeySize = 33

	maxPublicKeySize = Secp256k1PublicKeySize
)

// String returns the lowercase scheme name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmEd25519:
		return "ed25519"
	case AlgorithmSecp256k1:
		return "secp256k1"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

func (a Algorithm) keySize() int {
	switch a {
	case AlgorithmEd25519:
		return Ed25519PublicKeySize
	case AlgorithmSecp256k1:
		return Secp256k1PublicKeySize
	default:
		return 0
	}
}

// PublicKey is a cryptographic account identity, one of the supported
// schemes plus its raw key bytes. The zero value is no valid key.
// PublicKey is comparable; equality is structural.
type PublicKey struct {
	alg Algorithm
	raw [maxPublicKeySize]byte
}

// Ed25519PublicKey constructs an ed25519 identity from 32 raw key bytes.
func Ed25519PublicKey(key []byte) (PublicKey, error) {
	return newPublicKey(AlgorithmEd25519, key)
}

// Secp256k1PublicKey constructs a secp256k1 identity from a 33-byte
// compressed point.
func Secp256k1PublicKey(key []byte) (PublicKey, error) {
	return newPublicKey(AlgorithmSecp256k1, key)
}

func newPublicKey(alg Algorithm, key []byte) (PublicKey, error) {
	if len(key) != alg.keySize() {
		return PublicKey{}, fmt.Errorf("%s public key: expected %d bytes, got %d", alg, alg.keySize(), len(key))
	}
	p := PublicKey{alg: alg}
	copy(p.raw[:], key)
	return p, nil
}

// Algorithm returns the key scheme.
func (p PublicKey) Algorithm() Algorithm {
	return p.alg
}

// Key returns a copy of the raw key bytes, without the tag.
func (p PublicKey) Key() []byte {
	out := make([]byte, p.alg.keySize())
	copy(out, p.raw[:])
	return out
}

// Bytes returns the canonical encoding: the tag byte followed by the raw
// key bytes.
func (p PublicKey) Bytes() []byte {
	buf := make([]byte, 0, p.SerializedLen())
	buf = codec.AppendU8(buf, uint8(p.alg))
	return append(buf, p.raw[:p.alg.keySize()]...)
}

// SerializedLen returns the exact length of Bytes.
func (p PublicKey) SerializedLen() int {
	return codec.U8Size + p.alg.keySize()
}

// DecodePublicKey reads a public key from the front of buf and returns the
// remainder. An unrecognized tag yields codec.ErrUnknownTag.
func DecodePublicKey(buf []byte) (PublicKey, []byte, error) {
	tag, rest, err := codec.DecodeU8(buf)
	if err != nil {
		return PublicKey{}, nil, err
	}
	alg := Algorithm(tag)
	size := alg.keySize()
	if size == 0 {
		return PublicKey{}, nil, fmt.Errorf("%w: public key tag %d", codec.ErrUnknownTag, tag)
	}
	if len(rest) < size {
		return PublicKey{}, nil, codec.ErrEarlyEnd
	}
	p := PublicKey{alg: alg}
	copy(p.raw[:], rest[:size])
	return p, rest[size:], nil
}

// String returns the tag-prefixed hex representation, e.g. "01ab…".
func (p PublicKey) String() string {
	return hex.EncodeToString(p.Bytes())
}

// ShortString returns a representative substring for logging.
func (p PublicKey) ShortString() string {
	return types.Shorten(p.String(), 10)
}

// MarshalText implements encoding.TextMarshaler using the tag-prefixed hex
// form, the same representation the accounts file carries.
func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from the tag-prefixed
// hex form.
func (p *PublicKey) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("parse public key: %w", err)
	}
	decoded, remainder, err := DecodePublicKey(raw)
	if err != nil {
		return fmt.Errorf("parse public key: %w", err)
	}
	if len(remainder) != 0 {
		return fmt.Errorf("parse public key: %d trailing bytes", len(remainder))
	}
	*p = decoded
	return nil
}

// AccountHash derives the ledger-side account identity: the digest of the
// lowercase scheme name, a zero separator and the raw key bytes.
func (p PublicKey) AccountHash() types.AccountHash {
	sum := hash.Sum([]byte(p.alg.String()), []byte{0}, p.raw[:p.alg.keySize()])
	return types.AccountHash(sum)
}

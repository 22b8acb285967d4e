package types

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/soyerSO/casper-node/codec"
)

// MaxMotesBytes is the widest magnitude a Motes value carries on the wire.
const MaxMotesBytes = 32

// Motes is the ledger's atomic token amount. It is an immutable non-negative
// value; arithmetic returns new values.
//
// The canonical encoding is a u8 byte length followed by the minimal
// little-endian magnitude, so every amount has exactly one byte
// representation. A zero amount encodes as the single length byte 0.
type Motes struct {
	value uint256.Int
}

// NewMotes returns the amount holding a copy of value.
func NewMotes(value *uint256.Int) Motes {
	return Motes{value: *value}
}

// MotesFromUint64 returns the amount equal to value.
func MotesFromUint64(value uint64) Motes {
	var m Motes
	m.value.SetUint64(value)
	return m
}

// MotesFromDecimal parses a base-10 amount.
func MotesFromDecimal(s string) (Motes, error) {
	value, err := uint256.FromDecimal(s)
	if err != nil {
		return Motes{}, fmt.Errorf("parse motes %q: %w", s, err)
	}
	return Motes{value: *value}, nil
}

// Value returns a copy of the underlying integer.
func (m Motes) Value() *uint256.Int {
	value := m.value
	return &value
}

// IsZero reports whether the amount is zero.
func (m Motes) IsZero() bool {
	return m.value.IsZero()
}

// Cmp compares two amounts, returning -1, 0 or 1.
func (m Motes) Cmp(other Motes) int {
	return m.value.Cmp(&other.value)
}

// Add returns the sum of two amounts, or an error on 256-bit overflow.
func (m Motes) Add(other Motes) (Motes, error) {
	var sum Motes
	if _, overflow := sum.value.AddOverflow(&m.value, &other.value); overflow {
		return Motes{}, fmt.Errorf("motes overflow: %s + %s", m, other)
	}
	return sum, nil
}

// String returns the decimal form.
func (m Motes) String() string {
	return m.value.Dec()
}

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (m Motes) MarshalText() ([]byte, error) {
	return []byte(m.value.Dec()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from the decimal form.
func (m *Motes) UnmarshalText(text []byte) error {
	value, err := uint256.FromDecimal(string(text))
	if err != nil {
		return fmt.Errorf("parse motes %q: %w", text, err)
	}
	m.value = *value
	return nil
}

// Bytes returns the canonical encoding.
func (m Motes) Bytes() []byte {
	be := m.value.Bytes()
	buf := make([]byte, 0, codec.U8Size+len(be))
	buf = codec.AppendU8(buf, uint8(len(be)))
	for i := len(be) - 1; i >= 0; i-- {
		buf = append(buf, be[i])
	}
	return buf
}

// SerializedLen returns the exact length of Bytes.
func (m Motes) SerializedLen() int {
	return codec.U8Size + m.value.ByteLen()
}

// DecodeMotes reads an amount from the front of buf and returns the
// remainder. Non-minimal magnitudes (trailing zero byte) and lengths above
// MaxMotesBytes are rejected as malformed.
func DecodeMotes(buf []byte) (Motes, []byte, error) {
	n, rest, err := codec.DecodeU8(buf)
	if err != nil {
		return Motes{}, nil, err
	}
	if int(n) > MaxMotesBytes {
		return Motes{}, nil, fmt.Errorf("%w: motes length %d", codec.ErrFormatting, n)
	}
	if len(rest) < int(n) {
		return Motes{}, nil, codec.ErrEarlyEnd
	}
	if n > 0 && rest[n-1] == 0 {
		return Motes{}, nil, fmt.Errorf("%w: non-minimal motes", codec.ErrFormatting)
	}
	be := make([]byte, n)
	for i := range be {
		be[i] = rest[len(be)-1-i]
	}
	var m Motes
	m.value.SetBytes(be)
	return m, rest[n:], nil
}

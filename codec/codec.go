// Package codec implements the canonical byte encoding shared by all
// chainspec entities. The encoding is deterministic and order sensitive:
// scalars are fixed-width little-endian, byte strings and sequences carry a
// fixed-width u32 count prefix, and composites concatenate their fields in
// declared order. Every decoder consumes exactly the bytes of its own value
// and returns the unconsumed remainder, so field decoders chain by threading
// the remainder forward.
package codec

import (
	"encoding/binary"
	"errors"
)

const (
	// U8Size is the encoded width of a u8 in bytes.
	U8Size = 1
	// U32Size is the encoded width of a u32 in bytes.
	U32Size = 4
	// U64Size is the encoded width of a u64 in bytes.
	U64Size = 8
	// LengthSize is the width of the count prefix carried by byte strings
	// and sequences.
	LengthSize = U32Size
)

var (
	// ErrEarlyEnd is returned when the input ends before the value is
	// fully decoded.
	ErrEarlyEnd = errors.New("codec: unexpected end of input")
	// ErrFormatting is returned when the input bytes do not form a valid
	// encoding of the expected type.
	ErrFormatting = errors.New("codec: malformed input")
	// ErrUnknownTag is returned when variant data carries an unrecognized
	// discriminant tag.
	ErrUnknownTag = errors.New("codec: unknown tag")
)

// Encodable is a value with a canonical byte representation.
//
// Bytes is total: it never fails for a value that satisfies its type's
// invariants. SerializedLen reports the exact length of Bytes, allowing
// callers to pre-allocate buffers of the right size.
type Encodable interface {
	Bytes() []byte
	SerializedLen() int
}

// DecodeFunc decodes a single value from the front of buf and returns the
// value together with the unconsumed remainder.
type DecodeFunc[T any] func(buf []byte) (T, []byte, error)

// a hostile count prefix must not force a large allocation before any
// element actually decodes
const maxPrealloc = 4096

// AppendU8 appends the fixed-width encoding of v to buf.
func AppendU8(buf []byte, v uint8) []byte {
	return append(buf, v)
}

// DecodeU8 reads a u8 from the front of buf.
func DecodeU8(buf []byte) (uint8, []byte, error) {
	if len(buf) < U8Size {
		return 0, nil, ErrEarlyEnd
	}
	return buf[0], buf[U8Size:], nil
}

// AppendU32 appends the little-endian encoding of v to buf.
func AppendU32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}

// DecodeU32 reads a little-endian u32 from the front of buf.
func DecodeU32(buf []byte) (uint32, []byte, error) {
	if len(buf) < U32Size {
		return 0, nil, ErrEarlyEnd
	}
	return binary.LittleEndian.Uint32(buf), buf[U32Size:], nil
}

// AppendU64 appends the little-endian encoding of v to buf.
func AppendU64(buf []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(buf, v)
}

// DecodeU64 reads a little-endian u64 from the front of buf.
func DecodeU64(buf []byte) (uint64, []byte, error) {
	if len(buf) < U64Size {
		return 0, nil, ErrEarlyEnd
	}
	return binary.LittleEndian.Uint64(buf), buf[U64Size:], nil
}

// AppendBytes appends a length-prefixed byte string to buf.
func AppendBytes(buf, raw []byte) []byte {
	buf = AppendU32(buf, uint32(len(raw)))
	return append(buf, raw...)
}

// BytesLen returns the serialized length of a length-prefixed byte string.
func BytesLen(raw []byte) int {
	return LengthSize + len(raw)
}

// DecodeBytes reads a length-prefixed byte string from the front of buf.
// The returned slice is a copy and does not alias buf.
func DecodeBytes(buf []byte) ([]byte, []byte, error) {
	n, rest, err := DecodeU32(buf)
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(rest)) < uint64(n) {
		return nil, nil, ErrEarlyEnd
	}
	if n == 0 {
		return nil, rest, nil
	}
	out := make([]byte, n)
	copy(out, rest)
	return out, rest[n:], nil
}

// AppendSlice appends a count-prefixed sequence to buf, encoding the
// elements in order.
func AppendSlice[T Encodable](buf []byte, items []T) []byte {
	buf = AppendU32(buf, uint32(len(items)))
	for i := range items {
		buf = append(buf, items[i].Bytes()...)
	}
	return buf
}

// EncodeSlice encodes a count-prefixed sequence into a fresh buffer of
// exactly the right size.
func EncodeSlice[T Encodable](items []T) []byte {
	return AppendSlice(make([]byte, 0, SliceLen(items)), items)
}

// SliceLen returns the serialized length of a count-prefixed sequence.
func SliceLen[T Encodable](items []T) int {
	n := LengthSize
	for i := range items {
		n += items[i].SerializedLen()
	}
	return n
}

// DecodeSlice reads a count-prefixed sequence from the front of buf,
// decoding elements in order with decode and threading the remainder
// through each step. An empty sequence decodes to a nil slice.
func DecodeSlice[T any](buf []byte, decode DecodeFunc[T]) ([]T, []byte, error) {
	count, rest, err := DecodeU32(buf)
	if err != nil {
		return nil, nil, err
	}
	if count == 0 {
		return nil, rest, nil
	}
	items := make([]T, 0, min(int(count), maxPrealloc))
	for i := uint32(0); i < count; i++ {
		var item T
		item, rest, err = decode(rest)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	return items, rest, nil
}

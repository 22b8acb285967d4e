package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soyerSO/casper-node/codec"
)

// entry is a minimal composite exercising the composition rules: fields
// encode in declared order, decode threads the remainder.
type entry struct {
	ID    uint32
	Value uint64
}

func (e entry) Bytes() []byte {
	buf := make([]byte, 0, e.SerializedLen())
	buf = codec.AppendU32(buf, e.ID)
	return codec.AppendU64(buf, e.Value)
}

func (e entry) SerializedLen() int {
	return codec.U32Size + codec.U64Size
}

func decodeEntry(buf []byte) (entry, []byte, error) {
	id, rest, err := codec.DecodeU32(buf)
	if err != nil {
		return entry{}, nil, err
	}
	value, rest, err := codec.DecodeU64(rest)
	if err != nil {
		return entry{}, nil, err
	}
	return entry{ID: id, Value: value}, rest, nil
}

func TestScalarRoundTrip(t *testing.T) {
	t.Run("u8", func(t *testing.T) {
		for _, v := range []uint8{0, 1, 0x7f, 0xff} {
			buf := codec.AppendU8(nil, v)
			require.Len(t, buf, codec.U8Size)
			got, rest, err := codec.DecodeU8(buf)
			require.NoError(t, err)
			require.Equal(t, v, got)
			require.Empty(t, rest)
		}
	})
	t.Run("u32", func(t *testing.T) {
		for _, v := range []uint32{0, 1, 0xdeadbeef, 0xffffffff} {
			buf := codec.AppendU32(nil, v)
			require.Len(t, buf, codec.U32Size)
			got, rest, err := codec.DecodeU32(buf)
			require.NoError(t, err)
			require.Equal(t, v, got)
			require.Empty(t, rest)
		}
	})
	t.Run("u64", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 1 << 40, 0xffffffffffffffff} {
			buf := codec.AppendU64(nil, v)
			require.Len(t, buf, codec.U64Size)
			got, rest, err := codec.DecodeU64(buf)
			require.NoError(t, err)
			require.Equal(t, v, got)
			require.Empty(t, rest)
		}
	})
}

func TestScalarLittleEndian(t *testing.T) {
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, codec.AppendU32(nil, 0xdeadbeef))
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, codec.AppendU64(nil, 1))
}

func TestScalarTruncated(t *testing.T) {
	_, _, err := codec.DecodeU8(nil)
	require.ErrorIs(t, err, codec.ErrEarlyEnd)
	_, _, err = codec.DecodeU32([]byte{1, 2, 3})
	require.ErrorIs(t, err, codec.ErrEarlyEnd)
	_, _, err = codec.DecodeU64([]byte{1, 2, 3, 4, 5, 6, 7})
	require.ErrorIs(t, err, codec.ErrEarlyEnd)
}

func TestDecodeLeavesRemainder(t *testing.T) {
	buf := codec.AppendU32(nil, 7)
	buf = append(buf, 0xaa, 0xbb)
	got, rest, err := codec.DecodeU32(buf)
	require.NoError(t, err)
	require.EqualValues(t, 7, got)
	require.Equal(t, []byte{0xaa, 0xbb}, rest)
}

func TestBytesRoundTrip(t *testing.T) {
	for _, raw := range [][]byte{nil, {0x01}, {0xde, 0xad, 0xbe, 0xef}} {
		buf := codec.AppendBytes(nil, raw)
		require.Len(t, buf, codec.BytesLen(raw))
		got, rest, err := codec.DecodeBytes(buf)
		require.NoError(t, err)
		require.Equal(t, len(raw), len(got))
		if len(raw) > 0 {
			require.Equal(t, raw, got)
		}
		require.Empty(t, rest)
	}
}

func TestBytesTruncated(t *testing.T) {
	buf := codec.AppendBytes(nil, []byte{1, 2, 3, 4})
	for cut := range buf {
		_, _, err := codec.DecodeBytes(buf[:cut])
		require.ErrorIs(t, err, codec.ErrEarlyEnd, "cut=%d", cut)
	}
}

func TestBytesDoesNotAliasInput(t *testing.T) {
	buf := codec.AppendBytes(nil, []byte{1, 2, 3})
	got, _, err := codec.DecodeBytes(buf)
	require.NoError(t, err)
	buf[codec.LengthSize] = 0xff
	require.Equal(t, []byte{1, 2, 3}, got)
}

func TestSliceRoundTrip(t *testing.T) {
	items := []entry{{ID: 1, Value: 10}, {ID: 2, Value: 20}, {ID: 3, Value: 30}}
	buf := codec.EncodeSlice(items)
	require.Len(t, buf, codec.SliceLen(items))

	got, rest, err := codec.DecodeSlice(buf, decodeEntry)
	require.NoError(t, err)
	require.Equal(t, items, got)
	require.Empty(t, rest)
}

func TestSliceEmpty(t *testing.T) {
	buf := codec.EncodeSlice[entry](nil)
	require.Len(t, buf, codec.LengthSize)

	got, rest, err := codec.DecodeSlice(buf, decodeEntry)
	require.NoError(t, err)
	require.Nil(t, got)
	require.Empty(t, rest)
}

func TestSliceOrderPreserved(t *testing.T) {
	items := []entry{{ID: 3}, {ID: 1}, {ID: 2}}
	got, _, err := codec.DecodeSlice(codec.EncodeSlice(items), decodeEntry)
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestSliceTruncated(t *testing.T) {
	items := []entry{{ID: 1, Value: 10}, {ID: 2, Value: 20}}
	buf := codec.EncodeSlice(items)
	for cut := 0; cut < len(buf); cut++ {
		_, _, err := codec.DecodeSlice(buf[:cut], decodeEntry)
		require.ErrorIs(t, err, codec.ErrEarlyEnd, "cut=%d", cut)
	}
}

func TestSliceHostileCountPrefix(t *testing.T) {
	// count says 4 billion elements, input carries none
	buf := codec.AppendU32(nil, 0xffffffff)
	_, _, err := codec.DecodeSlice(buf, decodeEntry)
	require.ErrorIs(t, err, codec.ErrEarlyEnd)
}

package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soyerSO/casper-node/codec"
	"github.com/soyerSO/casper-node/common/types"
)

func TestAccountHashRoundTrip(t *testing.T) {
	var h types.AccountHash
	for i := range h {
		h[i] = byte(i)
	}
	buf := h.Bytes()
	require.Len(t, buf, h.SerializedLen())
	got, rest, err := types.DecodeAccountHash(buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Empty(t, rest)

	_, _, err = types.DecodeAccountHash(buf[:types.AccountHashSize-1])
	require.ErrorIs(t, err, codec.ErrEarlyEnd)
}

func TestAccountHashText(t *testing.T) {
	h := types.BytesToAccountHash([]byte{0xde, 0xad, 0xbe, 0xef})
	text, err := h.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(text), "deadbeef"))

	var got types.AccountHash
	require.NoError(t, got.UnmarshalText(text))
	require.Equal(t, h, got)

	require.Error(t, got.UnmarshalText([]byte("zz")))
	require.Error(t, got.UnmarshalText([]byte("abcd")))
}

func TestHash32Hex(t *testing.T) {
	h := types.BytesToHash32([]byte{0xab})
	require.True(t, strings.HasPrefix(h.Hex(), "0xab00"))
	require.Len(t, h.Bytes(), types.Hash32Length)
	require.Equal(t, types.Shorten(h.Hex(), 12), h.String())
}

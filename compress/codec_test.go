package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func allCodecs() map[string]Codec {
	return map[string]Codec{
		"noop": NewNoOpCodec(),
		"s2":   NewS2Codec(),
		"zstd": NewZstdCodec(),
		"lz4":  NewLZ4Codec(),
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 200)

	for name, codec := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for name, codec := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	for alg, want := range map[Algorithm]Codec{
		AlgorithmNone: NewNoOpCodec(),
		AlgorithmS2:   NewS2Codec(),
		AlgorithmZstd: NewZstdCodec(),
		AlgorithmLZ4:  NewLZ4Codec(),
	} {
		codec, err := CreateCodec(alg)
		require.NoError(t, err)
		require.IsType(t, want, codec)
	}

	_, err := CreateCodec(Algorithm(99))
	require.Error(t, err)
}

func TestWireCodec_IsS2(t *testing.T) {
	require.IsType(t, S2Codec{}, WireCodec)
}

func TestS2Codec_DetectsCorruption(t *testing.T) {
	codec := NewS2Codec()
	compressed, err := codec.Compress([]byte("some payload data"))
	require.NoError(t, err)

	corrupted := append([]byte(nil), compressed...)
	corrupted[0] ^= 0xFF // corrupt the block's leading decoded-length varint

	_, err = codec.Decompress(corrupted)
	require.Error(t, err)
}

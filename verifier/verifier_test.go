package verifier

import (
	"encoding/binary"
	"testing"

	"github.com/pcmpverify/pcmp/compress"
	"github.com/pcmpverify/pcmp/container"
	"github.com/pcmpverify/pcmp/merkle"
	"github.com/stretchr/testify/require"
)

// encodeULEB128 is a minimal test-only encoder, the mirror image of
// varint.DecodeULEB128, used only to build fixture permutation payloads.
func encodeULEB128(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			break
		}
	}
	return out
}

func encodeZigZag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// fixture builds a well-formed PCMP byte stream from an explicit residual
// vector and permutation vector, letting the caller corrupt specific
// regions afterward for negative tests.
type fixture struct {
	residuals []uint32
	perm      []uint64 // perm[i] is the absolute permutation value at position i
	order     uint8

	overrideStoredRoot *[32]byte
	overrideMeta       func(meta []byte)
	overrideFooter     func(footer []byte)
}

func (fx fixture) build(t *testing.T) []byte {
	t.Helper()

	n := uint64(len(fx.residuals))

	residualBytes := make([]byte, 4*n)
	for i, r := range fx.residuals {
		binary.LittleEndian.PutUint32(residualBytes[i*4:i*4+4], r)
	}

	var permBytes []byte
	var prev uint64
	for i, p := range fx.perm {
		var delta int64
		if i == 0 {
			delta = int64(p)
		} else {
			delta = int64(p) - int64(prev)
		}
		permBytes = append(permBytes, encodeULEB128(encodeZigZag(delta))...)
		prev = p
	}

	compressedResiduals, err := compress.WireCodec.Compress(residualBytes)
	require.NoError(t, err)
	compressedPerm, err := compress.WireCodec.Compress(permBytes)
	require.NoError(t, err)

	var out []byte

	header := make([]byte, container.HeaderSize)
	copy(header[0:4], "PCMP")
	header[4] = container.Version
	header[5] = fx.order
	binary.LittleEndian.PutUint64(header[8:16], n)
	out = append(out, header...)

	cBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(cBuf, uint64(len(compressedResiduals)))
	out = append(out, cBuf...)
	out = append(out, compressedResiduals...)

	pcBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(pcBuf, uint64(len(compressedPerm)))
	out = append(out, pcBuf...)
	out = append(out, compressedPerm...)

	metadata := make([]byte, container.MetadataSize)
	binary.LittleEndian.PutUint64(metadata[0:8], container.ExpectedProofType)
	binary.LittleEndian.PutUint64(metadata[8:16], n)
	binary.LittleEndian.PutUint64(metadata[16:24], container.ExpectedChunkBytes)
	binary.LittleEndian.PutUint64(metadata[24:32], merkle.NumChunks(4*n))
	binary.LittleEndian.PutUint32(metadata[32:36], uint32(fx.order))
	if fx.overrideMeta != nil {
		fx.overrideMeta(metadata)
	}
	out = append(out, metadata...)

	var root [32]byte
	if fx.overrideStoredRoot != nil {
		root = *fx.overrideStoredRoot
	} else {
		root = merkle.Root(residualBytes)
	}
	out = append(out, root[:]...)

	footer := make([]byte, container.FooterSize)
	binary.LittleEndian.PutUint32(footer[0:4], container.Magic)
	binary.LittleEndian.PutUint32(footer[4:8], uint32(container.Version))
	if fx.overrideFooter != nil {
		fx.overrideFooter(footer)
	}
	out = append(out, footer...)

	return out
}

func TestVerify_Scenario1_EmptyValidFile(t *testing.T) {
	fx := fixture{residuals: nil, perm: nil, order: 1}
	data := fx.build(t)

	info := VerifyBytes("empty.pcmp", data)
	require.True(t, info.Valid, "error=%s", info.Error)
	require.EqualValues(t, 0, info.N)
	require.EqualValues(t, 0, info.NumChunks)
}

func TestVerify_Scenario2_TwoElementOrderedFloats(t *testing.T) {
	fx := fixture{
		residuals: []uint32{0xBF800000, 0x00800000},
		perm:      []uint64{0, 1},
		order:     1,
	}
	data := fx.build(t)

	info := VerifyBytes("ok.pcmp", data)
	require.True(t, info.Valid, "error=%s", info.Error)
	require.True(t, info.OrderingOK)
	require.True(t, info.PermutationOK)
	require.True(t, info.CVDOk)
	require.True(t, info.MerkleMatch)
	require.True(t, info.MetaOk)
}

func TestVerify_Scenario3_OrderingViolation(t *testing.T) {
	fx := fixture{
		residuals: []uint32{0xBF800000, 0xFF800000},
		perm:      []uint64{0, 1},
		order:     1,
	}
	data := fx.build(t)

	info := VerifyBytes("ordering.pcmp", data)
	require.False(t, info.OrderingOK)
	require.Equal(t, 1, info.OrderingViolationIndex)
	require.False(t, info.Valid)
}

func TestVerify_Scenario4_NonCanonicalNaN(t *testing.T) {
	// A single-element file whose ordered key unmaps to 0x7F800001 (a
	// signaling NaN): map(0x7F800001) = 0x7F800001 ^ 0x80000000 = 0xFF800001.
	key := uint32(0x7F800001) ^ 0x80000000
	fx := fixture{
		residuals: []uint32{key},
		perm:      []uint64{0},
		order:     1,
	}
	data := fx.build(t)

	info := VerifyBytes("nan.pcmp", data)
	require.False(t, info.CVDOk)
	require.Equal(t, 0, info.CVDViolationIndex)
	require.Equal(t, "non-canonical NaN", info.CVDViolationReason)
	require.False(t, info.Valid)
}

func TestVerify_Scenario5_MerkleMismatch(t *testing.T) {
	fx := fixture{
		residuals: []uint32{0xBF800000, 0x00800000},
		perm:      []uint64{0, 1},
		order:     1,
	}
	data := fx.build(t)

	// Flip one byte inside the stored root region.
	rootOffset := len(data) - container.FooterSize - container.RootSize
	data[rootOffset] ^= 0xFF

	info := VerifyBytes("merklemismatch.pcmp", data)
	require.False(t, info.MerkleMatch)
	require.False(t, info.Valid)
	require.True(t, info.OrderingOK)
	require.True(t, info.PermutationOK)
	require.True(t, info.CVDOk)
	require.True(t, info.MetaOk)
}

func TestVerify_FooterVersionMismatchIsMetaOnly(t *testing.T) {
	fx := fixture{
		residuals: []uint32{0xBF800000, 0x00800000},
		perm:      []uint64{0, 1},
		order:     1,
		overrideFooter: func(footer []byte) {
			binary.LittleEndian.PutUint32(footer[4:8], 2)
		},
	}
	data := fx.build(t)

	info := VerifyBytes("badfooterversion.pcmp", data)
	require.Empty(t, info.Error)
	require.False(t, info.MetaOk)
	require.False(t, info.Valid)
	require.True(t, info.OrderingOK)
	require.True(t, info.PermutationOK)
	require.True(t, info.CVDOk)
	require.True(t, info.MerkleMatch)
	require.EqualValues(t, 2, info.N)
	require.Equal(t, uint8(1), info.Order)
}

func TestVerify_Scenario6_PermutationDuplicate(t *testing.T) {
	fx := fixture{
		residuals: []uint32{0xBF800000, 0x00800000},
		perm:      []uint64{0, 0},
		order:     1,
	}
	data := fx.build(t)

	info := VerifyBytes("dup.pcmp", data)
	require.False(t, info.PermutationOK)
	require.False(t, info.Valid)
}

func TestVerify_BoundaryOrder2SingleElement(t *testing.T) {
	fx := fixture{
		residuals: []uint32{0xBF800000},
		perm:      []uint64{0},
		order:     2,
	}
	data := fx.build(t)

	info := VerifyBytes("order2-single.pcmp", data)
	require.True(t, info.Valid, "error=%s", info.Error)
}

func TestVerify_BoundaryNumChunksExactMultiple(t *testing.T) {
	// 4*n must equal exactly one ChunkBytes boundary: n = ChunkBytes/4.
	n := merkle.ChunkBytes / 4
	residuals := make([]uint32, n)
	perm := make([]uint64, n)
	// residuals[0] is the key of 1.0 and every later residual is 0, so every
	// order-1 key equals that key: non-decreasing, no mod-2³² wraparound, and
	// each key unmaps to the canonical pattern 0x3F800000.
	residuals[0] = 0xBF800000
	for i := range perm {
		perm[i] = uint64(i)
	}

	fx := fixture{residuals: residuals, perm: perm, order: 1}
	data := fx.build(t)

	info := VerifyBytes("exact-chunk.pcmp", data)
	require.True(t, info.Valid, "error=%s", info.Error)
	require.EqualValues(t, 1, info.NumChunks)
}

func TestVerify_InvalidPredictorOrder(t *testing.T) {
	fx := fixture{
		residuals: []uint32{1, 2},
		perm:      []uint64{0, 1},
		order:     3,
	}
	data := fx.build(t)

	info := VerifyBytes("badorder.pcmp", data)
	require.False(t, info.Valid)
	require.NotEmpty(t, info.Error)
}

func TestVerify_PartialHeaderSurvivesParseFailure(t *testing.T) {
	fx := fixture{
		residuals: []uint32{0xBF800000, 0x00800000},
		perm:      []uint64{0, 1},
		order:     2,
	}
	data := fx.build(t)

	// Truncate right after the residual block's length prefix so Parse fails
	// on the residual payload, after the header has been read.
	truncateAt := container.HeaderSize + 8 + 0 // keep header + residual length prefix only
	info := VerifyBytes("truncated.pcmp", data[:truncateAt])

	require.NotEmpty(t, info.Error)
	require.False(t, info.Valid)
	require.Equal(t, uint8(2), info.Order)
	require.EqualValues(t, 2, info.N)
	require.Equal(t, "PCMP", info.Magic)
}

func TestVerify_FileNotFound(t *testing.T) {
	info := VerifyFile("/nonexistent/path/to/a/file.pcmp")
	require.False(t, info.Valid)
	require.NotEmpty(t, info.Error)
}

func TestVerify_Idempotent(t *testing.T) {
	fx := fixture{
		residuals: []uint32{0xBF800000, 0x00800000},
		perm:      []uint64{0, 1},
		order:     1,
	}
	data := fx.build(t)

	first := VerifyBytes("idempotent.pcmp", data)
	second := VerifyBytes("idempotent.pcmp", data)
	require.Equal(t, first, second)
}

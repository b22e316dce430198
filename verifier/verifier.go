package verifier

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pcmpverify/pcmp/compress"
	"github.com/pcmpverify/pcmp/container"
	"github.com/pcmpverify/pcmp/endian"
	"github.com/pcmpverify/pcmp/errs"
	"github.com/pcmpverify/pcmp/merkle"
	"github.com/pcmpverify/pcmp/orderedfloat"
	"github.com/pcmpverify/pcmp/predictor"
	"github.com/pcmpverify/pcmp/varint"
)

var wireEndian = endian.GetLittleEndianEngine()

// VerifyFile opens path read-only, reads its entire contents, closes it,
// and verifies it. The file is never held open during computation (§5):
// read and close happen before any check runs.
func VerifyFile(path string) Info {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{
			File:                   path,
			Error:                  fmt.Sprintf("%s: %v", errs.ErrIO, err),
			OrderingViolationIndex: noViolation,
			CVDViolationIndex:      noViolation,
		}
	}

	return VerifyBytes(path, data)
}

// VerifyBytes runs the full verification sequence of §4.7 over an
// already-read byte sequence. It is a pure function of data; VerifyFile is
// the only caller that touches the filesystem.
func VerifyBytes(path string, data []byte) Info {
	info := Info{
		File:                   path,
		OrderingViolationIndex: noViolation,
		CVDViolationIndex:      noViolation,
	}

	// f is populated up to the point Parse stopped even on error (§4.8): a
	// file that fails mid-parse still reports whatever header/metadata
	// fields were already read, matching the reference verifier's behavior
	// of recording magic/version/order/n before any validity check runs.
	f, parseErr := container.Parse(data)

	info.Magic = f.Header.Magic
	info.Version = f.Header.Version
	info.Order = f.Header.Order
	info.N = f.Header.N

	info.ProofType = f.Metadata.ProofType
	info.OrderingMode = f.Metadata.OrderingMode
	info.ChunkBytes = f.Metadata.ChunkBytes
	info.TotalN = f.Metadata.TotalN
	info.NumChunks = f.Metadata.NumChunks

	info.StoredMerkleRoot = hex.EncodeToString(f.StoredRoot[:])
	info.FooterMagic = hex.EncodeToString(encodeUint32LE(f.Footer.Magic))
	info.FooterVersion = f.Footer.Version

	if parseErr != nil {
		info.Error = parseErr.Error()
		return info
	}

	n := f.Header.N

	residualBytes, residualErr := compress.DecompressBounded(
		compress.WireCodec, f.CompressedResiduals, int(container.MaxResidualUpperBound(n)))
	if residualErr != nil {
		recordError(&info, residualErr)
	}

	var k []uint32
	if residualErr == nil {
		residuals, convErr := decodeResidualsLE(residualBytes, n)
		if convErr != nil {
			recordError(&info, convErr)
		} else {
			order := predictor.Order(f.Header.Order)
			keys, predErr := predictor.Inverse(order, residuals)
			if predErr != nil {
				recordError(&info, predErr)
			} else {
				k = keys
			}
		}
	}

	info.OrderingOK, info.OrderingViolationIndex = checkOrdering(k)

	permBytes, permErr := compress.DecompressBounded(
		compress.WireCodec, f.CompressedPermutation, int(container.MaxPermutationUpperBound(n)))
	if permErr != nil {
		recordError(&info, permErr)
	}

	if permErr == nil {
		perm, decodeErr := decodePermutation(permBytes, n)
		if decodeErr != nil {
			recordError(&info, decodeErr)
			info.PermutationOK = false
		} else {
			info.PermutationOK = checkPermutation(perm, n)
		}
	}

	if k != nil {
		floats := make([]uint32, len(k))
		for i, key := range k {
			floats[i] = orderedfloat.Unmap(key)
		}
		info.CVDOk, info.CVDViolationIndex, info.CVDViolationReason = checkCanonical(floats)
	}

	if residualErr == nil {
		computed := merkle.Root(residualBytes)
		info.ComputedMerkleRoot = hex.EncodeToString(computed[:])
		info.MerkleMatch = computed == f.StoredRoot
	}

	// Footer magic/version correctness is a metadata invariant, not a
	// structural one (§3 invariant 5, §4.7 step 6): the container parser
	// never rejects a bad footer outright, it folds into meta_ok here
	// alongside the rest of the metadata block's checks.
	expectedNumChunks := merkle.NumChunks(4 * n)
	info.MetaOk = info.ProofType == container.ExpectedProofType &&
		info.TotalN == n &&
		info.OrderingMode == uint32(f.Header.Order) &&
		info.ChunkBytes == container.ExpectedChunkBytes &&
		info.NumChunks == expectedNumChunks &&
		f.Footer.Magic == container.Magic &&
		f.Footer.Version == uint32(container.Version)

	info.Valid = info.OrderingOK && info.MerkleMatch && info.PermutationOK &&
		info.CVDOk && info.MetaOk && info.Error == ""

	return info
}

// recordError records the first error encountered on info.Error without
// overwriting an earlier one; later failures are still reflected in their
// own boolean fields, matching §4.7's "accumulate all diagnostics"
// requirement.
func recordError(info *Info, err error) {
	if info.Error == "" {
		info.Error = err.Error()
	}
}

func encodeUint32LE(v uint32) []byte {
	return wireEndian.AppendUint32(nil, v)
}

func decodeResidualsLE(data []byte, n uint64) ([]uint32, error) {
	if uint64(len(data)) != 4*n {
		return nil, errs.ErrDecompressedSizeMismatch
	}

	out := make([]uint32, n)
	for i := range out {
		out[i] = wireEndian.Uint32(data[i*4 : i*4+4])
	}

	return out, nil
}

func checkOrdering(k []uint32) (bool, int) {
	if k == nil {
		return false, noViolation
	}

	for i := 1; i < len(k); i++ {
		if k[i-1] > k[i] {
			return false, i
		}
	}

	return true, noViolation
}

func checkCanonical(floats []uint32) (bool, int, string) {
	for i, f := range floats {
		if ok, reason := orderedfloat.IsCanonical(f); !ok {
			return false, i, reason
		}
	}

	return true, noViolation, ""
}

// decodePermutation delta-decodes n ULEB128 codes from the already
// decompressed permutation payload data, reconstructing the permutation with a 64-bit running accumulator
// that wraps modulo 2⁶⁴ (Go's native uint64 addition already does this).
func decodePermutation(data []byte, n uint64) ([]uint64, error) {
	perm := make([]uint64, n)

	var acc uint64
	off := 0

	for i := uint64(0); i < n; i++ {
		v, consumed, err := varint.DecodeULEB128(data, off)
		if err != nil {
			return nil, err
		}
		off += consumed

		delta := varint.DecodeZigZag(v)
		acc += uint64(delta)
		perm[i] = acc
	}

	return perm, nil
}

// checkPermutation reports whether perm is a permutation of {0, ..., n-1}:
// every value in range and no duplicates.
func checkPermutation(perm []uint64, n uint64) bool {
	if uint64(len(perm)) != n {
		return false
	}

	seen := make(map[uint64]struct{}, n)
	for _, p := range perm {
		if p >= n {
			return false
		}
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}
	}

	return len(seen) == int(n)
}

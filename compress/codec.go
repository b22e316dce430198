// Package compress implements the block-decompression boundary PCMP
// verification consumes (§4.2 of the format).
//
// The verifier only ever calls DecompressBounded with a declared
// uncompressed upper bound, never Compress (PCMP files are produced
// elsewhere), but the package keeps the symmetric Compressor/Codec shape so
// fixtures for tests can be built with the same codecs the verifier decodes
// with.
package compress

import "fmt"

// Compressor compresses a byte slice.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller.
//   - Input slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice produced by the matching
// Compressor.
//
// Error conditions:
//   - Returns an error if the input is corrupted or uses an incompatible
//     format.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)

	// DecompressBounded decompresses data while enforcing upperBound as an
	// input to the decompression itself, not as an after-the-fact check:
	// no more than upperBound bytes of decompressed output (upperBound+1 for
	// the Zstd codec, whose extra byte detects the overflow) are ever
	// materialized, regardless of what an attacker-controlled length field
	// embedded in data claims (§4.2's resource caps exist precisely so a
	// hostile payload can't force an oversized allocation before it is
	// rejected). Returns errs.ErrDecompressedSizeExceeded once the bound
	// would be exceeded.
	DecompressBounded(data []byte, upperBound int) ([]byte, error)
}

// Codec combines both directions of a single algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies a wire-compatible compression algorithm.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = iota
	AlgorithmS2
	AlgorithmZstd
	AlgorithmLZ4
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "None"
	case AlgorithmS2:
		return "S2"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// WireCodec is the single streaming block compressor PCMP's on-wire format
// fixes for both the residual and permutation blocks (§4.2): "the file
// format fixes a single well-known streaming codec." S2 is the codec this
// repository wires to that boundary.
var WireCodec Codec = NewS2Codec()

// CreateCodec is a factory returning a Codec for the given algorithm. It
// exists so tests and fixture builders can exercise every implementation of
// the Decompressor boundary without each caller importing concrete types.
func CreateCodec(alg Algorithm) (Codec, error) {
	switch alg {
	case AlgorithmNone:
		return NewNoOpCodec(), nil
	case AlgorithmS2:
		return NewS2Codec(), nil
	case AlgorithmZstd:
		return NewZstdCodec(), nil
	case AlgorithmLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("compress: invalid algorithm %d", alg)
	}
}

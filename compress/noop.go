package compress

import "github.com/pcmpverify/pcmp/errs"

// NoOpCodec bypasses compression entirely. It exists for building
// uncompressed fixtures in tests and for baseline comparisons; it is never
// the codec a well-formed PCMP file actually uses.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a no-operation codec that copies data through
// unchanged.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data unchanged.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressBounded returns data unchanged, rejecting it before returning
// if it already exceeds upperBound; there is no decompression step whose
// output size could otherwise run ahead of the check.
func (c NoOpCodec) DecompressBounded(data []byte, upperBound int) ([]byte, error) {
	if len(data) > upperBound {
		return nil, errs.ErrDecompressedSizeExceeded
	}
	return data, nil
}

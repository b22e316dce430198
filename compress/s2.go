package compress

import (
	"github.com/klauspost/compress/s2"

	"github.com/pcmpverify/pcmp/errs"
)

// S2Codec is the streaming block compressor PCMP's wire format fixes for
// both the residual and permutation payloads (§4.2).
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates a new S2 codec with default options.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses data using S2 (a Snappy-compatible format).
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressBounded reads the decoded length S2 embeds in the stream
// before allocating anything, rejects it against upperBound up front, and
// only then decodes into a destination sized to that length. This keeps an
// attacker-controlled length field from driving an oversized allocation
// ahead of the cap check.
func (c S2Codec) DecompressBounded(data []byte, upperBound int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > upperBound {
		return nil, errs.ErrDecompressedSizeExceeded
	}

	dst := make([]byte, n)
	return s2.Decode(dst, data)
}

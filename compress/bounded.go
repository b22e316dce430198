package compress

import (
	"errors"

	"github.com/pcmpverify/pcmp/errs"
)

// DecompressBounded decompresses data with dec, passing upperBound into the
// decompression itself so the codec never materializes more than
// upperBound bytes of output (upperBound+1 for Zstd, see
// ZstdCodec.DecompressBounded), the declared uncompressed size bound the
// container parser supplies for each payload (§4.2): 4·n for residuals,
// 10·n for the permutation payload.
//
// A decompression error surfaces as errs.ErrDecompressionFailed; an
// oversize result surfaces as errs.ErrDecompressedSizeExceeded (reported by
// the codec itself, or by the redundant check below as a last line of
// defense). Callers never need to inspect the underlying codec error.
func DecompressBounded(dec Decompressor, data []byte, upperBound int) ([]byte, error) {
	out, err := dec.DecompressBounded(data, upperBound)
	if err != nil {
		if errors.Is(err, errs.ErrDecompressedSizeExceeded) {
			return nil, err
		}
		return nil, errs.ErrDecompressionFailed
	}

	if len(out) > upperBound {
		return nil, errs.ErrDecompressedSizeExceeded
	}

	return out, nil
}

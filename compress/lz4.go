package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/pcmpverify/pcmp/errs"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec implements the Codec boundary over LZ4 block compression.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses data using a pooled LZ4 block compressor.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, dstSize)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses LZ4-compressed data using an adaptive buffer
// sizing strategy: start at 4x the compressed size and double on
// ErrInvalidSourceShortBuffer up to a 128MB safety limit.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024 // 128MB safety limit

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressBounded decompresses an LZ4 block, growing its destination
// buffer only up to upperBound: an LZ4 raw block carries no embedded
// decoded-length header the way S2 or Zstd frames do, so the bound has to
// be applied as the ceiling of the adaptive growth loop itself rather than
// checked once after decoding finishes.
func (c LZ4Codec) DecompressBounded(data []byte, upperBound int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	if bufSize <= 0 || bufSize > upperBound {
		bufSize = upperBound
	}

	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < upperBound {
				bufSize *= 2
				if bufSize > upperBound {
					bufSize = upperBound
				}
				continue
			}
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				return nil, errs.ErrDecompressedSizeExceeded
			}
			return nil, err
		}

		return buf[:n], nil
	}
}

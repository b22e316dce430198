// Package varint decodes the two integer codecs PCMP permutation payloads
// are built from: ULEB128 (unsigned little-endian base-128) and zig-zag.
//
// Both decoders are pure and total over well-formed input; ULEB128 reports
// the two distinct ways a buffer can be malformed (truncated before a
// terminator byte, or wide enough to overflow 64 bits) so the caller can
// distinguish them in diagnostics.
package varint

import "github.com/pcmpverify/pcmp/errs"

// maxULEB128Bytes is the number of continuation groups needed to cover a
// full 64-bit value (ceil(64/7)); the 10th byte may carry only bit 63, and
// any wider payload in it overflows.
const maxULEB128Bytes = 10

// DecodeULEB128 reads a ULEB128-encoded unsigned integer from data starting
// at offset. It accumulates the low 7 bits of each byte at shifts of
// 0, 7, 14, ... and stops at the first byte whose high bit is clear.
//
// Returns the decoded value and the number of bytes consumed.
//
//   - ErrULEB128Truncated: data is exhausted before a terminator byte is seen.
//   - ErrULEB128Overflow: decoding a 10th continuation byte, or a 10th byte
//     whose payload bits would shift past bit 63, would overflow uint64.
func DecodeULEB128(data []byte, offset int) (uint64, int, error) {
	var value uint64
	var shift uint

	for i := 0; i < maxULEB128Bytes; i++ {
		pos := offset + i
		if pos >= len(data) {
			return 0, 0, errs.ErrULEB128Truncated
		}

		b := data[pos]

		if shift >= 64 {
			return 0, 0, errs.ErrULEB128Overflow
		}

		chunk := uint64(b & 0x7F)
		if shift == 63 && chunk > 1 {
			// Only bit 63 itself may be set by the 10th byte; anything wider overflows.
			return 0, 0, errs.ErrULEB128Overflow
		}

		value |= chunk << shift

		if b&0x80 == 0 {
			return value, i + 1, nil
		}

		shift += 7
	}

	return 0, 0, errs.ErrULEB128Overflow
}

// DecodeZigZag maps a zig-zag encoded unsigned 64-bit integer back to its
// signed value: (v >> 1) XOR -(v & 1). Pure and total.
func DecodeZigZag(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// Package errs holds the sentinel errors returned by the PCMP verifier core.
//
// Every structural failure the parser and orchestrator can encounter has a
// dedicated sentinel here so callers can use errors.Is instead of matching
// on strings. The verifier never returns these to its own caller; they are
// materialized into the result record's Error field instead (see package
// verifier), but the sentinels still matter internally for errors.Is-based
// branching and for the unit tests that assert on specific failure modes.
package errs

import "errors"

// Structural (Malformed) errors: bad magic/version, short reads,
// decompression failures, varint overrun, invalid predictor order, or a
// resource cap exceeded before the oversize region is read.
var (
	ErrInvalidMagic             = errors.New("pcmp: invalid header magic")
	ErrInvalidVersion           = errors.New("pcmp: invalid header version")
	ErrInvalidPredictorOrder    = errors.New("pcmp: invalid predictor order")
	ErrShortRead                = errors.New("pcmp: short read")
	ErrElementCountTooLarge     = errors.New("pcmp: element count exceeds cap")
	ErrCompressedSizeTooLarge   = errors.New("pcmp: compressed payload size exceeds cap")
	ErrULEB128Truncated         = errors.New("pcmp: uleb128 buffer exhausted before terminator")
	ErrULEB128Overflow          = errors.New("pcmp: uleb128 value exceeds 64 bits")
	ErrDecompressionFailed      = errors.New("pcmp: block decompression failed")
	ErrDecompressedSizeExceeded = errors.New("pcmp: decompressed size exceeds declared upper bound")
	ErrDecompressedSizeMismatch = errors.New("pcmp: decompressed residual size does not equal 4*n")
)

// ErrIO marks a filesystem open/read failure. The verifier never panics
// or retries; it surfaces this as a single error string on the result
// record.
var ErrIO = errors.New("pcmp: i/o error")

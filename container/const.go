package container

// Byte offsets and fixed region sizes of the PCMP binary container (§3).
const (
	// Magic is the 4 ASCII bytes "PCMP" (0x50, 0x43, 0x4D, 0x50), read as a
	// little-endian uint32. The header carries these 4 bytes directly and
	// the parser checks them against the string "PCMP"; the footer carries
	// the same 4 bytes in its own little-endian uint32 field, which the
	// verifier compares against this constant.
	Magic uint32 = 0x504D4350

	// Version is the only header/footer version PCMP defines. The parser
	// rejects any other header version; the footer version is checked by
	// the verifier as part of meta_ok.
	Version uint8 = 1

	// HeaderSize is the fixed size of the header region in bytes.
	HeaderSize = 16
	// MetadataSize is the fixed size of the metadata region in bytes.
	MetadataSize = 36
	// RootSize is the fixed size of the stored Merkle root region in bytes.
	RootSize = 32
	// FooterSize is the fixed size of the footer region in bytes.
	FooterSize = 8

	// MaxElementCount is the cap on n, the element count (§4.6).
	MaxElementCount uint64 = 1 << 28
	// MaxCompressedSize is the cap on C/PC, the compressed payload byte
	// length of either the residual or permutation block (§4.6).
	MaxCompressedSize uint64 = 1 << 30

	// ResidualBytesPerElement is the decompressed size, in bytes, of one
	// residual (a little-endian uint32).
	ResidualBytesPerElement = 4
	// PermutationUpperBoundPerElement bounds the decompressed permutation
	// payload size per element: up to 10 ULEB128 bytes encode a full
	// 64-bit value.
	PermutationUpperBoundPerElement = 10

	// ExpectedProofType is the only accepted value of the metadata's
	// proof_type field.
	ExpectedProofType uint64 = 1
	// ExpectedChunkBytes is the only accepted value of the metadata's
	// chunk_bytes field: PCMP's fixed Merkle chunk size, 2²².
	ExpectedChunkBytes uint64 = 1 << 22
)

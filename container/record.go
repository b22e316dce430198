package container

// Header is the fixed-size 16-byte region at the start of a PCMP file (§3.1).
// Magic, Version, Order, and N are read off the wire unconditionally, before
// any validity check runs, so a malformed header still reports what it
// actually contained.
type Header struct {
	Magic   string // raw 4 bytes, not necessarily "PCMP"
	Version uint8
	Order   uint8 // predictor order, 1 or 2
	N       uint64
}

// Metadata is the fixed-size 36-byte region following the permutation block
// (§3.4).
type Metadata struct {
	ProofType    uint64
	TotalN       uint64
	ChunkBytes   uint64
	NumChunks    uint64
	OrderingMode uint32
}

// Footer is the fixed-size 8-byte trailing region (§3.6).
type Footer struct {
	Magic   uint32
	Version uint32
}

// File is the fully parsed, but not yet decompressed-or-validated,
// structure of a PCMP container: the six regions of §3 in file order. The
// parser never interprets payload contents; that is the verifier's job.
type File struct {
	Header Header

	CompressedResiduals   []byte
	CompressedPermutation []byte

	Metadata Metadata

	StoredRoot [RootSize]byte

	Footer Footer
}

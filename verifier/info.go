// Package verifier composes the integer codecs, predictor, ordered-float
// mapping, Merkle hasher, and container parser into the PCMP verification
// orchestrator (§4.7 of the format): a pure function from a byte sequence
// to a single result record.
package verifier

// Info is the result record produced by VerifyFile/VerifyBytes. Every
// field is populated independently of the others where possible: a
// failure in one check never blocks the computation of the rest, so a
// caller rendering --info or --json output sees exactly how far
// verification got and which invariants held.
//
// Field names match the external contract surface; the json tags are
// exactly the names the format specifies for structured output.
type Info struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`

	Magic   string `json:"magic"`
	Version uint8  `json:"version"`
	Order   uint8  `json:"order"`
	N       uint64 `json:"n"`

	OrderingOK             bool `json:"ordering_ok"`
	OrderingViolationIndex int  `json:"ordering_violation_index"`

	PermutationOK bool `json:"permutation_ok"`

	CVDOk              bool   `json:"cvd_ok"`
	CVDViolationIndex  int    `json:"cvd_violation_index"`
	CVDViolationReason string `json:"cvd_violation_reason,omitempty"`

	MetaOk       bool   `json:"meta_ok"`
	ProofType    uint64 `json:"proof_type"`
	OrderingMode uint32 `json:"ordering_mode"`
	ChunkBytes   uint64 `json:"chunk_bytes"`
	TotalN       uint64 `json:"total_n"`
	NumChunks    uint64 `json:"num_chunks"`

	StoredMerkleRoot   string `json:"stored_merkle_root"`
	ComputedMerkleRoot string `json:"computed_merkle_root"`
	MerkleMatch        bool   `json:"merkle_match"`

	FooterMagic   string `json:"footer_magic"`
	FooterVersion uint32 `json:"footer_version"`
}

// noViolation is the sentinel value OrderingViolationIndex/CVDViolationIndex
// hold when the corresponding check found nothing to report.
const noViolation = -1

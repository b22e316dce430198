// Package merkle computes the binary SHA-256 Merkle root PCMP commits over
// the raw (uncompressed) residual byte stream.
//
// The chunking size and the odd-leaf promotion rule are part of the on-wire
// contract (§4.5 of the format): implementations that duplicate-and-hash an
// odd trailing node instead of promoting it unchanged produce a different,
// incompatible root.
package merkle

import "crypto/sha256"

// ChunkBytes is the fixed chunk size PCMP partitions the residual byte
// stream into before leaf hashing: 2²² bytes (4 MiB).
const ChunkBytes = 1 << 22

// RootSize is the length in bytes of a SHA-256 digest.
const RootSize = sha256.Size

// NumChunks returns the number of ChunkBytes-sized chunks that cover a
// stream of length bytes, ceil(length / ChunkBytes).
func NumChunks(length uint64) uint64 {
	if length == 0 {
		return 0
	}

	return (length + ChunkBytes - 1) / ChunkBytes
}

// Root computes the Merkle root over data, partitioned into ChunkBytes-sized
// chunks (the final chunk may be shorter).
//
// Leaves are SHA256(chunk). Internal levels pair adjacent nodes left to
// right and hash their concatenation; a level with an odd node count
// promotes its final node unchanged to the next level rather than
// duplicating or padding it. If data is empty, the root is defined as 32
// zero bytes.
func Root(data []byte) [RootSize]byte {
	if len(data) == 0 {
		return [RootSize]byte{}
	}

	level := make([][RootSize]byte, 0, NumChunks(uint64(len(data))))
	for off := 0; off < len(data); off += ChunkBytes {
		end := off + ChunkBytes
		if end > len(data) {
			end = len(data)
		}

		level = append(level, sha256.Sum256(data[off:end]))
	}

	for len(level) > 1 {
		next := make([][RootSize]byte, 0, (len(level)+1)/2)

		i := 0
		for ; i+1 < len(level); i += 2 {
			var buf [2 * RootSize]byte
			copy(buf[:RootSize], level[i][:])
			copy(buf[RootSize:], level[i+1][:])
			next = append(next, sha256.Sum256(buf[:]))
		}

		if i < len(level) {
			// Odd node out: promote unchanged, do not duplicate or pad.
			next = append(next, level[i])
		}

		level = next
	}

	return level[0]
}

// Package container implements the PCMP binary container parser (§4.6 of
// the format): it reads the six fixed-order regions of a file (header,
// residual block, permutation block, metadata, stored Merkle root, and
// footer), enforcing resource caps before any allocation sized from a
// length read out of the file. It never interprets payload contents; that
// is the verifier orchestrator's job (package verifier).
package container

import (
	"github.com/pcmpverify/pcmp/endian"
	"github.com/pcmpverify/pcmp/errs"
)

// wireEndian is the byte order every PCMP region is encoded in (§6:
// "Endianness little-endian throughout"). The parser never branches on
// endianness; it always reads through this one engine.
var wireEndian = endian.GetLittleEndianEngine()

// Parse reads a PCMP container from data, validating structural invariants
// (magic, version, resource caps, region lengths) but not semantic ones
// (ordering, permutation validity, Merkle match; those belong to package
// verifier). Any short read or cap violation returns a non-nil error and a
// File that is populated only up to the point parsing stopped.
func Parse(data []byte) (File, error) {
	var f File

	off := 0

	header, n, err := parseHeader(data, off)
	f.Header = header
	if err != nil {
		return f, err
	}
	off += n

	residuals, n, err := parseBlock(data, off)
	if err != nil {
		return f, err
	}
	f.CompressedResiduals = residuals
	off += n

	perm, n, err := parseBlock(data, off)
	if err != nil {
		return f, err
	}
	f.CompressedPermutation = perm
	off += n

	metadata, n, err := parseMetadata(data, off)
	if err != nil {
		return f, err
	}
	f.Metadata = metadata
	off += n

	root, n, err := parseRoot(data, off)
	if err != nil {
		return f, err
	}
	f.StoredRoot = root
	off += n

	footer, _, err := parseFooter(data, off)
	if err != nil {
		return f, err
	}
	f.Footer = footer

	return f, nil
}

// MaxResidualUpperBound returns the declared uncompressed upper bound the
// verifier supplies for the residual block: 4·n bytes.
func MaxResidualUpperBound(n uint64) uint64 {
	return 4 * n
}

// MaxPermutationUpperBound returns the declared uncompressed upper bound
// the verifier supplies for the permutation block: 10·n bytes (§4.2), one
// upper bound covering n maximal 10-byte ULEB128 codes.
func MaxPermutationUpperBound(n uint64) uint64 {
	return 10 * n
}

// parseHeader reads all four header fields off the wire before checking any
// of them, so a caller that receives an error alongside a non-zero Header
// still sees exactly what the file contained (magic/version/order/n),
// rather than a blank record. Validity is then checked in wire order:
// magic, version, element count.
func parseHeader(data []byte, off int) (Header, int, error) {
	if len(data) < off+HeaderSize {
		return Header{}, 0, errs.ErrShortRead
	}

	region := data[off : off+HeaderSize]

	magic := string(region[0:4])
	version := region[4]
	order := region[5]
	// region[6:8] are reserved and intentionally unchecked.
	n := wireEndian.Uint64(region[8:16])

	header := Header{Magic: magic, Version: version, Order: order, N: n}

	if magic != "PCMP" {
		return header, HeaderSize, errs.ErrInvalidMagic
	}
	if version != Version {
		return header, HeaderSize, errs.ErrInvalidVersion
	}
	if n > MaxElementCount {
		return header, HeaderSize, errs.ErrElementCountTooLarge
	}

	return header, HeaderSize, nil
}

// parseBlock reads an 8-byte little-endian length C followed by C bytes of
// compressed payload, enforcing the compressed-size cap before reading the
// payload region.
func parseBlock(data []byte, off int) ([]byte, int, error) {
	const lengthSize = 8

	if len(data) < off+lengthSize {
		return nil, 0, errs.ErrShortRead
	}

	c := wireEndian.Uint64(data[off : off+lengthSize])
	if c > MaxCompressedSize {
		return nil, 0, errs.ErrCompressedSizeTooLarge
	}

	start := off + lengthSize
	end := start + int(c)
	if len(data) < end {
		return nil, 0, errs.ErrShortRead
	}

	return data[start:end], lengthSize + int(c), nil
}

func parseMetadata(data []byte, off int) (Metadata, int, error) {
	if len(data) < off+MetadataSize {
		return Metadata{}, 0, errs.ErrShortRead
	}

	region := data[off : off+MetadataSize]

	return Metadata{
		ProofType:    wireEndian.Uint64(region[0:8]),
		TotalN:       wireEndian.Uint64(region[8:16]),
		ChunkBytes:   wireEndian.Uint64(region[16:24]),
		NumChunks:    wireEndian.Uint64(region[24:32]),
		OrderingMode: wireEndian.Uint32(region[32:36]),
	}, MetadataSize, nil
}

func parseRoot(data []byte, off int) ([RootSize]byte, int, error) {
	var root [RootSize]byte

	if len(data) < off+RootSize {
		return root, 0, errs.ErrShortRead
	}

	copy(root[:], data[off:off+RootSize])

	return root, RootSize, nil
}

// parseFooter reads the 8-byte footer region without interpreting its
// content: magic/version correctness is a metadata invariant (meta_ok),
// checked by package verifier, not a structural one that aborts Parse.
func parseFooter(data []byte, off int) (Footer, int, error) {
	if len(data) < off+FooterSize {
		return Footer{}, 0, errs.ErrShortRead
	}

	region := data[off : off+FooterSize]

	magic := wireEndian.Uint32(region[0:4])
	version := wireEndian.Uint32(region[4:8])

	return Footer{Magic: magic, Version: version}, FooterSize, nil
}

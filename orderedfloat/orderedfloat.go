// Package orderedfloat implements PCMP's canonical total-order mapping
// between IEEE-754 binary32 bit patterns and an unsigned ordering key, plus
// the canonicalization rules the verifier enforces after unmapping:
// negative zero is never canonical, and every NaN must collapse to the
// single canonical quiet NaN bit pattern.
package orderedfloat

const (
	signBit = 0x80000000

	// CanonicalNaN is the only NaN bit pattern the verifier accepts.
	CanonicalNaN uint32 = 0x7FC00000

	// NegativeZero is the bit pattern the verifier always rejects; only
	// positive zero (0x00000000) is canonical.
	NegativeZero uint32 = 0x80000000

	// nanExponentMask isolates the 8-bit exponent field of a binary32.
	nanExponentMask = 0x7F800000
	// nanMantissaMask isolates the 23-bit mantissa field of a binary32.
	nanMantissaMask = 0x007FFFFF
)

// Map converts a binary32 bit pattern to its totally ordered unsigned key.
//
//   - u XOR 0x80000000 if the sign bit is clear (positive/zero).
//   - NOT u if the sign bit is set (negative).
func Map(u uint32) uint32 {
	if u&signBit == 0 {
		return u ^ signBit
	}

	return ^u
}

// Unmap inverts Map, recovering the original binary32 bit pattern from an
// ordered key.
//
//   - m XOR 0x80000000 if m's sign bit is set.
//   - NOT m otherwise.
func Unmap(m uint32) uint32 {
	if m&signBit != 0 {
		return m ^ signBit
	}

	return ^m
}

// IsNaN reports whether f is any NaN bit pattern (exponent all-ones,
// mantissa nonzero), canonical or not.
func IsNaN(f uint32) bool {
	return f&nanExponentMask == nanExponentMask && f&nanMantissaMask != 0
}

// IsCanonical reports whether f is an acceptable unmapped float pattern:
// not negative zero, and if it is a NaN, exactly the canonical quiet NaN.
func IsCanonical(f uint32) (bool, string) {
	if f == NegativeZero {
		return false, "negative zero"
	}

	if IsNaN(f) && f != CanonicalNaN {
		return false, "non-canonical NaN"
	}

	return true, ""
}

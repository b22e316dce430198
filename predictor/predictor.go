// Package predictor reconstructs the ordered integer key sequence from
// residuals under PCMP's order-1 or order-2 linear predictors.
//
// All arithmetic here is unsigned 32-bit modulo 2³², matching a delta and
// delta-of-delta accumulation style familiar from timestamp encoders, but
// fixed to uint32 instead of int64 so wraparound matches the producer
// bit-for-bit.
package predictor

import "github.com/pcmpverify/pcmp/errs"

// Order identifies which predictor produced the residual stream.
type Order uint8

const (
	Order1 Order = 1
	Order2 Order = 2
)

// Valid reports whether o is a predictor order PCMP defines.
func (o Order) Valid() bool {
	return o == Order1 || o == Order2
}

// Inverse reconstructs the ordered key vector K from the residual vector R
// under the given predictor order. All additions and subtractions wrap
// modulo 2³² via uint32 arithmetic, exactly mirroring the producer's
// forward transform run in reverse.
//
// Returns ErrInvalidPredictorOrder if order is not 1 or 2. The returned
// slice has the same length as r; for len(r) == 0 it is empty.
func Inverse(order Order, r []uint32) ([]uint32, error) {
	if !order.Valid() {
		return nil, errs.ErrInvalidPredictorOrder
	}

	n := len(r)
	k := make([]uint32, n)
	if n == 0 {
		return k, nil
	}

	k[0] = r[0]
	if n == 1 {
		return k, nil
	}

	switch order {
	case Order1:
		for i := 1; i < n; i++ {
			k[i] = k[i-1] + r[i]
		}
	case Order2:
		k[1] = k[0] + r[1]
		for i := 2; i < n; i++ {
			k[i] = 2*k[i-1] - k[i-2] + r[i]
		}
	}

	return k, nil
}

// Forward re-derives the residual vector from an ordered key vector and a
// predictor order; it is the exact inverse of Inverse and exists primarily
// to exercise the round-trip property (forward ∘ inverse == id) in tests.
func Forward(order Order, k []uint32) ([]uint32, error) {
	if !order.Valid() {
		return nil, errs.ErrInvalidPredictorOrder
	}

	n := len(k)
	r := make([]uint32, n)
	if n == 0 {
		return r, nil
	}

	r[0] = k[0]
	if n == 1 {
		return r, nil
	}

	switch order {
	case Order1:
		for i := 1; i < n; i++ {
			r[i] = k[i] - k[i-1]
		}
	case Order2:
		r[1] = k[1] - k[0]
		for i := 2; i < n; i++ {
			r[i] = k[i] - 2*k[i-1] + k[i-2]
		}
	}

	return r, nil
}

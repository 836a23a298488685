// SPDX-License-Identifier: MIT

package tags

// Order says which of the four quaternion slots holds the real part.
type Order uint8

const (
	// VectorFirst stores (x, y, z, w).
	VectorFirst Order = iota
	// ScalarFirst stores (w, x, y, z).
	ScalarFirst
)

// String implements fmt.Stringer.
func (o Order) String() string {
	if o == ScalarFirst {
		return "scalar_first"
	}

	return "vector_first"
}

// Indices returns the storage slots of w, x, y and z.
func (o Order) Indices() (w, x, y, z int) {
	if o == ScalarFirst {
		return 0, 1, 2, 3
	}

	return 3, 0, 1, 2
}

// Cross selects the cross product convention of the Hamilton product.
type Cross uint8

const (
	// PositiveCross computes v1 × v2 in the imaginary part of q1*q2.
	PositiveCross Cross = iota
	// NegativeCross computes v2 × v1, composing rotations left to right.
	NegativeCross
)

// String implements fmt.Stringer.
func (c Cross) String() string {
	if c == NegativeCross {
		return "negative_cross"
	}

	return "positive_cross"
}

// PromoteOrder combines two order tags; different orders conflict.
func PromoteOrder(a, b Order) (Order, error) {
	if a != b {
		return a, promoteErrorf("PromoteOrder", a, b)
	}

	return a, nil
}

// PromoteCross combines two cross tags; different conventions conflict.
func PromoteCross(a, b Cross) (Cross, error) {
	if a != b {
		return a, promoteErrorf("PromoteCross", a, b)
	}

	return a, nil
}

// SPDX-License-Identifier: MIT

// Package sizecheck validates dimensional compatibility of vector and matrix
// expressions at run time.
//
// Purpose:
//   - One canonical source for same-size, minimum-size, exact-size and
//     size-range checks (vectors) and shape/row/column/inner checks (matrices).
//   - Operands that are Fixed on both sides were already proven compatible by
//     the type system (Dim type parameters); for them the check here is
//     redundant but safe.
//   - Every check becomes a no-op when built with -tags lvlmath_nosizecheck,
//     except CheckAxis, which validates an argument rather than a size.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate only on failure.
package sizecheck

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/tags"
)

// Sized is any vector-like operand.
type Sized interface {
	Size() int
	SizeTag() tags.Size
}

// Shaped is any matrix-like operand.
type Shaped interface {
	Rows() int
	Cols() int
	SizeTag() tags.Size
}

// checkErrorf wraps a sentinel with the check name and the two extents.
func checkErrorf(check string, got, want int, err error) error {
	return fmt.Errorf("%s(%d, %d): %w", check, got, want, err)
}

// ---------- Vector checks ----------

// CheckSameSize fails with ErrIncompatibleSize when a and b differ in size.
func CheckSameSize(a, b Sized) error {
	if !Enabled {
		return nil
	}
	if a.Size() != b.Size() {
		return checkErrorf("CheckSameSize", a.Size(), b.Size(), ErrIncompatibleSize)
	}

	return nil
}

// CheckSameArraySize compares a against a raw array of length n (an element
// list or a Go array); it fails with ErrIncompatibleSize.
func CheckSameArraySize(a Sized, n int) error {
	if !Enabled {
		return nil
	}
	if a.Size() != n {
		return checkErrorf("CheckSameArraySize", a.Size(), n, ErrIncompatibleSize)
	}

	return nil
}

// CheckMinimumSize fails with ErrMinimumSize when a has fewer than n elements.
func CheckMinimumSize(a Sized, n int) error {
	if !Enabled {
		return nil
	}
	if a.Size() < n {
		return checkErrorf("CheckMinimumSize", a.Size(), n, ErrMinimumSize)
	}

	return nil
}

// CheckExactSize fails with ErrExactSize when a does not have exactly n elements.
func CheckExactSize(a Sized, n int) error {
	if !Enabled {
		return nil
	}
	if a.Size() != n {
		return checkErrorf("CheckExactSize", a.Size(), n, ErrExactSize)
	}

	return nil
}

// CheckSizeRange fails with ErrSizeRange when a.Size() is outside [lo, hi].
func CheckSizeRange(a Sized, lo, hi int) error {
	if !Enabled {
		return nil
	}
	if n := a.Size(); n < lo || n > hi {
		return fmt.Errorf("CheckSizeRange(%d, [%d, %d]): %w", n, lo, hi, ErrSizeRange)
	}

	return nil
}

// ---------- Matrix checks ----------

// CheckSameShape fails with ErrIncompatibleSize when a and b differ in shape.
func CheckSameShape(a, b Shaped) error {
	if !Enabled {
		return nil
	}
	if a.Rows() != b.Rows() {
		return checkErrorf("CheckSameShape: rows", a.Rows(), b.Rows(), ErrIncompatibleSize)
	}
	if a.Cols() != b.Cols() {
		return checkErrorf("CheckSameShape: cols", a.Cols(), b.Cols(), ErrIncompatibleSize)
	}

	return nil
}

// CheckSameLinearSize fails with ErrIncompatibleSize when a does not hold
// exactly n elements (used for flat element lists).
func CheckSameLinearSize(a Shaped, n int) error {
	if !Enabled {
		return nil
	}
	if a.Rows()*a.Cols() != n {
		return checkErrorf("CheckSameLinearSize", a.Rows()*a.Cols(), n, ErrIncompatibleSize)
	}

	return nil
}

// CheckShape fails with ErrExactSize when a is not rows×cols.
func CheckShape(a Shaped, rows, cols int) error {
	if !Enabled {
		return nil
	}
	if a.Rows() != rows {
		return checkErrorf("CheckShape: rows", a.Rows(), rows, ErrExactSize)
	}
	if a.Cols() != cols {
		return checkErrorf("CheckShape: cols", a.Cols(), cols, ErrExactSize)
	}

	return nil
}

// CheckMinimumShape fails with ErrMinimumSize when a is smaller than rows×cols.
func CheckMinimumShape(a Shaped, rows, cols int) error {
	if !Enabled {
		return nil
	}
	if a.Rows() < rows {
		return checkErrorf("CheckMinimumShape: rows", a.Rows(), rows, ErrMinimumSize)
	}
	if a.Cols() < cols {
		return checkErrorf("CheckMinimumShape: cols", a.Cols(), cols, ErrMinimumSize)
	}

	return nil
}

// CheckSquare fails with ErrNonSquare when a is not square.
func CheckSquare(a Shaped) error {
	if !Enabled {
		return nil
	}
	if a.Rows() != a.Cols() {
		return checkErrorf("CheckSquare", a.Rows(), a.Cols(), ErrNonSquare)
	}

	return nil
}

// CheckSameRowSize fails with ErrIncompatibleRows when m.Rows() != v.Size().
func CheckSameRowSize(m Shaped, v Sized) error {
	if !Enabled {
		return nil
	}
	if m.Rows() != v.Size() {
		return checkErrorf("CheckSameRowSize", m.Rows(), v.Size(), ErrIncompatibleRows)
	}

	return nil
}

// CheckSameColSize fails with ErrIncompatibleCols when m.Cols() != v.Size().
func CheckSameColSize(m Shaped, v Sized) error {
	if !Enabled {
		return nil
	}
	if m.Cols() != v.Size() {
		return checkErrorf("CheckSameColSize", m.Cols(), v.Size(), ErrIncompatibleCols)
	}

	return nil
}

// CheckInnerSize fails with ErrIncompatibleInner when a.Cols() != b.Rows().
func CheckInnerSize(a, b Shaped) error {
	if !Enabled {
		return nil
	}
	if a.Cols() != b.Rows() {
		return checkErrorf("CheckInnerSize", a.Cols(), b.Rows(), ErrIncompatibleInner)
	}

	return nil
}

// CheckInnerSizeMatVec checks m*v: m.Cols() must equal v.Size().
func CheckInnerSizeMatVec(m Shaped, v Sized) error {
	if !Enabled {
		return nil
	}
	if m.Cols() != v.Size() {
		return checkErrorf("CheckInnerSizeMatVec", m.Cols(), v.Size(), ErrIncompatibleInner)
	}

	return nil
}

// CheckInnerSizeVecMat checks v*m: v.Size() must equal m.Rows().
func CheckInnerSizeVecMat(v Sized, m Shaped) error {
	if !Enabled {
		return nil
	}
	if v.Size() != m.Rows() {
		return checkErrorf("CheckInnerSizeVecMat", v.Size(), m.Rows(), ErrIncompatibleInner)
	}

	return nil
}

// ---------- Argument checks ----------

// CheckAxis fails with ErrInvalidAxis unless axis is 0, 1 or 2. It runs
// regardless of Enabled.
func CheckAxis(axis int) error {
	if axis < 0 || axis > 2 {
		return fmt.Errorf("CheckAxis(%d): %w", axis, ErrInvalidAxis)
	}

	return nil
}

// CheckDimensions fails with ErrInvalidDimensions when any extent is
// negative. It runs regardless of Enabled: a negative extent cannot be
// allocated.
func CheckDimensions(extents ...int) error {
	for _, n := range extents {
		if n < 0 {
			return fmt.Errorf("CheckDimensions(%d): %w", n, ErrInvalidDimensions)
		}
	}

	return nil
}

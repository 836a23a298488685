// SPDX-License-Identifier: MIT
// Package sizecheck: sentinel error set.
// Every runtime size violation is reported with one of these sentinels,
// wrapped with the check name and the offending extents. Callers match them
// with errors.Is.

package sizecheck

import "errors"

var (
	// ErrIncompatibleSize: two dynamically sized operands disagree.
	ErrIncompatibleSize = errors.New("sizecheck: incompatible expression sizes")

	// ErrMinimumSize: an expression is smaller than required.
	ErrMinimumSize = errors.New("sizecheck: expression too small")

	// ErrExactSize: an expression does not have the required size.
	ErrExactSize = errors.New("sizecheck: incorrect expression size")

	// ErrSizeRange: an expression size falls outside [lo, hi].
	ErrSizeRange = errors.New("sizecheck: expression size out of range")

	// ErrIncompatibleRows: row counts of a matrix/vector pair disagree.
	ErrIncompatibleRows = errors.New("sizecheck: incompatible matrix row sizes")

	// ErrIncompatibleCols: column counts of a matrix/vector pair disagree.
	ErrIncompatibleCols = errors.New("sizecheck: incompatible matrix column sizes")

	// ErrIncompatibleInner: inner extents of a product disagree.
	ErrIncompatibleInner = errors.New("sizecheck: incompatible matrix inner product size")

	// ErrNonSquare: a square matrix was required.
	ErrNonSquare = errors.New("sizecheck: matrix is not square")

	// ErrInvalidAxis: an axis index outside {0,1,2} was passed to an
	// axis-parameterized helper.
	ErrInvalidAxis = errors.New("sizecheck: invalid axis")

	// ErrInvalidDimensions: a negative extent was requested.
	ErrInvalidDimensions = errors.New("sizecheck: dimensions must be >= 0")
)

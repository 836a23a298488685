// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Shape violations are reported with the sizecheck sentinels and tag
// conflicts with tags.ErrTagConflict. This file adds the construction
// errors specific to matrices. All are matched with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilExpr indicates that a nil expression was passed as an operand.
	ErrNilExpr = errors.New("matrix: nil expression")

	// ErrRagged indicates a 2-D literal whose rows differ in length.
	ErrRagged = errors.New("matrix: rows differ in length")

	// ErrCapacity indicates a Fixed matrix larger than its inline buffer.
	ErrCapacity = errors.New("matrix: fixed capacity exceeded")

	// ErrAllocatorType indicates an allocator whose element type differs
	// from the matrix element type.
	ErrAllocatorType = errors.New("matrix: allocator element type mismatch")

	// ErrOutOfRange indicates an element index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Operation tags used when wrapping errors.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opVecMul      = "VecMul"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opTrace       = "Trace"
	opTranspose   = "Transpose"
	opLU          = "LU"
	opLUPivot     = "LUPivot"
	opLUSolve     = "LUSolve"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

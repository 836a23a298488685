// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Size violations use the sizecheck sentinels; this file only adds the
// conditions specific to vector construction. Match with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNilExpr indicates that a nil expression was passed as an operand.
	ErrNilExpr = errors.New("vector: nil expression")

	// ErrCapacity indicates a Fixed vector was asked to hold more elements
	// than its inline buffer.
	ErrCapacity = errors.New("vector: fixed capacity exceeded")
)

// vectorErrorf wraps err with an operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

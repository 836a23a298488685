// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
)

// Shared element loops used by every writable container. Each helper
// validates first and writes second, so a failing call leaves dst untouched.

func assignExpr[E scalar.Float](tag string, dst Writable[E], src Expr[E]) error {
	if src == nil {
		return vectorErrorf(tag, ErrNilExpr)
	}
	if err := sizecheck.CheckSameSize(dst, src); err != nil {
		return vectorErrorf(tag, err)
	}
	for i := 0; i < dst.Size(); i++ {
		dst.Set(i, src.Get(i))
	}

	return nil
}

func assignElements[E scalar.Float](tag string, dst Writable[E], vals []E) error {
	if err := sizecheck.CheckSameArraySize(dst, len(vals)); err != nil {
		return vectorErrorf(tag, err)
	}
	for i, v := range vals {
		dst.Set(i, v)
	}

	return nil
}

func fill[E scalar.Float](dst Writable[E], v E) {
	for i := 0; i < dst.Size(); i++ {
		dst.Set(i, v)
	}
}

func cardinal[E scalar.Float](tag string, dst Writable[E], axis int) error {
	if axis < 0 || axis >= dst.Size() {
		return vectorErrorf(tag, fmt.Errorf("axis %d of %d: %w", axis, dst.Size(), sizecheck.ErrInvalidAxis))
	}
	fill(dst, 0)
	dst.Set(axis, 1)

	return nil
}

// minmax replaces every element of dst by min(dst_i, x_i) (keepLess) or
// max(dst_i, x_i).
func minmax[E scalar.Float](tag string, dst Writable[E], x Expr[E], keepLess bool) error {
	if x == nil {
		return vectorErrorf(tag, ErrNilExpr)
	}
	if err := sizecheck.CheckSameSize(dst, x); err != nil {
		return vectorErrorf(tag, err)
	}
	for i := 0; i < dst.Size(); i++ {
		a, b := dst.Get(i), x.Get(i)
		if (keepLess && b < a) || (!keepLess && b > a) {
			dst.Set(i, b)
		}
	}

	return nil
}

// normalize divides dst by its length. A zero vector yields NaN elements.
func normalize[E scalar.Float](dst Writable[E]) {
	l := Length[E](dst)
	for i := 0; i < dst.Size(); i++ {
		dst.Set(i, dst.Get(i)/l)
	}
}

func randomize[E scalar.Float](dst Writable[E], r *rand.Rand, lo, hi E) {
	for i := 0; i < dst.Size(); i++ {
		dst.Set(i, scalar.Random(r, lo, hi))
	}
}

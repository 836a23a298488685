// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/tags"
)

// Dot returns the inner product of a and b.
func Dot[E scalar.Float](a, b Expr[E]) (E, error) {
	if a == nil || b == nil {
		return 0, vectorErrorf("Dot", ErrNilExpr)
	}
	if err := sizecheck.CheckSameSize(a, b); err != nil {
		return 0, vectorErrorf("Dot", err)
	}

	return dot(a, b), nil
}

func dot[E scalar.Float](a, b Expr[E]) E {
	var sum E
	for i := 0; i < a.Size(); i++ {
		sum += a.Get(i) * b.Get(i)
	}

	return sum
}

// LengthSquared returns the squared Euclidean length of x.
func LengthSquared[E scalar.Float](x Expr[E]) E { return dot(x, x) }

// Length returns the Euclidean length of x.
func Length[E scalar.Float](x Expr[E]) E { return scalar.Sqrt(dot(x, x)) }

// Cross returns a × b. Both operands must have exactly 3 elements
// (sizecheck.ErrExactSize). The result is materialized, so it may be
// assigned back into a or b.
func Cross[E scalar.Float](a, b Expr[E]) (*Fixed[E, tags.D3], error) {
	if a == nil || b == nil {
		return nil, vectorErrorf("Cross", ErrNilExpr)
	}
	if err := sizecheck.CheckExactSize(a, 3); err != nil {
		return nil, vectorErrorf("Cross", err)
	}
	if err := sizecheck.CheckExactSize(b, 3); err != nil {
		return nil, vectorErrorf("Cross", err)
	}

	return cross(a, b), nil
}

// Cross3 is Cross for two typed 3-vectors; it cannot fail.
func Cross3[E scalar.Float](a, b *Fixed[E, tags.D3]) *Fixed[E, tags.D3] {
	return cross[E](a, b)
}

func cross[E scalar.Float](a, b Expr[E]) *Fixed[E, tags.D3] {
	ax, ay, az := a.Get(0), a.Get(1), a.Get(2)
	bx, by, bz := b.Get(0), b.Get(1), b.Get(2)

	return New3(ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx)
}

// Perp returns the 2-D perpendicular (-y, x) of a 2-element x.
func Perp[E scalar.Float](x Expr[E]) (*Fixed[E, tags.D2], error) {
	if x == nil {
		return nil, vectorErrorf("Perp", ErrNilExpr)
	}
	if err := sizecheck.CheckExactSize(x, 2); err != nil {
		return nil, vectorErrorf("Perp", err)
	}

	return New2(-x.Get(1), x.Get(0)), nil
}

// Equal reports whether a and b have the same size and every pair of
// elements differs by at most tol.
func Equal[E scalar.Float](a, b Expr[E], tol E) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		if scalar.Abs(a.Get(i)-b.Get(i)) > tol {
			return false
		}
	}

	return true
}

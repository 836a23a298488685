// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
)

// assign copies src into dst by role, so a ScalarFirst source lands in the
// right slots of a VectorFirst destination. All of src is read before dst is
// written.
func assign[E scalar.Float](tag string, dst Writable[E], src Expr[E]) error {
	if src == nil {
		return quaternionErrorf(tag, ErrNilExpr)
	}
	w, x, y, z := parts(src)
	setParts(dst, w, x, y, z)

	return nil
}

// assignElements copies vals into dst in storage order.
func assignElements[E scalar.Float](tag string, dst Writable[E], vals []E) error {
	if err := sizecheck.CheckSameArraySize(dst, len(vals)); err != nil {
		return quaternionErrorf(tag, err)
	}
	for i := 0; i < Size; i++ {
		dst.Set(i, vals[i])
	}

	return nil
}

func identity[E scalar.Float](q Writable[E]) { setParts(q, 1, 0, 0, 0) }

func conjugate[E scalar.Float](q Writable[E]) {
	w, x, y, z := parts[E](q)
	setParts(q, w, -x, -y, -z)
}

// normalize scales q to unit length. A zero quaternion yields NaN elements.
func normalize[E scalar.Float](q Writable[E]) {
	w, x, y, z := parts[E](q)
	l := scalar.Sqrt(w*w + x*x + y*y + z*z)
	setParts(q, w/l, x/l, y/l, z/l)
}

// invert replaces q by conj(q)/norm(q). A zero quaternion yields non-finite
// elements.
func invert[E scalar.Float](q Writable[E]) {
	w, x, y, z := parts[E](q)
	n := w*w + x*x + y*y + z*z
	setParts(q, w/n, -x/n, -y/n, -z/n)
}

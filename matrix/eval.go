// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// Eval materializes m into a new container chosen by storage.Proxy: an
// inline temporary for inline proxies, a Dynamic drawn from the selector
// allocator otherwise. Wildcard basis and layout tags resolve to the
// defaults.
//
// Complexity: O(Rows*Cols).
func Eval[E scalar.Float](m Expr[E]) Writable[E] {
	mustExpr(m)
	dst := newTemp[E](storage.Proxy(m.Storage()), m.Rows(), m.Cols(), m.Basis(), m.Layout())
	copyInto(dst, m)

	return dst
}

// newTemp returns a zeroed rows×cols container for selector sel.
func newTemp[E scalar.Float](sel storage.Selector, rows, cols int, basis tags.Basis, layout tags.Layout) Writable[E] {
	if basis == tags.EitherBasis {
		basis = DefaultBasis
	}
	if layout == tags.EitherLayout {
		layout = DefaultLayout
	}
	if sel.Strategy == storage.Inline && rows*cols <= tags.MaxFixedElems {
		return &inline[E]{rows: rows, cols: cols, basis: basis, layout: layout}
	}

	return &Dynamic[E]{
		heap:   storage.NewHeap(rows*cols, storage.AllocatorFor[E](sel)),
		rows:   rows,
		cols:   cols,
		basis:  basis,
		layout: layout,
	}
}

// Equal reports whether a and b have the same shape and all elements differ
// by at most tol.
func Equal[E scalar.Float](a, b Expr[E], tol E) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if scalar.Abs(a.Get(i, j)-b.Get(i, j)) > tol {
				return false
			}
		}
	}

	return true
}

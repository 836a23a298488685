// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// Products are not lazy: every result element reads a whole row and
// column, so the result is computed once into a temporary whose storage
// comes from storage.InnerPromote.

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: validate operands (a.Cols() == b.Rows()) and promote tags.
//   - Stage 2: allocate the temporary selected by InnerPromote.
//   - Stage 3: accumulate in i→j→k order.
//
// Inputs:
//   - a, b: conformable matrix expressions (non-nil). Either may be a
//     lazy node; each of its elements is read Cols(a) times.
//
// Returns:
//   - Writable[E]: a new r×c container with basis and layout promoted from
//     a and b (wildcards resolve to the defaults).
//   - error: non-nil on invalid input, wrapped with "Mul".
//
// Errors:
//   - ErrNilExpr (a or b is nil).
//   - sizecheck.ErrIncompatibleInner (a.Cols() != b.Rows()).
//   - tags.ErrTagConflict (two different concrete basis or layout tags).
//
// Complexity:
//   - Time O(Rows(a) * Cols(a) * Cols(b)), Space O(Rows(a) * Cols(b)).
func Mul[E scalar.Float](a, b Expr[E]) (Writable[E], error) {
	// Stage 1: validate
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilExpr)
	}
	if err := sizecheck.CheckInnerSize(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	basis, err := tags.PromoteBasis(a.Basis(), b.Basis())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	layout, err := tags.PromoteLayout(a.Layout(), b.Layout())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: temporary
	rows, cols, inner := a.Rows(), b.Cols(), a.Cols()
	sel := storage.InnerPromote(a.Storage(), b.Storage())
	out := newTemp[E](sel, rows, cols, basis, layout)

	// Stage 3: accumulate
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum E
			for k := 0; k < inner; k++ {
				sum += a.Get(i, k) * b.Get(k, j)
			}
			out.Set(i, j, sum)
		}
	}

	return out, nil
}

// MulFixed is Mul for fixed matrices whose inner extents agree by type. It
// uses the basis and layout of a.
func MulFixed[E scalar.Float, R, K, C tags.Dim](a *Fixed[E, R, K], b *Fixed[E, K, C]) *Fixed[E, R, C] {
	out := &Fixed[E, R, C]{basis: a.basis, layout: a.layout}
	rows, cols, inner := out.Rows(), out.Cols(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum E
			for k := 0; k < inner; k++ {
				sum += a.Get(i, k) * b.Get(k, j)
			}
			out.Set(i, j, sum)
		}
	}

	return out
}

// productNode is the lazy matrix-vector product used to fill the result
// vector; each element is one dot product.
type productNode[E scalar.Float] struct {
	m    Expr[E]
	v    vector.Expr[E]
	post bool // v·m instead of m·v
	sel  storage.Selector
}

func (n *productNode[E]) Size() int {
	if n.post {
		return n.m.Cols()
	}

	return n.m.Rows()
}

func (n *productNode[E]) Get(i int) E {
	var sum E
	if n.post {
		for k := 0; k < n.m.Rows(); k++ {
			sum += n.v.Get(k) * n.m.Get(k, i)
		}

		return sum
	}
	for k := 0; k < n.m.Cols(); k++ {
		sum += n.m.Get(i, k) * n.v.Get(k)
	}

	return sum
}

func (n *productNode[E]) SizeTag() tags.Size        { return n.sel.Size }
func (n *productNode[E]) Storage() storage.Selector { return n.sel }

// vectorProductSelector combines the proxies of the matrix and vector
// operands into the selector of a size-n result vector.
func vectorProductSelector(m, v storage.Selector, n int) storage.Selector {
	pm, pv := storage.Proxy(m), storage.Proxy(v)
	s := storage.Promote(pm.AsVector(n), pv)
	if s.Size == tags.Fixed {
		s.Count = n
	}

	return s
}

// MulVec returns the column-vector product m·v.
func MulVec[E scalar.Float](m Expr[E], v vector.Expr[E]) (vector.Writable[E], error) {
	if m == nil || v == nil {
		return nil, matrixErrorf(opMulVec, ErrNilExpr)
	}
	if err := sizecheck.CheckInnerSizeMatVec(m, v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	n := &productNode[E]{m: m, v: v, sel: vectorProductSelector(m.Storage(), v.Storage(), m.Rows())}

	return vector.Eval[E](n), nil
}

// VecMul returns the row-vector product v·m.
func VecMul[E scalar.Float](v vector.Expr[E], m Expr[E]) (vector.Writable[E], error) {
	if m == nil || v == nil {
		return nil, matrixErrorf(opVecMul, ErrNilExpr)
	}
	if err := sizecheck.CheckInnerSizeVecMat(v, m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	n := &productNode[E]{m: m, v: v, post: true, sel: vectorProductSelector(m.Storage(), v.Storage(), m.Cols())}

	return vector.Eval[E](n), nil
}

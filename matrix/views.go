// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// RowView is a lazy vector over row i of a matrix expression. It borrows
// the matrix.
type RowView[E scalar.Float] struct {
	m Expr[E]
	i int
}

// Row returns a view of row i of m.
func Row[E scalar.Float](m Expr[E], i int) *RowView[E] {
	if i < 0 || i >= m.Rows() {
		panic(fmt.Sprintf("matrix: row %d out of range [0, %d)", i, m.Rows()))
	}

	return &RowView[E]{m: m, i: i}
}

// Size returns the column count of the matrix.
func (v *RowView[E]) Size() int { return v.m.Cols() }

// Get returns matrix element (i, j).
func (v *RowView[E]) Get(j int) E { return v.m.Get(v.i, j) }

// SizeTag follows the matrix; an Either matrix yields a Dynamic row.
func (v *RowView[E]) SizeTag() tags.Size { return viewSizeTag(v.m.SizeTag()) }

// Storage returns the matrix selector reshaped to one row.
func (v *RowView[E]) Storage() storage.Selector { return v.m.Storage().AsVector(v.m.Cols()) }

// ColView is a lazy vector over column j of a matrix expression.
type ColView[E scalar.Float] struct {
	m Expr[E]
	j int
}

// Col returns a view of column j of m.
func Col[E scalar.Float](m Expr[E], j int) *ColView[E] {
	if j < 0 || j >= m.Cols() {
		panic(fmt.Sprintf("matrix: column %d out of range [0, %d)", j, m.Cols()))
	}

	return &ColView[E]{m: m, j: j}
}

// Size returns the row count of the matrix.
func (v *ColView[E]) Size() int { return v.m.Rows() }

// Get returns matrix element (i, j).
func (v *ColView[E]) Get(i int) E { return v.m.Get(i, v.j) }

// SizeTag follows the matrix; an Either matrix yields a Dynamic column.
func (v *ColView[E]) SizeTag() tags.Size { return viewSizeTag(v.m.SizeTag()) }

// Storage returns the matrix selector reshaped to one column.
func (v *ColView[E]) Storage() storage.Selector { return v.m.Storage().AsVector(v.m.Rows()) }

// viewSizeTag pins an Either-sized matrix (an outer product) to Dynamic:
// a row or column of it has a run-time length.
func viewSizeTag(s tags.Size) tags.Size {
	if s == tags.Either {
		return tags.Dynamic
	}

	return s
}

// BasisVector returns basis vector axis of m: column axis for column-basis
// matrices, row axis for row-basis ones. axis must be 0, 1 or 2
// (sizecheck.ErrInvalidAxis) and address an existing row or column.
func BasisVector[E scalar.Float](m Expr[E], axis int) (vector.Expr[E], error) {
	if m == nil {
		return nil, matrixErrorf("BasisVector", ErrNilExpr)
	}
	if err := sizecheck.CheckAxis(axis); err != nil {
		return nil, matrixErrorf("BasisVector", err)
	}
	if m.Basis() == tags.RowBasis {
		if axis >= m.Rows() {
			return nil, matrixErrorf("BasisVector", fmt.Errorf("row %d of %d: %w", axis, m.Rows(), sizecheck.ErrInvalidAxis))
		}

		return Row(m, axis), nil
	}
	if axis >= m.Cols() {
		return nil, matrixErrorf("BasisVector", fmt.Errorf("column %d of %d: %w", axis, m.Cols(), sizecheck.ErrInvalidAxis))
	}

	return Col(m, axis), nil
}

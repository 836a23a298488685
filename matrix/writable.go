// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// Shared element loops used by every writable container. Each validates
// before writing, so a failing call leaves dst untouched.

// shape is a bare extent pair used to check 2-D literals.
type shape struct{ r, c int }

func (s shape) Rows() int          { return s.r }
func (s shape) Cols() int          { return s.c }
func (s shape) SizeTag() tags.Size { return tags.Dynamic }

// shapeOfRows validates that rows is rectangular and returns its extents.
func shapeOfRows[E scalar.Float](rows [][]E) (shape, error) {
	s := shape{r: len(rows)}
	if s.r == 0 {
		return s, nil
	}
	s.c = len(rows[0])
	for i, row := range rows {
		if len(row) != s.c {
			return s, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), s.c, ErrRagged)
		}
	}

	return s, nil
}

// assignExpr copies src into dst after validating the shapes. An src that
// reorders elements is evaluated into a temporary first, so dst may appear
// anywhere inside it.
func assignExpr[E scalar.Float](tag string, dst Writable[E], src Expr[E]) error {
	if src == nil {
		return matrixErrorf(tag, ErrNilExpr)
	}
	if err := sizecheck.CheckSameShape(dst, src); err != nil {
		return matrixErrorf(tag, err)
	}
	if reorders(src) {
		src = Eval(src)
	}
	copyInto(dst, src)

	return nil
}

func copyInto[E scalar.Float](dst Writable[E], src Expr[E]) {
	for i := 0; i < dst.Rows(); i++ {
		for j := 0; j < dst.Cols(); j++ {
			dst.Set(i, j, src.Get(i, j))
		}
	}
}

// assignElements copies vals given in row order.
func assignElements[E scalar.Float](tag string, dst Writable[E], vals []E) error {
	if err := sizecheck.CheckSameLinearSize(dst, len(vals)); err != nil {
		return matrixErrorf(tag, err)
	}
	cols := dst.Cols()
	for k, v := range vals {
		dst.Set(k/cols, k%cols, v)
	}

	return nil
}

func assignRows[E scalar.Float](tag string, dst Writable[E], rows [][]E) error {
	s, err := shapeOfRows(rows)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	if err = sizecheck.CheckSameShape(dst, s); err != nil {
		return matrixErrorf(tag, err)
	}
	for i, row := range rows {
		for j, v := range row {
			dst.Set(i, j, v)
		}
	}

	return nil
}

func fill[E scalar.Float](dst Writable[E], v E) {
	for i := 0; i < dst.Rows(); i++ {
		for j := 0; j < dst.Cols(); j++ {
			dst.Set(i, j, v)
		}
	}
}

// identity sets the main diagonal to 1 and everything else to 0.
func identity[E scalar.Float](dst Writable[E]) {
	fill(dst, 0)
	for k := 0; k < dst.Rows() && k < dst.Cols(); k++ {
		dst.Set(k, k, 1)
	}
}

func randomize[E scalar.Float](dst Writable[E], r *rand.Rand, lo, hi E) {
	for i := 0; i < dst.Rows(); i++ {
		for j := 0; j < dst.Cols(); j++ {
			dst.Set(i, j, scalar.Random(r, lo, hi))
		}
	}
}

func setRow[E scalar.Float](tag string, dst Writable[E], i int, v vector.Expr[E]) error {
	if v == nil {
		return matrixErrorf(tag, ErrNilExpr)
	}
	if err := sizecheck.CheckSameColSize(dst, v); err != nil {
		return matrixErrorf(tag, err)
	}
	for j := 0; j < dst.Cols(); j++ {
		dst.Set(i, j, v.Get(j))
	}

	return nil
}

func setCol[E scalar.Float](tag string, dst Writable[E], j int, v vector.Expr[E]) error {
	if v == nil {
		return matrixErrorf(tag, ErrNilExpr)
	}
	if err := sizecheck.CheckSameRowSize(dst, v); err != nil {
		return matrixErrorf(tag, err)
	}
	for i := 0; i < dst.Rows(); i++ {
		dst.Set(i, j, v.Get(i))
	}

	return nil
}

// basisIndex maps basis-element (i, j), element j of basis vector i, to a
// matrix index. Column-basis vectors are columns; row-basis vectors are rows.
func basisIndex(b tags.Basis, i, j int) (row, col int) {
	if b == tags.RowBasis {
		return i, j
	}

	return j, i
}

// transposeSquare transposes dst in place.
func transposeSquare[E scalar.Float](dst Writable[E]) {
	n := dst.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := dst.Get(i, j), dst.Get(j, i)
			dst.Set(i, j, b)
			dst.Set(j, i, a)
		}
	}
}

// checkIndex fails with ErrOutOfRange when (i, j) lies outside m.
func checkIndex[E scalar.Float](tag string, m Expr[E], i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrixErrorf(tag, fmt.Errorf("(%d, %d) of %dx%d: %w", i, j, m.Rows(), m.Cols(), ErrOutOfRange))
	}

	return nil
}

func at[E scalar.Float](tag string, m Expr[E], i, j int) (E, error) {
	if err := checkIndex(tag, m, i, j); err != nil {
		var zero E

		return zero, err
	}

	return m.Get(i, j), nil
}

func setAt[E scalar.Float](tag string, m Writable[E], i, j int, v E) error {
	if err := checkIndex[E](tag, m, i, j); err != nil {
		return err
	}
	m.Set(i, j, v)

	return nil
}

// requireSquare rejects non-square input regardless of sizecheck.Enabled:
// the kernels have no meaning for it.
func requireSquare[E scalar.Float](tag string, m Expr[E]) error {
	if m.Rows() != m.Cols() {
		return matrixErrorf(tag, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), sizecheck.ErrNonSquare))
	}

	return nil
}

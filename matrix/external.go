// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// External is a matrix view over caller-owned memory laid out according to
// its layout tag. It never allocates or frees; Assign writes through.
type External[E scalar.Float] struct {
	data       []E
	rows, cols int
	fixed      bool
	basis      tags.Basis
	layout     tags.Layout
}

// NewExternal returns a dynamically tagged rows×cols view over data, which
// must hold at least rows*cols elements (sizecheck.ErrMinimumSize).
func NewExternal[E scalar.Float](rows, cols int, data []E, opts ...Option) (*External[E], error) {
	if err := sizecheck.CheckDimensions(rows, cols); err != nil {
		return nil, matrixErrorf("NewExternal", err)
	}
	if len(data) < rows*cols {
		return nil, matrixErrorf("NewExternal",
			fmt.Errorf("%d < %dx%d: %w", len(data), rows, cols, sizecheck.ErrMinimumSize))
	}
	o := gatherOptions(opts)
	n := rows * cols

	return &External[E]{data: data[:n:n], rows: rows, cols: cols, basis: o.basis, layout: o.layout}, nil
}

// NewFixedExternal returns a Fixed-tagged R×C view over data.
func NewFixedExternal[R, C tags.Dim, E scalar.Float](data []E, opts ...Option) (*External[E], error) {
	m, err := NewExternal(tags.DimOf[R](), tags.DimOf[C](), data, opts...)
	if err != nil {
		return nil, err
	}
	m.fixed = true

	return m, nil
}

// Rows returns the row count.
func (m *External[E]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *External[E]) Cols() int { return m.cols }

func (m *External[E]) offset(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range %dx%d", i, j, m.rows, m.cols))
	}

	return m.layout.Offset(i, j, m.rows, m.cols)
}

// Get returns element (i, j).
func (m *External[E]) Get(i, j int) E { return m.data[m.offset(i, j)] }

// Set writes element (i, j) through to the referenced memory.
func (m *External[E]) Set(i, j int, v E) { m.data[m.offset(i, j)] = v }

// At returns element (i, j), or ErrOutOfRange when the index lies outside
// the matrix.
func (m *External[E]) At(i, j int) (E, error) { return at[E]("External.At", m, i, j) }

// SetAt writes element (i, j), or fails with ErrOutOfRange and leaves m
// unchanged when the index lies outside the matrix.
func (m *External[E]) SetAt(i, j int, v E) error { return setAt[E]("External.SetAt", m, i, j, v) }

// SizeTag returns tags.Fixed for NewFixedExternal views, tags.Dynamic otherwise.
func (m *External[E]) SizeTag() tags.Size {
	if m.fixed {
		return tags.Fixed
	}

	return tags.Dynamic
}

// Basis returns the basis tag.
func (m *External[E]) Basis() tags.Basis { return m.basis }

// Layout returns the layout tag.
func (m *External[E]) Layout() tags.Layout { return m.layout }

// Storage returns an external selector.
func (m *External[E]) Storage() storage.Selector {
	if m.fixed {
		return storage.ExternalMatrix(m.rows, m.cols)
	}

	return storage.ExternalMatrix(storage.Unknown, storage.Unknown)
}

// Data returns the referenced slice.
func (m *External[E]) Data() []E { return m.data }

// Assign writes src through to the referenced memory. Shapes must match.
func (m *External[E]) Assign(src Expr[E]) error { return assignExpr[E]("External.Assign", m, src) }

// AssignElements writes values given in row order.
func (m *External[E]) AssignElements(vals ...E) error {
	return assignElements[E]("External.AssignElements", m, vals)
}

// AssignRows writes a 2-D literal interpreted row by row.
func (m *External[E]) AssignRows(rows [][]E) error {
	return assignRows[E]("External.AssignRows", m, rows)
}

// Zero sets every element to 0.
func (m *External[E]) Zero() { fill[E](m, 0) }

// Fill sets every element to v.
func (m *External[E]) Fill(v E) { fill[E](m, v) }

// Identity sets m to the identity (ones on the main diagonal).
func (m *External[E]) Identity() { identity[E](m) }

// Random fills m with values drawn from [lo, hi).
func (m *External[E]) Random(r *rand.Rand, lo, hi E) { randomize[E](m, r, lo, hi) }

// SetRow copies v into row i.
func (m *External[E]) SetRow(i int, v vector.Expr[E]) error {
	return setRow[E]("External.SetRow", m, i, v)
}

// SetCol copies v into column j.
func (m *External[E]) SetCol(j int, v vector.Expr[E]) error {
	return setCol[E]("External.SetCol", m, j, v)
}

// Row returns a view of row i.
func (m *External[E]) Row(i int) *RowView[E] { return Row[E](m, i) }

// Col returns a view of column j.
func (m *External[E]) Col(j int) *ColView[E] { return Col[E](m, j) }

// BasisElement returns element j of basis vector i.
func (m *External[E]) BasisElement(i, j int) E {
	r, c := basisIndex(m.basis, i, j)

	return m.Get(r, c)
}

// SetBasisElement writes element j of basis vector i.
func (m *External[E]) SetBasisElement(i, j int, v E) {
	r, c := basisIndex(m.basis, i, j)
	m.Set(r, c, v)
}

// Transpose transposes m in place. A non-square view is reinterpreted as
// cols×rows over the same memory.
func (m *External[E]) Transpose() error {
	if m.rows == m.cols {
		transposeSquare[E](m)

		return nil
	}
	t := Eval[E](Transpose[E](m))
	m.rows, m.cols = m.cols, m.rows
	copyInto[E](m, t)

	return nil
}

// Inverse replaces the referenced elements by the inverse.
func (m *External[E]) Inverse(opts ...Option) error {
	return invertInPlace[E]("External.Inverse", m, gatherOptions(opts))
}

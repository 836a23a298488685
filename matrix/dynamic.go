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

// Dynamic is a heap matrix sized at run time. The zero value is an empty
// 0×0 matrix with the default tags and allocator.
type Dynamic[E scalar.Float] struct {
	heap       *storage.Heap[E]
	rows, cols int
	basis      tags.Basis
	layout     tags.Layout
}

// NewDynamic returns a zeroed rows×cols matrix.
func NewDynamic[E scalar.Float](rows, cols int, opts ...Option) (*Dynamic[E], error) {
	if err := sizecheck.CheckDimensions(rows, cols); err != nil {
		return nil, matrixErrorf("NewDynamic", err)
	}
	o := gatherOptions(opts)
	alloc, err := allocatorOf[E](o)
	if err != nil {
		return nil, matrixErrorf("NewDynamic", err)
	}

	return &Dynamic[E]{
		heap:   storage.NewHeap(rows*cols, alloc),
		rows:   rows,
		cols:   cols,
		basis:  o.basis,
		layout: o.layout,
	}, nil
}

// FromRows returns a matrix holding a 2-D literal read row by row,
// independent of the layout chosen with WithLayout.
func FromRows[E scalar.Float](rows [][]E, opts ...Option) (*Dynamic[E], error) {
	s, err := shapeOfRows(rows)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	m, err := NewDynamic[E](s.r, s.c, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}

	return m, nil
}

// FromSlice returns a rows×cols matrix holding a copy of data, which is read
// in the layout of the new matrix.
func FromSlice[E scalar.Float](rows, cols int, data []E, opts ...Option) (*Dynamic[E], error) {
	m, err := NewDynamic[E](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = sizecheck.CheckSameLinearSize(m, len(data)); err != nil {
		return nil, matrixErrorf("FromSlice", err)
	}
	copy(m.heap.Data(), data)

	return m, nil
}

// Identity returns the n×n identity.
func Identity[E scalar.Float](n int, opts ...Option) (*Dynamic[E], error) {
	m, err := NewDynamic[E](n, n, opts...)
	if err != nil {
		return nil, err
	}
	identity[E](m)

	return m, nil
}

func (m *Dynamic[E]) buf() *storage.Heap[E] {
	if m.heap == nil {
		m.heap = storage.NewHeap[E](0, nil)
	}

	return m.heap
}

// Rows returns the row count.
func (m *Dynamic[E]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dynamic[E]) Cols() int { return m.cols }

func (m *Dynamic[E]) offset(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range %dx%d", i, j, m.rows, m.cols))
	}

	return m.layout.Offset(i, j, m.rows, m.cols)
}

// Get returns element (i, j).
func (m *Dynamic[E]) Get(i, j int) E { return m.buf().Data()[m.offset(i, j)] }

// Set writes element (i, j).
func (m *Dynamic[E]) Set(i, j int, v E) { m.buf().Data()[m.offset(i, j)] = v }

// At returns element (i, j), or ErrOutOfRange when the index lies outside
// the matrix.
func (m *Dynamic[E]) At(i, j int) (E, error) { return at[E]("Dynamic.At", m, i, j) }

// SetAt writes element (i, j), or fails with ErrOutOfRange and leaves m
// unchanged when the index lies outside the matrix.
func (m *Dynamic[E]) SetAt(i, j int, v E) error { return setAt[E]("Dynamic.SetAt", m, i, j, v) }

// SizeTag returns tags.Dynamic.
func (m *Dynamic[E]) SizeTag() tags.Size { return tags.Dynamic }

// Basis returns the basis tag.
func (m *Dynamic[E]) Basis() tags.Basis { return m.basis }

// Layout returns the layout tag.
func (m *Dynamic[E]) Layout() tags.Layout { return m.layout }

// Storage returns a heap selector carrying the matrix allocator.
func (m *Dynamic[E]) Storage() storage.Selector { return storage.HeapMatrix(m.buf().Allocator()) }

// Data returns the backing slice in layout order.
func (m *Dynamic[E]) Data() []E { return m.buf().Data() }

// Resize changes the shape to rows×cols, preserving the elements of the
// overlapping leading block.
//
// Complexity: O(rows*cols).
func (m *Dynamic[E]) Resize(rows, cols int) error {
	if err := sizecheck.CheckDimensions(rows, cols); err != nil {
		return matrixErrorf("Dynamic.Resize", err)
	}
	if rows == m.rows && cols == m.cols {
		return nil
	}
	h := m.buf()
	next := storage.NewHeap(rows*cols, h.Allocator())
	for i := 0; i < rows && i < m.rows; i++ {
		for j := 0; j < cols && j < m.cols; j++ {
			next.Data()[m.layout.Offset(i, j, rows, cols)] = h.Data()[m.offset(i, j)]
		}
	}
	h.Release()
	m.heap, m.rows, m.cols = next, rows, cols

	return nil
}

// ResizeFast changes the shape to rows×cols without preserving contents.
func (m *Dynamic[E]) ResizeFast(rows, cols int) error {
	if err := sizecheck.CheckDimensions(rows, cols); err != nil {
		return matrixErrorf("Dynamic.ResizeFast", err)
	}
	m.buf().ResizeFast(rows * cols)
	m.rows, m.cols = rows, cols

	return nil
}

// Assign copies src into m.
//
// Behavior highlights:
//   - An empty m adopts the shape of src before the copy.
//   - A failed Assign leaves m unchanged.
//   - src may read m itself; expressions that reorder elements (Transpose,
//     Outer, or nodes built over them) are materialized first.
//
// Errors:
//   - ErrNilExpr (src is nil).
//   - sizecheck.ErrIncompatibleSize (shapes differ and m is not empty).
//
// Complexity:
//   - Time O(r*c). Space O(r*c) only when src reorders elements.
func (m *Dynamic[E]) Assign(src Expr[E]) error {
	if src != nil && m.rows*m.cols == 0 {
		_ = m.ResizeFast(src.Rows(), src.Cols())
	}

	return assignExpr[E]("Dynamic.Assign", m, src)
}

// AssignElements copies values given in row order.
func (m *Dynamic[E]) AssignElements(vals ...E) error {
	return assignElements[E]("Dynamic.AssignElements", m, vals)
}

// AssignRows copies a 2-D literal interpreted row by row. An empty m adopts
// the literal's shape.
func (m *Dynamic[E]) AssignRows(rows [][]E) error {
	if m.rows*m.cols == 0 {
		s, err := shapeOfRows(rows)
		if err != nil {
			return matrixErrorf("Dynamic.AssignRows", err)
		}
		_ = m.ResizeFast(s.r, s.c)
	}

	return assignRows[E]("Dynamic.AssignRows", m, rows)
}

// Zero sets every element to 0.
func (m *Dynamic[E]) Zero() { fill[E](m, 0) }

// Fill sets every element to v.
func (m *Dynamic[E]) Fill(v E) { fill[E](m, v) }

// Identity sets m to the identity (ones on the main diagonal).
func (m *Dynamic[E]) Identity() { identity[E](m) }

// Random fills m with values drawn from [lo, hi).
func (m *Dynamic[E]) Random(r *rand.Rand, lo, hi E) { randomize[E](m, r, lo, hi) }

// SetRow copies v into row i.
func (m *Dynamic[E]) SetRow(i int, v vector.Expr[E]) error {
	return setRow[E]("Dynamic.SetRow", m, i, v)
}

// SetCol copies v into column j.
func (m *Dynamic[E]) SetCol(j int, v vector.Expr[E]) error {
	return setCol[E]("Dynamic.SetCol", m, j, v)
}

// Row returns a view of row i.
func (m *Dynamic[E]) Row(i int) *RowView[E] { return Row[E](m, i) }

// Col returns a view of column j.
func (m *Dynamic[E]) Col(j int) *ColView[E] { return Col[E](m, j) }

// BasisElement returns element j of basis vector i.
func (m *Dynamic[E]) BasisElement(i, j int) E {
	r, c := basisIndex(m.basis, i, j)

	return m.Get(r, c)
}

// SetBasisElement writes element j of basis vector i.
func (m *Dynamic[E]) SetBasisElement(i, j int, v E) {
	r, c := basisIndex(m.basis, i, j)
	m.Set(r, c, v)
}

// Transpose transposes m in place; a rows×cols matrix becomes cols×rows.
func (m *Dynamic[E]) Transpose() error {
	if m.rows == m.cols {
		transposeSquare[E](m)

		return nil
	}
	t := Eval[E](Transpose[E](m))
	m.rows, m.cols = m.cols, m.rows
	copyInto[E](m, t)

	return nil
}

// Inverse replaces m by its inverse. Non-square matrices fail with
// sizecheck.ErrNonSquare and are left unchanged.
func (m *Dynamic[E]) Inverse(opts ...Option) error {
	return invertInPlace[E]("Dynamic.Inverse", m, gatherOptions(opts))
}

// Clone returns a deep copy drawn from the same allocator.
func (m *Dynamic[E]) Clone() *Dynamic[E] {
	c := *m
	c.heap = m.buf().Clone()

	return &c
}

// Release returns the buffer to its allocator and leaves m empty.
func (m *Dynamic[E]) Release() {
	m.buf().Release()
	m.rows, m.cols = 0, 0
}

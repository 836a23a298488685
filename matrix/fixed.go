// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// Fixed is an inline R×C matrix. The zero value is the zero matrix with
// DefaultBasis and DefaultLayout.
type Fixed[E scalar.Float, R, C tags.Dim] struct {
	data   [tags.MaxFixedElems]E
	basis  tags.Basis
	layout tags.Layout
}

// New22 returns the 2×2 matrix with the given elements in row order.
func New22[E scalar.Float](m00, m01, m10, m11 E) *Fixed[E, tags.D2, tags.D2] {
	m := &Fixed[E, tags.D2, tags.D2]{}
	m.setRowOrder(m00, m01, m10, m11)

	return m
}

// New33 returns the 3×3 matrix with the given elements in row order.
func New33[E scalar.Float](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 E,
) *Fixed[E, tags.D3, tags.D3] {
	m := &Fixed[E, tags.D3, tags.D3]{}
	m.setRowOrder(m00, m01, m02, m10, m11, m12, m20, m21, m22)

	return m
}

// New44 returns the 4×4 matrix with the given elements in row order.
func New44[E scalar.Float](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 E,
) *Fixed[E, tags.D4, tags.D4] {
	m := &Fixed[E, tags.D4, tags.D4]{}
	m.setRowOrder(
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	)

	return m
}

// setRowOrder writes exactly R*C values given in row order.
func (m *Fixed[E, R, C]) setRowOrder(vals ...E) {
	cols := m.Cols()
	for k, v := range vals {
		m.Set(k/cols, k%cols, v)
	}
}

// NewFixed returns an R×C matrix holding rows (nil rows gives the zero
// matrix). rows must be R×C.
//
//	m, err := matrix.NewFixed[tags.D2, tags.D3]([][]float64{{1, 2, 3}, {4, 5, 6}})
func NewFixed[R, C tags.Dim, E scalar.Float](rows [][]E, opts ...Option) (*Fixed[E, R, C], error) {
	r, c := tags.DimOf[R](), tags.DimOf[C]()
	if r*c > tags.MaxFixedElems {
		return nil, matrixErrorf("NewFixed", fmt.Errorf("%dx%d: %w", r, c, ErrCapacity))
	}
	o := gatherOptions(opts)
	m := &Fixed[E, R, C]{basis: o.basis, layout: o.layout}
	if rows == nil {
		return m, nil
	}
	if err := m.AssignRows(rows); err != nil {
		return nil, matrixErrorf("NewFixed", err)
	}

	return m, nil
}

// Rows returns R.
func (m *Fixed[E, R, C]) Rows() int { return tags.DimOf[R]() }

// Cols returns C.
func (m *Fixed[E, R, C]) Cols() int { return tags.DimOf[C]() }

func (m *Fixed[E, R, C]) offset(i, j int) int {
	r, c := m.Rows(), m.Cols()
	if i < 0 || i >= r || j < 0 || j >= c {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range %dx%d", i, j, r, c))
	}

	return m.layout.Offset(i, j, r, c)
}

// Get returns element (i, j).
func (m *Fixed[E, R, C]) Get(i, j int) E { return m.data[m.offset(i, j)] }

// Set writes element (i, j).
func (m *Fixed[E, R, C]) Set(i, j int, v E) { m.data[m.offset(i, j)] = v }

// At returns element (i, j), or ErrOutOfRange when the index lies outside
// the matrix.
func (m *Fixed[E, R, C]) At(i, j int) (E, error) { return at[E]("Fixed.At", m, i, j) }

// SetAt writes element (i, j), or fails with ErrOutOfRange and leaves m
// unchanged when the index lies outside the matrix.
func (m *Fixed[E, R, C]) SetAt(i, j int, v E) error { return setAt[E]("Fixed.SetAt", m, i, j, v) }

// SizeTag returns tags.Fixed.
func (m *Fixed[E, R, C]) SizeTag() tags.Size { return tags.Fixed }

// Basis returns the basis tag.
func (m *Fixed[E, R, C]) Basis() tags.Basis { return m.basis }

// Layout returns the layout tag.
func (m *Fixed[E, R, C]) Layout() tags.Layout { return m.layout }

// Storage returns an inline R×C selector.
func (m *Fixed[E, R, C]) Storage() storage.Selector { return storage.InlineMatrix(m.Rows(), m.Cols()) }

// Data returns the elements in layout order, aliasing the inline buffer.
func (m *Fixed[E, R, C]) Data() []E { return m.data[:m.Rows()*m.Cols()] }

// Assign copies src into m.
func (m *Fixed[E, R, C]) Assign(src Expr[E]) error { return assignExpr[E]("Fixed.Assign", m, src) }

// AssignElements copies R*C values given in row order.
func (m *Fixed[E, R, C]) AssignElements(vals ...E) error {
	return assignElements[E]("Fixed.AssignElements", m, vals)
}

// AssignRows copies a 2-D literal interpreted row by row.
func (m *Fixed[E, R, C]) AssignRows(rows [][]E) error {
	return assignRows[E]("Fixed.AssignRows", m, rows)
}

// Zero sets every element to 0.
func (m *Fixed[E, R, C]) Zero() { fill[E](m, 0) }

// Fill sets every element to v.
func (m *Fixed[E, R, C]) Fill(v E) { fill[E](m, v) }

// Identity sets m to the identity (ones on the main diagonal).
func (m *Fixed[E, R, C]) Identity() { identity[E](m) }

// Random fills m with values drawn from [lo, hi).
func (m *Fixed[E, R, C]) Random(r *rand.Rand, lo, hi E) { randomize[E](m, r, lo, hi) }

// SetRow copies v into row i.
func (m *Fixed[E, R, C]) SetRow(i int, v vector.Expr[E]) error {
	return setRow[E]("Fixed.SetRow", m, i, v)
}

// SetCol copies v into column j.
func (m *Fixed[E, R, C]) SetCol(j int, v vector.Expr[E]) error {
	return setCol[E]("Fixed.SetCol", m, j, v)
}

// Row returns a view of row i.
func (m *Fixed[E, R, C]) Row(i int) *RowView[E] { return Row[E](m, i) }

// Col returns a view of column j.
func (m *Fixed[E, R, C]) Col(j int) *ColView[E] { return Col[E](m, j) }

// BasisElement returns element j of basis vector i.
func (m *Fixed[E, R, C]) BasisElement(i, j int) E {
	r, c := basisIndex(m.basis, i, j)

	return m.Get(r, c)
}

// SetBasisElement writes element j of basis vector i.
func (m *Fixed[E, R, C]) SetBasisElement(i, j int, v E) {
	r, c := basisIndex(m.basis, i, j)
	m.Set(r, c, v)
}

// Transpose transposes m in place. A fixed matrix cannot change its type,
// so only square matrices are accepted.
func (m *Fixed[E, R, C]) Transpose() error {
	if err := requireSquare[E]("Fixed.Transpose", m); err != nil {
		return err
	}
	transposeSquare[E](m)

	return nil
}

// Inverse replaces m by its inverse. Non-square matrices fail with
// sizecheck.ErrNonSquare and are left unchanged.
func (m *Fixed[E, R, C]) Inverse(opts ...Option) error {
	return invertInPlace[E]("Fixed.Inverse", m, gatherOptions(opts))
}

// Clone returns an independent copy.
func (m *Fixed[E, R, C]) Clone() *Fixed[E, R, C] {
	c := *m

	return &c
}

// SPDX-License-Identifier: MIT

// Package matrix provides fixed, dynamic and external dense matrices, lazy
// matrix expressions and the numeric kernels built on them.
//
// Purpose:
//   - Fixed[E, R, C]: inline R×C storage; R and C are tags.Dim types, so
//     MulFixed and InverseFixed reject mismatched extents at compile time.
//   - Dynamic[E]: heap storage sized at run time.
//   - External[E]: a view over caller-owned memory; never allocates.
//   - Lazy nodes (BinaryNode, ScalarNode, UnaryNode, OuterNode, TransposeNode)
//     whose shape and tags are computed once, when the node is built.
//   - Kernels: Determinant, Transpose, Inverse (closed form for 2×2, 3×3 and
//     4×4, full-pivot Gauss–Jordan otherwise), LU and LUPivot with solvers.
//
// Tags:
//   - Basis says whether the matrix is made of column vectors (ColBasis,
//     the default) or row vectors (RowBasis). It drives BasisElement and
//     BasisVector.
//   - Layout is the physical element order (RowMajor by default). It drives
//     Data and FromSlice.
//   - Combining two different concrete basis (or layout) tags in one node
//     fails with tags.ErrTagConflict.
//
// Errors:
//   - Shape violations with a dynamic operand are reported with sizecheck
//     sentinels before any element is computed or any destination written.
//   - Inverse, Determinant and Trace reject non-square input with
//     sizecheck.ErrNonSquare even when size checks are compiled out.
//   - Singular input to Inverse is not detected: the result holds
//     non-finite values.
//   - Get and Set panic on indices outside the matrix; the checked At and
//     SetAt accessors report ErrOutOfRange instead.
package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// Expr is a read-only matrix expression: a container or a node.
type Expr[E scalar.Float] interface {
	Rows() int
	Cols() int
	// Get returns element (i, j) independent of the layout.
	Get(i, j int) E
	SizeTag() tags.Size
	Basis() tags.Basis
	Layout() tags.Layout
	Storage() storage.Selector
}

// Writable is a matrix whose elements can be set.
type Writable[E scalar.Float] interface {
	Expr[E]
	Set(i, j int, v E)
}

// Ownership reports how a node holds one of its operands.
type Ownership uint8

const (
	// Borrowed operands are referenced; the node observes later writes.
	Borrowed Ownership = iota
	// Owned operands are held by value and private to the node.
	Owned
)

// String implements fmt.Stringer.
func (o Ownership) String() string {
	if o == Owned {
		return "owned"
	}

	return "borrowed"
}

// temporary marks nodes and Own copies.
type temporary interface {
	temporary()
}

func ownershipOf[E scalar.Float](x Expr[E]) Ownership {
	if _, ok := x.(temporary); ok {
		return Owned
	}

	return Borrowed
}

// reordering is implemented by every node. reorders reports whether element
// (i, j) of the node, or of any node beneath it, reads operand elements other
// than (i, j). Assigning such an expression into one of its own operands must
// go through a temporary.
type reordering interface {
	reorders() bool
}

// reorders reports whether m is a node that reorders elements.
func reorders[E scalar.Float](m Expr[E]) bool {
	r, ok := m.(reordering)

	return ok && r.reorders()
}

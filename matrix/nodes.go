// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// ---------- BinaryNode ----------

// BinaryNode is the lazy element-wise sum or difference of two matrices.
type BinaryNode[E scalar.Float] struct {
	left, right Expr[E]
	op          vector.Op
	rows, cols  int
	size        tags.Size
	basis       tags.Basis
	layout      tags.Layout
	sel         storage.Selector
}

// newBinary validates the operands and computes the node tags.
//
// Implementation:
//   - Stage 1: reject nil operands and mismatched shapes.
//   - Stage 2: promote size, basis and layout; differing concrete basis or
//     layout tags fail with tags.ErrTagConflict.
//   - Stage 3: promote the storage selectors.
func newBinary[E scalar.Float](tag string, op vector.Op, a, b Expr[E]) (*BinaryNode[E], error) {
	// Stage 1: operands
	if a == nil || b == nil {
		return nil, matrixErrorf(tag, ErrNilExpr)
	}
	if err := sizecheck.CheckSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Stage 2: tags
	basis, err := tags.PromoteBasis(a.Basis(), b.Basis())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	layout, err := tags.PromoteLayout(a.Layout(), b.Layout())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Stage 3: storage
	return &BinaryNode[E]{
		left:   a,
		right:  b,
		op:     op,
		rows:   a.Rows(),
		cols:   a.Cols(),
		size:   tags.PromoteSize(a.SizeTag(), b.SizeTag()),
		basis:  basis,
		layout: layout,
		sel:    storage.Promote(a.Storage(), b.Storage()),
	}, nil
}

// Add returns the lazy sum a + b.
func Add[E scalar.Float](a, b Expr[E]) (*BinaryNode[E], error) {
	return newBinary(opAdd, vector.OpAdd, a, b)
}

// Sub returns the lazy difference a - b.
func Sub[E scalar.Float](a, b Expr[E]) (*BinaryNode[E], error) {
	return newBinary(opSub, vector.OpSub, a, b)
}

// AddFixed is Add for two fixed matrices of the same type-level shape. The
// shapes cannot disagree; the only possible failure is a tag conflict.
func AddFixed[E scalar.Float, R, C tags.Dim](a, b *Fixed[E, R, C]) (*BinaryNode[E], error) {
	return newBinary[E](opAdd, vector.OpAdd, a, b)
}

// Rows returns the common row count.
func (n *BinaryNode[E]) Rows() int { return n.rows }

// Cols returns the common column count.
func (n *BinaryNode[E]) Cols() int { return n.cols }

// SizeTag returns the promoted size tag.
func (n *BinaryNode[E]) SizeTag() tags.Size { return n.size }

// Basis returns the promoted basis.
func (n *BinaryNode[E]) Basis() tags.Basis { return n.basis }

// Layout returns the promoted layout.
func (n *BinaryNode[E]) Layout() tags.Layout { return n.layout }

// Storage returns the promoted storage selector.
func (n *BinaryNode[E]) Storage() storage.Selector { return n.sel }

func (n *BinaryNode[E]) temporary()     {}
func (n *BinaryNode[E]) reorders() bool { return reorders(n.left) || reorders(n.right) }

// Get returns op(left(i, j), right(i, j)).
func (n *BinaryNode[E]) Get(i, j int) E {
	return vector.Apply(n.op, n.left.Get(i, j), n.right.Get(i, j))
}

// Ownership reports how each operand is held.
func (n *BinaryNode[E]) Ownership() (left, right Ownership) {
	return ownershipOf(n.left), ownershipOf(n.right)
}

// ---------- ScalarNode ----------

// ScalarNode combines every element with a scalar.
type ScalarNode[E scalar.Float] struct {
	sub Expr[E]
	s   E
	op  vector.Op
}

// Scale returns the lazy product m * s. A nil m panics.
func Scale[E scalar.Float](m Expr[E], s E) *ScalarNode[E] {
	mustExpr(m)

	return &ScalarNode[E]{sub: m, s: s, op: vector.OpMul}
}

// Div returns the lazy quotient m / s.
func Div[E scalar.Float](m Expr[E], s E) *ScalarNode[E] {
	mustExpr(m)

	return &ScalarNode[E]{sub: m, s: s, op: vector.OpDiv}
}

// Rows returns the operand row count.
func (n *ScalarNode[E]) Rows() int { return n.sub.Rows() }

// Cols returns the operand column count.
func (n *ScalarNode[E]) Cols() int { return n.sub.Cols() }

// Get returns op(m(i, j), s).
func (n *ScalarNode[E]) Get(i, j int) E { return vector.Apply(n.op, n.sub.Get(i, j), n.s) }

// SizeTag returns the operand size tag.
func (n *ScalarNode[E]) SizeTag() tags.Size { return n.sub.SizeTag() }

// Basis returns the operand basis.
func (n *ScalarNode[E]) Basis() tags.Basis { return n.sub.Basis() }

// Layout returns the operand layout.
func (n *ScalarNode[E]) Layout() tags.Layout { return n.sub.Layout() }

// Storage returns the operand storage selector.
func (n *ScalarNode[E]) Storage() storage.Selector { return n.sub.Storage() }

// Ownership reports how the operand is held.
func (n *ScalarNode[E]) Ownership() Ownership { return ownershipOf(n.sub) }

func (n *ScalarNode[E]) temporary()     {}
func (n *ScalarNode[E]) reorders() bool { return reorders(n.sub) }

// ---------- UnaryNode ----------

// UnaryNode is the lazy negation of a matrix.
type UnaryNode[E scalar.Float] struct {
	sub Expr[E]
}

// Negate returns the lazy negation -m.
func Negate[E scalar.Float](m Expr[E]) *UnaryNode[E] {
	mustExpr(m)

	return &UnaryNode[E]{sub: m}
}

// Rows returns the operand row count.
func (n *UnaryNode[E]) Rows() int { return n.sub.Rows() }

// Cols returns the operand column count.
func (n *UnaryNode[E]) Cols() int { return n.sub.Cols() }

// Get returns -m(i, j).
func (n *UnaryNode[E]) Get(i, j int) E { return -n.sub.Get(i, j) }

// SizeTag returns the operand size tag.
func (n *UnaryNode[E]) SizeTag() tags.Size { return n.sub.SizeTag() }

// Basis returns the operand basis.
func (n *UnaryNode[E]) Basis() tags.Basis { return n.sub.Basis() }

// Layout returns the operand layout.
func (n *UnaryNode[E]) Layout() tags.Layout { return n.sub.Layout() }

// Storage returns the operand storage selector.
func (n *UnaryNode[E]) Storage() storage.Selector { return n.sub.Storage() }

// Ownership reports how the operand is held.
func (n *UnaryNode[E]) Ownership() Ownership { return ownershipOf(n.sub) }

func (n *UnaryNode[E]) temporary()     {}
func (n *UnaryNode[E]) reorders() bool { return reorders(n.sub) }

// ---------- OuterNode ----------

// OuterNode is the lazy outer product u vᵀ of two vectors. Its size tag is
// Either and its basis and layout are wildcards: the product of two
// vectors pins none of them.
type OuterNode[E scalar.Float] struct {
	u, v vector.Expr[E]
	sel  storage.Selector
}

// Outer returns the lazy outer product of u (rows) and v (columns). The
// vectors may differ in length; no size check runs.
func Outer[E scalar.Float](u, v vector.Expr[E]) *OuterNode[E] {
	if u == nil || v == nil {
		panic(ErrNilExpr)
	}

	return &OuterNode[E]{u: u, v: v, sel: storage.OuterPromote(u.Storage(), v.Storage())}
}

// Rows returns the length of u.
func (n *OuterNode[E]) Rows() int { return n.u.Size() }

// Cols returns the length of v.
func (n *OuterNode[E]) Cols() int { return n.v.Size() }

// Get returns u[i] * v[j].
func (n *OuterNode[E]) Get(i, j int) E { return n.u.Get(i) * n.v.Get(j) }

// SizeTag returns tags.Either.
func (n *OuterNode[E]) SizeTag() tags.Size { return tags.Either }

// Basis returns tags.EitherBasis.
func (n *OuterNode[E]) Basis() tags.Basis { return tags.EitherBasis }

// Layout returns tags.EitherLayout.
func (n *OuterNode[E]) Layout() tags.Layout { return tags.EitherLayout }

// Storage returns the selector chosen by storage.OuterPromote.
func (n *OuterNode[E]) Storage() storage.Selector { return n.sel }

func (n *OuterNode[E]) temporary()     {}
func (n *OuterNode[E]) reorders() bool { return true }

// ---------- TransposeNode ----------

// TransposeNode is the lazy transpose of a matrix. Element (i, j) reads
// element (j, i) of the operand. The node owns no storage, so its layout is
// the EitherLayout wildcard and it combines with operands of any layout.
type TransposeNode[E scalar.Float] struct {
	sub Expr[E]
}

// Transpose returns the lazy transpose of m.
func Transpose[E scalar.Float](m Expr[E]) *TransposeNode[E] {
	mustExpr(m)

	return &TransposeNode[E]{sub: m}
}

// Rows returns the operand column count.
func (n *TransposeNode[E]) Rows() int { return n.sub.Cols() }

// Cols returns the operand row count.
func (n *TransposeNode[E]) Cols() int { return n.sub.Rows() }

// Get returns operand element (j, i).
func (n *TransposeNode[E]) Get(i, j int) E { return n.sub.Get(j, i) }

// SizeTag returns the operand size tag.
func (n *TransposeNode[E]) SizeTag() tags.Size { return n.sub.SizeTag() }

// Basis returns the operand basis.
func (n *TransposeNode[E]) Basis() tags.Basis { return n.sub.Basis() }

// Ownership reports how the operand is held.
func (n *TransposeNode[E]) Ownership() Ownership { return ownershipOf(n.sub) }

func (n *TransposeNode[E]) temporary()     {}
func (n *TransposeNode[E]) reorders() bool { return true }

// Layout returns tags.EitherLayout; Eval resolves it to DefaultLayout.
func (n *TransposeNode[E]) Layout() tags.Layout { return tags.EitherLayout }

// Storage returns the operand selector reshaped to cols×rows.
func (n *TransposeNode[E]) Storage() storage.Selector {
	return n.sub.Storage().Reshape(n.sub.Cols(), n.sub.Rows())
}

// ---------- Own ----------

type owned[E scalar.Float] struct {
	Expr[E]
}

func (owned[E]) temporary() {}

// Own returns a private copy of m; nodes built over it report Owned and
// are unaffected by later writes to m.
func Own[E scalar.Float](m Expr[E]) Expr[E] {
	mustExpr(m)

	return owned[E]{Eval(m)}
}

func mustExpr[E scalar.Float](m Expr[E]) {
	if m == nil {
		panic(ErrNilExpr)
	}
}

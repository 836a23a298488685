// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// ---------- BinaryNode ----------

// BinaryNode is the lazy slot-wise sum or difference of two quaternions.
type BinaryNode[E scalar.Float] struct {
	left, right Expr[E]
	op          vector.Op
	order       tags.Order
	cross       tags.Cross
	sel         storage.Selector
}

// newBinary validates the operands and promotes their tags.
//
// Implementation:
//   - Stage 1: reject nil operands.
//   - Stage 2: promote Order and Cross; different tags conflict, because
//     slot-wise arithmetic would mix real and imaginary parts.
//   - Stage 3: promote the storage selectors.
func newBinary[E scalar.Float](tag string, op vector.Op, a, b Expr[E]) (*BinaryNode[E], error) {
	// Stage 1: validate
	if a == nil || b == nil {
		return nil, quaternionErrorf(tag, ErrNilExpr)
	}

	// Stage 2: tags
	order, err := tags.PromoteOrder(a.Order(), b.Order())
	if err != nil {
		return nil, quaternionErrorf(tag, err)
	}
	cross, err := tags.PromoteCross(a.Cross(), b.Cross())
	if err != nil {
		return nil, quaternionErrorf(tag, err)
	}

	// Stage 3: storage
	return &BinaryNode[E]{
		left:  a,
		right: b,
		op:    op,
		order: order,
		cross: cross,
		sel:   storage.Promote(a.Storage(), b.Storage()),
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

// Size returns 4.
func (n *BinaryNode[E]) Size() int { return Size }

// Get returns op(a[i], b[i]) in the promoted order.
func (n *BinaryNode[E]) Get(i int) E { return vector.Apply(n.op, n.left.Get(i), n.right.Get(i)) }

// SizeTag returns tags.Fixed.
func (n *BinaryNode[E]) SizeTag() tags.Size { return tags.Fixed }

// Order returns the promoted component order.
func (n *BinaryNode[E]) Order() tags.Order { return n.order }

// Cross returns the promoted cross convention.
func (n *BinaryNode[E]) Cross() tags.Cross { return n.cross }

// Storage returns the promoted storage selector.
func (n *BinaryNode[E]) Storage() storage.Selector { return n.sel }

func (n *BinaryNode[E]) temporary() {}

// Ownership reports how each operand is held.
func (n *BinaryNode[E]) Ownership() (left, right Ownership) {
	return ownershipOf(n.left), ownershipOf(n.right)
}

// ---------- ScalarNode ----------

// ScalarNode multiplies or divides every slot by a scalar.
type ScalarNode[E scalar.Float] struct {
	sub Expr[E]
	s   E
	op  vector.Op
}

// Scale returns the lazy product q * s.
func Scale[E scalar.Float](q Expr[E], s E) *ScalarNode[E] {
	mustExpr(q)

	return &ScalarNode[E]{sub: q, s: s, op: vector.OpMul}
}

// Div returns the lazy quotient q / s.
func Div[E scalar.Float](q Expr[E], s E) *ScalarNode[E] {
	mustExpr(q)

	return &ScalarNode[E]{sub: q, s: s, op: vector.OpDiv}
}

// Size returns 4.
func (n *ScalarNode[E]) Size() int { return Size }

// Get returns op(q[i], s).
func (n *ScalarNode[E]) Get(i int) E { return vector.Apply(n.op, n.sub.Get(i), n.s) }

// SizeTag returns tags.Fixed.
func (n *ScalarNode[E]) SizeTag() tags.Size { return tags.Fixed }

// Order returns the operand component order.
func (n *ScalarNode[E]) Order() tags.Order { return n.sub.Order() }

// Cross returns the operand cross convention.
func (n *ScalarNode[E]) Cross() tags.Cross { return n.sub.Cross() }

// Storage returns the operand storage selector.
func (n *ScalarNode[E]) Storage() storage.Selector { return n.sub.Storage() }

// Ownership reports how the operand is held.
func (n *ScalarNode[E]) Ownership() Ownership { return ownershipOf(n.sub) }

func (n *ScalarNode[E]) temporary() {}

// ---------- UnaryNode ----------

// UnaryNode negates all slots (Negate) or only the imaginary ones
// (Conjugate).
type UnaryNode[E scalar.Float] struct {
	sub       Expr[E]
	conjugate bool
}

// Negate returns the lazy negation -q.
func Negate[E scalar.Float](q Expr[E]) *UnaryNode[E] {
	mustExpr(q)

	return &UnaryNode[E]{sub: q}
}

// Conjugate returns the lazy conjugate (w, -x, -y, -z).
func Conjugate[E scalar.Float](q Expr[E]) *UnaryNode[E] {
	mustExpr(q)

	return &UnaryNode[E]{sub: q, conjugate: true}
}

// Get returns slot i of the negated or conjugated operand.
func (n *UnaryNode[E]) Get(i int) E {
	v := n.sub.Get(i)
	if n.conjugate {
		if w, _, _, _ := n.sub.Order().Indices(); i == w {
			return v
		}
	}

	return -v
}

// Size returns 4.
func (n *UnaryNode[E]) Size() int { return Size }

// SizeTag returns tags.Fixed.
func (n *UnaryNode[E]) SizeTag() tags.Size { return tags.Fixed }

// Order returns the operand component order.
func (n *UnaryNode[E]) Order() tags.Order { return n.sub.Order() }

// Cross returns the operand cross convention.
func (n *UnaryNode[E]) Cross() tags.Cross { return n.sub.Cross() }

// Storage returns the operand storage selector.
func (n *UnaryNode[E]) Storage() storage.Selector { return n.sub.Storage() }

// Ownership reports how the operand is held.
func (n *UnaryNode[E]) Ownership() Ownership { return ownershipOf(n.sub) }

func (n *UnaryNode[E]) temporary() {}

func mustExpr[E scalar.Float](q Expr[E]) {
	if q == nil {
		panic(ErrNilExpr)
	}
}

// ---------- Own ----------

type owned[E scalar.Float] struct {
	Expr[E]
}

func (owned[E]) temporary() {}

// Own returns a private copy of q that nodes report as Owned.
func Own[E scalar.Float](q Expr[E]) Expr[E] {
	mustExpr(q)

	return owned[E]{Eval(q)}
}

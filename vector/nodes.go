// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// Op names the element operator of a node.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpNeg
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpNeg:
		return "neg"
	default:
		return "op(?)"
	}
}

// Apply evaluates op on a and b. OpNeg ignores b.
func Apply[E scalar.Float](op Op, a, b E) E {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return -a
	}
}

// ---------- BinaryNode ----------

// BinaryNode is the lazy element-wise combination of two vector expressions.
// Its size, tag and storage selector are fixed at construction.
type BinaryNode[E scalar.Float] struct {
	left, right Expr[E]
	op          Op
	size        int
	tag         tags.Size
	sel         storage.Selector
}

func newBinary[E scalar.Float](tag string, op Op, a, b Expr[E]) (*BinaryNode[E], error) {
	if a == nil || b == nil {
		return nil, vectorErrorf(tag, ErrNilExpr)
	}
	if err := sizecheck.CheckSameSize(a, b); err != nil {
		return nil, vectorErrorf(tag, err)
	}

	return &BinaryNode[E]{
		left:  a,
		right: b,
		op:    op,
		size:  a.Size(),
		tag:   tags.PromoteSize(a.SizeTag(), b.SizeTag()),
		sel:   storage.Promote(a.Storage(), b.Storage()),
	}, nil
}

// Add returns the lazy sum a + b. When either side is dynamic the sizes are
// compared here, before any element is read.
func Add[E scalar.Float](a, b Expr[E]) (*BinaryNode[E], error) { return newBinary("Add", OpAdd, a, b) }

// Sub returns the lazy difference a - b.
func Sub[E scalar.Float](a, b Expr[E]) (*BinaryNode[E], error) { return newBinary("Sub", OpSub, a, b) }

// AddFixed is Add for two fixed vectors of the same type-level extent; it
// cannot fail.
func AddFixed[E scalar.Float, N tags.Dim](a, b *Fixed[E, N]) *BinaryNode[E] {
	n, _ := newBinary[E]("AddFixed", OpAdd, a, b)

	return n
}

// SubFixed is Sub for two fixed vectors of the same type-level extent.
func SubFixed[E scalar.Float, N tags.Dim](a, b *Fixed[E, N]) *BinaryNode[E] {
	n, _ := newBinary[E]("SubFixed", OpSub, a, b)

	return n
}

// Size returns the common operand size.
func (n *BinaryNode[E]) Size() int { return n.size }

// Get returns op(left[i], right[i]).
func (n *BinaryNode[E]) Get(i int) E { return Apply(n.op, n.left.Get(i), n.right.Get(i)) }

// SizeTag returns the promoted size tag: Fixed only when both operands are.
func (n *BinaryNode[E]) SizeTag() tags.Size { return n.tag }

// Storage returns the promoted storage selector.
func (n *BinaryNode[E]) Storage() storage.Selector { return n.sel }

// Op returns the element operator.
func (n *BinaryNode[E]) Op() Op { return n.op }

func (n *BinaryNode[E]) temporary() {}

// Ownership reports how each operand is held.
func (n *BinaryNode[E]) Ownership() (left, right Ownership) {
	return ownershipOf(n.left), ownershipOf(n.right)
}

// ---------- ScalarNode ----------

// ScalarNode combines every element of a vector expression with a scalar.
type ScalarNode[E scalar.Float] struct {
	sub Expr[E]
	s   E
	op  Op
}

// Scale returns the lazy product x * s. A nil x panics.
func Scale[E scalar.Float](x Expr[E], s E) *ScalarNode[E] {
	mustExpr(x)

	return &ScalarNode[E]{sub: x, s: s, op: OpMul}
}

// Div returns the lazy quotient x / s. Division by zero follows IEEE 754.
func Div[E scalar.Float](x Expr[E], s E) *ScalarNode[E] {
	mustExpr(x)

	return &ScalarNode[E]{sub: x, s: s, op: OpDiv}
}

// Size returns the operand element count.
func (n *ScalarNode[E]) Size() int { return n.sub.Size() }

// Get returns op(x[i], s).
func (n *ScalarNode[E]) Get(i int) E { return Apply(n.op, n.sub.Get(i), n.s) }

// SizeTag returns the operand size tag.
func (n *ScalarNode[E]) SizeTag() tags.Size { return n.sub.SizeTag() }

// Storage returns the operand storage selector.
func (n *ScalarNode[E]) Storage() storage.Selector { return n.sub.Storage() }

// Op returns the element operator.
func (n *ScalarNode[E]) Op() Op { return n.op }

// Ownership reports how the operand is held.
func (n *ScalarNode[E]) Ownership() Ownership { return ownershipOf(n.sub) }

func (n *ScalarNode[E]) temporary() {}

// ---------- UnaryNode ----------

// UnaryNode applies a unary operator element-wise.
type UnaryNode[E scalar.Float] struct {
	sub Expr[E]
	op  Op
}

// Negate returns the lazy negation -x.
func Negate[E scalar.Float](x Expr[E]) *UnaryNode[E] {
	mustExpr(x)

	return &UnaryNode[E]{sub: x, op: OpNeg}
}

// Size returns the operand element count.
func (n *UnaryNode[E]) Size() int { return n.sub.Size() }

// Get applies the unary operator to element i.
func (n *UnaryNode[E]) Get(i int) E { return Apply(n.op, n.sub.Get(i), 0) }

// SizeTag returns the operand size tag.
func (n *UnaryNode[E]) SizeTag() tags.Size { return n.sub.SizeTag() }

// Storage returns the operand storage selector.
func (n *UnaryNode[E]) Storage() storage.Selector { return n.sub.Storage() }

// Ownership reports how the operand is held.
func (n *UnaryNode[E]) Ownership() Ownership { return ownershipOf(n.sub) }

func (n *UnaryNode[E]) temporary() {}

func mustExpr[E scalar.Float](x Expr[E]) {
	if x == nil {
		panic(ErrNilExpr)
	}
}

// ---------- Own ----------

// owned is a private deep copy held by value.
type owned[E scalar.Float] struct {
	Expr[E]
}

func (owned[E]) temporary() {}

// Own returns a private copy of x. Nodes built over the copy are unaffected
// by later writes to x, and report the operand as Owned.
func Own[E scalar.Float](x Expr[E]) Expr[E] {
	mustExpr(x)

	return owned[E]{Eval(x)}
}

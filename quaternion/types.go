// SPDX-License-Identifier: MIT

// Package quaternion provides four-element quaternions that carry an element
// order tag and a cross-product convention tag, along with lazily evaluated
// quaternion expressions.
//
// Purpose:
//   - Quaternion[E]: inline storage for exactly four elements.
//   - External[E]: a view over four caller-owned elements.
//   - Add, Sub, Scale, Div, Negate and Conjugate build lazy nodes. Mul and
//     the remaining functions compute their results eagerly.
//
// Tags:
//   - Order (tags.VectorFirst or tags.ScalarFirst) says which storage slot is
//     the real part. Get(i) reads storage slot i. W, X, Y and Z read by role
//     and ignore the storage order.
//   - Cross (tags.PositiveCross or tags.NegativeCross) picks the sign of the
//     cross term in Mul.
//   - Combining operands with different Order or Cross tags fails with
//     tags.ErrTagConflict.
//
// A quaternion also satisfies vector.Expr, so vector helpers such as
// vector.Dot accept it. They operate on storage slots.
package quaternion

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// Size is the element count of every quaternion.
const Size = 4

// Expr is a read-only quaternion expression.
type Expr[E scalar.Float] interface {
	// Size always returns 4.
	Size() int
	// Get returns storage slot i.
	Get(i int) E
	// SizeTag always returns tags.Fixed.
	SizeTag() tags.Size
	// Order says which storage slot holds the real part.
	Order() tags.Order
	// Cross returns the product convention.
	Cross() tags.Cross
	// Storage returns the selector backing the expression.
	Storage() storage.Selector
}

// Writable is a quaternion whose storage slots can be set.
type Writable[E scalar.Float] interface {
	Expr[E]
	Set(i int, v E)
}

// Ownership is shared with the vector package.
type Ownership = vector.Ownership

const (
	Borrowed = vector.Borrowed
	Owned    = vector.Owned
)

type temporary interface {
	temporary()
}

func ownershipOf[E scalar.Float](q Expr[E]) Ownership {
	if _, ok := q.(temporary); ok {
		return Owned
	}

	return Borrowed
}

// parts reads q by role.
func parts[E scalar.Float](q Expr[E]) (w, x, y, z E) {
	iw, ix, iy, iz := q.Order().Indices()

	return q.Get(iw), q.Get(ix), q.Get(iy), q.Get(iz)
}

// setParts writes w, x, y and z into q by role.
func setParts[E scalar.Float](q Writable[E], w, x, y, z E) {
	iw, ix, iy, iz := q.Order().Indices()
	q.Set(iw, w)
	q.Set(ix, x)
	q.Set(iy, y)
	q.Set(iz, z)
}

// component reads role k of q: 0 is w, 1 is x, 2 is y, 3 is z.
func component[E scalar.Float](q Expr[E], k int) E {
	w, x, y, z := q.Order().Indices()

	return q.Get([Size]int{w, x, y, z}[k])
}

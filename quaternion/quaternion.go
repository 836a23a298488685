// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// Quaternion holds four elements inline. The zero value is the zero
// quaternion with DefaultOrder and DefaultCross.
type Quaternion[E scalar.Float] struct {
	data  [Size]E
	order tags.Order
	cross tags.Cross
}

// New returns a quaternion whose storage slots are a, b, c, d in that order.
// With the default VectorFirst order that is (x, y, z, w).
func New[E scalar.Float](a, b, c, d E, opts ...Option) *Quaternion[E] {
	o := gatherOptions(opts)

	return &Quaternion[E]{data: [Size]E{a, b, c, d}, order: o.order, cross: o.cross}
}

// FromParts builds a quaternion from its real part w and its imaginary
// 3-vector v (sizecheck.ErrExactSize otherwise).
func FromParts[E scalar.Float](w E, v vector.Expr[E], opts ...Option) (*Quaternion[E], error) {
	if v == nil {
		return nil, quaternionErrorf(opFromParts, ErrNilExpr)
	}
	if err := sizecheck.CheckExactSize(v, 3); err != nil {
		return nil, quaternionErrorf(opFromParts, err)
	}
	o := gatherOptions(opts)
	q := &Quaternion[E]{order: o.order, cross: o.cross}
	setParts[E](q, w, v.Get(0), v.Get(1), v.Get(2))

	return q, nil
}

// Identity returns the multiplicative identity (w=1).
func Identity[E scalar.Float](opts ...Option) *Quaternion[E] {
	o := gatherOptions(opts)
	q := &Quaternion[E]{order: o.order, cross: o.cross}
	identity[E](q)

	return q
}

// Size returns 4.
func (q *Quaternion[E]) Size() int { return Size }

// Get returns slot i in storage order.
func (q *Quaternion[E]) Get(i int) E { return q.data[i] }

// Set writes slot i in storage order.
func (q *Quaternion[E]) Set(i int, v E) { q.data[i] = v }

// SizeTag returns tags.Fixed.
func (q *Quaternion[E]) SizeTag() tags.Size { return tags.Fixed }

// Order returns the component order.
func (q *Quaternion[E]) Order() tags.Order { return q.order }

// Cross returns the cross convention.
func (q *Quaternion[E]) Cross() tags.Cross { return q.cross }

// Storage reports four inline elements.
func (q *Quaternion[E]) Storage() storage.Selector { return storage.InlineVector(Size) }

// Data returns the four elements in storage order.
func (q *Quaternion[E]) Data() []E { return q.data[:] }

// W returns the real part.
func (q *Quaternion[E]) W() E { return component[E](q, 0) }

// X returns the i coefficient.
func (q *Quaternion[E]) X() E { return component[E](q, 1) }

// Y returns the j coefficient.
func (q *Quaternion[E]) Y() E { return component[E](q, 2) }

// Z returns the k coefficient.
func (q *Quaternion[E]) Z() E { return component[E](q, 3) }

// Real is W.
func (q *Quaternion[E]) Real() E { return q.W() }

// Imaginary returns (x, y, z).
func (q *Quaternion[E]) Imaginary() *vector.Fixed[E, tags.D3] { return Imaginary[E](q) }

// Assign copies src by role; the order and cross tags of q are kept.
func (q *Quaternion[E]) Assign(src Expr[E]) error { return assign[E]("Quaternion."+opAssign, q, src) }

// AssignElements copies four values in storage order.
func (q *Quaternion[E]) AssignElements(vals ...E) error {
	return assignElements[E]("Quaternion."+opAssignElts, q, vals)
}

// Identity sets q to (w=1, 0, 0, 0).
func (q *Quaternion[E]) Identity() { identity[E](q) }

// Conjugate negates the imaginary part in place.
func (q *Quaternion[E]) Conjugate() { conjugate[E](q) }

// Normalize scales q to unit length in place.
func (q *Quaternion[E]) Normalize() { normalize[E](q) }

// Inverse replaces q by its multiplicative inverse.
func (q *Quaternion[E]) Inverse() { invert[E](q) }

// Clone returns an independent copy.
func (q *Quaternion[E]) Clone() *Quaternion[E] {
	c := *q

	return &c
}

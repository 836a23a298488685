// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// External is a quaternion view over the first four elements of caller-owned
// memory. Writes, Assign included, land in the referenced slice.
type External[E scalar.Float] struct {
	data  []E
	order tags.Order
	cross tags.Cross
}

// NewExternal wraps data, which must hold at least four elements
// (sizecheck.ErrMinimumSize).
func NewExternal[E scalar.Float](data []E, opts ...Option) (*External[E], error) {
	if err := sizecheck.CheckMinimumSize(vector.NewExternal(data), Size); err != nil {
		return nil, quaternionErrorf(opExternal, err)
	}
	o := gatherOptions(opts)

	return &External[E]{data: data[:Size:Size], order: o.order, cross: o.cross}, nil
}

// Size returns 4.
func (q *External[E]) Size() int { return Size }

// Get returns slot i of the referenced memory.
func (q *External[E]) Get(i int) E { return q.data[i] }

// Set writes slot i through to the referenced memory.
func (q *External[E]) Set(i int, v E) { q.data[i] = v }

// SizeTag returns tags.Fixed.
func (q *External[E]) SizeTag() tags.Size { return tags.Fixed }

// Order returns the component order.
func (q *External[E]) Order() tags.Order { return q.order }

// Cross returns the cross convention.
func (q *External[E]) Cross() tags.Cross { return q.cross }

// Storage reports four external elements.
func (q *External[E]) Storage() storage.Selector { return storage.ExternalVector(Size) }

// Data returns the referenced slice.
func (q *External[E]) Data() []E { return q.data }

// W returns the real part.
func (q *External[E]) W() E { return component[E](q, 0) }

// X returns the i coefficient.
func (q *External[E]) X() E { return component[E](q, 1) }

// Y returns the j coefficient.
func (q *External[E]) Y() E { return component[E](q, 2) }

// Z returns the k coefficient.
func (q *External[E]) Z() E { return component[E](q, 3) }

// Assign writes src through by role.
func (q *External[E]) Assign(src Expr[E]) error { return assign[E]("External."+opAssign, q, src) }

// AssignElements writes four values through in storage order.
func (q *External[E]) AssignElements(vals ...E) error {
	return assignElements[E]("External."+opAssignElts, q, vals)
}

// Identity sets q to the identity quaternion in place.
func (q *External[E]) Identity() { identity[E](q) }

// Conjugate negates the vector part in place.
func (q *External[E]) Conjugate() { conjugate[E](q) }

// Normalize scales q to unit length in place.
func (q *External[E]) Normalize() { normalize[E](q) }

// Inverse replaces q with its multiplicative inverse in place.
func (q *External[E]) Inverse() { invert[E](q) }

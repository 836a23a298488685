// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// Fixed is an inline vector of N elements. The zero value is the zero vector.
// Methods use pointer receivers; pass *Fixed to nodes to borrow it.
type Fixed[E scalar.Float, N tags.Dim] struct {
	data [tags.MaxFixedDim]E
}

// New2 returns the 2-vector (x, y).
func New2[E scalar.Float](x, y E) *Fixed[E, tags.D2] {
	v := &Fixed[E, tags.D2]{}
	v.data[0], v.data[1] = x, y

	return v
}

// New3 returns the 3-vector (x, y, z).
func New3[E scalar.Float](x, y, z E) *Fixed[E, tags.D3] {
	v := &Fixed[E, tags.D3]{}
	v.data[0], v.data[1], v.data[2] = x, y, z

	return v
}

// New4 returns the 4-vector (x, y, z, w).
func New4[E scalar.Float](x, y, z, w E) *Fixed[E, tags.D4] {
	v := &Fixed[E, tags.D4]{}
	v.data[0], v.data[1], v.data[2], v.data[3] = x, y, z, w

	return v
}

// NewFixed returns an N-vector holding vals. With no vals the vector is zero;
// otherwise exactly N values are required.
//
//	v, err := vector.NewFixed[tags.D5](1.0, 2, 3, 4, 5)
func NewFixed[N tags.Dim, E scalar.Float](vals ...E) (*Fixed[E, N], error) {
	n := tags.DimOf[N]()
	if n > tags.MaxFixedDim {
		return nil, vectorErrorf("NewFixed", fmt.Errorf("%d > %d: %w", n, tags.MaxFixedDim, ErrCapacity))
	}
	v := &Fixed[E, N]{}
	if len(vals) == 0 {
		return v, nil
	}
	if err := v.AssignElements(vals...); err != nil {
		return nil, vectorErrorf("NewFixed", err)
	}

	return v, nil
}

// Size returns N.
func (v *Fixed[E, N]) Size() int { return tags.DimOf[N]() }

// Get returns element i.
func (v *Fixed[E, N]) Get(i int) E { return v.data[:v.Size()][i] }

// Set writes element i.
func (v *Fixed[E, N]) Set(i int, x E) { v.data[:v.Size()][i] = x }

// SizeTag returns tags.Fixed.
func (v *Fixed[E, N]) SizeTag() tags.Size { return tags.Fixed }

// Storage returns an inline selector of N elements.
func (v *Fixed[E, N]) Storage() storage.Selector { return storage.InlineVector(v.Size()) }

// Data returns the elements as a slice aliasing the inline buffer.
func (v *Fixed[E, N]) Data() []E { return v.data[:v.Size()] }

// Assign copies src into v. A dynamic src of another size fails with
// sizecheck.ErrIncompatibleSize and leaves v unchanged.
func (v *Fixed[E, N]) Assign(src Expr[E]) error { return assignExpr[E]("Fixed.Assign", v, src) }

// AssignElements copies exactly N values into v.
func (v *Fixed[E, N]) AssignElements(vals ...E) error {
	return assignElements[E]("Fixed.AssignElements", v, vals)
}

// Zero sets every element to 0.
func (v *Fixed[E, N]) Zero() { fill[E](v, 0) }

// Fill sets every element to x.
func (v *Fixed[E, N]) Fill(x E) { fill[E](v, x) }

// Cardinal makes v the unit vector along axis.
func (v *Fixed[E, N]) Cardinal(axis int) error { return cardinal[E]("Fixed.Cardinal", v, axis) }

// Minimize replaces each element by the smaller of itself and x's.
func (v *Fixed[E, N]) Minimize(x Expr[E]) error { return minmax[E]("Fixed.Minimize", v, x, true) }

// Maximize replaces each element by the larger of itself and x's.
func (v *Fixed[E, N]) Maximize(x Expr[E]) error { return minmax[E]("Fixed.Maximize", v, x, false) }

// Normalize scales v to unit length. No zero-length guard.
func (v *Fixed[E, N]) Normalize() { normalize[E](v) }

// Random fills v with values uniformly drawn from [lo, hi).
func (v *Fixed[E, N]) Random(r *rand.Rand, lo, hi E) { randomize[E](v, r, lo, hi) }

// Clone returns an independent copy.
func (v *Fixed[E, N]) Clone() *Fixed[E, N] {
	c := *v

	return &c
}

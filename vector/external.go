// SPDX-License-Identifier: MIT

package vector

import (
	"math/rand"

	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// External is a vector view over caller-owned memory. It never allocates and
// never frees: every write, Assign included, lands in the referenced slice.
// The caller guarantees the memory outlives the view.
type External[E scalar.Float] struct {
	data  []E
	fixed bool
}

// NewExternal returns a dynamically tagged view over data.
func NewExternal[E scalar.Float](data []E) *External[E] {
	return &External[E]{data: data}
}

// NewFixedExternal returns a Fixed-tagged view over the first N elements of
// data. data must hold at least N elements (sizecheck.ErrMinimumSize).
//
//	v, err := vector.NewFixedExternal[tags.D3](buf)
func NewFixedExternal[N tags.Dim, E scalar.Float](data []E) (*External[E], error) {
	n := tags.DimOf[N]()
	if err := sizecheck.CheckMinimumSize(NewExternal(data), n); err != nil {
		return nil, vectorErrorf("NewFixedExternal", err)
	}

	return &External[E]{data: data[:n:n], fixed: true}, nil
}

// Size returns the view length.
func (v *External[E]) Size() int { return len(v.data) }

// Get returns element i.
func (v *External[E]) Get(i int) E { return v.data[i] }

// Set writes element i through to the referenced memory.
func (v *External[E]) Set(i int, x E) { v.data[i] = x }

// SizeTag returns tags.Fixed for views made by NewFixedExternal and
// tags.Dynamic otherwise.
func (v *External[E]) SizeTag() tags.Size {
	if v.fixed {
		return tags.Fixed
	}

	return tags.Dynamic
}

// Storage returns an external selector.
func (v *External[E]) Storage() storage.Selector {
	if v.fixed {
		return storage.ExternalVector(len(v.data))
	}

	return storage.ExternalVector(storage.Unknown)
}

// Data returns the referenced slice.
func (v *External[E]) Data() []E { return v.data }

// Assign writes src through to the referenced memory. Sizes must match.
func (v *External[E]) Assign(src Expr[E]) error { return assignExpr[E]("External.Assign", v, src) }

// AssignElements writes vals through to the referenced memory.
func (v *External[E]) AssignElements(vals ...E) error {
	return assignElements[E]("External.AssignElements", v, vals)
}

// Zero sets every element to 0.
func (v *External[E]) Zero() { fill[E](v, 0) }

// Fill sets every element to x.
func (v *External[E]) Fill(x E) { fill[E](v, x) }

// Cardinal makes v the unit vector along axis.
func (v *External[E]) Cardinal(axis int) error { return cardinal[E]("External.Cardinal", v, axis) }

// Minimize replaces each element by the smaller of itself and x's.
func (v *External[E]) Minimize(x Expr[E]) error { return minmax[E]("External.Minimize", v, x, true) }

// Maximize replaces each element by the larger of itself and x's.
func (v *External[E]) Maximize(x Expr[E]) error { return minmax[E]("External.Maximize", v, x, false) }

// Normalize scales v to unit length.
func (v *External[E]) Normalize() { normalize[E](v) }

// Random fills v with values uniformly drawn from [lo, hi).
func (v *External[E]) Random(r *rand.Rand, lo, hi E) { randomize[E](v, r, lo, hi) }

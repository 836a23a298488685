// SPDX-License-Identifier: MIT

package vector

import (
	"math/rand"

	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// Dynamic is a heap vector sized at run time. The zero value is an empty
// vector using the default allocator.
type Dynamic[E scalar.Float] struct {
	heap *storage.Heap[E]
}

// NewDynamic returns a zeroed vector of n elements.
func NewDynamic[E scalar.Float](n int, opts ...Option[E]) (*Dynamic[E], error) {
	if err := sizecheck.CheckDimensions(n); err != nil {
		return nil, vectorErrorf("NewDynamic", err)
	}
	o := gatherOptions(opts)

	return &Dynamic[E]{heap: storage.NewHeap(n, o.alloc)}, nil
}

// FromSlice returns a vector holding a copy of data.
func FromSlice[E scalar.Float](data []E, opts ...Option[E]) *Dynamic[E] {
	o := gatherOptions(opts)
	v := &Dynamic[E]{heap: storage.NewHeap(len(data), o.alloc)}
	copy(v.heap.Data(), data)

	return v
}

// buf returns the heap, creating an empty one for the zero value.
func (v *Dynamic[E]) buf() *storage.Heap[E] {
	if v.heap == nil {
		v.heap = storage.NewHeap[E](0, nil)
	}

	return v.heap
}

// Size returns the current element count.
func (v *Dynamic[E]) Size() int {
	if v.heap == nil {
		return 0
	}

	return v.heap.Len()
}

// Get returns element i.
func (v *Dynamic[E]) Get(i int) E { return v.buf().Data()[i] }

// Set writes element i.
func (v *Dynamic[E]) Set(i int, x E) { v.buf().Data()[i] = x }

// SizeTag returns tags.Dynamic.
func (v *Dynamic[E]) SizeTag() tags.Size { return tags.Dynamic }

// Storage returns a heap selector carrying the vector's allocator.
func (v *Dynamic[E]) Storage() storage.Selector { return v.buf().Selector() }

// Data returns the backing slice.
func (v *Dynamic[E]) Data() []E { return v.buf().Data() }

// Resize changes the size to n, preserving the leading elements.
func (v *Dynamic[E]) Resize(n int) error {
	if err := sizecheck.CheckDimensions(n); err != nil {
		return vectorErrorf("Dynamic.Resize", err)
	}
	v.buf().Resize(n)

	return nil
}

// ResizeFast changes the size to n; existing contents may be discarded.
func (v *Dynamic[E]) ResizeFast(n int) error {
	if err := sizecheck.CheckDimensions(n); err != nil {
		return vectorErrorf("Dynamic.ResizeFast", err)
	}
	v.buf().ResizeFast(n)

	return nil
}

// Assign copies src into v. An empty v adopts the size of src; otherwise the
// sizes must match (sizecheck.ErrIncompatibleSize).
func (v *Dynamic[E]) Assign(src Expr[E]) error {
	if src != nil && v.Size() == 0 {
		v.buf().ResizeFast(src.Size())
	}

	return assignExpr[E]("Dynamic.Assign", v, src)
}

// AssignElements copies vals into v. An empty v adopts len(vals).
func (v *Dynamic[E]) AssignElements(vals ...E) error {
	if v.Size() == 0 {
		v.buf().ResizeFast(len(vals))
	}

	return assignElements[E]("Dynamic.AssignElements", v, vals)
}

// Zero sets every element to 0.
func (v *Dynamic[E]) Zero() { fill[E](v, 0) }

// Fill sets every element to x.
func (v *Dynamic[E]) Fill(x E) { fill[E](v, x) }

// Cardinal makes v the unit vector along axis.
func (v *Dynamic[E]) Cardinal(axis int) error { return cardinal[E]("Dynamic.Cardinal", v, axis) }

// Minimize replaces each element by the smaller of itself and x's.
func (v *Dynamic[E]) Minimize(x Expr[E]) error { return minmax[E]("Dynamic.Minimize", v, x, true) }

// Maximize replaces each element by the larger of itself and x's.
func (v *Dynamic[E]) Maximize(x Expr[E]) error { return minmax[E]("Dynamic.Maximize", v, x, false) }

// Normalize scales v to unit length.
func (v *Dynamic[E]) Normalize() { normalize[E](v) }

// Random fills v with values uniformly drawn from [lo, hi).
func (v *Dynamic[E]) Random(r *rand.Rand, lo, hi E) { randomize[E](v, r, lo, hi) }

// Clone returns a deep copy drawn from the same allocator.
func (v *Dynamic[E]) Clone() *Dynamic[E] { return &Dynamic[E]{heap: v.buf().Clone()} }

// Release returns the buffer to its allocator and leaves v empty.
func (v *Dynamic[E]) Release() { v.buf().Release() }

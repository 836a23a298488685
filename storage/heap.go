// SPDX-License-Identifier: MIT

package storage

import "fmt"

// Heap is an owned, dynamically sized element buffer.
//   - data is obtained from alloc and handed back on Release or reallocation.
//   - A Heap value must not be copied once used; share it through *Heap and
//     duplicate it with Clone.
type Heap[E any] struct {
	data  []E
	alloc Allocator[E]
}

// NewHeap allocates a zeroed buffer of n elements from alloc (nil selects
// the default allocator). A negative n is a programmer error and panics.
//
// Complexity: O(n).
func NewHeap[E any](n int, alloc Allocator[E]) *Heap[E] {
	if n < 0 {
		panic(fmt.Sprintf("storage: NewHeap: negative size %d", n))
	}
	if alloc == nil {
		alloc = DefaultAllocator[E]{}
	}

	return &Heap[E]{data: alloc.Allocate(n), alloc: alloc}
}

// Len returns the element count.
func (h *Heap[E]) Len() int { return len(h.data) }

// Data returns the backing slice. Writes through it are visible to the owner.
func (h *Heap[E]) Data() []E { return h.data }

// Allocator returns the allocator the buffer came from.
func (h *Heap[E]) Allocator() Allocator[E] { return h.alloc }

// Selector describes the buffer as vector storage.
func (h *Heap[E]) Selector() Selector { return HeapVector(h.alloc) }

// Resize changes the length to n, preserving the first min(n, Len()) elements.
// The buffer is reallocated exactly once when n differs from Len().
//
// Complexity: O(n) when reallocating, O(1) otherwise.
func (h *Heap[E]) Resize(n int) {
	if n == len(h.data) {
		return
	}
	if n < 0 {
		panic(fmt.Sprintf("storage: Heap.Resize: negative size %d", n))
	}
	next := h.alloc.Allocate(n)
	copy(next, h.data)
	h.alloc.Release(h.data)
	h.data = next
}

// ResizeFast changes the length to n without preserving contents: after a
// size change every element is zero.
//
// Complexity: O(n) when reallocating, O(1) otherwise.
func (h *Heap[E]) ResizeFast(n int) {
	if n == len(h.data) {
		return
	}
	if n < 0 {
		panic(fmt.Sprintf("storage: Heap.ResizeFast: negative size %d", n))
	}
	h.alloc.Release(h.data)
	h.data = h.alloc.Allocate(n)
}

// Clone returns a deep copy drawn from the same allocator.
func (h *Heap[E]) Clone() *Heap[E] {
	c := &Heap[E]{data: h.alloc.Allocate(len(h.data)), alloc: h.alloc}
	copy(c.data, h.data)

	return c
}

// Release returns the buffer to its allocator and leaves h empty.
func (h *Heap[E]) Release() {
	h.alloc.Release(h.data)
	h.data = nil
}

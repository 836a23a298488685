// SPDX-License-Identifier: MIT

package storage

import (
	"math/bits"
	"sync"
)

// DefaultAllocatorName identifies the default heap allocator.
const DefaultAllocatorName = "default"

// poolClasses bounds the power-of-two size classes served by PoolAllocator;
// larger requests bypass the pools.
const poolClasses = 24

// Allocator obtains and returns element buffers for heap containers.
// Allocate must return a zeroed slice of length n.
type Allocator[E any] interface {
	Named
	Allocate(n int) []E
	Release(buf []E)
}

// nameOf returns the identity of a, treating nil as the default allocator.
func nameOf(a Named) string {
	if a == nil {
		return DefaultAllocatorName
	}

	return a.Name()
}

// AllocatorFor returns the allocator recorded in s for element type E, or
// the default allocator when s records none (or one for another type).
func AllocatorFor[E any](s Selector) Allocator[E] {
	if a, ok := s.alloc.(Allocator[E]); ok {
		return a
	}

	return DefaultAllocator[E]{}
}

// DefaultAllocator allocates with make and leaves release to the GC.
type DefaultAllocator[E any] struct{}

// Name implements Named.
func (DefaultAllocator[E]) Name() string { return DefaultAllocatorName }

// Allocate returns make([]E, n).
func (DefaultAllocator[E]) Allocate(n int) []E { return make([]E, n) }

// Release is a no-op.
func (DefaultAllocator[E]) Release([]E) {}

// PoolAllocator recycles buffers through one sync.Pool per power-of-two
// capacity class. It is safe for concurrent use.
type PoolAllocator[E any] struct {
	name    string
	classes [poolClasses]sync.Pool
}

// NewPoolAllocator returns a pool-backed allocator identified by name.
// Two allocators with the same name are treated as the same strategy by
// Disambiguate.
func NewPoolAllocator[E any](name string) *PoolAllocator[E] {
	if name == "" || name == DefaultAllocatorName {
		panic("storage: NewPoolAllocator: name must be non-empty and not \"default\"")
	}

	return &PoolAllocator[E]{name: name}
}

// Name implements Named.
func (p *PoolAllocator[E]) Name() string { return p.name }

// sizeClass returns the class whose capacity 1<<class holds n elements.
func sizeClass(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

// Allocate returns a zeroed buffer of length n, reusing a pooled one when
// a buffer of the matching class is available.
func (p *PoolAllocator[E]) Allocate(n int) []E {
	if n == 0 {
		return nil
	}
	class := sizeClass(n)
	if class >= poolClasses {
		return make([]E, n)
	}
	if v := p.classes[class].Get(); v != nil {
		buf := (*v.(*[]E))[:n]
		clear(buf)

		return buf
	}

	return make([]E, n, 1<<class)
}

// Release hands buf back to its size class. Buffers that were not produced
// by Allocate (capacity not a power of two) are dropped.
func (p *PoolAllocator[E]) Release(buf []E) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	class := sizeClass(c)
	if class >= poolClasses {
		return
	}
	buf = buf[:c]
	p.classes[class].Put(&buf)
}

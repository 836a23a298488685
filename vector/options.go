// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
)

// Option configures heap-backed vectors.
type Option[E scalar.Float] func(*options[E])

type options[E scalar.Float] struct {
	alloc storage.Allocator[E]
}

// WithAllocator selects the allocator dynamic storage is drawn from.
// Panics on nil (programmer error).
func WithAllocator[E scalar.Float](a storage.Allocator[E]) Option[E] {
	if a == nil {
		panic("vector: WithAllocator(nil)")
	}

	return func(o *options[E]) { o.alloc = a }
}

func gatherOptions[E scalar.Float](opts []Option[E]) options[E] {
	o := options[E]{alloc: storage.DefaultAllocator[E]{}}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

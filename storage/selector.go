// SPDX-License-Identifier: MIT

// Package storage describes how containers hold their elements and how the
// backing strategy of a combined expression is chosen.
//
// Purpose:
//   - Selector ties together a strategy (inline, heap, external), a size tag
//     and the element extents implied by that strategy (Unknown when dynamic).
//   - Disambiguate picks one strategy for two differing selectors.
//   - Promote / OuterPromote / InnerPromote compute the selector backing the
//     result of binary nodes, outer products and matrix products.
//   - Proxy resolves a selector into the one a forced materialization uses.
//
// Selectors are small comparable values. They are computed once, when a node
// or container is built, and never change afterwards.
//
// Complexity:
//   - Every selector operation is O(1).
package storage

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/tags"
)

// Unknown is the extent sentinel for dynamically sized storage.
const Unknown = -1

// Strategy names a container storage strategy.
type Strategy uint8

const (
	// HeapStrategy owns a dynamically sized buffer obtained from an Allocator.
	HeapStrategy Strategy = iota
	// Inline embeds a fixed-capacity array in the container value.
	Inline
	// External references caller-managed memory and never allocates.
	External
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case HeapStrategy:
		return "heap"
	case Inline:
		return "inline"
	case External:
		return "external"
	default:
		return "strategy(?)"
	}
}

// Named is the non-generic view of an Allocator used for identity checks.
type Named interface {
	Name() string
}

// Selector is the storage descriptor of a container or expression.
//   - Count is the vector element count (or Rows*Cols for matrices), Unknown if dynamic.
//   - Rows/Cols are matrix extents, Unknown if dynamic or not a matrix selector.
//   - Matrix marks two-dimensional selectors.
//   - alloc identifies the heap allocator; nil means the default allocator.
type Selector struct {
	Strategy Strategy
	Size     tags.Size
	Count    int
	Rows     int
	Cols     int
	Matrix   bool
	alloc    Named
}

// String renders the selector for diagnostics.
func (s Selector) String() string {
	if s.Matrix {
		return fmt.Sprintf("%s<%s,%dx%d,%s>", s.Strategy, s.Size, s.Rows, s.Cols, s.AllocatorName())
	}

	return fmt.Sprintf("%s<%s,%d,%s>", s.Strategy, s.Size, s.Count, s.AllocatorName())
}

// AllocatorName returns the heap allocator identity (DefaultAllocatorName when unset).
func (s Selector) AllocatorName() string { return nameOf(s.alloc) }

// IsDefault reports whether s is the library default: heap with the default allocator.
func (s Selector) IsDefault() bool {
	return s.Strategy == HeapStrategy && nameOf(s.alloc) == DefaultAllocatorName
}

// ---------- Constructors ----------

// InlineVector describes an inline vector of n elements.
func InlineVector(n int) Selector {
	return Selector{Strategy: Inline, Size: tags.Fixed, Count: n, Rows: Unknown, Cols: Unknown}
}

// HeapVector describes a heap vector using alloc (nil for the default allocator).
func HeapVector(alloc Named) Selector {
	return Selector{Strategy: HeapStrategy, Size: tags.Dynamic, Count: Unknown, Rows: Unknown, Cols: Unknown, alloc: alloc}
}

// ExternalVector describes a borrowed vector. n >= 0 gives it a fixed
// extent; Unknown makes it dynamic.
func ExternalVector(n int) Selector {
	s := Selector{Strategy: External, Size: tags.Fixed, Count: n, Rows: Unknown, Cols: Unknown}
	if n < 0 {
		s.Size, s.Count = tags.Dynamic, Unknown
	}

	return s
}

// InlineMatrix describes an inline rows×cols matrix.
func InlineMatrix(rows, cols int) Selector {
	return Selector{Strategy: Inline, Size: tags.Fixed, Count: rows * cols, Rows: rows, Cols: cols, Matrix: true}
}

// HeapMatrix describes a heap matrix using alloc (nil for the default allocator).
func HeapMatrix(alloc Named) Selector {
	return Selector{Strategy: HeapStrategy, Size: tags.Dynamic, Count: Unknown, Rows: Unknown, Cols: Unknown, Matrix: true, alloc: alloc}
}

// ExternalMatrix describes a borrowed matrix. Non-negative extents make it
// fixed; Unknown extents make it dynamic.
func ExternalMatrix(rows, cols int) Selector {
	if rows < 0 || cols < 0 {
		return Selector{Strategy: External, Size: tags.Dynamic, Count: Unknown, Rows: Unknown, Cols: Unknown, Matrix: true}
	}

	return Selector{Strategy: External, Size: tags.Fixed, Count: rows * cols, Rows: rows, Cols: cols, Matrix: true}
}

// ---------- Resizing ----------

// Resize returns s describing n elements. Dynamic selectors keep Unknown.
func (s Selector) Resize(n int) Selector {
	if s.Size == tags.Fixed {
		s.Count = n
	}

	return s
}

// Reshape returns s describing a rows×cols matrix. Dynamic selectors keep
// Unknown extents.
func (s Selector) Reshape(rows, cols int) Selector {
	if s.Size != tags.Fixed || rows < 0 || cols < 0 {
		s.Rows, s.Cols, s.Count, s.Matrix = Unknown, Unknown, Unknown, true

		return s
	}
	s.Rows, s.Cols, s.Count, s.Matrix = rows, cols, rows*cols, true

	return s
}

// AsVector returns a vector selector of n elements sharing the strategy and
// allocator of s. It describes a row, a column or a product result derived
// from matrix storage.
func (s Selector) AsVector(n int) Selector {
	s.Matrix, s.Rows, s.Cols = false, Unknown, Unknown
	if s.Size != tags.Fixed || n < 0 {
		s.Size, s.Count = tags.Dynamic, Unknown

		return s
	}
	s.Count = n

	return s
}

// SPDX-License-Identifier: MIT

package storage

import "github.com/katalvlaran/lvlmath/tags"

// defaultHeap is the strategy every ambiguous combination falls back to.
func defaultHeap(matrix bool) Selector {
	if matrix {
		return HeapMatrix(nil)
	}

	return HeapVector(nil)
}

// sameStrategy reports whether a and b use the same strategy and allocator.
func sameStrategy(a, b Selector) bool {
	return a.Strategy == b.Strategy && nameOf(a.alloc) == nameOf(b.alloc)
}

// Disambiguate chooses the strategy (and allocator) to use when a and b are
// combined. Only the strategy part of the result is meaningful; extents are
// fixed by the caller (see Promote).
//
// Precedence:
//   - identical strategy and allocator: keep it;
//   - one default (heap, default allocator) and one non-default: prefer the non-default;
//   - two differing non-defaults: fall back to the default heap, because no
//     rule can safely choose between two independent custom strategies.
//
// Complexity: O(1).
func Disambiguate(a, b Selector) Selector {
	switch {
	case sameStrategy(a, b):
		return a
	case a.IsDefault():
		return b
	case b.IsDefault():
		return a
	default:
		return defaultHeap(a.Matrix || b.Matrix)
	}
}

// dynamicCapable replaces an inline selector, which cannot hold a run-time
// extent, by the default heap.
func dynamicCapable(s Selector) Selector {
	if s.Strategy == Inline {
		return defaultHeap(s.Matrix)
	}

	return s
}

// unbound computes the strategy shared by a and b for a result whose size
// tag is size. Dynamic and Either results never keep an inline strategy.
func unbound(a, b Selector, size tags.Size) Selector {
	if size != tags.Fixed {
		a, b = dynamicCapable(a), dynamicCapable(b)
	}
	s := Disambiguate(a, b)
	s.Size = size

	return s
}

func maxExtent(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Promote returns the selector backing a binary node over operands stored
// as a and b. Fixed results keep the larger of the two extents (they are
// equal after size checking); other results carry Unknown extents.
func Promote(a, b Selector) Selector {
	size := tags.PromoteSize(a.Size, b.Size)
	s := unbound(a, b, size)
	s.Matrix = a.Matrix || b.Matrix
	if size != tags.Fixed {
		s.Count, s.Rows, s.Cols = Unknown, Unknown, Unknown

		return s
	}
	s.Count = maxExtent(a.Count, b.Count)
	s.Rows = maxExtent(a.Rows, b.Rows)
	s.Cols = maxExtent(a.Cols, b.Cols)

	return s
}

// OuterPromote returns the selector of the matrix produced by the outer
// product of two vectors stored as u and v: u supplies the rows, v the
// columns.
func OuterPromote(u, v Selector) Selector {
	size := tags.PromoteSize(u.Size, v.Size)
	s := unbound(u, v, size)
	s.Matrix = true
	if size != tags.Fixed {
		s.Count, s.Rows, s.Cols = Unknown, Unknown, Unknown

		return s
	}
	s.Rows, s.Cols, s.Count = u.Count, v.Count, u.Count*v.Count

	return s
}

// InnerPromote returns the selector of the temporary holding the product of
// matrices stored as a (left) and b (right). The result is fixed only when
// the left rows and the right columns are both known.
func InnerPromote(a, b Selector) Selector {
	pa, pb := Proxy(a), Proxy(b)
	rows, cols := pa.Rows, pb.Cols
	size := tags.Dynamic
	if pa.Size == tags.Fixed && pb.Size == tags.Fixed && rows > 0 && cols > 0 {
		size = tags.Fixed
	}
	s := unbound(pa, pb, size)
	s.Matrix = true
	if size != tags.Fixed {
		s.Count, s.Rows, s.Cols = Unknown, Unknown, Unknown

		return s
	}
	s.Rows, s.Cols, s.Count = rows, cols, rows*cols

	return s
}

// Proxy returns the selector a forced materialization of s uses: inline
// stays inline; heap keeps its allocator; external borrows nothing new and
// resolves to the default heap.
func Proxy(s Selector) Selector {
	switch s.Strategy {
	case Inline, HeapStrategy:
		return s
	default:
		p := defaultHeap(s.Matrix)
		p.Size = s.Size
		p.Count, p.Rows, p.Cols = s.Count, s.Rows, s.Cols

		return p
	}
}

// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// Eval materializes x into a new container chosen by storage.Proxy:
//   - inline proxies (all-fixed expressions) give an inline temporary;
//   - heap proxies give a Dynamic drawn from the selector's allocator;
//   - external operands never allocate, so they resolve to the default heap.
//
// Complexity: O(Size()).
func Eval[E scalar.Float](x Expr[E]) Writable[E] {
	mustExpr(x)
	n := x.Size()
	sel := storage.Proxy(x.Storage())

	var dst Writable[E]
	if sel.Strategy == storage.Inline && n <= tags.MaxFixedDim {
		dst = &inline[E]{n: n}
	} else {
		dst = &Dynamic[E]{heap: storage.NewHeap(n, storage.AllocatorFor[E](sel))}
	}
	for i := 0; i < n; i++ {
		dst.Set(i, x.Get(i))
	}

	return dst
}

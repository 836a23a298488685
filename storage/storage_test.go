package storage_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/stretchr/testify/require"
)

func TestDisambiguate(t *testing.T) {
	t.Parallel()

	pool := storage.NewPoolAllocator[float64]("pool")
	other := storage.NewPoolAllocator[float64]("arena")

	tests := []struct {
		name     string
		a, b     storage.Selector
		strategy storage.Strategy
		alloc    string
	}{
		{"identical inline", storage.InlineVector(3), storage.InlineVector(3), storage.Inline, storage.DefaultAllocatorName},
		{"default vs inline", storage.HeapVector(nil), storage.InlineVector(3), storage.Inline, storage.DefaultAllocatorName},
		{"inline vs default", storage.InlineVector(3), storage.HeapVector(nil), storage.Inline, storage.DefaultAllocatorName},
		{"default vs pool", storage.HeapVector(nil), storage.HeapVector(pool), storage.HeapStrategy, "pool"},
		{"pool vs pool", storage.HeapVector(pool), storage.HeapVector(pool), storage.HeapStrategy, "pool"},
		{"pool vs arena", storage.HeapVector(pool), storage.HeapVector(other), storage.HeapStrategy, storage.DefaultAllocatorName},
		{"inline vs external", storage.InlineVector(3), storage.ExternalVector(3), storage.HeapStrategy, storage.DefaultAllocatorName},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := storage.Disambiguate(tc.a, tc.b)
			require.Equal(t, tc.strategy, got.Strategy)
			require.Equal(t, tc.alloc, got.AllocatorName())
		})
	}
}

func TestPromote_FixedAndDynamic(t *testing.T) {
	t.Parallel()

	fixed := storage.Promote(storage.InlineVector(3), storage.InlineVector(3))
	require.Equal(t, storage.Inline, fixed.Strategy)
	require.Equal(t, tags.Fixed, fixed.Size)
	require.Equal(t, 3, fixed.Count)

	// an inline operand cannot host a run-time extent
	mixed := storage.Promote(storage.InlineVector(3), storage.HeapVector(nil))
	require.Equal(t, storage.HeapStrategy, mixed.Strategy)
	require.Equal(t, tags.Dynamic, mixed.Size)
	require.Equal(t, storage.Unknown, mixed.Count)
	require.True(t, mixed.IsDefault())

	pool := storage.NewPoolAllocator[float64]("pool")
	pooled := storage.Promote(storage.InlineVector(3), storage.HeapVector(pool))
	require.Equal(t, "pool", pooled.AllocatorName())
}

func TestOuterPromote(t *testing.T) {
	t.Parallel()

	s := storage.OuterPromote(storage.InlineVector(3), storage.InlineVector(2))
	require.True(t, s.Matrix)
	require.Equal(t, tags.Fixed, s.Size)
	require.Equal(t, 3, s.Rows)
	require.Equal(t, 2, s.Cols)
	require.Equal(t, storage.Inline, s.Strategy)

	d := storage.OuterPromote(storage.InlineVector(3), storage.HeapVector(nil))
	require.Equal(t, tags.Dynamic, d.Size)
	require.Equal(t, storage.Unknown, d.Rows)
}

func TestInnerPromote(t *testing.T) {
	t.Parallel()

	s := storage.InnerPromote(storage.InlineMatrix(2, 3), storage.InlineMatrix(3, 4))
	require.Equal(t, tags.Fixed, s.Size)
	require.Equal(t, 2, s.Rows)
	require.Equal(t, 4, s.Cols)

	d := storage.InnerPromote(storage.InlineMatrix(2, 3), storage.HeapMatrix(nil))
	require.Equal(t, tags.Dynamic, d.Size)
	require.Equal(t, storage.HeapStrategy, d.Strategy)

	// external operands resolve to heap proxies
	e := storage.InnerPromote(storage.ExternalMatrix(2, 2), storage.ExternalMatrix(2, 2))
	require.Equal(t, storage.HeapStrategy, e.Strategy)
	require.Equal(t, tags.Fixed, e.Size)
}

func TestProxy(t *testing.T) {
	t.Parallel()

	require.Equal(t, storage.Inline, storage.Proxy(storage.InlineVector(4)).Strategy)
	require.Equal(t, storage.HeapStrategy, storage.Proxy(storage.ExternalVector(4)).Strategy)
	require.Equal(t, 4, storage.Proxy(storage.ExternalVector(4)).Count)

	pool := storage.NewPoolAllocator[float32]("pool")
	require.Equal(t, "pool", storage.Proxy(storage.HeapVector(pool)).AllocatorName())
}

func TestResizeReshape(t *testing.T) {
	require.Equal(t, 5, storage.InlineVector(3).Resize(5).Count)
	require.Equal(t, storage.Unknown, storage.HeapVector(nil).Resize(5).Count)

	m := storage.InlineMatrix(2, 2).Reshape(3, 4)
	require.Equal(t, 12, m.Count)
	require.Equal(t, 3, m.Rows)
	require.Equal(t, storage.Unknown, storage.HeapMatrix(nil).Reshape(3, 4).Rows)
}

func TestAllocatorFor(t *testing.T) {
	pool := storage.NewPoolAllocator[float64]("pool")
	a := storage.AllocatorFor[float64](storage.HeapVector(pool))
	require.Equal(t, "pool", a.Name())

	// an allocator of another element type falls back to the default
	b := storage.AllocatorFor[float32](storage.HeapVector(pool))
	require.Equal(t, storage.DefaultAllocatorName, b.Name())

	require.Panics(t, func() { storage.NewPoolAllocator[float64]("") })
}

func TestHeap_ResizePreserves(t *testing.T) {
	t.Parallel()

	h := storage.NewHeap[float64](3, nil)
	copy(h.Data(), []float64{1, 2, 3})

	h.Resize(5)
	require.Equal(t, []float64{1, 2, 3, 0, 0}, h.Data())

	h.Resize(2)
	require.Equal(t, []float64{1, 2}, h.Data())

	h.ResizeFast(4)
	require.Equal(t, []float64{0, 0, 0, 0}, h.Data())

	c := h.Clone()
	c.Data()[0] = 9
	require.Equal(t, 0.0, h.Data()[0], "clone must not share storage")

	h.Release()
	require.Equal(t, 0, h.Len())
	require.Panics(t, func() { storage.NewHeap[float64](-1, nil) })
}

func TestPoolAllocator_RecyclesZeroed(t *testing.T) {
	pool := storage.NewPoolAllocator[float64]("pool")
	h := storage.NewHeap[float64](5, pool)
	for i := range h.Data() {
		h.Data()[i] = float64(i + 1)
	}
	h.Release()

	buf := pool.Allocate(6) // same class (capacity 8)
	require.Len(t, buf, 6)
	for _, v := range buf {
		require.Equal(t, 0.0, v)
	}
	require.Nil(t, pool.Allocate(0))
}

func TestAsVector(t *testing.T) {
	t.Parallel()

	v := storage.InlineMatrix(3, 4).AsVector(4)
	require.False(t, v.Matrix)
	require.Equal(t, storage.Inline, v.Strategy)
	require.Equal(t, 4, v.Count)

	pool := storage.NewPoolAllocator[float64]("pool")
	d := storage.HeapMatrix(pool).AsVector(4)
	require.Equal(t, tags.Dynamic, d.Size)
	require.Equal(t, storage.Unknown, d.Count)
	require.Equal(t, "pool", d.AllocatorName())
}

func TestStrategy_StringAndHeapContainer(t *testing.T) {
	t.Parallel()

	require.Equal(t, "heap", storage.HeapStrategy.String())
	require.Equal(t, "inline", storage.Inline.String())
	require.Equal(t, "external", storage.External.String())
	require.Equal(t, "strategy(?)", storage.Strategy(9).String())

	// the strategy constant and the buffer type live side by side
	h := storage.NewHeap[float64](2, nil)
	require.Len(t, h.Data(), 2)
	require.Equal(t, storage.HeapStrategy, storage.HeapMatrix(nil).Strategy)
}

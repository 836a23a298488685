package vector_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestFixed_Constructors(t *testing.T) {
	t.Parallel()

	v := vector.New3(1.0, 2, 3)
	require.Equal(t, 3, v.Size())
	require.Equal(t, tags.Fixed, v.SizeTag())
	require.Equal(t, []float64{1, 2, 3}, v.Data())
	require.Equal(t, storage.InlineVector(3), v.Storage())

	f, err := vector.NewFixed[tags.D5](1.0, 2, 3, 4, 5)
	require.NoError(t, err)
	require.Equal(t, 5.0, f.Get(4))

	zero, err := vector.NewFixed[tags.D4, float32]()
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0, 0, 0}, zero.Data())

	if sizecheck.Enabled {
		_, err = vector.NewFixed[tags.D3](1.0, 2)
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
	}

	var z vector.Fixed[float64, tags.D2]
	require.Equal(t, []float64{0, 0}, z.Data(), "zero value is the zero vector")
}

func TestFixed_AssignRejectsDynamicMismatch(t *testing.T) {
	t.Parallel()

	v := vector.New3(1.0, 2, 3)
	if sizecheck.Enabled {
		err := v.Assign(vector.FromSlice([]float64{9, 9, 9, 9}))
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
		require.Equal(t, []float64{1, 2, 3}, v.Data(), "failed assignment must not mutate")
	}

	require.NoError(t, v.Assign(vector.FromSlice([]float64{7, 8, 9})))
	require.Equal(t, []float64{7, 8, 9}, v.Data())
}

func TestDynamic_AssignAdoptsWhenEmpty(t *testing.T) {
	t.Parallel()

	var d vector.Dynamic[float64]
	require.Equal(t, 0, d.Size())
	require.NoError(t, d.Assign(vector.New3(1.0, 2, 3)))
	require.Equal(t, []float64{1, 2, 3}, d.Data())

	if sizecheck.Enabled {
		// a sized destination never truncates or pads
		err := d.AssignElements(1, 2, 3, 4)
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
		require.Equal(t, []float64{1, 2, 3}, d.Data())
	}

	require.NoError(t, d.Resize(5))
	require.Equal(t, []float64{1, 2, 3, 0, 0}, d.Data())
	require.NoError(t, d.ResizeFast(2))
	require.Equal(t, 2, d.Size())
	require.ErrorIs(t, d.Resize(-1), sizecheck.ErrInvalidDimensions)

	_, err := vector.NewDynamic[float64](-2)
	require.ErrorIs(t, err, sizecheck.ErrInvalidDimensions)
}

func TestDynamic_CloneIsDeep(t *testing.T) {
	t.Parallel()

	d := vector.FromSlice([]float64{1, 2})
	c := d.Clone()
	c.Set(0, 5)
	require.Equal(t, 1.0, d.Get(0))
}

func TestDynamic_WithAllocator(t *testing.T) {
	t.Parallel()

	pool := storage.NewPoolAllocator[float64]("pool")
	d, err := vector.NewDynamic(3, vector.WithAllocator[float64](pool))
	require.NoError(t, err)
	require.Equal(t, "pool", d.Storage().AllocatorName())

	// the pooled allocator wins over the default one in a binary node
	n, err := vector.Add[float64](d, vector.FromSlice([]float64{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, "pool", n.Storage().AllocatorName())
	require.Panics(t, func() { vector.WithAllocator[float64](nil) })
}

func TestExternal_WritesThrough(t *testing.T) {
	t.Parallel()

	buf := []float64{0, 0, 0, 42}
	e, err := vector.NewFixedExternal[tags.D3](buf)
	require.NoError(t, err)
	require.Equal(t, tags.Fixed, e.SizeTag())
	require.Equal(t, storage.External, e.Storage().Strategy)

	require.NoError(t, e.Assign(vector.New3(1.0, 2, 3)))
	require.Equal(t, []float64{1, 2, 3, 42}, buf)

	if sizecheck.Enabled {
		_, err = vector.NewFixedExternal[tags.D5](buf)
		require.ErrorIs(t, err, sizecheck.ErrMinimumSize)
	}

	d := vector.NewExternal(buf)
	require.Equal(t, tags.Dynamic, d.SizeTag())
	require.Equal(t, storage.Unknown, d.Storage().Count)
	d.Fill(1)
	require.Equal(t, []float64{1, 1, 1, 1}, buf)
}

func TestWritable_Helpers(t *testing.T) {
	t.Parallel()

	v := vector.New3(3.0, 0, 4)
	v.Normalize()
	require.True(t, cmp.Equal([]float64{0.6, 0, 0.8}, v.Data(), approx))

	require.NoError(t, v.Cardinal(1))
	require.Equal(t, []float64{0, 1, 0}, v.Data())
	require.ErrorIs(t, v.Cardinal(3), sizecheck.ErrInvalidAxis)

	a := vector.New3(1.0, 5, 3)
	require.NoError(t, a.Minimize(vector.New3(2.0, 4, 3)))
	require.Equal(t, []float64{1, 4, 3}, a.Data())
	require.NoError(t, a.Maximize(vector.New3(0.0, 6, 9)))
	require.Equal(t, []float64{1, 6, 9}, a.Data())

	r := rand.New(rand.NewSource(7))
	a.Random(r, -1, 1)
	for _, x := range a.Data() {
		require.GreaterOrEqual(t, x, -1.0)
		require.Less(t, x, 1.0)
	}
	a.Zero()
	require.Equal(t, []float64{0, 0, 0}, a.Data())
}

func TestProducts(t *testing.T) {
	t.Parallel()

	a, b := vector.New3(1.0, 2, 3), vector.New3(3.0, 2, 1)
	d, err := vector.Dot[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, 10.0, d)
	require.Equal(t, 14.0, vector.LengthSquared[float64](a))

	c := vector.Cross3(a, b)
	require.Equal(t, []float64{-4, 8, -4}, c.Data())

	if sizecheck.Enabled {
		_, err = vector.Cross[float64](a, vector.FromSlice([]float64{1, 2}))
		require.ErrorIs(t, err, sizecheck.ErrExactSize)
	}

	p, err := vector.Perp[float64](vector.New2(1.0, 2))
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 1}, p.Data())

	if sizecheck.Enabled {
		_, err = vector.Dot[float64](a, vector.FromSlice([]float64{1}))
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
	}
}

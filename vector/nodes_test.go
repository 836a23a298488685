package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
	"github.com/stretchr/testify/require"
)

func TestAdd_FixedAndDynamic(t *testing.T) {
	t.Parallel()

	fixed := vector.New3(1.0, 2, 3)

	n, err := vector.Add[float64](fixed, vector.FromSlice([]float64{1, 1, 1}))
	require.NoError(t, err)
	require.Equal(t, tags.Dynamic, n.SizeTag())
	require.Equal(t, 3, n.Size())
	require.Equal(t, storage.HeapStrategy, n.Storage().Strategy)
	require.Equal(t, 4.0, n.Get(2))

	if sizecheck.Enabled {
		_, err = vector.Add[float64](fixed, vector.FromSlice([]float64{1, 1, 1, 1}))
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
	}
}

func TestAddFixed_StaysInline(t *testing.T) {
	t.Parallel()

	n := vector.AddFixed(vector.New3(1.0, 2, 3), vector.New3(3.0, 2, 1))
	require.Equal(t, tags.Fixed, n.SizeTag())
	require.Equal(t, storage.Inline, n.Storage().Strategy)
	require.Equal(t, 3, n.Storage().Count)

	out := vector.Eval[float64](n)
	require.Equal(t, storage.Inline, out.Storage().Strategy)
	for i := 0; i < 3; i++ {
		require.Equal(t, 4.0, out.Get(i))
	}

	s := vector.SubFixed(vector.New2(5.0, 5), vector.New2(1.0, 2))
	require.Equal(t, 3.0, s.Get(1))
}

func TestNodes_AreLazyAndBorrow(t *testing.T) {
	t.Parallel()

	a := vector.FromSlice([]float64{1, 2})
	b := vector.FromSlice([]float64{10, 20})
	sum, err := vector.Add[float64](a, b)
	require.NoError(t, err)

	left, right := sum.Ownership()
	require.Equal(t, vector.Borrowed, left)
	require.Equal(t, vector.Borrowed, right)

	// borrowed operands are observed on every read
	a.Set(0, 100)
	require.Equal(t, 110.0, sum.Get(0))

	scaled := vector.Scale[float64](sum, 2)
	require.Equal(t, vector.Owned, scaled.Ownership())
	require.Equal(t, 220.0, scaled.Get(0))
	require.Equal(t, vector.OpMul, scaled.Op())

	require.Equal(t, -2.0, vector.Negate[float64](a).Get(1))
	require.Equal(t, 5.0, vector.Div[float64](b, 2).Get(0))
}

func TestOwn_DetachesFromSource(t *testing.T) {
	t.Parallel()

	a := vector.FromSlice([]float64{1, 2})
	b := vector.FromSlice([]float64{3, 4})
	sum, err := vector.Add(vector.Own[float64](a), vector.Expr[float64](b))
	require.NoError(t, err)

	left, right := sum.Ownership()
	require.Equal(t, vector.Owned, left)
	require.Equal(t, vector.Borrowed, right)

	a.Set(0, 100)
	require.Equal(t, 4.0, sum.Get(0), "owned operand must not see later writes")
}

func TestAssign_FromNode(t *testing.T) {
	t.Parallel()

	a := vector.New3(1.0, 2, 3)
	b := vector.New3(3.0, 2, 1)
	n, err := vector.Sub[float64](a, b)
	require.NoError(t, err)

	// element-wise nodes may be assigned back into an operand
	require.NoError(t, a.Assign(n))
	require.Equal(t, []float64{-2, 0, 2}, a.Data())
}

func TestEval_ExternalResolvesToHeap(t *testing.T) {
	t.Parallel()

	e := vector.NewExternal([]float64{1, 2, 3})
	out := vector.Eval[float64](vector.Scale[float64](e, 2))
	require.Equal(t, storage.HeapStrategy, out.Storage().Strategy)
	require.True(t, vector.Equal[float64](out, vector.New3(2.0, 4, 6), 0))
}

func TestNilOperands(t *testing.T) {
	t.Parallel()

	_, err := vector.Add[float64](nil, vector.New2(1.0, 2))
	require.ErrorIs(t, err, vector.ErrNilExpr)
	require.Panics(t, func() { vector.Negate[float64](nil) })
}

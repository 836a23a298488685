package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/stretchr/testify/require"
)

func TestInverse_ClosedForm2x2(t *testing.T) {
	t.Parallel()

	m := matrix.New22(1.0, 2, 3, 4)
	require.NoError(t, m.Inverse())
	require.Equal(t, [][]float64{{-2, 1}, {1.5, -0.5}}, rowsOf(m))
}

func TestInverse_ClosedForm3x3(t *testing.T) {
	t.Parallel()

	m := matrix.New33(
		1.0, 2, 3,
		1, 4, 9,
		1, 16, 25,
	)
	inv, err := matrix.Inverse[float64](m)
	require.NoError(t, err)
	requireRows(t, [][]float64{
		{22.0 / 20, 1.0 / 20, -3.0 / 20},
		{8.0 / 20, -11.0 / 20, 3.0 / 20},
		{-6.0 / 20, 7.0 / 20, -1.0 / 20},
	}, inv)

	// the free function leaves its argument untouched
	require.Equal(t, 16.0, m.Get(2, 1))
}

func TestInverse_RoundTripBothPaths(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 8; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			m := mustRows(t, wellConditioned(n))

			inv, err := matrix.Inverse[float64](m)
			require.NoError(t, err)
			prod, err := matrix.Mul[float64](m, inv)
			require.NoError(t, err)
			requireRows(t, identityRows(n), prod)

			back, err := matrix.Inverse(inv)
			require.NoError(t, err)
			requireRows(t, rowsOf(m), back)
		})
	}
}

func TestInverse_PivotHookOnlyOnGaussJordan(t *testing.T) {
	t.Parallel()

	var steps []int
	hook := matrix.WithPivotHook(func(step, row, col int) { steps = append(steps, step) })

	small := mustRows(t, wellConditioned(3))
	require.NoError(t, small.Inverse(hook))
	require.Empty(t, steps, "3×3 takes the closed form")

	large := mustRows(t, wellConditioned(6))
	require.NoError(t, large.Inverse(hook))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, steps)
}

func TestInverse_PermutationUndoesColumnSwaps(t *testing.T) {
	t.Parallel()

	// off-diagonal pivots force row swaps and a column un-swap pass
	p := mustRows(t, [][]float64{
		{0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 1, 0, 0},
	})
	var pivots [][2]int
	inv, err := matrix.Inverse[float64](p, matrix.WithPivotHook(func(_, r, c int) {
		pivots = append(pivots, [2]int{r, c})
	}))
	require.NoError(t, err)
	require.Equal(t, rowsOf(matrix.Transpose[float64](p)), rowsOf(inv))
	require.Equal(t, [2]int{0, 4}, pivots[0], "first maximal entry in scan order wins")
}

func TestInverse_FixedGaussJordan(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFixed[tags.D5, tags.D5](wellConditioned(5))
	require.NoError(t, err)
	inv := matrix.InverseFixed(m)
	prod := matrix.MulFixed(m, inv)
	requireRows(t, identityRows(5), prod)
}

func TestInverse_NonSquareLeavesInputUnchanged(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := mustRows(t, rows)
	err := m.Inverse()
	require.ErrorIs(t, err, sizecheck.ErrNonSquare)
	require.Equal(t, rows, rowsOf(m))

	_, err = matrix.Inverse[float64](m)
	require.ErrorIs(t, err, sizecheck.ErrNonSquare)

	f, err := matrix.NewFixed[tags.D2, tags.D3](rows)
	require.NoError(t, err)
	require.ErrorIs(t, f.Inverse(), sizecheck.ErrNonSquare)
	require.Equal(t, rows, rowsOf(f))
}

func TestInverse_SingularIsNotGuarded(t *testing.T) {
	t.Parallel()

	m := matrix.New22(1.0, 2, 2, 4)
	require.NoError(t, m.Inverse())
	for _, v := range m.Data() {
		require.True(t, math.IsInf(v, 0) || math.IsNaN(v), "expected a non-finite element, got %v", v)
	}
}

func TestInverse_ExternalWritesThrough(t *testing.T) {
	t.Parallel()

	buf := []float64{4, 7, 2, 6}
	e, err := matrix.NewExternal(2, 2, buf)
	require.NoError(t, err)
	require.NoError(t, e.Inverse())
	requireRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, e)
	require.InDeltaSlice(t, []float64{0.6, -0.7, -0.2, 0.4}, buf, tol)
}

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/vector"
	"github.com/stretchr/testify/require"
)

var luInput = [][]float64{
	{2, 0, 2, .6},
	{3, 3, 4, -2},
	{5, 5, 4, 2},
	{-1, -2, 3.4, -1},
}

func TestLUPivot_KnownDecomposition(t *testing.T) {
	t.Parallel()

	m := mustRows(t, luInput)
	p, err := matrix.LUPivot[float64](m)
	require.NoError(t, err)

	require.Equal(t, -1, p.Sign)
	require.Equal(t, []int{2, 0, 3, 1}, p.Order)
	requireRows(t, [][]float64{
		{5, 5, 4, 2},
		{.4, -2, .4, -.2},
		{-.2, .5, 4, -.5},
		{.6, 0, .4, -3},
	}, p.LU)
	require.InDelta(t, -120.0, p.Determinant(), tol)

	x0 := vector.New4(1.0, 2, 3, 4)
	b, err := matrix.MulVec[float64](m, x0)
	require.NoError(t, err)
	x, err := p.Solve(b)
	require.NoError(t, err)
	require.True(t, vector.Equal[float64](x, x0, tol))
}

func TestLUPivot_SingularReportsZeroSign(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {2, 4}})
	p, err := matrix.LUPivot[float64](m)
	require.NoError(t, err)
	require.Equal(t, 0, p.Sign)
	require.Equal(t, []int{1, 0}, p.Order)
	require.Equal(t, 0.0, p.LU.Get(1, 1))
	require.Equal(t, [][]float64{{1, 2}, {2, 4}}, rowsOf(m), "input is not modified")
}

func TestLU_ReconstructsInput(t *testing.T) {
	t.Parallel()

	m := mustRows(t, luInput)
	lu, err := matrix.LU[float64](m)
	require.NoError(t, err)

	n := lu.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k <= i && k <= j; k++ {
				l := lu.Get(i, k)
				if k == i {
					l = 1
				}
				sum += l * lu.Get(k, j)
			}
			require.InDelta(t, luInput[i][j], sum, tol, "(%d,%d)", i, j)
		}
	}

	b, err := matrix.MulVec[float64](m, vector.New4(4.0, 3, 2, 1))
	require.NoError(t, err)
	x, err := matrix.LUSolve[float64](lu, b)
	require.NoError(t, err)
	require.True(t, vector.Equal[float64](x, vector.New4(4.0, 3, 2, 1), tol))
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{7}}, 7},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{1, 2, 3}, {1, 4, 9}, {1, 16, 25}}, -40},
		{"4x4", luInput, -120},
		{"5x5 upper triangular", [][]float64{
			{1, 9, 9, 9, 9},
			{0, 2, 9, 9, 9},
			{0, 0, 3, 9, 9},
			{0, 0, 0, 4, 9},
			{0, 0, 0, 0, 5},
		}, 120},
		{"5x5 singular", [][]float64{
			{1, 2, 3, 4, 5},
			{2, 4, 6, 8, 10},
			{0, 1, 0, 1, 0},
			{1, 0, 1, 0, 1},
			{3, 1, 4, 1, 5},
		}, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := matrix.Determinant[float64](mustRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, d, 1e-9)
		})
	}

	_, err := matrix.Determinant[float64](mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, sizecheck.ErrNonSquare)
}

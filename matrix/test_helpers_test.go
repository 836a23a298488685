package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

var approx = cmpopts.EquateApprox(0, tol)

// rowsOf reads m into a 2-D slice for comparison.
func rowsOf(m matrix.Expr[float64]) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = m.Get(i, j)
		}
	}

	return out
}

// requireRows asserts m equals want within tol.
func requireRows(t *testing.T, want [][]float64, m matrix.Expr[float64]) {
	t.Helper()
	got := rowsOf(m)
	require.True(t, cmp.Equal(want, got, approx), cmp.Diff(want, got, approx))
}

// mustRows builds a Dynamic matrix or fails the test.
func mustRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dynamic[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// wellConditioned returns an n×n diagonally dominant matrix.
func wellConditioned(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1 / float64(i+j+1)
			if i == j {
				rows[i][j] += float64(n)
			}
		}
	}

	return rows
}

func identityRows(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}

	return rows
}
